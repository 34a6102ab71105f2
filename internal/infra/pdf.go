package infra

// pdf.go — sales report export using go-pdf/fpdf.
// Renders the same blocks the report screen shows:
//   - Header with period label
//   - Sale count and monetary total
//   - Top products by quantity
//   - Sale history lines (date, method, status, line items, totals)

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"dressify/internal/model"
	"dressify/internal/report"
)

// GenerarReporteVentasPDF writes a sales report to storagePath (created if
// needed) and returns the absolute path of the generated file.
func GenerarReporteVentasPDF(resumen report.ResumenVentas, ventas []model.Venta, periodo, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_ventas_%s.pdf", time.Now().Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Dressify", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, "Reporte de ventas", "", 1, "L", false, 0, "")
	if periodo != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 5, "Periodo: "+periodo, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// ── Summary ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW/2, 6, fmt.Sprintf("No. total de ventas: %d", resumen.NumVentas), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "Total monetario: $"+resumen.TotalMonetario.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.Ln(3)

	// ── Top products ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Productos más vendidos", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if len(resumen.TopProductos) == 0 {
		pdf.CellFormat(contentW, 5, "Sin datos", "", 1, "L", false, 0, "")
	}
	for _, p := range resumen.TopProductos {
		pdf.CellFormat(contentW, 5, fmt.Sprintf("%s — %d pz", p.Nombre, p.Cantidad), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── History ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Historial de ventas", "", 1, "L", false, 0, "")

	col1 := contentW * 0.28
	col2 := contentW * 0.24
	col3 := contentW * 0.24
	col4 := contentW * 0.24

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "Fecha", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Método", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, "Estado", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 5, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, v := range ventas {
		fecha := "-"
		if !v.Fecha.IsZero() {
			fecha = v.Fecha.Local().Format("02/01/2006 15:04")
		}
		pdf.CellFormat(col1, 5, fecha, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, model.EtiquetaMetodoPago(v.MetodoPago), "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, model.EtiquetaEstado(v.Estado), "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 5, "$"+v.Total.StringFixed(2), "", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "I", 7)
		for _, d := range v.Detalles {
			nombre := d.Nombre
			// Truncate long names
			if len([]rune(nombre)) > 50 {
				nombre = string([]rune(nombre)[:49]) + "…"
			}
			linea := fmt.Sprintf("%s x%d - $%s", nombre, d.Cantidad, d.PrecioUnitario.StringFixed(2))
			pdf.CellFormat(contentW, 4, "    "+linea, "", 1, "L", false, 0, "")
		}
		pdf.SetFont("Helvetica", "", 8)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
