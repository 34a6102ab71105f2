package infra

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dressify/internal/model"
	"dressify/internal/report"
)

func TestGenerarReporteVentasPDF(t *testing.T) {
	ventas := []model.Venta{
		{
			ID:         "v1",
			Fecha:      time.Date(2024, 3, 5, 10, 30, 0, 0, time.Local),
			MetodoPago: model.MetodoTarjeta,
			Estado:     model.EstadoCompletada,
			Total:      decimal.RequireFromString("116.00"),
			Detalles: []model.VentaDetalle{
				{ProductoID: "p1", Nombre: "Blusa", Cantidad: 2, PrecioUnitario: decimal.RequireFromString("50.00")},
			},
		},
	}
	resumen := report.Resumir(ventas)

	dir := t.TempDir()
	ruta, err := GenerarReporteVentasPDF(resumen, ventas, "Marzo 2024", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ruta, dir))
	assert.True(t, strings.HasSuffix(ruta, ".pdf"))

	info, err := os.Stat(ruta)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500), "el PDF no quedó vacío")
}

func TestGenerarReporteVentasPDF_SinVentas(t *testing.T) {
	ruta, err := GenerarReporteVentasPDF(report.Resumir(nil), nil, "", t.TempDir())
	require.NoError(t, err)
	assert.FileExists(t, ruta)
}
