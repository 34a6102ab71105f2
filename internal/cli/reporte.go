package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dressify/internal/infra"
	"dressify/internal/model"
	"dressify/internal/report"
)

var reporteCmd = &cobra.Command{
	Use:   "reporte",
	Short: "Reportes de ventas, productos y usuarios (rol consultor o admin)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		return requiereRol(model.RolConsultor, model.RolAdmin)
	},
}

var (
	repHoy  bool
	repMes  int
	repAnio int
	repPDF  string
)

var reporteVentasCmd = &cobra.Command{
	Use:   "ventas",
	Short: "Reporte de ventas con filtros de periodo",
	RunE: func(cmd *cobra.Command, args []string) error {
		ventas, err := client.TodasLasVentas(cmd.Context(), cfg.PerPage)
		if err != nil {
			return err
		}

		criterios := report.Criterios{Hoy: repHoy, Mes: repMes, Anio: repAnio}
		filtradas := report.FiltrarVentas(ventas, criterios, time.Now())
		resumen := report.Resumir(filtradas)

		fmt.Printf("No. total de ventas: %d\n", resumen.NumVentas)
		fmt.Printf("Total monetario: $%s\n", resumen.TotalMonetario.StringFixed(2))

		fmt.Println("\nProductos más vendidos:")
		for _, p := range resumen.TopProductos {
			fmt.Printf("  %d pz  %s\n", p.Cantidad, p.Nombre)
		}

		fmt.Println("\nHistorial de ventas:")
		historial := report.OrdenarPorFechaDesc(filtradas)
		if len(historial) == 0 {
			if repHoy {
				fmt.Println("  No hay ventas registradas hoy")
			} else {
				fmt.Println("  No se encontraron ventas con los filtros seleccionados")
			}
		}
		for _, v := range historial {
			imprimirVenta(&v)
		}

		if repPDF != "" {
			ruta, err := infra.GenerarReporteVentasPDF(resumen, historial, etiquetaPeriodo(criterios), repPDF)
			if err != nil {
				return err
			}
			fmt.Println("\nPDF generado en", ruta)
		}
		return nil
	},
}

var reporteProductosCmd = &cobra.Command{
	Use:   "productos",
	Short: "Reporte de productos por categoría",
	RunE: func(cmd *cobra.Command, args []string) error {
		productos, err := client.ListarProductos(cmd.Context(), cfg.PerPage)
		if err != nil {
			return err
		}

		fmt.Printf("No. total de productos: %d\n", len(productos))
		if reciente := report.ProductoMasReciente(productos); reciente != nil {
			fmt.Printf("Recién agregado: %s\n", reciente.Nombre)
		}
		fmt.Println("\nProductos por categoría:")
		for _, c := range report.ProductosPorCategoria(productos) {
			fmt.Printf("  %d  %s\n", c.Productos, c.Nombre)
		}
		return nil
	},
}

var reporteUsuariosCmd = &cobra.Command{
	Use:   "usuarios",
	Short: "Reporte de usuarios por rol",
	RunE: func(cmd *cobra.Command, args []string) error {
		cuentas, err := client.ListarCuentas(cmd.Context(), cfg.PerPage)
		if err != nil {
			return err
		}

		fmt.Printf("No. total de usuarios: %d\n", len(cuentas))
		if reciente := report.UsuarioMasReciente(cuentas); reciente != nil {
			fmt.Printf("Recién agregado: %s\n", reciente.Nombre)
		}
		fmt.Println("\nUsuarios por rol:")
		for _, r := range report.UsuariosPorRol(cuentas) {
			fmt.Printf("  %d  %s\n", r.Cuentas, r.Rol)
		}
		return nil
	},
}

var reporteHomeCmd = &cobra.Command{
	Use:   "home",
	Short: "Resumen del mes actual contra el anterior",
	RunE: func(cmd *cobra.Command, args []string) error {
		ventas, err := client.TodasLasVentas(cmd.Context(), cfg.PerPage)
		if err != nil {
			return err
		}
		productos, err := client.ListarProductos(cmd.Context(), cfg.PerPage)
		if err != nil {
			return err
		}
		cuentas, err := client.ListarCuentas(cmd.Context(), cfg.PerPage)
		if err != nil {
			return err
		}

		comparativa := report.ResumenMensual(ventas, time.Now())
		fmt.Printf("Ventas de este mes: $%s\n", comparativa.MesActual.StringFixed(2))
		fmt.Printf("Ventas del mes anterior: $%s\n", comparativa.MesAnterior.StringFixed(2))
		fmt.Printf("Número de usuarios: %d\n", len(cuentas))
		fmt.Printf("Productos en venta: %d\n", len(productos))
		return nil
	},
}

func etiquetaPeriodo(c report.Criterios) string {
	switch {
	case c.Hoy:
		return "hoy"
	case c.Mes != 0 && c.Anio != 0:
		return fmt.Sprintf("%02d/%d", c.Mes, c.Anio)
	case c.Mes != 0:
		return fmt.Sprintf("%02d/%d", c.Mes, time.Now().Year())
	case c.Anio != 0:
		return fmt.Sprintf("%d", c.Anio)
	default:
		return ""
	}
}

func init() {
	reporteVentasCmd.Flags().BoolVar(&repHoy, "hoy", false, "solo las ventas de hoy")
	reporteVentasCmd.Flags().IntVar(&repMes, "mes", 0, "mes 1-12 (sin --anio usa el año en curso)")
	reporteVentasCmd.Flags().IntVar(&repAnio, "anio", 0, "año")
	reporteVentasCmd.Flags().StringVar(&repPDF, "pdf", "", "directorio donde generar el reporte en PDF")

	reporteCmd.AddCommand(reporteHomeCmd, reporteVentasCmd, reporteProductosCmd, reporteUsuariosCmd)
}
