package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dressify/internal/dto"
	"dressify/internal/model"
	"dressify/internal/report"
)

var ventasCmd = &cobra.Command{
	Use:   "ventas",
	Short: "Historial y registro de ventas (rol vendedor o admin)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		return requiereRol(model.RolVendedor, model.RolAdmin)
	},
}

var (
	ventasDesde    string
	ventasHasta    string
	ventasProducto string
	ventasPagina   int
)

var ventasListarCmd = &cobra.Command{
	Use:   "listar",
	Short: "Lista el historial de ventas, opcionalmente filtrado en el servidor",
	RunE: func(cmd *cobra.Command, args []string) error {
		pagina, err := client.ListarVentas(cmd.Context(), dto.VentasQuery{
			Page:       ventasPagina,
			PerPage:    10,
			DateFrom:   ventasDesde,
			DateTo:     ventasHasta,
			ProductoID: ventasProducto,
		})
		if err != nil {
			return err
		}

		if len(pagina.Ventas) == 0 {
			fmt.Println("No se encontraron ventas con los filtros seleccionados")
			return nil
		}
		for _, v := range pagina.Ventas {
			imprimirVenta(&v)
		}
		fmt.Printf("Página %d de %d\n", pagina.Page, pagina.LastPage)
		return nil
	},
}

// parseDetalles turns "productoID:cantidad" pairs into line items.
func parseDetalles(args []string) ([]dto.DetalleVentaRequest, error) {
	detalles := make([]dto.DetalleVentaRequest, 0, len(args))
	for _, arg := range args {
		id, cantidadStr, ok := strings.Cut(arg, ":")
		cantidad := 1
		if ok {
			n, err := strconv.Atoi(cantidadStr)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("cantidad inválida en %q", arg)
			}
			cantidad = n
		}
		detalles = append(detalles, dto.DetalleVentaRequest{ProductoID: id, Cantidad: cantidad})
	}
	return detalles, nil
}

// Cada comando lleva su propia variable: pflag escribe el default al
// registrar, y compartirla haría que el registro de editar pise el
// default "cash" de crear.
var (
	ventasCrearMetodo  string
	ventasEditarMetodo string
)

var ventasCrearCmd = &cobra.Command{
	Use:   "crear <producto:cantidad> [producto:cantidad...]",
	Short: "Registra una venta nueva",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detalles, err := parseDetalles(args)
		if err != nil {
			return err
		}

		// Totales mostrados antes de confirmar; el backend calcula los suyos.
		productos, err := client.ListarProductos(cmd.Context(), cfg.PerPage)
		if err != nil {
			return err
		}
		porID := make(map[string]*model.Producto, len(productos))
		for i := range productos {
			porID[productos[i].ID] = &productos[i]
		}
		lineas := make([]model.VentaDetalle, 0, len(detalles))
		for _, d := range detalles {
			p, ok := porID[d.ProductoID]
			if !ok {
				return fmt.Errorf("producto %s no encontrado", d.ProductoID)
			}
			lineas = append(lineas, model.VentaDetalle{
				ProductoID:     p.ID,
				Nombre:         p.Nombre,
				Cantidad:       d.Cantidad,
				PrecioUnitario: p.PrecioVigente(),
			})
		}
		totales := report.CalcularTotales(lineas)

		if err := client.CrearVenta(cmd.Context(), dto.CrearVentaRequest{
			MetodoPago: ventasCrearMetodo,
			Detalles:   detalles,
		}); err != nil {
			return err
		}

		fmt.Println("Venta creada correctamente.")
		fmt.Printf("Subtotal: $%s  IVA: $%s  Total: $%s\n",
			totales.Subtotal.StringFixed(2), totales.IVA.StringFixed(2), totales.Total.StringFixed(2))
		return nil
	},
}

var ventasEditarCmd = &cobra.Command{
	Use:   "editar <venta-id> <producto:cantidad> [producto:cantidad...]",
	Short: "Modifica una venta dentro de los primeros 10 minutos",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		venta, err := client.ObtenerVenta(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		// Política de la pantalla de edición: la ventana se evalúa al entrar.
		if report.CalcularEditabilidad(venta.Fecha, time.Now()) == report.Bloqueada {
			return fmt.Errorf("tiempo vencido: solo puedes modificar una venta durante los primeros %d minutos", int(report.VentanaEdicion.Minutes()))
		}

		detalles, err := parseDetalles(args[1:])
		if err != nil {
			return err
		}
		metodo := ventasEditarMetodo
		if metodo == "" {
			metodo = venta.MetodoPago
		}
		if err := client.ActualizarVenta(cmd.Context(), venta.ID, dto.ActualizarVentaRequest{
			MetodoPago: metodo,
			Detalles:   detalles,
		}); err != nil {
			return err
		}
		fmt.Println("Venta actualizada correctamente.")
		return nil
	},
}

var ventasCancelarCmd = &cobra.Command{
	Use:   "cancelar <venta-id>",
	Short: "Cancela una venta (estado terminal, no se puede revertir)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.CancelarVenta(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Venta cancelada.")
		return nil
	},
}

func imprimirVenta(v *model.Venta) {
	fecha := "-"
	if !v.Fecha.IsZero() {
		fecha = v.Fecha.Local().Format("02/01/2006 15:04")
	}
	fmt.Printf("%s  %s  %s  $%s\n", v.ID, fecha, model.EtiquetaEstado(v.Estado), v.Total.StringFixed(2))
	for _, d := range v.Detalles {
		fmt.Printf("    %s x%d - $%s\n", d.Nombre, d.Cantidad, d.PrecioUnitario.StringFixed(2))
	}
}

func init() {
	ventasListarCmd.Flags().StringVar(&ventasDesde, "desde", "", "fecha inicial (YYYY-MM-DD)")
	ventasListarCmd.Flags().StringVar(&ventasHasta, "hasta", "", "fecha final (YYYY-MM-DD)")
	ventasListarCmd.Flags().StringVar(&ventasProducto, "producto", "", "filtrar por producto")
	ventasListarCmd.Flags().IntVar(&ventasPagina, "pagina", 1, "página a cargar")

	ventasCrearCmd.Flags().StringVar(&ventasCrearMetodo, "metodo", model.MetodoEfectivo, "método de pago: cash | card | transfer")
	ventasEditarCmd.Flags().StringVar(&ventasEditarMetodo, "metodo", "", "método de pago: cash | card | transfer")

	ventasCmd.AddCommand(ventasListarCmd, ventasCrearCmd, ventasEditarCmd, ventasCancelarCmd)
}
