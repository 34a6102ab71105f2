package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"dressify/internal/dto"
	"dressify/internal/model"
)

var productosCmd = &cobra.Command{
	Use:   "productos",
	Short: "Catálogo de productos (rol admin)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		return requiereRol(model.RolAdmin)
	},
}

var productosListarCmd = &cobra.Command{
	Use:   "listar",
	Short: "Lista el catálogo completo",
	RunE: func(cmd *cobra.Command, args []string) error {
		productos, err := client.ListarProductos(cmd.Context(), cfg.PerPage)
		if err != nil {
			return err
		}
		for _, p := range productos {
			precio := "$" + p.Precio.StringFixed(2)
			if p.EnOferta() {
				precio = fmt.Sprintf("$%s (oferta: $%s)", p.Precio.StringFixed(2), p.PrecioOferta.StringFixed(2))
			}
			fmt.Printf("%s  %s  %s  stock=%d\n", p.ID, p.Nombre, precio, p.Stock)
		}
		return nil
	},
}

var (
	prodPrecio  string
	prodOferta  string
	prodStock   int
	prodDesc    string
	prodCodigo  string
	prodMarca   string
	prodCat     string
	prodSubcat  string
	prodColores []string
	prodImagen  string
)

var productosCrearCmd = &cobra.Command{
	Use:   "crear <nombre>",
	Short: "Crea un producto; con --imagen se envía multipart con el archivo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		precio, err := decimal.NewFromString(prodPrecio)
		if err != nil {
			return fmt.Errorf("precio inválido: %q", prodPrecio)
		}
		req := dto.CrearProductoRequest{
			Nombre:      args[0],
			Descripcion: prodDesc,
			Precio:      precio,
			Stock:       prodStock,
			Colores:     prodColores,
			ImagenPath:  prodImagen,
		}
		if prodOferta != "" {
			oferta, err := decimal.NewFromString(prodOferta)
			if err != nil {
				return fmt.Errorf("precio de oferta inválido: %q", prodOferta)
			}
			req.PrecioOferta = &oferta
		}
		if prodCodigo != "" {
			req.Codigo = &prodCodigo
		}
		if prodMarca != "" {
			req.Marca = &prodMarca
		}
		if prodCat != "" {
			req.CategoriaID = &prodCat
		}
		if prodSubcat != "" {
			req.SubcategoriaID = &prodSubcat
		}
		if err := client.CrearProducto(cmd.Context(), req); err != nil {
			return err
		}
		fmt.Println("Producto creado correctamente.")
		return nil
	},
}

var productosEditarCmd = &cobra.Command{
	Use:   "editar <producto-id>",
	Short: "Actualiza los campos indicados de un producto",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.ActualizarProductoRequest
		if cmd.Flags().Changed("nombre") {
			nombre, _ := cmd.Flags().GetString("nombre")
			req.Nombre = &nombre
		}
		if cmd.Flags().Changed("descripcion") {
			req.Descripcion = &prodDesc
		}
		if prodPrecio != "" {
			precio, err := decimal.NewFromString(prodPrecio)
			if err != nil {
				return fmt.Errorf("precio inválido: %q", prodPrecio)
			}
			req.Precio = &precio
		}
		if prodOferta != "" {
			oferta, err := decimal.NewFromString(prodOferta)
			if err != nil {
				return fmt.Errorf("precio de oferta inválido: %q", prodOferta)
			}
			req.PrecioOferta = &oferta
		}
		if cmd.Flags().Changed("stock") {
			req.Stock = &prodStock
		}
		if prodCodigo != "" {
			req.Codigo = &prodCodigo
		}
		if prodMarca != "" {
			req.Marca = &prodMarca
		}
		if prodCat != "" {
			req.CategoriaID = &prodCat
		}
		if prodSubcat != "" {
			req.SubcategoriaID = &prodSubcat
		}
		if err := client.ActualizarProducto(cmd.Context(), args[0], req); err != nil {
			return err
		}
		fmt.Println("Producto actualizado correctamente.")
		return nil
	},
}

var productosEliminarCmd = &cobra.Command{
	Use:   "eliminar <producto-id>",
	Short: "Elimina un producto del catálogo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.EliminarProducto(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Producto eliminado.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{productosCrearCmd, productosEditarCmd} {
		c.Flags().StringVar(&prodPrecio, "precio", "", "precio regular")
		c.Flags().StringVar(&prodOferta, "oferta", "", "precio promocional (vacío = sin oferta)")
		c.Flags().IntVar(&prodStock, "stock", 0, "existencias")
		c.Flags().StringVar(&prodDesc, "descripcion", "", "descripción")
		c.Flags().StringVar(&prodCodigo, "codigo", "", "SKU")
		c.Flags().StringVar(&prodMarca, "marca", "", "marca")
		c.Flags().StringVar(&prodCat, "categoria", "", "id de categoría")
		c.Flags().StringVar(&prodSubcat, "subcategoria", "", "id de subcategoría")
	}
	productosCrearCmd.Flags().StringSliceVar(&prodColores, "color", nil, "colores disponibles (repetible)")
	productosCrearCmd.Flags().StringVar(&prodImagen, "imagen", "", "ruta local de la imagen a subir")
	productosEditarCmd.Flags().String("nombre", "", "nombre nuevo")

	productosCmd.AddCommand(productosListarCmd, productosCrearCmd, productosEditarCmd, productosEliminarCmd)
}
