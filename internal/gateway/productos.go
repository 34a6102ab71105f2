package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"dressify/internal/dto"
	"dressify/internal/model"
	"dressify/internal/normalize"
)

func (c *Client) ListarProductos(ctx context.Context, perPage int) ([]model.Producto, error) {
	if perPage <= 0 {
		perPage = 1000
	}
	q := url.Values{"per_page": {strconv.Itoa(perPage)}}
	body, err := c.do(ctx, http.MethodGet, "/products", q, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Productos(body), nil
}

// ListarNombresProductos fetches the lightweight name index used to populate
// the product filter of the sales history.
func (c *Client) ListarNombresProductos(ctx context.Context) ([]model.ProductoNombre, error) {
	body, err := c.do(ctx, http.MethodGet, "/products/names", nil, nil)
	if err != nil {
		return nil, err
	}
	return normalize.ProductoNombres(body), nil
}

// CrearProducto creates a product: multipart/form-data when an image file is
// attached, plain JSON otherwise — the backend expects exactly those two shapes.
func (c *Client) CrearProducto(ctx context.Context, req dto.CrearProductoRequest) error {
	if err := dto.Validar(req); err != nil {
		return err
	}
	if req.ImagenPath == "" {
		_, err := c.do(ctx, http.MethodPost, "/products", nil, req)
		return err
	}
	return c.crearProductoMultipart(ctx, req)
}

func (c *Client) crearProductoMultipart(ctx context.Context, req dto.CrearProductoRequest) error {
	file, err := os.Open(req.ImagenPath)
	if err != nil {
		return fmt.Errorf("gateway: abrir imagen: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	campos := map[string]string{
		"name":        req.Nombre,
		"description": req.Descripcion,
		"price":       req.Precio.String(),
		"stock":       strconv.Itoa(req.Stock),
	}
	if req.PrecioOferta != nil {
		campos["sale_price"] = req.PrecioOferta.String()
	}
	if req.Codigo != nil && *req.Codigo != "" {
		campos["code"] = *req.Codigo
	}
	if req.Marca != nil && *req.Marca != "" {
		campos["brand"] = *req.Marca
	}
	if req.CategoriaID != nil && *req.CategoriaID != "" {
		campos["category_id"] = *req.CategoriaID
	}
	if req.SubcategoriaID != nil && *req.SubcategoriaID != "" {
		campos["subcategory_id"] = *req.SubcategoriaID
	}
	for campo, valor := range campos {
		if err := w.WriteField(campo, valor); err != nil {
			return fmt.Errorf("gateway: multipart field %s: %w", campo, err)
		}
	}
	for i, color := range req.Colores {
		if err := w.WriteField(fmt.Sprintf("colors[%d]", i), color); err != nil {
			return fmt.Errorf("gateway: multipart color: %w", err)
		}
	}

	part, err := w.CreateFormFile("image", filepath.Base(req.ImagenPath))
	if err != nil {
		return fmt.Errorf("gateway: multipart image: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("gateway: copiar imagen: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gateway: cerrar multipart: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/products", nil), &buf)
	if err != nil {
		return fmt.Errorf("gateway: create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", w.FormDataContentType())
	_, err = c.send(httpReq)
	return err
}

func (c *Client) ActualizarProducto(ctx context.Context, id string, req dto.ActualizarProductoRequest) error {
	if err := dto.Validar(req); err != nil {
		return err
	}
	_, err := c.do(ctx, http.MethodPut, "/products/"+id, nil, req)
	return err
}

func (c *Client) EliminarProducto(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/products/"+id, nil, nil)
	return err
}
