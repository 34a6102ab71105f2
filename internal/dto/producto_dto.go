package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearProductoRequest creates a product via POST /products. When ImagenPath
// points at a local file the gateway sends multipart/form-data with the image
// attached; otherwise it sends plain JSON with null-able optionals.
type CrearProductoRequest struct {
	Nombre         string           `json:"name"           validate:"required,min=1,max=120"`
	Descripcion    string           `json:"description"`
	Precio         decimal.Decimal  `json:"price"          validate:"required"`
	PrecioOferta   *decimal.Decimal `json:"sale_price"     validate:"omitempty,min=0"`
	Stock          int              `json:"stock"          validate:"min=0"`
	Codigo         *string          `json:"code"`
	Marca          *string          `json:"brand"`
	CategoriaID    *string          `json:"category_id"`
	SubcategoriaID *string          `json:"subcategory_id"`
	Colores        []string         `json:"colors"`

	// ImagenPath is client-side only: local image file to upload.
	ImagenPath string `json:"-"`
}

type ActualizarProductoRequest struct {
	Nombre         *string          `json:"name,omitempty"        validate:"omitempty,min=1,max=120"`
	Descripcion    *string          `json:"description,omitempty"`
	Precio         *decimal.Decimal `json:"price,omitempty"`
	PrecioOferta   *decimal.Decimal `json:"sale_price,omitempty"  validate:"omitempty,min=0"`
	Stock          *int             `json:"stock,omitempty"       validate:"omitempty,min=0"`
	Codigo         *string          `json:"code,omitempty"`
	Marca          *string          `json:"brand,omitempty"`
	CategoriaID    *string          `json:"category_id,omitempty"`
	SubcategoriaID *string          `json:"subcategory_id,omitempty"`
}
