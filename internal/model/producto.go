package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoriaRef is the category a product belongs to. Some backend responses
// carry the full object, others only a category_id — in the latter case
// Nombre falls back to the id itself.
type CategoriaRef struct {
	ID     string
	Nombre string
}

// Producto is the canonical product record.
// PrecioOferta nil means "sin oferta"; a stored 0 is a valid (free) offer,
// which is why the field is a pointer and never collapsed to zero.
type Producto struct {
	ID           string
	Nombre       string
	Descripcion  string
	Precio       decimal.Decimal
	PrecioOferta *decimal.Decimal
	Stock        int
	Codigo       string
	Marca        string
	ImagenPath   string
	Categoria    *CategoriaRef
	Subcategoria *CategoriaRef
	CreatedAt    time.Time
}

// ProductoNombre is the lightweight entry returned by GET /products/names,
// used to populate sale filters without fetching full product records.
type ProductoNombre struct {
	ID     string
	Nombre string
}

// EnOferta reports whether the product must be displayed as "on offer":
// a promotional price exists and is strictly below the regular price.
func (p *Producto) EnOferta() bool {
	return p.PrecioOferta != nil && p.PrecioOferta.LessThan(p.Precio)
}

// PrecioVigente is the unit price used when adding the product to a new sale:
// the promotional price when one is set above zero, the regular price otherwise.
// Note that this is deliberately looser than EnOferta — the register flow in the
// app picks sale_price whenever it is > 0, without comparing against Precio.
func (p *Producto) PrecioVigente() decimal.Decimal {
	if p.PrecioOferta != nil && p.PrecioOferta.GreaterThan(decimal.Zero) {
		return *p.PrecioOferta
	}
	return p.Precio
}
