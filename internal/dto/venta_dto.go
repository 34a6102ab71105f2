package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// DetalleVentaRequest is one cart line sent to POST /sales. The backend
// resolves the price server-side; the client only sends product + quantity.
type DetalleVentaRequest struct {
	ProductoID string `json:"product_id" validate:"required"`
	Cantidad   int    `json:"quantity"   validate:"required,min=1,max=9999"`
}

type CrearVentaRequest struct {
	MetodoPago string                `json:"payment_method" validate:"required,oneof=cash card transfer"`
	Detalles   []DetalleVentaRequest `json:"details"        validate:"required,min=1,dive"`
}

// ActualizarVentaRequest replaces the sale's method and line items via
// POST /sales/{id}. Only valid inside the 10-minute edit window.
type ActualizarVentaRequest struct {
	MetodoPago string                `json:"payment_method" validate:"required,oneof=cash card transfer"`
	Detalles   []DetalleVentaRequest `json:"details"        validate:"required,min=1,dive"`
}

// ─── Filter / List ──────────────────────────────────────────────────────────

// VentasQuery maps to the query string of GET /sales. These are the
// SERVER-side filters of the history screen — unrelated to the client-side
// report filtering in internal/report.
type VentasQuery struct {
	Page       int    `validate:"min=0"`
	PerPage    int    `validate:"min=0"`
	DateFrom   string `validate:"omitempty,datetime=2006-01-02"`
	DateTo     string `validate:"omitempty,datetime=2006-01-02"`
	ProductoID string
}
