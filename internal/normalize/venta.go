package normalize

import (
	"encoding/json"

	"dressify/internal/model"
)

type ventaWire struct {
	ID         json.RawMessage `json:"id"`
	MongoID    json.RawMessage `json:"_id"`
	Fecha      string          `json:"date"`
	CreatedAt  string          `json:"created_at"`
	MetodoPago string          `json:"payment_method"`
	Estado     string          `json:"status"`
	Subtotal   json.RawMessage `json:"subtotal"`
	Total      json.RawMessage `json:"total"`
	Detalles   json.RawMessage `json:"details"`
}

type detalleWire struct {
	ProductoID  json.RawMessage `json:"product_id"`
	Nombre      string          `json:"name"`
	Cantidad    json.RawMessage `json:"quantity"`
	PrecioCamel json.RawMessage `json:"unitPrice"`
	PrecioSnake json.RawMessage `json:"unit_price"`
}

// Ventas decodes a /sales collection body into canonical sales.
func Ventas(raw []byte) []model.Venta {
	items := ExtractList(raw, "sales")
	ventas := make([]model.Venta, 0, len(items))
	for _, item := range items {
		if v, ok := venta(item); ok {
			ventas = append(ventas, v)
		}
	}
	return ventas
}

// Venta decodes a single sale, unwrapping the { data: {...} } envelope.
func Venta(raw []byte) (model.Venta, bool) {
	return venta(ExtractDoc(raw))
}

func venta(raw json.RawMessage) (model.Venta, bool) {
	var w ventaWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return model.Venta{}, false
	}
	fecha := Fecha(w.Fecha)
	if fecha.IsZero() {
		fecha = Fecha(w.CreatedAt)
	}
	return model.Venta{
		ID:         primerID(w.ID, w.MongoID),
		Fecha:      fecha,
		MetodoPago: w.MetodoPago,
		Estado:     w.Estado,
		Subtotal:   Monto(w.Subtotal),
		Total:      Monto(w.Total),
		Detalles:   detalles(w.Detalles),
	}, true
}

// detalles decodes the line items of a sale. Older backend rows store the
// details column as a JSON-encoded STRING instead of an array, so a string
// value is unwrapped and decoded again; anything still undecodable is an
// empty list.
func detalles(raw json.RawMessage) []model.VentaDetalle {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		raw = []byte(s)
	}
	var items []detalleWire
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]model.VentaDetalle, 0, len(items))
	for _, d := range items {
		precio := d.PrecioCamel
		if len(precio) == 0 {
			precio = d.PrecioSnake
		}
		out = append(out, model.VentaDetalle{
			ProductoID:     ID(d.ProductoID),
			Nombre:         d.Nombre,
			Cantidad:       Entero(d.Cantidad),
			PrecioUnitario: Monto(precio),
		})
	}
	return out
}
