package report

import (
	"github.com/shopspring/decimal"

	"dressify/internal/model"
)

// TotalesCarrito are the derived totals of a sale being registered. The
// backend stores its own figures after POST /sales; these exist so the client
// can show the breakdown before confirming.
type TotalesCarrito struct {
	Subtotal decimal.Decimal
	IVA      decimal.Decimal
	Total    decimal.Decimal
}

// CalcularTotales derives subtotal, 16% IVA and total from the line items,
// each figure rounded to 2 decimals the way the register screen does.
func CalcularTotales(detalles []model.VentaDetalle) TotalesCarrito {
	subtotal := decimal.Zero
	for _, d := range detalles {
		subtotal = subtotal.Add(d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))))
	}
	subtotal = subtotal.Round(2)
	iva := subtotal.Mul(model.TasaIVA).Round(2)
	return TotalesCarrito{
		Subtotal: subtotal,
		IVA:      iva,
		Total:    subtotal.Add(iva).Round(2),
	}
}
