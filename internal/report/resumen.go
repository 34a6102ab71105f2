package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"dressify/internal/model"
)

// MaxTopProductos is how many entries the "productos más vendidos" ranking shows.
const MaxTopProductos = 3

// ProductoVendido is one entry of the top-products ranking.
type ProductoVendido struct {
	ProductoID string
	Nombre     string
	Cantidad   int
}

// ResumenVentas are the derived statistics of a sales collection.
type ResumenVentas struct {
	NumVentas      int
	TotalMonetario decimal.Decimal
	TopProductos   []ProductoVendido
}

// Resumir computes the summary widgets of the sales report over whatever
// collection it is handed (filtered or not — the caller decides).
//
// TotalMonetario sums each sale's stored Total. It is NOT recomputed from the
// line items: totals may carry adjustments that never appear in Detalles, so
// the stored value is the trust boundary.
func Resumir(ventas []model.Venta) ResumenVentas {
	return ResumenVentas{
		NumVentas:      len(ventas),
		TotalMonetario: sumarTotales(ventas),
		TopProductos:   TopProductos(ventas, MaxTopProductos),
	}
}

// TopProductos flattens every sale's line items, sums quantities per product
// id and returns the n best sellers, descending. Ties keep first-encountered
// order (stable sort), and the denormalized name of the first occurrence wins
// even if the product was deleted afterwards.
func TopProductos(ventas []model.Venta, n int) []ProductoVendido {
	idx := make(map[string]int)
	acumulado := make([]ProductoVendido, 0)
	for _, v := range ventas {
		for _, d := range v.Detalles {
			i, ok := idx[d.ProductoID]
			if !ok {
				i = len(acumulado)
				idx[d.ProductoID] = i
				acumulado = append(acumulado, ProductoVendido{
					ProductoID: d.ProductoID,
					Nombre:     d.Nombre,
				})
			}
			acumulado[i].Cantidad += d.Cantidad
		}
	}

	sort.SliceStable(acumulado, func(i, j int) bool {
		return acumulado[i].Cantidad > acumulado[j].Cantidad
	})
	if len(acumulado) > n {
		acumulado = acumulado[:n]
	}
	return acumulado
}

func sumarTotales(ventas []model.Venta) decimal.Decimal {
	total := decimal.Zero
	for _, v := range ventas {
		total = total.Add(v.Total)
	}
	return total
}
