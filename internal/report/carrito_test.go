package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"dressify/internal/model"
)

func TestCalcularTotales_IVADieciseis(t *testing.T) {
	detalles := []model.VentaDetalle{
		{ProductoID: "p1", Cantidad: 2, PrecioUnitario: decimal.RequireFromString("50.00")},
		{ProductoID: "p2", Cantidad: 1, PrecioUnitario: decimal.RequireFromString("100.00")},
	}

	totales := CalcularTotales(detalles)
	assert.Equal(t, "200", totales.Subtotal.String())
	assert.Equal(t, "32", totales.IVA.String())
	assert.Equal(t, "232", totales.Total.String())
}

func TestCalcularTotales_RedondeoADosDecimales(t *testing.T) {
	detalles := []model.VentaDetalle{
		{ProductoID: "p1", Cantidad: 3, PrecioUnitario: decimal.RequireFromString("33.333")},
	}

	totales := CalcularTotales(detalles)
	assert.Equal(t, "100", totales.Subtotal.String())
	assert.Equal(t, "16", totales.IVA.String())
}

func TestCalcularTotales_CarritoVacio(t *testing.T) {
	totales := CalcularTotales(nil)
	assert.True(t, totales.Subtotal.IsZero())
	assert.True(t, totales.IVA.IsZero())
	assert.True(t, totales.Total.IsZero())
}
