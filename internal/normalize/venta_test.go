package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVentas_DecodificaColeccion(t *testing.T) {
	body := []byte(`{"data":[
		{"_id":{"$oid":"507f191e810c19729de860ea"},"date":"2024-03-05T10:30:00Z",
		 "payment_method":"cash","status":"completed","subtotal":"100.00","total":116,
		 "details":[{"product_id":"p1","name":"Blusa","quantity":2,"unitPrice":"50.00"}]},
		{"id":"v2","created_at":"2024-03-06 09:00:00","payment_method":"card",
		 "status":"cancelled","total":"58.00"}
	]}`)

	ventas := Ventas(body)
	require.Len(t, ventas, 2)

	v := ventas[0]
	assert.Equal(t, "507f191e810c19729de860ea", v.ID)
	assert.Equal(t, time.March, v.Fecha.Month())
	assert.Equal(t, "116", v.Total.String())
	require.Len(t, v.Detalles, 1)
	assert.Equal(t, "p1", v.Detalles[0].ProductoID)
	assert.Equal(t, 2, v.Detalles[0].Cantidad)
	assert.Equal(t, "50", v.Detalles[0].PrecioUnitario.String())

	// date missing → created_at fallback
	assert.Equal(t, 6, ventas[1].Fecha.Day())
	assert.True(t, ventas[1].Cancelada())
}

func TestVenta_DetallesComoCadenaJSON(t *testing.T) {
	body := []byte(`{"data":{"id":"v1","date":"2024-03-05",
		"details":"[{\"product_id\":\"p9\",\"name\":\"Falda\",\"quantity\":\"3\",\"unit_price\":120.5}]"}}`)

	v, ok := Venta(body)
	require.True(t, ok)
	require.Len(t, v.Detalles, 1)
	assert.Equal(t, "p9", v.Detalles[0].ProductoID)
	assert.Equal(t, 3, v.Detalles[0].Cantidad)
	assert.Equal(t, "120.5", v.Detalles[0].PrecioUnitario.String())
}

func TestVenta_UnitPriceCamelTienePrioridad(t *testing.T) {
	body := []byte(`{"id":"v1","details":[{"product_id":"p1","quantity":1,"unitPrice":"10","unit_price":"99"}]}`)
	v, ok := Venta(body)
	require.True(t, ok)
	assert.Equal(t, "10", v.Detalles[0].PrecioUnitario.String())
}

func TestVenta_DetallesIrrecuperablesQuedanVacios(t *testing.T) {
	v, ok := Venta([]byte(`{"id":"v1","details":"no es json"}`))
	require.True(t, ok)
	assert.Empty(t, v.Detalles)
}
