package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado de una venta.
// Estado: "completed" | "cancelled"
// La cancelación es terminal: una venta cancelada nunca vuelve a "completed".
const (
	EstadoCompletada = "completed"
	EstadoCancelada  = "cancelled"
)

// Métodos de pago aceptados por el backend.
const (
	MetodoEfectivo      = "cash"
	MetodoTarjeta       = "card"
	MetodoTransferencia = "transfer"
)

// TasaIVA es el IVA aplicado al registrar una venta (16%).
// El backend no devuelve el impuesto desglosado: total ≈ subtotal + subtotal*TasaIVA,
// así que el desglose se recalcula del lado del cliente.
var TasaIVA = decimal.NewFromFloat(0.16)

// Venta is a read-only snapshot of a transaction as served by the backend.
// Subtotal and Total are authoritative as stored — they may include
// adjustments not visible in Detalles, so they are never recomputed here.
type Venta struct {
	ID         string
	Fecha      time.Time
	MetodoPago string
	Estado     string
	Subtotal   decimal.Decimal
	Total      decimal.Decimal
	Detalles   []VentaDetalle
}

// VentaDetalle is one line item of a sale. ProductoID is a weak reference:
// the product may have been deleted after the sale, which is why Nombre and
// PrecioUnitario are denormalized snapshots taken at sale time.
type VentaDetalle struct {
	ProductoID     string
	Nombre         string
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// Cancelada reports whether the sale reached its terminal state.
func (v *Venta) Cancelada() bool { return v.Estado == EstadoCancelada }

// EtiquetaMetodoPago returns the es-MX display label for a payment method.
// Unknown methods are shown as-is.
func EtiquetaMetodoPago(metodo string) string {
	switch metodo {
	case MetodoEfectivo:
		return "Efectivo"
	case MetodoTarjeta:
		return "Tarjeta de crédito"
	case MetodoTransferencia:
		return "Transferencia"
	default:
		return metodo
	}
}

// EtiquetaEstado returns the es-MX display label for a sale status.
func EtiquetaEstado(estado string) string {
	switch estado {
	case EstadoCompletada:
		return "Completado"
	case EstadoCancelada:
		return "Cancelado"
	default:
		return estado
	}
}
