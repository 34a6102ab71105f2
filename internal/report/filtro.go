// Package report is the client-side reporting engine: pure filtering,
// grouping and derived-total computation over collections already fetched
// from the backend. Everything here is deterministic and side-effect free —
// the screens re-run it in full on every state change.
package report

import (
	"sort"
	"time"

	"dressify/internal/model"
)

// Criterios selects one of the mutually exclusive filter modes for
// FiltrarVentas. Mes is 1-indexed (1=enero .. 12=diciembre); 0 means unset.
// Anio 0 means unset. Hoy takes precedence over both.
type Criterios struct {
	Hoy  bool
	Mes  int
	Anio int
}

// FiltrarVentas returns the subset of ventas matching the criteria, resolved
// by precedence:
//
//  1. Hoy — same local calendar day as ahora; Mes/Anio ignored.
//  2. Mes sin Anio — that month of ahora's year (NOT the sale's own year).
//  3. Mes y Anio — exactly that month+year.
//  4. Solo Anio — anywhere in that year.
//  5. Nothing set — all sales pass.
//
// Dates are compared as local calendar dates, never UTC, so sales stamped
// near midnight land on the correct day.
func FiltrarVentas(ventas []model.Venta, c Criterios, ahora time.Time) []model.Venta {
	var pasa func(t time.Time) bool

	switch {
	case c.Hoy:
		y, m, d := ahora.Date()
		pasa = func(t time.Time) bool {
			ty, tm, td := t.Local().Date()
			return ty == y && tm == m && td == d
		}
	case c.Mes != 0 && c.Anio == 0:
		anioActual := ahora.Year()
		pasa = func(t time.Time) bool {
			tl := t.Local()
			return int(tl.Month()) == c.Mes && tl.Year() == anioActual
		}
	case c.Mes != 0 && c.Anio != 0:
		pasa = func(t time.Time) bool {
			tl := t.Local()
			return int(tl.Month()) == c.Mes && tl.Year() == c.Anio
		}
	case c.Anio != 0:
		pasa = func(t time.Time) bool {
			return t.Local().Year() == c.Anio
		}
	default:
		return ventas
	}

	resultado := make([]model.Venta, 0, len(ventas))
	for _, v := range ventas {
		if pasa(v.Fecha) {
			resultado = append(resultado, v)
		}
	}
	return resultado
}

// ExcluirCanceladas drops cancelled sales. Cancellation only affects display
// labels everywhere else — revenue sums include cancelled sales unless the
// caller applies this step explicitly.
func ExcluirCanceladas(ventas []model.Venta) []model.Venta {
	resultado := make([]model.Venta, 0, len(ventas))
	for _, v := range ventas {
		if !v.Cancelada() {
			resultado = append(resultado, v)
		}
	}
	return resultado
}

// OrdenarPorFechaDesc returns a copy sorted newest-first, the order the sale
// history list is rendered in.
func OrdenarPorFechaDesc(ventas []model.Venta) []model.Venta {
	out := make([]model.Venta, len(ventas))
	copy(out, ventas)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Fecha.After(out[j].Fecha)
	})
	return out
}
