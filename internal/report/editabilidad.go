package report

import "time"

// VentanaEdicion is how long after creation a sale may still be modified.
// Past it the sale is locked for good — there is no way back.
const VentanaEdicion = 10 * time.Minute

// Editabilidad is the two-state edit window of a sale, derived purely from
// elapsed time — no persisted field backs it.
type Editabilidad int

const (
	Editable Editabilidad = iota
	Bloqueada
)

func (e Editabilidad) String() string {
	if e == Bloqueada {
		return "bloqueada"
	}
	return "editable"
}

// CalcularEditabilidad evaluates the edit window at screen-entry time.
// The boundary is inclusive: elapsed == VentanaEdicion is still Editable.
//
// A zero fecha (unparseable date upstream) skips the check and returns
// Editable. That permissive default mirrors the app as shipped; flagged as a
// possible policy gap, pending confirmation before flipping it to Bloqueada.
func CalcularEditabilidad(fecha, ahora time.Time) Editabilidad {
	if fecha.IsZero() {
		return Editable
	}
	if ahora.Sub(fecha) <= VentanaEdicion {
		return Editable
	}
	return Bloqueada
}
