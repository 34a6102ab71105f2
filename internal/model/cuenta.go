package model

import (
	"strings"
	"time"
)

// Roles canónicos usados para el despacho por rol.
// Rol: "admin" | "consultor" | "vendedor"
const (
	RolAdmin     = "admin"
	RolConsultor = "consultor"
	RolVendedor  = "vendedor"
)

// Cuenta is a backend account. Rol is kept RAW as served: navigation-style
// role checks must go through NormalizarRol, while the reports group by this
// raw string on purpose (see report.UsuariosPorRol).
type Cuenta struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"name"`
	Email     string    `json:"email"`
	Rol       string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizarRol collapses the role variants the backend has been seen to emit
// into the canonical set, case/whitespace-insensitive. "administrador" and
// "admin" are the same role. Unknown roles pass through lowercased.
func NormalizarRol(rol string) string {
	r := strings.ToLower(strings.TrimSpace(rol))
	switch r {
	case "admin", "administrador":
		return RolAdmin
	case "consultor":
		return RolConsultor
	case "vendedor":
		return RolVendedor
	default:
		return r
	}
}
