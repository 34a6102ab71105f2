// Package session holds the authenticated state of the client. A Session is
// an immutable value: login produces a new one, logout discards it — nothing
// here mutates shared HTTP client defaults.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dressify/internal/model"
)

// Session is the result of a successful POST /login: the bearer token plus
// the account profile the server returned with it.
type Session struct {
	Token     string       `json:"token"`
	Cuenta    model.Cuenta `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
}

// Vacia reports whether there is no signed-in session.
func (s Session) Vacia() bool { return s.Token == "" }

// Rol is the canonical role used for command gating.
func (s Session) Rol() string { return model.NormalizarRol(s.Cuenta.Rol) }

// Expirada inspects the token's exp claim (unverified — the client holds no
// signing key) to report a stale session before wasting a request on a 401.
// Tokens that are not JWTs, or carry no exp, are treated as opaque and
// non-expiring; the backend remains the authority either way.
func (s Session) Expirada(ahora time.Time) bool {
	if s.Vacia() {
		return true
	}
	token, _, err := jwt.NewParser().ParseUnverified(s.Token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return ahora.After(exp.Time)
}
