// Package apierror translates backend failures into the fixed set of
// user-facing messages the app surfaces. Every gateway error goes through
// this package to ensure the taxonomy is applied consistently and internal
// details (raw bodies, transport errors) never reach the screen verbatim.
package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
)

// Mensajes fijos de la taxonomía (es-MX).
const (
	MsgNoAutorizado = "No autorizado. Inicia sesión de nuevo."
	MsgSinPermisos  = "No tienes permisos para realizar esta acción."
	MsgGenerico     = "No se pudo completar la operación."
	MsgSinConexion  = "No se pudo conectar con el servidor."
)

// APIError is a backend (or transport) failure already mapped to its
// user-facing message. Status is 0 for transport-level failures.
type APIError struct {
	Status int
	Detail string
	Fields map[string]string
	cause  error
}

func (e *APIError) Error() string { return e.Detail }

// Unwrap exposes the transport-level cause, when there is one, for logging.
func (e *APIError) Unwrap() error { return e.cause }

// errorBody covers the error envelopes the backend emits: a plain message
// ({message} or {detail}) and Laravel-style field errors ({errors:{f:[..]}}).
type errorBody struct {
	Message string              `json:"message"`
	Detail  string              `json:"detail"`
	Errors  map[string][]string `json:"errors"`
}

// FromResponse maps a non-2xx response to the taxonomy:
// 401 → sign in again, 403 → no permission, 4xx with field errors → first
// field-level message verbatim, anything else → the server message when one
// exists, or the generic fallback.
func FromResponse(status int, body []byte) *APIError {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)

	apiErr := &APIError{Status: status, Detail: MsgGenerico}

	switch status {
	case http.StatusUnauthorized:
		apiErr.Detail = MsgNoAutorizado
		return apiErr
	case http.StatusForbidden:
		apiErr.Detail = MsgSinPermisos
		return apiErr
	}

	if len(eb.Errors) > 0 {
		apiErr.Fields = make(map[string]string, len(eb.Errors))
		campos := make([]string, 0, len(eb.Errors))
		for campo, msgs := range eb.Errors {
			if len(msgs) > 0 {
				apiErr.Fields[campo] = msgs[0]
				campos = append(campos, campo)
			}
		}
		// first field-level message, deterministic across map iteration order
		sort.Strings(campos)
		if len(campos) > 0 {
			apiErr.Detail = apiErr.Fields[campos[0]]
			return apiErr
		}
	}

	switch {
	case eb.Message != "":
		apiErr.Detail = eb.Message
	case eb.Detail != "":
		apiErr.Detail = eb.Detail
	}
	return apiErr
}

// FromTransport wraps a network/timeout failure. The cause stays reachable
// via errors.Unwrap for logging; the user only ever sees MsgSinConexion.
func FromTransport(err error) *APIError {
	return &APIError{Status: 0, Detail: MsgSinConexion, cause: err}
}

// EsNoAutorizado reports whether err is the stale/invalid-token case.
func EsNoAutorizado(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// EsSinPermisos reports whether err is the insufficient-role case.
func EsSinPermisos(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden
}
