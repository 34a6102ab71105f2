package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResponse_Taxonomia(t *testing.T) {
	tests := []struct {
		nombre string
		status int
		body   string
		want   string
	}{
		{"401 ignora el cuerpo", 401, `{"message":"Unauthenticated."}`, MsgNoAutorizado},
		{"403 ignora el cuerpo", 403, `{"message":"Forbidden."}`, MsgSinPermisos},
		{"message del servidor", 409, `{"message":"La venta ya fue cancelada"}`, "La venta ya fue cancelada"},
		{"detail del servidor", 404, `{"detail":"Venta no encontrada"}`, "Venta no encontrada"},
		{"sin cuerpo util", 500, `algo salió mal`, MsgGenerico},
		{"cuerpo vacio", 500, ``, MsgGenerico},
	}
	for _, tc := range tests {
		t.Run(tc.nombre, func(t *testing.T) {
			err := FromResponse(tc.status, []byte(tc.body))
			assert.Equal(t, tc.want, err.Error())
			assert.Equal(t, tc.status, err.Status)
		})
	}
}

func TestFromResponse_ErroresDeCampo(t *testing.T) {
	body := []byte(`{"message":"The given data was invalid.","errors":{
		"price":["El precio debe ser mayor a cero."],
		"email":["El correo ya está registrado."]
	}}`)

	err := FromResponse(http.StatusUnprocessableEntity, body)
	// primer mensaje de campo, con las llaves ordenadas para ser determinista
	assert.Equal(t, "El correo ya está registrado.", err.Error())
	require.Len(t, err.Fields, 2)
	assert.Equal(t, "El precio debe ser mayor a cero.", err.Fields["price"])
}

func TestFromResponse_ErroresDeCampoVacios(t *testing.T) {
	err := FromResponse(422, []byte(`{"message":"inválido","errors":{"price":[]}}`))
	assert.Equal(t, "inválido", err.Error())
	assert.Empty(t, err.Fields)
}

func TestFromTransport(t *testing.T) {
	causa := fmt.Errorf("dial tcp: connection refused")
	err := FromTransport(causa)

	assert.Equal(t, MsgSinConexion, err.Error())
	assert.Zero(t, err.Status)
	assert.ErrorIs(t, err, causa)
}

func TestPredicados(t *testing.T) {
	noAuth := fmt.Errorf("login: %w", FromResponse(401, nil))
	assert.True(t, EsNoAutorizado(noAuth))
	assert.False(t, EsSinPermisos(noAuth))

	sinPermiso := FromResponse(403, nil)
	assert.True(t, EsSinPermisos(sinPermiso))
	assert.False(t, EsNoAutorizado(sinPermiso))

	assert.False(t, EsNoAutorizado(errors.New("otro error")))
}
