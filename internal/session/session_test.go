package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dressify/internal/model"
)

func tokenConExp(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	firmado, err := tok.SignedString([]byte("clave-de-prueba"))
	require.NoError(t, err)
	return firmado
}

func TestSessionVaciaYRol(t *testing.T) {
	var s Session
	assert.True(t, s.Vacia())

	s = Session{Token: "tok", Cuenta: model.Cuenta{Rol: "Administrador"}}
	assert.False(t, s.Vacia())
	assert.Equal(t, model.RolAdmin, s.Rol())
}

func TestSessionExpirada(t *testing.T) {
	ahora := time.Now()

	vigente := Session{Token: tokenConExp(t, ahora.Add(time.Hour))}
	assert.False(t, vigente.Expirada(ahora))

	vencida := Session{Token: tokenConExp(t, ahora.Add(-time.Hour))}
	assert.True(t, vencida.Expirada(ahora))
}

func TestSessionExpirada_TokenOpacoNoExpira(t *testing.T) {
	ahora := time.Now()

	opaca := Session{Token: "no-es-un-jwt"}
	assert.False(t, opaca.Expirada(ahora))

	// JWT sin exp: se trata como no expirable
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"})
	firmado, err := tok.SignedString([]byte("clave-de-prueba"))
	require.NoError(t, err)
	assert.False(t, Session{Token: firmado}.Expirada(ahora))
}

func TestSessionExpirada_SinTokenEsExpirada(t *testing.T) {
	assert.True(t, Session{}.Expirada(time.Now()))
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anidado", "session.json")
	st := NewStore(path)

	// sin archivo: sesión vacía, sin error
	s, err := st.Load()
	require.NoError(t, err)
	assert.True(t, s.Vacia())

	original := Session{
		Token:     "tok-123",
		Cuenta:    model.Cuenta{ID: "u1", Nombre: "Ana", Email: "ana@dressify.mx", Rol: "vendedor"},
		CreatedAt: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, st.Save(original))

	cargada, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, original.Token, cargada.Token)
	assert.Equal(t, original.Cuenta, cargada.Cuenta)
	assert.True(t, original.CreatedAt.Equal(cargada.CreatedAt))
}

func TestStore_ArchivoCorruptoEsSesionCerrada(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	st := NewStore(path)
	require.NoError(t, st.Save(Session{Token: "tok"}))

	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0600))

	s, err := st.Load()
	require.NoError(t, err)
	assert.True(t, s.Vacia())
}

func TestStore_ClearIdempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	st := NewStore(path)

	require.NoError(t, st.Clear(), "borrar sin archivo no es error")
	require.NoError(t, st.Save(Session{Token: "tok"}))
	require.NoError(t, st.Clear())

	s, err := st.Load()
	require.NoError(t, err)
	assert.True(t, s.Vacia())
}
