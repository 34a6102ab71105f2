package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuentas_AliasAccounts(t *testing.T) {
	body := []byte(`{"accounts":[
		{"_id":{"$oid":"507f191e810c19729de860ea"},"name":"Ana","email":"ana@dressify.mx","role":"Administrador"},
		{"id":"u2","name":"Luis","role":"vendedor","created_at":"2024-02-01T08:00:00Z"}
	]}`)

	cuentas := Cuentas(body)
	require.Len(t, cuentas, 2)
	assert.Equal(t, "507f191e810c19729de860ea", cuentas[0].ID)
	assert.Equal(t, "Administrador", cuentas[0].Rol, "el rol se guarda tal cual llega")
	assert.Equal(t, 2024, cuentas[1].CreatedAt.Year())
}

func TestCuenta_PrefiereIDSobreMongoID(t *testing.T) {
	c, ok := Cuenta([]byte(`{"id":"u1","_id":{"$oid":"507f191e810c19729de860ea"},"name":"Ana"}`))
	require.True(t, ok)
	assert.Equal(t, "u1", c.ID)
}
