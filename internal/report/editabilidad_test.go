package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalcularEditabilidad(t *testing.T) {
	ahora := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		nombre       string
		transcurrido time.Duration
		want         Editabilidad
	}{
		{"recien creada", 0, Editable},
		{"nueve minutos", 9 * time.Minute, Editable},
		{"limite exacto sigue editable", VentanaEdicion, Editable},
		{"once minutos", 11 * time.Minute, Bloqueada},
		{"horas despues", 3 * time.Hour, Bloqueada},
	}
	for _, tc := range tests {
		t.Run(tc.nombre, func(t *testing.T) {
			got := CalcularEditabilidad(ahora.Add(-tc.transcurrido), ahora)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalcularEditabilidad_FechaCeroEsPermisiva(t *testing.T) {
	assert.Equal(t, Editable, CalcularEditabilidad(time.Time{}, time.Now()))
}

func TestEditabilidadString(t *testing.T) {
	assert.Equal(t, "editable", Editable.String())
	assert.Equal(t, "bloqueada", Bloqueada.String())
}
