package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dressify/internal/model"
)

func venta(id string, fecha time.Time, total string) model.Venta {
	return model.Venta{
		ID:     id,
		Fecha:  fecha,
		Estado: model.EstadoCompletada,
		Total:  decimal.RequireFromString(total),
	}
}

func TestFiltrarVentas_HoyUsaDiaCalendarioLocal(t *testing.T) {
	ahora := time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local)
	ventas := []model.Venta{
		venta("v1", time.Date(2024, 3, 5, 23, 59, 0, 0, time.Local), "10"),
		venta("v2", time.Date(2024, 3, 5, 0, 1, 0, 0, time.Local), "10"),
		venta("v3", time.Date(2024, 3, 4, 23, 59, 0, 0, time.Local), "10"),
		venta("v4", time.Date(2024, 3, 6, 0, 1, 0, 0, time.Local), "10"),
	}

	hoy := FiltrarVentas(ventas, Criterios{Hoy: true}, ahora)
	require.Len(t, hoy, 2)
	assert.Equal(t, "v1", hoy[0].ID)
	assert.Equal(t, "v2", hoy[1].ID)
}

func TestFiltrarVentas_MesSinAnioUsaAnioActual(t *testing.T) {
	ahora := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)
	ventas := []model.Venta{
		venta("v1", time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local), "10"),
		venta("v2", time.Date(2023, 3, 1, 10, 0, 0, 0, time.Local), "10"),
	}

	marzo := FiltrarVentas(ventas, Criterios{Mes: 3}, ahora)
	require.Len(t, marzo, 1)
	assert.Equal(t, "v1", marzo[0].ID, "marzo sin año es marzo del año en curso")
}

func TestFiltrarVentas_MesYAnio(t *testing.T) {
	ahora := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)
	ventas := []model.Venta{
		venta("v1", time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local), "10"),
		venta("v2", time.Date(2023, 3, 1, 10, 0, 0, 0, time.Local), "10"),
		venta("v3", time.Date(2023, 4, 1, 10, 0, 0, 0, time.Local), "10"),
	}

	filtradas := FiltrarVentas(ventas, Criterios{Mes: 3, Anio: 2023}, ahora)
	require.Len(t, filtradas, 1)
	assert.Equal(t, "v2", filtradas[0].ID)

	anio := FiltrarVentas(ventas, Criterios{Anio: 2023}, ahora)
	assert.Len(t, anio, 2)
}

func TestFiltrarVentas_HoyTienePrecedencia(t *testing.T) {
	ahora := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)
	ventas := []model.Venta{
		venta("v1", ahora, "10"),
		venta("v2", time.Date(2023, 3, 1, 10, 0, 0, 0, time.Local), "10"),
	}

	filtradas := FiltrarVentas(ventas, Criterios{Hoy: true, Mes: 3, Anio: 2023}, ahora)
	require.Len(t, filtradas, 1)
	assert.Equal(t, "v1", filtradas[0].ID)
}

func TestFiltrarVentas_SinCriteriosPasaTodo(t *testing.T) {
	ventas := []model.Venta{venta("v1", time.Now(), "10")}
	assert.Len(t, FiltrarVentas(ventas, Criterios{}, time.Now()), 1)
}

// Las canceladas cuentan en los totales salvo exclusión explícita.
func TestFiltrarYResumir_CanceladasIncluidas(t *testing.T) {
	ahora := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)
	cancelada := venta("v2", time.Date(2024, 3, 10, 10, 0, 0, 0, time.Local), "50")
	cancelada.Estado = model.EstadoCancelada
	ventas := []model.Venta{
		venta("v1", time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local), "100"),
		cancelada,
	}

	resumen := Resumir(FiltrarVentas(ventas, Criterios{Mes: 3, Anio: 2024}, ahora))
	assert.Equal(t, 2, resumen.NumVentas)
	assert.Equal(t, "150", resumen.TotalMonetario.String())

	soloActivas := ExcluirCanceladas(ventas)
	require.Len(t, soloActivas, 1)
	assert.Equal(t, "v1", soloActivas[0].ID)
}

func TestOrdenarPorFechaDesc_NoMutaLaEntrada(t *testing.T) {
	vieja := venta("v1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), "10")
	nueva := venta("v2", time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), "10")
	ventas := []model.Venta{vieja, nueva}

	ordenadas := OrdenarPorFechaDesc(ventas)
	assert.Equal(t, "v2", ordenadas[0].ID)
	assert.Equal(t, "v1", ventas[0].ID, "la lista original queda intacta")
}
