package report

import (
	"time"

	"github.com/shopspring/decimal"

	"dressify/internal/model"
)

// ComparativaMensual is the home-summary widget: revenue of the current
// calendar month vs the immediately preceding one.
type ComparativaMensual struct {
	MesActual   decimal.Decimal
	MesAnterior decimal.Decimal
}

// ResumenMensual computes the month-over-month revenue comparison relative to
// ahora, in local time. January rolls over to December of the previous year.
func ResumenMensual(ventas []model.Venta, ahora time.Time) ComparativaMensual {
	mesActual, anioActual := ahora.Month(), ahora.Year()

	mesAnterior, anioAnterior := mesActual-1, anioActual
	if mesActual == time.January {
		mesAnterior = time.December
		anioAnterior = anioActual - 1
	}

	suma := func(mes time.Month, anio int) decimal.Decimal {
		total := decimal.Zero
		for _, v := range ventas {
			f := v.Fecha.Local()
			if f.Month() == mes && f.Year() == anio {
				total = total.Add(v.Total)
			}
		}
		return total
	}

	return ComparativaMensual{
		MesActual:   suma(mesActual, anioActual),
		MesAnterior: suma(mesAnterior, anioAnterior),
	}
}
