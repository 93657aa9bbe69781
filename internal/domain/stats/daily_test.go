package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/stats"
)

func TestGroupByCalendarDay_PromedioPonderado(t *testing.T) {
	sales := []entity.Sale{
		// día 1: 10 frascos por 100 → promedio 10
		sale("a", 4, "10.00", at(2024, time.March, 1, 9, 0)),
		sale("b", 6, "10.00", at(2024, time.March, 1, 18, 0)),
		// día 2: 30 frascos por 150 → promedio 5
		sale("c", 30, "5.00", at(2024, time.March, 2, 11, 0)),
	}

	got := stats.GroupByCalendarDay(sales, laPaz)

	require.Len(t, got.Days, 2)
	assert.Equal(t, stats.NewDay(2024, time.March, 2), got.Days[0].Day, "orden descendente")
	assert.Equal(t, stats.NewDay(2024, time.March, 1), got.Days[1].Day)

	assert.Equal(t, 10, got.Days[1].Quantity)
	assert.Equal(t, 2, got.Days[1].Count)
	assertMoney(t, "100.00", got.Days[1].Amount)
	assertMoney(t, "10.00", got.Days[1].AverageUnitValue)
	assert.Equal(t, "Viernes", got.Days[1].Weekday)

	assert.Equal(t, 40, got.Totals.Quantity)
	assert.Equal(t, 3, got.Totals.Count)
	assertMoney(t, "250.00", got.Totals.Amount)
	assertMoney(t, "6.25", got.Totals.AverageUnitValue, "ΣAmount/ΣQuantity")

	mean := got.Days[0].AverageUnitValue.Add(got.Days[1].AverageUnitValue).Div(dec("2"))
	assert.False(t, mean.Equal(got.Totals.AverageUnitValue), "no es la media de los promedios")
}

func TestGroupByCalendarDay_UsaFechaLocal(t *testing.T) {
	// 03:00 UTC del 2 de marzo es el 1 de marzo en La Paz
	sales := []entity.Sale{sale("a", 1, "8.00", time.Date(2024, time.March, 2, 3, 0, 0, 0, time.UTC))}

	got := stats.GroupByCalendarDay(sales, laPaz)
	require.Len(t, got.Days, 1)
	assert.Equal(t, stats.NewDay(2024, time.March, 1), got.Days[0].Day)
}

func TestGroupByCalendarDay_VacioYSinFecha(t *testing.T) {
	got := stats.GroupByCalendarDay(nil, laPaz)
	assert.Empty(t, got.Days)
	assert.True(t, got.Totals.AverageUnitValue.IsZero())

	got = stats.GroupByCalendarDay([]entity.Sale{sale("x", 3, "8.00", time.Time{})}, laPaz)
	assert.Empty(t, got.Days)
	assert.Zero(t, got.Totals.Quantity)
}

func TestGroupByCalendarDay_CantidadCero(t *testing.T) {
	got := stats.GroupByCalendarDay([]entity.Sale{sale("x", 0, "8.00", at(2024, 3, 1, 9, 0))}, laPaz)
	require.Len(t, got.Days, 1)
	assert.True(t, got.Days[0].AverageUnitValue.IsZero())
}
