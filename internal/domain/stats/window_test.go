package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frascos-bo/frascos/internal/domain/stats"
)

func TestMonthWindow_FebreroBisiesto(t *testing.T) {
	w := stats.MonthWindow(2024, time.February, laPaz)

	assert.Equal(t, at(2024, time.February, 1, 0, 0), w.From)
	assert.Equal(t, stats.NewDay(2024, time.February, 29), stats.DayOf(w.To))
	assert.True(t, w.Contains(time.Date(2024, time.February, 29, 23, 59, 59, 999999999, laPaz)))
	assert.False(t, w.Contains(at(2024, time.March, 1, 0, 0)))
}

func TestMonthWindow_FebreroNoBisiesto(t *testing.T) {
	w := stats.MonthWindow(2023, time.February, laPaz)
	assert.Equal(t, stats.NewDay(2023, time.February, 28), stats.DayOf(w.To))
}

func TestMonthWindow_Diciembre(t *testing.T) {
	w := stats.MonthWindow(2023, time.December, laPaz)
	assert.Equal(t, stats.NewDay(2023, time.December, 31), stats.DayOf(w.To))
	assert.Equal(t, "Diciembre 2023", w.Label)
}

func TestDayWindow_DiaCompleto(t *testing.T) {
	w := stats.DayWindow(stats.NewDay(2024, time.March, 1), laPaz)

	assert.Equal(t, "01/03/2024", w.Label)
	assert.True(t, w.Contains(at(2024, time.March, 1, 0, 0)))
	assert.True(t, w.Contains(time.Date(2024, time.March, 1, 23, 59, 59, 999999999, laPaz)))
	assert.False(t, w.Contains(at(2024, time.March, 2, 0, 0)))
	assert.False(t, w.Contains(time.Time{}))
}

func TestWeekWindow_Desplazamientos(t *testing.T) {
	now := at(2024, time.May, 10, 15, 0)

	this := stats.WeekWindow(now, 0)
	assert.Equal(t, "Esta Semana", this.Label)
	assert.Equal(t, at(2024, time.May, 3, 15, 0), this.From)
	assert.Equal(t, now, this.To)

	last := stats.WeekWindow(now, -1)
	assert.Equal(t, "Semana Pasada", last.Label)
	assert.Equal(t, at(2024, time.April, 26, 15, 0), last.From)
	assert.Equal(t, at(2024, time.May, 3, 15, 0), last.To)

	assert.Equal(t, "Hace 3 semanas", stats.WeekWindow(now, -3).Label)
}

func TestRelativeWindow(t *testing.T) {
	now := at(2024, time.May, 10, 23, 50)

	today := stats.RelativeWindow(stats.RangeToday, now)
	assert.Equal(t, "Hoy", today.Label)
	assert.True(t, today.Contains(at(2024, time.May, 10, 0, 5)))
	assert.False(t, today.Contains(at(2024, time.May, 9, 23, 59)))

	last30 := stats.RelativeWindow(stats.RangeLast30Days, now)
	assert.Equal(t, "Últimos 30 días", last30.Label)
	assert.Equal(t, now.Add(-30*24*time.Hour), last30.From)

	all := stats.RelativeWindow(stats.RangeAll, now)
	assert.True(t, all.From.IsZero())
	assert.True(t, all.Contains(at(1999, time.January, 1, 0, 0)))

	assert.Panics(t, func() { stats.RelativeWindow(stats.Range(-1), now) })
}

func TestDay(t *testing.T) {
	d, err := stats.ParseDay("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, stats.NewDay(2024, time.February, 29), d)
	assert.Equal(t, "2024-02-29", d.String())
	assert.Equal(t, stats.NewDay(2024, time.March, 1), d.AddDays(1))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.False(t, d.Before(d))

	_, err = stats.ParseDay("29/02/2024")
	assert.Error(t, err)

	assert.Panics(t, func() { stats.NewDay(2023, time.February, 29) })
}

func TestMonthOptions_DoceMeses(t *testing.T) {
	opts := stats.MonthOptions(at(2024, time.March, 31, 10, 0), 12)
	require.Len(t, opts, 12)
	assert.Equal(t, "Marzo 2024", opts[0].Label)
	assert.Equal(t, "Febrero 2024", opts[1].Label)
	assert.Equal(t, "Abril 2023", opts[11].Label)
}

func TestFilterSpecWindow_FechaGanaSobreRango(t *testing.T) {
	now := at(2024, time.March, 10, 15, 0)
	d := stats.NewDay(2024, time.March, 1)

	w := stats.FilterSpec{Range: stats.RangeLast30Days, Date: &d}.Window(now)
	assert.Equal(t, "01/03/2024", w.Label)

	w = stats.FilterSpec{Range: stats.RangeLast7Days}.Window(now)
	assert.Equal(t, "Últimos 7 días", w.Label)
	assert.Equal(t, now, w.To)
}
