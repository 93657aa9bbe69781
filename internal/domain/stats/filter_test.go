package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/stats"
)

// ──────────────────────────────────────────────────────────────────────────────
// Filter: selección de registros por rango relativo o fecha exacta.
// "now" siempre lo inyecta el test; ningún caso depende del reloj real.
// ──────────────────────────────────────────────────────────────────────────────

func sampleSales() []entity.Sale {
	return []entity.Sale{
		sale("a", 5, "8.00", at(2024, time.May, 10, 0, 5)),
		sale("b", 3, "8.00", at(2024, time.May, 9, 23, 59)),
		sale("c", 2, "7.50", at(2024, time.May, 2, 12, 0)),
		sale("d", 1, "9.00", at(2024, time.April, 15, 9, 30)),
		sale("e", 4, "8.00", time.Time{}), // fecha ilegible
		sale("f", 6, "8.00", at(2024, time.May, 10, 22, 0)),
	}
}

func TestFilter_Idempotente(t *testing.T) {
	now := at(2024, time.May, 10, 23, 50)
	records := sampleSales()
	specs := []stats.FilterSpec{
		{Range: stats.RangeAll},
		{Range: stats.RangeToday},
		{Range: stats.RangeLast7Days},
		{Range: stats.RangeLast30Days},
	}
	for _, spec := range specs {
		first := stats.Filter(records, spec, now)
		second := stats.Filter(records, spec, now)
		assert.Equal(t, first, second, "rango %s", spec.Range)
	}
}

func TestFilter_SubsecuenciaOrdenada(t *testing.T) {
	now := at(2024, time.May, 10, 23, 50)
	records := sampleSales()
	d := stats.NewDay(2024, time.May, 2)
	specs := []stats.FilterSpec{
		{Range: stats.RangeAll},
		{Range: stats.RangeToday},
		{Range: stats.RangeLast7Days},
		{Range: stats.RangeLast30Days},
		{Date: &d},
	}
	for _, spec := range specs {
		out := stats.Filter(records, spec, now)

		// cada elemento cumple el predicado y aparece en el mismo orden relativo
		pos := -1
		for _, r := range out {
			assert.True(t, spec.Matches(r.CreatedAt, now), "rango %s: %s no cumple", spec.Range, r.ID)
			next := -1
			for i := pos + 1; i < len(records); i++ {
				if records[i].ID == r.ID {
					next = i
					break
				}
			}
			require.NotEqual(t, -1, next, "rango %s: orden alterado en %s", spec.Range, r.ID)
			pos = next
		}
	}
}

func TestFilter_All_DevuelveTodoSinCambios(t *testing.T) {
	records := sampleSales()
	out := stats.Filter(records, stats.FilterSpec{Range: stats.RangeAll}, at(2024, time.May, 10, 12, 0))
	assert.Equal(t, records, out, "All incluye incluso registros sin fecha")
}

func TestFilter_TodayVsVentanaInstantanea(t *testing.T) {
	now := at(2024, time.May, 10, 23, 50)
	records := []entity.Sale{
		sale("hoy-temprano", 1, "8.00", at(2024, time.May, 10, 0, 5)),
		sale("ayer-tarde", 1, "8.00", at(2024, time.May, 9, 23, 59)),
	}

	today := stats.Filter(records, stats.FilterSpec{Range: stats.RangeToday}, now)
	assert.Equal(t, []string{"hoy-temprano"}, ids(today, saleID))

	last7 := stats.Filter(records, stats.FilterSpec{Range: stats.RangeLast7Days}, now)
	assert.Equal(t, []string{"hoy-temprano", "ayer-tarde"}, ids(last7, saleID))
}

func TestFilter_FechaExactaGanaSobreRango(t *testing.T) {
	now := at(2024, time.March, 5, 10, 0)
	records := []entity.Purchase{
		purchase("p1", 10, "50.00", at(2024, time.March, 1, 9, 0)),
		purchase("p2", 10, "50.00", at(2024, time.March, 2, 9, 0)),
	}
	d := stats.NewDay(2024, time.March, 1)

	out := stats.Filter(records, stats.FilterSpec{Range: stats.RangeLast7Days, Date: &d}, now)
	assert.Equal(t, []string{"p1"}, ids(out, purchaseID))
}

func TestFilter_FechaExactaUsaZonaDeNow(t *testing.T) {
	// 02:00 UTC del 2 de marzo son las 22:00 del 1 de marzo en La Paz
	records := []entity.Sale{sale("s", 1, "8.00", time.Date(2024, time.March, 2, 2, 0, 0, 0, time.UTC))}
	d := stats.NewDay(2024, time.March, 1)

	out := stats.Filter(records, stats.FilterSpec{Date: &d}, at(2024, time.March, 5, 10, 0))
	assert.Len(t, out, 1)
}

func TestFilter_BordesDeVentana(t *testing.T) {
	now := at(2024, time.May, 31, 12, 0)
	records := []entity.Sale{
		sale("justo-7d", 1, "8.00", now.Add(-7*24*time.Hour)),
		sale("antes-7d", 1, "8.00", now.Add(-7*24*time.Hour-time.Second)),
		sale("justo-30d", 1, "8.00", now.Add(-30*24*time.Hour)),
		sale("futuro", 1, "8.00", now.Add(time.Minute)),
	}

	last7 := stats.Filter(records, stats.FilterSpec{Range: stats.RangeLast7Days}, now)
	assert.Equal(t, []string{"justo-7d"}, ids(last7, saleID))

	last30 := stats.Filter(records, stats.FilterSpec{Range: stats.RangeLast30Days}, now)
	assert.Equal(t, []string{"justo-7d", "antes-7d", "justo-30d"}, ids(last30, saleID))
}

func TestFilter_SinFechaQuedaFuera(t *testing.T) {
	now := at(2024, time.May, 10, 12, 0)
	records := []entity.Sale{sale("x", 1, "8.00", time.Time{})}
	d := stats.DayOf(time.Time{})

	for _, spec := range []stats.FilterSpec{
		{Range: stats.RangeToday},
		{Range: stats.RangeLast7Days},
		{Range: stats.RangeLast30Days},
		{Date: &d},
	} {
		assert.Empty(t, stats.Filter(records, spec, now))
	}
}

func TestFilter_EntradaVacia(t *testing.T) {
	out := stats.Filter([]entity.Sale(nil), stats.FilterSpec{Range: stats.RangeToday}, time.Now())
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFilter_RangoDesconocido(t *testing.T) {
	assert.Panics(t, func() {
		stats.Filter(sampleSales(), stats.FilterSpec{Range: stats.Range(42)}, time.Now())
	})
}

func TestParseRange(t *testing.T) {
	cases := map[string]stats.Range{
		"":      stats.RangeAll,
		"all":   stats.RangeAll,
		"today": stats.RangeToday,
		"hoy":   stats.RangeToday,
		"7d":    stats.RangeLast7Days,
		"30d":   stats.RangeLast30Days,
	}
	for in, want := range cases {
		got, err := stats.ParseRange(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := stats.ParseRange("ayer")
	assert.Error(t, err)
}
