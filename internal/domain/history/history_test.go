package history_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/history"
	"github.com/frascos-bo/frascos/internal/domain/stats"
)

var loc = time.FixedZone("BOT", -4*60*60)

func fixture() ([]entity.Purchase, []entity.Sale, []entity.Expense) {
	purchases := []entity.Purchase{
		{ID: "p1", Quantity: 100, TotalPrice: decimal.RequireFromString("500"), Notes: "Proveedor Andrés", CreatedAt: time.Date(2024, 5, 8, 9, 0, 0, 0, loc)},
	}
	sales := []entity.Sale{
		{ID: "s1", Quantity: 12, UnitPrice: decimal.RequireFromString("8"), Notes: "feria", CreatedAt: time.Date(2024, 5, 10, 11, 0, 0, 0, loc)},
		{ID: "s2", Quantity: 3, UnitPrice: decimal.RequireFromString("9"), CreatedAt: time.Time{}},
	}
	expenses := []entity.Expense{
		{ID: "e1", Description: "Etiquetas", Amount: decimal.RequireFromString("35"), CreatedAt: time.Date(2024, 5, 9, 15, 0, 0, 0, loc)},
	}
	return purchases, sales, expenses
}

func entryIDs(entries []history.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestBuild_OrdenDescendenteSinFechaAlFinal(t *testing.T) {
	entries := history.Build(fixture())

	assert.Equal(t, []string{"s1", "e1", "p1", "s2"}, entryIDs(entries))
	assert.Equal(t, "Venta: 12 frascos", entries[0].Display)
	assert.Equal(t, "96.00", entries[0].Amount.StringFixed(2), "monto de venta recalculado")
	assert.Equal(t, "Etiquetas", entries[1].Display)
}

func TestApply_FiltrosCombinados(t *testing.T) {
	entries := history.Build(fixture())
	now := time.Date(2024, 5, 10, 20, 0, 0, 0, loc)

	cases := []struct {
		name  string
		query history.Query
		want  []string
	}{
		{"todo", history.Query{}, []string{"s1", "e1", "p1", "s2"}},
		{"solo ventas", history.Query{Type: history.TypeSale}, []string{"s1", "s2"}},
		{"hoy", history.Query{Filter: stats.FilterSpec{Range: stats.RangeToday}}, []string{"s1"}},
		{"ventas de 7 días", history.Query{Type: history.TypeSale, Filter: stats.FilterSpec{Range: stats.RangeLast7Days}}, []string{"s1"}},
		{"búsqueda sin mayúsculas", history.Query{Search: "ANDRÉS"}, []string{"p1"}},
		{"búsqueda por palabra del tipo", history.Query{Search: "gasto"}, []string{"e1"}},
		{"búsqueda por cantidad", history.Query{Search: "12 frascos"}, []string{"s1"}},
		{"sin resultados", history.Query{Search: "nada"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := history.Apply(entries, tc.query, now)
			assert.Equal(t, tc.want, entryIDs(res.Entries))
			assert.Equal(t, 4, res.Total)
		})
	}
}

func TestApply_ConteosPorTipo(t *testing.T) {
	res := history.Apply(history.Build(fixture()), history.Query{Type: history.TypeExpense}, time.Now())
	assert.Equal(t, 1, res.Counts[history.TypePurchase])
	assert.Equal(t, 2, res.Counts[history.TypeSale])
	assert.Equal(t, 1, res.Counts[history.TypeExpense])
}

func TestParseType(t *testing.T) {
	got, err := history.ParseType("Ventas")
	require.NoError(t, err)
	assert.Equal(t, history.TypeSale, got)

	_, err = history.ParseType("devolución")
	assert.Error(t, err)
}
