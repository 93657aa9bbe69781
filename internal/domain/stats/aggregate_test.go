package stats_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/stats"
)

// ── ComputeBusinessStats ─────────────────────────────────────────────────────

func TestComputeBusinessStats_EjemploBase(t *testing.T) {
	purchases := []entity.Purchase{purchase("p1", 100, "500.00", at(2024, time.January, 1, 10, 0))}
	sales := []entity.Sale{sale("s1", 30, "8.00", at(2024, time.January, 2, 10, 0))}

	got := stats.ComputeBusinessStats(purchases, sales)

	assert.Equal(t, 70, got.CurrentStock)
	assert.Equal(t, 100, got.TotalPurchasedQuantity)
	assert.Equal(t, 30, got.TotalSoldQuantity)
	assertMoney(t, "500.00", got.TotalPurchasesCost)
	assertMoney(t, "240.00", got.TotalSalesRevenue)
	assertMoney(t, "-260.00", got.NetProfit)
}

func TestComputeBusinessStats_StockEsDiferenciaDeSumas(t *testing.T) {
	cases := []struct {
		name      string
		purchases []entity.Purchase
		sales     []entity.Sale
	}{
		{name: "vacío"},
		{
			name:      "solo compras",
			purchases: []entity.Purchase{purchase("p1", 12, "60.00", at(2024, 1, 1, 9, 0)), purchase("p2", 8, "40.00", at(2024, 1, 3, 9, 0))},
		},
		{
			name:  "solo ventas (stock negativo)",
			sales: []entity.Sale{sale("s1", 5, "8.00", at(2024, 1, 2, 9, 0))},
		},
		{
			name:      "mixto",
			purchases: []entity.Purchase{purchase("p1", 50, "250.00", at(2024, 1, 1, 9, 0))},
			sales:     []entity.Sale{sale("s1", 20, "8.00", at(2024, 1, 2, 9, 0)), sale("s2", 0, "8.00", time.Time{})},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stats.ComputeBusinessStats(tc.purchases, tc.sales)
			assert.Equal(t, stats.SumQuantity(tc.purchases)-stats.SumQuantity(tc.sales), got.CurrentStock)
		})
	}
}

func TestComputeBusinessStats_StockNegativoNoSeRecorta(t *testing.T) {
	got := stats.ComputeBusinessStats(nil, []entity.Sale{sale("s1", 5, "8.00", at(2024, 1, 2, 9, 0))})
	assert.Equal(t, -5, got.CurrentStock)
	assertMoney(t, "40.00", got.NetProfit)
}

// ── Sumas y promedio ─────────────────────────────────────────────────────────

func TestSumSalesAmount_RecalculaDesdeComponentes(t *testing.T) {
	sales := []entity.Sale{
		sale("s1", 3, "7.50", at(2024, 1, 1, 9, 0)),
		sale("s2", 2, "8.25", at(2024, 1, 1, 10, 0)),
	}
	assertMoney(t, "39.00", stats.SumSalesAmount(sales))
}

func TestSumQuantity_CantidadBasuraNormalizadaAporteCero(t *testing.T) {
	// el adaptador de lectura convierte "abc" en 0; el motor solo ve el 0
	sales := []entity.Sale{
		sale("ok", 4, "8.00", at(2024, 1, 1, 9, 0)),
		{ID: "basura", Quantity: 0, UnitPrice: decimal.Zero},
	}
	assert.Equal(t, 4, stats.SumQuantity(sales))
	assertMoney(t, "32.00", stats.SumSalesAmount(sales))
}

func TestAverageUnitValue(t *testing.T) {
	assert.True(t, stats.AverageUnitValue(decimal.Zero, 0).IsZero(), "0/0 debe ser 0")
	assert.True(t, stats.AverageUnitValue(dec("10"), -2).IsZero())
	assertMoney(t, "6.25", stats.AverageUnitValue(dec("250"), 40))
}

// ── ComputePeriodStats ───────────────────────────────────────────────────────

func TestComputePeriodStats_SoloDentroDeLaVentana(t *testing.T) {
	purchases := []entity.Purchase{
		purchase("p-feb", 40, "200.00", at(2024, time.February, 29, 23, 0)),
		purchase("p-mar", 10, "55.00", at(2024, time.March, 1, 0, 0)),
	}
	sales := []entity.Sale{
		sale("s-feb1", 5, "8.00", at(2024, time.February, 1, 0, 0)),
		sale("s-feb", 3, "9.00", at(2024, time.February, 14, 12, 0)),
		sale("s-ene", 7, "8.00", at(2024, time.January, 31, 23, 59)),
		sale("s-sin-fecha", 9, "8.00", time.Time{}),
	}

	got := stats.ComputePeriodStats(sales, purchases, stats.MonthWindow(2024, time.February, laPaz))

	assert.Equal(t, "Febrero 2024", got.WindowLabel)
	assert.Equal(t, 8, got.SalesQuantity)
	assertMoney(t, "67.00", got.SalesAmount)
	assert.Equal(t, 40, got.PurchasesQuantity)
	assertMoney(t, "200.00", got.PurchasesAmount)
}

func TestComputePeriodStats_VentanaVacia(t *testing.T) {
	got := stats.ComputePeriodStats(nil, nil, stats.RelativeWindow(stats.RangeToday, at(2024, 5, 10, 12, 0)))
	assert.Equal(t, "Hoy", got.WindowLabel)
	assert.Zero(t, got.SalesQuantity)
	assert.True(t, got.SalesAmount.IsZero())
	assert.True(t, got.PurchasesAmount.IsZero())
}
