package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/stats"
)

func TestDailySeries_RellenaDiasSinMovimiento(t *testing.T) {
	now := at(2024, time.March, 3, 12, 0)
	sales := []entity.Sale{
		sale("s1", 2, "8.00", at(2024, time.March, 3, 9, 0)),
		sale("viejo", 9, "8.00", at(2024, time.February, 1, 9, 0)),
	}
	purchases := []entity.Purchase{purchase("p1", 10, "50.00", at(2024, time.March, 1, 9, 0))}

	got := stats.DailySeries(sales, purchases, now, 3)

	require.Len(t, got, 3)
	assert.Equal(t, "2024-03-01", got[0].Key)
	assert.Equal(t, "03/03", got[2].Label)
	assert.Equal(t, 10, got[0].Purchases)
	assert.Zero(t, got[1].Purchases+got[1].Sales)
	assert.Equal(t, 2, got[2].Sales)
	assertMoney(t, "16.00", got[2].SalesAmount)
}

func TestMonthlySeries_Ascendente(t *testing.T) {
	sales := []entity.Sale{
		sale("s-mar", 2, "8.00", at(2024, time.March, 3, 9, 0)),
		sale("s-dic", 1, "8.00", at(2023, time.December, 20, 9, 0)),
		sale("s-sin", 7, "8.00", time.Time{}),
	}
	purchases := []entity.Purchase{purchase("p-mar", 10, "50.00", at(2024, time.March, 1, 9, 0))}

	got := stats.MonthlySeries(sales, purchases, laPaz)

	require.Len(t, got, 2)
	assert.Equal(t, "2023-12", got[0].Key)
	assert.Equal(t, "Diciembre 2023", got[0].Label)
	assert.Equal(t, "2024-03", got[1].Key)
	assert.Equal(t, 10, got[1].Purchases)
	assert.Equal(t, 2, got[1].Sales)
}
