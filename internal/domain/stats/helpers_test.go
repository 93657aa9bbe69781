package stats_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/frascos-bo/frascos/internal/domain/entity"
)

// La Paz no tiene horario de verano; una zona fija evita depender de tzdata.
var laPaz = time.FixedZone("BOT", -4*60*60)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, laPaz)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func purchase(id string, qty int, total string, ts time.Time) entity.Purchase {
	return entity.Purchase{ID: id, OwnerID: "owner-1", Quantity: qty, TotalPrice: dec(total), CreatedAt: ts}
}

func sale(id string, qty int, unit string, ts time.Time) entity.Sale {
	return entity.Sale{ID: id, OwnerID: "owner-1", Quantity: qty, UnitPrice: dec(unit), CreatedAt: ts}
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2), msgAndArgs...)
}

func ids[T interface{ Timestamp() time.Time }](records []T, id func(T) string) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, id(r))
	}
	return out
}

func saleID(s entity.Sale) string         { return s.ID }
func purchaseID(p entity.Purchase) string { return p.ID }
