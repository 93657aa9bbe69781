package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/frascos-bo/frascos/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// DayComparison actividad de hoy frente a la de ayer (días de calendario locales a now).
// No incluye ganancia: los montos son por período, la ganancia solo existe sobre el historial completo.
type DayComparison struct {
	Today           PeriodStats     `json:"today"`
	Yesterday       PeriodStats     `json:"yesterday"`
	PurchasesChange decimal.Decimal `json:"purchases_change_pct"`
	SalesChange     decimal.Decimal `json:"sales_change_pct"`
}

// CompareWithYesterday compara montos de hoy y ayer.
func CompareWithYesterday(sales []entity.Sale, purchases []entity.Purchase, now time.Time) DayComparison {
	today := DayOf(now)
	tw := DayWindow(today, now.Location())
	tw.Label = "Hoy"
	yw := DayWindow(today.AddDays(-1), now.Location())
	yw.Label = "Ayer"

	t := ComputePeriodStats(sales, purchases, tw)
	y := ComputePeriodStats(sales, purchases, yw)
	return DayComparison{
		Today:           t,
		Yesterday:       y,
		PurchasesChange: PercentChange(t.PurchasesAmount, y.PurchasesAmount),
		SalesChange:     PercentChange(t.SalesAmount, y.SalesAmount),
	}
}

// PercentChange variación porcentual redondeada a 1 decimal.
// Sin base (previous == 0): 100 si hubo actividad, 0 si no.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(1)
}
