package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frascos-bo/frascos/internal/domain/entity"
)

// DayBucket totales de ventas de un día de calendario.
type DayBucket struct {
	Day              Day             `json:"day"`
	Weekday          string          `json:"weekday,omitempty"`
	Quantity         int             `json:"quantity"`
	Amount           decimal.Decimal `json:"amount"`
	Count            int             `json:"count"`
	AverageUnitValue decimal.Decimal `json:"average_unit_value"`
}

// DailySales días con ventas, del más reciente al más antiguo, y la fila de totales.
type DailySales struct {
	Days   []DayBucket `json:"days"`
	Totals DayBucket   `json:"totals"`
}

// GroupByCalendarDay agrupa ventas por fecha local en loc.
// El promedio de Totals es ponderado: ΣAmount / ΣQuantity, no la media de los promedios diarios.
// Las ventas sin fecha no pueden ubicarse en un día y se omiten.
func GroupByCalendarDay(sales []entity.Sale, loc *time.Location) DailySales {
	byDay := make(map[Day]*DayBucket)
	for _, s := range sales {
		if s.CreatedAt.IsZero() {
			continue
		}
		d := DayOf(s.CreatedAt.In(loc))
		b, ok := byDay[d]
		if !ok {
			b = &DayBucket{Day: d, Weekday: WeekdayLabel(d), Amount: decimal.Zero}
			byDay[d] = b
		}
		b.Quantity += s.Quantity
		b.Amount = b.Amount.Add(s.TotalAmount())
		b.Count++
	}

	out := DailySales{Days: make([]DayBucket, 0, len(byDay))}
	totals := DayBucket{Amount: decimal.Zero}
	for _, b := range byDay {
		b.AverageUnitValue = AverageUnitValue(b.Amount, b.Quantity)
		out.Days = append(out.Days, *b)
		totals.Quantity += b.Quantity
		totals.Amount = totals.Amount.Add(b.Amount)
		totals.Count += b.Count
	}
	sort.Slice(out.Days, func(i, j int) bool {
		return out.Days[j].Day.Before(out.Days[i].Day)
	})
	totals.AverageUnitValue = AverageUnitValue(totals.Amount, totals.Quantity)
	out.Totals = totals
	return out
}
