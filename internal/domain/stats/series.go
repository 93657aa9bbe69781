package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frascos-bo/frascos/internal/domain/entity"
)

// SeriesPoint punto del gráfico de compras vs ventas.
type SeriesPoint struct {
	Key             string          `json:"key"`   // 2024-03-01 o 2024-03
	Label           string          `json:"label"` // 01/03 o "Marzo 2024"
	Purchases       int             `json:"purchases"`
	Sales           int             `json:"sales"`
	PurchasesAmount decimal.Decimal `json:"purchases_amount"`
	SalesAmount     decimal.Decimal `json:"sales_amount"`
}

// DailySeries un punto por día para los últimos days días (incluido hoy), ascendente.
// Los días sin movimientos aparecen en cero.
func DailySeries(sales []entity.Sale, purchases []entity.Purchase, now time.Time, days int) []SeriesPoint {
	loc := now.Location()
	today := DayOf(now)
	points := make([]SeriesPoint, 0, days)
	index := make(map[Day]int, days)
	for i := days - 1; i >= 0; i-- {
		d := today.AddDays(-i)
		index[d] = len(points)
		points = append(points, SeriesPoint{
			Key:             d.String(),
			Label:           fmt.Sprintf("%02d/%02d", d.Day, int(d.Month)),
			PurchasesAmount: decimal.Zero,
			SalesAmount:     decimal.Zero,
		})
	}
	for _, p := range purchases {
		if p.CreatedAt.IsZero() {
			continue
		}
		if i, ok := index[DayOf(p.CreatedAt.In(loc))]; ok {
			points[i].Purchases += p.Quantity
			points[i].PurchasesAmount = points[i].PurchasesAmount.Add(p.TotalPrice)
		}
	}
	for _, s := range sales {
		if s.CreatedAt.IsZero() {
			continue
		}
		if i, ok := index[DayOf(s.CreatedAt.In(loc))]; ok {
			points[i].Sales += s.Quantity
			points[i].SalesAmount = points[i].SalesAmount.Add(s.TotalAmount())
		}
	}
	return points
}

// MonthlySeries un punto por cada mes con movimientos en todo el historial, ascendente.
func MonthlySeries(sales []entity.Sale, purchases []entity.Purchase, loc *time.Location) []SeriesPoint {
	type month struct {
		y int
		m time.Month
	}
	byMonth := make(map[month]*SeriesPoint)
	get := func(t time.Time) *SeriesPoint {
		t = t.In(loc)
		k := month{t.Year(), t.Month()}
		p, ok := byMonth[k]
		if !ok {
			p = &SeriesPoint{
				Key:             fmt.Sprintf("%04d-%02d", k.y, int(k.m)),
				Label:           MonthLabel(k.y, k.m),
				PurchasesAmount: decimal.Zero,
				SalesAmount:     decimal.Zero,
			}
			byMonth[k] = p
		}
		return p
	}
	for _, p := range purchases {
		if p.CreatedAt.IsZero() {
			continue
		}
		pt := get(p.CreatedAt)
		pt.Purchases += p.Quantity
		pt.PurchasesAmount = pt.PurchasesAmount.Add(p.TotalPrice)
	}
	for _, s := range sales {
		if s.CreatedAt.IsZero() {
			continue
		}
		pt := get(s.CreatedAt)
		pt.Sales += s.Quantity
		pt.SalesAmount = pt.SalesAmount.Add(s.TotalAmount())
	}

	out := make([]SeriesPoint, 0, len(byMonth))
	for _, p := range byMonth {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
