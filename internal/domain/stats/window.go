package stats

import (
	"fmt"
	"time"
)

// Window intervalo cerrado [From, To]. Un extremo cero queda abierto.
type Window struct {
	Label string
	From  time.Time
	To    time.Time
}

// Contains indica si t cae dentro de la ventana (ambos extremos inclusivos).
func (w Window) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && t.After(w.To) {
		return false
	}
	return true
}

// RelativeWindow ventana relativa a now. Today abarca el día local completo de now.
func RelativeWindow(r Range, now time.Time) Window {
	switch r {
	case RangeAll:
		return Window{Label: "Todo"}
	case RangeToday:
		w := DayWindow(DayOf(now), now.Location())
		w.Label = "Hoy"
		return w
	case RangeLast7Days:
		return Window{Label: "Últimos 7 días", From: now.Add(-7 * day), To: now}
	case RangeLast30Days:
		return Window{Label: "Últimos 30 días", From: now.Add(-30 * day), To: now}
	}
	panic(fmt.Sprintf("stats: rango desconocido %d", int(r)))
}

// DayWindow 00:00:00 a 23:59:59.999999999 del día d en loc.
func DayWindow(d Day, loc *time.Location) Window {
	start := d.Start(loc)
	return Window{
		Label: DayLabel(d),
		From:  start,
		To:    start.AddDate(0, 0, 1).Add(-time.Nanosecond),
	}
}

// WeekWindow semana móvil anclada en now: offset 0 = últimos 7 días, -1 = los 7 anteriores.
// Usa aritmética de días de calendario, no de 24h.
func WeekWindow(now time.Time, offset int) Window {
	return Window{
		Label: WeekLabel(offset),
		From:  now.AddDate(0, 0, -7+7*offset),
		To:    now.AddDate(0, 0, 7*offset),
	}
}

// MonthWindow del día 1 a las 00:00 hasta el último instante del mes (bisiestos incluidos).
func MonthWindow(year int, month time.Month, loc *time.Location) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Window{
		Label: MonthLabel(year, month),
		From:  start,
		To:    start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// Window ventana equivalente a la selección (la fecha exacta gana sobre el rango).
func (s FilterSpec) Window(now time.Time) Window {
	if s.Date != nil {
		return DayWindow(*s.Date, now.Location())
	}
	return RelativeWindow(s.Range, now)
}
