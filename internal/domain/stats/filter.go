package stats

import (
	"fmt"
	"time"
)

// Dated registro con instante de creación.
type Dated interface {
	Timestamp() time.Time
}

// Range ventana relativa al instante actual.
type Range int

const (
	RangeAll Range = iota
	RangeToday
	RangeLast7Days
	RangeLast30Days
)

const day = 24 * time.Hour

// ParseRange interpreta los valores aceptados por la interfaz de línea de comandos.
func ParseRange(s string) (Range, error) {
	switch s {
	case "", "all", "todo":
		return RangeAll, nil
	case "today", "hoy":
		return RangeToday, nil
	case "7", "7d", "last7", "week":
		return RangeLast7Days, nil
	case "30", "30d", "last30", "month":
		return RangeLast30Days, nil
	}
	return RangeAll, fmt.Errorf("rango %q no soportado (all|today|7d|30d)", s)
}

func (r Range) String() string {
	switch r {
	case RangeAll:
		return "all"
	case RangeToday:
		return "today"
	case RangeLast7Days:
		return "7d"
	case RangeLast30Days:
		return "30d"
	}
	return fmt.Sprintf("Range(%d)", int(r))
}

// FilterSpec criterio de selección. Si Date está presente gana sobre Range.
type FilterSpec struct {
	Range Range
	Date  *Day
}

// Filter devuelve, en el mismo orden, los registros que cumplen spec respecto de now.
// "Local" es la zona de now; now se lee una sola vez por llamada (la recibe el llamador).
// Registros sin fecha válida quedan fuera de cualquier predicado de fecha.
func Filter[T Dated](records []T, spec FilterSpec, now time.Time) []T {
	match := spec.predicate(now)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if match(r.Timestamp()) {
			out = append(out, r)
		}
	}
	return out
}

// Matches evalúa el predicado para un único instante.
func (s FilterSpec) Matches(t, now time.Time) bool {
	return s.predicate(now)(t)
}

func (s FilterSpec) predicate(now time.Time) func(time.Time) bool {
	loc := now.Location()
	if s.Date != nil {
		target := *s.Date
		return func(t time.Time) bool {
			return !t.IsZero() && DayOf(t.In(loc)) == target
		}
	}
	switch s.Range {
	case RangeAll:
		return func(time.Time) bool { return true }
	case RangeToday:
		today := DayOf(now)
		return func(t time.Time) bool {
			return !t.IsZero() && DayOf(t.In(loc)) == today
		}
	case RangeLast7Days:
		return within(now.Add(-7*day), now)
	case RangeLast30Days:
		return within(now.Add(-30*day), now)
	}
	panic(fmt.Sprintf("stats: rango desconocido %d", int(s.Range)))
}

func within(from, to time.Time) func(time.Time) bool {
	return func(t time.Time) bool {
		return !t.IsZero() && !t.Before(from) && !t.After(to)
	}
}
