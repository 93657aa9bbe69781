package stats

import (
	"fmt"
	"time"
)

// Day fecha de calendario sin hora ni zona. Se compara contra la fecha local de un instante.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf devuelve la fecha de calendario de t en su propia zona horaria.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// NewDay construye un Day validado. Una fecha inexistente (31 de febrero) es un error del llamador.
func NewDay(year int, month time.Month, day int) Day {
	d := Day{Year: year, Month: month, Day: day}
	if !d.Valid() {
		panic(fmt.Sprintf("stats: fecha inválida %04d-%02d-%02d", year, int(month), day))
	}
	return d
}

// ParseDay interpreta "YYYY-MM-DD".
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Day{}, fmt.Errorf("fecha %q: se espera YYYY-MM-DD", s)
	}
	return DayOf(t), nil
}

// Valid indica si la fecha existe en el calendario.
func (d Day) Valid() bool {
	if d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return t.Day() == d.Day
}

// Start primer instante del día en loc.
func (d Day) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays suma días de calendario (negativos restan).
func (d Day) AddDays(n int) Day {
	return DayOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Before compara fechas de calendario.
func (d Day) Before(o Day) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Day) IsZero() bool { return d == Day{} }

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText serializa como "YYYY-MM-DD".
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
