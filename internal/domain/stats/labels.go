package stats

import (
	"fmt"
	"time"
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var weekdayNames = [...]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

// MonthLabel "Febrero 2024".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}

// DayLabel "01/03/2024" (dd/mm/aaaa).
func DayLabel(d Day) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

// WeekdayLabel nombre del día de la semana con mayúscula inicial.
func WeekdayLabel(d Day) string {
	return weekdayNames[d.Start(time.UTC).Weekday()]
}

// WeekLabel etiqueta de la semana móvil según su desplazamiento.
func WeekLabel(offset int) string {
	switch offset {
	case 0:
		return "Esta Semana"
	case -1:
		return "Semana Pasada"
	}
	if offset < 0 {
		offset = -offset
	}
	return fmt.Sprintf("Hace %d semanas", offset)
}

// MonthOption mes seleccionable en los reportes por período.
type MonthOption struct {
	Year  int
	Month time.Month
	Label string
}

// MonthOptions los últimos n meses, empezando por el de now.
func MonthOptions(now time.Time, n int) []MonthOption {
	out := make([]MonthOption, 0, n)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < n; i++ {
		m := first.AddDate(0, -i, 0)
		out = append(out, MonthOption{Year: m.Year(), Month: m.Month(), Label: MonthLabel(m.Year(), m.Month())})
	}
	return out
}
