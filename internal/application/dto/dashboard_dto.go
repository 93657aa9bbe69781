package dto

import (
	"time"

	"github.com/frascos-bo/frascos/internal/domain/stats"
)

// SummaryDTO resumen del negocio sobre todo el historial, más la ventana seleccionada.
type SummaryDTO struct {
	Stats         stats.BusinessStats `json:"stats"`
	Period        stats.PeriodStats   `json:"period"`
	NegativeStock bool                `json:"negative_stock"` // más ventas que compras registradas
	LowStock      bool                `json:"low_stock"`
	GeneratedAt   time.Time           `json:"generated_at"`
}

// PeriodsDTO tarjetas de día, semana y mes.
type PeriodsDTO struct {
	Day          stats.PeriodStats   `json:"day"`
	Week         stats.PeriodStats   `json:"week"`
	Month        stats.PeriodStats   `json:"month"`
	MonthOptions []stats.MonthOption `json:"month_options"`
}

// PeriodsRequest selección de las tarjetas. Campos cero = hoy / esta semana / este mes.
type PeriodsRequest struct {
	Day        *stats.Day
	WeekOffset int
	Year       int
	Month      time.Month
}
