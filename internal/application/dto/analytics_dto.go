package dto

import "github.com/frascos-bo/frascos/internal/domain/stats"

// ChartMode agrupación del gráfico de compras vs ventas.
type ChartMode string

const (
	ChartDaily   ChartMode = "day"
	ChartMonthly ChartMode = "month"
)

// ChartDTO serie del gráfico.
type ChartDTO struct {
	Mode   ChartMode           `json:"mode"`
	Points []stats.SeriesPoint `json:"points"`
}

// DailySalesDTO ventas agrupadas por día con la fila de totales.
type DailySalesDTO struct {
	Filter string           `json:"filter"`
	Sales  stats.DailySales `json:"sales"`
}
