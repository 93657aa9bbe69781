package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/stats"
)

// Header datos comunes a todos los reportes.
type Header struct {
	Subtitle    string // ej. "Reporte de Compras", "Últimos 7 días"
	GeneratedAt time.Time
}

// PurchasesData compras a listar con sus totales.
type PurchasesData struct {
	Header
	Purchases     []entity.Purchase
	TotalQuantity int
	TotalAmount   decimal.Decimal
}

// SalesData ventas a listar con sus totales.
type SalesData struct {
	Header
	Sales         []entity.Sale
	TotalQuantity int
	TotalAmount   decimal.Decimal
}

// StatsData reporte completo: bloques de inventario y financiero.
type StatsData struct {
	Header
	Stats        stats.BusinessStats
	Transactions int
}

// PeriodData una tarjeta de período (día, semana o mes).
type PeriodData struct {
	Header
	Period stats.PeriodStats
}

// DailyData ventas agrupadas por día con la fila de totales.
type DailyData struct {
	Header
	Sales stats.DailySales
}

// Generator puerto de renderizado de reportes (implementado en infrastructure/pdf).
type Generator interface {
	PurchasesReport(ctx context.Context, data PurchasesData) ([]byte, error)
	SalesReport(ctx context.Context, data SalesData) ([]byte, error)
	StatsReport(ctx context.Context, data StatsData) ([]byte, error)
	PeriodReport(ctx context.Context, data PeriodData) ([]byte, error)
	DailySalesReport(ctx context.Context, data DailyData) ([]byte, error)
}
