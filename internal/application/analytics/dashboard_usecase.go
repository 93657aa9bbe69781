// Package analytics contiene los casos de uso de estadísticas del negocio:
// resumen general, tarjetas por período, comparación con ayer, ventas por día y gráficos.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/frascos-bo/frascos/internal/application/dto"
	"github.com/frascos-bo/frascos/internal/application/snapshot"
	"github.com/frascos-bo/frascos/internal/domain"
	"github.com/frascos-bo/frascos/internal/domain/inventory"
	"github.com/frascos-bo/frascos/internal/domain/stats"
	"github.com/frascos-bo/frascos/pkg/logger"
)

const (
	monthOptionsCount = 12 // meses seleccionables en las tarjetas por período
	chartDays         = 30 // días del gráfico diario
)

// DashboardUseCase calcula estadísticas sobre una foto recién leída del propietario.
//
// Cada llamada vuelve a leer los datos: nunca se parchean totales de forma incremental.
// now es el único reloj; su zona horaria define qué es "hoy" y los días de calendario.
type DashboardUseCase struct {
	loader *snapshot.Loader
	now    func() time.Time
	log    *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(loader *snapshot.Loader, now func() time.Time, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{loader: loader, now: now, log: log}
}

// GetSummary estadísticas de todo el historial más la ventana pedida.
// Un stock negativo se informa tal cual y se registra como advertencia.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, ownerID string, spec stats.FilterSpec) (*dto.SummaryDTO, error) {
	snap, err := uc.loader.LoadAll(ctx, ownerID, snapshot.Parts{})
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	now := uc.now()

	bs := stats.ComputeBusinessStats(snap.Purchases, snap.Sales)
	out := &dto.SummaryDTO{
		Stats:         bs,
		Period:        stats.ComputePeriodStats(snap.Sales, snap.Purchases, spec.Window(now)),
		NegativeStock: bs.CurrentStock < 0,
		LowStock:      inventory.IsLowStock(bs.CurrentStock),
		GeneratedAt:   now,
	}
	if out.NegativeStock {
		uc.log.Warn().
			Str("owner_id", ownerID).
			Int("current_stock", bs.CurrentStock).
			Msg("stock negativo: hay más ventas que compras registradas")
	}
	return out, nil
}

// GetPeriods tarjetas de día, semana y mes seleccionados.
func (uc *DashboardUseCase) GetPeriods(ctx context.Context, ownerID string, req dto.PeriodsRequest) (*dto.PeriodsDTO, error) {
	snap, err := uc.loader.LoadAll(ctx, ownerID, snapshot.Parts{})
	if err != nil {
		return nil, fmt.Errorf("períodos: %w", err)
	}
	now := uc.now()
	loc := now.Location()

	day := stats.DayOf(now)
	if req.Day != nil {
		day = *req.Day
	}
	year, month := req.Year, req.Month
	if year == 0 || month == 0 {
		year, month = now.Year(), now.Month()
	}

	return &dto.PeriodsDTO{
		Day:          stats.ComputePeriodStats(snap.Sales, snap.Purchases, stats.DayWindow(day, loc)),
		Week:         stats.ComputePeriodStats(snap.Sales, snap.Purchases, stats.WeekWindow(now, req.WeekOffset)),
		Month:        stats.ComputePeriodStats(snap.Sales, snap.Purchases, stats.MonthWindow(year, month, loc)),
		MonthOptions: stats.MonthOptions(now, monthOptionsCount),
	}, nil
}

// GetToday actividad de hoy contra la de ayer.
func (uc *DashboardUseCase) GetToday(ctx context.Context, ownerID string) (*stats.DayComparison, error) {
	snap, err := uc.loader.LoadAll(ctx, ownerID, snapshot.Parts{})
	if err != nil {
		return nil, fmt.Errorf("hoy: %w", err)
	}
	cmp := stats.CompareWithYesterday(snap.Sales, snap.Purchases, uc.now())
	return &cmp, nil
}

// GetDailySales ventas de la selección agrupadas por día, con promedio ponderado en los totales.
func (uc *DashboardUseCase) GetDailySales(ctx context.Context, ownerID string, spec stats.FilterSpec) (*dto.DailySalesDTO, error) {
	snap, err := uc.loader.LoadAll(ctx, ownerID, snapshot.Parts{})
	if err != nil {
		return nil, fmt.Errorf("ventas por día: %w", err)
	}
	now := uc.now()
	sales := stats.Filter(snap.Sales, spec, now)
	return &dto.DailySalesDTO{
		Filter: spec.Window(now).Label,
		Sales:  stats.GroupByCalendarDay(sales, now.Location()),
	}, nil
}

// GetChart serie diaria de los últimos 30 días o mensual de todo el historial.
func (uc *DashboardUseCase) GetChart(ctx context.Context, ownerID string, mode dto.ChartMode) (*dto.ChartDTO, error) {
	snap, err := uc.loader.LoadAll(ctx, ownerID, snapshot.Parts{})
	if err != nil {
		return nil, fmt.Errorf("gráfico: %w", err)
	}
	now := uc.now()
	switch mode {
	case dto.ChartDaily:
		return &dto.ChartDTO{Mode: mode, Points: stats.DailySeries(snap.Sales, snap.Purchases, now, chartDays)}, nil
	case dto.ChartMonthly, "":
		return &dto.ChartDTO{Mode: dto.ChartMonthly, Points: stats.MonthlySeries(snap.Sales, snap.Purchases, now.Location())}, nil
	}
	return nil, fmt.Errorf("gráfico: %w: modo %q (day|month)", domain.ErrInvalidInput, mode)
}
