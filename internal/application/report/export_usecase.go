// Package report arma los reportes PDF del negocio y decide su nombre de archivo.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/frascos-bo/frascos/internal/application/dto"
	"github.com/frascos-bo/frascos/internal/application/snapshot"
	"github.com/frascos-bo/frascos/internal/domain"
	"github.com/frascos-bo/frascos/internal/domain/stats"
	"github.com/frascos-bo/frascos/pkg/logger"
)

// PeriodKind tarjeta de período a exportar.
type PeriodKind string

const (
	PeriodDay   PeriodKind = "day"
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
)

// ParsePeriodKind acepta day|week|month y sus nombres en español.
func ParsePeriodKind(s string) (PeriodKind, error) {
	switch s {
	case "day", "dia", "día":
		return PeriodDay, nil
	case "week", "semana":
		return PeriodWeek, nil
	case "month", "mes", "":
		return PeriodMonth, nil
	}
	return "", fmt.Errorf("%w: período %q (day|week|month)", domain.ErrInvalidInput, s)
}

// Document PDF generado y el nombre con que se guarda.
type Document struct {
	Filename string
	Content  []byte
}

// ExportUseCase genera los reportes PDF a partir de una foto recién leída.
type ExportUseCase struct {
	loader    *snapshot.Loader
	generator Generator
	now       func() time.Time
	log       *logger.Logger
}

// NewExportUseCase construye el caso de uso inyectando sus dependencias.
func NewExportUseCase(loader *snapshot.Loader, generator Generator, now func() time.Time, log *logger.Logger) *ExportUseCase {
	return &ExportUseCase{loader: loader, generator: generator, now: now, log: log}
}

// Purchases reporte de las compras de la selección.
//
// Retorna:
//   - domain.ErrInvalidInput si la selección no tiene compras.
func (uc *ExportUseCase) Purchases(ctx context.Context, ownerID string, spec stats.FilterSpec) (*Document, error) {
	snap, err := uc.loader.Load(ctx, ownerID, snapshot.Parts{})
	if err != nil {
		return nil, fmt.Errorf("exportar compras: %w", err)
	}
	now := uc.now()
	rows := stats.Filter(snap.Purchases, spec, now)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no hay compras para exportar", domain.ErrInvalidInput)
	}

	content, err := uc.generator.PurchasesReport(ctx, PurchasesData{
		Header:        Header{Subtitle: "Reporte de Compras", GeneratedAt: now},
		Purchases:     rows,
		TotalQuantity: stats.SumQuantity(rows),
		TotalAmount:   stats.SumPurchasesAmount(rows),
	})
	if err != nil {
		return nil, fmt.Errorf("exportar compras: generación fallida: %w", err)
	}
	return uc.document("compras", now, content), nil
}

// Sales reporte de las ventas de la selección.
func (uc *ExportUseCase) Sales(ctx context.Context, ownerID string, spec stats.FilterSpec) (*Document, error) {
	snap, err := uc.loader.Load(ctx, ownerID, snapshot.Parts{})
	if err != nil {
		return nil, fmt.Errorf("exportar ventas: %w", err)
	}
	now := uc.now()
	rows := stats.Filter(snap.Sales, spec, now)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no hay ventas para exportar", domain.ErrInvalidInput)
	}

	content, err := uc.generator.SalesReport(ctx, SalesData{
		Header:        Header{Subtitle: "Reporte de Ventas", GeneratedAt: now},
		Sales:         rows,
		TotalQuantity: stats.SumQuantity(rows),
		TotalAmount:   stats.SumSalesAmount(rows),
	})
	if err != nil {
		return nil, fmt.Errorf("exportar ventas: generación fallida: %w", err)
	}
	return uc.document("ventas", now, content), nil
}

// Stats reporte completo del negocio sobre todo el historial.
func (uc *ExportUseCase) Stats(ctx context.Context, ownerID string) (*Document, error) {
	snap, err := uc.loader.LoadAll(ctx, ownerID, snapshot.Parts{})
	if err != nil {
		return nil, fmt.Errorf("exportar reporte: %w", err)
	}
	now := uc.now()
	n := len(snap.Purchases) + len(snap.Sales)
	bs := stats.ComputeBusinessStats(snap.Purchases, snap.Sales)
	if bs.CurrentStock < 0 {
		uc.log.Warn().Str("owner_id", ownerID).Int("current_stock", bs.CurrentStock).
			Msg("reporte con stock negativo")
	}

	content, err := uc.generator.StatsReport(ctx, StatsData{
		Header:       Header{Subtitle: fmt.Sprintf("%d transacciones registradas", n), GeneratedAt: now},
		Stats:        bs,
		Transactions: n,
	})
	if err != nil {
		return nil, fmt.Errorf("exportar reporte: generación fallida: %w", err)
	}
	return uc.document("reporte-completo", now, content), nil
}

// Period reporte de una tarjeta de período. req se interpreta como en las tarjetas del panel.
func (uc *ExportUseCase) Period(ctx context.Context, ownerID string, kind PeriodKind, req dto.PeriodsRequest) (*Document, error) {
	snap, err := uc.loader.LoadAll(ctx, ownerID, snapshot.Parts{})
	if err != nil {
		return nil, fmt.Errorf("exportar período: %w", err)
	}
	now := uc.now()
	loc := now.Location()

	var w stats.Window
	switch kind {
	case PeriodDay:
		day := stats.DayOf(now)
		if req.Day != nil {
			day = *req.Day
		}
		w = stats.DayWindow(day, loc)
	case PeriodWeek:
		w = stats.WeekWindow(now, req.WeekOffset)
	case PeriodMonth:
		year, month := req.Year, req.Month
		if year == 0 || month == 0 {
			year, month = now.Year(), now.Month()
		}
		w = stats.MonthWindow(year, month, loc)
	default:
		return nil, fmt.Errorf("%w: período %q", domain.ErrInvalidInput, kind)
	}

	ps := stats.ComputePeriodStats(snap.Sales, snap.Purchases, w)
	content, err := uc.generator.PeriodReport(ctx, PeriodData{
		Header: Header{Subtitle: ps.WindowLabel, GeneratedAt: now},
		Period: ps,
	})
	if err != nil {
		return nil, fmt.Errorf("exportar período: generación fallida: %w", err)
	}
	return uc.document("periodo_"+string(kind), now, content), nil
}

// Daily reporte de ventas por día de la selección.
func (uc *ExportUseCase) Daily(ctx context.Context, ownerID string, spec stats.FilterSpec) (*Document, error) {
	snap, err := uc.loader.LoadAll(ctx, ownerID, snapshot.Parts{})
	if err != nil {
		return nil, fmt.Errorf("exportar ventas por día: %w", err)
	}
	now := uc.now()
	daily := stats.GroupByCalendarDay(stats.Filter(snap.Sales, spec, now), now.Location())
	if len(daily.Days) == 0 {
		return nil, fmt.Errorf("%w: no hay ventas para exportar", domain.ErrInvalidInput)
	}

	content, err := uc.generator.DailySalesReport(ctx, DailyData{
		Header: Header{Subtitle: "Ventas por día · " + spec.Window(now).Label, GeneratedAt: now},
		Sales:  daily,
	})
	if err != nil {
		return nil, fmt.Errorf("exportar ventas por día: generación fallida: %w", err)
	}
	return uc.document("ventas-por-dia", now, content), nil
}

// Save escribe el documento en dir y devuelve la ruta final.
func (uc *ExportUseCase) Save(doc *Document, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de reportes: %w", err)
	}
	path := filepath.Join(dir, doc.Filename)
	if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
		return "", fmt.Errorf("guardar reporte: %w", err)
	}
	uc.log.Info().Str("path", path).Int("bytes", len(doc.Content)).Msg("reporte guardado")
	return path, nil
}

func (uc *ExportUseCase) document(prefix string, now time.Time, content []byte) *Document {
	return &Document{
		Filename: fmt.Sprintf("%s_%s.pdf", prefix, now.Format("2006-01-02")),
		Content:  content,
	}
}
