package usecase

import (
	"context"
	"time"

	"github.com/frascos-bo/frascos/internal/application/dto"
	"github.com/frascos-bo/frascos/internal/application/snapshot"
	"github.com/frascos-bo/frascos/internal/domain/history"
	"github.com/frascos-bo/frascos/internal/domain/repository"
)

// HistoryUseCase línea de tiempo de compras, ventas y gastos.
type HistoryUseCase struct {
	loader   *snapshot.Loader
	expenses repository.ExpenseRepository
	limit    int
	now      func() time.Time
}

// NewHistoryUseCase now define "hoy" y la zona horaria de los filtros por fecha.
func NewHistoryUseCase(loader *snapshot.Loader, expenses repository.ExpenseRepository, limit int, now func() time.Time) *HistoryUseCase {
	return &HistoryUseCase{loader: loader, expenses: expenses, limit: limit, now: now}
}

// Search lee una foto con gastos y aplica la consulta.
func (uc *HistoryUseCase) Search(ctx context.Context, ownerID string, q history.Query) (*history.Result, error) {
	snap, err := uc.loader.Load(ctx, ownerID, snapshot.Parts{Expenses: true})
	if err != nil {
		return nil, err
	}
	res := history.Apply(history.Build(snap.Purchases, snap.Sales, snap.Expenses), q, uc.now())
	return &res, nil
}

// Expenses gastos más recientes primero.
func (uc *HistoryUseCase) Expenses(ctx context.Context, ownerID string) ([]dto.ExpenseResponse, error) {
	rows, err := uc.expenses.ListByOwner(ctx, ownerID, uc.limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, dto.ExpenseResponse{
			ID:          e.ID,
			Description: e.Description,
			Amount:      e.Amount,
			Notes:       e.Notes,
			CreatedAt:   e.CreatedAt,
		})
	}
	return out, nil
}
