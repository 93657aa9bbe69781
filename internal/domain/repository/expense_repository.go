package repository

import (
	"context"

	"github.com/frascos-bo/frascos/internal/domain/entity"
)

// ExpenseRepository lectura de gastos para el historial.
type ExpenseRepository interface {
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]entity.Expense, error)
}
