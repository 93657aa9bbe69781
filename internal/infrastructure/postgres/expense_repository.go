package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo lectura de la tabla expenses.
type ExpenseRepo struct {
	q Querier
}

func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// ListByOwner gastos del propietario, más recientes primero.
func (r *ExpenseRepo) ListByOwner(ctx context.Context, ownerID string, limit int) ([]entity.Expense, error) {
	q := builder().
		Select(expenseColumns...).
		From("expenses").
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC NULLS LAST")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list expenses: %w", err)
	}
	var rows []expenseRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, mapError("list expenses", err)
	}
	return mapRows[expenseRow, entity.Expense](rows), nil
}
