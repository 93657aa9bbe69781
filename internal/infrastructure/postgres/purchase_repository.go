package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/frascos-bo/frascos/internal/domain"
	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/repository"
)

const purchasesTable = "purchases"

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre la tabla purchases.
// unit_cost es una columna calculada por la base; nunca se escribe.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador (pool o transacción).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create inserta la compra; la base asigna created_at.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	sql, args, err := builder().
		Insert(purchasesTable).
		Columns("id", "user_id", "quantity", "total_price", "notes").
		Values(p.ID, p.OwnerID, p.Quantity, p.TotalPrice, p.Notes).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert purchase: %w", err)
	}
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&p.CreatedAt); err != nil {
		return mapError("insert purchase", err)
	}
	return nil
}

// GetByID obtiene una compra del propietario.
func (r *PurchaseRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Purchase, error) {
	sql, args, err := builder().
		Select(purchaseColumns...).
		From(purchasesTable).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get purchase: %w", err)
	}
	var row purchaseRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, mapError("get purchase", err)
	}
	p := row.toEntity()
	return &p, nil
}

// Update modifica cantidad, total y notas.
func (r *PurchaseRepo) Update(ctx context.Context, p *entity.Purchase) error {
	sql, args, err := builder().
		Update(purchasesTable).
		Set("quantity", p.Quantity).
		Set("total_price", p.TotalPrice).
		Set("notes", p.Notes).
		Where(squirrel.Eq{"id": p.ID, "user_id": p.OwnerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update purchase: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError("update purchase", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la compra del propietario.
func (r *PurchaseRepo) Delete(ctx context.Context, ownerID, id string) error {
	sql, args, err := builder().
		Delete(purchasesTable).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete purchase: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError("delete purchase", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByOwner compras del propietario, más recientes primero.
func (r *PurchaseRepo) ListByOwner(ctx context.Context, ownerID string, limit int) ([]entity.Purchase, error) {
	q := builder().
		Select(purchaseColumns...).
		From(purchasesTable).
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC NULLS LAST")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list purchases: %w", err)
	}
	var rows []purchaseRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, mapError("list purchases", err)
	}
	return mapRows[purchaseRow, entity.Purchase](rows), nil
}
