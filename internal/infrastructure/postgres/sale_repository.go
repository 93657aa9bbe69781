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

const salesTable = "jar_sales"

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre la tabla jar_sales.
// total_amount lo mantiene la base y no se lee: el total se recalcula desde cantidad × precio.
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	sql, args, err := builder().
		Insert(salesTable).
		Columns("id", "user_id", "quantity", "unit_price", "notes").
		Values(s.ID, s.OwnerID, s.Quantity, s.UnitPrice, s.Notes).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert sale: %w", err)
	}
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&s.CreatedAt); err != nil {
		return mapError("insert sale", err)
	}
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Sale, error) {
	sql, args, err := builder().
		Select(saleColumns...).
		From(salesTable).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get sale: %w", err)
	}
	var row saleRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, mapError("get sale", err)
	}
	s := row.toEntity()
	return &s, nil
}

func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	sql, args, err := builder().
		Update(salesTable).
		Set("quantity", s.Quantity).
		Set("unit_price", s.UnitPrice).
		Set("notes", s.Notes).
		Where(squirrel.Eq{"id": s.ID, "user_id": s.OwnerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update sale: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError("update sale", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) Delete(ctx context.Context, ownerID, id string) error {
	sql, args, err := builder().
		Delete(salesTable).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete sale: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError("delete sale", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) ListByOwner(ctx context.Context, ownerID string, limit int) ([]entity.Sale, error) {
	q := builder().
		Select(saleColumns...).
		From(salesTable).
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC NULLS LAST")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sales: %w", err)
	}
	var rows []saleRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, mapError("list sales", err)
	}
	return mapRows[saleRow, entity.Sale](rows), nil
}
