package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo lectura de auth.users (esquema del proveedor de autenticación).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de lectura de usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

type userRow struct {
	ID                string     `db:"id"`
	Email             *string    `db:"email"`
	EncryptedPassword *string    `db:"encrypted_password"`
	BannedUntil       *time.Time `db:"banned_until"`
	CreatedAt         *time.Time `db:"created_at"`
}

var userColumns = []string{"id::text AS id", "email", "encrypted_password", "banned_until", "created_at"}

// FindByEmail devuelve nil, nil si no existe. La comparación ignora mayúsculas.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, squirrel.Expr("lower(email) = lower(?)", email))
}

// FindByID devuelve nil, nil si no existe.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

func (r *UserRepo) findOne(ctx context.Context, where squirrel.Sqlizer) (*entity.User, error) {
	sql, args, err := builder().
		Select(userColumns...).
		From("auth.users").
		Where(where).
		Where(squirrel.Eq{"deleted_at": nil}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find user: %w", err)
	}
	var row userRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, mapError("find user", err)
	}
	return &entity.User{
		ID:           row.ID,
		Email:        text(row.Email),
		PasswordHash: text(row.EncryptedPassword),
		BannedUntil:  row.BannedUntil,
		CreatedAt:    timestamp(row.CreatedAt),
	}, nil
}
