package repository

import (
	"context"

	"github.com/frascos-bo/frascos/internal/domain/entity"
)

// UserRepository lectura de cuentas del proveedor de autenticación (solo lectura).
type UserRepository interface {
	// FindByEmail devuelve nil, nil si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
