package repository

import (
	"context"

	"github.com/frascos-bo/frascos/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas (mismo contrato que compras).
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Sale, error)
	Update(ctx context.Context, s *entity.Sale) error
	Delete(ctx context.Context, ownerID, id string) error
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]entity.Sale, error)
}
