package repository

import (
	"context"

	"github.com/frascos-bo/frascos/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para compras.
// Todas las operaciones se acotan al propietario (owner); un id de otro owner se trata como inexistente.
type PurchaseRepository interface {
	Create(ctx context.Context, p *entity.Purchase) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Purchase, error)
	// Update modifica cantidad, total y notas; nunca el owner ni la fecha.
	Update(ctx context.Context, p *entity.Purchase) error
	Delete(ctx context.Context, ownerID, id string) error
	// ListByOwner devuelve las compras más recientes primero, hasta limit (<= 0 sin límite).
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]entity.Purchase, error)
}
