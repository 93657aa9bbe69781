package usecase

import (
	"context"

	"github.com/frascos-bo/frascos/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		purchases repository.PurchaseRepository,
		sales repository.SaleRepository,
	) error) error
}
