package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/frascos-bo/frascos/internal/application/dto"
	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/inventory"
	"github.com/frascos-bo/frascos/internal/domain/repository"
	"github.com/frascos-bo/frascos/internal/domain/stats"
	"github.com/frascos-bo/frascos/pkg/logger"
)

// SaleUseCase alta, edición, baja y listado de ventas.
// Altas y ediciones verifican el stock dentro de la misma transacción que escribe.
type SaleUseCase struct {
	repo repository.SaleRepository
	tx   TxRunner
	log  *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, tx TxRunner, log *logger.Logger) *SaleUseCase {
	return &SaleUseCase{repo: repo, tx: tx, log: log}
}

// Create registra una venta si hay frascos suficientes.
func (uc *SaleUseCase) Create(ctx context.Context, ownerID string, in dto.SaleRequest) (*dto.SaleResponse, error) {
	if err := validateAmounts(in.Quantity, in.UnitPrice); err != nil {
		return nil, err
	}
	notes, err := normalizeNotes(in.Notes)
	if err != nil {
		return nil, err
	}
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice.Round(2),
		Notes:     notes,
	}
	err = uc.tx.Run(ctx, func(purchases repository.PurchaseRepository, sales repository.SaleRepository) error {
		stock, err := currentStock(ctx, ownerID, purchases, sales)
		if err != nil {
			return err
		}
		if err := inventory.CheckSale(stock, sale.Quantity); err != nil {
			return err
		}
		return sales.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("sale_id", sale.ID).Int("quantity", sale.Quantity).Msg("venta registrada")
	return toSaleResponse(*sale), nil
}

// Update reemplaza cantidad, precio y notas. La cantidad anterior vuelve al stock antes de verificar.
func (uc *SaleUseCase) Update(ctx context.Context, ownerID, id string, in dto.SaleRequest) (*dto.SaleResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := validateAmounts(in.Quantity, in.UnitPrice); err != nil {
		return nil, err
	}
	notes, err := normalizeNotes(in.Notes)
	if err != nil {
		return nil, err
	}
	var updated *entity.Sale
	err = uc.tx.Run(ctx, func(purchases repository.PurchaseRepository, sales repository.SaleRepository) error {
		sale, err := sales.GetByID(ctx, ownerID, id)
		if err != nil {
			return err
		}
		stock, err := currentStock(ctx, ownerID, purchases, sales)
		if err != nil {
			return err
		}
		if in.Quantity > sale.Quantity {
			if err := inventory.CheckSale(stock+sale.Quantity, in.Quantity); err != nil {
				return err
			}
		}
		sale.Quantity = in.Quantity
		sale.UnitPrice = in.UnitPrice.Round(2)
		sale.Notes = notes
		updated = sale
		return sales.Update(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("sale_id", id).Msg("venta actualizada")
	return toSaleResponse(*updated), nil
}

// Delete elimina la venta (devuelve los frascos al stock).
func (uc *SaleUseCase) Delete(ctx context.Context, ownerID, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	uc.log.Info().Str("sale_id", id).Msg("venta eliminada")
	return nil
}

// List ventas más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context, ownerID string, limit int) ([]dto.SaleResponse, error) {
	rows, err := uc.repo.ListByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

// currentStock sobre todo el historial, nunca sobre una lectura limitada.
func currentStock(ctx context.Context, ownerID string, purchases repository.PurchaseRepository, sales repository.SaleRepository) (int, error) {
	ps, err := purchases.ListByOwner(ctx, ownerID, 0)
	if err != nil {
		return 0, err
	}
	ss, err := sales.ListByOwner(ctx, ownerID, 0)
	if err != nil {
		return 0, err
	}
	return stats.ComputeBusinessStats(ps, ss).CurrentStock, nil
}

func toSaleResponse(s entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          s.ID,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		TotalAmount: s.TotalAmount(),
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
	}
}
