package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/frascos-bo/frascos/internal/application/dto"
	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/repository"
	"github.com/frascos-bo/frascos/pkg/logger"
)

// PurchaseUseCase alta, edición, baja y listado de compras.
type PurchaseUseCase struct {
	repo repository.PurchaseRepository
	log  *logger.Logger
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(repo repository.PurchaseRepository, log *logger.Logger) *PurchaseUseCase {
	return &PurchaseUseCase{repo: repo, log: log}
}

// Create registra una compra. El costo por frasco se deriva del total.
func (uc *PurchaseUseCase) Create(ctx context.Context, ownerID string, in dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := validateAmounts(in.Quantity, in.TotalPrice); err != nil {
		return nil, err
	}
	notes, err := normalizeNotes(in.Notes)
	if err != nil {
		return nil, err
	}
	p := &entity.Purchase{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		Quantity:   in.Quantity,
		TotalPrice: in.TotalPrice.Round(2),
		Notes:      notes,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("purchase_id", p.ID).Int("quantity", p.Quantity).Msg("compra registrada")
	return toPurchaseResponse(*p), nil
}

// Update reemplaza cantidad, total y notas.
func (uc *PurchaseUseCase) Update(ctx context.Context, ownerID, id string, in dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := validateAmounts(in.Quantity, in.TotalPrice); err != nil {
		return nil, err
	}
	notes, err := normalizeNotes(in.Notes)
	if err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	p.Quantity = in.Quantity
	p.TotalPrice = in.TotalPrice.Round(2)
	p.Notes = notes
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("purchase_id", id).Msg("compra actualizada")
	return toPurchaseResponse(*p), nil
}

// Delete elimina la compra. Puede dejar el stock en negativo; eso se reporta, no se impide.
func (uc *PurchaseUseCase) Delete(ctx context.Context, ownerID, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	uc.log.Info().Str("purchase_id", id).Msg("compra eliminada")
	return nil
}

// List compras más recientes primero.
func (uc *PurchaseUseCase) List(ctx context.Context, ownerID string, limit int) ([]dto.PurchaseResponse, error) {
	rows, err := uc.repo.ListByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, *toPurchaseResponse(p))
	}
	return out, nil
}

func toPurchaseResponse(p entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:         p.ID,
		Quantity:   p.Quantity,
		TotalPrice: p.TotalPrice,
		UnitCost:   p.UnitCost(),
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
	}
}
