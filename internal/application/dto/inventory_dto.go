package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRequest alta o edición de una compra: cantidad y total pagado.
type PurchaseRequest struct {
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Notes      string          `json:"notes"`
}

// SaleRequest alta o edición de una venta: cantidad y precio por frasco.
type SaleRequest struct {
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Notes     string          `json:"notes"`
}

// PurchaseResponse compra con su costo unitario derivado.
type PurchaseResponse struct {
	ID         string          `json:"id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SaleResponse venta con su total recalculado.
type SaleResponse struct {
	ID          string          `json:"id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ExpenseResponse gasto tal como se lista.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Timestamp permite filtrar listados por fecha con stats.Filter.
func (r PurchaseResponse) Timestamp() time.Time { return r.CreatedAt }

func (r SaleResponse) Timestamp() time.Time { return r.CreatedAt }
