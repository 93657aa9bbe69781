package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto general del negocio. Solo aparece en el historial; no afecta stock.
type Expense struct {
	ID          string
	OwnerID     string
	Description string
	Amount      decimal.Decimal
	Notes       string
	CreatedAt   time.Time
}

func (e Expense) Timestamp() time.Time { return e.CreatedAt }
