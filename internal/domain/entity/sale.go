package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta de frascos a un precio unitario.
type Sale struct {
	ID        string
	OwnerID   string
	Quantity  int             // frascos vendidos
	UnitPrice decimal.Decimal // precio por frasco
	Notes     string
	CreatedAt time.Time
}

// TotalAmount se recalcula siempre desde sus componentes (Quantity × UnitPrice);
// un total almacenado en la tabla puede estar desactualizado y no se usa.
func (s Sale) TotalAmount() decimal.Decimal {
	return decimal.NewFromInt(int64(s.Quantity)).Mul(s.UnitPrice)
}

func (s Sale) Timestamp() time.Time { return s.CreatedAt }

func (s Sale) Units() int { return s.Quantity }
