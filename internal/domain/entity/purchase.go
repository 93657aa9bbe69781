package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/frascos-bo/frascos/internal/domain/inventory"
)

// Purchase representa una compra de frascos. Se guarda el total pagado, no el precio unitario.
type Purchase struct {
	ID         string
	OwnerID    string
	Quantity   int             // frascos adquiridos
	TotalPrice decimal.Decimal // total pagado (2 decimales)
	Notes      string
	CreatedAt  time.Time // instante de creación; manda para cualquier agrupación por fecha
}

// UnitCost costo por frasco derivado: TotalPrice / Quantity (0 si Quantity <= 0).
func (p Purchase) UnitCost() decimal.Decimal {
	return inventory.UnitValue(p.TotalPrice, p.Quantity)
}

// Timestamp devuelve CreatedAt (filtros por fecha).
func (p Purchase) Timestamp() time.Time { return p.CreatedAt }

// Units devuelve la cantidad de frascos.
func (p Purchase) Units() int { return p.Quantity }
