package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/frascos-bo/frascos/internal/domain"
)

// UnitValue divide un monto total entre una cantidad de frascos.
// Con cantidad <= 0 devuelve cero (nunca NaN ni pánico): alimenta precios por frasco que se muestran.
func UnitValue(total decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(quantity)))
}

// CheckSale valida que una venta de `quantity` frascos no supere el stock disponible.
func CheckSale(currentStock, quantity int) error {
	if quantity > currentStock {
		return fmt.Errorf("%w: solo hay %d frascos disponibles", domain.ErrInsufficientStock, max(currentStock, 0))
	}
	return nil
}

// LowStockThreshold debajo de este stock (y por encima de cero) se avisa que conviene reponer.
const LowStockThreshold = 50

// IsLowStock stock positivo pero bajo el umbral.
func IsLowStock(stock int) bool {
	return stock > 0 && stock < LowStockThreshold
}
