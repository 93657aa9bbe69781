package stats

import (
	"github.com/shopspring/decimal"

	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/inventory"
)

// Quantified registro con cantidad de frascos.
type Quantified interface {
	Units() int
}

// BusinessStats resumen del negocio sobre todo el historial.
// CurrentStock puede ser negativo si hay más ventas que compras registradas; no se recorta.
type BusinessStats struct {
	CurrentStock           int             `json:"current_stock"`
	TotalPurchasedQuantity int             `json:"total_purchased_quantity"`
	TotalSoldQuantity      int             `json:"total_sold_quantity"`
	TotalPurchasesCost     decimal.Decimal `json:"total_purchases_cost"`
	TotalSalesRevenue      decimal.Decimal `json:"total_sales_revenue"`
	NetProfit              decimal.Decimal `json:"net_profit"`
}

// PeriodStats cantidades y montos dentro de una ventana. No incluye ganancia.
type PeriodStats struct {
	WindowLabel       string          `json:"window_label"`
	SalesQuantity     int             `json:"sales_quantity"`
	SalesAmount       decimal.Decimal `json:"sales_amount"`
	PurchasesQuantity int             `json:"purchases_quantity"`
	PurchasesAmount   decimal.Decimal `json:"purchases_amount"`
}

// SumQuantity suma las cantidades. Los valores basura ya llegan como 0 desde el adaptador.
func SumQuantity[T Quantified](records []T) int {
	total := 0
	for _, r := range records {
		total += r.Units()
	}
	return total
}

// SumSalesAmount Σ cantidad × precio unitario.
func SumSalesAmount(sales []entity.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.TotalAmount())
	}
	return total
}

// SumPurchasesAmount Σ total pagado.
func SumPurchasesAmount(purchases []entity.Purchase) decimal.Decimal {
	total := decimal.Zero
	for _, p := range purchases {
		total = total.Add(p.TotalPrice)
	}
	return total
}

// AverageUnitValue total / cantidad; 0 si la cantidad es <= 0.
func AverageUnitValue(total decimal.Decimal, quantity int) decimal.Decimal {
	return inventory.UnitValue(total, quantity)
}

// ComputeBusinessStats calcula stock, costos, ingresos y ganancia neta del historial completo.
func ComputeBusinessStats(purchases []entity.Purchase, sales []entity.Sale) BusinessStats {
	purchased := SumQuantity(purchases)
	sold := SumQuantity(sales)
	cost := SumPurchasesAmount(purchases)
	revenue := SumSalesAmount(sales)
	return BusinessStats{
		CurrentStock:           purchased - sold,
		TotalPurchasedQuantity: purchased,
		TotalSoldQuantity:      sold,
		TotalPurchasesCost:     cost,
		TotalSalesRevenue:      revenue,
		NetProfit:              revenue.Sub(cost),
	}
}

// ComputePeriodStats agrega ventas y compras cuyo instante cae dentro de w.
func ComputePeriodStats(sales []entity.Sale, purchases []entity.Purchase, w Window) PeriodStats {
	inSales := inWindow(sales, w)
	inPurchases := inWindow(purchases, w)
	return PeriodStats{
		WindowLabel:       w.Label,
		SalesQuantity:     SumQuantity(inSales),
		SalesAmount:       SumSalesAmount(inSales),
		PurchasesQuantity: SumQuantity(inPurchases),
		PurchasesAmount:   SumPurchasesAmount(inPurchases),
	}
}

func inWindow[T Dated](records []T, w Window) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if w.Contains(r.Timestamp()) {
			out = append(out, r)
		}
	}
	return out
}
