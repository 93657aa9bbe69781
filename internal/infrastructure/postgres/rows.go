package postgres

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/frascos-bo/frascos/internal/domain/entity"
)

// ── Filas crudas ─────────────────────────────────────────────────────────────
// Las columnas numéricas se leen como texto (::text) y se normalizan aquí, en un solo lugar.
// Un valor que no se puede interpretar nunca es un error: cantidad → 0, monto → 0,
// fecha → cero (queda fuera de cualquier filtro por fecha).

type purchaseRow struct {
	ID         string     `db:"id"`
	UserID     *string    `db:"user_id"`
	Quantity   *string    `db:"quantity"`
	TotalPrice *string    `db:"total_price"`
	Notes      *string    `db:"notes"`
	CreatedAt  *time.Time `db:"created_at"`
}

type saleRow struct {
	ID        string     `db:"id"`
	UserID    *string    `db:"user_id"`
	Quantity  *string    `db:"quantity"`
	UnitPrice *string    `db:"unit_price"`
	Notes     *string    `db:"notes"`
	CreatedAt *time.Time `db:"created_at"`
}

type expenseRow struct {
	ID          string     `db:"id"`
	UserID      *string    `db:"user_id"`
	Description *string    `db:"description"`
	Amount      *string    `db:"amount"`
	Notes       *string    `db:"notes"`
	CreatedAt   *time.Time `db:"created_at"`
}

var (
	purchaseColumns = []string{
		"id::text AS id", "user_id::text AS user_id", "quantity::text AS quantity",
		"total_price::text AS total_price", "notes", "created_at",
	}
	saleColumns = []string{
		"id::text AS id", "user_id::text AS user_id", "quantity::text AS quantity",
		"unit_price::text AS unit_price", "notes", "created_at",
	}
	expenseColumns = []string{
		"id::text AS id", "user_id::text AS user_id", "description",
		"amount::text AS amount", "notes", "created_at",
	}
)

func (r purchaseRow) toEntity() entity.Purchase {
	return entity.Purchase{
		ID:         r.ID,
		OwnerID:    text(r.UserID),
		Quantity:   quantity(r.Quantity),
		TotalPrice: money(r.TotalPrice),
		Notes:      text(r.Notes),
		CreatedAt:  timestamp(r.CreatedAt),
	}
}

func (r saleRow) toEntity() entity.Sale {
	return entity.Sale{
		ID:        r.ID,
		OwnerID:   text(r.UserID),
		Quantity:  quantity(r.Quantity),
		UnitPrice: money(r.UnitPrice),
		Notes:     text(r.Notes),
		CreatedAt: timestamp(r.CreatedAt),
	}
}

func (r expenseRow) toEntity() entity.Expense {
	return entity.Expense{
		ID:          r.ID,
		OwnerID:     text(r.UserID),
		Description: text(r.Description),
		Amount:      money(r.Amount),
		Notes:       text(r.Notes),
		CreatedAt:   timestamp(r.CreatedAt),
	}
}

// quantity entero no negativo; "abc" o "-3" valen 0.
func quantity(raw *string) int {
	if raw == nil {
		return 0
	}
	n, err := cast.ToIntE(strings.TrimSpace(*raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// money decimal; NaN, vacío o texto no numérico valen 0.
func money(raw *string) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func text(raw *string) string {
	if raw == nil {
		return ""
	}
	return *raw
}

func timestamp(raw *time.Time) time.Time {
	if raw == nil {
		return time.Time{}
	}
	return *raw
}

func mapRows[R interface{ toEntity() E }, E any](rows []R) []E {
	out := make([]E, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntity())
	}
	return out
}
