// Package history arma la línea de tiempo unificada de compras, ventas y gastos.
package history

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/stats"
)

// Type tipo de movimiento.
type Type string

const (
	TypeAll      Type = "all"
	TypePurchase Type = "purchase"
	TypeSale     Type = "sale"
	TypeExpense  Type = "expense"
)

// ParseType acepta los nombres en inglés y en español.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "todos":
		return TypeAll, nil
	case "purchase", "purchases", "compra", "compras":
		return TypePurchase, nil
	case "sale", "sales", "venta", "ventas":
		return TypeSale, nil
	case "expense", "expenses", "gasto", "gastos":
		return TypeExpense, nil
	}
	return TypeAll, fmt.Errorf("tipo %q no soportado (all|purchase|sale|expense)", s)
}

// Label etiqueta visible del tipo.
func (t Type) Label() string {
	switch t {
	case TypePurchase:
		return "Compra"
	case TypeSale:
		return "Venta"
	case TypeExpense:
		return "Gasto"
	}
	return "Todos"
}

// Entry movimiento del historial.
type Entry struct {
	Type      Type            `json:"type"`
	ID        string          `json:"id"`
	Display   string          `json:"display"`
	Quantity  int             `json:"quantity,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`

	searchText string
}

func (e Entry) Timestamp() time.Time { return e.CreatedAt }

// Build une los tres conjuntos y los ordena del más reciente al más antiguo.
// Los registros sin fecha quedan al final conservando su orden de llegada.
func Build(purchases []entity.Purchase, sales []entity.Sale, expenses []entity.Expense) []Entry {
	out := make([]Entry, 0, len(purchases)+len(sales)+len(expenses))
	for _, p := range purchases {
		out = append(out, Entry{
			Type:       TypePurchase,
			ID:         p.ID,
			Display:    fmt.Sprintf("Compra: %d frascos", p.Quantity),
			Quantity:   p.Quantity,
			Amount:     p.TotalPrice,
			Notes:      p.Notes,
			CreatedAt:  p.CreatedAt,
			searchText: fmt.Sprintf("compra %d frascos %s", p.Quantity, p.Notes),
		})
	}
	for _, s := range sales {
		out = append(out, Entry{
			Type:       TypeSale,
			ID:         s.ID,
			Display:    fmt.Sprintf("Venta: %d frascos", s.Quantity),
			Quantity:   s.Quantity,
			Amount:     s.TotalAmount(),
			Notes:      s.Notes,
			CreatedAt:  s.CreatedAt,
			searchText: fmt.Sprintf("venta %d frascos %s", s.Quantity, s.Notes),
		})
	}
	for _, e := range expenses {
		out = append(out, Entry{
			Type:       TypeExpense,
			ID:         e.ID,
			Display:    e.Description,
			Amount:     e.Amount,
			Notes:      e.Notes,
			CreatedAt:  e.CreatedAt,
			searchText: fmt.Sprintf("gasto %s %s", e.Description, e.Notes),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CreatedAt, out[j].CreatedAt
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.After(b)
	})
	return out
}

// Query criterios combinables del historial.
type Query struct {
	Type   Type
	Filter stats.FilterSpec
	Search string
}

// Result movimientos que cumplen la consulta y conteos por tipo sobre el total sin filtrar.
type Result struct {
	Entries []Entry      `json:"entries"`
	Total   int          `json:"total"`
	Counts  map[Type]int `json:"counts"`
}

// Apply filtra por tipo, por fecha y por texto (sin distinguir mayúsculas).
func Apply(entries []Entry, q Query, now time.Time) Result {
	counts := map[Type]int{TypePurchase: 0, TypeSale: 0, TypeExpense: 0}
	for _, e := range entries {
		counts[e.Type]++
	}

	selected := entries
	if q.Type != "" && q.Type != TypeAll {
		byType := make([]Entry, 0, len(selected))
		for _, e := range selected {
			if e.Type == q.Type {
				byType = append(byType, e)
			}
		}
		selected = byType
	}

	selected = stats.Filter(selected, q.Filter, now)

	if term := strings.TrimSpace(q.Search); term != "" {
		folder := cases.Fold()
		needle := folder.String(term)
		matched := make([]Entry, 0, len(selected))
		for _, e := range selected {
			if strings.Contains(folder.String(e.searchText), needle) {
				matched = append(matched, e)
			}
		}
		selected = matched
	}

	return Result{Entries: selected, Total: len(entries), Counts: counts}
}
