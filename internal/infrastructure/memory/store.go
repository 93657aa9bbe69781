// Package memory implementa los repositorios en memoria. Lo usan los tests de los casos de uso.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/frascos-bo/frascos/internal/domain"
	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/repository"
)

var (
	_ repository.PurchaseRepository = (*PurchaseRepo)(nil)
	_ repository.SaleRepository     = (*SaleRepo)(nil)
	_ repository.ExpenseRepository  = (*ExpenseRepo)(nil)
)

// Store tablas en memoria protegidas por un mutex. ListErr simula una lectura fallida.
type Store struct {
	mu        sync.Mutex
	purchases []entity.Purchase
	sales     []entity.Sale
	expenses  []entity.Expense
	now       func() time.Time

	ListErr error
}

// New crea un store vacío; now fija created_at de las altas.
func New(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{now: now}
}

// Seed agrega registros tal cual (sin validar).
func (s *Store) Seed(purchases []entity.Purchase, sales []entity.Sale, expenses []entity.Expense) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = append(s.purchases, purchases...)
	s.sales = append(s.sales, sales...)
	s.expenses = append(s.expenses, expenses...)
	return s
}

func (s *Store) Purchases() *PurchaseRepo { return &PurchaseRepo{s: s} }
func (s *Store) Sales() *SaleRepo         { return &SaleRepo{s: s} }
func (s *Store) Expenses() *ExpenseRepo   { return &ExpenseRepo{s: s} }

// ── Compras ──────────────────────────────────────────────────────────────────

type PurchaseRepo struct{ s *Store }

func (r *PurchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.CreatedAt = r.s.now()
	r.s.purchases = append(r.s.purchases, *p)
	return nil
}

func (r *PurchaseRepo) GetByID(_ context.Context, ownerID, id string) (*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.purchases {
		if p.ID == id && p.OwnerID == ownerID {
			out := p
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *PurchaseRepo) Update(_ context.Context, p *entity.Purchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, cur := range r.s.purchases {
		if cur.ID == p.ID && cur.OwnerID == p.OwnerID {
			r.s.purchases[i].Quantity = p.Quantity
			r.s.purchases[i].TotalPrice = p.TotalPrice
			r.s.purchases[i].Notes = p.Notes
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *PurchaseRepo) Delete(_ context.Context, ownerID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, cur := range r.s.purchases {
		if cur.ID == id && cur.OwnerID == ownerID {
			r.s.purchases = append(r.s.purchases[:i], r.s.purchases[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *PurchaseRepo) ListByOwner(_ context.Context, ownerID string, limit int) ([]entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ListErr != nil {
		return nil, r.s.ListErr
	}
	return newestFirst(r.s.purchases, ownerID, limit, func(p entity.Purchase) (string, time.Time) {
		return p.OwnerID, p.CreatedAt
	}), nil
}

// ── Ventas ───────────────────────────────────────────────────────────────────

type SaleRepo struct{ s *Store }

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale.CreatedAt = r.s.now()
	r.s.sales = append(r.s.sales, *sale)
	return nil
}

func (r *SaleRepo) GetByID(_ context.Context, ownerID, id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sale := range r.s.sales {
		if sale.ID == id && sale.OwnerID == ownerID {
			out := sale
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *SaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, cur := range r.s.sales {
		if cur.ID == sale.ID && cur.OwnerID == sale.OwnerID {
			r.s.sales[i].Quantity = sale.Quantity
			r.s.sales[i].UnitPrice = sale.UnitPrice
			r.s.sales[i].Notes = sale.Notes
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *SaleRepo) Delete(_ context.Context, ownerID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, cur := range r.s.sales {
		if cur.ID == id && cur.OwnerID == ownerID {
			r.s.sales = append(r.s.sales[:i], r.s.sales[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *SaleRepo) ListByOwner(_ context.Context, ownerID string, limit int) ([]entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ListErr != nil {
		return nil, r.s.ListErr
	}
	return newestFirst(r.s.sales, ownerID, limit, func(s entity.Sale) (string, time.Time) {
		return s.OwnerID, s.CreatedAt
	}), nil
}

// ── Gastos ───────────────────────────────────────────────────────────────────

type ExpenseRepo struct{ s *Store }

func (r *ExpenseRepo) ListByOwner(_ context.Context, ownerID string, limit int) ([]entity.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ListErr != nil {
		return nil, r.s.ListErr
	}
	return newestFirst(r.s.expenses, ownerID, limit, func(e entity.Expense) (string, time.Time) {
		return e.OwnerID, e.CreatedAt
	}), nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

// Run ejecuta fn con los repos del store; no hay rollback si fn falla a mitad de camino.
func (s *Store) Run(_ context.Context, fn func(
	purchases repository.PurchaseRepository,
	sales repository.SaleRepository,
) error) error {
	return fn(s.Purchases(), s.Sales())
}

func newestFirst[T any](rows []T, ownerID string, limit int, key func(T) (string, time.Time)) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if owner, _ := key(r); owner == ownerID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		_, a := key(out[i])
		_, b := key(out[j])
		return a.After(b)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
