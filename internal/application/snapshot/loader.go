// Package snapshot lee de una vez todos los registros del propietario.
// Las estadísticas siempre se calculan sobre una foto completa y recién leída.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/repository"
)

// Snapshot registros del propietario tal como estaban al leerlos.
type Snapshot struct {
	OwnerID   string
	Purchases []entity.Purchase
	Sales     []entity.Sale
	Expenses  []entity.Expense
	LoadedAt  time.Time
}

// Parts qué tablas leer.
type Parts struct {
	Expenses bool
}

// Loader lee compras, ventas y gastos en paralelo.
type Loader struct {
	purchases repository.PurchaseRepository
	sales     repository.SaleRepository
	expenses  repository.ExpenseRepository
	limit     int
	now       func() time.Time
}

// NewLoader limit se aplica a cada tabla (<= 0 sin límite).
func NewLoader(
	purchases repository.PurchaseRepository,
	sales repository.SaleRepository,
	expenses repository.ExpenseRepository,
	limit int,
) *Loader {
	return &Loader{purchases: purchases, sales: sales, expenses: expenses, limit: limit, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (l *Loader) WithClock(now func() time.Time) *Loader {
	l.now = now
	return l
}

// Load devuelve la foto completa o el primer error; nunca datos parciales.
func (l *Loader) Load(ctx context.Context, ownerID string, parts Parts) (*Snapshot, error) {
	return l.load(ctx, ownerID, parts, l.limit)
}

// LoadAll ignora el límite configurado (estadísticas de todo el historial).
func (l *Loader) LoadAll(ctx context.Context, ownerID string, parts Parts) (*Snapshot, error) {
	return l.load(ctx, ownerID, parts, 0)
}

func (l *Loader) load(ctx context.Context, ownerID string, parts Parts, limit int) (*Snapshot, error) {
	snap := &Snapshot{OwnerID: ownerID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := l.purchases.ListByOwner(gctx, ownerID, limit)
		if err != nil {
			return fmt.Errorf("leer compras: %w", err)
		}
		snap.Purchases = rows
		return nil
	})
	g.Go(func() error {
		rows, err := l.sales.ListByOwner(gctx, ownerID, limit)
		if err != nil {
			return fmt.Errorf("leer ventas: %w", err)
		}
		snap.Sales = rows
		return nil
	})
	if parts.Expenses && l.expenses != nil {
		g.Go(func() error {
			rows, err := l.expenses.ListByOwner(gctx, ownerID, limit)
			if err != nil {
				return fmt.Errorf("leer gastos: %w", err)
			}
			snap.Expenses = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.LoadedAt = l.now()
	return snap, nil
}
