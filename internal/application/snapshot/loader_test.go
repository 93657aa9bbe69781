package snapshot_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frascos-bo/frascos/internal/application/snapshot"
	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/infrastructure/memory"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func seeded() *memory.Store {
	day := func(d int) time.Time { return time.Date(2024, 5, d, 9, 0, 0, 0, time.UTC) }
	return memory.New(nil).Seed(
		[]entity.Purchase{
			{ID: "p1", OwnerID: "yo", Quantity: 10, TotalPrice: decimal.NewFromInt(50), CreatedAt: day(1)},
			{ID: "p2", OwnerID: "yo", Quantity: 5, TotalPrice: decimal.NewFromInt(25), CreatedAt: day(3)},
			{ID: "px", OwnerID: "otro", Quantity: 99, TotalPrice: decimal.NewFromInt(1), CreatedAt: day(2)},
		},
		[]entity.Sale{{ID: "s1", OwnerID: "yo", Quantity: 2, UnitPrice: decimal.NewFromInt(8), CreatedAt: day(4)}},
		[]entity.Expense{{ID: "e1", OwnerID: "yo", Description: "Etiquetas", Amount: decimal.NewFromInt(5), CreatedAt: day(2)}},
	)
}

func TestLoad_SoloDelPropietarioYMasRecientesPrimero(t *testing.T) {
	store := seeded()
	loader := snapshot.NewLoader(store.Purchases(), store.Sales(), store.Expenses(), 100).
		WithClock(func() time.Time { return fixedNow })

	snap, err := loader.Load(context.Background(), "yo", snapshot.Parts{Expenses: true})
	require.NoError(t, err)

	require.Len(t, snap.Purchases, 2)
	assert.Equal(t, "p2", snap.Purchases[0].ID)
	assert.Len(t, snap.Sales, 1)
	assert.Len(t, snap.Expenses, 1)
	assert.Equal(t, fixedNow, snap.LoadedAt)
}

func TestLoad_LimitePorTablaYLoadAll(t *testing.T) {
	store := seeded()
	loader := snapshot.NewLoader(store.Purchases(), store.Sales(), store.Expenses(), 1)

	snap, err := loader.Load(context.Background(), "yo", snapshot.Parts{})
	require.NoError(t, err)
	assert.Len(t, snap.Purchases, 1)
	assert.Nil(t, snap.Expenses, "gastos no pedidos")

	all, err := loader.LoadAll(context.Background(), "yo", snapshot.Parts{})
	require.NoError(t, err)
	assert.Len(t, all.Purchases, 2)
}

func TestLoad_ErrorNoDevuelveDatosParciales(t *testing.T) {
	store := seeded()
	store.ListErr = errors.New("conexión cerrada")
	loader := snapshot.NewLoader(store.Purchases(), store.Sales(), store.Expenses(), 100)

	snap, err := loader.Load(context.Background(), "yo", snapshot.Parts{Expenses: true})
	assert.Nil(t, snap)
	assert.ErrorContains(t, err, "conexión cerrada")
}
