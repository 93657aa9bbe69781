package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/frascos-bo/frascos/internal/application/analytics"
	"github.com/frascos-bo/frascos/internal/application/auth"
	"github.com/frascos-bo/frascos/internal/application/dto"
	"github.com/frascos-bo/frascos/internal/application/report"
	"github.com/frascos-bo/frascos/internal/application/snapshot"
	"github.com/frascos-bo/frascos/internal/application/usecase"
	"github.com/frascos-bo/frascos/internal/domain/entity"
	"github.com/frascos-bo/frascos/internal/domain/history"
	"github.com/frascos-bo/frascos/internal/infrastructure/memory"
	"github.com/frascos-bo/frascos/internal/infrastructure/pdf"
	"github.com/frascos-bo/frascos/internal/interfaces/cli"
	"github.com/frascos-bo/frascos/pkg/jwt"
	"github.com/frascos-bo/frascos/pkg/logger"
	"github.com/frascos-bo/frascos/pkg/money"
)

const (
	secret     = "super-secret-jwt-token-for-tests"
	ownerID    = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	purchaseID = "11111111-1111-4111-8111-111111111111"
	missingID  = "99999999-9999-4999-8999-999999999999"
)

var (
	laPaz = time.FixedZone("BOT", -4*60*60)
	now   = time.Date(2024, time.May, 10, 18, 0, 0, 0, laPaz)
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type harness struct {
	app    *cli.App
	out    *bytes.Buffer
	errOut *bytes.Buffer
	store  *memory.Store
	dir    string
}

// ──────────────────────────────────────────────────────────────────────────────
// 100 comprados por 500 hace dos días, 30 vendidos a 8 ayer: stock 70.
// ──────────────────────────────────────────────────────────────────────────────
func newHarness(t *testing.T, withToken bool) *harness {
	t.Helper()
	clock := func() time.Time { return now }
	store := memory.New(clock).Seed(
		[]entity.Purchase{{ID: purchaseID, OwnerID: ownerID, Quantity: 100, TotalPrice: dec("500"), CreatedAt: now.AddDate(0, 0, -2)}},
		[]entity.Sale{{ID: "s1", OwnerID: ownerID, Quantity: 30, UnitPrice: dec("8"), Notes: "feria", CreatedAt: now.AddDate(0, 0, -1)}},
		[]entity.Expense{{ID: "e1", OwnerID: ownerID, Description: "Etiquetas", Amount: dec("35"), CreatedAt: now.Add(-time.Hour)}},
	)
	log := logger.Nop()
	loader := snapshot.NewLoader(store.Purchases(), store.Sales(), store.Expenses(), 100).WithClock(clock)
	fmtr := money.New("Bs.", language.English)

	creds := dto.Credentials{}
	if withToken {
		token, err := jwt.Generate(secret, ownerID, "duena@example.com", "frascos-test", time.Hour)
		require.NoError(t, err)
		creds.AccessToken = token
	}

	h := &harness{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}, store: store, dir: t.TempDir()}
	h.app = cli.New(cli.Deps{
		Auth:        auth.NewAuthUseCase(nil, auth.JWTConfig{Secret: secret}),
		Dashboard:   analytics.NewDashboardUseCase(loader, clock, log),
		Purchases:   usecase.NewPurchaseUseCase(store.Purchases(), log),
		Sales:       usecase.NewSaleUseCase(store.Sales(), store, log),
		History:     usecase.NewHistoryUseCase(loader, store.Expenses(), 100, clock),
		Export:      report.NewExportUseCase(loader, pdf.NewMarotoReportGenerator(fmtr, "test"), clock, log),
		Credentials: creds,
		Money:       fmtr,
		ReportDir:   h.dir,
		FetchLimit:  100,
		Now:         clock,
		Log:         log,
	}, cli.ConfigFlags(), h.out, h.errOut)
	return h
}

func (h *harness) run(args ...string) int {
	h.out.Reset()
	h.errOut.Reset()
	return h.app.Run(context.Background(), args)
}

func TestRun_SinComando(t *testing.T) {
	h := newHarness(t, true)

	assert.Equal(t, cli.ExitUsage, h.run())
	assert.Contains(t, h.errOut.String(), "uso: frascos")

	assert.Equal(t, cli.ExitUsage, h.run("inventar"))
	assert.Contains(t, h.errOut.String(), "comando desconocido")
}

func TestStats_Texto(t *testing.T) {
	h := newHarness(t, true)

	require.Equal(t, cli.ExitOK, h.run("stats", "--range", "7d"))
	out := h.out.String()
	assert.Contains(t, out, "70 frascos")
	assert.Contains(t, out, "Bs. 240.00")
	assert.Contains(t, out, "Bs. -260.00")
	assert.Contains(t, out, "Últimos 7 días")
}

func TestStats_JSON(t *testing.T) {
	h := newHarness(t, true)

	require.Equal(t, cli.ExitOK, h.run("stats", "--json"))
	var sum dto.SummaryDTO
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &sum))
	assert.Equal(t, 70, sum.Stats.CurrentStock)
	assert.Equal(t, "-260.00", sum.Stats.NetProfit.StringFixed(2))
	assert.False(t, sum.NegativeStock)
}

func TestStats_SinSesion(t *testing.T) {
	h := newHarness(t, false)

	assert.Equal(t, cli.ExitUnauthorized, h.run("stats"))
	assert.Contains(t, h.errOut.String(), "no hay sesión")
}

func TestStats_RangoInvalido(t *testing.T) {
	h := newHarness(t, true)

	assert.Equal(t, cli.ExitUsage, h.run("stats", "--range", "anual"))
	assert.Equal(t, cli.ExitUsage, h.run("stats", "--date", "10/05/2024"))
}

func TestSalesAdd_StockInsuficiente(t *testing.T) {
	h := newHarness(t, true)

	assert.Equal(t, cli.ExitConflict, h.run("sales", "add", "-q", "80", "-p", "8"))
	assert.Contains(t, h.errOut.String(), "70")
}

func TestSalesAdd_Ok(t *testing.T) {
	h := newHarness(t, true)

	require.Equal(t, cli.ExitOK, h.run("sales", "add", "-q", "5", "-p", "8,50", "-n", "vecina"))
	assert.Contains(t, h.out.String(), "Venta guardada: 5 frascos a Bs. 8.50 (total Bs. 42.50)")

	require.Equal(t, cli.ExitOK, h.run("stats", "--json"))
	var sum dto.SummaryDTO
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &sum))
	assert.Equal(t, 65, sum.Stats.CurrentStock)
}

func TestPurchasesAdd_PrecioCero(t *testing.T) {
	h := newHarness(t, true)

	assert.Equal(t, cli.ExitUsage, h.run("purchases", "add", "-q", "10", "-p", "0"))
	assert.Contains(t, h.errOut.String(), "mayores a 0")

	assert.Equal(t, cli.ExitUsage, h.run("purchases", "add", "-q", "10"))
}

func TestPurchases_UpdateYDelete(t *testing.T) {
	h := newHarness(t, true)

	require.Equal(t, cli.ExitOK, h.run("purchases", "update", purchaseID, "-q", "120", "-p", "600"))
	assert.Contains(t, h.out.String(), "costo unitario Bs. 5.00")

	assert.Equal(t, cli.ExitUsage, h.run("purchases", "update", "-q", "1", "-p", "1"))
	assert.Equal(t, cli.ExitUsage, h.run("purchases", "delete", "no-es-uuid"))
	assert.Equal(t, cli.ExitNotFound, h.run("purchases", "delete", missingID))
	require.Equal(t, cli.ExitOK, h.run("purchases", "delete", purchaseID))
}

func TestPurchasesList_FiltroHoy(t *testing.T) {
	h := newHarness(t, true)

	require.Equal(t, cli.ExitOK, h.run("purchases", "list", "--range", "today"))
	assert.Contains(t, h.out.String(), "No hay compras en este período")

	require.Equal(t, cli.ExitOK, h.run("purchases", "list", "--json"))
	var rows []dto.PurchaseResponse
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "5.00", rows[0].UnitCost.StringFixed(2))
}

func TestHistory_PorTipoYTexto(t *testing.T) {
	h := newHarness(t, true)

	require.Equal(t, cli.ExitOK, h.run("history", "--type", "venta", "--search", "FERIA", "--json"))
	var res history.Result
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &res))
	require.Len(t, res.Entries, 1)
	assert.Equal(t, history.TypeSale, res.Entries[0].Type)
	assert.Equal(t, 1, res.Counts[history.TypeExpense])

	assert.Equal(t, cli.ExitUsage, h.run("history", "--type", "devolucion"))
}

func TestExpensesList(t *testing.T) {
	h := newHarness(t, true)

	require.Equal(t, cli.ExitOK, h.run("expenses", "list"))
	assert.Contains(t, h.out.String(), "Etiquetas")
	assert.Contains(t, h.out.String(), "35.00")
}

func TestToday_ComparaConAyer(t *testing.T) {
	h := newHarness(t, true)

	require.Equal(t, cli.ExitOK, h.run("today"))
	assert.Contains(t, h.out.String(), "-100.0%")
}

func TestChart_ModoInvalido(t *testing.T) {
	h := newHarness(t, true)

	require.Equal(t, cli.ExitOK, h.run("chart", "--mode", "month"))
	assert.Contains(t, h.out.String(), "Mayo 2024")
	assert.Equal(t, cli.ExitUsage, h.run("chart", "--mode", "year"))
}

func TestPeriods_SemanaPositiva(t *testing.T) {
	h := newHarness(t, true)

	require.Equal(t, cli.ExitOK, h.run("periods", "--month", "2024-05", "--week", "-1"))
	assert.Contains(t, h.out.String(), "Semana Pasada")
	assert.Equal(t, cli.ExitUsage, h.run("periods", "--week", "2"))
}

func TestExport_Stats(t *testing.T) {
	h := newHarness(t, true)

	require.Equal(t, cli.ExitOK, h.run("export", "stats"))
	path := filepath.Join(h.dir, "reporte-completo_2024-05-10.pdf")
	assert.Contains(t, h.out.String(), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestExport_SinVentasHoy(t *testing.T) {
	h := newHarness(t, true)

	assert.Equal(t, cli.ExitUsage, h.run("export", "sales", "--range", "today"))
	assert.Contains(t, h.errOut.String(), "no hay ventas para exportar")
}

func TestMigrate_SinBase(t *testing.T) {
	h := newHarness(t, true)

	assert.Equal(t, cli.ExitUsage, h.run("migrate"))
}

func TestError_JSON(t *testing.T) {
	h := newHarness(t, true)

	require.Equal(t, cli.ExitConflict, h.run("sales", "add", "-q", "500", "-p", "8", "--json"))
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(h.errOut.Bytes(), &resp))
	assert.Equal(t, "INSUFFICIENT_STOCK", resp.Code)
}
