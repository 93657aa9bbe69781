package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/frascos-bo/frascos/internal/application/dto"
	"github.com/frascos-bo/frascos/internal/domain/history"
	"github.com/frascos-bo/frascos/internal/domain/stats"
)

// ── purchases ────────────────────────────────────────────────────────────────

func (a *App) runPurchases(ctx context.Context, args []string) error {
	sub, rest, err := subcommand(args, "list", "add", "update", "delete")
	if err != nil {
		return err
	}
	fs := a.flagSet("purchases " + sub)
	asJSON := fs.Bool("json", false, "salida JSON")

	switch sub {
	case "list":
		rangeFlag, dateFlag, limit := listFlags(fs, a.deps.FetchLimit)
		if err := fs.Parse(rest); err != nil {
			return err
		}
		spec, err := filterSpec(*rangeFlag, *dateFlag)
		if err != nil {
			return err
		}
		ownerID, err := a.owner(ctx)
		if err != nil {
			return err
		}
		rows, err := a.deps.Purchases.List(ctx, ownerID, *limit)
		if err != nil {
			return err
		}
		rows = stats.Filter(rows, spec, a.deps.Now())
		if *asJSON {
			return writeJSON(a.out, rows)
		}
		return a.printPurchases(rows)

	case "add", "update":
		qty, price, notes := recordFlags(fs, "price", "total pagado")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		in, err := purchaseRequest(*qty, *price, *notes)
		if err != nil {
			return err
		}
		ownerID, err := a.owner(ctx)
		if err != nil {
			return err
		}
		var out *dto.PurchaseResponse
		if sub == "add" {
			out, err = a.deps.Purchases.Create(ctx, ownerID, in)
		} else {
			id, idErr := singleArg(fs, "id de la compra")
			if idErr != nil {
				return idErr
			}
			out, err = a.deps.Purchases.Update(ctx, ownerID, id, in)
		}
		if err != nil {
			return err
		}
		if *asJSON {
			return writeJSON(a.out, out)
		}
		fmt.Fprintf(a.out, "Compra guardada: %s por %s (costo unitario %s)\n",
			jars(out.Quantity), a.amount(out.TotalPrice), a.amount(out.UnitCost))
		return nil

	default: // delete
		if err := fs.Parse(rest); err != nil {
			return err
		}
		id, err := singleArg(fs, "id de la compra")
		if err != nil {
			return err
		}
		ownerID, err := a.owner(ctx)
		if err != nil {
			return err
		}
		if err := a.deps.Purchases.Delete(ctx, ownerID, id); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Compra eliminada")
		return nil
	}
}

func (a *App) printPurchases(rows []dto.PurchaseResponse) error {
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No hay compras en este período")
		return nil
	}
	tw := table(a.out)
	row(tw, "ID", "FECHA", "CANTIDAD", "TOTAL", "COSTO UNIT.", "NOTAS")
	for _, p := range rows {
		row(tw, p.ID, a.dateTime(p.CreatedAt), fmt.Sprint(p.Quantity), a.number(p.TotalPrice), a.number(p.UnitCost), p.Notes)
	}
	return tw.Flush()
}

// ── sales ────────────────────────────────────────────────────────────────────

func (a *App) runSales(ctx context.Context, args []string) error {
	sub, rest, err := subcommand(args, "list", "add", "update", "delete")
	if err != nil {
		return err
	}
	fs := a.flagSet("sales " + sub)
	asJSON := fs.Bool("json", false, "salida JSON")

	switch sub {
	case "list":
		rangeFlag, dateFlag, limit := listFlags(fs, a.deps.FetchLimit)
		if err := fs.Parse(rest); err != nil {
			return err
		}
		spec, err := filterSpec(*rangeFlag, *dateFlag)
		if err != nil {
			return err
		}
		ownerID, err := a.owner(ctx)
		if err != nil {
			return err
		}
		rows, err := a.deps.Sales.List(ctx, ownerID, *limit)
		if err != nil {
			return err
		}
		rows = stats.Filter(rows, spec, a.deps.Now())
		if *asJSON {
			return writeJSON(a.out, rows)
		}
		return a.printSales(rows)

	case "add", "update":
		qty, price, notes := recordFlags(fs, "price", "precio por frasco")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		in, err := saleRequest(*qty, *price, *notes)
		if err != nil {
			return err
		}
		ownerID, err := a.owner(ctx)
		if err != nil {
			return err
		}
		var out *dto.SaleResponse
		if sub == "add" {
			out, err = a.deps.Sales.Create(ctx, ownerID, in)
		} else {
			id, idErr := singleArg(fs, "id de la venta")
			if idErr != nil {
				return idErr
			}
			out, err = a.deps.Sales.Update(ctx, ownerID, id, in)
		}
		if err != nil {
			return err
		}
		if *asJSON {
			return writeJSON(a.out, out)
		}
		fmt.Fprintf(a.out, "Venta guardada: %s a %s (total %s)\n",
			jars(out.Quantity), a.amount(out.UnitPrice), a.amount(out.TotalAmount))
		return nil

	default: // delete
		if err := fs.Parse(rest); err != nil {
			return err
		}
		id, err := singleArg(fs, "id de la venta")
		if err != nil {
			return err
		}
		ownerID, err := a.owner(ctx)
		if err != nil {
			return err
		}
		if err := a.deps.Sales.Delete(ctx, ownerID, id); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Venta eliminada")
		return nil
	}
}

func (a *App) printSales(rows []dto.SaleResponse) error {
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No hay ventas en este período")
		return nil
	}
	tw := table(a.out)
	row(tw, "ID", "FECHA", "CANTIDAD", "PRECIO UNIT.", "TOTAL", "NOTAS")
	for _, s := range rows {
		row(tw, s.ID, a.dateTime(s.CreatedAt), fmt.Sprint(s.Quantity), a.number(s.UnitPrice), a.number(s.TotalAmount), s.Notes)
	}
	return tw.Flush()
}

// ── expenses ─────────────────────────────────────────────────────────────────

func (a *App) runExpenses(ctx context.Context, args []string) error {
	_, rest, err := subcommand(args, "list")
	if err != nil {
		return err
	}
	fs := a.flagSet("expenses list")
	asJSON := fs.Bool("json", false, "salida JSON")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	ownerID, err := a.owner(ctx)
	if err != nil {
		return err
	}

	rows, err := a.deps.History.Expenses(ctx, ownerID)
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(a.out, rows)
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No hay gastos registrados")
		return nil
	}
	tw := table(a.out)
	row(tw, "FECHA", "DESCRIPCIÓN", "MONTO", "NOTAS")
	for _, e := range rows {
		row(tw, a.dateTime(e.CreatedAt), e.Description, a.number(e.Amount), e.Notes)
	}
	return tw.Flush()
}

// ── history ──────────────────────────────────────────────────────────────────

func (a *App) runHistory(ctx context.Context, args []string) error {
	fs := a.flagSet("history")
	typeFlag := fs.String("type", "all", "all|purchase|sale|expense")
	search := fs.String("search", "", "texto a buscar (sin distinguir mayúsculas)")
	rangeFlag := fs.String("range", "all", "all|today|7d|30d")
	dateFlag := fs.String("date", "", "día exacto YYYY-MM-DD")
	asJSON := fs.Bool("json", false, "salida JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	t, err := history.ParseType(*typeFlag)
	if err != nil {
		return usageErrorf("%v", err)
	}
	spec, err := filterSpec(*rangeFlag, *dateFlag)
	if err != nil {
		return err
	}
	ownerID, err := a.owner(ctx)
	if err != nil {
		return err
	}

	res, err := a.deps.History.Search(ctx, ownerID, history.Query{Type: t, Filter: spec, Search: *search})
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(a.out, res)
	}

	fmt.Fprintf(a.out, "Compras: %d  Ventas: %d  Gastos: %d  Mostrando: %d\n\n",
		res.Counts[history.TypePurchase], res.Counts[history.TypeSale], res.Counts[history.TypeExpense], len(res.Entries))
	if len(res.Entries) == 0 {
		if *search != "" {
			fmt.Fprintln(a.out, "No se encontraron resultados")
		} else {
			fmt.Fprintln(a.out, "No hay transacciones en este período")
		}
		return nil
	}
	tw := table(a.out)
	row(tw, "FECHA", "TIPO", "DETALLE", "MONTO", "NOTAS")
	for _, e := range res.Entries {
		row(tw, a.dateTime(e.CreatedAt), e.Type.Label(), e.Display, a.number(e.Amount), e.Notes)
	}
	return tw.Flush()
}

// ── flags compartidos ────────────────────────────────────────────────────────

func listFlags(fs *pflag.FlagSet, defaultLimit int) (rangeFlag, dateFlag *string, limit *int) {
	rangeFlag = fs.String("range", "all", "all|today|7d|30d")
	dateFlag = fs.String("date", "", "día exacto YYYY-MM-DD")
	limit = fs.Int("limit", defaultLimit, "máximo de registros leídos (0 = sin límite)")
	return rangeFlag, dateFlag, limit
}

func recordFlags(fs *pflag.FlagSet, priceName, priceUsage string) (qty *int, price, notes *string) {
	qty = fs.IntP("quantity", "q", 0, "cantidad de frascos")
	price = fs.StringP(priceName, "p", "", priceUsage)
	notes = fs.StringP("notes", "n", "", "notas")
	return qty, price, notes
}

func purchaseRequest(qty int, price, notes string) (dto.PurchaseRequest, error) {
	total, err := parseMoney("price", price)
	if err != nil {
		return dto.PurchaseRequest{}, err
	}
	return dto.PurchaseRequest{Quantity: qty, TotalPrice: total, Notes: notes}, nil
}

func saleRequest(qty int, price, notes string) (dto.SaleRequest, error) {
	unit, err := parseMoney("price", price)
	if err != nil {
		return dto.SaleRequest{}, err
	}
	return dto.SaleRequest{Quantity: qty, UnitPrice: unit, Notes: notes}, nil
}

// singleArg el único argumento posicional (un id).
func singleArg(fs *pflag.FlagSet, what string) (string, error) {
	if fs.NArg() != 1 {
		return "", usageErrorf("se espera un argumento: %s", what)
	}
	return strings.TrimSpace(fs.Arg(0)), nil
}
