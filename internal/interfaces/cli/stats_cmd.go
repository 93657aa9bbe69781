package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/frascos-bo/frascos/internal/application/dto"
	"github.com/frascos-bo/frascos/internal/domain/inventory"
	"github.com/frascos-bo/frascos/internal/domain/stats"
)

// ── stats ────────────────────────────────────────────────────────────────────

func (a *App) runStats(ctx context.Context, args []string) error {
	fs := a.flagSet("stats")
	rangeFlag := fs.String("range", "all", "all|today|7d|30d")
	dateFlag := fs.String("date", "", "día exacto YYYY-MM-DD (gana sobre --range)")
	asJSON := fs.Bool("json", false, "salida JSON")
	if err := fs.Parse(args); err != nil {
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

	sum, err := a.deps.Dashboard.GetSummary(ctx, ownerID, spec)
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(a.out, sum)
	}

	bs := sum.Stats
	tw := table(a.out)
	row(tw, "INVENTARIO")
	row(tw, "  Stock actual", jars(bs.CurrentStock))
	row(tw, "  Total comprado", jars(bs.TotalPurchasedQuantity))
	row(tw, "  Total vendido", jars(bs.TotalSoldQuantity))
	row(tw, "FINANCIERO")
	row(tw, "  Total invertido", a.amount(bs.TotalPurchasesCost))
	row(tw, "  Total ventas", a.amount(bs.TotalSalesRevenue))
	row(tw, "  Ganancia neta", a.amount(bs.NetProfit))
	row(tw, "PERÍODO: "+sum.Period.WindowLabel)
	a.periodRows(tw, sum.Period)
	if err := tw.Flush(); err != nil {
		return err
	}

	switch {
	case sum.NegativeStock:
		fmt.Fprintf(a.out, "\n¡Atención! stock negativo (%d): hay más ventas que compras registradas.\n", bs.CurrentStock)
	case bs.CurrentStock == 0:
		fmt.Fprintln(a.out, "\nNo hay frascos disponibles. ¡Registra una compra para reponer el inventario!")
	case sum.LowStock:
		fmt.Fprintf(a.out, "\nStock bajo: quedan menos de %d frascos.\n", inventory.LowStockThreshold)
	}
	return nil
}

// ── periods ──────────────────────────────────────────────────────────────────

func (a *App) runPeriods(ctx context.Context, args []string) error {
	fs := a.flagSet("periods")
	req, err := a.periodFlags(fs, args)
	if err != nil {
		return err
	}
	ownerID, err := a.owner(ctx)
	if err != nil {
		return err
	}

	out, err := a.deps.Dashboard.GetPeriods(ctx, ownerID, req.PeriodsRequest)
	if err != nil {
		return err
	}
	if req.json {
		return writeJSON(a.out, out)
	}

	tw := table(a.out)
	for _, p := range []stats.PeriodStats{out.Day, out.Week, out.Month} {
		row(tw, p.WindowLabel)
		a.periodRows(tw, p)
	}
	return tw.Flush()
}

type periodArgs struct {
	dto.PeriodsRequest
	json bool
}

// periodFlags --date, --week y --month comunes a periods y export period.
func (a *App) periodFlags(fs *pflag.FlagSet, args []string) (periodArgs, error) {
	dateFlag := fs.String("date", "", "día de la tarjeta diaria YYYY-MM-DD (por defecto hoy)")
	week := fs.Int("week", 0, "semana: 0 esta semana, -1 la pasada, ...")
	month := fs.String("month", "", "mes YYYY-MM (por defecto el actual)")
	asJSON := fs.Bool("json", false, "salida JSON")
	if err := fs.Parse(args); err != nil {
		return periodArgs{}, err
	}

	out := periodArgs{PeriodsRequest: dto.PeriodsRequest{WeekOffset: *week}, json: *asJSON}
	if *week > 0 {
		return periodArgs{}, usageErrorf("--week debe ser 0 o negativo")
	}
	if *dateFlag != "" {
		d, err := stats.ParseDay(*dateFlag)
		if err != nil {
			return periodArgs{}, usageErrorf("%v", err)
		}
		out.Day = &d
	}
	if *month != "" {
		y, m, err := parseMonth(*month)
		if err != nil {
			return periodArgs{}, err
		}
		out.Year, out.Month = y, m
	}
	return out, nil
}

// ── today ────────────────────────────────────────────────────────────────────

func (a *App) runToday(ctx context.Context, args []string) error {
	fs := a.flagSet("today")
	asJSON := fs.Bool("json", false, "salida JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ownerID, err := a.owner(ctx)
	if err != nil {
		return err
	}

	cmp, err := a.deps.Dashboard.GetToday(ctx, ownerID)
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(a.out, cmp)
	}

	tw := table(a.out)
	row(tw, "", "HOY", "AYER", "CAMBIO")
	row(tw, "Ventas", jars(cmp.Today.SalesQuantity), jars(cmp.Yesterday.SalesQuantity), "")
	row(tw, "  monto", a.amount(cmp.Today.SalesAmount), a.amount(cmp.Yesterday.SalesAmount), percent(cmp.SalesChange))
	row(tw, "Compras", jars(cmp.Today.PurchasesQuantity), jars(cmp.Yesterday.PurchasesQuantity), "")
	row(tw, "  monto", a.amount(cmp.Today.PurchasesAmount), a.amount(cmp.Yesterday.PurchasesAmount), percent(cmp.PurchasesChange))
	return tw.Flush()
}

// ── daily ────────────────────────────────────────────────────────────────────

func (a *App) runDaily(ctx context.Context, args []string) error {
	fs := a.flagSet("daily")
	rangeFlag := fs.String("range", "all", "all|today|7d|30d")
	dateFlag := fs.String("date", "", "día exacto YYYY-MM-DD")
	asJSON := fs.Bool("json", false, "salida JSON")
	if err := fs.Parse(args); err != nil {
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

	out, err := a.deps.Dashboard.GetDailySales(ctx, ownerID, spec)
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(a.out, out)
	}
	if len(out.Sales.Days) == 0 {
		fmt.Fprintln(a.out, "No hay ventas registradas en este período")
		return nil
	}

	tw := table(a.out)
	row(tw, "FECHA", "VENTAS", "FRASCOS", "MONTO", "PROM. UNIT.")
	for _, b := range out.Sales.Days {
		row(tw, b.Weekday+" "+stats.DayLabel(b.Day), fmt.Sprint(b.Count), fmt.Sprint(b.Quantity),
			a.number(b.Amount), a.number(b.AverageUnitValue))
	}
	t := out.Sales.Totals
	row(tw, "TOTAL ("+out.Filter+")", fmt.Sprint(t.Count), fmt.Sprint(t.Quantity),
		a.number(t.Amount), a.number(t.AverageUnitValue))
	return tw.Flush()
}

// ── chart ────────────────────────────────────────────────────────────────────

func (a *App) runChart(ctx context.Context, args []string) error {
	fs := a.flagSet("chart")
	mode := fs.String("mode", string(dto.ChartDaily), "day (últimos 30 días) | month (todo el historial)")
	asJSON := fs.Bool("json", false, "salida JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ownerID, err := a.owner(ctx)
	if err != nil {
		return err
	}

	out, err := a.deps.Dashboard.GetChart(ctx, ownerID, dto.ChartMode(*mode))
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(a.out, out)
	}

	tw := table(a.out)
	row(tw, "PERÍODO", "COMPRAS", "VENTAS", "MONTO COMPRAS", "MONTO VENTAS")
	for _, p := range out.Points {
		row(tw, p.Label, fmt.Sprint(p.Purchases), fmt.Sprint(p.Sales), a.number(p.PurchasesAmount), a.number(p.SalesAmount))
	}
	return tw.Flush()
}

func (a *App) periodRows(tw *tabwriter.Writer, p stats.PeriodStats) {
	fmt.Fprintf(tw, "  Ventas\t%s\t%s\n", jars(p.SalesQuantity), a.amount(p.SalesAmount))
	fmt.Fprintf(tw, "  Compras\t%s\t%s\n", jars(p.PurchasesQuantity), a.amount(p.PurchasesAmount))
}
