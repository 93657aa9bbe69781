package cli

import (
	"context"
	"fmt"

	"github.com/frascos-bo/frascos/internal/application/report"
)

// runExport genera el PDF pedido y lo guarda en --dir (REPORT_DIR por defecto).
func (a *App) runExport(ctx context.Context, args []string) error {
	sub, rest, err := subcommand(args, "purchases", "sales", "stats", "period", "daily")
	if err != nil {
		return err
	}
	fs := a.flagSet("export " + sub)
	dir := fs.String("dir", a.deps.ReportDir, "directorio de salida")

	var build func(ownerID string) (*report.Document, error)
	switch sub {
	case "purchases", "sales", "daily":
		rangeFlag := fs.String("range", "all", "all|today|7d|30d")
		dateFlag := fs.String("date", "", "día exacto YYYY-MM-DD")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		spec, err := filterSpec(*rangeFlag, *dateFlag)
		if err != nil {
			return err
		}
		build = func(ownerID string) (*report.Document, error) {
			switch sub {
			case "purchases":
				return a.deps.Export.Purchases(ctx, ownerID, spec)
			case "sales":
				return a.deps.Export.Sales(ctx, ownerID, spec)
			}
			return a.deps.Export.Daily(ctx, ownerID, spec)
		}

	case "stats":
		if err := fs.Parse(rest); err != nil {
			return err
		}
		build = func(ownerID string) (*report.Document, error) {
			return a.deps.Export.Stats(ctx, ownerID)
		}

	default: // period
		kindFlag := fs.String("period", "month", "day|week|month")
		req, err := a.periodFlags(fs, rest)
		if err != nil {
			return err
		}
		kind, err := report.ParsePeriodKind(*kindFlag)
		if err != nil {
			return err
		}
		build = func(ownerID string) (*report.Document, error) {
			return a.deps.Export.Period(ctx, ownerID, kind, req.PeriodsRequest)
		}
	}

	ownerID, err := a.owner(ctx)
	if err != nil {
		return err
	}
	doc, err := build(ownerID)
	if err != nil {
		return err
	}
	path, err := a.deps.Export.Save(doc, *dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, path)
	return nil
}

// runMigrate aplica el esquema (solo para una base propia; Supabase ya lo tiene).
func (a *App) runMigrate(ctx context.Context, args []string) error {
	fs := a.flagSet("migrate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if a.deps.Migrate == nil {
		return usageErrorf("migrate requiere DATABASE_URL o DB_HOST")
	}
	version, err := a.deps.Migrate(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "esquema en la versión %d\n", version)
	return nil
}
