package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/frascos-bo/frascos/internal/application/analytics"
	"github.com/frascos-bo/frascos/internal/application/auth"
	"github.com/frascos-bo/frascos/internal/application/dto"
	"github.com/frascos-bo/frascos/internal/application/report"
	"github.com/frascos-bo/frascos/internal/application/snapshot"
	"github.com/frascos-bo/frascos/internal/application/usecase"
	infrapdf "github.com/frascos-bo/frascos/internal/infrastructure/pdf"
	"github.com/frascos-bo/frascos/internal/infrastructure/postgres"
	"github.com/frascos-bo/frascos/internal/interfaces/cli"
	"github.com/frascos-bo/frascos/pkg/config"
	"github.com/frascos-bo/frascos/pkg/logger"
	"github.com/frascos-bo/frascos/pkg/money"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Primera pasada solo para los flags de configuración; el resto lo interpreta cada comando.
	global := cli.ConfigFlags()
	global.ParseErrorsWhitelist.UnknownFlags = true
	global.SetOutput(io.Discard)
	global.Usage = func() {}
	if err := global.Parse(args); err != nil && !errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return cli.ExitUsage
	}

	cfg, err := config.Load(global)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		return cli.ExitUsage
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if positional := global.Args(); len(positional) > 0 {
		log = log.Sub("command", positional[0])
	}
	loc, err := cfg.App.Location()
	if err != nil {
		log.Warn().Err(err).Msg("zona horaria no disponible, se usa UTC")
	}
	now := func() time.Time { return time.Now().In(loc) }

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := cli.Deps{
		Credentials: dto.Credentials{
			AccessToken: cfg.Auth.AccessToken,
			Email:       cfg.Auth.Email,
			Password:    cfg.Auth.Password,
		},
		Money:      money.New(cfg.Report.Currency, language.MustParse("es-BO")),
		ReportDir:  cfg.Report.Dir,
		FetchLimit: cfg.App.FetchLimit,
		Now:        now,
		Log:        log,
		Migrate: func(context.Context) (uint, error) {
			return postgres.Migrate(cfg.DB.ConnectionString())
		},
	}

	if needsStore(global.Args()) {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Error().Err(err).Msg("conexión a PostgreSQL")
			return cli.ExitInternal
		}
		defer pool.Close()

		purchaseRepo := postgres.NewPurchaseRepository(pool)
		saleRepo := postgres.NewSaleRepository(pool)
		expenseRepo := postgres.NewExpenseRepository(pool)
		userRepo := postgres.NewUserRepository(pool)
		txRunner := postgres.NewTxRunner(pool)

		loader := snapshot.NewLoader(purchaseRepo, saleRepo, expenseRepo, cfg.App.FetchLimit).WithClock(now)

		// PDF: reportes del negocio
		generator := infrapdf.NewMarotoReportGenerator(deps.Money, cfg.App.Name)

		deps.Auth = auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret: cfg.Auth.JWTSecret,
			TTL:    time.Hour,
			Issuer: cfg.App.Name,
		})
		deps.Dashboard = analytics.NewDashboardUseCase(loader, now, log)
		deps.Purchases = usecase.NewPurchaseUseCase(purchaseRepo, log)
		deps.Sales = usecase.NewSaleUseCase(saleRepo, txRunner, log)
		deps.History = usecase.NewHistoryUseCase(loader, expenseRepo, cfg.App.FetchLimit, now)
		deps.Export = report.NewExportUseCase(loader, generator, now, log)
	}

	app := cli.New(deps, global, os.Stdout, os.Stderr)
	return app.Run(ctx, commandFirst(args, global.Args()))
}

// commandFirst mueve el comando al inicio: "--log-level debug stats" → "stats --log-level debug".
func commandFirst(args, positional []string) []string {
	if len(positional) == 0 {
		return args
	}
	cmd := positional[0]
	out := make([]string, 0, len(args))
	out = append(out, cmd)
	moved := false
	for _, a := range args {
		if !moved && a == cmd {
			moved = true
			continue
		}
		out = append(out, a)
	}
	return out
}

// needsStore los comandos de ayuda y migrate no abren el pool.
func needsStore(positional []string) bool {
	if len(positional) == 0 {
		return false
	}
	switch positional[0] {
	case "help", "migrate":
		return false
	}
	return true
}
