// Package cli es la interfaz de línea de comandos: interpreta argumentos, resuelve el
// propietario y presenta los resultados de los casos de uso como texto o JSON.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/frascos-bo/frascos/internal/application/analytics"
	"github.com/frascos-bo/frascos/internal/application/auth"
	"github.com/frascos-bo/frascos/internal/application/dto"
	"github.com/frascos-bo/frascos/internal/application/report"
	"github.com/frascos-bo/frascos/internal/application/usecase"
	"github.com/frascos-bo/frascos/pkg/logger"
	"github.com/frascos-bo/frascos/pkg/money"
)

// Códigos de salida.
const (
	ExitOK           = 0
	ExitInternal     = 1
	ExitUsage        = 2
	ExitUnauthorized = 3
	ExitNotFound     = 4
	ExitConflict     = 5
)

// Deps casos de uso y ajustes que usa la CLI. Los que falten deshabilitan sus comandos.
type Deps struct {
	Auth      *auth.AuthUseCase
	Dashboard *analytics.DashboardUseCase
	Purchases *usecase.PurchaseUseCase
	Sales     *usecase.SaleUseCase
	History   *usecase.HistoryUseCase
	Export    *report.ExportUseCase

	// Migrate aplica el esquema sobre una base propia; nil si no hay conexión.
	Migrate func(ctx context.Context) (uint, error)

	Credentials dto.Credentials
	Money       *money.Formatter
	ReportDir   string
	FetchLimit  int
	Now         func() time.Time
	Log         *logger.Logger
}

// App despacha comandos. stdout lleva los resultados; los logs y errores van a stderr.
type App struct {
	deps     Deps
	out      io.Writer
	errOut   io.Writer
	global   *pflag.FlagSet
	commands map[string]command
}

type command struct {
	summary string
	run     func(ctx context.Context, args []string) error
}

// New construye la aplicación. global son los flags de configuración aceptados por todos los comandos.
func New(deps Deps, global *pflag.FlagSet, out, errOut io.Writer) *App {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	a := &App{deps: deps, out: out, errOut: errOut, global: global}
	a.commands = map[string]command{
		"stats":     {"resumen de todo el historial y de la ventana elegida", a.runStats},
		"periods":   {"tarjetas de día, semana y mes", a.runPeriods},
		"today":     {"hoy contra ayer", a.runToday},
		"daily":     {"ventas agrupadas por día", a.runDaily},
		"chart":     {"serie de compras vs ventas (--mode day|month)", a.runChart},
		"history":   {"compras, ventas y gastos en una sola línea de tiempo", a.runHistory},
		"purchases": {"compras: list|add|update|delete", a.runPurchases},
		"sales":     {"ventas: list|add|update|delete", a.runSales},
		"expenses":  {"gastos: list", a.runExpenses},
		"export":    {"reportes PDF: purchases|sales|stats|period|daily", a.runExport},
		"login":     {"inicia sesión con email y contraseña e imprime el token", a.runLogin},
		"migrate":   {"crea las tablas en una base propia", a.runMigrate},
	}
	return a
}

// ConfigFlags flags que se enlazan a la configuración (--log-level → LOG_LEVEL).
func ConfigFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.String("log-level", "", "nivel de log: trace|debug|info|warn|error")
	fs.String("app-env", "", "development|production")
	fs.String("app-timezone", "", "zona horaria de los días de calendario (ej. America/La_Paz)")
	fs.Int("fetch-limit", 0, "máximo de registros por tabla en los listados")
	fs.String("report-dir", "", "directorio de salida de los PDF")
	fs.String("report-currency", "", "símbolo de moneda")
	fs.String("database-url", "", "connection string de PostgreSQL")
	fs.String("supabase-access-token", "", "token de acceso del propietario")
	return fs
}

// Run ejecuta args (sin el nombre del programa) y devuelve el código de salida.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage()
		if len(args) == 0 {
			return ExitUsage
		}
		return ExitOK
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		fmt.Fprintf(a.errOut, "comando desconocido: %s\n\n", args[0])
		a.usage()
		return ExitUsage
	}

	err := cmd.run(ctx, args[1:])
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return ExitOK
	}
	return a.fail(err, slices.Contains(args, "--json"))
}

func (a *App) usage() {
	names := make([]string, 0, len(a.commands))
	for n := range a.commands {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("uso: frascos <comando> [flags]\n\ncomandos:\n")
	for _, n := range names {
		fmt.Fprintf(&b, "  %-10s %s\n", n, a.commands[n].summary)
	}
	b.WriteString("\nflags comunes: --range all|today|7d|30d  --date YYYY-MM-DD  --json\n")
	fmt.Fprint(a.errOut, b.String())
}

// flagSet crea el set de flags de un comando e incluye los de configuración.
func (a *App) flagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("frascos "+name, pflag.ContinueOnError)
	fs.SetOutput(a.errOut)
	fs.SortFlags = false
	if a.global != nil {
		fs.AddFlagSet(a.global)
	}
	return fs
}

// subcommand separa "list|add|..." del resto de argumentos.
func subcommand(args []string, allowed ...string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", nil, usageErrorf("falta el subcomando (%s)", strings.Join(allowed, "|"))
	}
	for _, s := range allowed {
		if args[0] == s {
			return s, args[1:], nil
		}
	}
	return "", nil, usageErrorf("subcomando %q no soportado (%s)", args[0], strings.Join(allowed, "|"))
}
