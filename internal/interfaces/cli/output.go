package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frascos-bo/frascos/internal/application/dto"
	"github.com/frascos-bo/frascos/internal/domain"
	"github.com/frascos-bo/frascos/internal/domain/stats"
)

// usageError argumentos mal formados: se informa con el uso del comando.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// errorResponse traduce el error a código estable y código de salida.
func errorResponse(err error) (dto.ErrorResponse, int) {
	var ue *usageError
	switch {
	case errors.As(err, &ue):
		return dto.ErrorResponse{Code: "USAGE", Message: ue.msg}, ExitUsage
	case errors.Is(err, domain.ErrInvalidInput):
		return dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}, ExitUsage
	case errors.Is(err, domain.ErrNoOwner):
		return dto.ErrorResponse{Code: "NO_SESSION", Message: "no hay sesión: configure SUPABASE_ACCESS_TOKEN o FRASCOS_EMAIL/FRASCOS_PASSWORD"}, ExitUnauthorized
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"}, ExitUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"}, ExitUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"}, ExitNotFound
	case errors.Is(err, domain.ErrInsufficientStock):
		return dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()}, ExitConflict
	}
	return dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}, ExitInternal
}

// fail imprime el error en stderr (JSON si se pidió --json) y lo registra si es interno.
func (a *App) fail(err error, asJSON bool) int {
	resp, code := errorResponse(err)
	if code == ExitInternal {
		a.deps.Log.Error().Err(err).Msg("comando fallido")
	}
	if asJSON {
		_ = writeJSON(a.errOut, resp)
		return code
	}
	fmt.Fprintf(a.errOut, "error: %s\n", resp.Message)
	return code
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table columnas alineadas con tabwriter; Flush al final.
func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func row(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

// ── Formato ──────────────────────────────────────────────────────────────────

func (a *App) amount(d decimal.Decimal) string { return a.deps.Money.Format(d) }

func (a *App) number(d decimal.Decimal) string { return a.deps.Money.Number(d) }

func jars(n int) string {
	if n == 1 {
		return "1 frasco"
	}
	return fmt.Sprintf("%d frascos", n)
}

func (a *App) dateTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.In(a.deps.Now().Location()).Format("02/01/2006 15:04")
}

func percent(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + d.StringFixed(1) + "%"
	}
	return d.StringFixed(1) + "%"
}

// ── Selección ────────────────────────────────────────────────────────────────

// filterSpec arma la selección a partir de --range y --date.
func filterSpec(rangeFlag, dateFlag string) (stats.FilterSpec, error) {
	r, err := stats.ParseRange(strings.ToLower(strings.TrimSpace(rangeFlag)))
	if err != nil {
		return stats.FilterSpec{}, usageErrorf("%v", err)
	}
	spec := stats.FilterSpec{Range: r}
	if dateFlag != "" {
		d, err := stats.ParseDay(dateFlag)
		if err != nil {
			return stats.FilterSpec{}, usageErrorf("%v", err)
		}
		spec.Date = &d
	}
	return spec, nil
}

// parseMonth "2024-02" → año y mes.
func parseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, usageErrorf("mes %q: se espera YYYY-MM", s)
	}
	return t.Year(), t.Month(), nil
}

func parseMoney(name, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, usageErrorf("falta --%s", name)
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, usageErrorf("--%s %q no es un número", name, s)
	}
	return d, nil
}
