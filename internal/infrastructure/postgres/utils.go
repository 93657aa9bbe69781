package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/frascos-bo/frascos/internal/domain"
)

const (
	codeInvalidText     = "22P02" // invalid_text_representation (ej. uuid mal formado)
	codeCheckViolation  = "23514" // check_violation
	codeInsufficientPrv = "42501" // insufficient_privilege (RLS)
)

// mapError traduce códigos de PostgreSQL a errores de dominio; el resto se envuelve con op.
func mapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeInvalidText, codeCheckViolation:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrInvalidInput, pgErr.Message)
		case codeInsufficientPrv:
			return fmt.Errorf("%s: %w", op, domain.ErrForbidden)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
