package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/frascos-bo/frascos/internal/domain"
)

const maxNotesLength = 500

// validateAmounts cantidad y precio estrictamente positivos.
func validateAmounts(quantity int, price decimal.Decimal) error {
	if quantity <= 0 || !price.IsPositive() {
		return fmt.Errorf("%w: la cantidad y el precio deben ser mayores a 0", domain.ErrInvalidInput)
	}
	return nil
}

func normalizeNotes(notes string) (string, error) {
	notes = strings.TrimSpace(notes)
	if len([]rune(notes)) > maxNotesLength {
		return "", fmt.Errorf("%w: las notas superan %d caracteres", domain.ErrInvalidInput, maxNotesLength)
	}
	return notes, nil
}

// validateID los ids son uuid; uno mal formado nunca existe.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: id %q", domain.ErrInvalidInput, id)
	}
	return nil
}
