package application

import (
	"errors"
	"fmt"

	"github.com/pawhaven/pawhaven/internal/domains/inventory/domain"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/ports"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid dog input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrNegativeAge) ||
		errors.Is(err, domain.ErrEmptyBreedName) ||
		errors.Is(err, domain.ErrInvalidAPIID) ||
		errors.Is(err, ports.ErrBreedNotFound) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
