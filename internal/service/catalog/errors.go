package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// errVersionMismatch marks a row that changed since the caller loaded it.
var errVersionMismatch = fmt.Errorf("version mismatch: %w", domain.ErrConflict)

// classifyTxError maps an error returned from inside a write transaction
// onto the catalog error taxonomy. A row that vanished between the
// pre-check and the locked re-read is a conflict, not a plain miss.
func classifyTxError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("%s: changed by another user: %w", op, domain.ErrConflict)
	default:
		return domain.NewPersistenceError(op, err)
	}
}

// classifyReadError passes domain errors through and wraps store failures.
func classifyReadError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return domain.NewPersistenceError(op, err)
	}
}
