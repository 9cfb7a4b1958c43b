// Package apperr defines the failure taxonomy shared by repositories and
// services. Callers discriminate with errors.Is instead of inspecting
// booleans or nil results.
package apperr

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrValidation        = errors.New("validation failed")
)

// FromDB maps GORM-level errors onto the taxonomy. Anything unrecognized is
// returned unchanged (infrastructure failures stay infrastructure failures).
func FromDB(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	default:
		return err
	}
}
