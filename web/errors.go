package web

import (
	"codeberg.org/mutker/errschema/internal/errors"
	"codeberg.org/mutker/errschema/schema"
)

var (
	ErrInvalidLocation error = errors.New().New(errors.ErrInvalidLocation)
	ErrInvalidTarget   error = errors.New().New(errors.ErrInvalidTarget)

	// Re-exported so callers of this package need not import schema.
	ErrTypeMismatch    = schema.ErrTypeMismatch
	ErrIndexOutOfRange = schema.ErrIndexOutOfRange
	ErrInvalidCategory = schema.ErrInvalidCategory
	ErrValidation      = schema.ErrValidation
)
