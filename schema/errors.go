package schema

import "codeberg.org/mutker/errschema/internal/errors"

// Sentinels for errors.Is. Every error the package returns carries one of
// these codes.
var (
	ErrTypeMismatch    error = errors.New().New(errors.ErrTypeMismatch)
	ErrIndexOutOfRange error = errors.New().New(errors.ErrIndexOutOfRange)
	ErrInvalidCategory error = errors.New().New(errors.ErrInvalidCategory)
	ErrValidation      error = errors.New().New(errors.ErrValidation)
	ErrInvalidMapping  error = errors.New().New(errors.ErrInvalidMapping)
)
