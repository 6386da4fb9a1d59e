package web

import (
	"codeberg.org/mutker/errschema/internal/errors"
	"codeberg.org/mutker/errschema/schema"
)

// Categories re-exported for callers that only import web.
const (
	CategoryDatabase   = schema.CategoryDatabase
	CategoryFile       = schema.CategoryFile
	CategoryTimeout    = schema.CategoryTimeout
	CategoryParse      = schema.CategoryParse
	CategoryValue      = schema.CategoryValue
	CategoryRuntime    = schema.CategoryRuntime
	CategoryValidation = schema.CategoryValidation
	CategoryDocker     = schema.CategoryDocker
	CategoryDict       = schema.CategoryDict
)

// New builds a record for any known category.
func New(c schema.Category, opts ...Option) (ErrorSchema, error) {
	if !c.IsValid() {
		return ErrorSchema{}, errors.New().WithData(errors.ErrInvalidCategory, string(c))
	}
	return byCategory(c, opts), nil
}

func byCategory(c schema.Category, opts []Option) ErrorSchema {
	return build(c, c.DefaultMsg(), c.DefaultUIMsg(), opts)
}

func DatabaseError(opts ...Option) ErrorSchema {
	return byCategory(CategoryDatabase, opts)
}

func FileError(opts ...Option) ErrorSchema {
	return byCategory(CategoryFile, opts)
}

func TimeoutError(opts ...Option) ErrorSchema {
	return byCategory(CategoryTimeout, opts)
}

func ParseError(opts ...Option) ErrorSchema {
	return byCategory(CategoryParse, opts)
}

func ValueError(opts ...Option) ErrorSchema {
	return byCategory(CategoryValue, opts)
}

func RuntimeError(opts ...Option) ErrorSchema {
	return byCategory(CategoryRuntime, opts)
}

func ValidationError(opts ...Option) ErrorSchema {
	return byCategory(CategoryValidation, opts)
}

func DockerError(opts ...Option) ErrorSchema {
	return byCategory(CategoryDocker, opts)
}

func DictError(opts ...Option) ErrorSchema {
	return byCategory(CategoryDict, opts)
}
