package schema

import "codeberg.org/mutker/errschema/internal/errors"

// New builds a record for any known category.
func New(c Category, opts ...Option) (ErrorSchema, error) {
	if !c.IsValid() {
		return ErrorSchema{}, errors.New().WithData(errors.ErrInvalidCategory, string(c))
	}
	return build(c, c.DefaultMsg(), opts), nil
}

func DatabaseError(opts ...Option) ErrorSchema {
	return build(CategoryDatabase, CategoryDatabase.DefaultMsg(), opts)
}

func FileError(opts ...Option) ErrorSchema {
	return build(CategoryFile, CategoryFile.DefaultMsg(), opts)
}

func TimeoutError(opts ...Option) ErrorSchema {
	return build(CategoryTimeout, CategoryTimeout.DefaultMsg(), opts)
}

func ParseError(opts ...Option) ErrorSchema {
	return build(CategoryParse, CategoryParse.DefaultMsg(), opts)
}

func ValueError(opts ...Option) ErrorSchema {
	return build(CategoryValue, CategoryValue.DefaultMsg(), opts)
}

func RuntimeError(opts ...Option) ErrorSchema {
	return build(CategoryRuntime, CategoryRuntime.DefaultMsg(), opts)
}

func ValidationError(opts ...Option) ErrorSchema {
	return build(CategoryValidation, CategoryValidation.DefaultMsg(), opts)
}

func DockerError(opts ...Option) ErrorSchema {
	return build(CategoryDocker, CategoryDocker.DefaultMsg(), opts)
}

func DictError(opts ...Option) ErrorSchema {
	return build(CategoryDict, CategoryDict.DefaultMsg(), opts)
}

// FromError classifies err with DefaultMapper. See Mapper.FromError.
func FromError(err error, opts ...Option) ErrorSchema {
	return DefaultMapper.FromError(err, opts...)
}
