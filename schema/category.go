package schema

import (
	"slices"
	"strings"

	"codeberg.org/mutker/errschema/internal/errors"
)

// Category tags the nature of an error.
type Category string

const (
	CategoryDatabase   Category = "database_error"
	CategoryFile       Category = "file_error"
	CategoryTimeout    Category = "timeout_error"
	CategoryParse      Category = "parse_error"
	CategoryValue      Category = "value_error"
	CategoryRuntime    Category = "runtime_error"
	CategoryValidation Category = "validation_error"
	CategoryDocker     Category = "docker_error"
	CategoryDict       Category = "dict_error"
)

// Default message details per category. The developer message prefixes the
// pretty category name, the user message is the capitalized detail.
var categoryDetails = map[Category]string{
	CategoryDatabase:   "failed to access the database",
	CategoryFile:       "failed to access the file",
	CategoryTimeout:    "the operation timed out",
	CategoryParse:      "failed to parse the data",
	CategoryValue:      "an invalid value was provided",
	CategoryRuntime:    "an unexpected error occurred",
	CategoryValidation: "the input failed validation",
	CategoryDocker:     "failed to manage the container",
	CategoryDict:       "failed to access the mapping",
}

var categoryOrder = []Category{
	CategoryDatabase,
	CategoryFile,
	CategoryTimeout,
	CategoryParse,
	CategoryValue,
	CategoryRuntime,
	CategoryValidation,
	CategoryDocker,
	CategoryDict,
}

// Categories returns every known category in declaration order.
func Categories() []Category {
	return slices.Clone(categoryOrder)
}

// ParseCategory validates a category tag.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", errors.New().WithData(errors.ErrInvalidCategory, s)
	}
	return c, nil
}

func (c Category) IsValid() bool {
	_, ok := categoryDetails[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}

// Pretty renders the tag for humans: "database_error" becomes "Database error".
func (c Category) Pretty() string {
	return capitalize(strings.ReplaceAll(string(c), "_", " "))
}

// DefaultMsg is the developer-facing message used when no message is given.
func (c Category) DefaultMsg() string {
	return c.Pretty() + ": " + c.detail() + "."
}

// DefaultUIMsg is the end-user message used when no message is given.
func (c Category) DefaultUIMsg() string {
	return capitalize(c.detail()) + "."
}

func (c Category) detail() string {
	if d, ok := categoryDetails[c]; ok {
		return d
	}
	return "an error occurred"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
