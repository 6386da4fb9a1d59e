package web

import (
	"strings"

	"codeberg.org/mutker/errschema/internal/errors"
)

// Target selects the audience of a serialized record.
type Target string

const (
	// TargetBackend keeps every field except the end-user message.
	TargetBackend Target = "backend"
	// TargetFrontend keeps the end-user message, as "msg", and the input.
	TargetFrontend Target = "frontend"
)

func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", errors.New().WithData(errors.ErrInvalidTarget, s)
	}
	return t, nil
}

func (t Target) IsValid() bool {
	return t == TargetBackend || t == TargetFrontend
}

func (t Target) String() string {
	return string(t)
}
