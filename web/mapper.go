package web

import (
	"codeberg.org/mutker/errschema/internal/errors"
	"codeberg.org/mutker/errschema/schema"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// DefaultMapper extends schema.DefaultMapper, as it was when this package was
// initialized, with request and container platform rules.
var DefaultMapper = NewMapper(schema.DefaultMapper)

// requestTypes are the decode and binding failures of request bodies. The
// validator types are those returned by gin's binding package.
var requestTypes = map[string]schema.Category{
	"*json.UnmarshalTypeError":          schema.CategoryValidation,
	"validator.ValidationErrors":        schema.CategoryValidation,
	"*validator.InvalidValidationError": schema.CategoryValidation,
}

// NewMapper derives a web classifier from base. JSON type mismatches and
// request binding failures become validation errors, as do this module's own
// decode failures, and Kubernetes API status errors are classified before
// any base rule.
func NewMapper(base *schema.Mapper) *schema.Mapper {
	m := base.Clone()
	if err := m.RegisterAll(requestTypes); err != nil {
		panic(err)
	}
	m.PrependRules(KubernetesRules()...)
	m.AppendRules(schema.Rule{
		Name:     "validation",
		Category: schema.CategoryValidation,
		Match:    isValidationFailure,
	})
	return m
}

// KubernetesRules classify *StatusError values from the Kubernetes API.
func KubernetesRules() []schema.Rule {
	return []schema.Rule{
		{Name: "kubernetes_timeout", Category: schema.CategoryTimeout, Match: isKubernetesTimeout},
		{Name: "kubernetes_invalid", Category: schema.CategoryValidation, Match: isKubernetesInvalid},
		{Name: "kubernetes", Category: schema.CategoryDocker, Match: isKubernetes},
	}
}

func statusError(node error) (*apierrors.StatusError, bool) {
	se, ok := node.(*apierrors.StatusError)
	return se, ok && se != nil
}

func isKubernetesTimeout(node error) bool {
	se, ok := statusError(node)
	return ok && (apierrors.IsTimeout(se) || apierrors.IsServerTimeout(se))
}

func isKubernetesInvalid(node error) bool {
	se, ok := statusError(node)
	return ok && (apierrors.IsInvalid(se) || apierrors.IsBadRequest(se))
}

func isKubernetes(node error) bool {
	_, ok := statusError(node)
	return ok
}

func isValidationFailure(node error) bool {
	coded, ok := node.(errors.Error)
	return ok && coded.Code() == errors.ErrValidation
}

// FromError builds a record for err with DefaultMapper. An error that is or
// wraps a web record keeps its fields; any other schema record keeps its
// category and message.
func FromError(err error, opts ...Option) ErrorSchema {
	return FromErrorWith(DefaultMapper, err, opts...)
}

func FromErrorWith(m *schema.Mapper, err error, opts ...Option) ErrorSchema {
	if err == nil {
		return RuntimeError(opts...)
	}

	if ws, ok := asRecord(err); ok {
		seed := []Option{WithLoc(ws.Loc...), WithInput(ws.Input)}
		return build(ws.Type, ws.Msg, ws.UIMsg, append(seed, opts...))
	}

	var s schema.Schema
	if errors.As(err, &s) {
		return build(s.Category(), s.Message(), s.Category().DefaultUIMsg(), opts)
	}

	c := m.Classify(err)
	return build(c, c.Pretty()+": "+err.Error(), c.DefaultUIMsg(), opts)
}

// asRecord finds a web record in err's chain, stored by value or by pointer.
func asRecord(err error) (ErrorSchema, bool) {
	var ws ErrorSchema
	if errors.As(err, &ws) {
		return ws, true
	}
	var wp *ErrorSchema
	if errors.As(err, &wp) && wp != nil {
		return *wp, true
	}
	return ErrorSchema{}, false
}
