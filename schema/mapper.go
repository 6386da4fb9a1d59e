package schema

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"codeberg.org/mutker/errschema/internal/errors"
	"codeberg.org/mutker/errschema/internal/logger"
)

// maxChainDepth bounds the walk over Cause chains that loop back on themselves.
const maxChainDepth = 64

// Rule classifies a single node of an error chain.
type Rule struct {
	Name     string
	Category Category
	Match    func(err error) bool
}

// Mapper maps errors onto categories. Each node of the error chain is looked
// up by its dynamic type name first, then tested against the rules in order;
// the outermost matching node wins. Unclassified errors get the fallback.
type Mapper struct {
	mu       sync.RWMutex
	types    map[string]Category
	rules    []Rule
	fallback Category
}

// DefaultMapper holds the built-in table used by FromError.
var DefaultMapper = NewMapper(BaseTypes(), BaseRules())

// NewMapper creates a mapper that falls back to runtime_error.
func NewMapper(types map[string]Category, rules []Rule) *Mapper {
	if types == nil {
		types = make(map[string]Category)
	}
	return &Mapper{
		types:    maps.Clone(types),
		rules:    slices.Clone(rules),
		fallback: CategoryRuntime,
	}
}

// Clone returns an independent copy, used to derive extended tables.
func (m *Mapper) Clone() *Mapper {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &Mapper{
		types:    maps.Clone(m.types),
		rules:    slices.Clone(m.rules),
		fallback: m.fallback,
	}
}

// TypeName is the lookup key of err in the type table, e.g. "*fs.PathError".
func TypeName(err error) string {
	return fmt.Sprintf("%T", err)
}

// Register maps the dynamic type name to c, replacing any previous entry.
func (m *Mapper) Register(typeName string, c Category) error {
	return m.RegisterAll(map[string]Category{typeName: c})
}

// RegisterAll validates every entry before applying any of them.
func (m *Mapper) RegisterAll(entries map[string]Category) error {
	for name, c := range entries {
		if name == "" {
			return errors.New().WithData(errors.ErrInvalidMapping, "empty type name")
		}
		if !c.IsValid() {
			return errors.New().WithData(errors.ErrInvalidMapping, fmt.Sprintf("%s: unknown category %q", name, c))
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for name, c := range entries {
		m.types[name] = c
	}
	return nil
}

// PrependRules adds rules ahead of the existing ones.
func (m *Mapper) PrependRules(rules ...Rule) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = append(slices.Clone(rules), m.rules...)
}

// AppendRules adds rules after the existing ones.
func (m *Mapper) AppendRules(rules ...Rule) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = append(m.rules, rules...)
}

func (m *Mapper) SetFallback(c Category) error {
	if !c.IsValid() {
		return errors.New().WithData(errors.ErrInvalidCategory, string(c))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = c
	return nil
}

func (m *Mapper) Fallback() Category {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fallback
}

// Mapping returns a copy of the type table.
func (m *Mapper) Mapping() map[string]Category {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.types)
}

// Rules returns the rule names and categories in evaluation order.
func (m *Mapper) Rules() []Rule {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.rules)
}

// Classify returns the category of err. A nil error yields the fallback.
func (m *Mapper) Classify(err error) Category {
	c, ok := m.lookup(err)
	if ok {
		return c
	}

	fallback := m.Fallback()
	if err != nil {
		logger.Debug().
			Str("error_type_name", TypeName(err)).
			Str("fallback", string(fallback)).
			Msg("Unclassified error, using fallback category")
	}
	return fallback
}

func (m *Mapper) lookup(err error) (Category, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var found Category
	ok := Walk(err, func(node error) bool {
		if c, hit := m.types[TypeName(node)]; hit {
			found = c
			return true
		}
		for _, r := range m.rules {
			if r.Match != nil && r.Match(node) {
				found = r.Category
				return true
			}
		}
		return false
	})
	return found, ok
}

// FromError builds a record for err. An error that already is or wraps a
// Schema is returned as that schema; otherwise the message is
// "<Pretty category>: <err>".
func (m *Mapper) FromError(err error, opts ...Option) ErrorSchema {
	if err == nil {
		return RuntimeError(opts...)
	}

	var s Schema
	if errors.As(err, &s) {
		return build(s.Category(), s.Message(), opts)
	}

	c := m.Classify(err)
	return build(c, c.Pretty()+": "+err.Error(), opts)
}

// Walk visits err and every error it wraps, depth first, outermost first,
// following Unwrap() error, Unwrap() []error and Cause() error. It stops and
// returns true as soon as visit does.
func Walk(err error, visit func(error) bool) bool {
	return walk(err, visit, 0)
}

func walk(err error, visit func(error) bool, depth int) bool {
	for err != nil && depth < maxChainDepth {
		if visit(err) {
			return true
		}
		depth++

		switch x := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range x.Unwrap() {
				if walk(e, visit, depth) {
					return true
				}
			}
			return false
		case interface{ Unwrap() error }:
			err = x.Unwrap()
		case interface{ Cause() error }:
			err = x.Cause()
		default:
			return false
		}
	}
	return false
}
