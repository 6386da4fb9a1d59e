package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"codeberg.org/mutker/errschema/internal/errors"
)

// Group is an ordered collection of records of element type T. Elements enter
// through the Schema interface and are type-checked against T at run time, so
// a group of one variant rejects records of another.
//
// A Group is not safe for concurrent mutation.
type Group[T Schema] struct {
	name  string
	items []T
}

// ErrGroup accepts every Schema variant.
type ErrGroup = Group[Schema]

// NewGroup creates an empty group rendered under name.
func NewGroup[T Schema](name string) *Group[T] {
	return &Group[T]{name: name}
}

func NewErrGroup() *ErrGroup {
	return NewGroup[Schema]("ErrGroup")
}

func (g *Group[T]) Name() string {
	if g.name == "" {
		return "Group"
	}
	return g.name
}

func (g *Group[T]) Len() int {
	return len(g.items)
}

// Append adds item at the end.
func (g *Group[T]) Append(item Schema) error {
	v, err := g.check(item)
	if err != nil {
		return err
	}
	g.items = append(g.items, v)
	return nil
}

// Extend appends every item, or none of them if any fails the type check.
func (g *Group[T]) Extend(items ...Schema) error {
	checked := make([]T, 0, len(items))
	for i, item := range items {
		v, ok := g.accept(item)
		if !ok {
			return errors.New().WithData(errors.ErrTypeMismatch,
				fmt.Sprintf("element %d: %s", i, g.mismatch(item)))
		}
		checked = append(checked, v)
	}
	g.items = append(g.items, checked...)
	return nil
}

// ExtendGroup appends copies of other's elements.
func (g *Group[T]) ExtendGroup(other *Group[T]) {
	if other == nil {
		return
	}
	g.items = append(g.items, other.Items()...)
}

func (g *Group[T]) Clear() {
	g.items = nil
}

// Get returns the element at i.
func (g *Group[T]) Get(i int) (T, error) {
	if err := g.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return g.items[i], nil
}

// Set replaces the element at i.
func (g *Group[T]) Set(i int, item Schema) error {
	if err := g.checkIndex(i); err != nil {
		return err
	}
	v, err := g.check(item)
	if err != nil {
		return err
	}
	g.items[i] = v
	return nil
}

// Each calls fn with a pointer to every element, in order, for in-place
// updates.
func (g *Group[T]) Each(fn func(i int, item *T)) {
	for i := range g.items {
		fn(i, &g.items[i])
	}
}

// Items returns copies of the elements.
func (g *Group[T]) Items() []T {
	out := make([]T, len(g.items))
	for i, item := range g.items {
		out[i] = clone(item)
	}
	return out
}

// Copy returns an independent group with copies of the elements.
func (g *Group[T]) Copy() *Group[T] {
	return &Group[T]{name: g.name, items: g.Items()}
}

func (g *Group[T]) ToDicts() []map[string]any {
	out := make([]map[string]any, len(g.items))
	for i, item := range g.items {
		out[i] = item.ToDict()
	}
	return out
}

// JSON renders the elements as an indented JSON array.
func (g *Group[T]) JSON() ([]byte, error) {
	items := g.items
	if items == nil {
		items = []T{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrMarshalFailed, err)
	}
	return b, nil
}

// ConcatMessages joins the element messages with sep and a space.
func (g *Group[T]) ConcatMessages(sep string) string {
	msgs := make([]string, len(g.items))
	for i, item := range g.items {
		msgs[i] = item.Message()
	}
	return strings.Join(msgs, sep+" ")
}

func (g *Group[T]) ContainsType(c Category) bool {
	want := Category(strings.ToLower(string(c)))
	for _, item := range g.items {
		if item.Category() == want {
			return true
		}
	}
	return false
}

func (g *Group[T]) HasErrors() bool {
	return len(g.items) > 0
}

// Err returns nil for an empty group, otherwise the elements joined into one
// error.
func (g *Group[T]) Err() error {
	if len(g.items) == 0 {
		return nil
	}
	errs := make([]error, len(g.items))
	for i, item := range g.items {
		errs[i] = item
	}
	return errors.Join(errs...)
}

func (g *Group[T]) String() string {
	attrs := make([]string, len(g.items))
	for i, item := range g.items {
		attrs[i] = item.String()
	}
	return Repr(g.Name(), attrs...)
}

func (g *Group[T]) check(item Schema) (T, error) {
	v, ok := g.accept(item)
	if !ok {
		return v, errors.New().WithData(errors.ErrTypeMismatch, g.mismatch(item))
	}
	return v, nil
}

func (g *Group[T]) accept(item Schema) (T, bool) {
	v, ok := item.(T)
	if !ok || isNilPointer(item) {
		var zero T
		return zero, false
	}
	return v, true
}

func (g *Group[T]) mismatch(item Schema) string {
	return fmt.Sprintf("%s accepts %s, got %T", g.Name(), elemTypeName[T](), item)
}

func (g *Group[T]) checkIndex(i int) error {
	if i < 0 || i >= len(g.items) {
		return errors.New().WithData(errors.ErrIndexOutOfRange,
			fmt.Sprintf("index %d, length %d", i, len(g.items)))
	}
	return nil
}

func elemTypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func isNilPointer(item Schema) bool {
	if item == nil {
		return true
	}
	rv := reflect.ValueOf(item)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Cloner is implemented by records holding reference fields, so groups of
// any element type can copy them deeply.
type Cloner interface {
	CloneSchema() Schema
}

// clone deep-copies elements that know how to copy themselves.
func clone[T any](item T) T {
	if c, ok := any(item).(interface{ Clone() T }); ok {
		return c.Clone()
	}
	if c, ok := any(item).(Cloner); ok {
		if v, ok := c.CloneSchema().(T); ok {
			return v
		}
	}
	return item
}
