package web

import (
	"encoding/json"
	"slices"

	"codeberg.org/mutker/errschema/internal/errors"
	"codeberg.org/mutker/errschema/schema"
)

// Group collects web records and adds bulk location and input updates.
type Group struct {
	schema.Group[ErrorSchema]
}

func NewGroup() *Group {
	return &Group{Group: *schema.NewGroup[ErrorSchema]("WebErrGroup")}
}

func (g *Group) Copy() *Group {
	return &Group{Group: *g.Group.Copy()}
}

func (g *Group) ExtendGroup(other *Group) {
	if other == nil {
		return
	}
	g.Group.ExtendGroup(&other.Group)
}

// AppendLoc adds seg at the end of every element's location.
func (g *Group) AppendLoc(seg Segment) {
	g.ExtendLoc(Loc{seg})
}

// ExtendLoc adds loc at the end of every element's location.
func (g *Group) ExtendLoc(loc Loc) {
	g.Each(func(_ int, item *ErrorSchema) {
		item.Loc = slices.Concat(item.Loc, loc)
	})
}

// UpdateInput merges input into every element's input. Existing keys are
// replaced only when overwrite is set.
func (g *Group) UpdateInput(input map[string]any, overwrite bool) {
	g.Each(func(_ int, item *ErrorSchema) {
		merged := cloneInput(item.Input)
		for k, v := range input {
			if _, exists := merged[k]; exists && !overwrite {
				continue
			}
			merged[k] = v
		}
		item.Input = merged
	})
}

// ToTargetDicts returns the view for t of every element.
func (g *Group) ToTargetDicts(t Target) ([]map[string]any, error) {
	if !t.IsValid() {
		return nil, errors.New().WithData(errors.ErrInvalidTarget, string(t))
	}
	out := make([]map[string]any, 0, g.Len())
	for _, item := range g.Items() {
		d, err := item.ToTargetDict(t)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// TargetJSON renders the view for t of every element as an indented array.
func (g *Group) TargetJSON(t Target) ([]byte, error) {
	dicts, err := g.ToTargetDicts(t)
	if err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(dicts, "", "  ")
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrMarshalFailed, err)
	}
	return b, nil
}
