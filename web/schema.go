// Package web extends schema records for HTTP APIs. A web ErrorSchema adds
// the location of the offending input, an echo of that input, and a message
// fit for end users. ToTargetDict splits the record into a backend view and
// a frontend view.
package web

import (
	"encoding/json"
	"fmt"
	"maps"

	"codeberg.org/mutker/errschema/internal/errors"
	"codeberg.org/mutker/errschema/schema"
)

// ErrorSchema is a schema record with request context.
type ErrorSchema struct {
	schema.ErrorSchema
	UIMsg string         `json:"ui_msg"`
	Loc   Loc            `json:"loc"`
	Input map[string]any `json:"input"`
}

var (
	_ schema.Schema = ErrorSchema{}
	_ schema.Cloner = ErrorSchema{}
)

// Clone returns a deep copy of the location and a shallow copy of the input.
func (e ErrorSchema) Clone() ErrorSchema {
	e.Loc = e.Loc.Clone()
	e.Input = cloneInput(e.Input)
	return e
}

// CloneSchema is Clone behind the schema.Schema interface.
func (e ErrorSchema) CloneSchema() schema.Schema {
	return e.Clone()
}

func (e ErrorSchema) Validate() error {
	if err := e.ErrorSchema.Validate(); err != nil {
		return err
	}
	if e.UIMsg == "" {
		return errors.New().WithData(errors.ErrValidation, "ui_msg: must not be empty")
	}
	return nil
}

// ToDict returns every field. Location and input are always present, empty
// when unset.
func (e ErrorSchema) ToDict() map[string]any {
	return map[string]any{
		"type":   string(e.Type),
		"msg":    e.Msg,
		"ui_msg": e.UIMsg,
		"loc":    e.Loc.Clone().Values(),
		"input":  cloneInput(e.Input),
	}
}

// ToTargetDict returns the view of the record meant for t.
func (e ErrorSchema) ToTargetDict(t Target) (map[string]any, error) {
	switch t {
	case TargetBackend:
		d := e.ToDict()
		delete(d, "ui_msg")
		return d, nil
	case TargetFrontend:
		msg := e.UIMsg
		if msg == "" {
			msg = e.Msg
		}
		return map[string]any{
			"msg":   msg,
			"input": cloneInput(e.Input),
		}, nil
	default:
		return nil, errors.New().WithData(errors.ErrInvalidTarget, string(t))
	}
}

func (e ErrorSchema) MarshalJSON() ([]byte, error) {
	type plain ErrorSchema
	return json.Marshal(plain(e.Clone()))
}

func (e *ErrorSchema) UnmarshalJSON(data []byte) error {
	s, err := Decode(data)
	if err != nil {
		return err
	}
	*e = s
	return nil
}

// JSON renders the full record as indented JSON.
func (e ErrorSchema) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrMarshalFailed, err)
	}
	return b, nil
}

// TargetJSON renders the view for t as indented JSON.
func (e ErrorSchema) TargetJSON(t Target) ([]byte, error) {
	d, err := e.ToTargetDict(t)
	if err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrMarshalFailed, err)
	}
	return b, nil
}

func (e ErrorSchema) String() string {
	return schema.Repr("WebErrorSchema",
		fmt.Sprintf("type=%q", string(e.Type)),
		fmt.Sprintf("msg=%q", e.Msg),
		fmt.Sprintf("ui_msg=%q", e.UIMsg),
		"loc="+compact(e.Loc.Clone()),
		"input="+compact(cloneInput(e.Input)),
	)
}

// FromDict rebuilds a record from the output of ToDict. A missing ui_msg
// falls back to msg.
func FromDict(d map[string]any) (ErrorSchema, error) {
	if err := schema.CheckFields(d, "type", "msg", "ui_msg", "loc", "input"); err != nil {
		return ErrorSchema{}, err
	}

	var fields [3]string
	for i, key := range []string{"type", "msg", "ui_msg"} {
		v, err := schema.StringField(d, key)
		if err != nil {
			return ErrorSchema{}, err
		}
		fields[i] = v
	}

	loc, err := locField(d["loc"])
	if err != nil {
		return ErrorSchema{}, errors.New().Wrap(errors.ErrValidation, err)
	}
	input, err := inputField(d["input"])
	if err != nil {
		return ErrorSchema{}, err
	}

	s := ErrorSchema{
		ErrorSchema: schema.ErrorSchema{Type: schema.Category(fields[0]), Msg: fields[1]},
		UIMsg:       fields[2],
		Loc:         loc,
		Input:       input,
	}
	if s.UIMsg == "" {
		s.UIMsg = s.Msg
	}
	if err := s.Validate(); err != nil {
		return ErrorSchema{}, err
	}
	return s, nil
}

// Decode parses a JSON object into a validated record.
func Decode(data []byte) (ErrorSchema, error) {
	var d map[string]any
	if err := json.Unmarshal(data, &d); err != nil {
		return ErrorSchema{}, errors.New().Wrap(errors.ErrValidation, err)
	}
	return FromDict(d)
}

func locField(v any) (Loc, error) {
	switch x := v.(type) {
	case nil:
		return Loc{}, nil
	case Loc:
		return x.Clone(), nil
	case []any:
		return ParseLoc(x...)
	case []string:
		loc := make(Loc, len(x))
		for i, k := range x {
			loc[i] = Key(k)
		}
		return loc, nil
	default:
		return nil, errors.New().WithData(errors.ErrInvalidLocation, fmt.Sprintf("loc: expected list, got %T", v))
	}
}

func inputField(v any) (map[string]any, error) {
	switch x := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return cloneInput(x), nil
	default:
		return nil, errors.New().WithData(errors.ErrValidation, fmt.Sprintf("input: expected object, got %T", v))
	}
}

func cloneInput(in map[string]any) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	return maps.Clone(in)
}

// compact renders v as single-line JSON, or with %v if it does not marshal.
func compact(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
