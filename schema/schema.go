package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"codeberg.org/mutker/errschema/internal/errors"
)

// Schema is the behavior shared by every error record variant.
type Schema interface {
	error
	Category() Category
	Message() string
	ToDict() map[string]any
	String() string
}

// ErrorSchema is a serializable record of one error occurrence.
type ErrorSchema struct {
	Type Category `json:"type"`
	Msg  string   `json:"msg"`
}

var _ Schema = ErrorSchema{}

func (e ErrorSchema) Error() string {
	return e.Msg
}

func (e ErrorSchema) Category() Category {
	return e.Type
}

func (e ErrorSchema) Message() string {
	return e.Msg
}

// Validate checks that the record holds a known category and a message.
func (e ErrorSchema) Validate() error {
	if !e.Type.IsValid() {
		return errors.New().WithData(errors.ErrValidation, fmt.Sprintf("type: unknown category %q", e.Type))
	}
	if e.Msg == "" {
		return errors.New().WithData(errors.ErrValidation, "msg: must not be empty")
	}
	return nil
}

// ToDict returns every field, keyed by its serialized name.
func (e ErrorSchema) ToDict() map[string]any {
	return map[string]any{
		"type": string(e.Type),
		"msg":  e.Msg,
	}
}

// JSON renders the record as indented JSON.
func (e ErrorSchema) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrMarshalFailed, err)
	}
	return b, nil
}

func (e ErrorSchema) String() string {
	return Repr("ErrorSchema",
		fmt.Sprintf("type=%q", string(e.Type)),
		fmt.Sprintf("msg=%q", e.Msg),
	)
}

// FromDict rebuilds a record from the output of ToDict. Unknown keys and
// wrongly typed values are rejected.
func FromDict(d map[string]any) (ErrorSchema, error) {
	if err := CheckFields(d, "type", "msg"); err != nil {
		return ErrorSchema{}, err
	}

	typ, err := StringField(d, "type")
	if err != nil {
		return ErrorSchema{}, err
	}
	msg, err := StringField(d, "msg")
	if err != nil {
		return ErrorSchema{}, err
	}

	s := ErrorSchema{Type: Category(typ), Msg: msg}
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

// CheckFields rejects keys of d that are not in allowed.
func CheckFields(d map[string]any, allowed ...string) error {
	for k := range d {
		known := false
		for _, a := range allowed {
			if k == a {
				known = true
				break
			}
		}
		if !known {
			return errors.New().WithData(errors.ErrValidation, fmt.Sprintf("%s: unknown field", k))
		}
	}
	return nil
}

// StringField reads a string (or Category) value. A missing key yields "".
func StringField(d map[string]any, key string) (string, error) {
	switch v := d[key].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case Category:
		return string(v), nil
	default:
		return "", errors.New().WithData(errors.ErrValidation, fmt.Sprintf("%s: expected string, got %T", key, v))
	}
}

// Repr renders a diagnostic block: the name followed by each attribute on its
// own indented line.
func Repr(name string, attrs ...string) string {
	if len(attrs) == 0 {
		return name + "()"
	}
	return name + "(\n" + indent(strings.Join(attrs, ",\n"), "    ") + "\n)"
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
