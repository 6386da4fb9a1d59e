package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"codeberg.org/mutker/errschema/internal/errors"
)

// Segment is one step of a location path: an object key or an array index.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

func Key(k string) Segment {
	return Segment{key: k}
}

func Index(i int) Segment {
	return Segment{index: i, isIndex: true}
}

func (s Segment) IsIndex() bool {
	return s.isIndex
}

// Value returns the key as a string or the index as an int.
func (s Segment) Value() any {
	if s.isIndex {
		return s.index
	}
	return s.key
}

func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.key
}

func (s Segment) MarshalJSON() ([]byte, error) {
	if s.isIndex {
		return []byte(strconv.Itoa(s.index)), nil
	}
	return json.Marshal(s.key)
}

func (s *Segment) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var k string
		if err := json.Unmarshal(data, &k); err != nil {
			return errors.New().Wrap(errors.ErrInvalidLocation, err)
		}
		*s = Key(k)
		return nil
	}

	i, err := strconv.Atoi(string(data))
	if err != nil {
		return errors.New().WithData(errors.ErrInvalidLocation, fmt.Sprintf("expected string or integer, got %s", data))
	}
	*s = Index(i)
	return nil
}

// Loc is an ordered location path such as ["body", "items", 0].
type Loc []Segment

// ParseLoc converts strings and integers to segments. Integral floats are
// accepted as indexes, since that is how JSON decoding yields numbers.
func ParseLoc(values ...any) (Loc, error) {
	loc := make(Loc, 0, len(values))
	for i, v := range values {
		seg, err := segmentOf(v)
		if err != nil {
			return nil, errors.New().WithData(errors.ErrInvalidLocation, fmt.Sprintf("segment %d: %v", i, err))
		}
		loc = append(loc, seg)
	}
	return loc, nil
}

func segmentOf(v any) (Segment, error) {
	switch x := v.(type) {
	case Segment:
		return x, nil
	case string:
		return Key(x), nil
	case int:
		return Index(x), nil
	case int32:
		return Index(int(x)), nil
	case int64:
		return Index(int(x)), nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) {
			return Segment{}, fmt.Errorf("non-integral index %v", x)
		}
		return Index(int(x)), nil
	case json.Number:
		i, err := strconv.Atoi(x.String())
		if err != nil {
			return Segment{}, fmt.Errorf("non-integral index %s", x)
		}
		return Index(i), nil
	default:
		return Segment{}, fmt.Errorf("expected string or integer, got %T", v)
	}
}

// Values returns the segments as strings and ints.
func (l Loc) Values() []any {
	out := make([]any, len(l))
	for i, s := range l {
		out[i] = s.Value()
	}
	return out
}

// Clone returns a copy that is never nil.
func (l Loc) Clone() Loc {
	if l == nil {
		return Loc{}
	}
	return slices.Clone(l)
}

// String joins the segments with dots, e.g. "body.items.0".
func (l Loc) String() string {
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}
