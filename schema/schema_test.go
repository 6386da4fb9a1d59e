package schema_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"codeberg.org/mutker/errschema/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var factories = map[schema.Category]func(...schema.Option) schema.ErrorSchema{
	schema.CategoryDatabase:   schema.DatabaseError,
	schema.CategoryFile:       schema.FileError,
	schema.CategoryTimeout:    schema.TimeoutError,
	schema.CategoryParse:      schema.ParseError,
	schema.CategoryValue:      schema.ValueError,
	schema.CategoryRuntime:    schema.RuntimeError,
	schema.CategoryValidation: schema.ValidationError,
	schema.CategoryDocker:     schema.DockerError,
	schema.CategoryDict:       schema.DictError,
}

func TestFactoriesCoverEveryCategory(t *testing.T) {
	assert.Len(t, factories, len(schema.Categories()))
}

func TestFactoryDefaults(t *testing.T) {
	for c, factory := range factories {
		t.Run(string(c), func(t *testing.T) {
			s := factory()
			assert.Equal(t, c, s.Type)
			assert.NotEmpty(t, s.Msg)
			assert.Equal(t, c.DefaultMsg(), s.Msg)
			assert.NoError(t, s.Validate())
		})
	}
}

func TestFactoryMessageOverride(t *testing.T) {
	for c, factory := range factories {
		t.Run(string(c), func(t *testing.T) {
			s := factory(schema.WithMsg("x"))
			assert.Equal(t, "x", s.Msg)
			assert.Equal(t, c, s.Type)
		})
	}

	assert.Equal(t, schema.CategoryValue.DefaultMsg(), schema.ValueError(schema.WithMsg("")).Msg)
}

func TestFactoryCause(t *testing.T) {
	s := schema.DatabaseError(
		schema.WithMsg("Database connection failed"),
		schema.WithCause(fmt.Errorf("connection refused")),
	)
	assert.Equal(t, "Database connection failed (connection refused)", s.Msg)
}

func TestNew(t *testing.T) {
	s, err := schema.New(schema.CategoryDocker, schema.WithMsg("container exited"))
	require.NoError(t, err)
	assert.Equal(t, schema.CategoryDocker, s.Type)
	assert.Equal(t, "container exited", s.Msg)

	_, err = schema.New("customized_error")
	assert.ErrorIs(t, err, schema.ErrInvalidCategory)
}

func TestErrorSchemaIsAnError(t *testing.T) {
	var err error = schema.FileError(schema.WithMsg("File not found"))
	assert.EqualError(t, err, "File not found")

	var s schema.ErrorSchema
	require.ErrorAs(t, fmt.Errorf("load: %w", err), &s)
	assert.Equal(t, schema.CategoryFile, s.Category())
	assert.Equal(t, "File not found", s.Message())
}

func TestToDictRoundTrip(t *testing.T) {
	for c, factory := range factories {
		t.Run(string(c), func(t *testing.T) {
			s := factory()
			d := s.ToDict()
			assert.ElementsMatch(t, []string{"type", "msg"}, keys(d))

			back, err := schema.FromDict(d)
			require.NoError(t, err)
			assert.Equal(t, s, back)
		})
	}
}

func TestFromDictRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		dict map[string]any
	}{
		{"unknown field", map[string]any{"type": "file_error", "msg": "m", "loc": []any{}}},
		{"wrong type", map[string]any{"type": "file_error", "msg": 42}},
		{"unknown category", map[string]any{"type": "customized_error", "msg": "m"}},
		{"empty message", map[string]any{"type": "file_error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.FromDict(tt.dict)
			require.Error(t, err)
			assert.ErrorIs(t, err, schema.ErrValidation)
		})
	}
}

func TestJSONAndDecode(t *testing.T) {
	s := schema.ParseError(schema.WithMsg("bad token"))

	b, err := s.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"parse_error","msg":"bad token"}`, string(b))
	assert.Regexp(t, `(?s)^\{\s*"type".*"msg"`, string(b), "fields keep declaration order")

	back, err := schema.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, s, back)

	_, err = schema.Decode([]byte(`{"type":`))
	assert.ErrorIs(t, err, schema.ErrValidation)

	var plain map[string]any
	require.NoError(t, json.Unmarshal(b, &plain))
	assert.Equal(t, s.ToDict(), plain)
}

func TestString(t *testing.T) {
	s := schema.ValueError(schema.WithMsg("Invalid value"))
	want := "ErrorSchema(\n" +
		"    type=\"value_error\",\n" +
		"    msg=\"Invalid value\"\n" +
		")"
	assert.Equal(t, want, s.String())
}

func keys(d map[string]any) []string {
	out := make([]string, 0, len(d))
	for k := range d {
		out = append(out, k)
	}
	return out
}
