package schema_test

import (
	"testing"

	"codeberg.org/mutker/errschema/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// other is a Schema variant that is not an ErrorSchema.
type other struct{ schema.ErrorSchema }

func newGroup(t *testing.T) *schema.ErrGroup {
	t.Helper()
	g := schema.NewErrGroup()
	require.NoError(t, g.Append(schema.ErrorSchema{Type: schema.CategoryFile, Msg: "First error"}))
	require.NoError(t, g.Append(schema.ErrorSchema{Type: schema.CategoryValue, Msg: "Second error"}))
	return g
}

func TestGroupAppend(t *testing.T) {
	g := schema.NewErrGroup()
	assert.Equal(t, 0, g.Len())
	assert.False(t, g.HasErrors())

	s := schema.FileError()
	require.NoError(t, g.Append(s))
	assert.Equal(t, 1, g.Len())

	got, err := g.Get(0)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	err = g.Append(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrTypeMismatch)
	assert.Equal(t, 1, g.Len())

	var nilPtr *other
	assert.ErrorIs(t, g.Append(nilPtr), schema.ErrTypeMismatch)
	assert.Equal(t, 1, g.Len())
}

func TestTypedGroupRejectsOtherVariants(t *testing.T) {
	g := schema.NewGroup[schema.ErrorSchema]("Strict")

	require.NoError(t, g.Append(schema.ValueError()))
	err := g.Append(other{schema.ValueError()})
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "Strict accepts schema.ErrorSchema")
	assert.Equal(t, 1, g.Len())
}

func TestGroupExtendIsAtomic(t *testing.T) {
	g := schema.NewGroup[schema.ErrorSchema]("Strict")

	err := g.Extend(schema.FileError(), other{schema.ValueError()})
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "element 1")
	assert.Equal(t, 0, g.Len())

	require.NoError(t, g.Extend(schema.FileError(), schema.ValueError()))
	assert.Equal(t, 2, g.Len())
}

func TestGroupIndexing(t *testing.T) {
	g := newGroup(t)

	_, err := g.Get(g.Len())
	assert.ErrorIs(t, err, schema.ErrIndexOutOfRange)
	_, err = g.Get(-1)
	assert.ErrorIs(t, err, schema.ErrIndexOutOfRange)

	replacement := schema.ParseError()
	require.NoError(t, g.Set(1, replacement))
	got, err := g.Get(1)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	assert.ErrorIs(t, g.Set(2, replacement), schema.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.Set(0, nil), schema.ErrTypeMismatch)
}

func TestGroupClear(t *testing.T) {
	g := newGroup(t)
	g.Clear()
	assert.Equal(t, 0, g.Len())
	assert.NoError(t, g.Err())
}

func TestGroupHelpers(t *testing.T) {
	g := newGroup(t)

	assert.Equal(t, "First error; Second error", g.ConcatMessages(";"))
	assert.True(t, g.ContainsType(schema.CategoryFile))
	assert.True(t, g.ContainsType("VALUE_ERROR"))
	assert.False(t, g.ContainsType(schema.CategoryDocker))
	assert.True(t, g.HasErrors())

	dicts := g.ToDicts()
	require.Len(t, dicts, 2)
	assert.Equal(t, "file_error", dicts[0]["type"])

	b, err := g.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"file_error","msg":"First error"},{"type":"value_error","msg":"Second error"}]`, string(b))

	empty, err := schema.NewErrGroup().JSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))

	err = g.Err()
	require.Error(t, err)
	var s schema.ErrorSchema
	require.ErrorAs(t, err, &s)
	assert.Equal(t, "First error", s.Msg)
}

func TestGroupCopyAndExtendGroup(t *testing.T) {
	g := newGroup(t)
	c := g.Copy()
	require.Equal(t, g.Len(), c.Len())
	assert.NotSame(t, g, c)

	c.Clear()
	assert.Equal(t, 2, g.Len())

	g.ExtendGroup(newGroup(t))
	assert.Equal(t, 4, g.Len())
	assert.Len(t, g.Items(), 4)
}

func TestGroupEach(t *testing.T) {
	g := schema.NewGroup[schema.ErrorSchema]("Strict")
	require.NoError(t, g.Extend(schema.FileError(), schema.ValueError()))

	g.Each(func(i int, item *schema.ErrorSchema) {
		item.Msg = "changed"
	})
	for _, item := range g.Items() {
		assert.Equal(t, "changed", item.Msg)
	}
}

func TestGroupString(t *testing.T) {
	g := schema.NewErrGroup()
	assert.Equal(t, "ErrGroup()", g.String())

	require.NoError(t, g.Append(schema.ErrorSchema{Type: schema.CategoryFile, Msg: "a"}))
	require.NoError(t, g.Append(schema.ErrorSchema{Type: schema.CategoryValue, Msg: "b"}))

	want := "ErrGroup(\n" +
		"    ErrorSchema(\n" +
		"        type=\"file_error\",\n" +
		"        msg=\"a\"\n" +
		"    ),\n" +
		"    ErrorSchema(\n" +
		"        type=\"value_error\",\n" +
		"        msg=\"b\"\n" +
		"    )\n" +
		")"
	assert.Equal(t, want, g.String())
}
