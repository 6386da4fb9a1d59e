package schema_test

import (
	"testing"

	"codeberg.org/mutker/errschema/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	categories := schema.Categories()
	require.Len(t, categories, 9)
	assert.Equal(t, schema.CategoryDatabase, categories[0])

	categories[0] = "mutated"
	assert.Equal(t, schema.CategoryDatabase, schema.Categories()[0], "Categories must return a copy")
}

func TestCategoryTemplates(t *testing.T) {
	for _, c := range schema.Categories() {
		t.Run(string(c), func(t *testing.T) {
			assert.True(t, c.IsValid())
			assert.NotEmpty(t, c.DefaultMsg())
			assert.NotEmpty(t, c.DefaultUIMsg())
			assert.NotEqual(t, c.DefaultMsg(), c.DefaultUIMsg())
			assert.Contains(t, c.DefaultMsg(), c.Pretty()+": ")
		})
	}

	assert.Equal(t, "Database error", schema.CategoryDatabase.Pretty())
	assert.Equal(t, "Database error: failed to access the database.", schema.CategoryDatabase.DefaultMsg())
	assert.Equal(t, "Failed to access the database.", schema.CategoryDatabase.DefaultUIMsg())
}

func TestParseCategory(t *testing.T) {
	c, err := schema.ParseCategory(" File_Error ")
	require.NoError(t, err)
	assert.Equal(t, schema.CategoryFile, c)

	_, err = schema.ParseCategory("unknown_error")
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInvalidCategory)
	assert.False(t, schema.Category("unknown_error").IsValid())
}
