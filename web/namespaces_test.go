package web_test

import (
	"testing"

	"codeberg.org/mutker/errschema/schema"
	"codeberg.org/mutker/errschema/web"
	"github.com/stretchr/testify/assert"
)

func TestDockerNamespace(t *testing.T) {
	tests := []struct {
		name string
		got  web.ErrorSchema
		want string
	}{
		{"waiting", web.Docker.Waiting("job"), "Failed when waiting for container 'job' to finish."},
		{"running", web.Docker.Running("api"), "Failed when running container 'api'."},
		{"starting", web.Docker.Starting(""), "Failed when starting a container."},
		{"stopping", web.Docker.Stopping("db"), "Failed when stopping container 'db'."},
		{"removing", web.Docker.Removing(""), "Failed when removing a container."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, schema.CategoryDocker, tt.got.Type)
			assert.Equal(t, tt.want, tt.got.Msg)
			assert.Equal(t, tt.want, tt.got.UIMsg)
		})
	}
}

func TestWebNamespacesMirrorBase(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, schema.File.NotFound(dir).Msg, web.File.NotFound(dir).Msg)
	assert.Equal(t, "Directory 'logs' not found.", web.File.NotFound("/var/logs/").Msg)
	assert.Equal(t, schema.DB.NoResults("loading users").Msg, web.DB.NoResults("loading users").Msg)
	assert.Equal(t, schema.Map.MissingKeys([]string{"a", "b"}).Msg, web.Map.MissingKeys([]string{"a", "b"}).Msg)
	assert.Equal(t, "Foreign key violation occurred.", web.DB.ForeignKeyViolation().Msg)
	assert.Equal(t, "Writing to file 'out.txt' failed.", web.File.Writing("out.txt").Msg)

	s := web.Validation.While("validating the inputs")
	assert.Equal(t, schema.CategoryValidation, s.Type)
	assert.Equal(t, "Validation error occurred while validating the inputs.", s.Msg)
	assert.Equal(t, s.Msg, s.UIMsg)

	s = web.Value.Since("the amount is negative", web.WithUIMsg("Amount must be positive."))
	assert.Equal(t, "Value error occurred since the amount is negative.", s.Msg)
	assert.Equal(t, "Amount must be positive.", s.UIMsg)

	s = web.Parse.General()
	assert.Equal(t, web.ParseError(), s)
	assert.Equal(t, "Runtime", web.Runtime.Name())
	assert.Equal(t, schema.CategoryRuntime, web.Runtime.Category())
}
