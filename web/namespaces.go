package web

import (
	"fmt"

	"codeberg.org/mutker/errschema/schema"
)

// Namespace mirrors schema.Namespace for web records. Messages produced by a
// namespace double as the end-user message.
type Namespace struct {
	base schema.Namespace
}

func NewNamespace(c schema.Category, name string) Namespace {
	return Namespace{base: schema.NewNamespace(c, name)}
}

var (
	File       = FileNamespace{NewNamespace(CategoryFile, "File")}
	DB         = DBNamespace{NewNamespace(CategoryDatabase, "Database")}
	Map        = MapNamespace{NewNamespace(CategoryDict, "Dict")}
	Value      = NewNamespace(CategoryValue, "Value")
	Parse      = NewNamespace(CategoryParse, "Parse")
	Runtime    = NewNamespace(CategoryRuntime, "Runtime")
	Validation = NewNamespace(CategoryValidation, "Validation")
	Docker     = DockerNamespace{NewNamespace(CategoryDocker, "Docker")}
)

func (n Namespace) Category() schema.Category {
	return n.base.Category()
}

func (n Namespace) Name() string {
	return n.base.Name()
}

// General returns the category's default record.
func (n Namespace) General(opts ...Option) ErrorSchema {
	return byCategory(n.Category(), opts)
}

func (n Namespace) While(action string, opts ...Option) ErrorSchema {
	return n.from(n.base.While(action), opts)
}

func (n Namespace) Since(reason string, opts ...Option) ErrorSchema {
	return n.from(n.base.Since(reason), opts)
}

func (n Namespace) Custom(msg string, opts ...Option) ErrorSchema {
	return build(n.Category(), msg, msg, opts)
}

func (n Namespace) from(s schema.ErrorSchema, opts []Option) ErrorSchema {
	return build(s.Type, s.Msg, s.Msg, opts)
}

type FileNamespace struct {
	Namespace
}

func (n FileNamespace) file() schema.FileNamespace {
	return schema.FileNamespace{Namespace: n.base}
}

func (n FileNamespace) NotFound(path string, opts ...Option) ErrorSchema {
	return n.from(n.file().NotFound(path), opts)
}

func (n FileNamespace) AlreadyExists(path string, opts ...Option) ErrorSchema {
	return n.from(n.file().AlreadyExists(path), opts)
}

func (n FileNamespace) Creating(path string, opts ...Option) ErrorSchema {
	return n.from(n.file().Creating(path), opts)
}

func (n FileNamespace) Writing(path string, opts ...Option) ErrorSchema {
	return n.from(n.file().Writing(path), opts)
}

func (n FileNamespace) Reading(path string, opts ...Option) ErrorSchema {
	return n.from(n.file().Reading(path), opts)
}

func (n FileNamespace) Removing(path string, opts ...Option) ErrorSchema {
	return n.from(n.file().Removing(path), opts)
}

func (n FileNamespace) Copying(path string, opts ...Option) ErrorSchema {
	return n.from(n.file().Copying(path), opts)
}

func (n FileNamespace) Updating(path string, opts ...Option) ErrorSchema {
	return n.from(n.file().Updating(path), opts)
}

type DBNamespace struct {
	Namespace
}

func (n DBNamespace) NoResults(desc string, opts ...Option) ErrorSchema {
	return n.from(schema.DBNamespace{Namespace: n.base}.NoResults(desc), opts)
}

func (n DBNamespace) ForeignKeyViolation(opts ...Option) ErrorSchema {
	return n.from(schema.DBNamespace{Namespace: n.base}.ForeignKeyViolation(), opts)
}

type MapNamespace struct {
	Namespace
}

func (n MapNamespace) MissingKeys(keys []string, opts ...Option) ErrorSchema {
	return n.from(schema.MapNamespace{Namespace: n.base}.MissingKeys(keys), opts)
}

// DockerNamespace produces docker_error records about a container. An empty
// container name reads as "a container".
type DockerNamespace struct {
	Namespace
}

func (n DockerNamespace) Waiting(container string, opts ...Option) ErrorSchema {
	return n.Custom(fmt.Sprintf("Failed when waiting for %s to finish.", containerRef(container)), opts...)
}

func (n DockerNamespace) Running(container string, opts ...Option) ErrorSchema {
	return n.Custom(fmt.Sprintf("Failed when running %s.", containerRef(container)), opts...)
}

func (n DockerNamespace) Starting(container string, opts ...Option) ErrorSchema {
	return n.Custom(fmt.Sprintf("Failed when starting %s.", containerRef(container)), opts...)
}

func (n DockerNamespace) Stopping(container string, opts ...Option) ErrorSchema {
	return n.Custom(fmt.Sprintf("Failed when stopping %s.", containerRef(container)), opts...)
}

func (n DockerNamespace) Removing(container string, opts ...Option) ErrorSchema {
	return n.Custom(fmt.Sprintf("Failed when removing %s.", containerRef(container)), opts...)
}

func containerRef(name string) string {
	if name == "" {
		return "a container"
	}
	return fmt.Sprintf("container '%s'", name)
}
