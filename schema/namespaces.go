package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Namespace groups the factories of one category under a display name used
// in generated messages.
type Namespace struct {
	category Category
	name     string
}

// NewNamespace creates a namespace for c. An empty name uses the pretty
// category name without its " error" suffix.
func NewNamespace(c Category, name string) Namespace {
	if name == "" {
		name = strings.TrimSuffix(c.Pretty(), " error")
	}
	return Namespace{category: c, name: name}
}

var (
	File    = FileNamespace{NewNamespace(CategoryFile, "File")}
	DB      = DBNamespace{NewNamespace(CategoryDatabase, "Database")}
	Map     = MapNamespace{NewNamespace(CategoryDict, "Dict")}
	Value   = NewNamespace(CategoryValue, "Value")
	Parse   = NewNamespace(CategoryParse, "Parse")
	Runtime = NewNamespace(CategoryRuntime, "Runtime")
)

func (n Namespace) Category() Category {
	return n.category
}

func (n Namespace) Name() string {
	return n.name
}

// General returns the category's default record.
func (n Namespace) General(opts ...Option) ErrorSchema {
	return build(n.category, n.category.DefaultMsg(), opts)
}

// While reports an error raised during action:
// "<Name> error occurred while <action>."
func (n Namespace) While(action string, opts ...Option) ErrorSchema {
	return n.Custom(fmt.Sprintf("%s error occurred while %s.", n.name, action), opts...)
}

// Since reports an error with a known reason:
// "<Name> error occurred since <reason>."
func (n Namespace) Since(reason string, opts ...Option) ErrorSchema {
	return n.Custom(fmt.Sprintf("%s error occurred since %s.", n.name, reason), opts...)
}

// Custom builds a record of the namespace category with msg as default.
func (n Namespace) Custom(msg string, opts ...Option) ErrorSchema {
	return build(n.category, msg, opts)
}

// FileNamespace produces file_error records whose messages name the path.
type FileNamespace struct {
	Namespace
}

// NotFound yields "File '<name>' not found." or "Directory '<name>' not
// found.", where name is the last path segment.
func (n FileNamespace) NotFound(path string, opts ...Option) ErrorSchema {
	kind, name := describePath(path)
	return n.Custom(fmt.Sprintf("%s '%s' not found.", capitalize(kind), name), opts...)
}

func (n FileNamespace) AlreadyExists(path string, opts ...Option) ErrorSchema {
	kind, name := describePath(path)
	return n.Custom(fmt.Sprintf("%s '%s' already exists.", capitalize(kind), name), opts...)
}

func (n FileNamespace) Creating(path string, opts ...Option) ErrorSchema {
	kind, name := describePath(path)
	return n.Custom(fmt.Sprintf("Creating %s '%s' failed.", kind, name), opts...)
}

func (n FileNamespace) Writing(path string, opts ...Option) ErrorSchema {
	kind, name := describePath(path)
	return n.Custom(fmt.Sprintf("Writing to %s '%s' failed.", kind, name), opts...)
}

func (n FileNamespace) Reading(path string, opts ...Option) ErrorSchema {
	kind, name := describePath(path)
	return n.Custom(fmt.Sprintf("Reading from %s '%s' failed.", kind, name), opts...)
}

func (n FileNamespace) Removing(path string, opts ...Option) ErrorSchema {
	kind, name := describePath(path)
	return n.Custom(fmt.Sprintf("Removing %s '%s' failed.", kind, name), opts...)
}

func (n FileNamespace) Copying(path string, opts ...Option) ErrorSchema {
	kind, name := describePath(path)
	return n.Custom(fmt.Sprintf("Copying %s '%s' failed.", kind, name), opts...)
}

// Updating only applies to files.
func (n FileNamespace) Updating(path string, opts ...Option) ErrorSchema {
	_, name := describePath(path)
	return n.Custom(fmt.Sprintf("Updating file '%s' failed.", name), opts...)
}

// describePath returns "directory" for paths ending in a separator or naming
// an existing directory, "file" otherwise, along with the last path segment.
func describePath(path string) (kind, name string) {
	kind = "file"
	if isDirPath(path) {
		kind = "directory"
	}

	trimmed := strings.TrimRight(path, `/\`)
	if trimmed == "" {
		return kind, path
	}
	if i := strings.LastIndexAny(trimmed, `/\`); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return kind, trimmed
}

func isDirPath(path string) bool {
	if path == "" {
		return false
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, `\`) ||
		strings.HasSuffix(path, string(filepath.Separator)) {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// MapNamespace produces dict_error records.
type MapNamespace struct {
	Namespace
}

// MissingKeys yields "Keys ('a', 'b') not found in dictionary."
func (n MapNamespace) MissingKeys(keys []string, opts ...Option) ErrorSchema {
	return n.Custom(fmt.Sprintf("Keys ('%s') not found in dictionary.", strings.Join(keys, "', '")), opts...)
}

// DBNamespace produces database_error records.
type DBNamespace struct {
	Namespace
}

// NoResults yields "No results found while <desc>."
func (n DBNamespace) NoResults(desc string, opts ...Option) ErrorSchema {
	return n.Custom(fmt.Sprintf("No results found while %s.", desc), opts...)
}

func (n DBNamespace) ForeignKeyViolation(opts ...Option) ErrorSchema {
	return n.Custom("Foreign key violation occurred.", opts...)
}
