package schema

import (
	"context"
	"database/sql"
	"io"
	"io/fs"
	"strconv"

	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
)

// BaseTypes is the built-in type table.
func BaseTypes() map[string]Category {
	return map[string]Category{
		"*fs.PathError":               CategoryFile,
		"*os.LinkError":               CategoryFile,
		"*os.SyscallError":            CategoryRuntime,
		"*exec.ExitError":             CategoryRuntime,
		"*exec.Error":                 CategoryFile,
		"*strconv.NumError":           CategoryValue,
		"*json.SyntaxError":           CategoryParse,
		"*json.UnmarshalTypeError":    CategoryValue,
		"*json.InvalidUnmarshalError": CategoryValue,
		"*time.ParseError":            CategoryParse,
		"*url.Error":                  CategoryRuntime,
		"*csv.ParseError":             CategoryParse,
		"*xml.SyntaxError":            CategoryParse,
		"*base64.CorruptInputError":   CategoryParse,
	}
}

// BaseRules is the built-in rule list, most specific first.
func BaseRules() []Rule {
	return []Rule{
		{Name: "timeout", Category: CategoryTimeout, Match: isTimeout},
		{Name: "fs", Category: CategoryFile, Match: isAny(fs.ErrNotExist, fs.ErrExist, fs.ErrPermission, fs.ErrClosed, fs.ErrInvalid)},
		{Name: "io", Category: CategoryParse, Match: isAny(io.ErrUnexpectedEOF)},
		{Name: "strconv", Category: CategoryValue, Match: isAny(strconv.ErrSyntax, strconv.ErrRange)},
		{Name: "sql", Category: CategoryDatabase, Match: isAny(sql.ErrNoRows, sql.ErrConnDone, sql.ErrTxDone)},
		{Name: "postgres_integrity", Category: CategoryValue, Match: isPostgresIntegrity},
		{Name: "postgres", Category: CategoryDatabase, Match: isPostgres},
		{Name: "sqlite_constraint", Category: CategoryValue, Match: isSQLiteConstraint},
		{Name: "sqlite", Category: CategoryDatabase, Match: isSQLite},
		{Name: "redis", Category: CategoryDatabase, Match: isRedis},
		{Name: "s3_not_found", Category: CategoryFile, Match: isS3NotFound},
	}
}

// is compares a single node without descending into what it wraps; Walk
// already visits the chain.
func is(node, target error) bool {
	if node == target {
		return true
	}
	if x, ok := node.(interface{ Is(error) bool }); ok {
		return x.Is(target)
	}
	return false
}

func isAny(targets ...error) func(error) bool {
	return func(node error) bool {
		for _, t := range targets {
			if is(node, t) {
				return true
			}
		}
		return false
	}
}

func isTimeout(node error) bool {
	if is(node, context.DeadlineExceeded) {
		return true
	}
	t, ok := node.(interface{ Timeout() bool })
	return ok && t.Timeout()
}

// Integrity constraint violations (class 23) and references to undefined
// tables or columns are caused by the values sent, not the database.
func isPostgresIntegrity(node error) bool {
	pqErr, ok := node.(*pq.Error)
	if !ok {
		return false
	}
	switch pqErr.Code {
	case "42P01", "42703":
		return true
	}
	return pqErr.Code.Class() == "23"
}

func isPostgres(node error) bool {
	_, ok := node.(*pq.Error)
	return ok
}

func sqliteError(node error) (sqlite3.Error, bool) {
	switch e := node.(type) {
	case sqlite3.Error:
		return e, true
	case *sqlite3.Error:
		if e != nil {
			return *e, true
		}
	}
	return sqlite3.Error{}, false
}

func isSQLiteConstraint(node error) bool {
	e, ok := sqliteError(node)
	return ok && e.Code == sqlite3.ErrConstraint
}

func isSQLite(node error) bool {
	_, ok := sqliteError(node)
	return ok
}

// redis.Nil is itself a redis.Error.
func isRedis(node error) bool {
	_, ok := node.(redis.Error)
	return ok
}

func isS3NotFound(node error) bool {
	switch node.(type) {
	case *s3types.NoSuchKey, *s3types.NotFound, *s3types.NoSuchBucket:
		return true
	}
	return false
}
