// Package location reports where an error record was created.
package location

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

const modulePath = "codeberg.org/mutker/errschema/"

// library lists the packages whose frames are never reported as the caller.
var library = map[string]bool{
	modulePath + "schema":            true,
	modulePath + "web":               true,
	modulePath + "web/ginerr":        true,
	modulePath + "internal/location": true,
}

// Caller returns "file:line:function" of the first frame outside the library
// packages, or "" if the stack holds none.
func Caller() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if frame.Function != "" && !library[packagePath(frame.Function)] {
			return format(frame)
		}
		if !more {
			return ""
		}
	}
}

func format(f runtime.Frame) string {
	return fmt.Sprintf("%s:%d:%s", filepath.Base(f.File), f.Line, funcName(f.Function))
}

// packagePath strips the function and receiver from a fully qualified name,
// e.g. "example.com/a/b.(*T).M" becomes "example.com/a/b".
func packagePath(fn string) string {
	slash := strings.LastIndex(fn, "/")
	if slash < 0 {
		slash = 0
	}
	if dot := strings.Index(fn[slash:], "."); dot >= 0 {
		return fn[:slash+dot]
	}
	return fn
}

func funcName(fn string) string {
	return strings.TrimPrefix(fn, packagePath(fn)+".")
}
