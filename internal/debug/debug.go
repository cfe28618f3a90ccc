//go:build debug

// Package debug includes debugging helpers.
//
// They are compiled out entirely unless the debug build tag is set, so hot
// paths may assert freely.
package debug

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"

	"github.com/timandy/routine"
)

// Enabled is true when the module is built with the debug tag.
const Enabled = true

var debugFilter = flag.String("debug-filter", "", "regexp to filter debug logs by")

// Log prints debugging information to stderr.
//
// context is an optional set of `fmt.Printf` args printed before operation,
// useful to group the output of related operations.
func Log(context []any, operation string, format string, args ...any) {
	_, file, line, _ := runtime.Caller(1)

	buf := new(bytes.Buffer)

	_, _ = fmt.Fprintf(buf, "%s:%d [g%04d", filepath.Base(file), line, routine.Goid())
	if len(context) >= 1 {
		_, _ = fmt.Fprintf(buf, ", "+context[0].(string), context[1:]...)
	}
	_, _ = fmt.Fprintf(buf, "] %s: ", operation)
	_, _ = fmt.Fprintf(buf, format, args...)

	if *debugFilter != "" {
		if re, err := regexp.Compile(*debugFilter); err == nil && !re.MatchString(buf.String()) {
			return
		}
	}

	buf.WriteByte('\n')
	_, _ = os.Stderr.Write(buf.Bytes())
}

// Assert panics if cond is false, but only in debug mode.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("art: internal assertion failed: "+format, args...))
	}
}
