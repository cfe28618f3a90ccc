//go:build !debug

package debug

// Enabled is true when the module is built with the debug tag.
const Enabled = false

// Log does nothing unless built with the debug tag.
func Log([]any, string, string, ...any) {}

// Assert does nothing unless built with the debug tag.
func Assert(bool, string, ...any) {}
