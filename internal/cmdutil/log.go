// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf prints a "warning: " line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "warning: "+format+"\n", a...)
}

// Errorf prints an "error: " line to dst and returns code, so call sites can
// write `return cmdutil.Errorf(stderr, 2, ...)`.
func Errorf(dst io.Writer, code int, format string, a ...any) int {
	_, _ = fmt.Fprintf(dst, "error: "+format+"\n", a...)
	return code
}

// WarnOnce remembers keys it has already warned about.
type WarnOnce struct {
	Dst   io.Writer
	Quiet bool
	seen  map[string]bool
}

// Warnf warns unless key was seen before. Not safe for concurrent use.
func (w *WarnOnce) Warnf(key, format string, a ...any) {
	if w.seen == nil {
		w.seen = map[string]bool{}
	}
	if w.seen[key] {
		return
	}
	w.seen[key] = true
	Warnf(w.Dst, w.Quiet, format, a...)
}
