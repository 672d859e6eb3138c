// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Notef prints a progress note unless quiet is set.
func Notef(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, format+"\n", a...)
}

// Warnf prints a warning unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
