package tartlet

import (
	"io"
	"log"
)

var debug = log.New(io.Discard, "tartlet: ", 0)

// SetDebugOutput makes the checker trace its judgments to w. A nil w turns
// tracing off.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	debug.SetOutput(w)
}

func tracef(format string, args ...interface{}) {
	if debug.Writer() != io.Discard {
		debug.Printf(format, args...)
	}
}
