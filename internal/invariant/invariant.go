// Package invariant reports states that checked input never reaches, such
// as applying a value that is not a function. Its errors are only ever
// panicked with.
package invariant

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

var dump = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                6,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

type Error struct {
	Op   string
	Dump string
}

func (e *Error) Error() string {
	return fmt.Sprintf("internal error in %s, not expecting:\n%s", e.Op, e.Dump)
}

// Violated describes the values op did not expect.
func Violated(op string, vs ...interface{}) *Error {
	return &Error{Op: op, Dump: dump.Sdump(vs...)}
}
