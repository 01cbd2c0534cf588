package slippable

import (
	"errors"
	"fmt"
)

// ErrSessionActive is returned by PointerDown while another drag session on
// the same list has not been released yet.
var ErrSessionActive = errors.New("slippable: drag session already active")

// StructureError reports a pointer-down whose target has no enclosing row
// before the list root is reached.
type StructureError struct {
	Target *Node
}

func (e *StructureError) Error() string {
	if e.Target == nil {
		return "slippable: pointer target is nil"
	}
	return fmt.Sprintf("slippable: node %q is not inside a row", e.Target.Name)
}

// invariant panics when cond is false. It guards states that only a bug in
// this package can produce, as opposed to errors a host can recover from.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic("slippable: invariant violated: " + fmt.Sprintf(format, args...))
	}
}

// ErrRowNotFound is returned when a row passed to a List belongs to another
// list or has already been removed.
var ErrRowNotFound = errors.New("slippable: row not in list")
