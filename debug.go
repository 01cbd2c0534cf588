package slippable

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

// globalDebug mirrors the most recently set List debug flag so that node
// operations (which lack a List pointer) can check it cheaply. Only valid
// with a single List; multiple Lists with differing debug modes will reflect
// whichever called SetDebugMode last.
var globalDebug bool

// SetLogger routes the list's session and engine events to logger. Lists log
// nothing until a logger is set.
func (l *List) SetLogger(logger zerolog.Logger) {
	l.log = logger
}

// Logger returns the logger set with SetLogger.
func (l *List) Logger() zerolog.Logger {
	return l.log
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and the reorder bookkeeping is verified after every move.
func (l *List) SetDebugMode(enabled bool) {
	l.debug = enabled
	globalDebug = enabled
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("slippable debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckPermutation panics unless the snapshot's logical indices are
// exactly 0..n-1.
func debugCheckPermutation(snap *GeometrySnapshot) {
	if err := snap.checkPermutation(); err != nil {
		panic("slippable debug: " + err.Error())
	}
}

// checkPermutation reports whether CurrentlyAt over all bounds is a
// permutation of 0..n-1.
func (s *GeometrySnapshot) checkPermutation() error {
	at := make([]int, len(s.Bounds))
	for i, b := range s.Bounds {
		at[i] = b.CurrentlyAt
	}
	sort.Ints(at)
	for i, v := range at {
		if v != i {
			return fmt.Errorf("logical indices %v are not a permutation of 0..%d", at, len(at)-1)
		}
	}
	return nil
}

// logRow attaches the row identity to a log event.
func logRow(e *zerolog.Event, row *Row) *zerolog.Event {
	if row == nil {
		return e
	}
	return e.Str("row", row.Name()).Int("index", row.Index())
}
