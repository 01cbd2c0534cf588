package slippable

import (
	"math"
	"time"
)

// DragSession is the state of one press, from pointer-down to pointer-up.
// Left and Top are the accumulated displacement; Top starts at the row's
// TranslateY so a reorder continues from wherever the row is drawn.
type DragSession struct {
	Row *Row

	OriginX, OriginY float64
	Left, Top        float64
	PrevLeft         float64
	PrevTop          float64
	StartTop         float64

	State DragState

	// Snapshot is only set in DragReorder.
	Snapshot *GeometrySnapshot

	// OldIndex and NewIndex are the pending move while reordering.
	OldIndex, NewIndex int

	timer holdTimer
}

// HoldPending reports whether the hold timer is still armed.
func (s *DragSession) HoldPending() bool {
	return s.timer.active()
}

// GestureClassifier turns one pointer session at a time into a swipe, a
// reorder, or nothing. All methods must be called from the game goroutine.
type GestureClassifier struct {
	list     *List
	session  *DragSession
	swipe    swipeTracker
	reorder  reorderEngine
	director animationDirector
}

func newGestureClassifier(l *List) *GestureClassifier {
	return &GestureClassifier{
		list:    l,
		reorder: reorderEngine{list: l},
	}
}

// Session returns the active session, or nil.
func (g *GestureClassifier) Session() *DragSession {
	return g.session
}

// Active reports whether a session is in progress.
func (g *GestureClassifier) Active() bool {
	return g.session != nil
}

// PointerDown starts a session on the row enclosing target. It fails with
// ErrSessionActive while another session is in progress and with a
// *StructureError when target is not inside one of this list's rows.
func (g *GestureClassifier) PointerDown(target *Node, x, y float64) error {
	log := g.list.log
	if g.session != nil {
		log.Warn().Msg("pointer down rejected: session active")
		return ErrSessionActive
	}
	row, err := enclosingRow(target)
	if err == nil && row.list != g.list {
		err = &StructureError{Target: target}
	}
	if err != nil {
		log.Warn().Err(err).Msg("pointer down rejected")
		return err
	}

	row.stopAnimation()
	s := &DragSession{
		Row:      row,
		OriginX:  x,
		OriginY:  y,
		Top:      row.TranslateY,
		PrevTop:  row.TranslateY,
		StartTop: row.TranslateY,
		State:    DragUndecided,
		OldIndex: row.Index(),
	}
	s.NewIndex = s.OldIndex
	row.Presentation = PresentationUndecided
	s.timer.arm(row.Config.HoldTimeout, g.onHold)
	g.session = s

	logRow(log.Debug(), row).Float64("x", x).Float64("y", y).Msg("session started")
	return nil
}

// PointerMove adds (dx, dy) to the session displacement and lets the current
// sub-state react. It is a no-op without a session.
func (g *GestureClassifier) PointerMove(dx, dy float64) {
	s := g.session
	if s == nil {
		return
	}
	s.PrevLeft, s.PrevTop = s.Left, s.Top
	s.Left += dx
	s.Top += dy

	switch s.State {
	case DragUndecided:
		cfg := s.Row.Config
		if math.Abs(s.Left) > cfg.SwipeStartDistance && !cfg.BlockSwipe {
			s.timer.stop()
			s.State = DragSwipe
			g.swipe.begin(s)
			g.swipe.update(s)
			logRow(g.list.log.Debug(), s.Row).Float64("left", s.Left).Msg("swipe started")
		}
	case DragSwipe:
		g.swipe.update(s)
	case DragReorder:
		g.reorder.update(s)
	default:
		invariant(false, "pointer move in drag state %v", s.State)
	}
}

// PointerUp finishes the session and returns its outcome. Row callbacks and
// list outcome handlers have run by the time it returns. Without a session
// it returns an OutcomeNone with no row.
func (g *GestureClassifier) PointerUp() Outcome {
	s := g.session
	if s == nil {
		return Outcome{Kind: OutcomeNone, OldIndex: -1, NewIndex: -1}
	}
	s.timer.stop()

	var out Outcome
	switch s.State {
	case DragUndecided:
		g.session = nil
		out = Outcome{Kind: OutcomeNone, Row: s.Row, OldIndex: -1, NewIndex: -1}
		g.director.play(out)
	case DragSwipe:
		// Cleared first so callbacks may remove the row.
		g.session = nil
		out = g.swipe.release(s)
		g.director.play(out)
		g.swipe.notify(out)
	case DragReorder:
		out = g.reorder.commit(s)
		g.session = nil
		g.director.play(out)
	default:
		invariant(false, "pointer up in drag state %v", s.State)
	}

	logRow(g.list.log.Debug(), s.Row).
		Stringer("outcome", out.Kind).
		Float64("swipe_percentage", out.SwipePercentage).
		Msg("session ended")
	g.list.emit(out)
	return out
}

// Advance runs the hold timer of the active session for dt.
func (g *GestureClassifier) Advance(dt time.Duration) {
	if g.session != nil {
		g.session.timer.advance(dt)
	}
}

// onHold fires when the hold timer expires. A press that has stayed within
// the reorder slop becomes a reorder.
func (g *GestureClassifier) onHold() {
	s := g.session
	if s == nil || s.State != DragUndecided {
		return
	}
	cfg := s.Row.Config
	if cfg.BlockReorder ||
		math.Abs(s.Left) > cfg.ReorderSlopX ||
		math.Abs(s.Top-s.StartTop) > cfg.ReorderSlopY {
		logRow(g.list.log.Debug(), s.Row).Float64("left", s.Left).Float64("top", s.Top).Msg("hold ignored")
		return
	}
	g.reorder.begin(s)
}
