package slippable

// reorderEngine drives a row that has been lifted for reordering. Siblings
// slide out of its way while it moves and the tree is rearranged on release.
type reorderEngine struct {
	list *List
}

// begin lifts s.Row: the geometry of every row is captured and the siblings
// are marked for eased shifting.
func (e *reorderEngine) begin(s *DragSession) {
	rows := e.list.Rows()
	r := s.Row

	s.State = DragReorder
	s.OldIndex = r.Index()
	s.NewIndex = s.OldIndex
	s.Snapshot = takeSnapshot(rows, s.OldIndex)

	r.Presentation = PresentationReordering
	for _, sib := range rows {
		if sib != r {
			sib.ShiftAnimated = true
		}
	}

	logRow(e.list.log.Debug(), r).Msg("reorder started")
	call(r.OnReorderStart, ReorderContext{Row: r, OldIndex: s.OldIndex, NewIndex: s.NewIndex})
}

// update follows the vertical displacement in s.Top: it scrolls the
// container when the row nears a visible edge, resolves the target index
// from the row's center, and shifts every sibling between the original and
// target positions by one slot.
func (e *reorderEngine) update(s *DragSession) {
	l := e.list
	r := s.Row
	snap := s.Snapshot
	invariant(snap != nil, "reorder update without a geometry snapshot")

	rect := r.ScreenRect()
	if delta := l.Container.autoScrollDelta(rect.Y, rect.Bottom(), r.Config.AutoScrollTrigger); delta != 0 {
		moved := l.Container.ScrollBy(delta)
		l.log.Debug().Float64("delta", moved).Float64("scroll_top", l.Container.ScrollTop).Msg("auto-scroll")
	}

	r.TranslateY = s.Top
	center := r.layoutY + r.TranslateY + r.Height/2

	o := snap.dragged
	t := snap.resolveTarget(center, s.NewIndex)
	d := r.Height + r.Config.Gap

	for i, sib := range l.Rows() {
		if i == o {
			continue
		}
		switch {
		case i > o && i <= t:
			if sib.TranslateY == 0 {
				snap.shift(i, -d, -1)
			}
			sib.TranslateY = -d
		case i < o && i >= t:
			if sib.TranslateY == 0 {
				snap.shift(i, d, 1)
			}
			sib.TranslateY = d
		default:
			if sib.TranslateY < 0 {
				snap.shift(i, d, 1)
			} else if sib.TranslateY > 0 {
				snap.shift(i, -d, -1)
			}
			sib.TranslateY = 0
		}
	}
	snap.Bounds[o].CurrentlyAt = t

	if t != s.NewIndex {
		logRow(l.log.Debug(), r).Int("from", s.NewIndex).Int("to", t).Msg("reorder target changed")
	}
	s.OldIndex = o
	s.NewIndex = t

	if l.debug {
		debugCheckPermutation(snap)
	}
}

// commit ends the reorder: OnReorderEnd runs first, then every translation
// is cleared and the row node is moved to its new index.
func (e *reorderEngine) commit(s *DragSession) Outcome {
	l := e.list
	r := s.Row
	o, t := s.OldIndex, s.NewIndex

	call(r.OnReorderEnd, ReorderContext{Row: r, OldIndex: o, NewIndex: t})

	for _, sib := range l.Rows() {
		sib.ShiftAnimated = false
		sib.TranslateY = 0
		sib.shownY = 0
	}
	if o != t {
		l.root.moveChild(o, t)
	}
	l.layout()

	logRow(l.log.Debug(), r).Int("old_index", o).Int("new_index", t).Msg("reorder committed")
	return Outcome{Kind: OutcomeReordered, Row: r, OldIndex: o, NewIndex: t}
}
