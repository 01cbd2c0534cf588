package slippable

// RowBound is the vertical extent of one row in content coordinates, tagged
// with the logical index the row currently occupies.
type RowBound struct {
	Top, Bottom float64
	CurrentlyAt int
}

// contains reports whether y lies in [Top, Bottom).
func (b RowBound) contains(y float64) bool {
	return y >= b.Top && y < b.Bottom
}

// GeometrySnapshot captures every row's bound at the moment a reorder begins.
// Bounds are kept in tree order and mutated as siblings shift.
type GeometrySnapshot struct {
	Bounds []RowBound

	dragged     int
	firstBottom float64
	lastTop     float64
}

// takeSnapshot records the bounds of rows, which must be in tree order.
// Rows taller than the dragged row are shrunk symmetrically to its height so
// that a short row does not have to travel past the middle of a tall one.
func takeSnapshot(rows []*Row, dragged int) *GeometrySnapshot {
	invariant(dragged >= 0 && dragged < len(rows), "snapshot of row %d in %d rows", dragged, len(rows))

	h := rows[dragged].Height
	snap := &GeometrySnapshot{
		Bounds:  make([]RowBound, len(rows)),
		dragged: dragged,
	}
	for i, r := range rows {
		top := r.layoutY + r.TranslateY
		bottom := top + r.Height
		if r.Height > h {
			trim := (r.Height - h) / 2
			top += trim
			bottom -= trim
		}
		snap.Bounds[i] = RowBound{Top: top, Bottom: bottom, CurrentlyAt: i}
	}
	snap.firstBottom = snap.Bounds[0].Bottom
	snap.lastTop = snap.Bounds[len(rows)-1].Top
	return snap
}

// Len returns the number of captured rows.
func (s *GeometrySnapshot) Len() int { return len(s.Bounds) }

// Dragged returns the tree index of the dragged row.
func (s *GeometrySnapshot) Dragged() int { return s.dragged }

// resolveTarget maps the dragged row's center to a logical index. Centers
// above the first row's bottom resolve to 0 and below the last row's top to
// the last index. Otherwise the first sibling bound containing the center
// wins, and prev is kept when none does.
func (s *GeometrySnapshot) resolveTarget(center float64, prev int) int {
	n := len(s.Bounds)
	switch {
	case center < s.firstBottom:
		return 0
	case center > s.lastTop:
		return n - 1
	}
	for i, b := range s.Bounds {
		if i == s.dragged {
			continue
		}
		if b.contains(center) {
			return b.CurrentlyAt
		}
	}
	return prev
}

// shift moves bound i by dy and its logical index by step.
func (s *GeometrySnapshot) shift(i int, dy float64, step int) {
	b := &s.Bounds[i]
	b.Top += dy
	b.Bottom += dy
	b.CurrentlyAt += step
}
