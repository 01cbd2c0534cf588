package slippable

// swipeTracker drives a row that is being swiped horizontally.
type swipeTracker struct{}

// begin is called once when a session enters SWIPE.
func (swipeTracker) begin(s *DragSession) {
	s.Row.Presentation = PresentationSwiping
}

// update applies the horizontal displacement and the panel opacity ramps.
func (swipeTracker) update(s *DragSession) {
	r := s.Row
	r.TranslateX = s.Left
	if r.LeftPanel != nil {
		r.LeftPanel.Opacity = opacityRamp(-s.Left, r.Width, r.Config.SwipeLeftContentPercentToFullOpacity)
	}
	if r.RightPanel != nil {
		r.RightPanel.Opacity = opacityRamp(s.Left, r.Width, r.Config.SwipeRightContentPercentToFullOpacity)
	}
}

// release decides between commit and return from the final displacement.
func (swipeTracker) release(s *DragSession) Outcome {
	r := s.Row
	p := swipePercentage(s.Left, r.Width)
	out := Outcome{Kind: OutcomeReturned, Row: r, SwipePercentage: p, OldIndex: -1, NewIndex: -1}
	if p < 0 {
		out.Direction = DirectionLeft
	} else {
		out.Direction = DirectionRight
	}

	switch {
	case p >= r.Config.SwipeRightThreshold:
		out.Kind = OutcomeRemoved
		out.Direction = DirectionRight
	case p <= -r.Config.SwipeLeftThreshold:
		out.Kind = OutcomeRemoved
		out.Direction = DirectionLeft
	}
	return out
}

// notify runs the row callbacks for a finished swipe. Over-threshold
// callbacks run before the end callback of the same direction.
func (swipeTracker) notify(out Outcome) {
	r := out.Row
	ctx := SwipeContext{Row: r, SwipePercentage: out.SwipePercentage}
	if out.Kind == OutcomeRemoved {
		if out.Direction == DirectionRight {
			call(r.OnSwipeRightEndOverThreshold, ctx)
			call(r.OnSwipeRightEnd, ctx)
		} else {
			call(r.OnSwipeLeftEndOverThreshold, ctx)
			call(r.OnSwipeLeftEnd, ctx)
		}
		return
	}
	if out.SwipePercentage < 0 {
		call(r.OnSwipeLeftEnd, ctx)
	} else {
		call(r.OnSwipeRightEnd, ctx)
	}
}

func call[T any](fn func(T), v T) {
	if fn != nil {
		fn(v)
	}
}

// swipePercentage returns left as a fraction of width. A row without width
// never commits.
func swipePercentage(left, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return left / width
}

// opacityRamp returns dist over percent of width. The result is unclamped.
func opacityRamp(dist, width, percent float64) float64 {
	span := width * percent / 100
	if span <= 0 {
		return 0
	}
	return dist / span
}
