package slippable

// Panel is an action panel revealed behind a row while it is swiped.
type Panel struct {
	node *Node

	// Opacity follows the swipe distance. It is not clamped: values below 0
	// or above 1 are expected and clipped by the renderer.
	Opacity float64
	Color   Color
}

// Node returns the panel's node in the list tree.
func (p *Panel) Node() *Node { return p.node }

// Row is one draggable entry of a List. All visual state is numeric and
// explicit: the engine writes it, the renderer reads it.
type Row struct {
	node    *Node
	content *Node
	list    *List

	// LeftPanel is revealed by swiping left, RightPanel by swiping right.
	// Either may be nil.
	LeftPanel  *Panel
	RightPanel *Panel

	Width, Height float64

	// TranslateX and TranslateY offset the row from its layout slot.
	TranslateX float64
	TranslateY float64

	Presentation Presentation

	// ShiftAnimated marks rows whose TranslateY changes should be eased by the
	// renderer. It is set on every sibling of a reordering row.
	ShiftAnimated bool

	Color  Color
	Config GestureConfig

	// Per-row callbacks (nil by default).
	OnSwipeLeftEnd               func(SwipeContext)
	OnSwipeRightEnd              func(SwipeContext)
	OnSwipeLeftEndOverThreshold  func(SwipeContext)
	OnSwipeRightEndOverThreshold func(SwipeContext)
	OnReorderStart               func(ReorderContext)
	OnReorderEnd                 func(ReorderContext)

	layoutY float64 // top of the layout slot in content coordinates
	shownY  float64 // eased TranslateY used for drawing
	anim    *TweenGroup
}

// newRow builds the row subtree: row node -> left panel, right panel, content.
// Panels come first so that hit testing reaches the content on top.
func newRow(name string, height float64, cfg GestureConfig) *Row {
	r := &Row{
		Height: height,
		Color:  ColorWhite,
		Config: cfg,
	}
	r.node = NewNode(name)
	r.node.row = r

	r.LeftPanel = &Panel{node: NewNode(name + "/left"), Color: Color{0.85, 0.25, 0.25, 1}}
	r.RightPanel = &Panel{node: NewNode(name + "/right"), Color: Color{0.25, 0.7, 0.35, 1}}
	r.content = NewNode(name + "/content")

	r.node.AddChild(r.LeftPanel.node)
	r.node.AddChild(r.RightPanel.node)
	r.node.AddChild(r.content)
	return r
}

// Name returns the row's node name.
func (r *Row) Name() string { return r.node.Name }

// Node returns the row's root node.
func (r *Row) Node() *Node { return r.node }

// Content returns the node hosts attach the row's own nodes to.
func (r *Row) Content() *Node { return r.content }

// List returns the list the row belongs to, or nil once removed.
func (r *Row) List() *List { return r.list }

// Index returns the row's position in its list, or -1 if detached.
func (r *Row) Index() int {
	if r.list == nil {
		return -1
	}
	return r.list.root.IndexOf(r.node)
}

// LayoutY returns the top of the row's layout slot in content coordinates.
func (r *Row) LayoutY() float64 { return r.layoutY }

// ContentRect returns the row's current extent in content coordinates,
// including its vertical translation.
func (r *Row) ContentRect() Rect {
	return Rect{X: 0, Y: r.layoutY + r.TranslateY, Width: r.Width, Height: r.Height}
}

// ScreenRect returns the row's current extent in screen coordinates. The
// horizontal swipe translation is not included; panels stay in place.
func (r *Row) ScreenRect() Rect {
	if r.list == nil {
		return r.ContentRect()
	}
	c := r.list.Container
	return Rect{
		X:      c.Viewport.X,
		Y:      c.ContentToScreen(r.layoutY + r.TranslateY),
		Width:  r.Width,
		Height: r.Height,
	}
}

// ShownY returns the vertical offset the renderer draws this frame.
func (r *Row) ShownY() float64 { return r.shownY }

// RemoveLeftPanel drops the left action panel.
func (r *Row) RemoveLeftPanel() {
	if r.LeftPanel != nil {
		r.LeftPanel.node.Dispose()
		r.LeftPanel = nil
	}
}

// RemoveRightPanel drops the right action panel.
func (r *Row) RemoveRightPanel() {
	if r.RightPanel != nil {
		r.RightPanel.node.Dispose()
		r.RightPanel = nil
	}
}

// Animating reports whether a return or remove animation is running.
func (r *Row) Animating() bool { return r.anim != nil }

// stopAnimation abandons a running return/remove animation, leaving the
// animated fields where they are.
func (r *Row) stopAnimation() {
	if r.anim != nil {
		r.anim.Done = true
		r.anim = nil
	}
}

// easeShift moves shownY toward TranslateY. Rows without the shift marker snap.
func (r *Row) easeShift(lerp float64) {
	if !r.ShiftAnimated || lerp >= 1 {
		r.shownY = r.TranslateY
		return
	}
	r.shownY += (r.TranslateY - r.shownY) * lerp
	if d := r.TranslateY - r.shownY; d < 0.5 && d > -0.5 {
		r.shownY = r.TranslateY
	}
}
