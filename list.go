package slippable

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"
)

const defaultShiftLerp = 0.35

// List is the top-level object. It owns the row tree, the scroll container,
// the gesture classifier, and pointer input state.
type List struct {
	root     *Node
	config   GestureConfig
	gestures *GestureClassifier

	// Container is the scrollable viewport the rows are drawn into.
	Container *ScrollContainer

	// ClearColor fills the viewport behind the rows. Zero alpha skips the fill.
	ClearColor Color

	// ShiftLerp is the fraction of the remaining distance a shifting sibling
	// covers each frame. Values >= 1 snap.
	ShiftLerp float64

	// OnDrawRow, when set, is called after each row body is drawn so hosts can
	// draw labels or icons inside rect.
	OnDrawRow func(dst *ebiten.Image, row *Row, rect Rect)

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	handlers        outcomeRegistry
	screenshotQueue []string

	// Input state
	pointer     pointerState
	input       func() (x, y float64, pressed bool)
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
	updateFunc  func() error

	log   zerolog.Logger
	debug bool
}

// NewList creates an empty list drawn into viewport. Rows created by the list
// start with a copy of cfg.
func NewList(viewport Rect, cfg GestureConfig) *List {
	l := &List{
		root:          NewNode("list"),
		config:        cfg,
		Container:     newScrollContainer(viewport),
		ShiftLerp:     defaultShiftLerp,
		ScreenshotDir: "screenshots",
		input:         pollPointer,
		log:           zerolog.Nop(),
	}
	l.root.list = l
	l.gestures = newGestureClassifier(l)
	return l
}

// Root returns the list's root node. Its children are the row nodes in
// display order.
func (l *List) Root() *Node {
	return l.root
}

// Config returns the config new rows are created with.
func (l *List) Config() GestureConfig {
	return l.config
}

// Gestures returns the list's gesture classifier.
func (l *List) Gestures() *GestureClassifier {
	return l.gestures
}

// --- Rows ---

// AddRow appends a new row of the given height.
func (l *List) AddRow(name string, height float64) (*Row, error) {
	return l.InsertRow(l.root.NumChildren(), name, height)
}

// InsertRow creates a row so that it ends up at index. Panics if index is out
// of range. Fails with ErrSessionActive while a row is being reordered.
func (l *List) InsertRow(index int, name string, height float64) (*Row, error) {
	if l.reordering() {
		return nil, ErrSessionActive
	}
	r := newRow(name, height, l.config)
	r.list = l
	l.root.AddChildAt(r.node, index)
	l.layout()
	return r, nil
}

// RemoveRow detaches row from the list. It fails with ErrSessionActive when
// row has an active session or any row is being reordered.
func (l *List) RemoveRow(row *Row) error {
	if row == nil || row.list != l {
		return ErrRowNotFound
	}
	if s := l.gestures.session; s != nil && (s.Row == row || s.State == DragReorder) {
		return ErrSessionActive
	}
	row.stopAnimation()
	row.node.RemoveFromParent()
	row.list = nil
	l.layout()
	logRow(l.log.Debug(), row).Msg("row removed")
	return nil
}

// Rows returns the rows in display order. The slice is freshly allocated.
func (l *List) Rows() []*Row {
	rows := make([]*Row, 0, len(l.root.children))
	for _, n := range l.root.children {
		if n.row != nil {
			rows = append(rows, n.row)
		}
	}
	return rows
}

// Len returns the number of rows.
func (l *List) Len() int {
	return len(l.root.children)
}

// RowAt returns the row at index, or nil if out of range.
func (l *List) RowAt(index int) *Row {
	if index < 0 || index >= len(l.root.children) {
		return nil
	}
	return l.root.children[index].row
}

// IndexOf returns the display index of row, or -1 if it is not in the list.
func (l *List) IndexOf(row *Row) int {
	if row == nil || row.list != l {
		return -1
	}
	return l.root.IndexOf(row.node)
}

func (l *List) reordering() bool {
	s := l.gestures.session
	return s != nil && s.State == DragReorder
}

// layout stacks the rows from content Y 0 in tree order and refreshes the
// container's scroll height.
func (l *List) layout() {
	width := l.Container.Viewport.Width
	y := 0.0
	for _, r := range l.Rows() {
		r.layoutY = y
		r.Width = width
		if r.content.HitShape == nil {
			r.content.HitShape = HitRect{Width: width, Height: r.Height}
		} else if hr, ok := r.content.HitShape.(HitRect); ok {
			hr.Width, hr.Height = width, r.Height
			r.content.HitShape = hr
		}
		y += r.Height + r.Config.Gap
	}
	c := l.Container
	c.ScrollHeight = y
	c.ScrollTop = c.clamp(c.ScrollTop)
}

// ScrollToRow animates the container so that row's slot is at the top of the
// viewport (or as close as the scroll range allows).
func (l *List) ScrollToRow(row *Row, duration float32) error {
	if row == nil || row.list != l {
		return ErrRowNotFound
	}
	l.Container.ScrollTo(row.layoutY, duration, ease.InOutQuad)
	return nil
}

// --- Frame loop ---

// Update advances the list by one tick at the current ebiten TPS.
func (l *List) Update() {
	l.Step(time.Second / time.Duration(ebiten.TPS()))
}

// Step advances the list by dt: scripted steps, one pointer event, the hold
// timer, and every animation.
func (l *List) Step(dt time.Duration) {
	if l.testRunner != nil {
		l.testRunner.step(l)
	}
	l.processInput()
	l.gestures.Advance(dt)

	sec := seconds(dt)
	l.Container.update(sec)
	for _, r := range l.Rows() {
		if r.anim != nil {
			r.anim.Update(sec)
			if r.anim.Done {
				r.anim = nil
			}
		}
		r.easeShift(l.ShiftLerp)
	}
}

// --- Outcome subscriptions ---

type outcomeHandler struct {
	id uint32
	fn func(Outcome)
}

type outcomeRegistry struct {
	handlers []outcomeHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered list-level callback.
type CallbackHandle struct {
	id  uint32
	reg *outcomeRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = outcomeHandler{}
			h.reg.handlers = s[:len(s)-1]
			return
		}
	}
}

// OnOutcome registers a callback that receives every finished session's
// outcome, after the row callbacks have run.
func (l *List) OnOutcome(fn func(Outcome)) CallbackHandle {
	l.handlers.nextID++
	id := l.handlers.nextID
	l.handlers.handlers = append(l.handlers.handlers, outcomeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &l.handlers}
}

// emit iterates over a copy so handlers may remove themselves.
func (l *List) emit(out Outcome) {
	if len(l.handlers.handlers) == 0 {
		return
	}
	hs := append([]outcomeHandler(nil), l.handlers.handlers...)
	for _, h := range hs {
		h.fn(out)
	}
}
