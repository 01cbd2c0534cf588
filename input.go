package slippable

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Hit shapes ---

// HitShape defines a custom hit testing region in row-local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in row-local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// --- Pointer state ---

type pointerState struct {
	down     bool
	lastX    float64
	lastY    float64
	hitNode  *Node
	tracking bool // the press started a session
}

// --- Hit testing ---

// collectHittable appends n and its descendants in painter order, skipping
// nodes without a hit shape.
func collectHittable(n *Node, buf []*Node) []*Node {
	if n.HitShape != nil {
		buf = append(buf, n)
	}
	for _, c := range n.children {
		buf = collectHittable(c, buf)
	}
	return buf
}

// hitTest finds the topmost node with a hit shape at screen (x, y). The row
// under an active session is drawn on top and tested first.
func (l *List) hitTest(x, y float64) *Node {
	c := l.Container
	if !c.Viewport.Contains(x, y) || y > c.VisibleBottom() {
		return nil
	}
	cy := c.ScreenToContent(y)

	var lifted *Row
	if s := l.gestures.session; s != nil {
		lifted = s.Row
		if n := rowHit(lifted, x-c.Viewport.X, cy); n != nil {
			return n
		}
	}

	rows := l.Rows()
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i] == lifted {
			continue
		}
		if n := rowHit(rows[i], x-c.Viewport.X, cy); n != nil {
			return n
		}
	}
	return nil
}

// rowHit tests (x, contentY) against one row's subtree.
func rowHit(r *Row, x, contentY float64) *Node {
	lx := x - r.TranslateX
	ly := contentY - (r.layoutY + r.TranslateY)
	if ly < 0 || ly > r.Height {
		return nil
	}
	buf := collectHittable(r.node, nil)
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i].HitShape.Contains(lx, ly) {
			return buf[i]
		}
	}
	return nil
}

// --- Input processing ---

// pollPointer reads the first active touch, falling back to the left mouse
// button.
func pollPointer() (x, y float64, pressed bool) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		return float64(tx), float64(ty), true
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// processInput is called from Step. An injected event replaces real input
// for the frame.
func (l *List) processInput() {
	if l.processInjectedInput() {
		return
	}
	if l.input == nil {
		return
	}
	x, y, pressed := l.input()
	l.processPointer(x, y, pressed)
}

// processPointer runs the single-pointer state machine and forwards it to the
// gesture classifier. Coordinates are in screen space.
func (l *List) processPointer(x, y float64, pressed bool) {
	ps := &l.pointer

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = x, y
		ps.hitNode = l.hitTest(x, y)
		ps.tracking = false
		if ps.hitNode == nil {
			return
		}
		if err := l.gestures.PointerDown(ps.hitNode, x, y); err != nil {
			return
		}
		ps.tracking = true

	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			if ps.tracking {
				l.gestures.PointerMove(x-ps.lastX, y-ps.lastY)
			}
			ps.lastX, ps.lastY = x, y
		}

	case !pressed && ps.down:
		if ps.tracking {
			l.gestures.PointerUp()
		}
		ps.down = false
		ps.hitNode = nil
		ps.tracking = false
	}
}
