package slippable

import "fmt"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default row tint.
var ColorWhite = Color{1, 1, 1, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Bottom returns Y + Height.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Right returns X + Width.
func (r Rect) Right() float64 { return r.X + r.Width }

// DragState is the sub-state of an active drag session.
type DragState uint8

const (
	DragUndecided DragState = iota // pointer is down, gesture kind not known yet
	DragSwipe                      // horizontal swipe revealing side panels
	DragReorder                    // vertical reorder among siblings
)

func (s DragState) String() string {
	switch s {
	case DragUndecided:
		return "undecided"
	case DragSwipe:
		return "swipe"
	case DragReorder:
		return "reorder"
	default:
		return fmt.Sprintf("DragState(%d)", uint8(s))
	}
}

// Direction is the side a swipe travelled toward.
type Direction uint8

const (
	DirectionRight Direction = iota
	DirectionLeft
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// sign returns -1 for left and +1 for right.
func (d Direction) sign() float64 {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

// ActionAnimation selects what a row does visually after a swipe crosses its
// commit threshold.
type ActionAnimation uint8

const (
	AnimationRemove ActionAnimation = iota // slide out and fade both panels (default)
	AnimationReturn                        // slide back to the resting position
	AnimationNone                          // leave the row where the pointer released it
)

func (a ActionAnimation) String() string {
	switch a {
	case AnimationRemove:
		return "remove"
	case AnimationReturn:
		return "return"
	case AnimationNone:
		return "none"
	default:
		return fmt.Sprintf("ActionAnimation(%d)", uint8(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a ActionAnimation) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so config files and
// environment variables can spell the animation by name.
func (a *ActionAnimation) UnmarshalText(text []byte) error {
	switch string(text) {
	case "remove", "REMOVE", "Remove":
		*a = AnimationRemove
	case "return", "RETURN", "Return":
		*a = AnimationReturn
	case "none", "NONE", "None":
		*a = AnimationNone
	default:
		return fmt.Errorf("slippable: unknown action animation %q", string(text))
	}
	return nil
}

// Presentation is the visual marker a renderer uses to style a row.
type Presentation uint8

const (
	PresentationIdle       Presentation = iota // resting, no session
	PresentationUndecided                      // pressed, gesture not classified yet
	PresentationSwiping                        // following a horizontal swipe
	PresentationReordering                     // lifted and following a vertical drag
	PresentationReturning                      // animating back to rest after a swipe
	PresentationRemoving                       // animating out after a committed swipe
)

func (p Presentation) String() string {
	switch p {
	case PresentationIdle:
		return "idle"
	case PresentationUndecided:
		return "undecided"
	case PresentationSwiping:
		return "swiping"
	case PresentationReordering:
		return "reordering"
	case PresentationReturning:
		return "returning"
	case PresentationRemoving:
		return "removing"
	default:
		return fmt.Sprintf("Presentation(%d)", uint8(p))
	}
}

// OutcomeKind identifies how a drag session ended.
type OutcomeKind uint8

const (
	OutcomeNone      OutcomeKind = iota // released before the gesture was classified
	OutcomeReturned                     // swipe released under its commit threshold
	OutcomeRemoved                      // swipe released over its commit threshold
	OutcomeReordered                    // reorder released
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeReturned:
		return "returned"
	case OutcomeRemoved:
		return "removed"
	case OutcomeReordered:
		return "reordered"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", uint8(k))
	}
}

// Outcome is produced once per finished session. Only the fields relevant to
// Kind are meaningful: Direction for OutcomeRemoved, OldIndex/NewIndex for
// OutcomeReordered, SwipePercentage for swipe outcomes.
type Outcome struct {
	Kind            OutcomeKind
	Row             *Row
	Direction       Direction
	OldIndex        int
	NewIndex        int
	SwipePercentage float64
}

// SwipeContext carries swipe release data to row callbacks.
type SwipeContext struct {
	Row             *Row
	SwipePercentage float64
}

// ReorderContext carries reorder data to row callbacks. OldIndex and NewIndex
// are only meaningful for OnReorderEnd.
type ReorderContext struct {
	Row      *Row
	OldIndex int
	NewIndex int
}
