package slippable

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScrollContainer is the scrollable viewport a List is drawn into. Content
// coordinates start at 0 at the top of the first row; screen coordinates are
// what the pointer reports.
type ScrollContainer struct {
	// Viewport is the screen-space rectangle the list is drawn into.
	Viewport Rect

	// ScrollTop is how far the content is scrolled, in pixels.
	ScrollTop float64

	// ScrollHeight is the total content height. The list keeps it current.
	ScrollHeight float64

	// WindowHeight, when positive, clips the visible area to the window in
	// case the viewport extends past the bottom of the screen.
	WindowHeight float64

	scrollTween *gween.Tween
}

func newScrollContainer(viewport Rect) *ScrollContainer {
	return &ScrollContainer{Viewport: viewport}
}

// VisibleTop returns the screen Y of the topmost visible content pixel.
func (c *ScrollContainer) VisibleTop() float64 {
	return math.Max(c.Viewport.Y, 0)
}

// VisibleBottom returns the screen Y of the bottom visible edge.
func (c *ScrollContainer) VisibleBottom() float64 {
	b := c.Viewport.Bottom()
	if c.WindowHeight > 0 {
		b = math.Min(b, c.WindowHeight)
	}
	return b
}

// VisibleHeight returns the scrollable viewport height after window clipping.
func (c *ScrollContainer) VisibleHeight() float64 {
	h := c.Viewport.Height
	if c.WindowHeight > 0 {
		h = math.Min(h, c.WindowHeight)
	}
	return h
}

// MaxScrollTop returns the largest valid ScrollTop. It is never negative.
func (c *ScrollContainer) MaxScrollTop() float64 {
	return math.Max(0, c.ScrollHeight-c.VisibleHeight())
}

// SetScrollTop sets ScrollTop clamped to [0, MaxScrollTop] and cancels any
// running ScrollTo animation.
func (c *ScrollContainer) SetScrollTop(y float64) {
	c.scrollTween = nil
	c.ScrollTop = c.clamp(y)
}

// ScrollBy scrolls by dy (clamped) and returns the distance actually moved.
func (c *ScrollContainer) ScrollBy(dy float64) float64 {
	prev := c.ScrollTop
	c.SetScrollTop(c.ScrollTop + dy)
	return c.ScrollTop - prev
}

// ScrollTo animates ScrollTop to y over duration seconds.
func (c *ScrollContainer) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	y = c.clamp(y)
	if duration <= 0 {
		c.SetScrollTop(y)
		return
	}
	c.scrollTween = gween.New(float32(c.ScrollTop), float32(y), duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is running.
func (c *ScrollContainer) Scrolling() bool {
	return c.scrollTween != nil
}

// ContentToScreen converts a content Y to a screen Y.
func (c *ScrollContainer) ContentToScreen(y float64) float64 {
	return c.Viewport.Y + y - c.ScrollTop
}

// ScreenToContent converts a screen Y to a content Y.
func (c *ScrollContainer) ScreenToContent(y float64) float64 {
	return y - c.Viewport.Y + c.ScrollTop
}

// update advances the scroll animation. Called from List.Advance.
func (c *ScrollContainer) update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	val, done := c.scrollTween.Update(dt)
	c.ScrollTop = c.clamp(float64(val))
	if done {
		c.scrollTween = nil
	}
}

func (c *ScrollContainer) clamp(y float64) float64 {
	return math.Max(0, math.Min(c.MaxScrollTop(), y))
}

// autoScrollDelta returns how far to scroll for a dragged row occupying
// [top, bottom] in screen coordinates. A row within trigger pixels of the
// lower visible edge scrolls down by up to trigger; otherwise a row within
// trigger pixels of the upper edge scrolls up by up to trigger.
func (c *ScrollContainer) autoScrollDelta(top, bottom, trigger float64) float64 {
	bottomOffset := c.VisibleBottom() - bottom
	topOffset := top - c.VisibleTop()

	switch {
	case bottomOffset < trigger:
		return math.Min(trigger, trigger-bottomOffset)
	case topOffset < trigger:
		return math.Max(-trigger, topOffset-trigger)
	}
	return 0
}
