package slippable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestScrollContainerClamp(t *testing.T) {
	c := newScrollContainer(Rect{Width: 200, Height: 200})
	c.ScrollHeight = 500

	assert.Equal(t, 300.0, c.MaxScrollTop())

	c.SetScrollTop(1000)
	assert.Equal(t, 300.0, c.ScrollTop)
	c.SetScrollTop(-5)
	assert.Equal(t, 0.0, c.ScrollTop)

	moved := c.ScrollBy(50)
	assert.Equal(t, 50.0, moved)
	moved = c.ScrollBy(-80)
	assert.Equal(t, -50.0, moved)
}

func TestScrollContainerShortContent(t *testing.T) {
	c := newScrollContainer(Rect{Width: 200, Height: 200})
	c.ScrollHeight = 120
	assert.Zero(t, c.MaxScrollTop())
	c.SetScrollTop(40)
	assert.Zero(t, c.ScrollTop)
}

func TestScrollContainerWindowHeight(t *testing.T) {
	c := newScrollContainer(Rect{Y: 100, Width: 200, Height: 600})
	c.ScrollHeight = 1000
	c.WindowHeight = 400

	assert.Equal(t, 100.0, c.VisibleTop())
	assert.Equal(t, 400.0, c.VisibleBottom())
	assert.Equal(t, 400.0, c.VisibleHeight())
	assert.Equal(t, 600.0, c.MaxScrollTop())
}

func TestScrollContainerCoordinates(t *testing.T) {
	c := newScrollContainer(Rect{Y: 40, Width: 200, Height: 200})
	c.ScrollHeight = 1000
	c.SetScrollTop(100)

	assert.Equal(t, 40.0, c.ContentToScreen(100))
	assert.Equal(t, 100.0, c.ScreenToContent(40))
	assert.Equal(t, 123.0, c.ScreenToContent(c.ContentToScreen(123)))
}

func TestAutoScrollDelta(t *testing.T) {
	c := newScrollContainer(Rect{Width: 200, Height: 200})
	tests := []struct {
		name        string
		top, bottom float64
		want        float64
	}{
		{"middle", 80, 120, 0},
		{"touching bottom", 150, 200, 40},
		{"near bottom", 140, 190, 30},
		{"past bottom", 200, 250, 40},
		{"near top", 10, 60, -30},
		{"past top", -50, 0, -40},
		{"exactly at trigger", 40, 90, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.autoScrollDelta(tt.top, tt.bottom, 40))
		})
	}
}

func TestAutoScrollDeltaPrefersBottom(t *testing.T) {
	// A row taller than the viewport is near both edges.
	c := newScrollContainer(Rect{Width: 200, Height: 100})
	assert.Equal(t, 40.0, c.autoScrollDelta(10, 120, 40))
}

func TestScrollTo(t *testing.T) {
	c := newScrollContainer(Rect{Width: 200, Height: 200})
	c.ScrollHeight = 1000

	c.ScrollTo(400, 1, ease.Linear)
	assert.True(t, c.Scrolling())

	c.update(0.5)
	assert.InDelta(t, 200, c.ScrollTop, 0.01)

	c.update(0.6)
	assert.InDelta(t, 400, c.ScrollTop, 0.01)
	assert.False(t, c.Scrolling())
}

func TestScrollToClampsAndSnaps(t *testing.T) {
	c := newScrollContainer(Rect{Width: 200, Height: 200})
	c.ScrollHeight = 500

	c.ScrollTo(10000, 0, ease.Linear)
	assert.Equal(t, 300.0, c.ScrollTop)
	assert.False(t, c.Scrolling())
}

func TestSetScrollTopCancelsScrollTo(t *testing.T) {
	c := newScrollContainer(Rect{Width: 200, Height: 200})
	c.ScrollHeight = 1000
	c.ScrollTo(400, 1, ease.Linear)
	c.SetScrollTop(10)
	assert.False(t, c.Scrolling())
	c.update(1)
	assert.Equal(t, 10.0, c.ScrollTop)
}
