package slippable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func TestTweenRow(t *testing.T) {
	r := newRow("r", 50, DefaultGestureConfig())
	r.Width = 200
	r.TranslateX = 100
	r.LeftPanel.Opacity = -2
	r.RightPanel.Opacity = 2

	g := TweenRow(r, 200, 0, 1, ease.Linear)
	g.Update(0.5)
	assert.InDelta(t, 150, r.TranslateX, 0.01)
	assert.InDelta(t, -1, r.LeftPanel.Opacity, 0.01)
	assert.InDelta(t, 1, r.RightPanel.Opacity, 0.01)
	assert.False(t, g.Done)

	g.Update(0.6)
	assert.InDelta(t, 200, r.TranslateX, 0.01)
	assert.InDelta(t, 0, r.RightPanel.Opacity, 0.01)
	assert.True(t, g.Done)
}

func TestTweenRowKeepsPanels(t *testing.T) {
	r := newRow("r", 50, DefaultGestureConfig())
	r.TranslateX = 40
	r.RightPanel.Opacity = 0.8

	g := TweenRow(r, 0, -1, 1, ease.Linear)
	g.Update(1)
	assert.InDelta(t, 0, r.TranslateX, 0.01)
	assert.Equal(t, 0.8, r.RightPanel.Opacity)
}

func TestTweenRowStopsOnDispose(t *testing.T) {
	r := newRow("r", 50, DefaultGestureConfig())
	r.TranslateX = 40
	g := TweenRow(r, 0, -1, 1, ease.Linear)
	r.Node().Dispose()
	g.Update(0.5)
	assert.True(t, g.Done)
	assert.Equal(t, 40.0, r.TranslateX)
}

func TestReturnAnimation(t *testing.T) {
	l, rows := newTestList(t, 1, 50, Rect{Width: 200, Height: 100})
	r := rows[0]

	out := swipe(t, l, r, 60)
	require.Equal(t, OutcomeReturned, out.Kind)
	assert.Equal(t, PresentationReturning, r.Presentation)
	assert.True(t, r.Animating())
	assert.Equal(t, 60.0, r.TranslateX)

	l.Step(r.Config.AnimationDuration / 2)
	assert.Greater(t, r.TranslateX, 0.0)
	assert.Less(t, r.TranslateX, 60.0)

	l.Step(r.Config.AnimationDuration)
	assert.InDelta(t, 0, r.TranslateX, 0.01)
	assert.False(t, r.Animating())
	assert.Equal(t, PresentationReturning, r.Presentation, "marker stays until the next session")
}

func TestRemoveAnimation(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		toX  float64
	}{
		{"right", 120, 200},
		{"left", -120, -200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, rows := newTestList(t, 1, 50, Rect{Width: 200, Height: 100})
			r := rows[0]
			out := swipe(t, l, r, tt.dx)
			require.Equal(t, OutcomeRemoved, out.Kind)
			assert.Equal(t, PresentationRemoving, r.Presentation)

			l.Step(time.Second)
			assert.InDelta(t, tt.toX, r.TranslateX, 0.01)
			assert.InDelta(t, 0, r.LeftPanel.Opacity, 0.01)
			assert.InDelta(t, 0, r.RightPanel.Opacity, 0.01)
		})
	}
}

func TestZeroDurationSnaps(t *testing.T) {
	l, rows := newTestList(t, 1, 50, Rect{Width: 200, Height: 100})
	r := rows[0]
	r.Config.AnimationDuration = 0

	swipe(t, l, r, 150)
	assert.False(t, r.Animating())
	assert.Equal(t, 200.0, r.TranslateX)
	assert.Zero(t, r.LeftPanel.Opacity)
	assert.Zero(t, r.RightPanel.Opacity)

	swipe(t, l, r, 40)
	assert.Zero(t, r.TranslateX)
}

func TestOverThresholdAnimationChoice(t *testing.T) {
	tests := []struct {
		name         string
		anim         ActionAnimation
		wantX        float64
		presentation Presentation
	}{
		{"remove", AnimationRemove, -200, PresentationRemoving},
		{"return", AnimationReturn, 0, PresentationReturning},
		{"none", AnimationNone, -130, PresentationIdle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, rows := newTestList(t, 1, 50, Rect{Width: 200, Height: 100})
			r := rows[0]
			r.Config.SwipeLeftOverThresholdAnimation = tt.anim
			r.Config.AnimationDuration = 0

			out := swipe(t, l, r, -130)
			assert.Equal(t, OutcomeRemoved, out.Kind, "the outcome does not depend on the animation")
			assert.Equal(t, tt.wantX, r.TranslateX)
			assert.Equal(t, tt.presentation, r.Presentation)
		})
	}
}

func TestPressStopsAnimation(t *testing.T) {
	l, rows := newTestList(t, 1, 50, Rect{Width: 200, Height: 100})
	r := rows[0]
	swipe(t, l, r, 60)
	require.True(t, r.Animating())

	require.NoError(t, l.Gestures().PointerDown(r.Content(), 10, 10))
	assert.False(t, r.Animating())
	assert.Equal(t, PresentationUndecided, r.Presentation)
}
