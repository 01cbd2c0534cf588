package slippable

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

// newTestList builds a list of n rows of height h in viewport. Real pointer
// polling is disabled so Step only consumes injected events.
func newTestList(t *testing.T, n int, h float64, viewport Rect) (*List, []*Row) {
	t.Helper()
	l := NewList(viewport, DefaultGestureConfig())
	l.input = nil
	rows := make([]*Row, n)
	for i := range rows {
		r, err := l.AddRow(fmt.Sprintf("row%d", i), h)
		require.NoError(t, err)
		rows[i] = r
	}
	return l, rows
}

func rowNames(l *List) []string {
	var names []string
	for _, r := range l.Rows() {
		names = append(names, r.Name())
	}
	return names
}

func TestAddRowLayout(t *testing.T) {
	cfg := DefaultGestureConfig()
	cfg.Gap = 10
	l := NewList(Rect{Width: 300, Height: 400}, cfg)

	a, err := l.AddRow("a", 50)
	require.NoError(t, err)
	b, err := l.AddRow("b", 80)
	require.NoError(t, err)

	assert.Equal(t, 0.0, a.LayoutY())
	assert.Equal(t, 60.0, b.LayoutY())
	assert.Equal(t, 300.0, b.Width)
	assert.Equal(t, 150.0, l.Container.ScrollHeight)
	assert.Equal(t, []*Row{a, b}, l.Rows())
	assert.Equal(t, 1, b.Index())
	assert.Same(t, l, b.List())
	assert.Equal(t, HitRect{Width: 300, Height: 80}, b.Content().HitShape)
}

func TestInsertRow(t *testing.T) {
	l, _ := newTestList(t, 2, 50, Rect{Width: 200, Height: 200})
	r, err := l.InsertRow(1, "mid", 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"row0", "mid", "row1"}, rowNames(l))
	assert.Equal(t, 50.0, r.LayoutY())
	assert.Equal(t, 70.0, l.RowAt(2).LayoutY())
	assert.Nil(t, l.RowAt(3))
	assert.Nil(t, l.RowAt(-1))
}

func TestRemoveRow(t *testing.T) {
	l, rows := newTestList(t, 3, 50, Rect{Width: 200, Height: 200})
	require.NoError(t, l.RemoveRow(rows[1]))

	assert.Equal(t, []string{"row0", "row2"}, rowNames(l))
	assert.Equal(t, 50.0, rows[2].LayoutY())
	assert.Equal(t, -1, rows[1].Index())
	assert.Equal(t, -1, l.IndexOf(rows[1]))
	assert.ErrorIs(t, l.RemoveRow(rows[1]), ErrRowNotFound)
	assert.ErrorIs(t, l.RemoveRow(nil), ErrRowNotFound)
}

func TestRemoveRowDuringSession(t *testing.T) {
	l, rows := newTestList(t, 3, 50, Rect{Width: 200, Height: 200})
	g := l.Gestures()

	require.NoError(t, g.PointerDown(rows[0].Content(), 10, 10))
	assert.ErrorIs(t, l.RemoveRow(rows[0]), ErrSessionActive)
	// Other rows may go while the gesture is undecided.
	require.NoError(t, l.RemoveRow(rows[2]))

	g.Advance(time.Second)
	require.Equal(t, DragReorder, g.Session().State)
	assert.ErrorIs(t, l.RemoveRow(rows[1]), ErrSessionActive)
	_, err := l.AddRow("late", 50)
	assert.ErrorIs(t, err, ErrSessionActive)

	g.PointerUp()
	assert.NoError(t, l.RemoveRow(rows[1]))
}

func TestOnOutcome(t *testing.T) {
	l, rows := newTestList(t, 2, 50, Rect{Width: 200, Height: 200})
	g := l.Gestures()

	var got []Outcome
	h := l.OnOutcome(func(out Outcome) { got = append(got, out) })

	require.NoError(t, g.PointerDown(rows[1].Content(), 10, 60))
	g.PointerUp()
	require.Len(t, got, 1)
	assert.Equal(t, OutcomeNone, got[0].Kind)
	assert.Same(t, rows[1], got[0].Row)

	h.Remove()
	require.NoError(t, g.PointerDown(rows[1].Content(), 10, 60))
	g.PointerUp()
	assert.Len(t, got, 1)
}

func TestOnOutcomeSelfRemoval(t *testing.T) {
	l, rows := newTestList(t, 1, 50, Rect{Width: 200, Height: 200})
	var calls [2]int
	var h CallbackHandle
	h = l.OnOutcome(func(Outcome) { calls[0]++; h.Remove() })
	l.OnOutcome(func(Outcome) { calls[1]++ })

	for i := 0; i < 2; i++ {
		require.NoError(t, l.Gestures().PointerDown(rows[0].Content(), 0, 0))
		l.Gestures().PointerUp()
	}
	assert.Equal(t, [2]int{1, 2}, calls)
}

func TestScrollToRow(t *testing.T) {
	l, rows := newTestList(t, 10, 50, Rect{Width: 200, Height: 200})
	require.NoError(t, l.ScrollToRow(rows[5], 0.5))
	l.Step(time.Second)
	assert.InDelta(t, 250, l.Container.ScrollTop, 0.01)

	// Clamped to the scroll range.
	require.NoError(t, l.ScrollToRow(rows[9], 0))
	assert.Equal(t, 300.0, l.Container.ScrollTop)

	assert.ErrorIs(t, l.ScrollToRow(&Row{}, 0), ErrRowNotFound)
}

func TestLayoutClampsScrollTop(t *testing.T) {
	l, rows := newTestList(t, 10, 50, Rect{Width: 200, Height: 200})
	l.Container.SetScrollTop(300)
	for _, r := range rows[5:] {
		require.NoError(t, l.RemoveRow(r))
	}
	assert.Equal(t, 50.0, l.Container.ScrollTop)
}

func TestShiftEasing(t *testing.T) {
	l, rows := newTestList(t, 2, 50, Rect{Width: 200, Height: 200})
	r := rows[1]

	r.TranslateY = -50
	l.Step(frame)
	assert.Equal(t, -50.0, r.ShownY(), "unmarked rows snap")

	r.ShiftAnimated = true
	r.TranslateY = 0
	l.Step(frame)
	assert.InDelta(t, -50*(1-defaultShiftLerp), r.ShownY(), 1e-9)

	for i := 0; i < 60; i++ {
		l.Step(frame)
	}
	assert.Equal(t, 0.0, r.ShownY())
}
