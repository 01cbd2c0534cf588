package slippable

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields of a row simultaneously. The
// list advances the groups it starts; a group created with TweenRow is
// advanced by whoever holds it. If the target node is disposed, the group
// stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// add appends a tween from *field to to. Fields beyond the fourth are ignored.
func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	if g.count == len(g.fields) {
		return
	}
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenRow creates a TweenGroup that slides row.TranslateX to toX and fades
// both panels to panelOpacity. A negative panelOpacity leaves the panels
// untouched.
func TweenRow(row *Row, toX, panelOpacity float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: row.node}
	g.add(&row.TranslateX, toX, duration, fn)
	if panelOpacity >= 0 {
		if row.LeftPanel != nil {
			g.add(&row.LeftPanel.Opacity, panelOpacity, duration, fn)
		}
		if row.RightPanel != nil {
			g.add(&row.RightPanel.Opacity, panelOpacity, duration, fn)
		}
	}
	return g
}

// animationDirector maps a finished session's outcome to the row's terminal
// presentation.
type animationDirector struct {
	ease ease.TweenFunc
}

// play starts the terminal animation for out. Durations of zero apply the end
// state immediately.
func (d *animationDirector) play(out Outcome) {
	r := out.Row
	if r == nil {
		return
	}
	r.stopAnimation()

	switch out.Kind {
	case OutcomeNone, OutcomeReordered:
		r.Presentation = PresentationIdle
		r.TranslateX = 0
		r.TranslateY = 0
	case OutcomeReturned:
		d.returnRow(r)
	case OutcomeRemoved:
		anim := r.Config.SwipeRightOverThresholdAnimation
		if out.Direction == DirectionLeft {
			anim = r.Config.SwipeLeftOverThresholdAnimation
		}
		switch anim {
		case AnimationRemove:
			d.removeRow(r, out.Direction)
		case AnimationReturn:
			d.returnRow(r)
		case AnimationNone:
			r.Presentation = PresentationIdle
		default:
			invariant(false, "unknown over-threshold animation %d", anim)
		}
	default:
		invariant(false, "unknown outcome %d", out.Kind)
	}
}

func (d *animationDirector) returnRow(r *Row) {
	r.Presentation = PresentationReturning
	d.start(r, 0, -1)
}

func (d *animationDirector) removeRow(r *Row, dir Direction) {
	r.Presentation = PresentationRemoving
	d.start(r, dir.sign()*r.Width, 0)
}

func (d *animationDirector) start(r *Row, toX, panelOpacity float64) {
	dur := seconds(r.Config.AnimationDuration)
	if dur <= 0 {
		r.TranslateX = toX
		if panelOpacity >= 0 {
			if r.LeftPanel != nil {
				r.LeftPanel.Opacity = panelOpacity
			}
			if r.RightPanel != nil {
				r.RightPanel.Opacity = panelOpacity
			}
		}
		return
	}
	fn := d.ease
	if fn == nil {
		fn = ease.OutCubic
	}
	r.anim = TweenRow(r, toX, panelOpacity, dur, fn)
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}
