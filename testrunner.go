package slippable

import (
	"encoding/json"
	"fmt"
	"time"
)

// gestureStep represents a single action in a gesture script.
type gestureStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Label  string  `json:"label,omitempty"`

	// Duration is a Go duration string used by "hold" when Frames is 0.
	Duration string `json:"duration,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	// FrameTime converts "hold" durations to frames. Defaults to 1/60 s.
	FrameTime string        `json:"frameTime,omitempty"`
	Steps     []gestureStep `json:"steps"`
}

// TestRunner sequences injected pointer events across frames so a gesture
// can be replayed without a window. Attach to a List via SetTestRunner.
type TestRunner struct {
	steps     []gestureStep
	frame     time.Duration
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script and returns a TestRunner
// ready to be attached to a List via SetTestRunner.
//
// Supported actions: "press", "move", "release", "click", "drag" (fromX,
// fromY, toX, toY, frames), "hold" (x, y and frames or duration), "wait"
// (frames) and "screenshot" (label).
func LoadGestureScript(jsonData []byte) (*TestRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}

	frame := time.Second / 60
	if script.FrameTime != "" {
		d, err := time.ParseDuration(script.FrameTime)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("parse gesture script: bad frameTime %q", script.FrameTime)
		}
		frame = d
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "release", "click", "drag", "wait", "screenshot":
		case "hold":
			if st.Frames == 0 && st.Duration != "" {
				if _, err := time.ParseDuration(st.Duration); err != nil {
					return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
				}
			}
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps, frame: frame}, nil
}

// SetTestRunner attaches a TestRunner to the list. The runner's step method
// is called from Step before input is processed each frame.
func (l *List) SetTestRunner(runner *TestRunner) {
	l.testRunner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// holdFrames converts a hold step to a frame count.
func (r *TestRunner) holdFrames(st gestureStep) int {
	if st.Frames > 0 {
		return st.Frames
	}
	d, _ := time.ParseDuration(st.Duration)
	n := int(d / r.frame)
	if d%r.frame != 0 {
		n++
	}
	return n
}

// step advances the runner by one frame. Called from List.Step.
func (r *TestRunner) step(l *List) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(l.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		l.InjectPress(st.X, st.Y)
	case "move":
		l.InjectMove(st.X, st.Y)
	case "release":
		l.InjectRelease(st.X, st.Y)
	case "click":
		l.InjectClick(st.X, st.Y)
	case "drag":
		l.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "hold":
		l.InjectHold(st.X, st.Y, r.holdFrames(st))
	case "screenshot":
		l.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(l.injectQueue) == 0 {
		r.done = true
	}
}
