package slippable

import "time"

// holdTimer is a single-shot countdown advanced by the frame clock. It has no
// goroutine: fire runs synchronously inside advance.
type holdTimer struct {
	remaining time.Duration
	armed     bool
	fire      func()
}

// arm starts the countdown, replacing any pending one.
func (t *holdTimer) arm(d time.Duration, fire func()) {
	t.remaining = d
	t.armed = true
	t.fire = fire
}

// stop disarms the timer. Safe to call when not armed.
func (t *holdTimer) stop() {
	t.armed = false
	t.fire = nil
}

// active reports whether the timer is armed.
func (t *holdTimer) active() bool {
	return t.armed
}

// advance counts down by dt and fires once when the countdown reaches zero.
func (t *holdTimer) advance(dt time.Duration) {
	if !t.armed {
		return
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return
	}
	fn := t.fire
	t.stop()
	if fn != nil {
		fn()
	}
}
