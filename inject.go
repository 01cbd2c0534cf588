package slippable

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates, identical to what pollPointer reports.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next Step.
func (l *List) InjectPress(x, y float64) {
	l.injectQueue = append(l.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move with the pointer held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (l *List) InjectMove(x, y float64) {
	l.injectQueue = append(l.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (l *List) InjectRelease(x, y float64) {
	l.injectQueue = append(l.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (l *List) InjectClick(x, y float64) {
	l.InjectPress(x, y)
	l.InjectRelease(x, y)
}

// InjectHold queues frames stationary held events at (x, y). Combined with
// a preceding InjectPress it keeps the pointer down long enough for the hold
// timer to fire.
func (l *List) InjectHold(x, y float64, frames int) {
	for i := 0; i < frames; i++ {
		l.InjectMove(x, y)
	}
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames ending on (toX, toY),
// and release at (toX, toY). Minimum frames is 3.
func (l *List) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	l.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		l.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	l.InjectRelease(toX, toY)
}

// InjectPending returns the number of queued synthetic events.
func (l *List) InjectPending() int {
	return len(l.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real input
// is skipped for the frame).
func (l *List) processInjectedInput() bool {
	if len(l.injectQueue) == 0 {
		return false
	}
	evt := l.injectQueue[0]
	copy(l.injectQueue, l.injectQueue[1:])
	l.injectQueue = l.injectQueue[:len(l.injectQueue)-1]

	l.processPointer(evt.screenX, evt.screenY, evt.pressed)
	return true
}
