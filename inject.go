package gesture

// SyntheticEvent is a SourceEvent for injected and scripted input. It
// records whether default handling was suppressed.
type SyntheticEvent struct {
	Cancel    bool // reported by Cancelable
	Prevented bool
	Stopped   bool
}

func (e *SyntheticEvent) Cancelable() bool { return e.Cancel }
func (e *SyntheticEvent) PreventDefault()  { e.Prevented = true }
func (e *SyntheticEvent) StopPropagation() { e.Stopped = true }

// syntheticPointerEvent is a single injected pointer event for pointer 0.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	source  *SyntheticEvent
}

// InjectPress queues a press at screen position (x, y). The event is consumed on the next
// Update.
func (s *EbitenSource) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, source: &SyntheticEvent{Cancel: true},
	})
}

// InjectMove queues a move at (x, y) with the pointer held down. Use it
// between InjectPress and InjectRelease.
func (s *EbitenSource) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, source: &SyntheticEvent{Cancel: true},
	})
}

// InjectRelease queues a release at (x, y).
func (s *EbitenSource) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: false, source: &SyntheticEvent{Cancel: true},
	})
}

// InjectTap queues a press and release at the same point. Consumes two
// updates.
func (s *EbitenSource) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves and a release at (toX, toY). Minimum frames is 2.
func (s *EbitenSource) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of queued injected events.
func (s *EbitenSource) Pending() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one queued event and feeds it through pointer
// 0. Returns true if an event was consumed.
func (s *EbitenSource) processInjectedInput(now float64) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.feed(0, evt.x, evt.y, evt.pressed, now, evt.source)
	return true
}
