package gesture

import "slices"

// Detector runs detection sessions against a Registry. At most one session
// is current at a time; the last finished one is kept as Previous so that
// recognizers can correlate two sessions, such as the taps of a double tap.
//
// A Detector is not safe for concurrent use. Every pass runs to completion
// before the next event is accepted.
type Detector struct {
	registry *Registry
	current  *Session
	previous *Session
	state    SessionState

	dispatching   bool
	stopRequested bool
}

// NewDetector creates a detector dispatching to the recognizers in reg.
func NewDetector(reg *Registry) *Detector {
	return &Detector{registry: reg}
}

// Current returns the active session, or nil.
func (d *Detector) Current() *Session {
	return d.current
}

// Previous returns the snapshot of the last finished session, or nil.
func (d *Detector) Previous() *Session {
	return d.previous
}

// State returns the session lifecycle state.
func (d *Detector) State() SessionState {
	return d.state
}

// StartDetect opens a session for inst with ev as its start event and
// dispatches ev. It does nothing and returns nil while a session is
// already current.
func (d *Detector) StartDetect(inst *Instance, ev *GestureEvent) *Session {
	if d.current != nil {
		return nil
	}
	s := newSession(inst, ev)
	d.current = s
	d.state = SessionActive
	inst.detector = d
	inst.resetStates()

	Logger().Debug("gesture: session started", "instance", inst.Name, "session", s.ID)
	d.Detect(ev)
	return s
}

// Detect fills the session-relative fields of ev and runs every enabled
// recognizer on it in priority order. A Veto, or a Stop from inside a
// handler, ends the pass and the session. The session's LastEvent is
// updated either way.
func (d *Detector) Detect(ev *GestureEvent) {
	cur := d.current
	if cur == nil {
		return
	}
	d.extend(cur, ev)

	inst := cur.Instance
	d.dispatching = true
	vetoed := false
	for _, e := range d.registry.entries {
		if !inst.options.Enabled(e.Name) {
			continue
		}
		if e.Handler(ev, inst) == Veto {
			Logger().Debug("gesture: session vetoed", "recognizer", e.Name, "session", cur.ID)
			vetoed = true
			break
		}
		if d.stopRequested {
			break
		}
	}
	d.dispatching = false

	last := ev.snapshot()
	last.StartEvent = cur.StartEvent
	cur.LastEvent = &last

	if vetoed || d.stopRequested {
		d.stopRequested = false
		d.stop()
	}
}

// EndDetect dispatches the final event of an interaction, then stops.
func (d *Detector) EndDetect(ev *GestureEvent) {
	d.Detect(ev)
	d.Stop()
}

// Stop retires the current session to Previous. Called from a handler, the
// stop takes effect once the handler returns and no further recognizer
// sees the event.
func (d *Detector) Stop() {
	if d.current == nil {
		return
	}
	if d.dispatching {
		d.stopRequested = true
		return
	}
	d.stop()
}

func (d *Detector) stop() {
	d.previous = d.current.clone()
	Logger().Debug("gesture: session stopped", "session", d.current.ID, "gesture", d.current.Name)
	d.current = nil
	d.state = SessionStopped
}

// extend computes ev's fields relative to the session start event. When
// the pointer count differs from the start event's, the start event adopts
// the current pointer list: fingers never land at exactly the same time,
// so late arrivals are folded into the origin.
func (d *Detector) extend(s *Session, ev *GestureEvent) {
	start := s.StartEvent
	if len(ev.Pointers) != len(start.Pointers) {
		start.Pointers = slices.Clone(ev.Pointers)
	}

	ev.DeltaTime = ev.Time - start.Time
	ev.DeltaX = ev.Center.X - start.Center.X
	ev.DeltaY = ev.Center.Y - start.Center.Y
	ev.VelocityX, ev.VelocityY = 0, 0
	if ev.DeltaTime > 0 {
		ev.VelocityX = ev.DeltaX / ev.DeltaTime
		ev.VelocityY = ev.DeltaY / ev.DeltaTime
	}
	ev.Distance = Distance(start.Center, ev.Center)
	ev.Angle = Angle(start.Center, ev.Center)
	ev.Direction = DirectionOf(start.Center, ev.Center)
	ev.Scale = Scale(start.Pointers, ev.Pointers)
	ev.Rotation = Rotation(start.Pointers, ev.Pointers)
	ev.StartEvent = start
}
