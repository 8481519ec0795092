package gesture

import "math"

// StreamEvent is a Sample enriched with deltas, velocity, acceleration and
// a short-horizon prediction, chained to the previous event of the same
// pointer. Instances are owned by an EventPool and recycled; hold on to a
// StreamEvent only until Destroy is called.
//
// Velocity and acceleration are computed on first access and cached for
// the lifetime of the instance. Units are pixels per millisecond.
type StreamEvent struct {
	Phase     Phase
	PointerID int
	Target    any

	Time float64
	DT   float64 // 0 without a predecessor

	X, Y           float64
	OriginX        float64
	OriginY        float64
	TotalX, TotalY float64 // offset from the interaction origin
	SegmentOriginX float64
	SegmentOriginY float64
	SegmentX       float64 // offset from the segment origin
	SegmentY       float64
	DX, DY         float64 // offset from the previous event

	prev      *StreamEvent
	source    SourceEvent
	important bool
	silenced  bool

	hasVelocity bool
	vX, vY, v   float64

	hasAccel  bool
	aX, aY, a float64

	next Prediction

	pool    *EventPool
	pooled  bool
	tracked bool // held in a Tracker ring; only the tracker may destroy it
}

// Prediction is the position expected one interval ahead under uniformly
// accelerated motion. Offsets are rounded to whole pixels.
type Prediction struct {
	X, Y           float64 // predicted absolute position
	DX, DY         float64 // predicted offset from the previous event
	TotalX, TotalY float64 // predicted offset from the interaction origin
}

func (e *StreamEvent) init(phase Phase, s Sample, prev *StreamEvent) {
	pool := e.pool
	*e = StreamEvent{pool: pool}

	e.Phase = phase
	e.PointerID = s.PointerID
	e.Target = s.Target
	e.prev = prev
	e.important = phase == PhaseStart || phase == PhaseEnd ||
		(prev != nil && prev.Phase == PhaseStart)
	if e.important {
		e.source = s.Source
	}

	e.Time = s.Time
	e.X = s.X
	e.Y = s.Y
	e.OriginX = s.OriginX
	e.OriginY = s.OriginY
	e.TotalX = s.X - s.OriginX
	e.TotalY = s.Y - s.OriginY
	e.SegmentOriginX = s.SegmentOriginX
	e.SegmentOriginY = s.SegmentOriginY
	e.SegmentX = s.X - s.SegmentOriginX
	e.SegmentY = s.Y - s.SegmentOriginY

	if prev != nil {
		e.DT = s.Time - prev.Time
		e.DX = s.X - prev.X
		e.DY = s.Y - prev.Y
	}
}

// Prev returns the chronologically previous event for the same pointer,
// or nil for the first event or once the predecessor has been released.
func (e *StreamEvent) Prev() *StreamEvent {
	return e.prev
}

// Velocity returns the per-axis velocity and its magnitude. All three are
// zero without a predecessor or when DT is not positive.
func (e *StreamEvent) Velocity() (vx, vy, v float64) {
	if !e.hasVelocity {
		if e.prev != nil && e.DT > 0 {
			e.vX = e.DX / e.DT
			e.vY = e.DY / e.DT
			e.v = math.Hypot(e.vX, e.vY)
		}
		e.hasVelocity = true
	}
	return e.vX, e.vY, e.v
}

// Acceleration returns the per-axis acceleration and its magnitude,
// derived from this event's velocity and the predecessor's. Zero without a
// predecessor or when DT is not positive.
func (e *StreamEvent) Acceleration() (ax, ay, a float64) {
	if !e.hasAccel {
		if e.prev != nil && e.DT > 0 {
			vx, vy, _ := e.Velocity()
			pvx, pvy, _ := e.prev.Velocity()
			e.aX = (vx - pvx) / e.DT
			e.aY = (vy - pvy) / e.DT
			e.a = math.Hypot(e.aX, e.aY)
		}
		e.hasAccel = true
	}
	return e.aX, e.aY, e.a
}

// Predict extrapolates the next position one DT ahead using
// d = v·t + ½·a·t². The result is also kept as the event's next position.
func (e *StreamEvent) Predict() Prediction {
	vx, vy, _ := e.Velocity()
	ax, ay, _ := e.Acceleration()
	t := e.DT

	ndx := math.Round(vx*t + 0.5*ax*t*t)
	ndy := math.Round(vy*t + 0.5*ay*t*t)

	e.next = Prediction{
		X:      e.X + ndx,
		Y:      e.Y + ndy,
		DX:     e.DX + ndx,
		DY:     e.DY + ndy,
		TotalX: e.TotalX + ndx,
		TotalY: e.TotalY + ndy,
	}
	return e.next
}

// Next returns the position computed by the last Predict call.
func (e *StreamEvent) Next() (x, y float64) {
	return e.next.X, e.next.Y
}

// resolve fills the velocity and acceleration caches while the
// predecessor is still reachable.
func (e *StreamEvent) resolve() {
	e.Velocity()
	e.Acceleration()
}

// Silence suppresses the default behavior and propagation of the source
// event. Only start and end events, and the move directly after a start,
// carry a source; non-cancelable sources are left alone. Calling it again
// after a successful silence does nothing.
func (e *StreamEvent) Silence() {
	if e.silenced || e.source == nil || !e.source.Cancelable() {
		return
	}
	e.source.PreventDefault()
	e.source.StopPropagation()
	e.silenced = true
}

// Silenced reports whether Silence took effect on this event.
func (e *StreamEvent) Silenced() bool {
	return e.silenced
}

// Destroy severs the back references and returns the event to its pool.
// Destroying an event twice is a no-op, and so is destroying an event a
// Tracker still holds: the tracker returns it when it ages out or its
// pointer is released.
func (e *StreamEvent) Destroy() {
	if e.pooled || e.tracked {
		return
	}
	e.destroy()
}

func (e *StreamEvent) destroy() {
	e.tracked = false
	if e.pooled {
		return
	}
	e.prev = nil
	e.source = nil
	e.Target = nil
	if e.pool != nil {
		e.pool.put(e)
	}
}
