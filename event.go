package gesture

import "slices"

// GestureEvent is what recognizers see. The first block mirrors the
// StreamEvent that triggered the pass plus the set of pointers currently
// down; the second block is filled by the Detector relative to the
// session's start event.
type GestureEvent struct {
	Phase     Phase
	PointerID int
	Time      float64
	Target    any
	Pointers  []Pointer // sorted by ID
	Center    Vec2

	// Stream is the triggering event. It belongs to an EventPool and is
	// only valid for the duration of the detection pass; snapshots stored
	// on a Session have it cleared.
	Stream *StreamEvent

	DeltaTime  float64 // ms since the start event
	DeltaX     float64 // center offset from the start event
	DeltaY     float64
	VelocityX  float64 // DeltaX / DeltaTime, px/ms
	VelocityY  float64
	Distance   float64
	Angle      float64 // degrees
	Direction  Direction
	Scale      float64 // first-two-pointer distance ratio, 1 for one pointer
	Rotation   float64 // first-two-pointer angle change, degrees
	StartEvent *GestureEvent
}

// snapshot returns a copy that shares no mutable state with e and holds
// no pooled references.
func (e *GestureEvent) snapshot() GestureEvent {
	c := *e
	c.Pointers = slices.Clone(e.Pointers)
	c.Stream = nil
	return c
}
