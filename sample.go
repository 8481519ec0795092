package gesture

// SourceEvent is the platform event behind a Sample. The core only ever
// asks whether it can be cancelled and, through StreamEvent.Silence,
// suppresses its default behavior.
type SourceEvent interface {
	Cancelable() bool
	PreventDefault()
	StopPropagation()
}

// Sample is one normalized input reading for a pointer. Time is in
// milliseconds on a monotonic clock chosen by the producer.
type Sample struct {
	PointerID      int
	X, Y           float64
	OriginX        float64 // position where the interaction began
	OriginY        float64
	SegmentOriginX float64 // position where the current gesture segment began
	SegmentOriginY float64
	Source         SourceEvent // may be nil
	Target         any         // opaque; never dereferenced by the core
	Time           float64
}
