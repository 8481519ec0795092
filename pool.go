package gesture

const defaultPoolSize = 32

// EventPool is a free list of StreamEvent slots. It is not safe for
// concurrent use; input is processed on a single goroutine.
type EventPool struct {
	free      []*StreamEvent
	allocated int
}

// NewEventPool creates a pool with size preallocated slots. A size of zero
// or less uses the default.
func NewEventPool(size int) *EventPool {
	if size <= 0 {
		size = defaultPoolSize
	}
	p := &EventPool{free: make([]*StreamEvent, 0, size)}
	for range size {
		p.free = append(p.free, &StreamEvent{pool: p, pooled: true})
	}
	p.allocated = size
	return p
}

// Create returns an event populated from s and chained to prev, reusing a
// free slot when one is available. Every field of a reused slot is reset.
func (p *EventPool) Create(phase Phase, s Sample, prev *StreamEvent) *StreamEvent {
	var e *StreamEvent
	if n := len(p.free); n > 0 {
		e = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		e = &StreamEvent{pool: p}
		p.allocated++
		Logger().Debug("gesture: event pool grew", "allocated", p.allocated)
	}
	e.init(phase, s, prev)
	return e
}

// Free returns the number of idle slots.
func (p *EventPool) Free() int {
	return len(p.free)
}

// Allocated returns the number of slots the pool has ever created.
func (p *EventPool) Allocated() int {
	return p.allocated
}

func (p *EventPool) put(e *StreamEvent) {
	e.pooled = true
	p.free = append(p.free, e)
}
