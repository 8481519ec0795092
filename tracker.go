package gesture

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

const (
	defaultHistory = 4
	minHistory     = 2
)

// track is a fixed-capacity ring of one pointer's most recent events,
// oldest first from head.
type track struct {
	events []*StreamEvent
	head   int
	n      int
}

func (t *track) last() *StreamEvent {
	if t.n == 0 {
		return nil
	}
	return t.events[(t.head+t.n-1)%len(t.events)]
}

func (t *track) at(i int) *StreamEvent {
	return t.events[(t.head+i)%len(t.events)]
}

// push appends e. When the ring is full the oldest event is destroyed;
// its successor resolves its kinematics first and then drops the link.
func (t *track) push(e *StreamEvent) {
	if t.n == len(t.events) {
		oldest := t.events[t.head]
		succ := t.at(1)
		succ.resolve()
		succ.prev = nil
		oldest.destroy()
		t.events[t.head] = nil
		t.head = (t.head + 1) % len(t.events)
		t.n--
	}
	e.tracked = true
	t.events[(t.head+t.n)%len(t.events)] = e
	t.n++
}

func (t *track) release() {
	for i := t.n - 1; i >= 0; i-- {
		idx := (t.head + i) % len(t.events)
		t.events[idx].destroy()
		t.events[idx] = nil
	}
	t.head, t.n = 0, 0
}

// Tracker turns per-pointer Samples into chained StreamEvents. Only the
// last few events of each pointer are retained; older ones go back to the
// pool.
type Tracker struct {
	pool   *EventPool
	depth  int
	tracks map[int]*track
}

// NewTracker creates a tracker drawing events from pool and keeping depth
// events per pointer. A nil pool gets a private one; depth is raised to at
// least 2.
func NewTracker(pool *EventPool, depth int) *Tracker {
	if pool == nil {
		pool = NewEventPool(0)
	}
	if depth <= 0 {
		depth = defaultHistory
	}
	depth = max(depth, minHistory)
	return &Tracker{
		pool:   pool,
		depth:  depth,
		tracks: make(map[int]*track),
	}
}

// Pool returns the pool events are drawn from.
func (t *Tracker) Pool() *EventPool {
	return t.pool
}

// Push records s for its pointer and returns the new event. A start sample
// discards whatever was left of the pointer's previous stream. The event
// stays valid until Release is called for the pointer or it ages out of
// the history.
func (t *Tracker) Push(phase Phase, s Sample) *StreamEvent {
	tr, ok := t.tracks[s.PointerID]
	if ok && phase == PhaseStart {
		tr.release()
	}
	if !ok {
		if phase != PhaseStart {
			Logger().Warn("gesture: sample for untracked pointer", "pointer", s.PointerID, "phase", phase)
		}
		tr = &track{events: make([]*StreamEvent, t.depth)}
		t.tracks[s.PointerID] = tr
	}
	e := t.pool.Create(phase, s, tr.last())
	tr.push(e)
	return e
}

// Release destroys every retained event of a pointer and forgets it.
func (t *Tracker) Release(pointerID int) {
	tr, ok := t.tracks[pointerID]
	if !ok {
		return
	}
	tr.release()
	delete(t.tracks, pointerID)
}

// Reset releases every pointer.
func (t *Tracker) Reset() {
	for id := range t.tracks {
		t.Release(id)
	}
}

// Len returns the number of tracked pointers.
func (t *Tracker) Len() int {
	return len(t.tracks)
}

// Last returns the newest event of a pointer, or nil.
func (t *Tracker) Last(pointerID int) *StreamEvent {
	if tr, ok := t.tracks[pointerID]; ok {
		return tr.last()
	}
	return nil
}

// History returns a pointer's retained events, oldest first.
func (t *Tracker) History(pointerID int) []*StreamEvent {
	tr, ok := t.tracks[pointerID]
	if !ok {
		return nil
	}
	out := make([]*StreamEvent, tr.n)
	for i := range tr.n {
		out[i] = tr.at(i)
	}
	return out
}

// AppendPointers appends the latest position of every tracked pointer to
// buf, sorted by pointer ID.
func (t *Tracker) AppendPointers(buf []Pointer) []Pointer {
	start := len(buf)
	for id, tr := range t.tracks {
		if e := tr.last(); e != nil {
			buf = append(buf, Pointer{ID: id, X: e.X, Y: e.Y})
		}
	}
	slices.SortFunc(buf[start:], func(a, b Pointer) int { return a.ID - b.ID })
	return buf
}

// FitVelocity estimates a pointer's velocity as the least-squares slope of
// position over time across its retained history. It is steadier than the
// last event's two-point velocity when input timing jitters. ok is false
// with fewer than two events or no spread in time.
func (t *Tracker) FitVelocity(pointerID int) (vx, vy float64, ok bool) {
	tr, found := t.tracks[pointerID]
	if !found || tr.n < 2 {
		return 0, 0, false
	}
	ts := make([]float64, tr.n)
	xs := make([]float64, tr.n)
	ys := make([]float64, tr.n)
	for i := range tr.n {
		e := tr.at(i)
		ts[i], xs[i], ys[i] = e.Time, e.X, e.Y
	}
	if stat.Variance(ts, nil) == 0 {
		return 0, 0, false
	}
	_, vx = stat.LinearRegression(ts, xs, nil, false)
	_, vy = stat.LinearRegression(ts, ys, nil, false)
	return vx, vy, true
}
