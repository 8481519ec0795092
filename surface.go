package gesture

// SampleHandler consumes normalized samples. Surface implements it; input
// sources and scripts produce for it.
type SampleHandler interface {
	Handle(phase Phase, s Sample)
}

// SurfaceConfig tunes a Surface. Zero values select defaults.
type SurfaceConfig struct {
	PoolSize int        // preallocated StreamEvent slots
	History  int        // events retained per pointer
	Pool     *EventPool // shared pool; overrides PoolSize when set
}

// Surface is the top-level object for one interactive area. It owns the
// per-pointer Tracker and a Detector bound to a single Instance, and turns
// each Sample into one detection pass.
type Surface struct {
	inst     *Instance
	detector *Detector
	tracker  *Tracker
	ptrBuf   []Pointer
}

// NewSurface creates a surface dispatching inst's sessions to reg.
func NewSurface(reg *Registry, inst *Instance, cfg SurfaceConfig) *Surface {
	pool := cfg.Pool
	if pool == nil {
		pool = NewEventPool(cfg.PoolSize)
	}
	return &Surface{
		inst:     inst,
		detector: NewDetector(reg),
		tracker:  NewTracker(pool, cfg.History),
		ptrBuf:   make([]Pointer, 0, 10),
	}
}

// Instance returns the instance this surface detects for.
func (s *Surface) Instance() *Instance {
	return s.inst
}

// Detector returns the surface's detector.
func (s *Surface) Detector() *Detector {
	return s.detector
}

// Tracker returns the surface's pointer tracker.
func (s *Surface) Tracker() *Tracker {
	return s.tracker
}

// Handle processes one sample: it derives the StreamEvent, snapshots the
// pointers currently down and runs the detector. The first pointer down
// opens a session and the last pointer up closes it; everything else is an
// ordinary pass. An ended pointer is still listed in its own end event.
func (s *Surface) Handle(phase Phase, sm Sample) {
	se := s.tracker.Push(phase, sm)

	s.ptrBuf = s.tracker.AppendPointers(s.ptrBuf[:0])
	ev := GestureEvent{
		Phase:     phase,
		PointerID: sm.PointerID,
		Time:      se.Time,
		Target:    se.Target,
		Pointers:  s.ptrBuf,
		Center:    Center(s.ptrBuf),
		Stream:    se,
	}

	switch {
	case phase == PhaseStart && s.detector.Current() == nil:
		s.detector.StartDetect(s.inst, &ev)
	case phase == PhaseEnd && s.tracker.Len() == 1:
		s.detector.EndDetect(&ev)
	default:
		s.detector.Detect(&ev)
	}

	if phase == PhaseEnd {
		s.tracker.Release(sm.PointerID)
	}
}

// Stop ends the current session and forgets every tracked pointer.
func (s *Surface) Stop() {
	s.detector.Stop()
	s.tracker.Reset()
}
