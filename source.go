package gesture

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// pointerTrack is the per-pointer press state a sample producer keeps to
// fill origins.
type pointerTrack struct {
	down    bool
	origin  Vec2
	segment Vec2
	last    Vec2
}

func (p *pointerTrack) sample(id int, x, y, t float64, src SourceEvent, target any) Sample {
	return Sample{
		PointerID:      id,
		X:              x,
		Y:              y,
		OriginX:        p.origin.X,
		OriginY:        p.origin.Y,
		SegmentOriginX: p.segment.X,
		SegmentOriginY: p.segment.Y,
		Source:         src,
		Target:         target,
		Time:           t,
	}
}

// step advances the press state machine and forwards the resulting sample,
// if any, to out. Unpressed pointers that are not down produce nothing.
func (p *pointerTrack) step(out SampleHandler, id int, x, y float64, pressed bool, t float64, src SourceEvent, target any) {
	switch {
	case pressed && !p.down:
		p.down = true
		p.origin = Vec2{x, y}
		p.segment = p.origin
		p.last = p.origin
		out.Handle(PhaseStart, p.sample(id, x, y, t, src, target))
	case !pressed && p.down:
		p.down = false
		p.last = Vec2{x, y}
		out.Handle(PhaseEnd, p.sample(id, x, y, t, src, target))
	case pressed && p.down:
		if x != p.last.X || y != p.last.Y {
			p.last = Vec2{x, y}
			out.Handle(PhaseMove, p.sample(id, x, y, t, src, target))
		}
	}
}

// EbitenSource polls Ebitengine's mouse and touch state once per tick and
// feeds the resulting samples to a SampleHandler. The mouse is pointer 0
// (left button only); touches occupy pointers 1-9.
type EbitenSource struct {
	// Target is attached to every sample.
	Target any

	// View, when set, maps screen positions into surface coordinates. A
	// press outside its viewport is ignored; a pointer already down keeps
	// reporting after it leaves.
	View *View

	out          SampleHandler
	pointers     [maxPointers]pointerTrack
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	start        time.Time
	clock        func() float64
}

// NewEbitenSource creates a source delivering to out. Timestamps are
// milliseconds since creation.
func NewEbitenSource(out SampleHandler) *EbitenSource {
	s := &EbitenSource{out: out, start: time.Now()}
	s.clock = func() float64 {
		return float64(time.Since(s.start).Microseconds()) / 1000
	}
	return s
}

// NewSegment makes the pointer's current position the origin of a new
// gesture segment, for example between two consecutive pans.
func (s *EbitenSource) NewSegment(pointerID int) {
	if pointerID >= 0 && pointerID < maxPointers {
		p := &s.pointers[pointerID]
		p.segment = p.last
	}
}

// Update reads input for this tick. Call it from ebiten.Game.Update.
// While injected events are queued, one is consumed per tick and the real
// mouse is ignored.
func (s *EbitenSource) Update() {
	now := s.clock()
	if !s.processInjectedInput(now) {
		mx, my := ebiten.CursorPosition()
		pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		s.feed(0, float64(mx), float64(my), pressed, now, nil)
	}
	s.processTouchPointers(now)
}

// feed maps a screen position through View and steps the pointer.
func (s *EbitenSource) feed(id int, sx, sy float64, pressed bool, now float64, src SourceEvent) {
	p := &s.pointers[id]
	x, y := sx, sy
	if s.View != nil {
		if pressed && !p.down && !s.View.Viewport.Contains(sx, sy) {
			pressed = false
		}
		x, y = s.View.ScreenToSurface(sx, sy)
	}
	p.step(s.out, id, x, y, pressed, now, src, s.Target)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *EbitenSource) processTouchPointers(now float64) {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var active [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			Logger().Warn("gesture: no free pointer slot for touch", "touch", int(tid))
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.feed(slot, float64(tx), float64(ty), true, now, nil)
	}
	s.releaseInactive(active, now)
}

// releaseInactive ends touches that disappeared this tick at their last
// known position and frees their slots.
func (s *EbitenSource) releaseInactive(active [maxPointers]bool, now float64) {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !active[i] {
			p := &s.pointers[i]
			if p.down {
				p.step(s.out, i, p.last.X, p.last.Y, false, now, nil, s.Target)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *EbitenSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}
