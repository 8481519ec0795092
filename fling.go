package gesture

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultDeceleration is the fling deceleration in px/ms².
const DefaultDeceleration = 0.002

// Fling continues a released pointer's motion under constant deceleration.
// ease.OutQuad is exactly the position curve of constant deceleration, so
// each axis is a single gween tween from 0 to its stopping distance.
//
// There is no global animation manager; call Update yourself each frame.
type Fling struct {
	tweens   [2]*gween.Tween
	Duration float64 // ms
	OffsetX  float64 // offset from the release point so far
	OffsetY  float64
	Done     bool
}

// NewFling starts a fling at velocity (vx, vy) px/ms slowing at decel
// px/ms². A non-positive decel uses DefaultDeceleration. Zero velocity
// yields a Fling that is already done.
func NewFling(vx, vy, decel float64) *Fling {
	if decel <= 0 {
		decel = DefaultDeceleration
	}
	speed := math.Hypot(vx, vy)
	if speed == 0 {
		return &Fling{Done: true}
	}
	duration := speed / decel
	dist := speed * speed / (2 * decel)
	tx := dist * vx / speed
	ty := dist * vy / speed

	f := &Fling{Duration: duration}
	f.tweens[0] = gween.New(0, float32(tx), float32(duration), ease.OutQuad)
	f.tweens[1] = gween.New(0, float32(ty), float32(duration), ease.OutQuad)
	return f
}

// FlingFrom starts a fling from the velocity of ev.
func FlingFrom(ev *StreamEvent, decel float64) *Fling {
	vx, vy, _ := ev.Velocity()
	return NewFling(vx, vy, decel)
}

// Update advances the fling by dt milliseconds and returns the offset from
// the release point.
func (f *Fling) Update(dt float32) (dx, dy float64) {
	if f.Done {
		return f.OffsetX, f.OffsetY
	}
	x, doneX := f.tweens[0].Update(dt)
	y, doneY := f.tweens[1].Update(dt)
	f.OffsetX = float64(x)
	f.OffsetY = float64(y)
	f.Done = doneX && doneY
	return f.OffsetX, f.OffsetY
}
