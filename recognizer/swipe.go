package recognizer

import (
	"math"

	"github.com/phanxgames/gesture"
)

const NameSwipe = "swipe"

// SwipeConfig configures Swipe. Zero values select defaults.
type SwipeConfig struct {
	MinVelocity float64 // px/ms averaged over the session; default 0.65
	Exclusive   bool    // veto the rest of the pass once recognized
}

func (c SwipeConfig) withDefaults() SwipeConfig {
	if c.MinVelocity <= 0 {
		c.MinVelocity = 0.65
	}
	return c
}

// Swipe recognizes a fast single-pointer flick on release. The report's
// Direction tells which way.
func Swipe(cfg SwipeConfig) gesture.Descriptor {
	cfg = cfg.withDefaults()
	return gesture.Descriptor{
		Name:     NameSwipe,
		Priority: gesture.Priority(300),
		Defaults: gesture.Options{NameSwipe: map[string]any{
			"minVelocity": cfg.MinVelocity,
		}},
		Handler: func(ev *gesture.GestureEvent, inst *gesture.Instance) gesture.Result {
			if inst.StateOf(NameSwipe) != gesture.StatePossible {
				return gesture.Continue
			}
			if len(ev.Pointers) > 1 {
				inst.Trigger(NameSwipe, gesture.StateFailed, ev)
				return gesture.Continue
			}
			if ev.Phase != gesture.PhaseEnd {
				return gesture.Continue
			}
			minV := inst.Options().Float(NameSwipe, "minVelocity", cfg.MinVelocity)
			if math.Max(math.Abs(ev.VelocityX), math.Abs(ev.VelocityY)) < minV {
				inst.Trigger(NameSwipe, gesture.StateFailed, ev)
				return gesture.Continue
			}
			inst.Trigger(NameSwipe, gesture.StateRecognized, ev)
			if cfg.Exclusive {
				return gesture.Veto
			}
			return gesture.Continue
		},
	}
}
