package recognizer

import (
	"math"

	"github.com/phanxgames/gesture"
)

const NamePinch = "pinch"

// PinchConfig configures Pinch. Zero values select defaults.
type PinchConfig struct {
	ScaleThreshold    float64 // |scale-1| before the pinch begins; default 0.05
	RotationThreshold float64 // degrees of twist before the pinch begins; default 5
}

func (c PinchConfig) withDefaults() PinchConfig {
	if c.ScaleThreshold <= 0 {
		c.ScaleThreshold = 0.05
	}
	if c.RotationThreshold <= 0 {
		c.RotationThreshold = 5
	}
	return c
}

// Pinch recognizes a two-pointer scale and rotate gesture. Report events
// carry Scale and Rotation relative to where both pointers first rested.
// It ends when either pointer lifts.
func Pinch(cfg PinchConfig) gesture.Descriptor {
	cfg = cfg.withDefaults()
	return gesture.Descriptor{
		Name:     NamePinch,
		Priority: gesture.Priority(900),
		Defaults: gesture.Options{NamePinch: map[string]any{
			"scaleThreshold":    cfg.ScaleThreshold,
			"rotationThreshold": cfg.RotationThreshold,
		}},
		Handler: func(ev *gesture.GestureEvent, inst *gesture.Instance) gesture.Result {
			st := inst.StateOf(NamePinch)
			active := st.In(gesture.StateBegan | gesture.StateChanged)
			opts := inst.Options()

			switch {
			case active && (ev.Phase == gesture.PhaseEnd || len(ev.Pointers) < 2):
				inst.Trigger(NamePinch, gesture.StateEnded, ev)
			case len(ev.Pointers) < 2:
			case st == gesture.StatePossible:
				scaleTh := opts.Float(NamePinch, "scaleThreshold", cfg.ScaleThreshold)
				rotTh := opts.Float(NamePinch, "rotationThreshold", cfg.RotationThreshold)
				if math.Abs(ev.Scale-1) >= scaleTh || math.Abs(ev.Rotation) >= rotTh {
					inst.Trigger(NamePinch, gesture.StateBegan, ev)
				}
			case active:
				inst.Trigger(NamePinch, gesture.StateChanged, ev)
			}
			return gesture.Continue
		},
	}
}
