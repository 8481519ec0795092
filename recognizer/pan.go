package recognizer

import "github.com/phanxgames/gesture"

const NamePan = "pan"

// PanConfig configures Pan. Zero values select defaults.
type PanConfig struct {
	Threshold   float64 // px of movement before the pan begins; default 10
	MaxPointers int     // more pointers cancel the pan; default 1
}

func (c PanConfig) withDefaults() PanConfig {
	if c.Threshold <= 0 {
		c.Threshold = 10
	}
	if c.MaxPointers <= 0 {
		c.MaxPointers = 1
	}
	return c
}

// Pan recognizes a continuous drag once the session center has moved past
// the dead zone. It reports began, changed on every later move, and ended
// on release; an extra pointer cancels it.
func Pan(cfg PanConfig) gesture.Descriptor {
	cfg = cfg.withDefaults()
	return gesture.Descriptor{
		Name: NamePan,
		Defaults: gesture.Options{NamePan: map[string]any{
			"threshold": cfg.Threshold,
		}},
		Handler: func(ev *gesture.GestureEvent, inst *gesture.Instance) gesture.Result {
			st := inst.StateOf(NamePan)
			active := st.In(gesture.StateBegan | gesture.StateChanged)
			threshold := inst.Options().Float(NamePan, "threshold", cfg.Threshold)

			switch {
			case len(ev.Pointers) > cfg.MaxPointers:
				if active {
					inst.Trigger(NamePan, gesture.StateCancelled, ev)
				}
			case ev.Phase == gesture.PhaseEnd:
				if active {
					inst.Trigger(NamePan, gesture.StateEnded, ev)
				}
			case st == gesture.StatePossible && ev.Distance > threshold:
				inst.Trigger(NamePan, gesture.StateBegan, ev)
			case active:
				inst.Trigger(NamePan, gesture.StateChanged, ev)
			}
			return gesture.Continue
		},
	}
}
