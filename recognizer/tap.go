package recognizer

import "github.com/phanxgames/gesture"

const (
	NameTap       = "tap"
	NameDoubleTap = "doubletap"
)

// TapConfig configures Tap. Zero values select defaults.
type TapConfig struct {
	MaxDuration float64 // ms between press and release; default 250
	MaxDistance float64 // px the pointer may wander; default 10
}

func (c TapConfig) withDefaults() TapConfig {
	if c.MaxDuration <= 0 {
		c.MaxDuration = 250
	}
	if c.MaxDistance <= 0 {
		c.MaxDistance = 10
	}
	return c
}

// Tap recognizes a single short press and release with one pointer. It
// fails as soon as the pointer wanders too far or a second pointer lands.
func Tap(cfg TapConfig) gesture.Descriptor {
	cfg = cfg.withDefaults()
	return gesture.Descriptor{
		Name:     NameTap,
		Priority: gesture.Priority(100),
		Defaults: gesture.Options{NameTap: map[string]any{
			"maxDuration": cfg.MaxDuration,
			"maxDistance": cfg.MaxDistance,
		}},
		Handler: func(ev *gesture.GestureEvent, inst *gesture.Instance) gesture.Result {
			if inst.StateOf(NameTap) != gesture.StatePossible {
				return gesture.Continue
			}
			opts := inst.Options()
			maxDur := opts.Float(NameTap, "maxDuration", cfg.MaxDuration)
			maxDist := opts.Float(NameTap, "maxDistance", cfg.MaxDistance)

			if len(ev.Pointers) > 1 || ev.Distance > maxDist || ev.DeltaTime > maxDur {
				inst.Trigger(NameTap, gesture.StateFailed, ev)
				return gesture.Continue
			}
			if ev.Phase == gesture.PhaseEnd {
				inst.Trigger(NameTap, gesture.StateRecognized, ev)
			}
			return gesture.Continue
		},
	}
}

// DoubleTapConfig configures DoubleTap. Zero values select defaults.
type DoubleTapConfig struct {
	Interval    float64 // ms from the first release to the second press; default 300
	MaxDistance float64 // px between the two taps; default 20
	Exclusive   bool    // veto the rest of the pass once recognized
}

func (c DoubleTapConfig) withDefaults() DoubleTapConfig {
	if c.Interval <= 0 {
		c.Interval = 300
	}
	if c.MaxDistance <= 0 {
		c.MaxDistance = 20
	}
	return c
}

// DoubleTap recognizes a tap whose previous session was also a tap, close
// in time and space. It relies on Tap having run earlier in the same pass.
func DoubleTap(cfg DoubleTapConfig) gesture.Descriptor {
	cfg = cfg.withDefaults()
	return gesture.Descriptor{
		Name:     NameDoubleTap,
		Priority: gesture.Priority(200),
		Defaults: gesture.Options{NameDoubleTap: map[string]any{
			"interval":    cfg.Interval,
			"maxDistance": cfg.MaxDistance,
		}},
		Handler: func(ev *gesture.GestureEvent, inst *gesture.Instance) gesture.Result {
			if ev.Phase != gesture.PhaseEnd || inst.StateOf(NameTap) != gesture.StateRecognized {
				return gesture.Continue
			}
			prev := inst.Previous()
			if prev == nil || prev.Name != NameTap || prev.LastEvent == nil || ev.StartEvent == nil {
				return gesture.Continue
			}
			opts := inst.Options()
			interval := opts.Float(NameDoubleTap, "interval", cfg.Interval)
			maxDist := opts.Float(NameDoubleTap, "maxDistance", cfg.MaxDistance)

			gap := ev.StartEvent.Time - prev.LastEvent.Time
			if gap < 0 || gap > interval {
				return gesture.Continue
			}
			if gesture.Distance(prev.LastEvent.Center, ev.Center) > maxDist {
				return gesture.Continue
			}
			inst.Trigger(NameDoubleTap, gesture.StateRecognized, ev)
			if cfg.Exclusive {
				return gesture.Veto
			}
			return gesture.Continue
		},
	}
}
