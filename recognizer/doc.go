// Package recognizer provides reference gesture recognizers for a
// gesture.Registry: tap, double tap, pan, pinch and swipe.
//
// Each constructor returns a gesture.Descriptor. Thresholds come from the
// config passed in and can be overridden per instance through options
// keyed by the recognizer name:
//
//	inst.SetOption("pan", map[string]any{"threshold": 20.0})
//
// Progress is reported with Instance.Trigger, so callbacks registered with
// Instance.On receive a gesture.Report for every state change.
package recognizer

import "github.com/phanxgames/gesture"

// Standard returns every reference recognizer with default settings, in
// registration order.
func Standard() []gesture.Descriptor {
	return []gesture.Descriptor{
		Tap(TapConfig{}),
		DoubleTap(DoubleTapConfig{}),
		Swipe(SwipeConfig{}),
		Pinch(PinchConfig{}),
		Pan(PanConfig{}),
	}
}

// RegisterStandard registers Standard into reg.
func RegisterStandard(reg *gesture.Registry) {
	for _, d := range Standard() {
		reg.Register(d)
	}
}
