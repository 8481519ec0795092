// Package gesture recognizes multi-pointer gestures from a stream of
// normalized pointer samples.
//
// The package does two jobs. It turns each pointer's samples into
// [StreamEvent] values carrying deltas, velocity, acceleration and a
// short-horizon prediction, recycled through an [EventPool]. And it runs
// detection sessions: a [Detector] hands every event of an interaction to
// the recognizers of a [Registry] in priority order, keeping the session's
// start event as the origin for session-relative deltas and the last
// finished session as [Detector.Previous].
//
// Which gesture a motion is belongs to the recognizers. Reference ones live
// in gesture/recognizer.
//
// # Quick start
//
//	reg := gesture.NewRegistry()
//	reg.Register(recognizer.Tap(recognizer.TapConfig{}))
//	reg.Register(recognizer.Pan(recognizer.PanConfig{}))
//
//	inst := gesture.NewInstance("board", reg, nil)
//	inst.On("pan", func(r gesture.Report) {
//		fmt.Println(r.State, r.Event.DeltaX, r.Event.DeltaY)
//	})
//
//	surface := gesture.NewSurface(reg, inst, gesture.SurfaceConfig{})
//	source := gesture.NewEbitenSource(surface)
//	// call source.Update() from ebiten.Game.Update
//
// Any producer can drive a [Surface] directly through [Surface.Handle];
// [Script] replays JSON-described input for tests. Setting
// [EbitenSource.View] delivers samples in the coordinates of a scrolled,
// zoomed or rotated board instead of screen pixels.
//
// After a release, [Tracker.FitVelocity] and [NewFling] continue the
// motion under constant deceleration.
//
// # Recognizers
//
// A recognizer is a [Descriptor]: a name, a [Handler], option defaults and
// an optional priority (lower runs first, [DefaultPriority] otherwise).
// Handlers report progress with [Instance.Trigger] using the [State]
// vocabulary and return [Continue] or [Veto]. A veto ends the session: no
// later recognizer sees the event and the session is retired.
//
// An instance disables a recognizer by setting its option to false:
//
//	inst.SetOption("tap", false)
//
// # Concurrency
//
// Nothing here is safe for concurrent use. Samples are processed one at a
// time and each detection pass runs to completion before the next starts.
//
// # Logging
//
// The package is silent unless [SetLogger] installs a logger.
package gesture
