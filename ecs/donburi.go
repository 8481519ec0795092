package ecs

import (
	"slices"

	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ReportEventType is the Donburi event type for gesture reports.
var ReportEventType = events.NewEventType[gesture.Report]()

// StoreOption narrows what a Donburi store publishes.
type StoreOption func(*donburiStore)

// WithStates publishes only reports whose state is in mask, e.g.
// gesture.StateRecognized|gesture.StateCancelled to skip continuous
// updates.
func WithStates(mask gesture.State) StoreOption {
	return func(s *donburiStore) { s.states = mask }
}

// WithGestures publishes only reports of the named gestures.
func WithGestures(names ...string) StoreOption {
	return func(s *donburiStore) { s.gestures = append(s.gestures, names...) }
}

type donburiStore struct {
	world    donburi.World
	states   gesture.State // zero accepts every state
	gestures []string      // empty accepts every gesture
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Reports are published to ReportEventType and delivered when the world
// processes its events.
func NewDonburiStore(world donburi.World, opts ...StoreOption) gesture.EntityStore {
	s := &donburiStore{world: world}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *donburiStore) accepts(r gesture.Report) bool {
	if s.states != 0 && !r.State.In(s.states) {
		return false
	}
	return len(s.gestures) == 0 || slices.Contains(s.gestures, r.Gesture)
}

func (s *donburiStore) EmitEvent(report gesture.Report) {
	if !s.accepts(report) {
		return
	}
	ReportEventType.Publish(s.world, report)
}
