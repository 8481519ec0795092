package gesture

import "github.com/google/uuid"

// SessionState is the lifecycle of a Detector's detection attempt.
type SessionState uint8

const (
	SessionIdle    SessionState = iota // no session has run yet
	SessionActive                      // a session is receiving events
	SessionStopped                     // the last session ended or was vetoed
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionActive:
		return "active"
	case SessionStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Session is the bookkeeping for one detection attempt.
type Session struct {
	ID       uuid.UUID
	Instance *Instance

	// StartEvent is the reference origin for every session-relative field.
	// Its pointer list is refreshed when the pointer count changes.
	StartEvent *GestureEvent

	// LastEvent is the most recently dispatched event, nil before the first
	// pass completes.
	LastEvent *GestureEvent

	// Name is the gesture that most recently reported progress. Failures
	// do not count.
	Name string
}

func newSession(inst *Instance, first *GestureEvent) *Session {
	start := first.snapshot()
	start.StartEvent = nil
	return &Session{
		ID:         uuid.New(),
		Instance:   inst,
		StartEvent: &start,
	}
}

// clone copies the session so that later changes to s, or to a new
// session, cannot reach the copy.
func (s *Session) clone() *Session {
	c := *s
	if s.StartEvent != nil {
		start := s.StartEvent.snapshot()
		c.StartEvent = &start
	}
	if s.LastEvent != nil {
		last := s.LastEvent.snapshot()
		last.StartEvent = c.StartEvent
		c.LastEvent = &last
	}
	return &c
}
