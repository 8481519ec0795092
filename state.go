package gesture

// State is the progress a recognizer reports for its current attempt.
// Values are distinct bits so a set of states can be tested with a mask:
//
//	if st&(StateBegan|StateChanged) != 0 { ... }
type State uint8

const (
	StatePossible  State = 1 << iota // waiting for enough input to decide
	StateBegan                       // continuous gesture started
	StateChanged                     // continuous gesture updated
	StateEnded                       // gesture finished; same as StateRecognized
	StateCancelled                   // gesture aborted after it began
	StateFailed                      // input can never match this gesture

	StateRecognized = StateEnded
)

// StateTerminal is the set of states that close a recognizer's attempt.
const StateTerminal = StateEnded | StateCancelled | StateFailed

func (s State) String() string {
	switch s {
	case StatePossible:
		return "possible"
	case StateBegan:
		return "began"
	case StateChanged:
		return "changed"
	case StateEnded:
		return "ended"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// In reports whether s is a member of the state set mask.
func (s State) In(mask State) bool {
	return s&mask != 0
}

// Terminal reports whether s ends the current attempt.
func (s State) Terminal() bool {
	return s.In(StateTerminal)
}

// CanTransition reports whether a recognizer may move from s to next.
// A terminal state may only restart at StatePossible.
func (s State) CanTransition(next State) bool {
	switch s {
	case StatePossible:
		return next.In(StateBegan | StateFailed | StateEnded)
	case StateBegan, StateChanged:
		return next.In(StateChanged | StateEnded | StateCancelled)
	case StateEnded, StateCancelled, StateFailed:
		return next == StatePossible
	}
	return false
}
