package gesture

import "github.com/google/uuid"

// EntityStore is the interface for optional ECS integration. When set on
// an Instance, every accepted Report is forwarded to it.
type EntityStore interface {
	EmitEvent(report Report)
}

// Report is what a recognizer publishes through Instance.Trigger.
type Report struct {
	Gesture   string
	State     State
	SessionID uuid.UUID
	Event     GestureEvent
}

type reportHandler struct {
	id      uint32
	gesture string
	fn      func(Report)
}

// CallbackHandle allows removing a registered gesture callback.
type CallbackHandle struct {
	id   uint32
	inst *Instance
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.inst == nil {
		return
	}
	s := h.inst.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = reportHandler{}
			h.inst.handlers = s[:len(s)-1]
			return
		}
	}
}

// Instance is the owning context of a detection session: its recognizer
// options, the callbacks interested in its gestures and the progress each
// recognizer has reported in the current session.
type Instance struct {
	Name string

	options  Options
	store    EntityStore
	handlers []reportHandler
	nextID   uint32
	states   map[string]State
	detector *Detector
}

// NewInstance creates an instance whose options are overrides layered on
// the registry defaults. A nil registry leaves only the overrides.
func NewInstance(name string, reg *Registry, overrides Options) *Instance {
	opts := overrides.Clone()
	if reg != nil {
		opts.fill(reg.defaults)
	}
	return &Instance{
		Name:    name,
		options: opts,
		states:  make(map[string]State),
	}
}

// Options returns the instance options. The map is live; use SetOption to
// change it.
func (i *Instance) Options() Options {
	return i.options
}

// SetOption sets a single option. Setting a recognizer name to false
// disables it for this instance.
func (i *Instance) SetOption(name string, value any) {
	i.options[name] = value
}

// SetEntityStore sets the optional ECS bridge.
func (i *Instance) SetEntityStore(store EntityStore) {
	i.store = store
}

// On registers a callback for reports of the named gesture. An empty name
// receives every report.
func (i *Instance) On(gesture string, fn func(Report)) CallbackHandle {
	i.nextID++
	id := i.nextID
	i.handlers = append(i.handlers, reportHandler{id: id, gesture: gesture, fn: fn})
	return CallbackHandle{id: id, inst: i}
}

// StateOf returns the last state the named recognizer reported in the
// current session, or StatePossible.
func (i *Instance) StateOf(gesture string) State {
	if st, ok := i.states[gesture]; ok {
		return st
	}
	return StatePossible
}

// Session returns the active session driving this instance, or nil.
func (i *Instance) Session() *Session {
	if i.detector == nil {
		return nil
	}
	return i.detector.current
}

// Previous returns the snapshot of the last finished session, or nil.
func (i *Instance) Previous() *Session {
	if i.detector == nil {
		return nil
	}
	return i.detector.previous
}

// Trigger records that gesture moved to state and fans a Report out to the
// callbacks and the entity store. Any state but StateFailed also names the
// current session after gesture. Transitions not allowed from the
// gesture's current state are dropped and Trigger returns false.
func (i *Instance) Trigger(gesture string, state State, ev *GestureEvent) bool {
	cur := i.StateOf(gesture)
	if !cur.CanTransition(state) {
		Logger().Debug("gesture: transition rejected",
			"instance", i.Name, "gesture", gesture, "from", cur, "to", state)
		return false
	}
	i.states[gesture] = state

	var id uuid.UUID
	if s := i.Session(); s != nil {
		if state != StateFailed {
			s.Name = gesture
		}
		id = s.ID
	}

	r := Report{Gesture: gesture, State: state, SessionID: id}
	if ev != nil {
		r.Event = ev.snapshot()
		r.Event.StartEvent = nil
	}
	for _, h := range i.handlers {
		if h.gesture == "" || h.gesture == gesture {
			h.fn(r)
		}
	}
	if i.store != nil {
		i.store.EmitEvent(r)
	}
	return true
}

// resetStates puts every recognizer back at StatePossible for a new
// session.
func (i *Instance) resetStates() {
	clear(i.states)
}
