package gesture

import (
	"cmp"
	"slices"
)

// DefaultPriority is the dispatch index given to recognizers registered
// without an explicit one.
const DefaultPriority = 1000

// Result is what a recognizer handler tells the detector after seeing an
// event.
type Result uint8

const (
	// Continue lets lower-priority recognizers see the event.
	Continue Result = iota
	// Veto stops the pass and ends the session. Remaining recognizers do
	// not see this or any later event of the session.
	Veto
)

// Handler is a recognizer policy. It runs synchronously for every event
// of a session and must not block.
type Handler func(ev *GestureEvent, inst *Instance) Result

// Descriptor registers one recognizer type.
type Descriptor struct {
	Name     string
	Handler  Handler
	Defaults Options // merged into the registry defaults on Register
	Priority *int    // nil means DefaultPriority; lower runs first
}

// Priority returns a pointer to n for Descriptor.Priority.
func Priority(n int) *int {
	return &n
}

type entry struct {
	Descriptor
	index int
}

// Registry is the ordered set of recognizers and the option defaults they
// declare. Register everything before detection starts; dispatch only
// reads the list.
type Registry struct {
	entries  []entry
	defaults Options
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defaults: Options{}}
}

// SetDefault sets an explicit default option. Later registrations never
// override it.
func (r *Registry) SetDefault(name string, value any) {
	r.defaults[name] = value
}

// Defaults returns a copy of the merged option defaults.
func (r *Registry) Defaults() Options {
	return r.defaults.Clone()
}

// Register adds a recognizer. Its declared defaults, plus name: true when
// it declares no entry for itself, fill only options not already present.
// The list is re-sorted by priority, keeping registration order on ties.
// Returns the ordered descriptors.
//
// Register panics if d has an empty Name or a nil Handler; both are
// programming errors caught at setup, before any input is processed.
func (r *Registry) Register(d Descriptor) []Descriptor {
	if d.Name == "" || d.Handler == nil {
		panic("gesture: Register requires a name and a handler")
	}

	opts := d.Defaults.Clone()
	if _, ok := opts[d.Name]; !ok {
		opts[d.Name] = true
	}
	r.defaults.fill(opts)

	index := DefaultPriority
	if d.Priority != nil {
		index = *d.Priority
	}
	r.entries = append(r.entries, entry{Descriptor: d, index: index})
	slices.SortStableFunc(r.entries, func(a, b entry) int {
		return cmp.Compare(a.index, b.index)
	})

	Logger().Debug("gesture: recognizer registered", "name", d.Name, "priority", index)
	return r.Recognizers()
}

// Recognizers returns the descriptors in dispatch order.
func (r *Registry) Recognizers() []Descriptor {
	out := make([]Descriptor, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Descriptor
		idx := e.index
		out[i].Priority = &idx
	}
	return out
}

// Len returns the number of registered recognizers.
func (r *Registry) Len() int {
	return len(r.entries)
}
