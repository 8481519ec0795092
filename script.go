package gesture

import (
	"encoding/json"
	"fmt"
)

const defaultScriptInterval = 16.0 // ms, one 60 Hz frame

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action     string  `json:"action"`
	Pointer    int     `json:"pointer,omitempty"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	FromX      float64 `json:"fromX,omitempty"`
	FromY      float64 `json:"fromY,omitempty"`
	ToX        float64 `json:"toX,omitempty"`
	ToY        float64 `json:"toY,omitempty"`
	Frames     int     `json:"frames,omitempty"`
	Cancelable bool    `json:"cancelable,omitempty"`
}

// scriptFile is the top-level JSON structure of a gesture script.
type scriptFile struct {
	Interval float64      `json:"interval,omitempty"`
	Steps    []scriptStep `json:"steps"`
}

// Script replays timed pointer input into a SampleHandler. Each step
// advances the clock by one interval; "wait" advances it by several.
//
//	{"interval": 16, "steps": [
//	  {"action": "press", "pointer": 1, "x": 10, "y": 10},
//	  {"action": "move",  "pointer": 1, "x": 40, "y": 10},
//	  {"action": "release", "pointer": 1, "x": 40, "y": 10},
//	  {"action": "wait", "frames": 10},
//	  {"action": "tap", "x": 40, "y": 10},
//	  {"action": "drag", "fromX": 0, "fromY": 0, "toX": 90, "toY": 0, "frames": 4}
//	]}
type Script struct {
	interval float64
	steps    []scriptStep
	pointers map[int]*pointerTrack
	now      float64
	last     float64

	// Sources holds the synthetic source events created for cancelable
	// steps, in order, so callers can check whether they were silenced.
	Sources []*SyntheticEvent
}

// LoadScript parses a JSON gesture script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "press", "move", "release", "tap", "drag", "wait":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
		if st.Pointer < 0 || st.Pointer >= maxPointers {
			return nil, fmt.Errorf("parse gesture script: step %d: pointer %d out of range", i, st.Pointer)
		}
	}
	if f.Interval <= 0 {
		f.Interval = defaultScriptInterval
	}
	return &Script{
		interval: f.Interval,
		steps:    f.Steps,
		pointers: make(map[int]*pointerTrack),
	}, nil
}

// Play feeds every step to out and returns the timestamp of the last
// sample in milliseconds. The first step happens at time 0.
func (sc *Script) Play(out SampleHandler) float64 {
	sc.now, sc.last = 0, 0
	clear(sc.pointers)
	sc.Sources = sc.Sources[:0]
	for _, st := range sc.steps {
		sc.run(out, st)
	}
	return sc.last
}

func (sc *Script) pointer(id int) *pointerTrack {
	p, ok := sc.pointers[id]
	if !ok {
		p = &pointerTrack{}
		sc.pointers[id] = p
	}
	return p
}

func (sc *Script) emit(out SampleHandler, st scriptStep, x, y float64, pressed bool) {
	var src SourceEvent
	if st.Cancelable {
		ev := &SyntheticEvent{Cancel: true}
		sc.Sources = append(sc.Sources, ev)
		src = ev
	}
	sc.pointer(st.Pointer).step(out, st.Pointer, x, y, pressed, sc.now, src, nil)
	sc.last = sc.now
	sc.now += sc.interval
}

func (sc *Script) run(out SampleHandler, st scriptStep) {
	switch st.Action {
	case "press", "move":
		sc.emit(out, st, st.X, st.Y, true)
	case "release":
		sc.emit(out, st, st.X, st.Y, false)
	case "tap":
		sc.emit(out, st, st.X, st.Y, true)
		sc.emit(out, st, st.X, st.Y, false)
	case "drag":
		frames := max(st.Frames, 2)
		sc.emit(out, st, st.FromX, st.FromY, true)
		steps := frames - 2
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps+1)
			sc.emit(out, st, st.FromX+(st.ToX-st.FromX)*t, st.FromY+(st.ToY-st.FromY)*t, true)
		}
		sc.emit(out, st, st.ToX, st.ToY, false)
	case "wait":
		if st.Frames > 0 {
			sc.now += float64(st.Frames) * sc.interval
		}
	}
}
