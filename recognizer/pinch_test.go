package recognizer

import (
	"math"
	"testing"

	"github.com/phanxgames/gesture"
)

func TestPinch_Scale(t *testing.T) {
	h := newHarness()
	h.play(t, `{"steps": [
		{"action": "press", "pointer": 1, "x": 0, "y": 0},
		{"action": "press", "pointer": 2, "x": 100, "y": 0},
		{"action": "move", "pointer": 2, "x": 200, "y": 0},
		{"action": "move", "pointer": 2, "x": 150, "y": 0},
		{"action": "release", "pointer": 2, "x": 150, "y": 0},
		{"action": "release", "pointer": 1, "x": 0, "y": 0}
	]}`)

	checkStates(t, h, NamePinch, gesture.StateBegan, gesture.StateChanged, gesture.StateEnded)
	began := h.first(t, NamePinch, gesture.StateBegan)
	if math.Abs(began.Event.Scale-2) > 1e-9 {
		t.Errorf("began scale = %v, want 2", began.Event.Scale)
	}
	changed := h.first(t, NamePinch, gesture.StateChanged)
	if math.Abs(changed.Event.Scale-1.5) > 1e-9 {
		t.Errorf("changed scale = %v, want 1.5", changed.Event.Scale)
	}
	// Tap and pan stay out of a two-finger gesture.
	checkStates(t, h, NameTap, gesture.StateFailed)
	checkStates(t, h, NamePan)
}

func TestPinch_Rotation(t *testing.T) {
	h := newHarness()
	h.play(t, `{"steps": [
		{"action": "press", "pointer": 1, "x": 0, "y": 0},
		{"action": "press", "pointer": 2, "x": 100, "y": 0},
		{"action": "move", "pointer": 2, "x": 0, "y": 100},
		{"action": "release", "pointer": 2, "x": 0, "y": 100},
		{"action": "release", "pointer": 1, "x": 0, "y": 0}
	]}`)

	began := h.first(t, NamePinch, gesture.StateBegan)
	if math.Abs(began.Event.Rotation-90) > 1e-9 || math.Abs(began.Event.Scale-1) > 1e-9 {
		t.Errorf("began rotation=%v scale=%v, want 90 and 1", began.Event.Rotation, began.Event.Scale)
	}
}

func TestPinch_SmallJitterIgnored(t *testing.T) {
	h := newHarness()
	h.play(t, `{"steps": [
		{"action": "press", "pointer": 1, "x": 0, "y": 0},
		{"action": "press", "pointer": 2, "x": 100, "y": 0},
		{"action": "move", "pointer": 2, "x": 102, "y": 1},
		{"action": "release", "pointer": 2, "x": 102, "y": 1},
		{"action": "release", "pointer": 1, "x": 0, "y": 0}
	]}`)
	checkStates(t, h, NamePinch)
}
