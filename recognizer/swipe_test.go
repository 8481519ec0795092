package recognizer

import (
	"testing"

	"github.com/phanxgames/gesture"
)

func TestSwipe(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   gesture.State
		dir    gesture.Direction
	}{
		{"fast right", `{"steps": [{"action": "drag", "fromX": 0, "fromY": 0, "toX": 200, "toY": 0, "frames": 4}]}`,
			gesture.StateRecognized, gesture.DirectionRight},
		{"fast up", `{"steps": [{"action": "drag", "fromX": 0, "fromY": 300, "toX": 10, "toY": 0, "frames": 5}]}`,
			gesture.StateRecognized, gesture.DirectionUp},
		{"slow drag", `{"steps": [{"action": "drag", "fromX": 0, "fromY": 0, "toX": 30, "toY": 0, "frames": 20}]}`,
			gesture.StateFailed, gesture.DirectionRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.play(t, tt.script)
			checkStates(t, h, NameSwipe, tt.want)
			r := h.first(t, NameSwipe, tt.want)
			if r.Event.Direction != tt.dir {
				t.Errorf("direction = %v, want %v", r.Event.Direction, tt.dir)
			}
		})
	}
}

func TestSwipe_MultiPointerFails(t *testing.T) {
	h := newHarness()
	h.play(t, `{"steps": [
		{"action": "press", "pointer": 1, "x": 0, "y": 0},
		{"action": "press", "pointer": 2, "x": 50, "y": 0},
		{"action": "move", "pointer": 1, "x": 200, "y": 0},
		{"action": "release", "pointer": 1, "x": 200, "y": 0},
		{"action": "release", "pointer": 2, "x": 50, "y": 0}
	]}`)
	checkStates(t, h, NameSwipe, gesture.StateFailed)
}

func TestSwipe_ExclusiveVetoesPan(t *testing.T) {
	h := newHarness(Swipe(SwipeConfig{Exclusive: true}), Pan(PanConfig{}))
	h.play(t, `{"steps": [{"action": "drag", "fromX": 0, "fromY": 0, "toX": 200, "toY": 0, "frames": 4}]}`)

	checkStates(t, h, NameSwipe, gesture.StateRecognized)
	// Pan never sees the release.
	checkStates(t, h, NamePan, gesture.StateBegan, gesture.StateChanged)
	if h.surface.Detector().Current() != nil {
		t.Error("vetoed session should be stopped")
	}
}
