package gesture

import "math"

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Phase identifies where a StreamEvent sits in a pointer's interaction.
type Phase uint8

const (
	PhaseStart Phase = iota // pointer went down
	PhaseMove               // pointer moved while down
	PhaseEnd                // pointer lifted
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Direction is the dominant axis of motion relative to the session origin.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// Pointer is one entry in the list of pointers currently down.
type Pointer struct {
	ID   int
	X, Y float64
}

// --- Geometry helpers shared by the detector and recognizers ---

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Angle returns the angle in degrees of the segment a→b.
func Angle(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
}

// DirectionOf returns the dominant direction of the segment a→b.
// Ties between axes resolve horizontally. Y grows downward.
func DirectionOf(a, b Vec2) Direction {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return DirectionNone
	}
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if dy > 0 {
		return DirectionDown
	}
	return DirectionUp
}

// Center returns the centroid of pointers. Zero when the list is empty.
func Center(pointers []Pointer) Vec2 {
	if len(pointers) == 0 {
		return Vec2{}
	}
	var c Vec2
	for _, p := range pointers {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pointers))
	return Vec2{c.X / n, c.Y / n}
}

// Scale returns the ratio of the distance between the first two pointers
// in cur to the same distance in start. Returns 1 unless both lists hold
// at least two pointers and the start distance is non-zero.
func Scale(start, cur []Pointer) float64 {
	if len(start) < 2 || len(cur) < 2 {
		return 1
	}
	d0 := Distance(Vec2{start[0].X, start[0].Y}, Vec2{start[1].X, start[1].Y})
	if d0 == 0 {
		return 1
	}
	d1 := Distance(Vec2{cur[0].X, cur[0].Y}, Vec2{cur[1].X, cur[1].Y})
	return d1 / d0
}

// Rotation returns the change in degrees of the angle between the first two
// pointers from start to cur. Zero unless both lists hold two pointers.
func Rotation(start, cur []Pointer) float64 {
	if len(start) < 2 || len(cur) < 2 {
		return 0
	}
	a0 := Angle(Vec2{start[0].X, start[0].Y}, Vec2{start[1].X, start[1].Y})
	a1 := Angle(Vec2{cur[0].X, cur[0].Y}, Vec2{cur[1].X, cur[1].Y})
	return a1 - a0
}
