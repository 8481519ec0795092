package gesture

import (
	"math"
	"testing"
)

func TestNewView_Identity(t *testing.T) {
	v := NewView(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	x, y := v.ScreenToSurface(123, 456)
	if math.Abs(x-123) > 1e-9 || math.Abs(y-456) > 1e-9 {
		t.Errorf("ScreenToSurface(123,456) = (%f,%f), want identity", x, y)
	}
}

func TestView_Translation(t *testing.T) {
	v := NewView(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	v.SetPosition(100, 50)
	// The view centered on (100,50) shows it at the viewport center.
	sx, sy := v.SurfaceToScreen(100, 50)
	if math.Abs(sx-400) > 1e-9 || math.Abs(sy-300) > 1e-9 {
		t.Errorf("SurfaceToScreen(100,50) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestView_ZoomScalesDistances(t *testing.T) {
	v := NewView(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	v.SetZoom(2)
	v.SetZoom(0) // ignored

	// 20 screen pixels are 10 surface units at zoom 2.
	x0, _ := v.ScreenToSurface(400, 300)
	x1, _ := v.ScreenToSurface(420, 300)
	if math.Abs((x1-x0)-10) > 1e-9 {
		t.Errorf("20px at zoom 2 = %f units, want 10", x1-x0)
	}
}

func TestView_Rotation90(t *testing.T) {
	v := NewView(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	v.SetPosition(0, 0)
	v.SetRotation(math.Pi / 2)

	// Rotate(-π/2) maps (1,0) to (0,-1) before the viewport offset.
	sx, sy := v.SurfaceToScreen(1, 0)
	if math.Abs(sx-400) > 1e-9 || math.Abs(sy-299) > 1e-9 {
		t.Errorf("SurfaceToScreen(1,0) = (%f,%f), want (400,299)", sx, sy)
	}
}

func TestView_Roundtrip(t *testing.T) {
	v := NewView(Rect{X: 10, Y: 20, Width: 800, Height: 600})
	v.X = 42
	v.Y = -17
	v.Zoom = 1.5
	v.Rotation = 0.3
	v.MarkDirty()

	sx, sy := v.SurfaceToScreen(123, -456)
	x, y := v.ScreenToSurface(sx, sy)
	if math.Abs(x-123) > 1e-6 || math.Abs(y+456) > 1e-6 {
		t.Errorf("roundtrip: got (%f,%f), want (123,-456)", x, y)
	}
}

func TestAffine_SingularInverse(t *testing.T) {
	if got := (affine{0, 0, 0, 0, 5, 5}).inverse(); got != identityAffine {
		t.Errorf("singular inverse = %v, want identity", got)
	}
}

func TestView_ZeroZoomFallsBackToIdentity(t *testing.T) {
	v := NewView(Rect{Width: 800, Height: 600})
	v.Zoom = 0
	v.MarkDirty()
	x, y := v.ScreenToSurface(12, 34)
	if x != 12 || y != 34 {
		t.Errorf("ScreenToSurface = (%v, %v), want unmapped (12, 34)", x, y)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{29.9, 29.9, true},
		{30, 15, false},
		{5, 15, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestEbitenSource_ViewMapsAndFilters(t *testing.T) {
	var rec sampleRecorder
	src := NewEbitenSource(&rec)
	src.View = NewView(Rect{X: 100, Y: 100, Width: 200, Height: 200})
	src.View.SetZoom(2)

	// Outside the viewport: ignored.
	src.InjectTap(50, 50)
	src.processInjectedInput(0)
	src.processInjectedInput(16)
	if len(rec.got) != 0 {
		t.Fatalf("press outside the viewport produced %v", rec.got)
	}

	// Inside, then dragged out: still tracked.
	src.InjectPress(200, 200)
	src.InjectMove(220, 200)
	src.InjectRelease(400, 200)
	for i := range 3 {
		src.processInjectedInput(float64(32 + 16*i))
	}
	want := []handled{
		{PhaseStart, 0, 200, 200, 32},
		{PhaseMove, 0, 210, 200, 48},
		{PhaseEnd, 0, 300, 200, 64},
	}
	if len(rec.got) != len(want) {
		t.Fatalf("got %v, want %v", rec.got, want)
	}
	for i := range want {
		g := rec.got[i]
		if g.Phase != want[i].Phase || math.Abs(g.X-want[i].X) > 1e-9 || math.Abs(g.Y-want[i].Y) > 1e-9 {
			t.Errorf("sample %d = %+v, want %+v", i, g, want[i])
		}
	}
}
