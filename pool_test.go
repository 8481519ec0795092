package gesture

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEventPool_ReusesDestroyedEvents(t *testing.T) {
	p := NewEventPool(1)
	a := p.Create(PhaseStart, Sample{X: 1}, nil)
	if p.Free() != 0 {
		t.Fatalf("Free() = %d, want 0", p.Free())
	}
	a.Destroy()
	if p.Free() != 1 {
		t.Fatalf("Free() = %d after Destroy, want 1", p.Free())
	}

	b := p.Create(PhaseMove, Sample{X: 2}, nil)
	if a != b {
		t.Error("Create should reuse the destroyed slot")
	}
	if p.Allocated() != 1 {
		t.Errorf("Allocated() = %d, want 1", p.Allocated())
	}
}

func TestEventPool_ReuseResetsEveryField(t *testing.T) {
	p := NewEventPool(3)
	_, _, e3 := threeSamples(p)
	e3.Predict()
	e3.Silence()
	e3.Destroy()

	reused := p.Create(PhaseStart, Sample{PointerID: 9, X: 4, Y: 6, Time: 50}, nil)
	if reused != e3 {
		t.Fatal("expected the destroyed slot back")
	}

	fresh := NewEventPool(1).Create(PhaseStart, Sample{PointerID: 9, X: 4, Y: 6, Time: 50}, nil)
	f, r := *fresh, *reused
	f.pool, r.pool = nil, nil
	if diff := cmp.Diff(f, r, cmp.AllowUnexported(StreamEvent{})); diff != "" {
		t.Errorf("reused event retains state (-fresh +reused):\n%s", diff)
	}
}

func TestEventPool_Grows(t *testing.T) {
	p := NewEventPool(1)
	p.Create(PhaseStart, Sample{}, nil)
	p.Create(PhaseStart, Sample{}, nil)
	if p.Allocated() != 2 {
		t.Errorf("Allocated() = %d, want 2", p.Allocated())
	}
}

func TestEventPool_DoubleDestroy(t *testing.T) {
	p := NewEventPool(1)
	e := p.Create(PhaseStart, Sample{}, nil)
	e.Destroy()
	e.Destroy()
	if p.Free() != 1 {
		t.Errorf("Free() = %d, want 1 after double Destroy", p.Free())
	}
}

func TestEventPool_DefaultSize(t *testing.T) {
	p := NewEventPool(0)
	if p.Free() != defaultPoolSize {
		t.Errorf("Free() = %d, want %d", p.Free(), defaultPoolSize)
	}
}
