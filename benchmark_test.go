package gesture

import (
	"fmt"
	"testing"
)

// setupBenchSurface creates a Surface with n no-op recognizers.
func setupBenchSurface(n int) *Surface {
	reg := NewRegistry()
	for i := range n {
		reg.Register(Descriptor{Name: fmt.Sprintf("r%d", i), Handler: noop})
	}
	return NewSurface(reg, NewInstance("bench", reg, nil), SurfaceConfig{})
}

func BenchmarkTracker_Push(b *testing.B) {
	tr := NewTracker(NewEventPool(8), 4)
	tr.Push(PhaseStart, Sample{PointerID: 1})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr.Push(PhaseMove, Sample{PointerID: 1, X: float64(i), Time: float64(i) * 16})
	}
}

func BenchmarkSurface_SinglePointerMove(b *testing.B) {
	s := setupBenchSurface(5)
	s.Handle(PhaseStart, Sample{PointerID: 1})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Handle(PhaseMove, Sample{PointerID: 1, X: float64(i), Time: float64(i) * 16})
	}
}

func BenchmarkSurface_TwoPointerMove(b *testing.B) {
	s := setupBenchSurface(5)
	s.Handle(PhaseStart, Sample{PointerID: 1})
	s.Handle(PhaseStart, Sample{PointerID: 2, X: 100, Time: 8})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		t := float64(i) * 16
		s.Handle(PhaseMove, Sample{PointerID: 1, X: -float64(i), Time: t})
		s.Handle(PhaseMove, Sample{PointerID: 2, X: 100 + float64(i), Time: t + 8})
	}
}

func BenchmarkSurface_TapSessions(b *testing.B) {
	s := setupBenchSurface(5)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		t := float64(i) * 100
		s.Handle(PhaseStart, Sample{PointerID: 1, Time: t})
		s.Handle(PhaseEnd, Sample{PointerID: 1, Time: t + 50})
	}
}

func BenchmarkStreamEvent_Predict(b *testing.B) {
	pool := NewEventPool(4)
	_, _, e := threeSamples(pool)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = e.Predict()
	}
}
