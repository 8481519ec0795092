package gesture

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptionsEnabled(t *testing.T) {
	o := Options{
		"tap":   false,
		"pan":   true,
		"pinch": map[string]any{"threshold": 0.1},
	}
	tests := []struct {
		name string
		want bool
	}{
		{"tap", false},
		{"pan", true},
		{"pinch", true},
		{"unknown", true},
	}
	for _, tt := range tests {
		if got := o.Enabled(tt.name); got != tt.want {
			t.Errorf("Enabled(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseOptions(t *testing.T) {
	data := []byte(`
tap: false
pan:
  threshold: 12
pinch:
  scaleThreshold: 0.1
`)
	opts, err := ParseOptions(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Enabled("tap") {
		t.Error("tap should be disabled")
	}
	if got := opts.Float("pan", "threshold", 0); got != 12 {
		t.Errorf("pan threshold = %v, want 12", got)
	}
	if got := opts.Float("pinch", "scaleThreshold", 0); got != 0.1 {
		t.Errorf("pinch scaleThreshold = %v, want 0.1", got)
	}
	if got := opts.Float("pinch", "missing", 7); got != 7 {
		t.Errorf("missing key = %v, want default 7", got)
	}
	if got := opts.Float("tap", "threshold", 3); got != 3 {
		t.Errorf("bool entry = %v, want default 3", got)
	}
}

func TestParseOptions_Invalid(t *testing.T) {
	if _, err := ParseOptions([]byte("tap: [unclosed")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestNewInstance_LayersOverridesOnDefaults(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Descriptor{Name: "tap", Handler: noop})
	reg.Register(Descriptor{Name: "pan", Handler: noop, Defaults: Options{"pan": map[string]any{"threshold": 10.0}}})

	inst := NewInstance("a", reg, Options{"tap": false})
	want := Options{"tap": false, "pan": map[string]any{"threshold": 10.0}}
	if diff := cmp.Diff(want, inst.Options()); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}
