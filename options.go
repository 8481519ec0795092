package gesture

import (
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// Options maps a recognizer name to either a bool (enabled flag) or an
// options value owned by that recognizer. A recognizer is disabled only
// when its entry is exactly false.
type Options map[string]any

// Enabled reports whether the recognizer called name may run.
func (o Options) Enabled(name string) bool {
	v, ok := o[name]
	if !ok {
		return true
	}
	b, isBool := v.(bool)
	return !isBool || b
}

// Clone returns a shallow copy of o.
func (o Options) Clone() Options {
	if o == nil {
		return Options{}
	}
	return maps.Clone(o)
}

// fill copies entries from src whose keys are absent in o.
func (o Options) fill(src Options) {
	for k, v := range src {
		if _, ok := o[k]; !ok {
			o[k] = v
		}
	}
}

// ParseOptions decodes recognizer option overrides from YAML:
//
//	tap: false
//	pan:
//	  threshold: 10
//
// Nested mappings decode to map[string]any.
func ParseOptions(data []byte) (Options, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}
	opts := make(Options, len(raw))
	for k, v := range raw {
		if k == "" {
			return nil, fmt.Errorf("parse options: empty recognizer name")
		}
		opts[k] = v
	}
	return opts, nil
}

// Float reads a numeric field from the options value stored under name.
// Returns def when the entry is not a map or lacks a numeric key.
func (o Options) Float(name, key string, def float64) float64 {
	m, ok := o[name].(map[string]any)
	if !ok {
		return def
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}
