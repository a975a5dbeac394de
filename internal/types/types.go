// Package types provides shared types used across the feedscore codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Severity level constants.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
)

// Value track constants. A feed value can be seen three ways: exactly as
// received, as recovered by free-text extraction, or after fallback/inference.
const (
	TrackRaw        = "raw"
	TrackExtracted  = "extracted"
	TrackNormalized = "normalized"
)

// FieldTrack holds up to three parallel views of one field value.
type FieldTrack struct {
	Raw        any `json:"raw,omitempty" yaml:"raw,omitempty"`
	Extracted  any `json:"extracted,omitempty" yaml:"extracted,omitempty"`
	Normalized any `json:"normalized,omitempty" yaml:"normalized,omitempty"`
}

// RawValue returns what the feed actually provided: the raw value, falling
// back to the extracted value when raw is absent. The normalized track is
// deliberately excluded: it holds inferred values, and treating those as
// received would collapse the strict/lenient score distinction.
func (t FieldTrack) RawValue() (any, bool) {
	for _, v := range []any{t.Raw, t.Extracted} {
		if !IsEmpty(v) {
			return v, true
		}
	}
	return nil, false
}

// ExtractedValue returns the text-extracted view, if present.
func (t FieldTrack) ExtractedValue() (any, bool) {
	if IsEmpty(t.Extracted) {
		return nil, false
	}
	return t.Extracted, true
}

// NormalizedValue returns the inferred/normalized view, if present.
func (t FieldTrack) NormalizedValue() (any, bool) {
	if IsEmpty(t.Normalized) {
		return nil, false
	}
	return t.Normalized, true
}

// TrafficEvent is one heterogeneous event record from an upstream feed.
// Fields is an open mapping: values may be scalars, nested mappings, or
// ordered pairs (coordinates). RawFields, when present, carries per-field
// three-track values keyed by canonical field name.
type TrafficEvent struct {
	Fields    map[string]any
	RawFields map[string]FieldTrack
}

// UnmarshalJSON splits the reserved rawFields key out of the open mapping.
func (e *TrafficEvent) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	e.fromMap(m)
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML-encoded feeds.
func (e *TrafficEvent) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]any
	if err := value.Decode(&m); err != nil {
		return err
	}
	e.fromMap(m)
	return nil
}

func (e *TrafficEvent) fromMap(m map[string]any) {
	if rf, ok := m["rawFields"].(map[string]any); ok {
		delete(m, "rawFields")
		e.RawFields = make(map[string]FieldTrack, len(rf))
		for name, v := range rf {
			entry, ok := v.(map[string]any)
			if !ok {
				continue
			}
			e.RawFields[name] = FieldTrack{
				Raw:        entry["raw"],
				Extracted:  entry["extracted"],
				Normalized: entry["normalized"],
			}
		}
	}
	e.Fields = m
}

// ID returns the event identifier for reporting, trying the common
// identifier spellings.
func (e TrafficEvent) ID() string {
	for _, key := range []string{"id", "event_id", "eventId"} {
		if v, ok := e.Fields[key]; ok && !IsEmpty(v) {
			return Stringify(v)
		}
	}
	return "unknown"
}

// State returns the two-letter state code for reporting, when present.
func (e TrafficEvent) State() string {
	if v, ok := e.Fields["state"]; ok && !IsEmpty(v) {
		return Stringify(v)
	}
	return ""
}

// IsEmpty reports whether a value counts as missing: nil, or a string that is
// empty after trimming whitespace.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// Stringify renders a scalar value for display and comparison.
func Stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return strings.Trim(string(b), `"`)
	}
}
