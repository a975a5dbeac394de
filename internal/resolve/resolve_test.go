package resolve

import (
	"reflect"
	"testing"

	"github.com/trafficlab/feedscore/internal/rubric"
	"github.com/trafficlab/feedscore/internal/types"
)

func event(fields map[string]any) types.TrafficEvent {
	return types.TrafficEvent{Fields: fields}
}

func TestLookup(t *testing.T) {
	ev := event(map[string]any{
		"id": "evt-1",
		"geometry": map[string]any{
			"coordinates": []any{-93.6, 41.59},
		},
		"road_names": []any{"I-80", "US-6"},
		"blank":      "   ",
	})

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{"plain key", "id", "evt-1", true},
		{"dotted path", "geometry.coordinates", []any{-93.6, 41.59}, true},
		{"indexed path", "road_names[1]", "US-6", true},
		{"index out of range", "road_names[5]", nil, false},
		{"missing intermediate", "location.point", nil, false},
		{"missing key", "nope", nil, false},
		{"whitespace-only is missing", "blank", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(ev, tt.path)
			if ok != tt.wantOK || !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lookup(%q) = (%v, %v), want (%v, %v)", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestValueFallbackOrder(t *testing.T) {
	req := rubric.Requirement{Field: "startTime", Fallbacks: []string{"start_date", "start_time"}}

	ev := event(map[string]any{"start_time": "late", "start_date": "early"})
	got, ok := Value(ev, req)
	if !ok || got != "early" {
		t.Errorf("Value() = (%v, %v), want first fallback to win", got, ok)
	}

	primary := event(map[string]any{"startTime": "primary", "start_date": "early"})
	got, _ = Value(primary, req)
	if got != "primary" {
		t.Errorf("Value() = %v, want primary field to win", got)
	}

	if _, ok := Value(event(map[string]any{}), req); ok {
		t.Error("Value() should miss when nothing resolves")
	}
}

func TestValueCoordinateSynthesis(t *testing.T) {
	req := rubric.Requirement{Field: "coordinates", Fallbacks: []string{"geometry.coordinates"}}

	// Separate scalars synthesize a GeoJSON-ordered pair.
	ev := event(map[string]any{"latitude": 41.59, "longitude": -93.6})
	got, ok := Value(ev, req)
	if !ok {
		t.Fatal("Value() should synthesize from latitude/longitude")
	}
	pair, isPair := got.([]any)
	if !isPair || len(pair) != 2 || pair[0] != -93.6 || pair[1] != 41.59 {
		t.Errorf("Value() = %v, want [lon, lat] order", got)
	}

	// A degenerate one-element pair falls through to the scalars.
	degenerate := event(map[string]any{
		"coordinates": []any{-93.6},
		"latitude":    41.59,
		"longitude":   -93.6,
	})
	got, ok = Value(degenerate, req)
	if !ok {
		t.Fatal("Value() should fall back past a degenerate pair")
	}
	if pair, _ := got.([]any); len(pair) != 2 {
		t.Errorf("Value() = %v, want synthesized 2-element pair", got)
	}

	// A comma string is handed to the validator as-is.
	str := event(map[string]any{"coordinates": "41.59,-93.6"})
	got, ok = Value(str, req)
	if !ok || got != "41.59,-93.6" {
		t.Errorf("Value() = (%v, %v), want the comma string", got, ok)
	}

	// A candidate found by name beats scalar synthesis.
	named := event(map[string]any{
		"coordinates": "41.59,-93.6",
		"latitude":    40.0,
		"longitude":   -90.0,
	})
	got, ok = Value(named, req)
	if !ok || got != "41.59,-93.6" {
		t.Errorf("Value() = (%v, %v), want the named candidate over synthesis", got, ok)
	}
}

func TestRawValueCanonicalMapping(t *testing.T) {
	ev := types.TrafficEvent{
		Fields: map[string]any{},
		RawFields: map[string]types.FieldTrack{
			"eventType":  {Raw: "CONSTRUCTION"},
			"roadStatus": {Extracted: "closed"},
			"startTime":  {Normalized: "2024-03-01T08:00:00Z"},
		},
	}

	// "type" maps to the canonical eventType entry.
	got, ok := RawValue(ev, rubric.Requirement{Field: "type"})
	if !ok || got != "CONSTRUCTION" {
		t.Errorf("RawValue(type) = (%v, %v), want CONSTRUCTION", got, ok)
	}

	// "status" maps to roadStatus; extracted backs up an absent raw.
	got, ok = RawValue(ev, rubric.Requirement{Field: "status"})
	if !ok || got != "closed" {
		t.Errorf("RawValue(status) = (%v, %v), want closed", got, ok)
	}

	// A normalized-only track is not something the feed provided.
	if _, ok := RawValue(ev, rubric.Requirement{Field: "startTime"}); ok {
		t.Error("RawValue(startTime) should miss for a normalized-only track")
	}

	// No rawFields at all.
	bare := types.TrafficEvent{Fields: map[string]any{"type": "incident"}}
	if _, ok := RawValue(bare, rubric.Requirement{Field: "type"}); ok {
		t.Error("RawValue() should miss when rawFields is absent")
	}
}

func TestNormalizedValueFallsBackToTrack(t *testing.T) {
	ev := types.TrafficEvent{
		Fields: map[string]any{},
		RawFields: map[string]types.FieldTrack{
			"startTime": {Normalized: "2024-03-01T08:00:00Z"},
		},
	}
	req := rubric.Requirement{Field: "startTime", Fallbacks: []string{"start_date"}}

	got, ok := NormalizedValue(ev, req)
	if !ok || got != "2024-03-01T08:00:00Z" {
		t.Errorf("NormalizedValue() = (%v, %v), want the inferred track value", got, ok)
	}

	// Plain resolution wins over the track.
	ev.Fields["start_date"] = "2024-04-01"
	got, _ = NormalizedValue(ev, req)
	if got != "2024-04-01" {
		t.Errorf("NormalizedValue() = %v, want field resolution to win", got)
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"type", "eventType"},
		{"status", "roadStatus"},
		{"start_date", "startTime"},
		{"heading", "direction"},
		{"unmapped", "unmapped"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := Canonical(tt.field); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}
