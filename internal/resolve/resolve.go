// Package resolve locates requirement values inside heterogeneous traffic
// events. Field names may be plain keys, dotted paths, or dotted paths with a
// trailing index ("geometry.coordinates[0]"); missing segments yield a miss,
// never an error.
package resolve

import (
	"strconv"
	"strings"

	"github.com/trafficlab/feedscore/internal/rubric"
	"github.com/trafficlab/feedscore/internal/types"
)

// Value resolves a requirement against an event: the primary field first,
// then each fallback in order. The first non-empty candidate wins. For the
// coordinates field, separate latitude/longitude scalars are synthesized into
// a [lon, lat] pair when no ordered pair is found.
func Value(ev types.TrafficEvent, req rubric.Requirement) (any, bool) {
	paths := append([]string{req.Field}, req.Fallbacks...)
	if Canonical(req.Field) == "coordinates" {
		return coordinateValue(ev, paths)
	}
	for _, path := range paths {
		if v, ok := Lookup(ev, path); ok {
			return v, true
		}
	}
	return nil, false
}

// coordinateValue prefers an ordered pair with at least two elements, then
// the first non-pair candidate found by name (comma strings, lon/lat objects,
// left for the validator to parse). Separate latitude/longitude scalars are
// synthesized into a pair only when no named candidate resolves; a degenerate
// sequence is skipped, not returned.
func coordinateValue(ev types.TrafficEvent, paths []string) (any, bool) {
	var other any
	haveOther := false
	for _, path := range paths {
		v, ok := Lookup(ev, path)
		if !ok {
			continue
		}
		if seq, isSeq := v.([]any); isSeq {
			if len(seq) >= 2 {
				return v, true
			}
			continue
		}
		if !haveOther {
			other, haveOther = v, true
		}
	}
	if haveOther {
		return other, true
	}
	if pair, ok := coordinatePair(ev); ok {
		return pair, true
	}
	return nil, false
}

// NormalizedValue resolves the lenient view of a requirement: the plain
// field resolution first, then the inferred value stored on the event's
// normalized track.
func NormalizedValue(ev types.TrafficEvent, req rubric.Requirement) (any, bool) {
	if v, ok := Value(ev, req); ok {
		return v, true
	}
	track, ok := ev.RawFields[Canonical(req.Field)]
	if !ok {
		return nil, false
	}
	return track.NormalizedValue()
}

// RawValue resolves the raw-as-received view of a requirement through the
// event's rawFields entry for the canonical field name. Absent rawFields, or
// an absent entry, yield a miss.
func RawValue(ev types.TrafficEvent, req rubric.Requirement) (any, bool) {
	track, ok := ev.RawFields[Canonical(req.Field)]
	if !ok {
		return nil, false
	}
	return track.RawValue()
}

// ExtractedValue resolves the text-extracted view of a requirement.
func ExtractedValue(ev types.TrafficEvent, req rubric.Requirement) (any, bool) {
	track, ok := ev.RawFields[Canonical(req.Field)]
	if !ok {
		return nil, false
	}
	return track.ExtractedValue()
}

// Lookup walks a dotted/indexed path through the event's open field mapping.
func Lookup(ev types.TrafficEvent, path string) (any, bool) {
	var cur any = ev.Fields
	for _, segment := range strings.Split(path, ".") {
		key, idx, hasIdx := splitSegment(segment)
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
		if hasIdx {
			seq, ok := cur.([]any)
			if !ok || idx >= len(seq) {
				return nil, false
			}
			cur = seq[idx]
		}
	}
	if types.IsEmpty(cur) {
		return nil, false
	}
	return cur, true
}

// splitSegment separates a trailing [n] index from a path segment.
func splitSegment(segment string) (key string, idx int, hasIdx bool) {
	open := strings.IndexByte(segment, '[')
	if open < 0 || !strings.HasSuffix(segment, "]") {
		return segment, 0, false
	}
	n, err := strconv.Atoi(segment[open+1 : len(segment)-1])
	if err != nil || n < 0 {
		return segment, 0, false
	}
	return segment[:open], n, true
}

// coordinatePair synthesizes a GeoJSON-ordered [lon, lat] pair from separate
// latitude/longitude scalar properties.
func coordinatePair(ev types.TrafficEvent) ([]any, bool) {
	lat, latOK := Lookup(ev, "latitude")
	lon, lonOK := Lookup(ev, "longitude")
	if !latOK || !lonOK {
		return nil, false
	}
	return []any{lon, lat}, true
}
