// Package validate checks resolved field values against requirement
// constraints. A failed check is a data-quality finding for one
// (event, requirement) pair; it never aborts the batch.
package validate

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/trafficlab/feedscore/internal/normalize"
	"github.com/trafficlab/feedscore/internal/resolve"
	"github.com/trafficlab/feedscore/internal/rubric"
	"github.com/trafficlab/feedscore/internal/types"
)

// Result is the outcome of validating one value against one requirement.
type Result struct {
	Passed     bool
	Normalized string
	Message    string
}

// Field validates a resolved value against a requirement's constraint hints.
// Requirements with no constraints pass once the value is non-empty.
func Field(ev types.TrafficEvent, req rubric.Requirement, value any) Result {
	if types.IsEmpty(value) {
		return Result{Message: "value missing"}
	}
	switch {
	case req.Validator == rubric.ValidatorCoordinates:
		return coordinates(ev, value)
	case len(req.Enum) > 0:
		return enumerated(req, value)
	case req.Format == rubric.FormatISO8601:
		return timestamp(value)
	case req.MinLength > 0:
		return minLength(req.MinLength, value)
	default:
		return Result{Passed: true, Normalized: strings.TrimSpace(types.Stringify(value))}
	}
}

// coordinates accepts an ordered [lon, lat] pair, an object with lon/lng/
// longitude and lat/latitude keys, or a "lat,lon" string. When the value
// itself cannot be parsed, the event's separate latitude/longitude scalars
// are tried. [0,0] is rejected as an absent-location sentinel.
func coordinates(ev types.TrafficEvent, value any) Result {
	lat, lon, ok := parseCoordinates(value)
	if !ok {
		lat, lon, ok = scalarCoordinates(ev)
	}
	if !ok {
		return Result{Message: "coordinates not parseable"}
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Result{Message: "coordinates not finite"}
	}
	if lat == 0 || lon == 0 {
		return Result{Message: "zero coordinate treated as missing location"}
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Result{Message: "coordinates out of range"}
	}
	return Result{
		Passed:     true,
		Normalized: strconv.FormatFloat(lon, 'f', -1, 64) + "," + strconv.FormatFloat(lat, 'f', -1, 64),
	}
}

func parseCoordinates(value any) (lat, lon float64, ok bool) {
	switch v := value.(type) {
	case []any:
		if len(v) < 2 {
			return 0, 0, false
		}
		lon, lonOK := toFloat(v[0])
		lat, latOK := toFloat(v[1])
		return lat, lon, lonOK && latOK
	case map[string]any:
		lon, lonOK := firstFloat(v, "lon", "lng", "longitude")
		lat, latOK := firstFloat(v, "lat", "latitude")
		return lat, lon, lonOK && latOK
	case string:
		parts := strings.Split(v, ",")
		if len(parts) < 2 {
			return 0, 0, false
		}
		lat, latOK := toFloat(strings.TrimSpace(parts[0]))
		lon, lonOK := toFloat(strings.TrimSpace(parts[1]))
		return lat, lon, latOK && lonOK
	default:
		return 0, 0, false
	}
}

func scalarCoordinates(ev types.TrafficEvent) (lat, lon float64, ok bool) {
	latVal, latOK := resolve.Lookup(ev, "latitude")
	lonVal, lonOK := resolve.Lookup(ev, "longitude")
	if !latOK || !lonOK {
		return 0, 0, false
	}
	lat, latOK = toFloat(latVal)
	lon, lonOK = toFloat(lonVal)
	return lat, lon, latOK && lonOK
}

func firstFloat(m map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if f, fok := toFloat(v); fok {
				return f, true
			}
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// enumerated normalizes the value with the field-appropriate vocabulary, then
// tests membership case-insensitively across hyphen/space variants on both
// sides.
func enumerated(req rubric.Requirement, value any) Result {
	if seq, ok := value.([]any); ok {
		if len(seq) == 0 {
			return Result{Message: "value missing"}
		}
		value = seq[0]
	}
	normalizer := normalize.ForField(resolve.Canonical(req.Field))
	normalized := normalizer(types.Stringify(value))
	for _, candidate := range variants(normalized) {
		for _, allowed := range req.Enum {
			for _, allowedVariant := range variants(allowed) {
				if strings.EqualFold(candidate, allowedVariant) {
					return Result{Passed: true, Normalized: normalized}
				}
			}
		}
	}
	return Result{
		Normalized: normalized,
		Message:    "value " + strconv.Quote(normalized) + " not in allowed set",
	}
}

var separators = strings.NewReplacer(" ", "", "-", "")

func variants(s string) []string {
	return []string{
		s,
		strings.ReplaceAll(s, " ", "-"),
		strings.ReplaceAll(s, "-", " "),
		separators.Replace(s),
	}
}

// timestampLayouts are tried in order; the first successful parse wins.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func timestamp(value any) Result {
	if seq, ok := value.([]any); ok {
		if len(seq) == 0 {
			return Result{Message: "value missing"}
		}
		value = seq[0]
	}
	s := strings.TrimSpace(types.Stringify(value))
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return Result{Passed: true, Normalized: s}
		}
	}
	return Result{Normalized: s, Message: "timestamp not ISO-8601"}
}

func minLength(min int, value any) Result {
	s := strings.TrimSpace(types.Stringify(value))
	if len(s) < min {
		return Result{Normalized: s, Message: "shorter than minimum length " + strconv.Itoa(min)}
	}
	return Result{Passed: true, Normalized: s}
}
