// Package normalize maps free-form feed vocabulary onto the canonical values
// the standard rubrics enumerate. All tables are initialized once and never
// written to after process start.
package normalize

import "strings"

var directionTable = map[string]string{
	"n": "northbound", "north": "northbound", "nb": "northbound",
	"n/b": "northbound", "north-bound": "northbound", "northbound": "northbound",
	"s": "southbound", "south": "southbound", "sb": "southbound",
	"s/b": "southbound", "south-bound": "southbound", "southbound": "southbound",
	"e": "eastbound", "east": "eastbound", "eb": "eastbound",
	"e/b": "eastbound", "east-bound": "eastbound", "eastbound": "eastbound",
	"w": "westbound", "west": "westbound", "wb": "westbound",
	"w/b": "westbound", "west-bound": "westbound", "westbound": "westbound",
	"both": "both", "bi-directional": "both", "bidirectional": "both",
	"all": "both",
}

var severityTable = map[string]string{
	"severe": "high", "major": "high", "critical": "high", "urgent": "high",
	"fatal": "high", "serious": "high", "high": "high",
	"moderate": "medium", "normal": "medium", "injury": "medium",
	"medium": "medium",
	"minor":  "low", "informational": "low", "info": "low", "cleared": "low",
	"low": "low",
}

var roadStatusTable = map[string]string{
	"open": "open", "opened": "open", "normal": "open", "clear": "open",
	"closed": "closed", "closure": "closed", "shut": "closed",
	"impassable": "closed", "blocked": "closed",
	"partial": "partially-closed", "partially closed": "partially-closed",
	"partially-closed": "partially-closed", "restricted": "partially-closed",
	"lane closure": "partially-closed",
}

// eventTypePatterns is checked in order; the first entry with a contained
// keyword wins. Keyword sets follow the incident/closure/construction/weather
// vocabulary observed in upstream feed text.
var eventTypePatterns = []struct {
	keywords   []string
	normalized string
}{
	{[]string{"crash", "accident", "collision", "wreck", "overturn", "rollover", "jackknif", "disabled vehicle", "spill", "debris", "hazard", "incident"}, "incident"},
	{[]string{"construction", "work", "maintenance", "paving", "resurfacing"}, "work-zone"},
	{[]string{"closure", "closed", "blocked", "impassable"}, "closure"},
	{[]string{"snow", "ice", "icy", "fog", "flood", "rain", "storm", "wind", "visibility", "weather"}, "weather"},
	{[]string{"game", "concert", "parade", "festival", "special event", "special-event", "event"}, "special-event"},
}

// Direction maps a free-form direction string to the canonical compass form.
func Direction(s string) string {
	return lookup(s, directionTable)
}

// Severity maps a free-form severity string to high/medium/low.
func Severity(s string) string {
	return lookup(s, severityTable)
}

// RoadStatus maps a free-form road status to open/closed/partially-closed.
func RoadStatus(s string) string {
	return lookup(s, roadStatusTable)
}

// EventType classifies an event type or headline by keyword containment.
func EventType(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return ""
	}
	for _, p := range eventTypePatterns {
		for _, kw := range p.keywords {
			if strings.Contains(key, kw) {
				return p.normalized
			}
		}
	}
	return key
}

// ForField returns the normalizer appropriate to a canonical field name, or
// a trim/lower-case identity for fields with no dedicated vocabulary.
func ForField(canonical string) func(string) string {
	switch canonical {
	case "direction":
		return Direction
	case "severity":
		return Severity
	case "roadStatus":
		return RoadStatus
	case "eventType":
		return EventType
	default:
		return func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	}
}

// separators folds the spacing variants of a key: "north bound" is looked up
// as itself, then "north-bound", then "northbound".
var separators = strings.NewReplacer(" ", "", "-", "")

func lookup(s string, table map[string]string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return ""
	}
	for _, k := range []string{key, strings.ReplaceAll(key, " ", "-"), separators.Replace(key)} {
		if canonical, ok := table[k]; ok {
			return canonical
		}
	}
	return key
}
