package resolve

// canonicalNames maps requirement field names and their common synonyms onto
// the canonical field set used to key TrafficEvent.RawFields. Names already
// canonical map to themselves so lookups never miss.
var canonicalNames = map[string]string{
	"id":           "id",
	"event_id":     "id",
	"eventId":      "id",
	"type":         "eventType",
	"event_type":   "eventType",
	"eventType":    "eventType",
	"status":       "roadStatus",
	"road_status":  "roadStatus",
	"roadStatus":   "roadStatus",
	"severity":     "severity",
	"direction":    "direction",
	"heading":      "direction",
	"coordinates":  "coordinates",
	"geometry":     "coordinates",
	"startTime":    "startTime",
	"start_time":   "startTime",
	"startDate":    "startTime",
	"start_date":   "startTime",
	"endTime":      "endTime",
	"end_time":     "endTime",
	"endDate":      "endTime",
	"end_date":     "endTime",
	"description":  "description",
	"headline":     "description",
	"state":        "state",
	"lanesClosed":  "lanesClosed",
	"lanes_closed": "lanesClosed",
	"corridor":     "corridor",
	"roadName":     "corridor",
	"source":       "source",
	"updateTime":   "updateTime",
	"update_time":  "updateTime",
}

// Canonical maps a requirement field name to its canonical form, returning
// the input unchanged when no synonym entry exists.
func Canonical(field string) string {
	if c, ok := canonicalNames[field]; ok {
		return c
	}
	return field
}
