package rubric

import "github.com/trafficlab/feedscore/internal/types"

// wzdxStandard is the Work Zone Data Exchange v4.2 rubric.
func wzdxStandard() Standard {
	return Standard{
		ID:           StandardWZDx,
		Label:        "WZDx v4.2 (Work Zone Data Exchange)",
		ReferenceURL: "https://github.com/usdot-jpo-ode/wzdx",
		Labels: StatusLabels{
			Compliant:    "Compliant",
			Partial:      "Partially Compliant",
			NonCompliant: "Non-Compliant",
		},
		Requirements: []Requirement{
			{
				Field:       "id",
				Fallbacks:   []string{"event_id", "eventId", "properties.core_details.id"},
				SpecField:   "road_events[].id",
				Description: "Unique road event identifier",
				Severity:    types.SeverityCritical,
			},
			{
				Field:       "coordinates",
				Fallbacks:   []string{"geometry.coordinates", "location.coordinates"},
				SpecField:   "road_events[].geometry.coordinates",
				Description: "Event location as a GeoJSON coordinate pair",
				Severity:    types.SeverityCritical,
				Validator:   ValidatorCoordinates,
			},
			{
				Field:       "startTime",
				Fallbacks:   []string{"start_date", "startDate", "start_time", "properties.start_date"},
				SpecField:   "road_events[].start_date",
				Description: "Event start time in ISO-8601 format",
				Severity:    types.SeverityCritical,
				Format:      FormatISO8601,
			},
			{
				Field:       "eventType",
				Fallbacks:   []string{"event_type", "type"},
				SpecField:   "road_events[].event_type",
				Description: "Road event type",
				Severity:    types.SeverityHigh,
				Enum:        []string{"work-zone", "detour", "incident", "closure", "weather", "special-event"},
			},
			{
				Field:       "roadStatus",
				Fallbacks:   []string{"road_status", "status", "vehicle_impact"},
				SpecField:   "road_events[].vehicle_impact",
				Description: "Impact on traffic flow",
				Severity:    types.SeverityHigh,
				Enum:        []string{"open", "closed", "partially-closed"},
			},
			{
				Field:       "direction",
				Fallbacks:   []string{"heading", "properties.core_details.direction"},
				SpecField:   "road_events[].core_details.direction",
				Description: "Direction of travel affected",
				Severity:    types.SeverityMedium,
				Enum:        []string{"northbound", "southbound", "eastbound", "westbound", "both"},
			},
			{
				Field:       "endTime",
				Fallbacks:   []string{"end_date", "endDate", "end_time"},
				SpecField:   "road_events[].end_date",
				Description: "Anticipated event end time",
				Severity:    types.SeverityMedium,
				Format:      FormatISO8601,
			},
			{
				Field:       "description",
				Fallbacks:   []string{"headline", "summary", "properties.core_details.description"},
				SpecField:   "road_events[].core_details.description",
				Description: "Human-readable event description",
				Severity:    types.SeverityMedium,
				MinLength:   10,
			},
			{
				Field:       "corridor",
				Fallbacks:   []string{"road_names", "roadName", "route"},
				SpecField:   "road_events[].core_details.road_names",
				Description: "Affected road or corridor name",
				Severity:    types.SeverityMedium,
			},
			{
				Field:       "lanesClosed",
				Fallbacks:   []string{"lanes_closed", "lanes_affected", "lanes"},
				SpecField:   "road_events[].lanes",
				Description: "Lane-level closure detail",
				Severity:    types.SeverityMedium,
				Optional:    true,
			},
			{
				Field:       "updateTime",
				Fallbacks:   []string{"update_date", "lastUpdated", "updated_at"},
				SpecField:   "road_events[].core_details.update_date",
				Description: "Time the record was last updated",
				Severity:    types.SeverityMedium,
				Optional:    true,
				Format:      FormatISO8601,
			},
			{
				Field:       "source",
				Fallbacks:   []string{"data_source_id", "feed_source"},
				SpecField:   "feed_info.data_sources[].data_source_id",
				Description: "Originating data source identifier",
				Severity:    types.SeverityMedium,
				Optional:    true,
			},
		},
		Enhancements: []Enhancement{
			{Field: "workersPresent", Description: "Flag indicating workers are present in the work zone"},
			{Field: "reducedSpeedLimit", Description: "Posted reduced speed limit within the event extent"},
			{Field: "restrictions", Description: "Vehicle restrictions (width, height, weight) in effect"},
		},
	}
}
