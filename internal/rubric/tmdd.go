package rubric

import "github.com/trafficlab/feedscore/internal/types"

// tmddStandard is the TMDD v3.1 rubric for center-to-center event exchange.
func tmddStandard() Standard {
	return Standard{
		ID:           StandardTMDD,
		Label:        "TMDD v3.1 (Traffic Management Data Dictionary)",
		ReferenceURL: "https://www.ite.org/technical-resources/standards/tmdd/",
		Labels: StatusLabels{
			Compliant:    "TMDD Conformant",
			Partial:      "Partially Conformant",
			NonCompliant: "Non-Conformant",
		},
		Requirements: []Requirement{
			{
				Field:       "id",
				Fallbacks:   []string{"event_id", "eventId", "event-id"},
				SpecField:   "event-reference.event-id",
				Description: "Event reference identifier",
				Severity:    types.SeverityCritical,
			},
			{
				Field:       "coordinates",
				Fallbacks:   []string{"geometry.coordinates", "location.point", "event_location"},
				SpecField:   "event-location.location-on-link.geo-location",
				Description: "Geo-location of the event",
				Severity:    types.SeverityCritical,
				Validator:   ValidatorCoordinates,
			},
			{
				Field:       "startTime",
				Fallbacks:   []string{"start_time", "startDate", "start_date", "event-times.start-time"},
				SpecField:   "event-times.start-time",
				Description: "Event start time",
				Severity:    types.SeverityCritical,
				Format:      FormatISO8601,
			},
			{
				Field:       "eventType",
				Fallbacks:   []string{"event_type", "type", "event-category"},
				SpecField:   "event-indicators.event-type",
				Description: "Event category",
				Severity:    types.SeverityHigh,
				Enum:        []string{"incident", "work-zone", "closure", "weather", "special-event"},
			},
			{
				Field:       "severity",
				Fallbacks:   []string{"event-severity", "impact_level"},
				SpecField:   "event-indicators.event-severity",
				Description: "Event severity classification",
				Severity:    types.SeverityHigh,
				Enum:        []string{"high", "medium", "low"},
			},
			{
				Field:       "roadStatus",
				Fallbacks:   []string{"road_status", "status", "roadway-status"},
				SpecField:   "event-lanes.roadway-status",
				Description: "Roadway operational status",
				Severity:    types.SeverityMedium,
				Enum:        []string{"open", "closed", "partially-closed"},
			},
			{
				Field:       "description",
				Fallbacks:   []string{"headline", "event-description", "summary"},
				SpecField:   "event-descriptions.description",
				Description: "Free-text event description",
				Severity:    types.SeverityMedium,
				MinLength:   10,
			},
			{
				Field:       "state",
				Fallbacks:   []string{"jurisdiction", "owner_state"},
				SpecField:   "event-location.location-on-link.link-ownership",
				Description: "Owning jurisdiction",
				Severity:    types.SeverityMedium,
			},
			{
				Field:       "updateTime",
				Fallbacks:   []string{"update_time", "lastUpdated", "event-times.update-time"},
				SpecField:   "event-times.update-time",
				Description: "Last update time",
				Severity:    types.SeverityMedium,
				Optional:    true,
				Format:      FormatISO8601,
			},
			{
				Field:       "source",
				Fallbacks:   []string{"organization", "center_id"},
				SpecField:   "organization-information.organization-id",
				Description: "Originating center identifier",
				Severity:    types.SeverityMedium,
				Optional:    true,
			},
		},
		Enhancements: []Enhancement{
			{Field: "eventTimeline", Description: "Planned event timeline with scheduled phases"},
			{Field: "linkedEvents", Description: "Cross-references to related events"},
		},
	}
}
