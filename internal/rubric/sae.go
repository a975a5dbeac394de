package rubric

import "github.com/trafficlab/feedscore/internal/types"

// saeStandard is the SAE J2735 rubric, scoped to the traveler-information
// fields a V2X broadcast needs from an event feed.
func saeStandard() Standard {
	return Standard{
		ID:           StandardSAE,
		Label:        "SAE J2735 (V2X Message Set)",
		ReferenceURL: "https://www.sae.org/standards/content/j2735_202309/",
		Labels: StatusLabels{
			Compliant:    "V2X Ready",
			Partial:      "Partial Support",
			NonCompliant: "Limited Support",
		},
		Requirements: []Requirement{
			{
				Field:       "id",
				Fallbacks:   []string{"event_id", "eventId", "msgId"},
				SpecField:   "TravelerInformation.msgId",
				Description: "Message identifier",
				Severity:    types.SeverityCritical,
			},
			{
				Field:       "coordinates",
				Fallbacks:   []string{"anchor", "geometry.coordinates", "position"},
				SpecField:   "TravelerInformation.dataFrames[].regions[].anchor",
				Description: "Anchor position for the affected region",
				Severity:    types.SeverityCritical,
				Validator:   ValidatorCoordinates,
			},
			{
				Field:       "startTime",
				Fallbacks:   []string{"start_time", "startDate", "start_date"},
				SpecField:   "TravelerInformation.dataFrames[].startTime",
				Description: "Frame start time",
				Severity:    types.SeverityCritical,
				Format:      FormatISO8601,
			},
			{
				Field:       "eventType",
				Fallbacks:   []string{"event_type", "type", "itis_code"},
				SpecField:   "TravelerInformation.dataFrames[].content.advisory",
				Description: "ITIS-codeable event category",
				Severity:    types.SeverityHigh,
				Enum:        []string{"incident", "work-zone", "closure", "weather", "special-event"},
			},
			{
				Field:       "severity",
				Fallbacks:   []string{"priority", "impact"},
				SpecField:   "TravelerInformation.dataFrames[].priority",
				Description: "Event severity driving message priority",
				Severity:    types.SeverityHigh,
				Enum:        []string{"high", "medium", "low"},
			},
			{
				Field:       "direction",
				Fallbacks:   []string{"heading", "directionality"},
				SpecField:   "TravelerInformation.dataFrames[].regions[].directionality",
				Description: "Direction of the affected heading slice",
				Severity:    types.SeverityMedium,
				Enum:        []string{"northbound", "southbound", "eastbound", "westbound", "both"},
			},
			{
				Field:       "endTime",
				Fallbacks:   []string{"end_time", "endDate", "end_date", "durationTime"},
				SpecField:   "TravelerInformation.dataFrames[].durationTime",
				Description: "Frame duration end",
				Severity:    types.SeverityMedium,
				Format:      FormatISO8601,
			},
			{
				Field:       "description",
				Fallbacks:   []string{"headline", "advisory_text", "summary"},
				SpecField:   "TravelerInformation.dataFrames[].content.advisory.item",
				Description: "Advisory text",
				Severity:    types.SeverityMedium,
				MinLength:   10,
			},
			{
				Field:       "lanesClosed",
				Fallbacks:   []string{"lanes_closed", "lanes_affected", "closedLanes"},
				SpecField:   "TravelerInformation.dataFrames[].regions[].laneWidth",
				Description: "Closed-lane detail for in-vehicle display",
				Severity:    types.SeverityMedium,
				Optional:    true,
			},
			{
				Field:       "corridor",
				Fallbacks:   []string{"road_names", "roadName", "route"},
				SpecField:   "TravelerInformation.dataFrames[].regions[].name",
				Description: "Named region or corridor",
				Severity:    types.SeverityMedium,
				Optional:    true,
			},
		},
		Enhancements: []Enhancement{
			{Field: "itisCodes", Description: "Explicit ITIS code list per advisory"},
			{Field: "heading", Description: "Heading slice bitmask for directional broadcast"},
		},
	}
}
