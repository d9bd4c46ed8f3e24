package dto

import "eventplanner/model"

type EventRequestDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
}

type EventCreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// RSVPSummary is the per-event attendance breakdown. Every status
// outside the enum is excluded from the named counts but still part
// of total; validated writes keep the two in agreement.
type RSVPSummary struct {
	Going    int `json:"going"`
	Maybe    int `json:"maybe"`
	Declined int `json:"declined"`
	Total    int `json:"total"`
}

// EventDetailResponse is the read-only detail view. Attendees is
// filled only for admin callers.
type EventDetailResponse struct {
	Event     model.Event     `json:"event"`
	Summary   RSVPSummary     `json:"summary"`
	UserRSVP  *model.RSVP     `json:"userRsvp,omitempty"`
	Attendees []AttendeeGroup `json:"attendees,omitempty"`
}

// AttendeeGroup lists the display names of everyone who answered
// with one status, the way the admin detail view groups them.
type AttendeeGroup struct {
	Status string   `json:"status"`
	Count  int      `json:"count"`
	Names  []string `json:"names"`
}
