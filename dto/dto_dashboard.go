package dto

import "eventplanner/model"

// AdminEventCard pairs an upcoming event with its attendance summary.
type AdminEventCard struct {
	Event   model.Event `json:"event"`
	Summary RSVPSummary `json:"summary"`
}

type AdminDashboardResponse struct {
	Events []AdminEventCard `json:"events"`
}

// UserEventCard carries the caller's own RSVP status next to the event,
// empty string when they have not responded.
type UserEventCard struct {
	Event      model.Event `json:"event"`
	RSVPStatus string      `json:"rsvpStatus,omitempty"`
}

type UserDashboardResponse struct {
	View   string          `json:"view"`
	Events []UserEventCard `json:"events"`
}
