package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RSVPStatusGoing    = "going"
	RSVPStatusMaybe    = "maybe"
	RSVPStatusDeclined = "declined"
)

// ValidRSVPStatus reports whether s is one of the three accepted statuses.
func ValidRSVPStatus(s string) bool {
	return s == RSVPStatusGoing || s == RSVPStatusMaybe || s == RSVPStatusDeclined
}

// At most one RSVP exists per (event, user) pair, backed by a unique
// compound index on event_id + user_id.
type RSVP struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	EventID   bson.ObjectID `json:"eventId"   bson:"event_id"`
	UserID    string        `json:"userId"    bson:"user_id"`
	Status    string        `json:"status"    bson:"status"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
}
