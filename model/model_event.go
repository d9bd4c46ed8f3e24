package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Event documents keep date and times as strings ("2006-01-02", "15:04")
// so they compare and sort the same way the store orders them.
type Event struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	Title       string        `json:"title"       bson:"title"`
	Description string        `json:"description" bson:"description"`
	Date        string        `json:"date"        bson:"date"`
	StartTime   string        `json:"startTime"   bson:"start_time"`
	EndTime     string        `json:"endTime"     bson:"end_time"`
	Location    string        `json:"location"    bson:"location"`
	CreatedBy   string        `json:"createdBy"   bson:"created_by"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"created_at"`
	UpdatedAt   *time.Time    `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
}
