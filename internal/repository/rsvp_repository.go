package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"eventplanner/model"
)

// UpsertRSVP creates or updates the caller's RSVP for an event in a
// single store call keyed by the (event_id, user_id) pair. The unique
// compound index makes two rapid submissions converge on one document.
func UpsertRSVP(ctx context.Context, rsvpsCol *mongo.Collection, eventID bson.ObjectID, userID, status string) error {
	now := time.Now().UTC()
	_, err := rsvpsCol.UpdateOne(ctx,
		bson.M{"event_id": eventID, "user_id": userID},
		bson.M{
			"$set":         bson.M{"status": status, "updated_at": now},
			"$setOnInsert": bson.M{"event_id": eventID, "user_id": userID, "created_at": now},
		},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

func FetchAllRSVPs(ctx context.Context, rsvpsCol *mongo.Collection) ([]model.RSVP, error) {
	return fetchRSVPs(ctx, rsvpsCol, bson.D{})
}

func FetchRSVPsForUser(ctx context.Context, rsvpsCol *mongo.Collection, userID string) ([]model.RSVP, error) {
	return fetchRSVPs(ctx, rsvpsCol, bson.M{"user_id": userID})
}

func FetchRSVPsForEvent(ctx context.Context, rsvpsCol *mongo.Collection, eventID bson.ObjectID) ([]model.RSVP, error) {
	return fetchRSVPs(ctx, rsvpsCol, bson.M{"event_id": eventID})
}

func fetchRSVPs(ctx context.Context, rsvpsCol *mongo.Collection, filter any) ([]model.RSVP, error) {
	cursor, err := rsvpsCol.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rsvps []model.RSVP
	if err := cursor.All(ctx, &rsvps); err != nil {
		return nil, err
	}
	return rsvps, nil
}

// DeleteRSVPsByEvent removes every RSVP referencing the event. Safe to
// repeat: a second call after a partial failure deletes the remainder.
func DeleteRSVPsByEvent(ctx context.Context, rsvpsCol *mongo.Collection, eventID bson.ObjectID) (int64, error) {
	res, err := rsvpsCol.DeleteMany(ctx, bson.M{"event_id": eventID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
