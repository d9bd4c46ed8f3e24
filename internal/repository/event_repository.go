package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"eventplanner/model"
)

// FetchEventsByDate returns every event ordered by date ascending,
// the same ordering the live event query uses.
func FetchEventsByDate(ctx context.Context, eventsCol *mongo.Collection) ([]model.Event, error) {
	cursor, err := eventsCol.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []model.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func FetchEventByID(ctx context.Context, eventsCol *mongo.Collection, id bson.ObjectID) (model.Event, error) {
	var event model.Event
	err := eventsCol.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Event{}, model.ErrEventNotFound
	}
	return event, err
}

func InsertEvent(ctx context.Context, eventsCol *mongo.Collection, event model.Event) (bson.ObjectID, error) {
	if event.ID.IsZero() {
		event.ID = bson.NewObjectID()
	}
	_, err := eventsCol.InsertOne(ctx, event)
	return event.ID, err
}

// UpdateEvent overwrites the editable fields and stamps updated_at.
// created_by and created_at are never touched by an edit.
func UpdateEvent(ctx context.Context, eventsCol *mongo.Collection, id bson.ObjectID, fields model.Event) error {
	now := time.Now().UTC()
	res, err := eventsCol.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"title":       fields.Title,
		"description": fields.Description,
		"date":        fields.Date,
		"start_time":  fields.StartTime,
		"end_time":    fields.EndTime,
		"location":    fields.Location,
		"updated_at":  now,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrEventNotFound
	}
	return nil
}

func DeleteEvent(ctx context.Context, eventsCol *mongo.Collection, id bson.ObjectID) error {
	res, err := eventsCol.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrEventNotFound
	}
	return nil
}
