package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eventplanner/model"
)

// InsertUser creates a profile document, mapping the duplicate-key
// error (11000) on the unique email index to ErrEmailTaken.
func InsertUser(ctx context.Context, usersCol *mongo.Collection, user model.UserProfile) (bson.ObjectID, error) {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	_, err := usersCol.InsertOne(ctx, user)
	if err == nil {
		return user.ID, nil
	}
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return bson.NilObjectID, model.ErrEmailTaken
	}
	return bson.NilObjectID, err
}

func FetchUserByEmail(ctx context.Context, usersCol *mongo.Collection, email string) (model.UserProfile, error) {
	var user model.UserProfile
	err := usersCol.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.UserProfile{}, model.ErrUserNotFound
	}
	return user, err
}

func FetchUserByID(ctx context.Context, usersCol *mongo.Collection, id bson.ObjectID) (model.UserProfile, error) {
	var user model.UserProfile
	err := usersCol.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.UserProfile{}, model.ErrUserNotFound
	}
	return user, err
}

// FetchUsersByIDs resolves a batch of profile ids, keyed by hex id.
// Missing profiles are simply absent from the map, never an error.
func FetchUsersByIDs(ctx context.Context, usersCol *mongo.Collection, ids []bson.ObjectID) (map[string]model.UserProfile, error) {
	users := make(map[string]model.UserProfile, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	cursor, err := usersCol.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var user model.UserProfile
		if err := cursor.Decode(&user); err != nil {
			return nil, err
		}
		users[user.ID.Hex()] = user
	}
	return users, cursor.Err()
}
