package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type UserProfile struct {
	ID           bson.ObjectID `json:"uid"       bson:"_id,omitempty"`
	Name         string        `json:"name"      bson:"name"`
	Email        string        `json:"email"     bson:"email"`
	Role         string        `json:"role"      bson:"role"`
	PasswordHash string        `json:"-"         bson:"password_hash"`
	CreatedAt    time.Time     `json:"createdAt" bson:"created_at"`
}
