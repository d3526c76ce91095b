package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin accounts are not self-service; they are seeded at startup.
type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func (a *Admin) GetID() primitive.ObjectID   { return a.ID }
func (a *Admin) SetID(id primitive.ObjectID) { a.ID = id }
