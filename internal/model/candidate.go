package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Candidate is an interviewing-side principal.
type Candidate struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Password  string             `bson:"password" json:"-"`
	Deleted   bool               `bson:"deleted" json:"deleted"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (c *Candidate) GetID() primitive.ObjectID   { return c.ID }
func (c *Candidate) SetID(id primitive.ObjectID) { c.ID = id }

// CandidateResponse is the admin listing projection.
type CandidateResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}
