package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company name is unique within the collection.
type Company struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (c *Company) GetID() primitive.ObjectID   { return c.ID }
func (c *Company) SetID(id primitive.ObjectID) { c.ID = id }

// CompanyResponse is the listing projection.
type CompanyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
