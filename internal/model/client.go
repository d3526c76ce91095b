package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is a hiring-side principal. Company is an optional reference into
// the companies collection; Password always holds a bcrypt hash.
type Client struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Password  string             `bson:"password" json:"-"`
	Company   primitive.ObjectID `bson:"company,omitempty" json:"company,omitempty"`
	RedFlag   string             `bson:"redFlag,omitempty" json:"redFlag,omitempty"`
	Deleted   bool               `bson:"deleted" json:"deleted"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (c *Client) GetID() primitive.ObjectID   { return c.ID }
func (c *Client) SetID(id primitive.ObjectID) { c.ID = id }

// ClientResponse is the admin listing projection. Company is resolved to an
// embedded reference, null when the client has none.
type ClientResponse struct {
	ID        string      `json:"id"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Company   *CompanyRef `json:"company"`
	RedFlag   string      `json:"redFlag"`
}

// CompanyRef is the embedded {id, name} form used when resolving company
// references in listings.
type CompanyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
