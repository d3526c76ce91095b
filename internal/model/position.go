package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Position optionally references a Company. Updates replace the whole
// document, so an update without a company clears the reference.
type Position struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	ProjectDescription string             `bson:"projectDescription,omitempty" json:"projectDescription,omitempty"`
	Company            primitive.ObjectID `bson:"company,omitempty" json:"company,omitempty"`
	RedFlag            string             `bson:"redFlag,omitempty" json:"redFlag,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (p *Position) GetID() primitive.ObjectID   { return p.ID }
func (p *Position) SetID(id primitive.ObjectID) { p.ID = id }

// PositionResponse is the listing projection. Company and CompanyName are
// empty strings when the position has no (or a dangling) company reference.
type PositionResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	ProjectDescription string `json:"projectDescription"`
	Company            string `json:"company"`
	CompanyName        string `json:"companyName"`
	RedFlag            string `json:"redFlag"`
}
