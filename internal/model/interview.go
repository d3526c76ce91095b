package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewStatus is the admin-driven review state of an interview record.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Interview is submitted by the external interviewing service. CandidateID
// and PositionID are plain strings, not enforced foreign keys; Summary and
// Transcript are opaque payloads stored as-is. Records are never deleted.
type Interview struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PositionName        string             `bson:"positionName" json:"positionName"`
	CandidateID         string             `bson:"candidateId" json:"candidateId"`
	Email               string             `bson:"email" json:"email"`
	InterviewID         string             `bson:"interviewID" json:"interviewID"`
	PositionDescription string             `bson:"positionDescription,omitempty" json:"positionDescription,omitempty"`
	PositionID          string             `bson:"positionId" json:"positionId"`
	Summary             interface{}        `bson:"summary,omitempty" json:"summary,omitempty"`
	Transcript          interface{}        `bson:"transcript,omitempty" json:"transcript,omitempty"`
	Status              string             `bson:"status,omitempty" json:"status,omitempty"`
	ReviewStatus        ReviewStatus       `bson:"reviewStatus" json:"reviewStatus"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (i *Interview) GetID() primitive.ObjectID   { return i.ID }
func (i *Interview) SetID(id primitive.ObjectID) { i.ID = id }

// InterviewPage is the paginated candidate-facing listing.
type InterviewPage struct {
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	Interviews []*Interview `json:"interviews"`
}
