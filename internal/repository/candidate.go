package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gavel/internal/model"
	"gavel/pkg/generic"
)

// ICandidateRepository defines candidate principal persistence.
type ICandidateRepository interface {
	Create(ctx context.Context, candidate *model.Candidate) error
	GetByID(ctx context.Context, id string) (*model.Candidate, error)
	Replace(ctx context.Context, candidate *model.Candidate) error
	FindByEmail(ctx context.Context, email string) (*model.Candidate, error)
	FindActive(ctx context.Context) ([]*model.Candidate, error)
	SoftDelete(ctx context.Context, id string) error
}

// CandidateRepository implements candidate persistence over the "candidate"
// collection.
type CandidateRepository struct {
	*generic.MongoBaseRepository[*model.Candidate]
}

func NewCandidateRepository(db *mongo.Database) ICandidateRepository {
	return &CandidateRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Candidate](db.Collection("candidate")),
	}
}

func (r *CandidateRepository) FindByEmail(ctx context.Context, email string) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&candidate)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

// FindActive returns candidates that have not been soft-deleted.
func (r *CandidateRepository) FindActive(ctx context.Context) ([]*model.Candidate, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"deleted": bson.M{"$ne": true}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var candidates []*model.Candidate
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// SoftDelete marks a candidate deleted; the record stays readable by id.
func (r *CandidateRepository) SoftDelete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return generic.ErrNotFound
	}
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"deleted": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return generic.ErrNotFound
	}
	return nil
}
