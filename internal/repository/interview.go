package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gavel/internal/model"
	"gavel/pkg/generic"
)

// IInterviewRepository defines interview record persistence. Interviews are
// append-only apart from the review status.
type IInterviewRepository interface {
	Create(ctx context.Context, interview *model.Interview) error
	GetByID(ctx context.Context, id string) (*model.Interview, error)
	Exists(ctx context.Context, candidateID, positionID string) (bool, error)
	FindByCandidate(ctx context.Context, candidateID string, skip, limit int64) ([]*model.Interview, error)
	CountByCandidate(ctx context.Context, candidateID string) (int64, error)
	FindAll(ctx context.Context) ([]*model.Interview, error)
	SetReviewStatus(ctx context.Context, id string, status model.ReviewStatus) (*model.Interview, error)
}

// InterviewRepository implements interview persistence over the "interviews"
// collection.
type InterviewRepository struct {
	*generic.MongoBaseRepository[*model.Interview]
}

func NewInterviewRepository(db *mongo.Database) IInterviewRepository {
	return &InterviewRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Interview](db.Collection("interviews")),
	}
}

// Exists reports whether the candidate already has a record for the position.
func (r *InterviewRepository) Exists(ctx context.Context, candidateID, positionID string) (bool, error) {
	err := r.Collection.FindOne(ctx,
		bson.M{"candidateId": candidateID, "positionId": positionID},
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindByCandidate returns a page of the candidate's records, newest first.
func (r *InterviewRepository) FindByCandidate(ctx context.Context, candidateID string, skip, limit int64) ([]*model.Interview, error) {
	cursor, err := r.Collection.Find(ctx,
		bson.M{"candidateId": candidateID},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetSkip(skip).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	interviews := make([]*model.Interview, 0)
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

func (r *InterviewRepository) CountByCandidate(ctx context.Context, candidateID string) (int64, error) {
	return r.Collection.CountDocuments(ctx, bson.M{"candidateId": candidateID})
}

func (r *InterviewRepository) FindAll(ctx context.Context) ([]*model.Interview, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	interviews := make([]*model.Interview, 0)
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

// SetReviewStatus overwrites the review status and returns the updated
// record. No transition guard: approve and reject may overwrite each other.
func (r *InterviewRepository) SetReviewStatus(ctx context.Context, id string, status model.ReviewStatus) (*model.Interview, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, generic.ErrNotFound
	}

	var interview model.Interview
	err = r.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"reviewStatus": status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&interview)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, generic.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}
