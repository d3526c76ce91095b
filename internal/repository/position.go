package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gavel/internal/model"
	"gavel/pkg/generic"
)

// IPositionRepository defines position persistence.
type IPositionRepository interface {
	Create(ctx context.Context, position *model.Position) error
	GetByID(ctx context.Context, id string) (*model.Position, error)
	Replace(ctx context.Context, position *model.Position) error
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]*model.Position, error)
}

// PositionRepository implements position persistence over the "positions"
// collection.
type PositionRepository struct {
	*generic.MongoBaseRepository[*model.Position]
}

func NewPositionRepository(db *mongo.Database) IPositionRepository {
	return &PositionRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Position](db.Collection("positions")),
	}
}

func (r *PositionRepository) FindAll(ctx context.Context) ([]*model.Position, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var positions []*model.Position
	if err := cursor.All(ctx, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}
