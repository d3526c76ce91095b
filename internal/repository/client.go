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

// IClientRepository defines client principal persistence.
type IClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	GetByID(ctx context.Context, id string) (*model.Client, error)
	Replace(ctx context.Context, client *model.Client) error
	FindByEmail(ctx context.Context, email string) (*model.Client, error)
	FindActive(ctx context.Context) ([]*model.Client, error)
	SoftDelete(ctx context.Context, id string) error
}

// ClientRepository implements client persistence over the "client" collection.
type ClientRepository struct {
	*generic.MongoBaseRepository[*model.Client]
}

func NewClientRepository(db *mongo.Database) IClientRepository {
	return &ClientRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Client](db.Collection("client")),
	}
}

func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*model.Client, error) {
	var client model.Client
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// FindActive returns clients that have not been soft-deleted.
func (r *ClientRepository) FindActive(ctx context.Context) ([]*model.Client, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"deleted": bson.M{"$ne": true}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []*model.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// SoftDelete marks a client deleted; the record stays readable by id.
func (r *ClientRepository) SoftDelete(ctx context.Context, id string) error {
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
