package generic

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a lookup matches no document or the id is not
// a valid ObjectID hex string.
var ErrNotFound = errors.New("document not found")

// BaseRepository is the CRUD contract shared by every collection.
type BaseRepository[T Entity] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id string) (T, error)
	Replace(ctx context.Context, entity T) error
	Delete(ctx context.Context, id string) error
}

// MongoBaseRepository implements BaseRepository over a single collection.
type MongoBaseRepository[T Entity] struct {
	Collection *mongo.Collection
}

func NewBaseRepository[T Entity](collection *mongo.Collection) *MongoBaseRepository[T] {
	return &MongoBaseRepository[T]{Collection: collection}
}

// Create assigns a fresh ObjectID and inserts the document.
func (r *MongoBaseRepository[T]) Create(ctx context.Context, entity T) error {
	entity.SetID(primitive.NewObjectID())
	_, err := r.Collection.InsertOne(ctx, entity)
	return err
}

func (r *MongoBaseRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var entity T
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity, ErrNotFound
	}

	err = r.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity, ErrNotFound
	}
	return entity, err
}

// Replace overwrites the whole stored document. Fields absent from the new
// entity are gone after this call; callers relying on merge semantics must
// copy them forward first.
func (r *MongoBaseRepository[T]) Replace(ctx context.Context, entity T) error {
	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": entity.GetID()}, entity)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document permanently.
func (r *MongoBaseRepository[T]) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
