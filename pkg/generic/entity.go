package generic

import "go.mongodb.org/mongo-driver/bson/primitive"

// Entity is implemented by every persisted document model.
type Entity interface {
	GetID() primitive.ObjectID
	SetID(primitive.ObjectID)
}
