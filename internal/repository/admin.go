package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gavel/internal/model"
	"gavel/pkg/generic"
)

// IAdminRepository defines admin principal persistence. Admins are seeded,
// never registered, so the surface is small.
type IAdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	GetByID(ctx context.Context, id string) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
}

// AdminRepository implements admin persistence over the "admin" collection.
type AdminRepository struct {
	*generic.MongoBaseRepository[*model.Admin]
}

func NewAdminRepository(db *mongo.Database) IAdminRepository {
	return &AdminRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Admin](db.Collection("admin")),
	}
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
