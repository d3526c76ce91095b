package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gavel/internal/model"
	"gavel/pkg/generic"
)

// ICompanyRepository defines company persistence.
type ICompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	GetByID(ctx context.Context, id string) (*model.Company, error)
	Replace(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id string) error
	FindByName(ctx context.Context, name string) (*model.Company, error)
	FindAll(ctx context.Context) ([]*model.Company, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.Company, error)
}

// CompanyRepository implements company persistence over the "companies"
// collection.
type CompanyRepository struct {
	*generic.MongoBaseRepository[*model.Company]
}

func NewCompanyRepository(db *mongo.Database) ICompanyRepository {
	return &CompanyRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Company](db.Collection("companies")),
	}
}

func (r *CompanyRepository) FindByName(ctx context.Context, name string) (*model.Company, error) {
	var company model.Company
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&company)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]*model.Company, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var companies []*model.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// FindByIDs resolves company references in one round trip; unknown ids are
// simply absent from the result map.
func (r *CompanyRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.Company, error) {
	out := make(map[primitive.ObjectID]*model.Company, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var companies []*model.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	for _, c := range companies {
		out[c.ID] = c
	}
	return out, nil
}
