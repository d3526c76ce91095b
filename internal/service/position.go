package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gavel/internal/model"
	"gavel/internal/repository"
	"gavel/pkg/generic"
)

// PositionService handles the position directory. Listings resolve the
// optional company reference against the companies collection.
type PositionService struct {
	positions repository.IPositionRepository
	companies repository.ICompanyRepository
}

func NewPositionService(positions repository.IPositionRepository, companies repository.ICompanyRepository) *PositionService {
	return &PositionService{positions: positions, companies: companies}
}

// List returns all positions with company references resolved. A missing or
// dangling reference yields empty company fields, not an error.
func (s *PositionService) List(ctx context.Context) ([]model.PositionResponse, error) {
	positions, err := s.positions.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(positions))
	for _, p := range positions {
		if !p.Company.IsZero() {
			ids = append(ids, p.Company)
		}
	}
	companies, err := s.companies.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.PositionResponse, 0, len(positions))
	for _, p := range positions {
		resp := model.PositionResponse{
			ID:                 p.ID.Hex(),
			Name:               p.Name,
			ProjectDescription: p.ProjectDescription,
			RedFlag:            p.RedFlag,
		}
		if company, ok := companies[p.Company]; ok {
			resp.Company = company.ID.Hex()
			resp.CompanyName = company.Name
		}
		out = append(out, resp)
	}
	return out, nil
}

// Create inserts a position. An unparsable company id is treated as no
// reference, matching the tolerant listing behavior.
func (s *PositionService) Create(ctx context.Context, req *model.PositionRequest) (*model.Position, error) {
	now := time.Now()
	position := &model.Position{
		Name:               req.Name,
		ProjectDescription: req.ProjectDescription,
		Company:            parseCompanyRef(req.Company),
		RedFlag:            req.RedFlag,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.positions.Create(ctx, position); err != nil {
		return nil, err
	}
	return position, nil
}

// Update rebuilds the document from the request alone: fields absent from
// the payload are cleared, including the company reference.
func (s *PositionService) Update(ctx context.Context, id string, req *model.PositionRequest) (*model.Position, error) {
	existing, err := s.positions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	replacement := &model.Position{
		ID:                 existing.ID,
		Name:               req.Name,
		ProjectDescription: req.ProjectDescription,
		Company:            parseCompanyRef(req.Company),
		RedFlag:            req.RedFlag,
		CreatedAt:          existing.CreatedAt,
		UpdatedAt:          time.Now(),
	}
	if err := s.positions.Replace(ctx, replacement); err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return replacement, nil
}

// Delete removes the position permanently.
func (s *PositionService) Delete(ctx context.Context, id string) error {
	err := s.positions.Delete(ctx, id)
	if errors.Is(err, generic.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func parseCompanyRef(hex string) primitive.ObjectID {
	if hex == "" {
		return primitive.NilObjectID
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}
