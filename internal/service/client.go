package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gavel/internal/auth"
	"gavel/internal/model"
	"gavel/internal/repository"
	"gavel/pkg/generic"
)

// ClientService handles the admin-facing client directory.
type ClientService struct {
	clients   repository.IClientRepository
	companies repository.ICompanyRepository
}

func NewClientService(clients repository.IClientRepository, companies repository.ICompanyRepository) *ClientService {
	return &ClientService{clients: clients, companies: companies}
}

// List returns non-deleted clients with the company reference resolved to an
// embedded {id, name}, null when absent.
func (s *ClientService) List(ctx context.Context) ([]model.ClientResponse, error) {
	clients, err := s.clients.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(clients))
	for _, c := range clients {
		if !c.Company.IsZero() {
			ids = append(ids, c.Company)
		}
	}
	companies, err := s.companies.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.ClientResponse, 0, len(clients))
	for _, c := range clients {
		resp := model.ClientResponse{
			ID:        c.ID.Hex(),
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
			RedFlag:   c.RedFlag,
		}
		if company, ok := companies[c.Company]; ok {
			resp.Company = &model.CompanyRef{ID: company.ID.Hex(), Name: company.Name}
		}
		out = append(out, resp)
	}
	return out, nil
}

// Create inserts a client with a freshly hashed password.
func (s *ClientService) Create(ctx context.Context, req *model.ClientCreateRequest) (*model.Client, error) {
	req.Email = normalizeEmail(req.Email)
	existing, err := s.clients.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	client := &model.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  hash,
		Company:   parseCompanyRef(req.Company),
		RedFlag:   req.RedFlag,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Update replaces the editable fields wholesale: an omitted company or
// redFlag clears the stored value. The password hash and deleted flag are
// carried over, since the update payload never contains them.
func (s *ClientService) Update(ctx context.Context, id string, req *model.ClientUpdateRequest) (*model.Client, error) {
	req.Email = normalizeEmail(req.Email)
	existing, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	replacement := &model.Client{
		ID:        existing.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  existing.Password,
		Company:   parseCompanyRef(req.Company),
		RedFlag:   req.RedFlag,
		Deleted:   existing.Deleted,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now(),
	}
	if err := s.clients.Replace(ctx, replacement); err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return replacement, nil
}

// Delete soft-deletes the client; it disappears from listings but remains
// readable by id.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	err := s.clients.SoftDelete(ctx, id)
	if errors.Is(err, generic.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
