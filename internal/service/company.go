package service

import (
	"context"
	"errors"
	"time"

	"gavel/internal/model"
	"gavel/internal/repository"
	"gavel/pkg/generic"
)

// CompanyService handles the company directory.
type CompanyService struct {
	repo repository.ICompanyRepository
}

func NewCompanyService(repo repository.ICompanyRepository) *CompanyService {
	return &CompanyService{repo: repo}
}

// List returns all companies projected to {id, name}.
func (s *CompanyService) List(ctx context.Context) ([]model.CompanyResponse, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, model.CompanyResponse{ID: c.ID.Hex(), Name: c.Name})
	}
	return out, nil
}

// Create inserts a company, enforcing name uniqueness by check-then-insert.
func (s *CompanyService) Create(ctx context.Context, name string) (*model.Company, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCompanyExists
	}

	now := time.Now()
	company := &model.Company{Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Update replaces the stored document's name.
func (s *CompanyService) Update(ctx context.Context, id, name string) (*model.Company, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing.Name = name
	existing.UpdatedAt = time.Now()
	if err := s.repo.Replace(ctx, existing); err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return existing, nil
}

// Delete removes the company permanently.
func (s *CompanyService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, generic.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
