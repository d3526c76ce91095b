package service

import (
	"context"
	"errors"
	"time"

	"gavel/internal/auth"
	"gavel/internal/model"
	"gavel/internal/repository"
	"gavel/pkg/generic"
)

// CandidateService handles the admin-facing candidate directory.
type CandidateService struct {
	candidates repository.ICandidateRepository
}

func NewCandidateService(candidates repository.ICandidateRepository) *CandidateService {
	return &CandidateService{candidates: candidates}
}

// List returns non-deleted candidates.
func (s *CandidateService) List(ctx context.Context) ([]model.CandidateResponse, error) {
	candidates, err := s.candidates.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, model.CandidateResponse{
			ID:        c.ID.Hex(),
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
		})
	}
	return out, nil
}

// Create inserts a candidate with a freshly hashed password.
func (s *CandidateService) Create(ctx context.Context, req *model.CandidateCreateRequest) (*model.Candidate, error) {
	req.Email = normalizeEmail(req.Email)
	existing, err := s.candidates.FindByEmail(ctx, req.Email)
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
	candidate := &model.Candidate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.candidates.Create(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// Update replaces the editable fields wholesale, carrying over the password
// hash and deleted flag from the stored document.
func (s *CandidateService) Update(ctx context.Context, id string, req *model.CandidateUpdateRequest) (*model.Candidate, error) {
	req.Email = normalizeEmail(req.Email)
	existing, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	replacement := &model.Candidate{
		ID:        existing.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  existing.Password,
		Deleted:   existing.Deleted,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now(),
	}
	if err := s.candidates.Replace(ctx, replacement); err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return replacement, nil
}

// Delete soft-deletes the candidate.
func (s *CandidateService) Delete(ctx context.Context, id string) error {
	err := s.candidates.SoftDelete(ctx, id)
	if errors.Is(err, generic.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
