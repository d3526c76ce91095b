package service

import (
	"context"
	"errors"
	"time"

	"gavel/internal/config"
	"gavel/internal/model"
	"gavel/internal/repository"
	"gavel/pkg/generic"
)

// InterviewService handles interview intake and the review workflow.
type InterviewService struct {
	repo repository.IInterviewRepository
}

func NewInterviewService(repo repository.IInterviewRepository) *InterviewService {
	return &InterviewService{repo: repo}
}

// Submit stores an externally produced interview record. The review status is
// forced to pending no matter what the caller sent.
func (s *InterviewService) Submit(ctx context.Context, sub *model.InterviewSubmission) (*model.Interview, error) {
	now := time.Now()
	interview := &model.Interview{
		PositionName:        sub.PositionName,
		CandidateID:         sub.CandidateID,
		Email:               sub.Email,
		InterviewID:         sub.InterviewID,
		PositionDescription: sub.PositionDescription,
		PositionID:          sub.PositionID,
		Summary:             sub.Summary,
		Transcript:          sub.Transcript,
		Status:              sub.Status,
		ReviewStatus:        model.ReviewPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.repo.Create(ctx, interview); err != nil {
		return nil, err
	}
	return interview, nil
}

// CheckApplied reports record existence only; no content is disclosed.
func (s *InterviewService) CheckApplied(ctx context.Context, candidateID, positionID string) (bool, error) {
	return s.repo.Exists(ctx, candidateID, positionID)
}

// ListForCandidate returns one page of the candidate's own records, newest
// first. Page and limit fall back to defaults when non-positive; limit is
// capped.
func (s *InterviewService) ListForCandidate(ctx context.Context, candidateID string, page, limit int) (*model.InterviewPage, error) {
	if page < 1 {
		page = config.DefaultPage
	}
	if limit < 1 {
		limit = config.DefaultPageSize
	}
	if limit > config.MaxPageSize {
		limit = config.MaxPageSize
	}

	total, err := s.repo.CountByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	skip := int64(page-1) * int64(limit)
	interviews, err := s.repo.FindByCandidate(ctx, candidateID, skip, int64(limit))
	if err != nil {
		return nil, err
	}

	return &model.InterviewPage{
		Total:      total,
		Page:       page,
		Limit:      limit,
		Interviews: interviews,
	}, nil
}

// GetForCandidate returns one record only if it belongs to the caller. A
// record owned by someone else is reported as not found, same as a missing
// one.
func (s *InterviewService) GetForCandidate(ctx context.Context, id, candidateID string) (*model.Interview, error) {
	interview, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if interview.CandidateID != candidateID {
		return nil, ErrNotFound
	}
	return interview, nil
}

// ListAll returns every interview record, unfiltered.
func (s *InterviewService) ListAll(ctx context.Context) ([]*model.Interview, error) {
	return s.repo.FindAll(ctx)
}

// Review sets the review status. The transition is unconditional: an already
// rejected record can be approved and vice versa.
func (s *InterviewService) Review(ctx context.Context, id string, status model.ReviewStatus) (*model.Interview, error) {
	interview, err := s.repo.SetReviewStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return interview, nil
}
