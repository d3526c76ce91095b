package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gavel/internal/auth"
	"gavel/internal/model"
	"gavel/internal/repository"
	"gavel/pkg/generic"
	"gavel/pkg/timer"
)

// normalizeEmail is the single folding point for every path that stores or
// looks up a principal email. Without it, accounts created with a mixed-case
// address could never log in.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthService handles registration, login, and the seed admin account.
type AuthService struct {
	clients    repository.IClientRepository
	candidates repository.ICandidateRepository
	admins     repository.IAdminRepository
	tokens     *auth.TokenManager
}

func NewAuthService(
	clients repository.IClientRepository,
	candidates repository.ICandidateRepository,
	admins repository.IAdminRepository,
	tokens *auth.TokenManager,
) *AuthService {
	return &AuthService{clients: clients, candidates: candidates, admins: admins, tokens: tokens}
}

// Register creates a client or candidate principal. The email must be unique
// within the role's own collection; the check-then-insert race is accepted.
func (s *AuthService) Register(ctx context.Context, role model.Role, req *model.SignupRequest) error {
	req.Email = normalizeEmail(req.Email)
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	now := time.Now()

	switch role {
	case model.RoleClient:
		existing, err := s.clients.FindByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailTaken
		}
		return s.clients.Create(ctx, &model.Client{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Password:  hash,
			CreatedAt: now,
			UpdatedAt: now,
		})
	case model.RoleCandidate:
		existing, err := s.candidates.FindByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailTaken
		}
		return s.candidates.Create(ctx, &model.Candidate{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Password:  hash,
			CreatedAt: now,
			UpdatedAt: now,
		})
	default:
		return fmt.Errorf("role %q does not support self-registration", role)
	}
}

// Login verifies credentials against the role's collection and issues a
// session token. Unknown email and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, role model.Role, email, password string) (string, error) {
	defer timer.Track("password verification")()

	id, hash, err := s.credentials(ctx, role, normalizeEmail(email))
	if err != nil {
		return "", err
	}
	if id == "" || !auth.CheckPassword(hash, password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(id, role)
}

func (s *AuthService) credentials(ctx context.Context, role model.Role, email string) (id, hash string, err error) {
	switch role {
	case model.RoleClient:
		client, err := s.clients.FindByEmail(ctx, email)
		if err != nil || client == nil {
			return "", "", err
		}
		return client.ID.Hex(), client.Password, nil
	case model.RoleCandidate:
		candidate, err := s.candidates.FindByEmail(ctx, email)
		if err != nil || candidate == nil {
			return "", "", err
		}
		return candidate.ID.Hex(), candidate.Password, nil
	case model.RoleAdmin:
		admin, err := s.admins.FindByEmail(ctx, email)
		if err != nil || admin == nil {
			return "", "", err
		}
		return admin.ID.Hex(), admin.Password, nil
	default:
		return "", "", fmt.Errorf("unknown role %q", role)
	}
}

// CandidateByID backs the candidate dashboard echo.
func (s *AuthService) CandidateByID(ctx context.Context, id string) (*model.Candidate, error) {
	candidate, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return candidate, nil
}

// AdminByID backs the admin dashboard echo.
func (s *AuthService) AdminByID(ctx context.Context, id string) (*model.Admin, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return admin, nil
}

// EnsureAdmin seeds the admin account if the email is not present yet.
// Safe to call on every startup.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) (created bool, err error) {
	email = normalizeEmail(email)
	existing, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	if err := s.admins.Create(ctx, &model.Admin{
		Email:     email,
		Password:  hash,
		CreatedAt: time.Now(),
	}); err != nil {
		return false, err
	}
	return true, nil
}
