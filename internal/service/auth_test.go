package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gavel/internal/auth"
	"gavel/internal/model"
	"gavel/internal/repository"
)

func newAuthFixture(t *testing.T) (*AuthService, *repository.MemClientRepository, *repository.MemCandidateRepository, *repository.MemAdminRepository, *clockwork.FakeClock) {
	t.Helper()
	clients := repository.NewMemClientRepository()
	candidates := repository.NewMemCandidateRepository()
	admins := repository.NewMemAdminRepository()
	clock := clockwork.NewFakeClock()
	tokens := auth.NewTokenManager("test-secret", time.Hour, clock)
	return NewAuthService(clients, candidates, admins, tokens), clients, candidates, admins, clock
}

func signupReq(email string) *model.SignupRequest {
	return &model.SignupRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Phone:     "555-0100",
		Password:  "s3cret",
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()

	svc, clients, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, model.RoleClient, signupReq("ada@example.com")))

	stored, err := clients.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))
	assert.False(t, stored.Deleted)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	t.Parallel()

	svc, clients, candidates, _, _ := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, model.RoleClient, signupReq("dup@example.com")))

	err := svc.Register(ctx, model.RoleClient, signupReq("dup@example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, 1, clients.Len(), "conflicting signup must not persist a record")

	// Uniqueness is per collection: the same email is fine for a candidate.
	require.NoError(t, svc.Register(ctx, model.RoleCandidate, signupReq("dup@example.com")))
	assert.Equal(t, 1, candidates.Len())
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newAuthFixture(t)

	err := svc.Register(context.Background(), model.RoleAdmin, signupReq("root@example.com"))
	assert.Error(t, err)
}

func TestLogin_IssuesTokenBoundToRole(t *testing.T) {
	t.Parallel()

	svc, _, candidates, _, clock := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, model.RoleCandidate, signupReq("cand@example.com")))
	stored, err := candidates.FindByEmail(ctx, "cand@example.com")
	require.NoError(t, err)

	token, err := svc.Login(ctx, model.RoleCandidate, "cand@example.com", "s3cret")
	require.NoError(t, err)

	verifier := auth.NewTokenManager("test-secret", time.Hour, clock)
	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleCandidate, claims.Role)
	assert.Equal(t, stored.ID.Hex(), claims.PrincipalID)
	assert.Equal(t, clock.Now().Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestLogin_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, model.RoleClient, signupReq("known@example.com")))

	_, unknownErr := svc.Login(ctx, model.RoleClient, "unknown@example.com", "s3cret")
	_, wrongPassErr := svc.Login(ctx, model.RoleClient, "known@example.com", "wrong")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongPassErr)
}

func TestLogin_WrongCollection(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, model.RoleClient, signupReq("client@example.com")))

	// A client's credentials do not work on the candidate login route.
	_, err := svc.Login(ctx, model.RoleCandidate, "client@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MixedCaseEmailsFromEveryCreationPath(t *testing.T) {
	t.Parallel()

	svc, clients, candidates, _, _ := newAuthFixture(t)
	ctx := context.Background()

	// Admin-side creation stores the folded form, so login succeeds no
	// matter how the address was typed on either side.
	clientSvc := NewClientService(clients, repository.NewMemCompanyRepository())
	_, err := clientSvc.Create(ctx, &model.ClientCreateRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "Ada@Example.COM",
		Phone:     "555-0100",
		Password:  "s3cret",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, model.RoleClient, "ada@example.com", "s3cret")
	assert.NoError(t, err)

	candidateSvc := NewCandidateService(candidates)
	_, err = candidateSvc.Create(ctx, &model.CandidateCreateRequest{
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     "Alan@Example.com",
		Phone:     "555-0103",
		Password:  "enigma",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, model.RoleCandidate, "ALAN@example.com", "enigma")
	assert.NoError(t, err)

	// Folding also closes the cross-path uniqueness split: a self-service
	// signup with a different casing of an admin-created address conflicts.
	err = svc.Register(ctx, model.RoleClient, signupReq("ADA@Example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestEnsureAdmin_MixedCaseEmail(t *testing.T) {
	t.Parallel()

	svc, _, _, admins, _ := newAuthFixture(t)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "Admin@Corp.com", "changeme")
	require.NoError(t, err)
	assert.True(t, created)

	stored, err := admins.FindByEmail(ctx, "admin@corp.com")
	require.NoError(t, err)
	require.NotNil(t, stored)

	_, err = svc.Login(ctx, model.RoleAdmin, "admin@corp.com", "changeme")
	assert.NoError(t, err)
	_, err = svc.Login(ctx, model.RoleAdmin, "Admin@Corp.com", "changeme")
	assert.NoError(t, err)

	// Re-seeding with a different casing still finds the existing account.
	created, err = svc.EnsureAdmin(ctx, "ADMIN@corp.com", "changeme")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, admins.Len())
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	t.Parallel()

	svc, _, _, admins, _ := newAuthFixture(t)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "admin@example.com", "changeme")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "admin@example.com", "changeme")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, admins.Len())

	token, err := svc.Login(ctx, model.RoleAdmin, "admin@example.com", "changeme")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

// brokenCandidateRepo simulates an infrastructure failure on reads.
type brokenCandidateRepo struct {
	*repository.MemCandidateRepository
}

var errStoreDown = errors.New("connection reset by peer")

func (r *brokenCandidateRepo) GetByID(context.Context, string) (*model.Candidate, error) {
	return nil, errStoreDown
}

func TestDashboardLookups_DistinguishMissingFromStoreFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	tokens := auth.NewTokenManager("test-secret", time.Hour, clock)
	admins := repository.NewMemAdminRepository()

	// A missing record is ErrNotFound.
	svc := NewAuthService(repository.NewMemClientRepository(), repository.NewMemCandidateRepository(), admins, tokens)
	_, err := svc.CandidateByID(ctx, "64b000000000000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.AdminByID(ctx, "64b000000000000000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	// A store failure is not: it must reach the handler as a server error.
	broken := &brokenCandidateRepo{repository.NewMemCandidateRepository()}
	svc = NewAuthService(repository.NewMemClientRepository(), broken, admins, tokens)
	_, err = svc.CandidateByID(ctx, "64b000000000000000000000")
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, ErrNotFound)
}
