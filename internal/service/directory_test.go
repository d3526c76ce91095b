package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gavel/internal/model"
	"gavel/internal/repository"
)

func TestCompanyCreate_NameMustBeUnique(t *testing.T) {
	t.Parallel()

	svc := NewCompanyService(repository.NewMemCompanyRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Acme Corp")
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	_, err = svc.Create(ctx, "Acme Corp")
	assert.ErrorIs(t, err, ErrCompanyExists)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCompanyUpdateAndDelete(t *testing.T) {
	t.Parallel()

	svc := NewCompanyService(repository.NewMemCompanyRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Acme Corp")
	require.NoError(t, err)
	id := created.ID.Hex()

	updated, err := svc.Update(ctx, id, "Acme Holdings")
	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", updated.Name)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	_, err = svc.Update(ctx, "64b000000000000000000000", "Nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, id))
	assert.ErrorIs(t, svc.Delete(ctx, id), ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPositionList_ResolvesCompany(t *testing.T) {
	t.Parallel()

	companies := repository.NewMemCompanyRepository()
	positions := repository.NewMemPositionRepository()
	companySvc := NewCompanyService(companies)
	svc := NewPositionService(positions, companies)
	ctx := context.Background()

	company, err := companySvc.Create(ctx, "Acme Corp")
	require.NoError(t, err)

	_, err = svc.Create(ctx, &model.PositionRequest{
		Name:               "Backend Engineer",
		ProjectDescription: "APIs",
		Company:            company.ID.Hex(),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &model.PositionRequest{Name: "Freelance Designer"})
	require.NoError(t, err)
	// A garbage company id is tolerated and stored as no reference.
	_, err = svc.Create(ctx, &model.PositionRequest{Name: "Mystery Role", Company: "not-a-hex-id"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	byName := make(map[string]model.PositionResponse, len(list))
	for _, p := range list {
		byName[p.Name] = p
	}
	assert.Equal(t, company.ID.Hex(), byName["Backend Engineer"].Company)
	assert.Equal(t, "Acme Corp", byName["Backend Engineer"].CompanyName)
	assert.Empty(t, byName["Freelance Designer"].Company)
	assert.Empty(t, byName["Freelance Designer"].CompanyName)
	assert.Empty(t, byName["Mystery Role"].CompanyName)
}

func TestPositionUpdate_ReplacesNotMerges(t *testing.T) {
	t.Parallel()

	companies := repository.NewMemCompanyRepository()
	positions := repository.NewMemPositionRepository()
	svc := NewPositionService(positions, companies)
	ctx := context.Background()

	company, err := NewCompanyService(companies).Create(ctx, "Acme Corp")
	require.NoError(t, err)

	created, err := svc.Create(ctx, &model.PositionRequest{
		Name:               "Backend Engineer",
		ProjectDescription: "APIs",
		Company:            company.ID.Hex(),
		RedFlag:            "none",
	})
	require.NoError(t, err)

	// Update omitting company and redFlag must clear both.
	updated, err := svc.Update(ctx, created.ID.Hex(), &model.PositionRequest{Name: "Platform Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", updated.Name)
	assert.Empty(t, updated.ProjectDescription)
	assert.True(t, updated.Company.IsZero())
	assert.Empty(t, updated.RedFlag)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	stored, err := positions.GetByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.True(t, stored.Company.IsZero())
}

func TestClientUpdate_CarriesHashAndDeletedForward(t *testing.T) {
	t.Parallel()

	clients := repository.NewMemClientRepository()
	companies := repository.NewMemCompanyRepository()
	svc := NewClientService(clients, companies)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.ClientCreateRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Phone:     "555-0101",
		Password:  "compiler",
		RedFlag:   "none",
	})
	require.NoError(t, err)
	id := created.ID.Hex()

	updated, err := svc.Update(ctx, id, &model.ClientUpdateRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace.hopper@example.com",
		Phone:     "555-0102",
	})
	require.NoError(t, err)

	assert.Equal(t, created.Password, updated.Password, "password hash survives an update without one")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("compiler")))
	assert.Empty(t, updated.RedFlag, "omitted redFlag is cleared")
	assert.False(t, updated.Deleted)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestClientSoftDelete(t *testing.T) {
	t.Parallel()

	clients := repository.NewMemClientRepository()
	svc := NewClientService(clients, repository.NewMemCompanyRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.ClientCreateRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Phone:     "555-0101",
		Password:  "compiler",
	})
	require.NoError(t, err)
	id := created.ID.Hex()

	require.NoError(t, svc.Delete(ctx, id))

	// Gone from listings but the record itself survives.
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	stored, err := clients.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, stored.Deleted)

	assert.ErrorIs(t, svc.Delete(ctx, "64b000000000000000000000"), ErrNotFound)
}

func TestClientCreate_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := NewClientService(repository.NewMemClientRepository(), repository.NewMemCompanyRepository())
	ctx := context.Background()

	req := &model.ClientCreateRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Phone:     "555-0101",
		Password:  "compiler",
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCandidateDirectory(t *testing.T) {
	t.Parallel()

	candidates := repository.NewMemCandidateRepository()
	svc := NewCandidateService(candidates)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CandidateCreateRequest{
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     "alan@example.com",
		Phone:     "555-0103",
		Password:  "enigma",
	})
	require.NoError(t, err)
	id := created.ID.Hex()

	updated, err := svc.Update(ctx, id, &model.CandidateUpdateRequest{
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     "alan.turing@example.com",
		Phone:     "555-0104",
	})
	require.NoError(t, err)
	assert.Equal(t, created.Password, updated.Password)
	assert.Equal(t, "alan.turing@example.com", updated.Email)

	require.NoError(t, svc.Delete(ctx, id))
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
