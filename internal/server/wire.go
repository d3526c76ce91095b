package server

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"gavel/internal/auth"
	"gavel/internal/config"
	"gavel/internal/handler"
	"gavel/internal/repository"
	"gavel/internal/service"
)

// Repositories bundles the per-collection stores.
type Repositories struct {
	Clients    repository.IClientRepository
	Candidates repository.ICandidateRepository
	Admins     repository.IAdminRepository
	Companies  repository.ICompanyRepository
	Positions  repository.IPositionRepository
	Interviews repository.IInterviewRepository
}

// Services bundles the business logic layer.
type Services struct {
	Auth      *service.AuthService
	Company   *service.CompanyService
	Position  *service.PositionService
	Client    *service.ClientService
	Candidate *service.CandidateService
	Interview *service.InterviewService
}

// Handlers bundles the HTTP layer.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Company   *handler.CompanyHandler
	Position  *handler.PositionHandler
	Client    *handler.ClientHandler
	Candidate *handler.CandidateHandler
	Interview *handler.InterviewHandler
}

func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Clients:    repository.NewClientRepository(db),
		Candidates: repository.NewCandidateRepository(db),
		Admins:     repository.NewAdminRepository(db),
		Companies:  repository.NewCompanyRepository(db),
		Positions:  repository.NewPositionRepository(db),
		Interviews: repository.NewInterviewRepository(db),
	}
}

func InitServices(cfg *config.Config, repos *Repositories, tokens *auth.TokenManager) *Services {
	return &Services{
		Auth:      service.NewAuthService(repos.Clients, repos.Candidates, repos.Admins, tokens),
		Company:   service.NewCompanyService(repos.Companies),
		Position:  service.NewPositionService(repos.Positions, repos.Companies),
		Client:    service.NewClientService(repos.Clients, repos.Companies),
		Candidate: service.NewCandidateService(repos.Candidates),
		Interview: service.NewInterviewService(repos.Interviews),
	}
}

func InitHandlers(cfg *config.Config, services *Services) *Handlers {
	return &Handlers{
		Auth:      handler.NewAuthHandler(services.Auth, cfg.Auth.TokenTTLSeconds),
		Dashboard: handler.NewDashboardHandler(services.Auth),
		Company:   handler.NewCompanyHandler(services.Company),
		Position:  handler.NewPositionHandler(services.Position),
		Client:    handler.NewClientHandler(services.Client),
		Candidate: handler.NewCandidateHandler(services.Candidate),
		Interview: handler.NewInterviewHandler(services.Interview),
	}
}

// SeedAdmin ensures the configured admin account exists. Idempotent across
// restarts.
func SeedAdmin(cfg *config.Config, services *Services) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := services.Auth.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		return err
	}
	if created {
		slog.Info("seeded admin account", "email", cfg.Admin.Email)
		if cfg.Admin.Password == config.DefaultAdminPassword {
			slog.Warn("admin account uses the default password; set ADMIN_PASSWORD")
		}
	}
	return nil
}
