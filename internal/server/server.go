package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gavel/internal/auth"
	"gavel/internal/config"
	"gavel/internal/middleware"
	"gavel/internal/model"
	"gavel/internal/version"
	"gavel/pkg/timer"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	mongo  *mongo.Client
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	sw := timer.NewStopwatch()

	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	sw.Lap("mongo connect")
	db := mongoClient.Database(cfg.Mongo.Database)

	tokens := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLSeconds)*time.Second,
		clockwork.NewRealClock(),
	)

	repos := InitRepositories(db)
	services := InitServices(cfg, repos, tokens)
	handlers := InitHandlers(cfg, services)

	if err := SeedAdmin(cfg, services); err != nil {
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}
	sw.Lap("admin seed")

	router, err := setupRouter(cfg, handlers, tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to set up router: %w", err)
	}

	return &Server{
		cfg:    cfg,
		router: router,
		mongo:  mongoClient,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Close disconnects MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	slog.Info("server listening", "address", s.cfg.Server.Address())
	return s.router.Run(s.cfg.Server.Address())
}

func setupRouter(cfg *config.Config, h *Handlers, tokens *auth.TokenManager) (*gin.Engine, error) {
	r := gin.Default()
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, version.Get())
	})

	api := r.Group("/api")

	// Public routes: signup, login, logout, and the external intake surface.
	api.POST("/signup/client", h.Auth.SignupClient)
	api.POST("/signup/candidate", h.Auth.SignupCandidate)
	api.POST("/login/client", h.Auth.LoginClient)
	api.POST("/login/candidate", h.Auth.LoginCandidate)
	api.POST("/login/admin", h.Auth.LoginAdmin)
	api.POST("/logout", h.Auth.Logout)
	api.POST("/interviews", h.Interview.Submit)
	api.GET("/interviews/check", h.Interview.CheckApplied)

	// Everything below requires a valid session cookie; the session gate runs
	// before any role check so a missing token is always 401, never 403.
	protected := api.Group("")
	protected.Use(middleware.Authenticate(tokens))

	protected.GET("/protected/client", middleware.RequireRole(model.RoleClient), h.Dashboard.Client)
	protected.GET("/protected/candidate", middleware.RequireRole(model.RoleCandidate), h.Dashboard.Candidate)
	protected.GET("/protected/admin", middleware.RequireRole(model.RoleAdmin), h.Dashboard.Admin)

	positions := protected.Group("/positions")
	{
		positions.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleCandidate), h.Position.List)
		positions.POST("", middleware.RequireRole(model.RoleAdmin), h.Position.Create)
		positions.PUT("/:id", middleware.RequireRole(model.RoleAdmin), h.Position.Update)
		positions.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.Position.Delete)
	}

	companies := protected.Group("/companies", middleware.RequireRole(model.RoleAdmin))
	{
		companies.GET("", h.Company.List)
		companies.POST("", h.Company.Create)
		companies.PUT("/:id", h.Company.Update)
		companies.DELETE("/:id", h.Company.Delete)
	}

	clients := protected.Group("/clients", middleware.RequireRole(model.RoleAdmin))
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}

	candidates := protected.Group("/candidates", middleware.RequireRole(model.RoleAdmin))
	{
		candidates.GET("", h.Candidate.List)
		candidates.POST("", h.Candidate.Create)
		candidates.PUT("/:id", h.Candidate.Update)
		candidates.DELETE("/:id", h.Candidate.Delete)
	}

	// Candidate-facing interview views.
	protected.GET("/interviews", middleware.RequireRole(model.RoleCandidate), h.Interview.ListMine)
	protected.GET("/interviews/:id", middleware.RequireRole(model.RoleCandidate), h.Interview.GetMine)

	// Admin review workflow.
	admin := protected.Group("/admin", middleware.RequireRole(model.RoleAdmin))
	{
		admin.GET("/interviews", h.Interview.AdminList)
		admin.PUT("/interviews/:id/approve", h.Interview.Approve)
		admin.PUT("/interviews/:id/reject", h.Interview.Reject)
	}

	return r, nil
}
