package app

import (
	"context"
	"fmt"

	"github.com/upb/course-registry/auth"
	"github.com/upb/course-registry/config"
	"github.com/upb/course-registry/handlers"
	"github.com/upb/course-registry/middleware"
	"github.com/upb/course-registry/repositories"
	"github.com/upb/course-registry/repositories/postgres"
	"github.com/upb/course-registry/services"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	DB     *postgres.DB
	Logger *zap.Logger

	// Repository Factory
	RepoFactory *postgres.RepositoryFactory

	// Repositories
	Users         repositories.UserRepository
	Courses       repositories.CourseRepository
	Registrations repositories.RegistrationRepository
	TxManager     repositories.TransactionManager

	// Services
	Tokens              *auth.TokenService
	UserService         *services.UserService
	CourseService       *services.CourseService
	RegistrationService *services.RegistrationService

	// HTTP layer
	AuthMiddleware      *middleware.AuthMiddleware
	AuthHandler         *handlers.AuthHandler
	UserHandler         *handlers.UserHandler
	CourseHandler       *handlers.CourseHandler
	RegistrationHandler *handlers.RegistrationHandler
	HealthHandler       *handlers.HealthHandler
}

// NewDependencies creates and wires up all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initDatabase(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	deps.initRepositories()

	if err := deps.initServices(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	deps.initHTTP()

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initDatabase initializes the PostgreSQL connection, factory and schema
func (d *Dependencies) initDatabase(ctx context.Context, cfg *config.Config) error {
	factory, err := postgres.NewRepositoryFactory(cfg, d.Logger)
	if err != nil {
		return fmt.Errorf("failed to create repository factory: %w", err)
	}

	d.RepoFactory = factory
	d.DB = factory.GetDB()

	if err := d.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if err := factory.InitSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	d.Logger.Info("database connection established",
		zap.String("connection", cfg.Database.LogString()))

	return nil
}

// initRepositories initializes all repository instances
func (d *Dependencies) initRepositories() {
	repos := d.RepoFactory.NewRepositories()

	d.Users = repos.Users
	d.Courses = repos.Courses
	d.Registrations = repos.Registrations
	d.TxManager = d.RepoFactory.GetTransactionManager()

	d.Logger.Info("repositories initialized")
}

// initServices wires the token service and the domain services
func (d *Dependencies) initServices(cfg *config.Config) error {
	tokens, err := auth.NewTokenService([]byte(cfg.Auth.Secret), cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}

	d.Tokens = tokens
	d.UserService = services.NewUserService(d.Users, tokens, d.Logger)
	d.CourseService = services.NewCourseService(d.Courses, d.Users, d.Logger)
	d.RegistrationService = services.NewRegistrationService(d.Registrations, d.Courses, d.Users, d.Logger)

	d.Logger.Info("services initialized")
	return nil
}

// initHTTP wires middleware and handlers on top of the services
func (d *Dependencies) initHTTP() {
	d.AuthMiddleware = middleware.NewAuthMiddleware(d.Tokens, d.Logger)
	d.AuthHandler = handlers.NewAuthHandler(d.UserService, d.Logger)
	d.UserHandler = handlers.NewUserHandler(d.UserService, d.Logger)
	d.CourseHandler = handlers.NewCourseHandler(d.CourseService, d.Logger)
	d.RegistrationHandler = handlers.NewRegistrationHandler(d.RegistrationService, d.Logger)
	d.HealthHandler = handlers.NewHealthHandler(d.DB.DB, d.Logger)
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	var errs []error

	if d.RepoFactory != nil {
		if err := d.RepoFactory.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		} else {
			d.Logger.Info("database connection closed")
		}
	}

	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errs)
	}

	return nil
}
