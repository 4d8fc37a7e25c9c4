package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	authz "github.com/izeinnn/university-management-system/internal/app/auth"
	"github.com/izeinnn/university-management-system/internal/app/controllers"
	"github.com/izeinnn/university-management-system/internal/app/migrations"
	"github.com/izeinnn/university-management-system/internal/app/repositories"
	"github.com/izeinnn/university-management-system/internal/app/routes"
	"github.com/izeinnn/university-management-system/internal/app/services"
	"github.com/izeinnn/university-management-system/internal/config"
	"github.com/izeinnn/university-management-system/internal/db"
	"github.com/izeinnn/university-management-system/internal/middleware"
	pkgauth "github.com/izeinnn/university-management-system/internal/pkg/auth"
	"github.com/izeinnn/university-management-system/internal/pkg/helpers"
	"github.com/izeinnn/university-management-system/internal/pkg/logger"
	"github.com/izeinnn/university-management-system/internal/seed"
)

// App holds the wired application components.
type App struct {
	Config   *config.Config
	Database *db.PostgresDB
	Router   *gin.Engine
}

// Initialize loads configuration and wires the application together:
// logger, database, migrations, admin seed, repositories, services,
// controllers and routes.
func Initialize(configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory("migrations"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	if err := seed.EnsureAdminUser(context.Background(), database.Pool, cfg); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, pkgauth.DefaultAccessTokenExp),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(database.Pool)
	svcs := services.NewServices(repos, jwtService)
	ctrls := controllers.NewControllers(svcs)

	resolver := authz.NewResolver(repos.StudentRepository, repos.InstructorRepository)
	authMiddleware := middleware.AuthMiddleware(jwtService, repos.UserRepository, resolver)

	router := routes.SetupRouter(cfg, ctrls, authMiddleware, database.Pool)

	logger.Info().Str("port", cfg.Server.Port).Msg("Application initialized")
	return &App{Config: cfg, Database: database, Router: router}, nil
}
