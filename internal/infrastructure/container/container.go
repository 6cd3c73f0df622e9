package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kindredhq/kindred-backend/internal/config"
	httpdelivery "github.com/kindredhq/kindred-backend/internal/delivery/http"
	"github.com/kindredhq/kindred-backend/internal/delivery/http/handler"
	"github.com/kindredhq/kindred-backend/internal/delivery/http/middleware"
	"github.com/kindredhq/kindred-backend/internal/infrastructure/astro"
	"github.com/kindredhq/kindred-backend/internal/infrastructure/database"
	"github.com/kindredhq/kindred-backend/internal/infrastructure/gemini"
	"github.com/kindredhq/kindred-backend/internal/infrastructure/lock"
	"github.com/kindredhq/kindred-backend/internal/infrastructure/server"
	"github.com/kindredhq/kindred-backend/internal/repository/postgres"
	"github.com/kindredhq/kindred-backend/internal/usecase/candidates"
	"github.com/kindredhq/kindred-backend/internal/usecase/generation"
	"github.com/kindredhq/kindred-backend/internal/usecase/scoring"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies.
type Container struct {
	Config    *config.Config
	Log       *zap.Logger
	DB        *sqlx.DB
	Redis     *redis.Client
	Generator *generation.Generator
	Server    *server.Server
	Gemini    *gemini.Client
}

// NewContainer wires the application together.
func NewContainer(cfg *config.Config, log *zap.Logger) (*Container, error) {
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var redisClient *redis.Client
	var locker generation.Locker
	if cfg.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		locker = lock.NewRedisLocker(redisClient)
	}

	var geminiClient *gemini.Client
	var explainer generation.Explainer
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewClient(cfg.GeminiAPIKey)
		if err != nil {
			// AI enrichment is optional; run without it.
			log.Warn("failed to initialize gemini client", zap.Error(err))
		} else {
			explainer = geminiClient
		}
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	extractionRepo := postgres.NewExtractionRepository(db)
	dealbreakerRepo := postgres.NewDealbreakerRepository(db)
	pollRepo := postgres.NewPollRepository(db)
	contentRepo := postgres.NewContentRepository(db)
	blockRepo := postgres.NewBlockRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	runRepo := postgres.NewRunRepository(db)

	// Scoring engine
	var astroSystems []scoring.AstroSystem
	if cfg.Matching.AstroEnabled {
		astroSystems = []scoring.AstroSystem{
			astro.NewWestern(),
			astro.NewChinese(),
			astro.NewNumerology(),
		}
	}
	engine, err := scoring.NewEngine(cfg.Matching.Weights, astroSystems)
	if err != nil {
		return nil, fmt.Errorf("failed to build scoring engine: %w", err)
	}

	// Use cases
	finder := candidates.NewFinder(userRepo, profileRepo, matchRepo, blockRepo)
	loader := generation.NewSubjectLoader(userRepo, profileRepo, extractionRepo, dealbreakerRepo, pollRepo, contentRepo)
	generator := generation.NewGenerator(
		cfg.Matching,
		userRepo, matchRepo, runRepo,
		finder, loader, engine,
		locker, explainer, log,
	)

	// Delivery
	matchHandler := handler.NewMatchHandler(matchRepo, generator)
	runHandler := handler.NewRunHandler(generator, runRepo, log)
	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.ServiceSecret)

	router := httpdelivery.NewRouter(matchHandler, runHandler, authMiddleware)
	srv := server.NewServer(&cfg.Server, router.Setup(), log)

	return &Container{
		Config:    cfg,
		Log:       log,
		DB:        db,
		Redis:     redisClient,
		Generator: generator,
		Server:    srv,
		Gemini:    geminiClient,
	}, nil
}

// Close closes all connections.
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warn("error closing redis", zap.Error(err))
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}
