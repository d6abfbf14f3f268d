package container

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/config"
	"github.com/gdugdh24/pairly-backend/internal/delivery/http"
	"github.com/gdugdh24/pairly-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/pairly-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/pairly-backend/internal/infrastructure/database"
	"github.com/gdugdh24/pairly-backend/internal/infrastructure/server"
	"github.com/gdugdh24/pairly-backend/internal/infrastructure/sms"
	"github.com/gdugdh24/pairly-backend/internal/infrastructure/storage"
	"github.com/gdugdh24/pairly-backend/internal/repository/postgres"
	redisrepo "github.com/gdugdh24/pairly-backend/internal/repository/redis"
	"github.com/gdugdh24/pairly-backend/internal/usecase/auth"
	"github.com/gdugdh24/pairly-backend/internal/usecase/feed"
	"github.com/gdugdh24/pairly-backend/internal/usecase/interaction"
	"github.com/gdugdh24/pairly-backend/internal/usecase/match"
	"github.com/gdugdh24/pairly-backend/internal/usecase/profile"
	"github.com/gdugdh24/pairly-backend/internal/usecase/prompt"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	DB      *sqlx.DB
	Redis   *redis.Client
	Storage *storage.MinIOStorage
	Server  *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := database.MigrateUp(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize object storage
	objectStorage, err := storage.NewMinIOStorage(ctx, &cfg.Storage)
	if err != nil {
		db.Close()
		redisClient.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize repositories
	timeout := cfg.Database.QueryTimeout
	tx := postgres.NewTransactor(db, cfg.Database.TxTimeout)
	userRepo := postgres.NewUserRepository(db, timeout)
	prefsRepo := postgres.NewPreferencesRepository(db, timeout)
	profileRepo := postgres.NewProfileRepository(db, timeout)
	imageRepo := postgres.NewImageRepository(db, timeout)
	promptRepo := postgres.NewPromptRepository(db, timeout)
	interactionRepo := postgres.NewInteractionRepository(db, timeout)
	matchRepo := postgres.NewMatchRepository(db, timeout)
	messageRepo := postgres.NewMessageRepository(db, timeout)
	verificationStore := redisrepo.NewVerificationStore(redisClient)

	// Initialize use cases
	authUseCase := auth.NewPhoneAuthUseCase(
		userRepo,
		profileRepo,
		verificationStore,
		sms.NewLogSender(!cfg.Server.IsProduction()),
		cfg.JWT.AccessSecret,
		time.Duration(cfg.JWT.AccessExpiryMin)*time.Minute,
		cfg.OTP.Expiry,
	)

	profileUseCase := profile.NewProfileUseCase(
		tx,
		userRepo,
		profileRepo,
		imageRepo,
		promptRepo,
		prefsRepo,
		objectStorage,
		cfg.Storage.MaxFileSize,
	)

	promptUseCase := prompt.NewPromptUseCase(
		tx,
		userRepo,
		profileRepo,
		promptRepo,
	)

	feedUseCase := feed.NewFeedUseCase(
		prefsRepo,
		profileRepo,
		imageRepo,
		promptRepo,
	)

	matchUseCase := match.NewMatchUseCase(
		tx,
		matchRepo,
		messageRepo,
		interactionRepo,
	)

	interactionUseCase := interaction.NewInteractionUseCase(
		tx,
		interactionRepo,
		matchUseCase,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	userHandler := handler.NewUserHandler(profileUseCase)
	promptHandler := handler.NewPromptHandler(promptUseCase)
	feedHandler := handler.NewFeedHandler(feedUseCase, interactionUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"postgres": handler.PingFunc(db.PingContext),
		"redis":    handler.PingFunc(func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }),
		"storage":  objectStorage,
	})

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		userHandler,
		promptHandler,
		feedHandler,
		matchHandler,
		healthHandler,
		authMiddleware,
		cfg.CORS.AllowedOrigins,
	)

	// Setup routes
	ginRouter := router.Setup()
	ginRouter.MaxMultipartMemory = cfg.Storage.MaxFileSize

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config:  cfg,
		DB:      db,
		Redis:   redisClient,
		Storage: objectStorage,
		Server:  srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logrus.WithError(err).Error("error closing redis")
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
