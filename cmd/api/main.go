package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"realestate/internal/adapter/api"
	"realestate/internal/adapter/api/handler"
	apimiddleware "realestate/internal/adapter/api/middleware"
	"realestate/internal/adapter/api/router"
	"realestate/internal/adapter/repository"
	"realestate/internal/adapter/repository/memory"
	domainrepo "realestate/internal/domain/repository"
	"realestate/internal/domain/service"
	"realestate/internal/infrastructure/database"
	"realestate/internal/infrastructure/firebase"
	"realestate/internal/infrastructure/metrics"
	"realestate/internal/infrastructure/storage"
	"realestate/internal/infrastructure/token"
	"realestate/internal/usecase"
	"realestate/pkg/config"
	"realestate/pkg/logger"
	"realestate/pkg/response"
)

type repositories struct {
	users      domainrepo.UserRepository
	properties domainrepo.PropertyRepository
	favorites  domainrepo.FavoriteRepository
	reviews    domainrepo.ReviewRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	credentials := firebase.ClientOption(cfg.FirebaseServiceAccountJSON, cfg.FirebaseServiceAccountPath)

	repos, closeStore, err := openRepositories(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open %s store: %v", cfg.DBDriver, err)
		os.Exit(1)
	}
	defer closeStore()

	if cfg.RedisAddr != "" {
		redisClient, err := database.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Error("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		repos.properties = repository.NewCachedPropertyRepository(repos.properties, redisClient, time.Duration(cfg.CacheTTL)*time.Second)
		logger.Info("Property cache enabled on %s", cfg.RedisAddr)
	}

	jwtManager := token.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiry)*time.Second)
	verifiers := []apimiddleware.TokenVerifier{jwtManager}

	if cfg.FirebaseAuthEnabled {
		app, err := firebase.NewApp(ctx, cfg.FirebaseProject, credentials...)
		if err != nil {
			logger.Error("Failed to initialize Firebase: %v", err)
			os.Exit(1)
		}
		authClient, err := app.Auth(ctx)
		if err != nil {
			logger.Error("Failed to initialize Firebase Auth: %v", err)
			os.Exit(1)
		}
		verifiers = append(verifiers, firebase.NewFirebaseAuthClient(authClient, repos.users))
		logger.Info("Firebase ID tokens accepted")
	}

	var images service.ImageStorage
	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.AllowedOrigins(), credentials...)
		if err != nil {
			logger.Error("Failed to initialize Cloud Storage: %v", err)
			os.Exit(1)
		}
		defer storageClient.Close()
		images = storageClient
	} else {
		logger.Warn("STORAGE_BUCKET not set, image uploads are disabled")
	}

	metricsManager := metrics.NewMetricsManager()

	authUseCase := usecase.NewAuthUseCase(repos.users, token.NewBcryptHasher(bcrypt.DefaultCost), jwtManager)
	userUseCase := usecase.NewUserUseCase(repos.users)
	propertyUseCase := usecase.NewPropertyUseCase(repos.properties, repos.users, images, metricsManager)
	favoriteUseCase := usecase.NewFavoriteUseCase(repos.favorites, repos.properties, metricsManager)
	reviewUseCase := usecase.NewReviewUseCase(repos.reviews, repos.properties, repos.users, metricsManager)

	handler.Setup(authUseCase, userUseCase, propertyUseCase, favoriteUseCase, reviewUseCase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = response.HTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins(),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(apimiddleware.RequestLogger())
	e.Use(apimiddleware.Metrics(metricsManager))
	e.Use(middleware.BodyLimit("6M"))

	authMiddleware := apimiddleware.NewAuthMiddleware(verifiers...)
	router.Setup(e, authMiddleware, metricsManager)

	go func() {
		logger.Info("Starting server on port %s (%s store)", cfg.ServerPort, cfg.DBDriver)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
	logger.Info("Server stopped")
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, func(), error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		client, err := database.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
			client.Disconnect(context.Background())
			return nil, nil, err
		}
		repos := &repositories{
			users:      repository.NewMongoUserRepository(db),
			properties: repository.NewMongoPropertyRepository(db),
			favorites:  repository.NewMongoFavoriteRepository(db),
			reviews:    repository.NewMongoReviewRepository(db),
		}
		return repos, func() { client.Disconnect(context.Background()) }, nil

	case config.DriverMemory:
		logger.Warn("Using in-memory store, data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			users:      memory.NewUserRepository(store),
			properties: memory.NewPropertyRepository(store),
			favorites:  memory.NewFavoriteRepository(store),
			reviews:    memory.NewReviewRepository(store),
		}, func() {}, nil

	default:
		credentials := firebase.ClientOption(cfg.FirebaseServiceAccountJSON, cfg.FirebaseServiceAccountPath)
		client, err := database.NewFirestoreClient(ctx, cfg.FirebaseProject, credentials...)
		if err != nil {
			return nil, nil, err
		}
		repos := &repositories{
			users:      repository.NewFirestoreUserRepository(client),
			properties: repository.NewFirestorePropertyRepository(client),
			favorites:  repository.NewFirestoreFavoriteRepository(client),
			reviews:    repository.NewFirestoreReviewRepository(client),
		}
		return repos, func() { client.Close() }, nil
	}
}
