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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/PetSymptomTracker/internal/handler/http"
	redisclient "github.com/mikiasgoitom/PetSymptomTracker/internal/infrastructure/cache"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/infrastructure/config"
	database "github.com/mikiasgoitom/PetSymptomTracker/internal/infrastructure/database"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/PetSymptomTracker/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/infrastructure/repository/postgres"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/infrastructure/seeder"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/infrastructure/store"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/infrastructure/validator"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/PetSymptomTracker/internal/usecase/contract"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.New(appConfig.GetAppEnv())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(appConfig, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(appConfig usecasecontract.IConfigProvider, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger := logger.NewZapLogger(zl)

	// Dependency Injection: Repositories
	userRepo, closeStore, err := openUserStore(ctx, appConfig, zl)
	if err != nil {
		return err
	}
	defer closeStore()

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher(appConfig.GetBcryptCost())
	jwtManager, err := jwt.NewJWTManager(appConfig.GetJWTSecret(), appConfig.GetTokenTTL())
	if err != nil {
		return err
	}
	jwtService := jwt.NewJWTService(jwtManager)
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appLogger, appValidator, uuidGenerator)

	// Optional Dependency Injection: Redis token revocation
	if redisURL := appConfig.GetRedisURL(); redisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, redisURL)
		if err != nil {
			return err
		}
		defer func() { _ = redisclient.Close(rdb) }()
		userUsecase.SetRevocationStore(store.NewTokenRevocationStore(rdb))
		zl.Info("token revocation enabled")
	}

	if appConfig.GetSeedUsers() {
		created, err := seeder.NewSeeder(userRepo, hasher, uuidGenerator, appLogger).Run(ctx)
		if err != nil {
			return err
		}
		zl.Info("seeded demo accounts", zap.Int("created", created))
	}

	if appConfig.GetAppEnv() == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Setup API routes
	appRouter, err := handlerHttp.NewRouter(userUsecase, appConfig, zl, nil)
	if err != nil {
		return err
	}
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.GetPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server running", zap.String("port", appConfig.GetPort()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openUserStore connects the configured backend and returns its repository.
func openUserStore(ctx context.Context, appConfig usecasecontract.IConfigProvider, zl *zap.Logger) (contract.IUserRepository, func(), error) {
	switch appConfig.GetStoreDriver() {
	case config.StoreDriverMongo:
		mongoClient, err := database.NewMongoDBClient(ctx, appConfig.GetMongoURI())
		if err != nil {
			return nil, nil, err
		}
		repo := mongodb.NewMongoUserRepository(mongoClient.Client.Database(appConfig.GetMongoDBName()).Collection("users"))
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = mongoClient.Disconnect()
			return nil, nil, err
		}
		zl.Info("user store ready", zap.String("driver", config.StoreDriverMongo))
		return repo, func() { _ = mongoClient.Disconnect() }, nil
	default:
		db, err := database.NewPostgresDB(ctx, appConfig.GetDatabaseURL())
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		zl.Info("user store ready", zap.String("driver", config.StoreDriverPostgres))
		return postgres.NewPostgresUserRepository(db), func() { _ = db.Close() }, nil
	}
}
