package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wtwr-app/wtwr-api/internal/config"
	"github.com/wtwr-app/wtwr-api/internal/platform/logger"
	"github.com/wtwr-app/wtwr-api/internal/platform/mongodb"
	"github.com/wtwr-app/wtwr-api/internal/service/auth"
	"github.com/wtwr-app/wtwr-api/internal/store"
)

// application holds the shared dependencies of the server: configuration,
// logging, the database client, stores and services. Handlers are created
// from it when the router is built.
type application struct {
	config *config.Config
	logger *slog.Logger

	mongoClient *mongo.Client

	userStore store.UserStore
	itemStore store.ItemStore

	jwtService  auth.JWTService
	hasher      *auth.BcryptHasher
	credentials *auth.CredentialService
}

// newApplication loads configuration, sets up logging, connects to MongoDB
// and wires the dependency graph.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	client, err := mongodb.NewClient(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db := client.Database(cfg.Database.Name)

	userStore := mongodb.NewMongoUserStore(db)
	itemStore := mongodb.NewMongoItemStore(db)

	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := userStore.EnsureIndexes(indexCtx); err != nil {
		return nil, fmt.Errorf("failed to ensure user indexes: %w", err)
	}
	if err := itemStore.EnsureIndexes(indexCtx); err != nil {
		return nil, fmt.Errorf("failed to ensure item indexes: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	return &application{
		config:      cfg,
		logger:      appLogger,
		mongoClient: client,
		userStore:   userStore,
		itemStore:   itemStore,
		jwtService:  jwtService,
		hasher:      hasher,
		credentials: auth.NewCredentialService(userStore, hasher),
	}, nil
}

// Run builds the router and serves HTTP until a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.mongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.mongoClient.Disconnect(ctx); err != nil {
		app.logger.Error("failed to disconnect from database", "error", err)
	}
}
