// Package main provides the API server entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	profileapp "github.com/stkrizh/conduit/internal/application/profile"
	userapp "github.com/stkrizh/conduit/internal/application/user"
	"github.com/stkrizh/conduit/internal/config"
	httphandler "github.com/stkrizh/conduit/internal/handler/http"
	"github.com/stkrizh/conduit/internal/infrastructure/auth"
	"github.com/stkrizh/conduit/internal/infrastructure/httpserver"
	"github.com/stkrizh/conduit/internal/infrastructure/repository/mongodb"
)

// Container initialization timeouts.
const (
	containerInitTimeout   = 30 * time.Second
	redisPingTimeout       = 5 * time.Second
	mongoDisconnectTimeout = 10 * time.Second
	healthCheckTimeout     = 5 * time.Second
)

// Container holds all application dependencies and manages their lifecycle.
// It implements httpserver.HealthChecker for unified health endpoint support.
type Container struct {
	// Configuration
	Config *config.Config
	Logger *slog.Logger

	// Infrastructure
	MongoDB     *mongo.Client
	MongoDBName string
	Redis       *redis.Client

	// Auth components
	JWTManager  *auth.JWTManager
	Hasher      *auth.BcryptHasher
	TokenStore  *auth.TokenStore
	Revocations *auth.RevocationChecker

	// Repositories
	UserRepo    *mongodb.MongoUserRepository
	ProfileRepo *mongodb.MongoProfileRepository

	// Use Cases
	SignInUC         *userapp.SignInUseCase
	RegisterUC       *userapp.RegisterUseCase
	GetCurrentUserUC *userapp.GetCurrentUserUseCase
	GetProfileUC     *profileapp.GetProfileUseCase
	FollowUC         *profileapp.FollowUseCase
	UnfollowUC       *profileapp.UnfollowUseCase

	// HTTP Handlers
	UserHandler    *httphandler.UserHandler
	ProfileHandler *httphandler.ProfileHandler
}

// Ensure Container implements httpserver.HealthChecker.
var _ httpserver.HealthChecker = (*Container)(nil)

// ContainerOption configures the Container.
type ContainerOption func(*Container)

// WithLogger sets a custom logger for the container.
func WithLogger(logger *slog.Logger) ContainerOption {
	return func(c *Container) {
		c.Logger = logger
	}
}

// NewContainer creates a new dependency injection container.
func NewContainer(cfg *config.Config, opts ...ContainerOption) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.setupInfrastructure(); err != nil {
		// Clean up any partially initialized resources
		_ = c.Close()
		return nil, fmt.Errorf("failed to setup infrastructure: %w", err)
	}

	if err := c.setupAuth(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to setup auth: %w", err)
	}

	c.setupRepositories()
	c.setupUseCases()
	c.setupHTTPHandlers()

	if err := c.validateWiring(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("wiring validation failed: %w", err)
	}

	return c, nil
}

// setupInfrastructure initializes MongoDB and Redis connections.
func (c *Container) setupInfrastructure() error {
	ctx, cancel := context.WithTimeout(context.Background(), containerInitTimeout)
	defer cancel()

	if err := c.setupMongoDB(ctx); err != nil {
		return fmt.Errorf("mongodb: %w", err)
	}

	if err := c.setupRedis(ctx); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	return nil
}

// setupMongoDB initializes the MongoDB client.
func (c *Container) setupMongoDB(ctx context.Context) error {
	clientOpts := options.Client().
		ApplyURI(c.Config.MongoDB.URI).
		SetMaxPoolSize(c.Config.MongoDB.MaxPoolSize)

	client, connectErr := mongo.Connect(clientOpts)
	if connectErr != nil {
		return fmt.Errorf("failed to connect: %w", connectErr)
	}

	// Verify connection
	pingCtx, cancel := context.WithTimeout(ctx, c.Config.MongoDB.Timeout)
	defer cancel()

	if pingErr := client.Ping(pingCtx, nil); pingErr != nil {
		return fmt.Errorf("failed to ping: %w", pingErr)
	}

	c.MongoDB = client
	c.MongoDBName = c.Config.MongoDB.Database

	c.Logger.InfoContext(ctx, "connected to MongoDB",
		slog.String("database", c.Config.MongoDB.Database),
	)

	return nil
}

// setupRedis initializes the Redis client.
func (c *Container) setupRedis(ctx context.Context) error {
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
		PoolSize: c.Config.Redis.PoolSize,
	})

	// Verify connection
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if pingErr := c.Redis.Ping(pingCtx).Err(); pingErr != nil {
		return fmt.Errorf("failed to ping: %w", pingErr)
	}

	c.Logger.InfoContext(ctx, "connected to Redis",
		slog.String("addr", c.Config.Redis.Addr),
	)

	return nil
}

// setupAuth initializes token issuance, password hashing and revocation.
func (c *Container) setupAuth() error {
	manager, err := auth.NewJWTManager(auth.JWTConfig{
		Secret: c.Config.Auth.JWTSecret,
		Issuer: "conduit",
		TTL:    c.Config.Auth.TokenTTL,
	})
	if err != nil {
		return fmt.Errorf("jwt manager: %w", err)
	}
	c.JWTManager = manager

	c.Hasher = auth.NewBcryptHasher(c.Config.Auth.BcryptCost)

	c.TokenStore = auth.NewTokenStore(auth.TokenStoreConfig{
		Client: c.Redis,
	})
	c.Revocations = auth.NewRevocationChecker(c.TokenStore)

	c.Logger.Debug("auth components initialized",
		slog.Duration("token_ttl", c.Config.Auth.TokenTTL),
	)

	return nil
}

// setupRepositories initializes all repository implementations and their indexes.
func (c *Container) setupRepositories() {
	db := c.MongoDB.Database(c.MongoDBName)

	c.UserRepo = mongodb.NewMongoUserRepository(
		db.Collection(mongodb.UsersCollection),
		c.Hasher,
		mongodb.WithUserRepoLogger(c.Logger),
	)

	c.ProfileRepo = mongodb.NewMongoProfileRepository(
		db.Collection(mongodb.UsersCollection),
		db.Collection(mongodb.FollowsCollection),
		mongodb.WithProfileRepoLogger(c.Logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), c.Config.MongoDB.Timeout)
	defer cancel()

	if err := c.UserRepo.EnsureIndexes(ctx); err != nil {
		c.Logger.Warn("failed to ensure user indexes", slog.String("error", err.Error()))
	}
	if err := c.ProfileRepo.EnsureIndexes(ctx); err != nil {
		c.Logger.Warn("failed to ensure follow indexes", slog.String("error", err.Error()))
	}
}

// setupUseCases initializes the application layer.
func (c *Container) setupUseCases() {
	c.SignInUC = userapp.NewSignInUseCase(c.UserRepo, c.JWTManager, c.Logger)
	c.RegisterUC = userapp.NewRegisterUseCase(c.UserRepo, c.Hasher, c.JWTManager, c.Logger)
	c.GetCurrentUserUC = userapp.NewGetCurrentUserUseCase(c.UserRepo)

	c.GetProfileUC = profileapp.NewGetProfileUseCase(c.ProfileRepo)
	c.FollowUC = profileapp.NewFollowUseCase(c.ProfileRepo, c.Logger)
	c.UnfollowUC = profileapp.NewUnfollowUseCase(c.ProfileRepo, c.Logger)
}

// setupHTTPHandlers initializes the transport layer.
func (c *Container) setupHTTPHandlers() {
	c.UserHandler = httphandler.NewUserHandler(
		c.SignInUC,
		c.RegisterUC,
		c.GetCurrentUserUC,
		c.Revocations,
	)

	c.ProfileHandler = httphandler.NewProfileHandler(
		c.GetProfileUC,
		c.FollowUC,
		c.UnfollowUC,
	)
}

// validateWiring ensures all required dependencies are properly initialized.
func (c *Container) validateWiring() error {
	var errs []error

	if c.MongoDB == nil {
		errs = append(errs, errors.New("mongodb client not initialized"))
	}
	if c.Redis == nil {
		errs = append(errs, errors.New("redis client not initialized"))
	}
	if c.JWTManager == nil {
		errs = append(errs, errors.New("jwt manager not initialized"))
	}
	if c.UserHandler == nil {
		errs = append(errs, errors.New("user handler not initialized"))
	}
	if c.ProfileHandler == nil {
		errs = append(errs, errors.New("profile handler not initialized"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// IsReady checks if all infrastructure components are ready to serve traffic.
func (c *Container) IsReady(ctx context.Context) bool {
	checkCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if c.MongoDB == nil || c.MongoDB.Ping(checkCtx, nil) != nil {
		return false
	}
	if c.Redis == nil || c.Redis.Ping(checkCtx).Err() != nil {
		return false
	}
	return true
}

// GetHealthStatus returns the health of each infrastructure component.
func (c *Container) GetHealthStatus(ctx context.Context) []httpserver.ComponentStatus {
	checkCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	components := make([]httpserver.ComponentStatus, 0, 2)

	mongoStatus := httpserver.ComponentStatus{Name: "mongodb", Status: httpserver.StatusHealthy}
	if c.MongoDB == nil {
		mongoStatus.Status = httpserver.StatusUnhealthy
		mongoStatus.Message = "not initialized"
	} else if err := c.MongoDB.Ping(checkCtx, nil); err != nil {
		mongoStatus.Status = httpserver.StatusUnhealthy
		mongoStatus.Message = err.Error()
	}
	components = append(components, mongoStatus)

	redisStatus := httpserver.ComponentStatus{Name: "redis", Status: httpserver.StatusHealthy}
	if c.Redis == nil {
		redisStatus.Status = httpserver.StatusUnhealthy
		redisStatus.Message = "not initialized"
	} else if err := c.Redis.Ping(checkCtx).Err(); err != nil {
		redisStatus.Status = httpserver.StatusUnhealthy
		redisStatus.Message = err.Error()
	}
	components = append(components, redisStatus)

	return components
}

// Close releases all container resources.
func (c *Container) Close() error {
	var errs []error

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}

	if c.MongoDB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), mongoDisconnectTimeout)
		defer cancel()
		if err := c.MongoDB.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("mongodb disconnect: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	c.Logger.Info("container resources released")
	return nil
}
