package container

import (
	"context"
	"fmt"

	"devnetwork-backend/internal/config"
	infraCache "devnetwork-backend/internal/infrastructure/cache"
	"devnetwork-backend/internal/infrastructure/database"
	"devnetwork-backend/internal/infrastructure/github"
	"devnetwork-backend/pkg/cache"
	"devnetwork-backend/pkg/jwt"
	"devnetwork-backend/pkg/logger"

	"devnetwork-backend/internal/domains/post"
	postHandler "devnetwork-backend/internal/domains/post/handler"
	postRepo "devnetwork-backend/internal/domains/post/repository"
	postService "devnetwork-backend/internal/domains/post/service"
	"devnetwork-backend/internal/domains/profile"
	profileHandler "devnetwork-backend/internal/domains/profile/handler"
	profileRepo "devnetwork-backend/internal/domains/profile/repository"
	profileService "devnetwork-backend/internal/domains/profile/service"
	"devnetwork-backend/internal/domains/user"
	userHandler "devnetwork-backend/internal/domains/user/handler"
	userRepo "devnetwork-backend/internal/domains/user/repository"
	userService "devnetwork-backend/internal/domains/user/service"
)

// Container holds the application's dependency graph.
// Initialization order: config, infrastructure, repositories, services,
// handlers. Everything is a singleton for the process lifetime.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	UserRepo    user.Repository
	ProfileRepo profile.Repository
	PostRepo    post.Repository

	UserService    user.Service
	ProfileService profile.Service
	PostService    post.Service

	UserHandler    *userHandler.UserHandler
	ProfileHandler *profileHandler.ProfileHandler
	PostHandler    *postHandler.PostHandler

	redis *infraCache.RedisClient
}

// NewContainer builds the full dependency graph
func NewContainer() (*Container, error) {
	ctx := context.Background()
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	c.DB = db

	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("init redis: %w", err)
	}
	c.redis = redisClient
	c.Cache = redisClient

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	githubClient := github.NewClient(&cfg.GitHub)

	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.ProfileRepo = profileRepo.NewPostgresRepository(db.Pool)
	c.PostRepo = postRepo.NewPostgresRepository(db.Pool)

	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.PostService = postService.NewPostService(c.PostRepo, c.UserRepo)
	c.ProfileService = profileService.NewProfileService(
		c.ProfileRepo, c.PostRepo, c.UserRepo, githubClient, c.Cache,
	)

	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)

	logger.Info("container initialized", map[string]interface{}{
		"env": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases infrastructure resources
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("redis close failed", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
