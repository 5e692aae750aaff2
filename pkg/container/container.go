package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/config"
	infraCache "bookstore-catalog/internal/infrastructure/cache"
	"bookstore-catalog/internal/infrastructure/database"
	"bookstore-catalog/internal/infrastructure/seed"
	"bookstore-catalog/pkg/cache"

	bookHandler "bookstore-catalog/internal/domains/book/handler"
	bookRepo "bookstore-catalog/internal/domains/book/repository"
	bookService "bookstore-catalog/internal/domains/book/service"
	statsHandler "bookstore-catalog/internal/domains/stats/handler"
	statsService "bookstore-catalog/internal/domains/stats/service"
)

// Container holds all application dependencies, the root of the dependency
// graph. Everything in it is a singleton for the process lifetime; nothing
// below it reaches for globals.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.MongoDB
	Cache  cache.Cache

	// Repositories
	BookRepo bookRepo.RepositoryInterface

	// Services
	BookService  bookService.ServiceInterface
	StatsService statsService.ServiceInterface

	// Handlers
	BookHandler  *bookHandler.Handler
	StatsHandler *statsHandler.Handler

	redis *infraCache.RedisCache
}

// NewContainer initializes the full dependency graph.
// Any failure here means the application must not start.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Record store
	db := database.NewMongoDB(&cfg.Mongo)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	// Cache
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	// Repositories
	books := bookRepo.NewRepository(db.Collection())

	// Startup tasks: indexes first, then the one-shot seed
	if err := books.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	if err := seed.Run(ctx, books, cfg.Seed); err != nil {
		return nil, fmt.Errorf("seed data: %w", err)
	}

	// Services
	bookSvc := bookService.NewService(books, redisCache)
	statsSvc := statsService.NewService(books, redisCache)

	c := &Container{
		Config:       cfg,
		DB:           db,
		Cache:        redisCache,
		BookRepo:     books,
		BookService:  bookSvc,
		StatsService: statsSvc,
		BookHandler:  bookHandler.NewHandler(bookSvc),
		StatsHandler: statsHandler.NewHandler(statsSvc),
		redis:        redisCache,
	}

	log.Info().Msg("Container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Redis close failed")
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Mongo close failed")
		}
	}
}
