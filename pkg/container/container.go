// Package container builds the dependency graph: config, infrastructure,
// repositories, services, handlers.
package container

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"catalogo-backend/internal/config"
	infracache "catalogo-backend/internal/infrastructure/cache"
	"catalogo-backend/internal/infrastructure/database"

	"catalogo-backend/internal/domains/author"
	authorrepo "catalogo-backend/internal/domains/author/repository"
	authorsvc "catalogo-backend/internal/domains/author/service"
	"catalogo-backend/internal/domains/book"
	bookrepo "catalogo-backend/internal/domains/book/repository"
	booksvc "catalogo-backend/internal/domains/book/service"
	"catalogo-backend/internal/domains/category"
	categoryrepo "catalogo-backend/internal/domains/category/repository"
	categorysvc "catalogo-backend/internal/domains/category/service"
	"catalogo-backend/internal/domains/publisher"
	publisherrepo "catalogo-backend/internal/domains/publisher/repository"
	publishersvc "catalogo-backend/internal/domains/publisher/service"

	pkgcache "catalogo-backend/pkg/cache"
)

type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  pkgcache.Cache

	AuthorRepo    author.AuthorRepository
	CategoryRepo  category.CategoryRepository
	PublisherRepo publisher.PublisherRepository
	BookRepo      book.BookRepository

	AuthorService    author.AuthorService
	CategoryService  category.CategoryService
	PublisherService publisher.PublisherService
	BookService      book.BookService
}

// New connects infrastructure and wires every layer. The database is
// required; Redis is not, a failed connect just disables caching.
func New(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, err
	}

	if cfg.Redis.Enabled {
		redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, running without cache")
		} else {
			c.Cache = redisCache
		}
	}

	pool := c.DB.Pool
	c.AuthorRepo = authorrepo.NewPostgresAuthorRepository(pool)
	c.CategoryRepo = categoryrepo.NewPostgresCategoryRepository(pool)
	c.PublisherRepo = publisherrepo.NewPostgresPublisherRepository(pool)
	c.BookRepo = bookrepo.NewPostgresBookRepository(pool)

	c.AuthorService = authorsvc.NewAuthorService(pool, c.AuthorRepo, c.Cache)
	c.CategoryService = categorysvc.NewCategoryService(pool, c.CategoryRepo, c.Cache)
	c.PublisherService = publishersvc.NewPublisherService(pool, c.PublisherRepo, c.Cache)
	c.BookService = booksvc.NewBookService(pool, c.BookRepo,
		c.CategoryRepo, c.PublisherRepo, c.AuthorRepo, c.Cache)

	return c, nil
}

// Cleanup closes infrastructure connections. Safe to call on a partially
// built container.
func (c *Container) Cleanup() {
	if closer, ok := c.Cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
