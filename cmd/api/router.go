package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authorhandler "catalogo-backend/internal/domains/author/handler"
	bookhandler "catalogo-backend/internal/domains/book/handler"
	categoryhandler "catalogo-backend/internal/domains/category/handler"
	publisherhandler "catalogo-backend/internal/domains/publisher/handler"
	"catalogo-backend/internal/shared/middleware"
	"catalogo-backend/pkg/container"
)

// NewRouter assembles the middleware chain and mounts every collection at the
// root path.
func NewRouter(c *container.Container) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(10, 20))

	r.GET("/", welcome)
	r.GET("/ping", ping)
	r.GET("/health", health(c))

	authorhandler.NewAuthorHandler(c.AuthorService).RegisterRoutes(r)
	categoryhandler.NewCategoryHandler(c.CategoryService).RegisterRoutes(r)
	publisherhandler.NewPublisherHandler(c.PublisherService).RegisterRoutes(r)
	bookhandler.NewBookHandler(c.BookService).RegisterRoutes(r)

	return r
}

// welcome greets at the root path.
func welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mensagem": "Bem-vindo à API da Livraria!"})
}

// ping answers the fixed body legacy clients poll for.
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, []gin.H{{"id": 1, "msg": "pong"}})
}

func health(cont *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		overall := "ok"
		dbStatus := "up"
		if err := cont.DB.HealthCheck(ctx); err != nil {
			dbStatus = "down"
			overall = "degraded"
			status = http.StatusServiceUnavailable
		}

		cacheStatus := "disabled"
		if cont.Cache != nil {
			cacheStatus = "up"
			if err := cont.Cache.Ping(ctx); err != nil {
				cacheStatus = "down"
			}
		}

		c.JSON(status, gin.H{
			"status":   overall,
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  cont.Config.App.Version,
		})
	}
}
