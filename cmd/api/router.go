package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupBookRoutes(v1, c)
		setupStatsRoutes(v1, c)
	}

	return router
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.POST("", c.BookHandler.CreateBook)
		books.GET("/:id", c.BookHandler.GetBook)
		books.PUT("/:id", c.BookHandler.UpdateBook)
		books.DELETE("/:id", c.BookHandler.DeleteBook)
		books.POST("/:id/buy", c.BookHandler.PurchaseBook)
	}

	v1.GET("/search", c.BookHandler.SearchBooks)
}

func setupStatsRoutes(v1 *gin.RouterGroup, c *container.Container) {
	stats := v1.Group("/stats")
	{
		stats.GET("/total_books", c.StatsHandler.TotalBooks)
		stats.GET("/top_selling_books", c.StatsHandler.TopSellingBooks)
		stats.GET("/top_authors", c.StatsHandler.TopAuthors)
	}
}

// healthCheckHandler pings the store and the cache and reports per-dependency
// status. Degraded dependencies flip the overall status to 503.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{}
		healthy := true

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["mongo"] = err.Error()
			healthy = false
		} else {
			checks["mongo"] = "ok"
		}

		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		} else {
			checks["redis"] = "ok"
		}

		status := http.StatusOK
		overall := "healthy"
		if !healthy {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		ctx.JSON(status, gin.H{
			"status":  overall,
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
