package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/domains/stats/service"
	"bookstore-catalog/internal/shared/response"
)

// Handler - HTTP handler for read-only statistics
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// TotalBooks - GET /api/v1/stats/total_books
func (h *Handler) TotalBooks(c *gin.Context) {
	stats, err := h.service.TotalBooks(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// TopSellingBooks - GET /api/v1/stats/top_selling_books
func (h *Handler) TopSellingBooks(c *gin.Context) {
	stats, err := h.service.TopSellingBooks(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// TopAuthors - GET /api/v1/stats/top_authors
func (h *Handler) TopAuthors(c *gin.Context) {
	stats, err := h.service.TopAuthors(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// serverError - stats only read the store, so every failure here is a store
// failure and surfaces as 500
func (h *Handler) serverError(c *gin.Context, err error) {
	log.Error().
		Str("request_id", c.GetString("request_id")).
		Err(err).
		Msg("Stats query failed")
	response.InternalServerError(c, "Internal server error")
}
