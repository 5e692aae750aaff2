package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/domains/book/service"
	"bookstore-catalog/internal/shared/response"
)

// Handler - HTTP handler for the catalog
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// CreateBook - POST /api/v1/books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), req)
	if err != nil {
		model.HandleBookError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, model.CreateBookResponse{
		Message: "Book added successfully",
		Book:    *book,
	})
}

// GetBook - GET /api/v1/books/:id
func (h *Handler) GetBook(c *gin.Context) {
	book, err := h.service.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		model.HandleBookError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

// UpdateBook - PUT /api/v1/books/:id
// Partial update: only the fields present in the body are written.
func (h *Handler) UpdateBook(c *gin.Context) {
	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		model.HandleBookError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

// DeleteBook - DELETE /api/v1/books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	if err := h.service.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		model.HandleBookError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

// ListBooks - GET /api/v1/books
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		model.HandleBookError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{Total: len(books)})
}

// SearchBooks - GET /api/v1/search
// Query params: title, author, min_price, max_price
func (h *Handler) SearchBooks(c *gin.Context) {
	req := model.SearchBooksRequest{
		Title:  c.Query("title"),
		Author: c.Query("author"),
	}

	if minStr := c.Query("min_price"); minStr != "" {
		min, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			response.BadRequest(c, "min_price must be a number")
			return
		}
		req.MinPrice = &min
	}

	if maxStr := c.Query("max_price"); maxStr != "" {
		max, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			response.BadRequest(c, "max_price must be a number")
			return
		}
		req.MaxPrice = &max
	}

	books, err := h.service.SearchBooks(c.Request.Context(), req)
	if err != nil {
		model.HandleBookError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{Total: len(books)})
}

// PurchaseBook - POST /api/v1/books/:id/buy
func (h *Handler) PurchaseBook(c *gin.Context) {
	book, err := h.service.Purchase(c.Request.Context(), c.Param("id"))
	if err != nil {
		model.HandleBookError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.PurchaseResponse{
		Message: "Purchase successful",
		Book:    *book,
	})
}
