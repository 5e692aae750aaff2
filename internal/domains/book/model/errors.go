package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/shared/response"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrBookAlreadyExists = errors.New("book id already exists")
	ErrOutOfStock        = errors.New("book is out of stock")
	ErrInvalidPriceRange = errors.New("min_price must be <= max_price")
	ErrEmptyUpdate       = errors.New("update request contains no fields")
)

var bookErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrBookNotFound: {
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: "The specified book does not exist",
	},
	ErrBookAlreadyExists: {
		Status:  http.StatusConflict,
		Code:    "CONFLICT",
		Message: "A book with this id already exists",
	},
	ErrOutOfStock: {
		Status:  http.StatusBadRequest,
		Code:    "OUT_OF_STOCK",
		Message: "The book is out of stock",
	},
	ErrInvalidPriceRange: {
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: "min_price must be less than or equal to max_price",
	},
	ErrEmptyUpdate: {
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: "The update request contains no fields",
	},
}

// HandleBookError maps a domain error to its HTTP response.
// Returns true when err was non-nil and a response has been written.
// Unknown errors are store failures: logged and surfaced as 500, never
// retried here.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", validationErrs)
		return true
	}

	for sentinel, mapping := range bookErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, mapping.Status, mapping.Code, mapping.Message)
			return true
		}
	}

	log.Error().
		Str("request_id", c.GetString("request_id")).
		Err(err).
		Msg("Unhandled book domain error")
	response.InternalServerError(c, "Internal server error")
	return true
}
