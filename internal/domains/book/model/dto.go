package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateBookRequest creates a catalog record. ID is optional: when omitted
// the service assigns a UUID, when supplied it must be unique.
type CreateBookRequest struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// Validate validates CreateBookRequest
func (req CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&req.Author, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Description, validation.Length(0, 5000)),
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.Stock, validation.Min(0)),
	)
}

// UpdateBookRequest is a partial update: absent fields stay untouched.
// SoldCount is writable here on purpose, this is the administrative path.
type UpdateBookRequest struct {
	Title       *string  `json:"title,omitempty"`
	Author      *string  `json:"author,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	SoldCount   *int     `json:"sold_count,omitempty"`
}

// Validate validates UpdateBookRequest. Nil fields are skipped.
func (req UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Length(1, 500)),
		validation.Field(&req.Author, validation.Length(1, 200)),
		validation.Field(&req.Description, validation.Length(0, 5000)),
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.Stock, validation.Min(0)),
		validation.Field(&req.SoldCount, validation.Min(0)),
	)
}

// ToPatch converts the request into the repository patch.
func (req UpdateBookRequest) ToPatch() BookPatch {
	return BookPatch{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		SoldCount:   req.SoldCount,
	}
}

// SearchBooksRequest filters by case-insensitive substring on title/author
// (AND when both are given) and an inclusive price range.
type SearchBooksRequest struct {
	Title    string
	Author   string
	MinPrice *float64
	MaxPrice *float64
}

// Validate validates SearchBooksRequest.
// A range with min_price > max_price is rejected rather than silently
// returning no results.
func (req SearchBooksRequest) Validate() error {
	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		return ErrInvalidPriceRange
	}

	return validation.ValidateStruct(&req,
		validation.Field(&req.MinPrice, validation.Min(0.0)),
		validation.Field(&req.MaxPrice, validation.Min(0.0)),
	)
}

// ToQuery converts the request into the repository filter.
func (req SearchBooksRequest) ToQuery() SearchQuery {
	return SearchQuery{
		Title:    req.Title,
		Author:   req.Author,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	}
}

// CreateBookResponse wraps the stored record and its assigned id.
type CreateBookResponse struct {
	Message string `json:"message"`
	Book    Book   `json:"book"`
}

// PurchaseResponse is returned on a successful purchase with the
// post-decrement record state.
type PurchaseResponse struct {
	Message string `json:"message"`
	Book    Book   `json:"book"`
}
