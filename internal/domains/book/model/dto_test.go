package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookRequest_Validate(t *testing.T) {
	valid := CreateBookRequest{
		Title:       "The Go Programming Language",
		Author:      "Alan A. A. Donovan",
		Description: "The authoritative resource.",
		Price:       32.99,
		Stock:       20,
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateBookRequest)
		wantErr bool
	}{
		{"valid request", func(r *CreateBookRequest) {}, false},
		{"zero price and stock are allowed", func(r *CreateBookRequest) { r.Price = 0; r.Stock = 0 }, false},
		{"missing title", func(r *CreateBookRequest) { r.Title = "" }, true},
		{"missing author", func(r *CreateBookRequest) { r.Author = "" }, true},
		{"negative price", func(r *CreateBookRequest) { r.Price = -0.01 }, true},
		{"negative stock", func(r *CreateBookRequest) { r.Stock = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateBookRequest_Validate(t *testing.T) {
	negativePrice := -5.0
	negativeStock := -2
	validPrice := 12.5

	t.Run("empty request passes validation", func(t *testing.T) {
		assert.NoError(t, UpdateBookRequest{}.Validate())
	})

	t.Run("valid partial request", func(t *testing.T) {
		assert.NoError(t, UpdateBookRequest{Price: &validPrice}.Validate())
	})

	t.Run("negative price", func(t *testing.T) {
		assert.Error(t, UpdateBookRequest{Price: &negativePrice}.Validate())
	})

	t.Run("negative stock", func(t *testing.T) {
		assert.Error(t, UpdateBookRequest{Stock: &negativeStock}.Validate())
	})
}

func TestSearchBooksRequest_Validate(t *testing.T) {
	t.Run("empty request is valid", func(t *testing.T) {
		assert.NoError(t, SearchBooksRequest{}.Validate())
	})

	t.Run("single bound is valid", func(t *testing.T) {
		min := 10.0
		assert.NoError(t, SearchBooksRequest{MinPrice: &min}.Validate())
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		min, max := 20.0, 10.0
		err := SearchBooksRequest{MinPrice: &min, MaxPrice: &max}.Validate()
		assert.ErrorIs(t, err, ErrInvalidPriceRange)
	})

	t.Run("equal bounds are allowed", func(t *testing.T) {
		min, max := 10.0, 10.0
		assert.NoError(t, SearchBooksRequest{MinPrice: &min, MaxPrice: &max}.Validate())
	})

	t.Run("negative bound is rejected", func(t *testing.T) {
		min := -1.0
		assert.Error(t, SearchBooksRequest{MinPrice: &min}.Validate())
	})
}

func TestBookPatch_IsEmpty(t *testing.T) {
	assert.True(t, BookPatch{}.IsEmpty())

	title := "A"
	assert.False(t, BookPatch{Title: &title}.IsEmpty())
}
