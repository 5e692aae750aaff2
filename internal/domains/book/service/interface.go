package service

import (
	"context"

	"bookstore-catalog/internal/domains/book/model"
)

// ServiceInterface is the catalog business logic contract
type ServiceInterface interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	GetBook(ctx context.Context, id string) (*model.Book, error)
	UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (*model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	ListBooks(ctx context.Context) ([]model.Book, error)
	SearchBooks(ctx context.Context, req model.SearchBooksRequest) ([]model.Book, error)

	// Purchase performs the atomic buy: stock -1, sold_count +1, only while
	// stock > 0. Returns the post-purchase record, model.ErrOutOfStock or
	// model.ErrBookNotFound.
	Purchase(ctx context.Context, id string) (*model.Book, error)
}
