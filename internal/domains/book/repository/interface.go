package repository

import (
	"context"

	"bookstore-catalog/internal/domains/book/model"
)

// RepositoryInterface is the contract against the record store.
// Every read and write of book state goes through here; no caller keeps
// its own copy of record data.
type RepositoryInterface interface {
	// Create inserts a new record. Returns model.ErrBookAlreadyExists when
	// the id is already taken.
	Create(ctx context.Context, book *model.Book) error

	// GetByID returns the record or model.ErrBookNotFound.
	GetByID(ctx context.Context, id string) (*model.Book, error)

	// Update applies a partial patch and returns the post-update record.
	// Fields not set in the patch are left untouched.
	Update(ctx context.Context, id string, patch model.BookPatch) (*model.Book, error)

	// Delete removes the record permanently.
	Delete(ctx context.Context, id string) error

	// List returns all records, order unspecified.
	List(ctx context.Context) ([]model.Book, error)

	// Search returns all records matching the query.
	Search(ctx context.Context, query model.SearchQuery) ([]model.Book, error)

	// PurchaseOne atomically decrements stock and increments sold_count for
	// the record with the given id, but only while stock > 0. The guard is
	// evaluated by the store inside a single conditional update; there is no
	// point at which a reader can observe negative stock. Returns the
	// post-purchase record, model.ErrOutOfStock, or model.ErrBookNotFound.
	PurchaseOne(ctx context.Context, id string) (*model.Book, error)

	// CountAll returns the number of records in the store.
	CountAll(ctx context.Context) (int64, error)

	// TopSelling returns up to limit records ordered by sold_count descending.
	TopSelling(ctx context.Context, limit int) ([]model.Book, error)

	// TopAuthors returns up to limit authors ordered by how many records
	// they account for, descending; ties break by author name ascending.
	TopAuthors(ctx context.Context, limit int) ([]model.AuthorCount, error)

	// InsertMany bulk-inserts records; used by startup seeding.
	InsertMany(ctx context.Context, books []model.Book) error

	// EnsureIndexes builds the secondary indexes on title, author and price.
	EnsureIndexes(ctx context.Context) error
}
