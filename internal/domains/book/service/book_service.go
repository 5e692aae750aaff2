package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/domains/book/repository"
	"bookstore-catalog/pkg/cache"
)

const (
	bookCacheTTL = 5 * time.Minute

	// statsKeyPattern wipes the stats domain's cached aggregates whenever
	// any write changes the collection they summarize.
	statsKeyPattern = "stats:*"
)

func bookCacheKey(id string) string {
	return "book:" + id
}

// BookService holds the catalog business logic. The repository is the only
// source of truth; the cache is read-through and invalidated on every write.
type BookService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
}

// NewService creates a new book service
func NewService(repo repository.RepositoryInterface, cache cache.Cache) ServiceInterface {
	return &BookService{
		repo:  repo,
		cache: cache,
	}
}

// CreateBook implements Service.CreateBook
func (s *BookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	book := &model.Book{
		ID:          id,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		SoldCount:   0,
	}

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	return book, nil
}

// GetBook implements Service.GetBook with a read-through cache.
// Cache failures degrade to a store read, they never fail the request.
func (s *BookService) GetBook(ctx context.Context, id string) (*model.Book, error) {
	var cached model.Book
	found, err := s.cache.Get(ctx, bookCacheKey(id), &cached)
	if err != nil {
		log.Warn().Err(err).Str("book_id", id).Msg("Cache read failed")
	}
	if found {
		return &cached, nil
	}

	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, bookCacheKey(id), book, bookCacheTTL); err != nil {
		log.Warn().Err(err).Str("book_id", id).Msg("Cache write failed")
	}
	return book, nil
}

// UpdateBook implements Service.UpdateBook
func (s *BookService) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	patch := req.ToPatch()
	if patch.IsEmpty() {
		return nil, model.ErrEmptyUpdate
	}

	book, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.invalidateBook(ctx, id)
	return book, nil
}

// DeleteBook implements Service.DeleteBook
func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateBook(ctx, id)
	return nil
}

// ListBooks implements Service.ListBooks
func (s *BookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.List(ctx)
}

// SearchBooks implements Service.SearchBooks
func (s *BookService) SearchBooks(ctx context.Context, req model.SearchBooksRequest) ([]model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Search(ctx, req.ToQuery())
}

// Purchase implements Service.Purchase by delegating the guarded decrement
// to the store. There is deliberately no stock check here: any read-then-write
// in this layer would reopen the race the repository closes.
func (s *BookService) Purchase(ctx context.Context, id string) (*model.Book, error) {
	book, err := s.repo.PurchaseOne(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("book_id", book.ID).
		Int("stock", book.Stock).
		Int("sold_count", book.SoldCount).
		Msg("Book purchased")

	s.invalidateBook(ctx, id)
	return book, nil
}

// invalidateBook drops the cached record and the stats aggregates after a
// write touching a single book.
func (s *BookService) invalidateBook(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, bookCacheKey(id)); err != nil {
		log.Warn().Err(err).Str("book_id", id).Msg("Cache invalidation failed")
	}
	s.invalidateStats(ctx)
}

func (s *BookService) invalidateStats(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, statsKeyPattern); err != nil {
		log.Warn().Err(err).Str("pattern", statsKeyPattern).Msg("Stats cache invalidation failed")
	}
}
