package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	bookModel "bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/domains/stats/model"
	"bookstore-catalog/pkg/cache"
)

// TopN is how many entries the top-seller and top-author aggregates return.
const TopN = 5

// Cached aggregates expire quickly on their own and are also dropped by the
// book service on every write (keys live under "stats:*").
const statsCacheTTL = 30 * time.Second

const (
	totalBooksKey = "stats:total_books"
	topSellingKey = "stats:top_selling_books"
	topAuthorsKey = "stats:top_authors"
)

// StatsRepository is the slice of the book repository the aggregates need.
type StatsRepository interface {
	CountAll(ctx context.Context) (int64, error)
	TopSelling(ctx context.Context, limit int) ([]bookModel.Book, error)
	TopAuthors(ctx context.Context, limit int) ([]bookModel.AuthorCount, error)
}

// ServiceInterface is the statistics business logic contract
type ServiceInterface interface {
	TotalBooks(ctx context.Context) (*model.TotalBooksResponse, error)
	TopSellingBooks(ctx context.Context) (*model.TopSellingResponse, error)
	TopAuthors(ctx context.Context) (*model.TopAuthorsResponse, error)
}

// StatsService serves read-only aggregates over the book collection.
type StatsService struct {
	repo  StatsRepository
	cache cache.Cache
}

// NewService creates a new stats service
func NewService(repo StatsRepository, cache cache.Cache) ServiceInterface {
	return &StatsService{
		repo:  repo,
		cache: cache,
	}
}

// TotalBooks implements Service.TotalBooks
func (s *StatsService) TotalBooks(ctx context.Context) (*model.TotalBooksResponse, error) {
	var cached model.TotalBooksResponse
	if found := s.cacheGet(ctx, totalBooksKey, &cached); found {
		return &cached, nil
	}

	count, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &model.TotalBooksResponse{TotalBooks: count}
	s.cacheSet(ctx, totalBooksKey, resp)
	return resp, nil
}

// TopSellingBooks implements Service.TopSellingBooks
func (s *StatsService) TopSellingBooks(ctx context.Context) (*model.TopSellingResponse, error) {
	var cached model.TopSellingResponse
	if found := s.cacheGet(ctx, topSellingKey, &cached); found {
		return &cached, nil
	}

	books, err := s.repo.TopSelling(ctx, TopN)
	if err != nil {
		return nil, err
	}

	resp := &model.TopSellingResponse{Books: books}
	s.cacheSet(ctx, topSellingKey, resp)
	return resp, nil
}

// TopAuthors implements Service.TopAuthors
func (s *StatsService) TopAuthors(ctx context.Context) (*model.TopAuthorsResponse, error) {
	var cached model.TopAuthorsResponse
	if found := s.cacheGet(ctx, topAuthorsKey, &cached); found {
		return &cached, nil
	}

	authors, err := s.repo.TopAuthors(ctx, TopN)
	if err != nil {
		return nil, err
	}

	resp := &model.TopAuthorsResponse{Authors: authors}
	s.cacheSet(ctx, topAuthorsKey, resp)
	return resp, nil
}

func (s *StatsService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Stats cache read failed")
		return false
	}
	return found
}

func (s *StatsService) cacheSet(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, statsCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Stats cache write failed")
	}
}
