package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/config"
	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/domains/book/repository"
)

// Run loads the seed dataset into an empty collection. It runs once per
// process lifetime, during container construction, and is a no-op when
// seeding is disabled, the file is absent, or records already exist.
func Run(ctx context.Context, repo repository.RepositoryInterface, cfg config.SeedConfig) error {
	if !cfg.Enabled {
		log.Info().Msg("[SEED] Seeding disabled, skipping")
		return nil
	}

	count, err := repo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: count existing books: %w", err)
	}
	if count > 0 {
		log.Info().Int64("existing", count).Msg("[SEED] Collection not empty, skipping")
		return nil
	}

	books, err := LoadFile(cfg.File)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("file", cfg.File).Msg("[SEED] Seed file not found, skipping")
			return nil
		}
		return err
	}
	if len(books) == 0 {
		log.Warn().Str("file", cfg.File).Msg("[SEED] Seed file is empty, skipping")
		return nil
	}

	if err := repo.InsertMany(ctx, books); err != nil {
		return fmt.Errorf("seed: insert books: %w", err)
	}

	log.Info().Int("count", len(books)).Str("file", cfg.File).Msg("[SEED] Seeded books")
	return nil
}

// LoadFile parses a JSON array of book records. Records without an id get
// one assigned so the unique _id constraint holds for any dataset.
func LoadFile(path string) ([]model.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("seed: parse %s: %w", path, err)
	}

	for i := range books {
		if books[i].ID == "" {
			books[i].ID = uuid.NewString()
		}
	}
	return books, nil
}
