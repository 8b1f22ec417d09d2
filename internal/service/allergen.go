package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lvicens/blanca-med/backend/internal/models"
	"github.com/lvicens/blanca-med/backend/internal/search"
)

const (
	categoriesCacheKey = "allergens:categories"
	categoriesCacheTTL = 10 * time.Minute
)

// AllergenService owns the curated dataset snapshot. The snapshot is
// built once at startup and replaced wholesale on Reload; a match running
// against the old snapshot keeps it until it returns.
type AllergenService struct {
	db    *gorm.DB
	redis *redis.Client

	mu    sync.RWMutex
	store *search.Store
}

// NewAllergenService loads the dataset and builds the initial snapshot.
// A dataset that fails validation (duplicate names, malformed rows)
// fails startup; the data source has to be corrected, not guessed at.
func NewAllergenService(db *gorm.DB, redisClient *redis.Client) (*AllergenService, error) {
	s := &AllergenService{
		db:    db,
		redis: redisClient,
	}
	if err := s.Reload(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload rebuilds the snapshot from the database and swaps it in
func (s *AllergenService) Reload(ctx context.Context) error {
	var rows []models.Allergen
	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return err
	}

	records := make([]search.Record, len(rows))
	for i, row := range rows {
		records[i] = row.SearchRecord()
	}

	store, err := search.NewStore(records)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.store = store
	s.mu.Unlock()

	if s.redis != nil {
		s.redis.Del(ctx, categoriesCacheKey)
	}
	return nil
}

// Snapshot returns the current dataset snapshot
func (s *AllergenService) Snapshot() *search.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store
}

// Search runs a free-text name lookup over the curated dataset
func (s *AllergenService) Search(raw string) (search.Descriptor, search.Result) {
	d := search.Normalize(raw, search.ModeByName)
	return d, search.Match(d, s.Snapshot())
}

// Browse partitions one category into must-avoid and safe groups
func (s *AllergenService) Browse(category string) (search.Descriptor, search.Result) {
	d := search.Normalize(category, search.ModeByCategory)
	return d, search.Match(d, s.Snapshot())
}

// Categories lists the distinct dataset categories, cached in redis when
// a client is available
func (s *AllergenService) Categories(ctx context.Context) ([]string, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, categoriesCacheKey).Result(); err == nil {
			var categories []string
			if err := json.Unmarshal([]byte(cached), &categories); err == nil {
				return categories, nil
			}
		}
	}

	categories := s.Snapshot().Categories()

	if s.redis != nil {
		if payload, err := json.Marshal(categories); err == nil {
			s.redis.Set(ctx, categoriesCacheKey, payload, categoriesCacheTTL)
		}
	}
	return categories, nil
}

// ExportAll returns the complete dataset, independent of any search state
func (s *AllergenService) ExportAll() []search.Record {
	return s.Snapshot().Records()
}
