package repository

import (
	"sync"

	"catalog-api/internal/domain"

	"go.uber.org/zap"
)

// Store owns the four in-memory catalog collections. It is the single
// source of truth for the process: products, categories and brands are
// read-only after seeding, users grow through the write path. A single
// coarse reader/writer lock guards every operation; all scans are cheap
// (at most ~10,000 products) so finer locking buys nothing.
type Store struct {
	mu  sync.RWMutex
	log *zap.Logger

	products   []domain.Product
	categories []domain.Category
	brands     []domain.Brand
	users      []domain.User

	seeded bool
}

// NewStore creates an empty, unseeded store. Callers are expected to Seed
// it once at startup and pass the handle down by injection.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{log: log}
}

// StateReport summarizes the store for health checks.
type StateReport struct {
	IsValid       bool `json:"is_valid"`
	ProductCount  int  `json:"product_count"`
	UserCount     int  `json:"user_count"`
	BrandCount    int  `json:"brand_count"`
	CategoryCount int  `json:"category_count"`
}

// ValidateState reports whether the store has been seeded and how many
// rows each collection holds.
func (s *Store) ValidateState() StateReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StateReport{
		IsValid:       s.seeded,
		ProductCount:  len(s.products),
		UserCount:     len(s.users),
		BrandCount:    len(s.brands),
		CategoryCount: len(s.categories),
	}
}
