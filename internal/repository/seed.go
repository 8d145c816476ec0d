package repository

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"catalog-api/internal/domain"

	"go.uber.org/zap"
)

// SeedOptions drives the synthetic dataset generator.
type SeedOptions struct {
	// ProductsPerDomain defaults to 500 (10,000 products across 20 domains).
	ProductsPerDomain int
	// RandSeed of zero means a time-based seed. Tests pin it for
	// reproducible prices, ratings and category/brand assignment.
	RandSeed int64
}

// demoPasswordHash is the bcrypt hash of "demo123", shared by the two
// seeded accounts.
const demoPasswordHash = "$2a$10$FZbTjHyObkf64JWwCcITsumMJ1sYialur77SUeSmt.oDDUftEM7qa"

// Seed populates all four collections. It runs exactly once per process:
// a second call is a no-op, never a partial re-seed.
func (s *Store) Seed(opts SeedOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seeded {
		s.log.Info("Store already seeded, skipping")
		return
	}

	perDomain := opts.ProductsPerDomain
	if perDomain <= 0 {
		perDomain = 500
	}
	seed := opts.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	now := time.Now().UTC()

	// Products: ids are unique across all domains for the process lifetime.
	for di, dom := range seedDomains {
		tmpl := productTemplates[dom]
		for i := 1; i <= perDomain; i++ {
			id := int64(di*perDomain + i)
			s.products = append(s.products, domain.Product{
				ID:          id,
				Domain:      dom,
				Name:        tmpl.names[(int(id)-1)%len(tmpl.names)],
				Price:       round2(rng.Float64()*200 + 10),
				ImageURL:    fmt.Sprintf("https://picsum.photos/300/400?random=%d", id),
				Attributes:  tmpl.attributes,
				CategoryID:  int64(di*4) + int64(rng.Intn(4)) + 1,
				BrandID:     int64(di*3) + int64(rng.Intn(3)) + 1,
				Rating:      round1(rng.Float64()*2 + 3),
				ReviewCount: rng.Intn(1000) + 50,
				InStock:     rng.Float64() > 0.1,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
	}

	// Categories: four per domain, one global running id.
	categoryID := int64(1)
	for _, dom := range seedDomains {
		for _, name := range categoryTemplates[dom] {
			s.categories = append(s.categories, domain.Category{
				ID:          categoryID,
				Domain:      dom,
				Name:        name,
				Slug:        slugify(name),
				Description: fmt.Sprintf("%s in %s", name, dom),
			})
			categoryID++
		}
	}

	// Brands: three per domain, one global running id.
	brandID := int64(1)
	for _, dom := range seedDomains {
		for _, name := range brandTemplates[dom] {
			s.brands = append(s.brands, domain.Brand{
				ID:          brandID,
				Domain:      dom,
				Name:        name,
				Slug:        slugify(name),
				Description: fmt.Sprintf("%s brand for %s", name, dom),
			})
			brandID++
		}
	}

	s.users = []domain.User{
		{
			ID: 1, Username: "demo", Email: "demo@example.com",
			PasswordHash: demoPasswordHash,
			FirstName:    "Demo", LastName: "User",
			Role: domain.RoleUser, IsActive: true,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: 2, Username: "teacher", Email: "teacher@example.com",
			PasswordHash: demoPasswordHash,
			FirstName:    "Teacher", LastName: "Demo",
			Role: domain.RoleAdmin, IsActive: true,
			CreatedAt: now, UpdatedAt: now,
		},
	}

	s.seeded = true

	s.log.Info("Catalog store seeded",
		zap.Int("products", len(s.products)),
		zap.Int("categories", len(s.categories)),
		zap.Int("brands", len(s.brands)),
		zap.Int("users", len(s.users)),
		zap.Int("domains", len(seedDomains)),
		zap.Int64("rand_seed", seed),
	)
}

func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
