package repository

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyShape(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Shape
	}{
		{"insert", "INSERT INTO users (username) VALUES (?)", ShapeWrite},
		{"update", "UPDATE users SET updated_at = CURRENT_TIMESTAMP WHERE id = ?", ShapeWrite},
		{"domain list", "SELECT DISTINCT domain FROM products ORDER BY domain", ShapeDomainList},
		{"category counts", "SELECT c.*, COUNT(p.id) as product_count FROM categories c LEFT JOIN products p ON c.id = p.category_id WHERE c.domain = ? GROUP BY c.id", ShapeCategoryCounts},
		{"brand counts", "SELECT b.*, COUNT(p.id) as product_count FROM brands b LEFT JOIN products p ON b.id = p.brand_id WHERE b.domain = ? GROUP BY b.id", ShapeBrandCounts},
		{"joined products", "SELECT p.*, c.name as category_name FROM products p LEFT JOIN categories c ON p.category_id = c.id WHERE p.domain = ?", ShapeJoinedProducts},
		{"count", "SELECT COUNT(*) as total FROM products WHERE domain = ?", ShapeProductCount},
		{"simple products", "SELECT * FROM products WHERE domain = ?", ShapeSimple},
		{"simple users", "SELECT * FROM users WHERE username = ?", ShapeSimple},
		{"unknown", "SELECT * FROM orders", ShapeUnknown},
		// precedence: a write marker beats everything else in the text
		{"write beats join", "UPDATE products p JOIN categories c ON 1=1 SET x = 1", ShapeWrite},
		// precedence: the distinct-domain marker beats the bare products marker
		{"distinct beats simple", "SELECT DISTINCT domain FROM products", ShapeDomainList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyShape(tt.query))
		})
	}
}

func TestExecuteQueryDomainList(t *testing.T) {
	s := newTestStore(t, 5)

	rows := s.ExecuteQuery("SELECT DISTINCT domain FROM products ORDER BY domain")
	require.Len(t, rows, 20)
	assert.Equal(t, "apps", rows[0]["domain"])

	// GetAll delegates non-simple shapes to the same handler
	assert.Equal(t, rows, s.GetAll("SELECT DISTINCT domain FROM products ORDER BY domain"))
}

func TestGetOneProductCount(t *testing.T) {
	s := newTestStore(t, 25)

	row := s.GetOne("SELECT COUNT(*) as total FROM products WHERE domain = ?", "books")
	require.NotNil(t, row)
	assert.Equal(t, 25, row["total"])
}

func TestGetOneJoinedProductByDomainAndID(t *testing.T) {
	s := newTestStore(t, 10)

	query := "SELECT p.*, c.name as category_name, c.slug as category_slug, b.name as brand_name, b.slug as brand_slug FROM products p LEFT JOIN categories c ON p.category_id = c.id AND p.domain = c.domain LEFT JOIN brands b ON p.brand_id = b.id AND p.domain = b.domain WHERE p.domain = ? AND p.id = ?"

	row := s.GetOne(query, "movies", 1)
	require.NotNil(t, row)
	assert.Equal(t, float64(1), row["id"])
	assert.Equal(t, "movies", row["domain"])
	assert.Contains(t, row, "category_name")

	// same id under another domain must miss
	assert.Nil(t, s.GetOne(query, "books", 1))
}

func TestRunInsertAssignsNextID(t *testing.T) {
	s := newTestStore(t, 5)

	res := s.Run(
		"INSERT INTO users (username, email, password_hash, first_name, last_name) VALUES (?, ?, ?, ?, ?)",
		"alice", "alice@example.com", "hash-a", "Alice", "Smith",
	)
	assert.Equal(t, 1, res.Changes)
	assert.Equal(t, int64(3), res.NewID) // two seeded accounts occupy 1 and 2

	res = s.Run(
		"INSERT INTO users (username, email, password_hash, first_name, last_name) VALUES (?, ?, ?, ?, ?)",
		"bob", "bob@example.com", "hash-b", "Bob", "Jones",
	)
	assert.Equal(t, int64(4), res.NewID)
}

// A just-inserted account must read back unmodified through the facade,
// password hash included.
func TestProperty_InsertedUserReadsBackVerbatim(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("insert then getOne returns the stored field values", prop.ForAll(
		func(username, email, hash, first, last string) bool {
			s := NewStore(nil)
			s.Seed(SeedOptions{ProductsPerDomain: 1, RandSeed: 1})

			res := s.Run(
				"INSERT INTO users (username, email, password_hash, first_name, last_name) VALUES (?, ?, ?, ?, ?)",
				username, email, hash, first, last,
			)
			if res.Changes != 1 || res.NewID == 0 {
				t.Logf("FAIL: unexpected insert result %+v", res)
				return false
			}

			row := s.GetOne("SELECT * FROM users WHERE id = ?", res.NewID)
			if row == nil {
				t.Logf("FAIL: inserted user %d not found", res.NewID)
				return false
			}

			return row["username"] == username &&
				row["email"] == email &&
				row["password_hash"] == hash &&
				row["first_name"] == first &&
				row["last_name"] == last &&
				row["role"] == "user"
		},
		gen.RegexMatch(`[a-z0-9]{3,16}`),
		gen.RegexMatch(`[a-z]{3,10}@[a-z]{3,8}\.(com|org|net)`),
		gen.RegexMatch(`[A-Za-z0-9$./]{20,40}`),
		gen.RegexMatch(`[A-Z][a-z]{2,15}`),
		gen.RegexMatch(`[A-Z][a-z]{2,15}`),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRunUpdateProfile(t *testing.T) {
	s := newTestStore(t, 1)

	res := s.Run(
		"UPDATE users SET first_name = ?, last_name = ?, avatar_url = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		"New", "Name", "https://example.com/a.png", 1,
	)
	assert.Equal(t, 1, res.Changes)

	u := s.UserByID(1)
	require.NotNil(t, u)
	assert.Equal(t, "New", u.FirstName)
	assert.Equal(t, "https://example.com/a.png", u.AvatarURL)
}

func TestRunMissedUpdateStillReportsSuccess(t *testing.T) {
	s := newTestStore(t, 1)

	// The historical contract: callers never check for a miss, so a
	// missed update reports one changed row.
	res := s.Run("UPDATE users SET updated_at = CURRENT_TIMESTAMP WHERE id = ?", 9999)
	assert.Equal(t, 1, res.Changes)
}

func TestRunUnknownTableIsPermissive(t *testing.T) {
	s := newTestStore(t, 1)

	res := s.Run("INSERT INTO orders (total) VALUES (?)", 12.5)
	assert.Equal(t, RunResult{Changes: 1}, res)
}

func TestUnknownShapesDegradeToEmpty(t *testing.T) {
	s := newTestStore(t, 1)

	assert.Nil(t, s.GetAll("SELECT * FROM sessions"))
	assert.Nil(t, s.GetOne("SELECT * FROM sessions WHERE id = ?", 1))
	assert.Nil(t, s.ExecuteQuery("PRAGMA table_info(products)"))
}

func TestGetAllSimpleProductsWithTextPagination(t *testing.T) {
	s := newTestStore(t, 20)

	rows := s.GetAll("SELECT * FROM products WHERE domain = ? LIMIT 5 OFFSET 2", "cars")
	require.Len(t, rows, 5)

	full := s.ProductsByDomain("cars")
	assert.Equal(t, float64(full[2].ID), rows[0]["id"])
}

func TestGetAllSimpleLikeSearch(t *testing.T) {
	s := newTestStore(t, 20)

	products := s.ProductsByDomain("books")
	require.NotEmpty(t, products)
	needle := products[0].Name

	rows := s.GetAll("SELECT * FROM products WHERE domain = ? AND name LIKE ?", "books", "%"+needle+"%")
	require.NotEmpty(t, rows)
	for _, row := range rows {
		assert.Equal(t, "books", row["domain"])
	}
}

func TestExecuteQueryJoinedSearchWithParams(t *testing.T) {
	s := newTestStore(t, 30)

	cats := s.Categories("fashion")
	require.NotEmpty(t, cats)
	slug := cats[0].Slug

	query := "SELECT p.*, c.name as category_name, c.slug as category_slug FROM products p LEFT JOIN categories c ON p.category_id = c.id AND p.domain = c.domain WHERE p.domain = ? AND c.slug = ? ORDER BY p.rating DESC LIMIT ? OFFSET ?"
	rows := s.ExecuteQuery(query, "fashion", slug, 5, 0)
	assert.LessOrEqual(t, len(rows), 5)
	for _, row := range rows {
		assert.Equal(t, slug, row["category_slug"])
	}
}

func TestExecuteQueryJoinedListingWithoutFilters(t *testing.T) {
	s := newTestStore(t, 15)

	query := "SELECT p.*, c.name as category_name FROM products p LEFT JOIN categories c ON p.category_id = c.id AND p.domain = c.domain WHERE p.domain = ? LIMIT ? OFFSET ?"
	rows := s.ExecuteQuery(query, "hotels", 10, 5)
	require.Len(t, rows, 10)

	// plain listing preserves natural seed order
	full := s.JoinedProducts("hotels", NoLimit, 0)
	assert.Equal(t, float64(full[5].ID), rows[0]["id"])
}

func TestExecuteQueryCategoryAndBrandCounts(t *testing.T) {
	s := newTestStore(t, 20)

	catQuery := "SELECT c.*, COUNT(p.id) as product_count FROM categories c LEFT JOIN products p ON c.id = p.category_id AND c.domain = p.domain WHERE c.domain = ? GROUP BY c.id ORDER BY c.name"
	rows := s.ExecuteQuery(catQuery, "pets")
	require.Len(t, rows, 4)

	sum := 0.0
	for _, row := range rows {
		sum += row["product_count"].(float64)
	}
	assert.Equal(t, 20.0, sum)

	brandQuery := "SELECT b.*, COUNT(p.id) as product_count FROM brands b LEFT JOIN products p ON b.id = p.brand_id AND b.domain = p.domain WHERE b.domain = ? GROUP BY b.id ORDER BY b.name"
	assert.Len(t, s.ExecuteQuery(brandQuery, "pets"), 3)
}

func TestGetOneUserLookups(t *testing.T) {
	s := newTestStore(t, 1)

	byLogin := s.GetOne("SELECT * FROM users WHERE username = ? OR email = ?", "demo@example.com", "demo@example.com")
	require.NotNil(t, byLogin)
	assert.Equal(t, "demo", byLogin["username"])

	byName := s.GetOne("SELECT * FROM users WHERE username = ?", "teacher")
	require.NotNil(t, byName)
	assert.Equal(t, "admin", byName["role"])

	assert.Nil(t, s.GetOne("SELECT * FROM users WHERE username = ?", "nobody"))
}

// Writes issued through the superset entry point come back as a single
// row wrapping the run result.
func TestExecuteQueryWrappedWrite(t *testing.T) {
	s := newTestStore(t, 1)

	rows := s.ExecuteQuery(
		"INSERT INTO users (username, email, password_hash, first_name, last_name) VALUES (?, ?, ?, ?, ?)",
		"carol", "carol@example.com", "hash-c", "Carol", "King",
	)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(1), rows[0]["changes"])
	assert.Equal(t, float64(3), rows[0]["new_id"])
}
