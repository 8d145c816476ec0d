package repository

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Pagination must behave as a plain slice of the full listing: offset
// first, then limit, with an offset past the end yielding an empty page.
func TestProperty_PaginationSlicesTheFullListing(t *testing.T) {
	s := newTestStore(t, 30)
	properties := gopter.NewProperties(nil)

	properties.Property("a page equals the corresponding slice of the full listing", prop.ForAll(
		func(limit int, offset int) bool {
			full := s.JoinedProducts("books", NoLimit, 0)
			page := s.JoinedProducts("books", limit, offset)

			if offset >= len(full) {
				return len(page) == 0
			}

			want := full[offset:]
			if limit < len(want) {
				want = want[:limit]
			}
			if len(page) != len(want) {
				t.Logf("FAIL: page length %d, want %d (limit=%d offset=%d)", len(page), len(want), limit, offset)
				return false
			}
			for i := range want {
				if page[i].ID != want[i].ID {
					t.Logf("FAIL: row %d has id %d, want %d", i, page[i].ID, want[i].ID)
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 40),
		gen.IntRange(0, 40),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestPaginationOffsetPastEndIsEmpty(t *testing.T) {
	s := newTestStore(t, 10)

	assert.Empty(t, s.JoinedProducts("movies", 5, 100))
	assert.Empty(t, s.JoinedProducts("movies", NoLimit, 10))
	assert.Len(t, s.JoinedProducts("movies", NoLimit, 9), 1)
}

// Search results are ordered best rated first; equal ratings fall back
// to descending id so ordering stays deterministic.
func TestProperty_SearchOrdersByRatingThenID(t *testing.T) {
	s := newTestStore(t, 40)
	properties := gopter.NewProperties(nil)

	properties.Property("results are sorted by rating desc, id desc on ties", prop.ForAll(
		func(domIdx int) bool {
			domains := s.Domains()
			dom := domains[domIdx%len(domains)]

			views, total := s.SearchProducts(SearchFilter{Domain: dom, Term: "a", Limit: NoLimit})
			if total != len(views) {
				t.Logf("FAIL: total %d does not match unpaged result length %d", total, len(views))
				return false
			}
			for i := 1; i < len(views); i++ {
				prev, cur := views[i-1], views[i]
				if prev.Rating < cur.Rating {
					t.Logf("FAIL: rating order broken at %d: %f < %f", i, prev.Rating, cur.Rating)
					return false
				}
				if prev.Rating == cur.Rating && prev.ID < cur.ID {
					t.Logf("FAIL: id tie-break broken at %d: %d < %d", i, prev.ID, cur.ID)
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 19),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSearchFilters(t *testing.T) {
	s := newTestStore(t, 50)

	t.Run("price bounds are inclusive", func(t *testing.T) {
		min, max := 50.0, 120.0
		views, _ := s.SearchProducts(SearchFilter{
			Domain: "electronics", MinPrice: &min, MaxPrice: &max, Limit: NoLimit,
		})
		require.NotEmpty(t, views)
		for _, v := range views {
			assert.GreaterOrEqual(t, v.Price, min)
			assert.LessOrEqual(t, v.Price, max)
		}
	})

	t.Run("category slug narrows to one category", func(t *testing.T) {
		cats := s.Categories("books")
		require.NotEmpty(t, cats)
		slug := cats[0].Slug

		views, _ := s.SearchProducts(SearchFilter{Domain: "books", CategorySlug: slug, Limit: NoLimit})
		for _, v := range views {
			require.NotNil(t, v.CategorySlug)
			assert.Equal(t, slug, *v.CategorySlug)
		}
	})

	t.Run("term matches name case-insensitively", func(t *testing.T) {
		products := s.ProductsByDomain("movies")
		require.NotEmpty(t, products)

		views, total := s.SearchProducts(SearchFilter{Domain: "movies", Term: products[0].Name, Limit: NoLimit})
		assert.NotZero(t, total)
		for _, v := range views {
			assert.True(t, matchesTerm(v.Product, strings.ToLower(products[0].Name)))
		}
	})
}

// Joins resolve strictly within the product's own domain. Category and
// brand ids restart per domain block, so a bare-id join would attach
// rows from a foreign domain.
func TestProperty_JoinsNeverCrossDomains(t *testing.T) {
	s := newTestStore(t, 25)
	properties := gopter.NewProperties(nil)

	domainSlugs := func(dom string) map[string]bool {
		out := make(map[string]bool)
		for _, c := range s.Categories(dom) {
			out["c:"+c.Slug] = true
		}
		for _, b := range s.Brands(dom) {
			out["b:"+b.Slug] = true
		}
		return out
	}

	properties.Property("joined names and slugs come from the product's domain", prop.ForAll(
		func(domIdx int) bool {
			domains := s.Domains()
			dom := domains[domIdx%len(domains)]
			own := domainSlugs(dom)

			for _, v := range s.JoinedProducts(dom, NoLimit, 0) {
				if v.CategorySlug != nil && !own["c:"+*v.CategorySlug] {
					t.Logf("FAIL: product %d joined foreign category %s", v.ID, *v.CategorySlug)
					return false
				}
				if v.BrandSlug != nil && !own["b:"+*v.BrandSlug] {
					t.Logf("FAIL: product %d joined foreign brand %s", v.ID, *v.BrandSlug)
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 19),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProductByIDRequiresMatchingDomain(t *testing.T) {
	s := newTestStore(t, 10)

	// id 1 lives in the first domain block only
	first := s.ProductByID("movies", 1)
	require.NotNil(t, first)
	assert.Equal(t, "movies", first.Domain)

	assert.Nil(t, s.ProductByID("books", 1))
	assert.Nil(t, s.ProductByID("does-not-exist", 1))
}

func TestCategoryCountsSumToDomainTotal(t *testing.T) {
	s := newTestStore(t, 50)

	for _, dom := range s.Domains() {
		sum := 0
		for _, c := range s.CategoriesWithCounts(dom) {
			sum += c.ProductCount
		}
		assert.Equal(t, s.CountProducts(dom), sum, "domain %s", dom)
	}
}

func TestBrandCountsSumToDomainTotal(t *testing.T) {
	s := newTestStore(t, 50)

	for _, dom := range s.Domains() {
		sum := 0
		for _, b := range s.BrandsWithCounts(dom) {
			sum += b.ProductCount
		}
		assert.Equal(t, s.CountProducts(dom), sum, "domain %s", dom)
	}
}

func TestRelatedProductsExcludeTheProductItself(t *testing.T) {
	s := newTestStore(t, 30)

	p := s.ProductByID("games", s.ProductsByDomain("games")[0].ID)
	require.NotNil(t, p)

	related := s.RelatedProducts("games", p.CategoryID, p.ID, 4)
	assert.LessOrEqual(t, len(related), 4)
	for _, r := range related {
		assert.NotEqual(t, p.ID, r.ID)
		assert.Equal(t, p.CategoryID, r.CategoryID)
		assert.Equal(t, "games", r.Domain)
	}
}

func TestCategoryAndBrandLookupByDomainAndID(t *testing.T) {
	s := newTestStore(t, 10)

	cats := s.Categories("music")
	require.NotEmpty(t, cats)
	found := s.CategoryWithCount("music", cats[0].ID)
	require.NotNil(t, found)
	assert.Equal(t, cats[0].Slug, found.Slug)

	// same numeric id under the wrong domain must miss
	assert.Nil(t, s.CategoryWithCount("movies", cats[0].ID+4))

	brands := s.Brands("music")
	require.NotEmpty(t, brands)
	assert.NotNil(t, s.BrandWithCount("music", brands[0].ID))
	assert.Nil(t, s.BrandWithCount("books", brands[len(brands)-1].ID+3))
}

func TestDomainsAreSortedAndDistinct(t *testing.T) {
	s := newTestStore(t, 5)

	domains := s.Domains()
	seen := make(map[string]bool)
	for i, d := range domains {
		assert.False(t, seen[d], "duplicate domain %s", d)
		seen[d] = true
		if i > 0 {
			assert.Less(t, domains[i-1], d)
		}
	}
}
