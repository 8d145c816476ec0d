package repository

import (
	"sort"
	"strings"

	"catalog-api/internal/domain"
)

// SearchFilter narrows a product search within one domain. Nil price
// bounds mean unbounded; both bounds are inclusive. Limit of -1 means no
// limit; zero and negative page sizes are passed through unvalidated, the
// HTTP layer clamps them before they reach this package.
type SearchFilter struct {
	Domain       string
	Term         string
	CategorySlug string
	BrandSlug    string
	MinPrice     *float64
	MaxPrice     *float64
	Limit        int
	Offset       int
}

// NoLimit disables pagination when passed as a limit.
const NoLimit = -1

// Domains returns every domain currently present among products, each
// listed once, sorted ascending so the listing is stable within a run.
func (s *Store) Domains() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Domain]; !ok {
			seen[p.Domain] = struct{}{}
			out = append(out, p.Domain)
		}
	}
	sort.Strings(out)
	return out
}

// ProductsByDomain returns the plain (unjoined) products of a domain in
// natural seed order.
func (s *Store) ProductsByDomain(dom string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterProducts(dom)
}

// CountProducts returns the number of products in a domain.
func (s *Store) CountProducts(dom string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.products {
		if p.Domain == dom {
			n++
		}
	}
	return n
}

// JoinedProducts returns a domain's products augmented with category and
// brand names/slugs, in natural order, sliced by offset then limit.
func (s *Store) JoinedProducts(dom string, limit, offset int) []domain.ProductView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := s.joinAll(s.filterProducts(dom))
	return paginate(views, limit, offset)
}

// SearchProducts filters a domain's products by term, category/brand slug
// and price range, orders them by rating descending (id descending on
// ties) and returns one page plus the total match count.
func (s *Store) SearchProducts(f SearchFilter) ([]domain.ProductView, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := s.joinAll(s.filterProducts(f.Domain))

	matched := views[:0:0]
	term := strings.ToLower(f.Term)
	for _, v := range views {
		if term != "" && !matchesTerm(v.Product, term) {
			continue
		}
		if f.CategorySlug != "" && (v.CategorySlug == nil || *v.CategorySlug != f.CategorySlug) {
			continue
		}
		if f.BrandSlug != "" && (v.BrandSlug == nil || *v.BrandSlug != f.BrandSlug) {
			continue
		}
		if f.MinPrice != nil && v.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && v.Price > *f.MaxPrice {
			continue
		}
		matched = append(matched, v)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Rating != matched[j].Rating {
			return matched[i].Rating > matched[j].Rating
		}
		return matched[i].ID > matched[j].ID
	})

	total := len(matched)
	return paginate(matched, f.Limit, f.Offset), total
}

// ProductByID looks a product up by (domain, id) and joins it. A product
// in another domain sharing the numeric id never matches.
func (s *Store) ProductByID(dom string, id int64) *domain.ProductView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Domain == dom && p.ID == id {
			v := s.join(p)
			return &v
		}
	}
	return nil
}

// RelatedProducts returns up to limit other products from the same
// category of a domain, best rated first.
func (s *Store) RelatedProducts(dom string, categoryID, excludeID int64, limit int) []domain.ProductView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var related []domain.ProductView
	for _, p := range s.products {
		if p.Domain == dom && p.CategoryID == categoryID && p.ID != excludeID {
			related = append(related, s.join(p))
		}
	}
	sort.SliceStable(related, func(i, j int) bool {
		if related[i].Rating != related[j].Rating {
			return related[i].Rating > related[j].Rating
		}
		return related[i].ID > related[j].ID
	})
	return paginate(related, limit, 0)
}

// Categories returns a domain's categories without counts.
func (s *Store) Categories(dom string) []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Category
	for _, c := range s.categories {
		if c.Domain == dom {
			out = append(out, c)
		}
	}
	return out
}

// Brands returns a domain's brands without counts.
func (s *Store) Brands(dom string) []domain.Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Brand
	for _, b := range s.brands {
		if b.Domain == dom {
			out = append(out, b)
		}
	}
	return out
}

// CategoriesWithCounts returns every category of a domain with the number
// of same-domain products referencing it, ordered by name.
func (s *Store) CategoriesWithCounts(dom string) []domain.CategoryCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.CategoryCount
	for _, c := range s.categories {
		if c.Domain == dom {
			out = append(out, domain.CategoryCount{
				Category:     c,
				ProductCount: s.countByCategory(dom, c.ID),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CategoryWithCount looks a single category up by (domain, id).
func (s *Store) CategoryWithCount(dom string, id int64) *domain.CategoryCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Domain == dom && c.ID == id {
			return &domain.CategoryCount{Category: c, ProductCount: s.countByCategory(dom, c.ID)}
		}
	}
	return nil
}

// BrandsWithCounts returns every brand of a domain with the number of
// same-domain products referencing it, ordered by name.
func (s *Store) BrandsWithCounts(dom string) []domain.BrandCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.BrandCount
	for _, b := range s.brands {
		if b.Domain == dom {
			out = append(out, domain.BrandCount{
				Brand:        b,
				ProductCount: s.countByBrand(dom, b.ID),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// BrandWithCount looks a single brand up by (domain, id).
func (s *Store) BrandWithCount(dom string, id int64) *domain.BrandCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.brands {
		if b.Domain == dom && b.ID == id {
			return &domain.BrandCount{Brand: b, ProductCount: s.countByBrand(dom, b.ID)}
		}
	}
	return nil
}

// --- unexported helpers; callers must hold at least the read lock ---

func (s *Store) filterProducts(dom string) []domain.Product {
	var out []domain.Product
	for _, p := range s.products {
		if p.Domain == dom {
			out = append(out, p)
		}
	}
	return out
}

// join augments a product with category/brand fields resolved by
// (domain, id). An absent reference leaves the fields nil; it is not an
// error, new domains may exist without category or brand rows.
func (s *Store) join(p domain.Product) domain.ProductView {
	v := domain.ProductView{Product: p}
	for i := range s.categories {
		c := &s.categories[i]
		if c.Domain == p.Domain && c.ID == p.CategoryID {
			v.CategoryName, v.CategorySlug = &c.Name, &c.Slug
			break
		}
	}
	for i := range s.brands {
		b := &s.brands[i]
		if b.Domain == p.Domain && b.ID == p.BrandID {
			v.BrandName, v.BrandSlug = &b.Name, &b.Slug
			break
		}
	}
	return v
}

func (s *Store) joinAll(products []domain.Product) []domain.ProductView {
	views := make([]domain.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, s.join(p))
	}
	return views
}

func (s *Store) countByCategory(dom string, categoryID int64) int {
	n := 0
	for _, p := range s.products {
		if p.Domain == dom && p.CategoryID == categoryID {
			n++
		}
	}
	return n
}

func (s *Store) countByBrand(dom string, brandID int64) int {
	n := 0
	for _, p := range s.products {
		if p.Domain == dom && p.BrandID == brandID {
			n++
		}
	}
	return n
}

// matchesTerm reports whether the lowercased term occurs in the product
// name or its serialized attributes. An empty attributes payload simply
// never matches; it does not fail the search.
func matchesTerm(p domain.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	return p.Attributes != "" && strings.Contains(strings.ToLower(p.Attributes), term)
}

// paginate applies offset then limit as a plain slice. An offset past the
// end yields an empty result; limits are not validated here, a zero limit
// deliberately returns nothing.
func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit >= 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
