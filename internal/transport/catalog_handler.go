package transport

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"catalog-api/internal/middleware"
	"catalog-api/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	relatedLimit    = 4
)

// CatalogHandler serves the read-only catalog endpoints: domains,
// products, search, categories and brands.
type CatalogHandler struct {
	store  *repository.Store
	logger *zap.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store *repository.Store, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{store: store, logger: logger}
}

// RegisterRoutes mounts the catalog routes on the given router.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/domains", h.ListDomains)
	r.Route("/{domain}", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/search", h.SearchProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Get("/products/{id}/related", h.RelatedProducts)
		r.Get("/products/{id}/reviews", h.ProductReviews)
		r.Get("/categories", h.ListCategories)
		r.Get("/categories/{id}", h.GetCategory)
		r.Get("/brands", h.ListBrands)
		r.Get("/brands/{id}", h.GetBrand)
	})
}

// ListDomains handles GET /domains
func (h *CatalogHandler) ListDomains(w http.ResponseWriter, r *http.Request) {
	domains := h.store.Domains()
	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data: map[string]interface{}{
			"domains": domains,
			"count":   len(domains),
		},
		Meta: newMeta("", ""),
	})
}

// ListProducts handles GET /{domain}/products with page/limit pagination.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	dom := chi.URLParam(r, "domain")
	page, limit := pageParams(r)

	total := h.store.CountProducts(dom)
	views := h.store.JoinedProducts(dom, limit, (page-1)*limit)

	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success:    true,
		Data:       renderProducts(views),
		Pagination: newPagination(page, limit, total),
		Meta:       newMeta(dom, ""),
	})
}

// SearchProducts handles GET /{domain}/products/search. At least one
// filter parameter must be present.
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	dom := chi.URLParam(r, "domain")
	q := r.URL.Query()

	term := q.Get("q")
	category := q.Get("category")
	brand := q.Get("brand")
	minPrice := parsePrice(q.Get("min_price"))
	maxPrice := parsePrice(q.Get("max_price"))

	if term == "" && category == "" && brand == "" && minPrice == nil && maxPrice == nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "at least one search parameter is required")
		return
	}

	page, limit := pageParams(r)

	views, total := h.store.SearchProducts(repository.SearchFilter{
		Domain:       dom,
		Term:         term,
		CategorySlug: category,
		BrandSlug:    brand,
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		Limit:        limit,
		Offset:       (page - 1) * limit,
	})

	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success:    true,
		Data:       renderProducts(views),
		Pagination: newPagination(page, limit, total),
		Meta:       newMeta(dom, term),
	})
}

// GetProduct handles GET /{domain}/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	dom := chi.URLParam(r, "domain")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	view := h.store.ProductByID(dom, id)
	if view == nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data:    renderProduct(*view),
		Meta:    newMeta(dom, ""),
	})
}

// RelatedProducts handles GET /{domain}/products/{id}/related returning
// the best-rated products from the same category.
func (h *CatalogHandler) RelatedProducts(w http.ResponseWriter, r *http.Request) {
	dom := chi.URLParam(r, "domain")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	view := h.store.ProductByID(dom, id)
	if view == nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	related := h.store.RelatedProducts(dom, view.CategoryID, id, relatedLimit)
	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data:    renderProducts(related),
		Meta:    newMeta(dom, ""),
	})
}

// review is a generated product review.
type review struct {
	ID        int       `json:"id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

var reviewAuthors = []string{"Alex M.", "Jordan K.", "Sam T.", "Casey R.", "Morgan L.", "Taylor B."}

var reviewComments = []string{
	"Exactly what I was looking for.",
	"Good value for the price.",
	"Quality could be better, but works fine.",
	"Exceeded my expectations!",
	"Would recommend to a friend.",
	"Solid product, fast delivery.",
}

// ProductReviews handles GET /{domain}/products/{id}/reviews. Reviews are
// generated, seeded by product id so repeat requests agree.
func (h *CatalogHandler) ProductReviews(w http.ResponseWriter, r *http.Request) {
	dom := chi.URLParam(r, "domain")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	view := h.store.ProductByID(dom, id)
	if view == nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	rng := rand.New(rand.NewSource(id))
	n := rng.Intn(5) + 3
	reviews := make([]review, 0, n)
	for i := 0; i < n; i++ {
		reviews = append(reviews, review{
			ID:        i + 1,
			Author:    reviewAuthors[rng.Intn(len(reviewAuthors))],
			Rating:    rng.Intn(3) + 3,
			Comment:   reviewComments[rng.Intn(len(reviewComments))],
			CreatedAt: time.Now().UTC().AddDate(0, 0, -rng.Intn(90)),
		})
	}

	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data: map[string]interface{}{
			"product_id": id,
			"reviews":    reviews,
			"count":      len(reviews),
		},
		Meta: newMeta(dom, ""),
	})
}

// ListCategories handles GET /{domain}/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	dom := chi.URLParam(r, "domain")
	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data:    h.store.CategoriesWithCounts(dom),
		Meta:    newMeta(dom, ""),
	})
}

// GetCategory handles GET /{domain}/categories/{id}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	dom := chi.URLParam(r, "domain")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	category := h.store.CategoryWithCount(dom, id)
	if category == nil {
		middleware.RespondWithError(w, http.StatusNotFound, "category not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data:    category,
		Meta:    newMeta(dom, ""),
	})
}

// ListBrands handles GET /{domain}/brands
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	dom := chi.URLParam(r, "domain")
	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data:    h.store.BrandsWithCounts(dom),
		Meta:    newMeta(dom, ""),
	})
}

// GetBrand handles GET /{domain}/brands/{id}
func (h *CatalogHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	dom := chi.URLParam(r, "domain")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid brand id")
		return
	}

	brand := h.store.BrandWithCount(dom, id)
	if brand == nil {
		middleware.RespondWithError(w, http.StatusNotFound, "brand not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data:    brand,
		Meta:    newMeta(dom, ""),
	})
}

// pageParams reads page and limit from the query string, defaulting to
// page 1 with 20 items and clamping the page size to 100.
func pageParams(r *http.Request) (page, limit int) {
	page = queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	limit = queryInt(r, "limit", defaultPageSize)
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func parsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}
