package transport

import (
	"encoding/json"
	"time"

	"catalog-api/internal/domain"
)

// Envelope is the common success wrapper for API responses.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Meta       *Meta       `json:"meta,omitempty"`
}

// Pagination describes a page of a larger result set.
type Pagination struct {
	CurrentPage   int  `json:"current_page"`
	TotalPages    int  `json:"total_pages"`
	TotalProducts int  `json:"total_products"`
	Limit         int  `json:"limit"`
	HasNext       bool `json:"has_next"`
	HasPrev       bool `json:"has_prev"`
}

// Meta carries request context echoed back to the client.
type Meta struct {
	Domain    string `json:"domain,omitempty"`
	Query     string `json:"query,omitempty"`
	Timestamp string `json:"timestamp"`
}

func newMeta(dom, query string) *Meta {
	return &Meta{
		Domain:    dom,
		Query:     query,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func newPagination(page, limit, total int) *Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &Pagination{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalProducts: total,
		Limit:         limit,
		HasNext:       page < totalPages,
		HasPrev:       page > 1,
	}
}

// productPayload is a ProductView with attributes decoded into an object
// for clients. Serialized attributes stay opaque text everywhere else.
type productPayload struct {
	ID           int64                  `json:"id"`
	Domain       string                 `json:"domain"`
	Name         string                 `json:"name"`
	Price        float64                `json:"price"`
	ImageURL     string                 `json:"image_url"`
	Attributes   map[string]interface{} `json:"attributes"`
	CategoryID   int64                  `json:"category_id"`
	BrandID      int64                  `json:"brand_id"`
	Rating       float64                `json:"rating"`
	ReviewCount  int                    `json:"review_count"`
	InStock      bool                   `json:"in_stock"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
	CategoryName *string                `json:"category_name"`
	CategorySlug *string                `json:"category_slug"`
	BrandName    *string                `json:"brand_name"`
	BrandSlug    *string                `json:"brand_slug"`
}

func renderProduct(v domain.ProductView) productPayload {
	return productPayload{
		ID:           v.ID,
		Domain:       v.Domain,
		Name:         v.Name,
		Price:        v.Price,
		ImageURL:     v.ImageURL,
		Attributes:   decodeAttributes(v.Attributes),
		CategoryID:   v.CategoryID,
		BrandID:      v.BrandID,
		Rating:       v.Rating,
		ReviewCount:  v.ReviewCount,
		InStock:      v.InStock,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
		CategoryName: v.CategoryName,
		CategorySlug: v.CategorySlug,
		BrandName:    v.BrandName,
		BrandSlug:    v.BrandSlug,
	}
}

func renderProducts(views []domain.ProductView) []productPayload {
	out := make([]productPayload, 0, len(views))
	for _, v := range views {
		out = append(out, renderProduct(v))
	}
	return out
}

// decodeAttributes parses the serialized attributes object. Malformed or
// empty payloads render as an empty object rather than an error.
func decodeAttributes(raw string) map[string]interface{} {
	attrs := make(map[string]interface{})
	if raw == "" {
		return attrs
	}
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
		return make(map[string]interface{})
	}
	return attrs
}
