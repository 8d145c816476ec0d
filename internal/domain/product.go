package domain

import "time"

// Product is a catalog entry. Attributes is a serialized JSON object whose
// shape differs per domain (director/year for movies, author/pages for
// books, and so on); it is stored as text and parsed only at the HTTP
// boundary.
type Product struct {
	ID          int64     `json:"id"`
	Domain      string    `json:"domain"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	Attributes  string    `json:"attributes"`
	CategoryID  int64     `json:"category_id"`
	BrandID     int64     `json:"brand_id"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category partitions products within a single domain. Slugs are unique
// within a domain, not globally.
type Category struct {
	ID          int64  `json:"id"`
	Domain      string `json:"domain"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Brand is a product manufacturer or label within a single domain.
type Brand struct {
	ID          int64  `json:"id"`
	Domain      string `json:"domain"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// ProductView is a product joined against its category and brand. The
// pointer fields stay nil when the referenced row does not exist in the
// product's own domain; a category in another domain that happens to share
// the numeric id never matches.
type ProductView struct {
	Product
	CategoryName *string `json:"category_name"`
	CategorySlug *string `json:"category_slug"`
	BrandName    *string `json:"brand_name"`
	BrandSlug    *string `json:"brand_slug"`
}

// CategoryCount is a category augmented with the number of products in the
// same domain that reference it.
type CategoryCount struct {
	Category
	ProductCount int `json:"product_count"`
}

// BrandCount is a brand augmented with the number of products in the same
// domain that reference it.
type BrandCount struct {
	Brand
	ProductCount int `json:"product_count"`
}
