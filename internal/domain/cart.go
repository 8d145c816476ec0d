package domain

import "time"

// CartItem is a single line in a user's shopping cart. Carts live in
// process memory only, keyed by user id.
type CartItem struct {
	ID        string    `json:"id"`
	Domain    string    `json:"domain"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	ImageURL  string    `json:"image_url"`
	AddedAt   time.Time `json:"added_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartSummary aggregates a cart's totals.
type CartSummary struct {
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
	CartCount  int     `json:"cart_count"`
}

// Order is the receipt produced by checkout.
type Order struct {
	ID                string    `json:"id"`
	TotalItems        int       `json:"total_items"`
	TotalPrice        float64   `json:"total_price"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
}
