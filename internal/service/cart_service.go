package service

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"catalog-api/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCartItemNotFound = errors.New("item not found in cart")
	ErrEmptyCart        = errors.New("cannot checkout with empty cart")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

// AddItemInput describes a product line being added to a cart.
type AddItemInput struct {
	Domain    string
	ProductID int64
	Name      string
	Price     float64
	Quantity  int
	ImageURL  string
}

// CartService keeps per-user shopping carts in process memory. Adding the
// same (domain, product) pair twice increments the existing line instead
// of duplicating it.
type CartService struct {
	mu    sync.Mutex
	log   *zap.Logger
	carts map[int64][]domain.CartItem
}

// NewCartService creates an empty cart registry.
func NewCartService(log *zap.Logger) *CartService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartService{
		log:   log,
		carts: make(map[int64][]domain.CartItem),
	}
}

// Get returns a copy of the user's cart and its totals.
func (s *CartService) Get(userID int64) ([]domain.CartItem, domain.CartSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(userID)
}

// Add appends a line to the cart, or bumps the quantity of an existing
// line for the same product.
func (s *CartService) Add(userID int64, input AddItemInput) ([]domain.CartItem, domain.CartSummary, error) {
	if input.Quantity < 1 {
		return nil, domain.CartSummary{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	cart := s.carts[userID]

	found := false
	for i := range cart {
		if cart[i].Domain == input.Domain && cart[i].ProductID == input.ProductID {
			cart[i].Quantity += input.Quantity
			cart[i].UpdatedAt = now
			found = true
			break
		}
	}

	if !found {
		imageURL := input.ImageURL
		if imageURL == "" {
			imageURL = fmt.Sprintf("https://picsum.photos/300/400?random=%s%d", input.Domain, input.ProductID)
		}
		cart = append(cart, domain.CartItem{
			ID:        uuid.New().String(),
			Domain:    input.Domain,
			ProductID: input.ProductID,
			Name:      input.Name,
			Price:     input.Price,
			Quantity:  input.Quantity,
			ImageURL:  imageURL,
			AddedAt:   now,
			UpdatedAt: now,
		})
	}
	s.carts[userID] = cart

	items, summary := s.snapshot(userID)
	return items, summary, nil
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (s *CartService) UpdateQuantity(userID int64, itemID string, quantity int) ([]domain.CartItem, domain.CartSummary, error) {
	if quantity < 0 {
		return nil, domain.CartSummary{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	for i := range cart {
		if cart[i].ID == itemID {
			if quantity == 0 {
				s.carts[userID] = append(cart[:i], cart[i+1:]...)
			} else {
				cart[i].Quantity = quantity
				cart[i].UpdatedAt = time.Now().UTC()
			}
			items, summary := s.snapshot(userID)
			return items, summary, nil
		}
	}
	return nil, domain.CartSummary{}, ErrCartItemNotFound
}

// Remove deletes a line and returns it.
func (s *CartService) Remove(userID int64, itemID string) (*domain.CartItem, []domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	for i := range cart {
		if cart[i].ID == itemID {
			removed := cart[i]
			s.carts[userID] = append(cart[:i], cart[i+1:]...)
			items, _ := s.snapshot(userID)
			return &removed, items, nil
		}
	}
	return nil, nil, ErrCartItemNotFound
}

// Clear empties the cart and reports how many lines were dropped.
func (s *CartService) Clear(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.carts[userID])
	s.carts[userID] = nil
	return n
}

// Checkout produces a mock order from the cart contents and empties it.
func (s *CartService) Checkout(userID int64) (*domain.Order, []domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, summary := s.snapshot(userID)
	if len(items) == 0 {
		return nil, nil, ErrEmptyCart
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:                "ORDER_" + uuid.New().String(),
		TotalItems:        summary.TotalItems,
		TotalPrice:        summary.TotalPrice,
		Status:            "pending",
		CreatedAt:         now,
		EstimatedDelivery: now.Add(5 * 24 * time.Hour),
	}

	s.carts[userID] = nil

	s.log.Info("Checkout completed",
		zap.Int64("user_id", userID),
		zap.String("order_id", order.ID),
		zap.Int("total_items", order.TotalItems),
	)

	return order, items, nil
}

// snapshot copies the cart and computes totals; the caller holds the lock.
func (s *CartService) snapshot(userID int64) ([]domain.CartItem, domain.CartSummary) {
	cart := s.carts[userID]
	items := make([]domain.CartItem, len(cart))
	copy(items, cart)

	var summary domain.CartSummary
	var total float64
	for _, item := range items {
		summary.TotalItems += item.Quantity
		total += item.Price * float64(item.Quantity)
	}
	summary.TotalPrice = math.Round(total*100) / 100
	summary.CartCount = len(items)
	return items, summary
}
