package transport

import (
	"errors"
	"net/http"

	"catalog-api/internal/middleware"
	"catalog-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CartHandler serves the per-user shopping cart endpoints. All routes
// require authentication.
type CartHandler struct {
	carts  *service.CartService
	logger *zap.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *service.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{carts: carts, logger: logger}
}

// RegisterRoutes mounts the cart routes on the given (authenticated) router.
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.GetCart)
	r.Delete("/", h.ClearCart)
	r.Post("/items", h.AddItem)
	r.Put("/items/{itemID}", h.UpdateItem)
	r.Delete("/items/{itemID}", h.RemoveItem)
	r.Post("/checkout", h.Checkout)
}

// AddItemRequest represents the add-to-cart payload
type AddItemRequest struct {
	Domain    string  `json:"domain" validate:"required"`
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
	ImageURL  string  `json:"image_url"`
}

// UpdateItemRequest represents the quantity update payload
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	items, summary := h.carts.Get(userID)
	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data: map[string]interface{}{
			"items":   items,
			"summary": summary,
		},
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req AddItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if ve := middleware.FormatValidationErrors(err); len(ve) > 0 {
			middleware.RespondWithValidationErrors(w, ve)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items, summary, err := h.carts.Add(userID, service.AddItemInput{
		Domain:    req.Domain,
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, Envelope{
		Success: true,
		Message: "item added to cart",
		Data: map[string]interface{}{
			"items":   items,
			"summary": summary,
		},
	})
}

// UpdateItem handles PUT /cart/items/{itemID}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	itemID := chi.URLParam(r, "itemID")

	var req UpdateItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if ve := middleware.FormatValidationErrors(err); len(ve) > 0 {
			middleware.RespondWithValidationErrors(w, ve)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items, summary, err := h.carts.UpdateQuantity(userID, itemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartItemNotFound):
			middleware.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "cart updated",
		Data: map[string]interface{}{
			"items":   items,
			"summary": summary,
		},
	})
}

// RemoveItem handles DELETE /cart/items/{itemID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	itemID := chi.URLParam(r, "itemID")

	removed, items, err := h.carts.Remove(userID, itemID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "item removed from cart",
		Data: map[string]interface{}{
			"removed": removed,
			"items":   items,
		},
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	removed := h.carts.Clear(userID)
	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "cart cleared",
		Data:    map[string]interface{}{"removed_items": removed},
	})
}

// Checkout handles POST /cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	order, items, err := h.carts.Checkout(userID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Checkout failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "checkout failed")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "order placed",
		Data: map[string]interface{}{
			"order": order,
			"items": items,
		},
	})
}
