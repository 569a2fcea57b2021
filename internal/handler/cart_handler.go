package handler

import (
	"errors"
	"net/http"

	"github.com/hector17rock/SeatServe/internal/service"
	"github.com/hector17rock/SeatServe/models"
	"github.com/hector17rock/SeatServe/pkg/logger"
)

// CartHandler exposes the cart manager over HTTP.
type CartHandler struct {
	cartService service.CartServiceInterface
	logger      *logger.Logger
}

// NewCartHandler creates a new CartHandler with the given service and logger
func NewCartHandler(cartService service.CartServiceInterface, log *logger.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      log.WithComponent("cart_handler"),
	}
}

type cartResponse struct {
	Lines []models.OrderLine `json:"lines"`
	Total float64            `json:"total"`
}

// GetCart handles GET /api/v1/cart — priced lines plus the running total.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	lines, total := h.cartService.Snapshot(r.Context())
	writeJSONResponse(w, http.StatusOK, cartResponse{Lines: lines, Total: total})
}

type addItemRequest struct {
	ItemID string `json:"item_id"`
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid add-item body", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ItemID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "item_id is required")
		return
	}

	if err := h.cartService.AddItem(r.Context(), req.ItemID); err != nil {
		if errors.Is(err, service.ErrUnknownItem) {
			writeErrorResponse(w, http.StatusNotFound, "Item not on the menu")
			return
		}
		h.logger.Error("Failed to add item to cart", "item_id", req.ItemID, "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to add item")
		return
	}

	lines, total := h.cartService.Snapshot(r.Context())
	writeJSONResponse(w, http.StatusOK, cartResponse{Lines: lines, Total: total})
}

// DecrementItem handles DELETE /api/v1/cart/items/{id} — decrement by one,
// dropping the line at zero. Unknown ids are a no-op.
func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, "item id is required")
		return
	}

	h.cartService.DecrementItem(id)

	lines, total := h.cartService.Snapshot(r.Context())
	writeJSONResponse(w, http.StatusOK, cartResponse{Lines: lines, Total: total})
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cartService.Clear()
	writeJSONResponse(w, http.StatusNoContent, nil)
}
