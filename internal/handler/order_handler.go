package handler

import (
	"errors"
	"net/http"

	"github.com/hector17rock/SeatServe/internal/service"
	"github.com/hector17rock/SeatServe/pkg/logger"
)

// OrderHandler exposes the order lifecycle tracker over HTTP.
type OrderHandler struct {
	orderService   service.OrderServiceInterface
	summaryService service.SummaryServiceInterface
	logger         *logger.Logger
}

// NewOrderHandler creates a new OrderHandler with the given services and logger
func NewOrderHandler(orderService service.OrderServiceInterface, summaryService service.SummaryServiceInterface, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		summaryService: summaryService,
		logger:         log.WithComponent("order_handler"),
	}
}

// PlaceOrder handles POST /api/v1/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req service.PlaceOrderRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid place-order body", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			writeErrorResponse(w, http.StatusBadRequest, "Your cart is empty")
		case errors.Is(err, service.ErrIncompleteSeatInfo):
			writeErrorResponse(w, http.StatusUnprocessableEntity,
				"Please enter your complete seat location (Section, Row, and Seat)")
		case errors.Is(err, service.ErrInvalidFulfillment):
			writeErrorResponse(w, http.StatusBadRequest, "Unknown fulfillment mode")
		default:
			h.logger.Error("Failed to place order", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, "Failed to place order")
		}
		return
	}

	writeJSONResponse(w, http.StatusCreated, order)
}

// GetAllOrders handles GET /api/v1/orders
func (h *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("Failed to list orders", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	writeJSONResponse(w, http.StatusOK, orders)
}

// GetPendingOrder handles GET /api/v1/orders/pending — the placement-time
// handoff the confirmation page picks up.
func (h *OrderHandler) GetPendingOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.PendingOrder(r.Context())
	if err != nil {
		h.logger.Error("Failed to load pending order", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch pending order")
		return
	}
	if order == nil {
		writeErrorResponse(w, http.StatusNotFound, "No pending order")
		return
	}
	writeJSONResponse(w, http.StatusOK, order)
}

// AdvanceStatus handles POST /api/v1/orders/{id}/advance
func (h *OrderHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, "order id is required")
		return
	}

	if err := h.orderService.AdvanceStatus(r.Context(), id); err != nil {
		h.logger.Error("Failed to advance order", "order_id", id, "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to advance order")
		return
	}
	writeJSONResponse(w, http.StatusNoContent, nil)
}

// CancelOrder handles DELETE /api/v1/orders/{id}
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, "order id is required")
		return
	}

	if err := h.orderService.CancelOrder(r.Context(), id); err != nil {
		h.logger.Error("Failed to cancel order", "order_id", id, "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to cancel order")
		return
	}
	writeJSONResponse(w, http.StatusNoContent, nil)
}

// StartWatch handles POST /api/v1/orders/watch — the status view became
// visible, so the kitchen simulation starts ticking.
func (h *OrderHandler) StartWatch(w http.ResponseWriter, r *http.Request) {
	h.orderService.StartAutoAdvance()
	writeJSONResponse(w, http.StatusNoContent, nil)
}

// StopWatch handles DELETE /api/v1/orders/watch — the status view went
// away, so the simulation timer is fully cancelled.
func (h *OrderHandler) StopWatch(w http.ResponseWriter, r *http.Request) {
	h.orderService.StopAutoAdvance()
	writeJSONResponse(w, http.StatusNoContent, nil)
}

// GetSummary handles GET /api/v1/orders/summary
func (h *OrderHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summaryService.Summary(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute order summary", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to compute summary")
		return
	}
	writeJSONResponse(w, http.StatusOK, summary)
}
