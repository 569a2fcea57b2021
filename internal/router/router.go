package router

import (
	"net/http"

	"github.com/hector17rock/SeatServe/internal/handler"
	"github.com/hector17rock/SeatServe/pkg/metrics"
)

// NewRouter wires every handler onto a single mux.
func NewRouter(authHandler *handler.AuthHandler, menuHandler *handler.MenuHandler, cartHandler *handler.CartHandler, orderHandler *handler.OrderHandler, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	mux.HandleFunc("GET /api/v1/info", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"service":"seatserve","version":"1.0.0"}`))
	})

	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/v1/auth/session", authHandler.Session)

	mux.HandleFunc("GET /api/v1/menu", menuHandler.GetMenu)
	mux.HandleFunc("GET /api/v1/menu/vendors", menuHandler.GetVendors)
	mux.HandleFunc("POST /api/v1/menu/vendor", menuHandler.SelectVendor)

	mux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem)
	mux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.DecrementItem)
	mux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart)

	mux.HandleFunc("POST /api/v1/orders", orderHandler.PlaceOrder)
	mux.HandleFunc("GET /api/v1/orders", orderHandler.GetAllOrders)
	mux.HandleFunc("GET /api/v1/orders/pending", orderHandler.GetPendingOrder)
	mux.HandleFunc("GET /api/v1/orders/summary", orderHandler.GetSummary)
	mux.HandleFunc("POST /api/v1/orders/watch", orderHandler.StartWatch)
	mux.HandleFunc("DELETE /api/v1/orders/watch", orderHandler.StopWatch)
	mux.HandleFunc("POST /api/v1/orders/{id}/advance", orderHandler.AdvanceStatus)
	mux.HandleFunc("DELETE /api/v1/orders/{id}", orderHandler.CancelOrder)

	mux.Handle("GET /metrics", m.Handler())

	return mux
}
