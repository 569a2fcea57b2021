package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hector17rock/SeatServe/internal/repositories"
	"github.com/hector17rock/SeatServe/models"
	"github.com/hector17rock/SeatServe/pkg/logger"
	"github.com/hector17rock/SeatServe/pkg/metrics"
)

// DefaultAutoAdvanceInterval is how often the kitchen simulation moves every
// non-terminal order one status forward while the order view is watched.
const DefaultAutoAdvanceInterval = 15 * time.Second

// orderIDAlphabet feeds the ORD- token suffix.
const orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PlaceOrderRequest carries everything checkout submits alongside the cart.
type PlaceOrderRequest struct {
	Fulfillment models.Fulfillment `json:"fulfillment"`
	Seat        models.Seat        `json:"seat"`
	Note        string             `json:"note"`
}

// OrderServiceInterface is the order lifecycle tracker: it turns a non-empty
// cart into an immutable order and walks each order through the fixed status
// progression.
type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	PendingOrder(ctx context.Context) (*models.Order, error)
	AdvanceStatus(ctx context.Context, orderID string) error
	CancelOrder(ctx context.Context, orderID string) error
	StartAutoAdvance()
	StopAutoAdvance()
	Watching() bool
	Tick(ctx context.Context)
}

// OrderService owns the persisted order list. All list mutations run under a
// single mutex, so every operation is atomic from the caller's perspective.
type OrderService struct {
	orderRepo repositories.OrderRepositoryInterface
	cart      CartServiceInterface
	session   repositories.SessionRepositoryInterface
	logger    *logger.Logger
	metrics   *metrics.Metrics

	mu       sync.Mutex
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}
}

// NewOrderService creates an OrderService with the default auto-advance
// interval.
func NewOrderService(orderRepo repositories.OrderRepositoryInterface, cart CartServiceInterface, session repositories.SessionRepositoryInterface, log *logger.Logger, m *metrics.Metrics) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cart:      cart,
		session:   session,
		logger:    log.WithComponent("order_service"),
		metrics:   m,
		interval:  DefaultAutoAdvanceInterval,
	}
}

// SetAutoAdvanceInterval overrides the kitchen simulation tick interval.
// Takes effect on the next StartAutoAdvance.
func (s *OrderService) SetAutoAdvanceInterval(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if interval > 0 {
		s.interval = interval
	}
}

// PlaceOrder converts the current cart into an immutable order. The cart
// must be non-empty, and seat delivery requires a complete seat location;
// failed preconditions leave cart and order list untouched. On success the
// order is prepended to the persisted list (most recent first), stored as
// the pending order for the confirmation page, and the cart is cleared.
func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error) {
	if !req.Fulfillment.Valid() {
		s.logger.Warn("Place failed: invalid fulfillment", "fulfillment", req.Fulfillment)
		return nil, fmt.Errorf("%w: %q", ErrInvalidFulfillment, req.Fulfillment)
	}

	lines, total := s.cart.Snapshot(ctx)
	if len(lines) == 0 {
		s.logger.Warn("Place failed: cart is empty")
		return nil, ErrEmptyCart
	}

	var seat *string
	if req.Fulfillment == models.FulfillmentSeatDelivery {
		if !req.Seat.Complete() {
			s.logger.Warn("Place failed: incomplete seat information")
			return nil, ErrIncompleteSeatInfo
		}
		label := req.Seat.Label()
		seat = &label
	}

	var note *string
	if trimmed := strings.TrimSpace(req.Note); trimmed != "" {
		note = &trimmed
	}

	concession, err := s.session.Vendor(ctx)
	if err != nil || concession == "" {
		concession = repositories.DefaultVendor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load order list: %w", err)
	}

	order := models.Order{
		ID:          s.newOrderID(orders),
		Items:       lines,
		Total:       total,
		Fulfillment: req.Fulfillment,
		Seat:        seat,
		Note:        note,
		Status:      models.StatusQueued,
		Concession:  concession,
		CreatedAt:   time.Now().UTC(),
	}

	orders = append([]models.Order{order}, orders...)
	if err := s.orderRepo.ReplaceAll(ctx, orders); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	if err := s.orderRepo.SavePending(ctx, order); err != nil {
		s.logger.Error("Failed to store pending order handoff", "order_id", order.ID, "error", err)
	}

	s.cart.Clear()
	s.metrics.OrdersPlaced.Inc()
	s.logger.Info("Order placed",
		"order_id", order.ID,
		"total", order.Total,
		"fulfillment", order.Fulfillment,
		"concession", order.Concession,
		"items", len(order.Items))
	return &order, nil
}

// ListOrders returns the persisted orders, most recent first.
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.List(ctx)
}

// PendingOrder returns the order handed off to the confirmation page, nil
// when none is stored.
func (s *OrderService) PendingOrder(ctx context.Context) (*models.Order, error) {
	return s.orderRepo.LoadPending(ctx)
}

// AdvanceStatus moves the order one step forward, clamped at Delivered.
// Advancing a Delivered order and advancing an unknown id are both silent
// no-ops: cancellation races with the UI are expected, not errors.
func (s *OrderService) AdvanceStatus(ctx context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load order list: %w", err)
	}

	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		if orders[i].Status.Terminal() {
			s.logger.Debug("Order already delivered, nothing to advance", "order_id", orderID)
			return nil
		}
		orders[i].Status = orders[i].Status.Next()
		if err := s.orderRepo.ReplaceAll(ctx, orders); err != nil {
			return fmt.Errorf("failed to persist status change: %w", err)
		}
		s.metrics.OrdersAdvanced.WithLabelValues("manual").Inc()
		s.logger.Info("Order status advanced", "order_id", orderID, "status", orders[i].Status)
		return nil
	}

	s.logger.Warn("Advance requested for unknown order", "order_id", orderID)
	return nil
}

// CancelOrder removes the order from the list unconditionally; unknown ids
// are a no-op.
func (s *OrderService) CancelOrder(ctx context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load order list: %w", err)
	}

	remaining := orders[:0:0]
	for _, order := range orders {
		if order.ID != orderID {
			remaining = append(remaining, order)
		}
	}
	if len(remaining) == len(orders) {
		s.logger.Warn("Cancel requested for unknown order", "order_id", orderID)
		return nil
	}

	if err := s.orderRepo.ReplaceAll(ctx, remaining); err != nil {
		return fmt.Errorf("failed to persist cancellation: %w", err)
	}
	s.metrics.OrdersCancelled.Inc()
	s.logger.Info("Order cancelled", "order_id", orderID)
	return nil
}

// StartAutoAdvance begins the kitchen simulation: while running, every
// non-terminal order moves one status forward per tick. Calling it while
// already running is a no-op so repeated watchers never stack tickers.
func (s *OrderService) StartAutoAdvance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		return
	}

	s.ticker = time.NewTicker(s.interval)
	s.done = make(chan struct{})
	go s.run(s.ticker, s.done)
	s.logger.Info("Auto-advance started", "interval", s.interval)
}

// StopAutoAdvance fully cancels the simulation timer. Safe to call when the
// timer is not running.
func (s *OrderService) StopAutoAdvance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker == nil {
		return
	}

	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
	s.logger.Info("Auto-advance stopped")
}

// Watching reports whether the simulation timer is currently running.
func (s *OrderService) Watching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticker != nil
}

func (s *OrderService) run(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.Tick(context.Background())
		}
	}
}

// Tick advances every non-terminal order exactly one step. Exported so tests
// drive the progression deterministically instead of waiting on real time.
func (s *OrderService) Tick(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error("Auto-advance tick failed to load orders", "error", err)
		return
	}

	advanced := 0
	for i := range orders {
		if orders[i].Status.Terminal() {
			continue
		}
		orders[i].Status = orders[i].Status.Next()
		advanced++
	}
	if advanced == 0 {
		return
	}

	if err := s.orderRepo.ReplaceAll(ctx, orders); err != nil {
		s.logger.Error("Auto-advance tick failed to persist orders", "error", err)
		return
	}
	s.metrics.OrdersAdvanced.WithLabelValues("auto").Add(float64(advanced))
	s.logger.Debug("Auto-advance tick", "advanced", advanced)
}

// newOrderID generates an ORD- token and retries on the unlikely collision
// with an existing order, so ids are unique within the stored list.
func (s *OrderService) newOrderID(existing []models.Order) string {
	taken := make(map[string]struct{}, len(existing))
	for _, order := range existing {
		taken[order.ID] = struct{}{}
	}

	for {
		id := "ORD-" + randomToken(6)
		if _, ok := taken[id]; !ok {
			return id
		}
	}
}

func randomToken(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is not survivable in any useful way; fall
		// back to a time-derived suffix instead of panicking.
		return fmt.Sprintf("%06X", time.Now().UnixNano()%0xFFFFFF)
	}
	token := make([]byte, n)
	for i, b := range buf {
		token[i] = orderIDAlphabet[int(b)%len(orderIDAlphabet)]
	}
	return string(token)
}
