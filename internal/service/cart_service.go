package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/hector17rock/SeatServe/internal/repositories"
	"github.com/hector17rock/SeatServe/models"
	"github.com/hector17rock/SeatServe/pkg/logger"
	"github.com/hector17rock/SeatServe/pkg/metrics"
)

// CartServiceInterface is the cart manager: it owns the session cart and
// derives line and total amounts from the active vendor's catalog.
type CartServiceInterface interface {
	AddItem(ctx context.Context, itemID string) error
	DecrementItem(itemID string)
	Clear()
	Entries() []models.CartEntry
	Snapshot(ctx context.Context) ([]models.OrderLine, float64)
	Total(ctx context.Context) float64
}

// CartService holds the single browsing session's cart. The demo is
// single-user, so one cart per process matches one cart per browser tab.
type CartService struct {
	mu      sync.Mutex
	cart    *models.Cart
	catalog repositories.CatalogRepositoryInterface
	session repositories.SessionRepositoryInterface
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// NewCartService creates a CartService with an empty cart.
func NewCartService(catalog repositories.CatalogRepositoryInterface, session repositories.SessionRepositoryInterface, log *logger.Logger, m *metrics.Metrics) *CartService {
	return &CartService{
		cart:    models.NewCart(),
		catalog: catalog,
		session: session,
		logger:  log.WithComponent("cart_service"),
		metrics: m,
	}
}

// activeVendor resolves the concession picked upstream, falling back to the
// default vendor when nothing was selected.
func (s *CartService) activeVendor(ctx context.Context) string {
	vendor, err := s.session.Vendor(ctx)
	if err != nil || vendor == "" {
		return repositories.DefaultVendor
	}
	return vendor
}

// AddItem increments the quantity for itemID, inserting it at quantity 1 if
// absent. Ids not on the active menu are rejected and never touch the cart.
func (s *CartService) AddItem(ctx context.Context, itemID string) error {
	vendor := s.activeVendor(ctx)
	if _, err := s.catalog.Item(vendor, itemID); err != nil {
		s.logger.Warn("Ignoring add for unknown menu item", "vendor", vendor, "item_id", itemID)
		return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}

	s.mu.Lock()
	s.cart.Add(itemID)
	qty := s.cart.Quantity(itemID)
	s.mu.Unlock()

	s.metrics.CartMutations.WithLabelValues("add").Inc()
	s.logger.Info("Item added to cart", "item_id", itemID, "quantity", qty)
	return nil
}

// DecrementItem lowers the quantity for itemID by one, deleting the entry at
// zero. Absent ids are a benign no-op.
func (s *CartService) DecrementItem(itemID string) {
	s.mu.Lock()
	s.cart.Decrement(itemID)
	s.mu.Unlock()

	s.metrics.CartMutations.WithLabelValues("decrement").Inc()
	s.logger.Info("Item decremented in cart", "item_id", itemID)
}

// Clear empties the cart unconditionally.
func (s *CartService) Clear() {
	s.mu.Lock()
	s.cart.Clear()
	s.mu.Unlock()

	s.metrics.CartMutations.WithLabelValues("clear").Inc()
	s.logger.Info("Cart cleared")
}

// Entries returns the cart as (id, qty) pairs in first-add order.
func (s *CartService) Entries() []models.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Entries()
}

// Snapshot copies the cart into immutable order lines priced from the
// current catalog, together with the summed total. Entries whose id no
// longer resolves keep their id with a zero price so the line count still
// matches the cart; a lookup miss never fails the snapshot.
func (s *CartService) Snapshot(ctx context.Context) ([]models.OrderLine, float64) {
	vendor := s.activeVendor(ctx)

	s.mu.Lock()
	entries := s.cart.Entries()
	s.mu.Unlock()

	lines := make([]models.OrderLine, 0, len(entries))
	var total float64
	for _, entry := range entries {
		line := models.OrderLine{ID: entry.ItemID, Name: entry.ItemID, Qty: entry.Quantity}
		if item, err := s.catalog.Item(vendor, entry.ItemID); err == nil {
			line.Name = item.Name
			line.Price = item.Price
		}
		total += line.Price * float64(line.Qty)
		lines = append(lines, line)
	}
	return lines, total
}

// Total returns the cart total against the current catalog, exactly 0 for an
// empty cart.
func (s *CartService) Total(ctx context.Context) float64 {
	_, total := s.Snapshot(ctx)
	return total
}
