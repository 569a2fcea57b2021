package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hector17rock/SeatServe/models"
	"github.com/hector17rock/SeatServe/pkg/logger"
)

// OrderRepositoryInterface persists the order list and the pending-order
// handoff written at placement time for the checkout step.
type OrderRepositoryInterface interface {
	List(ctx context.Context) ([]models.Order, error)
	ReplaceAll(ctx context.Context, orders []models.Order) error
	SavePending(ctx context.Context, order models.Order) error
	LoadPending(ctx context.Context) (*models.Order, error)
	ClearPending(ctx context.Context) error
}

// OrderRepository stores the full serialized order list under a single key,
// rewritten on every mutation, the way the demo persisted it.
type OrderRepository struct {
	store  Store
	logger *logger.Logger
}

// NewOrderRepository creates an OrderRepository on top of the given store.
func NewOrderRepository(store Store, log *logger.Logger) *OrderRepository {
	return &OrderRepository{
		store:  store,
		logger: log.WithComponent("order_repository"),
	}
}

// List returns all stored orders, most recent first. A missing or corrupted
// stored list degrades to an empty list rather than failing; there is no
// fatal error in this path.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	raw, ok, err := r.store.Get(ctx, KeyOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to read order list: %w", err)
	}
	if !ok {
		return []models.Order{}, nil
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		r.logger.Warn("Stored order list is corrupted, starting empty", "error", err)
		return []models.Order{}, nil
	}
	return orders, nil
}

// ReplaceAll rewrites the stored order list wholesale.
func (r *OrderRepository) ReplaceAll(ctx context.Context, orders []models.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to marshal order list: %w", err)
	}
	if err := r.store.Set(ctx, KeyOrders, string(data)); err != nil {
		return fmt.Errorf("failed to write order list: %w", err)
	}
	r.logger.Debug("Order list persisted", "count", len(orders))
	return nil
}

// SavePending writes the just-placed order for the confirmation page.
func (r *OrderRepository) SavePending(ctx context.Context, order models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal pending order: %w", err)
	}
	if err := r.store.Set(ctx, KeyPendingOrder, string(data)); err != nil {
		return fmt.Errorf("failed to write pending order: %w", err)
	}
	return nil
}

// LoadPending returns the pending order, or nil when none is stored or the
// stored value cannot be decoded.
func (r *OrderRepository) LoadPending(ctx context.Context) (*models.Order, error) {
	raw, ok, err := r.store.Get(ctx, KeyPendingOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending order: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var order models.Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		r.logger.Warn("Stored pending order is corrupted, ignoring", "error", err)
		return nil, nil
	}
	return &order, nil
}

// ClearPending removes the pending-order handoff.
func (r *OrderRepository) ClearPending(ctx context.Context) error {
	return r.store.Delete(ctx, KeyPendingOrder)
}
