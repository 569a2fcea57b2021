package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector17rock/SeatServe/internal/repositories"
	"github.com/hector17rock/SeatServe/pkg/logger"
	"github.com/hector17rock/SeatServe/pkg/metrics"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.LevelError,
		Format: "text",
		Output: "stderr",
	})
}

type fixture struct {
	store   *repositories.MemoryStore
	session *repositories.SessionRepository
	orders  *repositories.OrderRepository
	cart    *CartService
	order   *OrderService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := newTestLogger()
	m := metrics.New()

	store := repositories.NewMemoryStore()
	catalog := repositories.NewCatalogRepository(log)
	session := repositories.NewSessionRepository(store, log)
	orders := repositories.NewOrderRepository(store, log)

	cart := NewCartService(catalog, session, log, m)
	order := NewOrderService(orders, cart, session, log, m)

	return &fixture{
		store:   store,
		session: session,
		orders:  orders,
		cart:    cart,
		order:   order,
	}
}

func TestCartServiceAddKnownItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cart.AddItem(ctx, "p1"))
	require.NoError(t, f.cart.AddItem(ctx, "p1"))

	entries := f.cart.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestCartServiceAddUnknownItemNeverCorruptsCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cart.AddItem(ctx, "p1"))

	err := f.cart.AddItem(ctx, "p99")
	assert.ErrorIs(t, err, ErrUnknownItem)

	entries := f.cart.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].ItemID)
}

func TestCartServiceTotalMatchesCatalog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// p1 = $10.00 x2, p4 = $2.50 x1
	require.NoError(t, f.cart.AddItem(ctx, "p1"))
	require.NoError(t, f.cart.AddItem(ctx, "p1"))
	require.NoError(t, f.cart.AddItem(ctx, "p4"))

	assert.InDelta(t, 22.50, f.cart.Total(ctx), 1e-9)
}

func TestCartServiceTotalEmptyCartIsZero(t *testing.T) {
	f := newFixture(t)
	assert.Zero(t, f.cart.Total(context.Background()))
}

func TestCartServiceSnapshotPricesFromActiveVendor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.session.SetVendor(ctx, "Sweet Scoops"))
	require.NoError(t, f.cart.AddItem(ctx, "p4")) // Cone, $4.00

	lines, total := f.cart.Snapshot(ctx)
	require.Len(t, lines, 1)
	assert.Equal(t, "Cone", lines[0].Name)
	assert.InDelta(t, 4.0, total, 1e-9)
}

func TestCartServiceDecrementAndClear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cart.AddItem(ctx, "p1"))
	require.NoError(t, f.cart.AddItem(ctx, "p2"))

	f.cart.DecrementItem("p1")
	assert.Len(t, f.cart.Entries(), 1)

	f.cart.DecrementItem("absent") // benign no-op
	assert.Len(t, f.cart.Entries(), 1)

	f.cart.Clear()
	assert.Empty(t, f.cart.Entries())
}
