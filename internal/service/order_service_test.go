package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector17rock/SeatServe/models"
)

func fillCart(t *testing.T, f *fixture, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, f.cart.AddItem(context.Background(), id))
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.order.PlaceOrder(ctx, PlaceOrderRequest{Fulfillment: models.FulfillmentPickup})
	assert.ErrorIs(t, err, ErrEmptyCart)

	orders, err := f.order.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderIncompleteSeatInfo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fillCart(t, f, "p1")

	_, err := f.order.PlaceOrder(ctx, PlaceOrderRequest{
		Fulfillment: models.FulfillmentSeatDelivery,
		Seat:        models.Seat{Section: "104", Row: "   ", Number: "12"},
	})
	assert.ErrorIs(t, err, ErrIncompleteSeatInfo)

	// Neither the cart nor the order list changed
	assert.Len(t, f.cart.Entries(), 1)
	orders, err := f.order.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderInvalidFulfillment(t *testing.T) {
	f := newFixture(t)
	fillCart(t, f, "p1")

	_, err := f.order.PlaceOrder(context.Background(), PlaceOrderRequest{Fulfillment: "Carrier Pigeon"})
	assert.ErrorIs(t, err, ErrInvalidFulfillment)
}

func TestPlaceOrderPickupSuccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fillCart(t, f, "p1", "p1", "p4")

	order, err := f.order.PlaceOrder(ctx, PlaceOrderRequest{
		Fulfillment: models.FulfillmentPickup,
		Note:        "  extra napkins  ",
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-[A-Z0-9]{6}$`), order.ID)
	assert.Equal(t, models.StatusQueued, order.Status)
	assert.Nil(t, order.Seat)
	require.NotNil(t, order.Note)
	assert.Equal(t, "extra napkins", *order.Note)
	assert.Equal(t, "Speedee Burgers", order.Concession)
	assert.InDelta(t, 22.50, order.Total, 1e-9)
	require.Len(t, order.Items, 2)
	assert.Equal(t, models.OrderLine{ID: "p1", Name: "Classic Burger", Price: 10.0, Qty: 2}, order.Items[0])

	// Cart cleared, order first in the list, pending handoff stored
	assert.Empty(t, f.cart.Entries())

	orders, err := f.order.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	pending, err := f.order.PendingOrder(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, order.ID, pending.ID)
}

func TestPlaceOrderSeatDeliverySuccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fillCart(t, f, "p2")

	order, err := f.order.PlaceOrder(ctx, PlaceOrderRequest{
		Fulfillment: models.FulfillmentSeatDelivery,
		Seat:        models.Seat{Section: "104", Row: "F", Number: "12"},
	})
	require.NoError(t, err)

	require.NotNil(t, order.Seat)
	assert.Equal(t, "Section 104, Row F, Seat 12", *order.Seat)
	assert.Nil(t, order.Note)
}

func TestPlaceOrderMostRecentFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	fillCart(t, f, "p1")
	first, err := f.order.PlaceOrder(ctx, PlaceOrderRequest{Fulfillment: models.FulfillmentPickup})
	require.NoError(t, err)

	fillCart(t, f, "p2")
	second, err := f.order.PlaceOrder(ctx, PlaceOrderRequest{Fulfillment: models.FulfillmentPickup})
	require.NoError(t, err)

	orders, err := f.order.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestAdvanceStatusWalksToDeliveredAndClamps(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fillCart(t, f, "p1")

	order, err := f.order.PlaceOrder(ctx, PlaceOrderRequest{Fulfillment: models.FulfillmentPickup})
	require.NoError(t, err)

	expected := []models.OrderStatus{models.StatusPreparing, models.StatusReady, models.StatusDelivered}
	for _, want := range expected {
		require.NoError(t, f.order.AdvanceStatus(ctx, order.ID))
		orders, err := f.order.ListOrders(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, orders[0].Status)
	}

	// Advancing a Delivered order is a no-op, not an error
	require.NoError(t, f.order.AdvanceStatus(ctx, order.ID))
	orders, err := f.order.ListOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, orders[0].Status)
}

func TestAdvanceStatusUnknownOrderIsSilent(t *testing.T) {
	f := newFixture(t)
	assert.NoError(t, f.order.AdvanceStatus(context.Background(), "ORD-MISSING"))
}

func TestCancelOrderRemovesExactlyTheTarget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	fillCart(t, f, "p1")
	keep, err := f.order.PlaceOrder(ctx, PlaceOrderRequest{Fulfillment: models.FulfillmentPickup})
	require.NoError(t, err)

	fillCart(t, f, "p2")
	drop, err := f.order.PlaceOrder(ctx, PlaceOrderRequest{Fulfillment: models.FulfillmentPickup})
	require.NoError(t, err)

	before, err := f.order.ListOrders(ctx)
	require.NoError(t, err)
	var kept models.Order
	for _, o := range before {
		if o.ID == keep.ID {
			kept = o
		}
	}

	require.NoError(t, f.order.CancelOrder(ctx, drop.ID))

	orders, err := f.order.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, kept, orders[0])

	// Cancelling again is a no-op
	require.NoError(t, f.order.CancelOrder(ctx, drop.ID))
	orders, err = f.order.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestTickAdvancesAllNonTerminalOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	fillCart(t, f, "p1")
	_, err := f.order.PlaceOrder(ctx, PlaceOrderRequest{Fulfillment: models.FulfillmentPickup})
	require.NoError(t, err)

	fillCart(t, f, "p2")
	second, err := f.order.PlaceOrder(ctx, PlaceOrderRequest{Fulfillment: models.FulfillmentPickup})
	require.NoError(t, err)

	// Walk the second order to Delivered so only the first still moves
	for i := 0; i < 3; i++ {
		require.NoError(t, f.order.AdvanceStatus(ctx, second.ID))
	}

	f.order.Tick(ctx)

	orders, err := f.order.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, models.StatusDelivered, orders[0].Status)
	assert.Equal(t, models.StatusPreparing, orders[1].Status)
}

func TestAutoAdvanceStartStopIdempotent(t *testing.T) {
	f := newFixture(t)
	f.order.SetAutoAdvanceInterval(time.Hour)

	assert.False(t, f.order.Watching())

	f.order.StartAutoAdvance()
	f.order.StartAutoAdvance() // second start must not stack a timer
	assert.True(t, f.order.Watching())

	f.order.StopAutoAdvance()
	assert.False(t, f.order.Watching())

	f.order.StopAutoAdvance() // stopping an idle tracker is safe
	assert.False(t, f.order.Watching())

	// And it can be restarted after a stop
	f.order.StartAutoAdvance()
	assert.True(t, f.order.Watching())
	f.order.StopAutoAdvance()
}

func TestAutoAdvanceTimerDrivesProgression(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fillCart(t, f, "p1")

	order, err := f.order.PlaceOrder(ctx, PlaceOrderRequest{Fulfillment: models.FulfillmentPickup})
	require.NoError(t, err)

	f.order.SetAutoAdvanceInterval(10 * time.Millisecond)
	f.order.StartAutoAdvance()
	defer f.order.StopAutoAdvance()

	require.Eventually(t, func() bool {
		orders, err := f.order.ListOrders(ctx)
		if err != nil || len(orders) == 0 {
			return false
		}
		return orders[0].ID == order.ID && orders[0].Status == models.StatusDelivered
	}, 2*time.Second, 5*time.Millisecond)
}
