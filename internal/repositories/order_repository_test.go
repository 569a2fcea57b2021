package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector17rock/SeatServe/models"
)

func sampleOrder(id string, status models.OrderStatus) models.Order {
	return models.Order{
		ID: id,
		Items: []models.OrderLine{
			{ID: "p1", Name: "Classic Burger", Price: 10.0, Qty: 2},
		},
		Total:       20.0,
		Fulfillment: models.FulfillmentPickup,
		Status:      status,
		Concession:  "Speedee Burgers",
		CreatedAt:   time.Date(2025, 6, 1, 19, 30, 0, 0, time.UTC),
	}
}

func TestOrderRepositoryListEmpty(t *testing.T) {
	repo := NewOrderRepository(NewMemoryStore(), newTestLogger())

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(NewMemoryStore(), newTestLogger())

	stored := []models.Order{
		sampleOrder("ORD-AAAAAA", models.StatusQueued),
		sampleOrder("ORD-BBBBBB", models.StatusReady),
	}
	require.NoError(t, repo.ReplaceAll(ctx, stored))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-AAAAAA", orders[0].ID)
	assert.Equal(t, models.StatusReady, orders[1].Status)
	assert.Equal(t, stored[0].Items, orders[0].Items)
}

func TestOrderRepositoryCorruptedListDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyOrders, "][ not json"))

	repo := NewOrderRepository(store, newTestLogger())

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepositoryPendingOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(NewMemoryStore(), newTestLogger())

	pending, err := repo.LoadPending(ctx)
	require.NoError(t, err)
	assert.Nil(t, pending)

	order := sampleOrder("ORD-CCCCCC", models.StatusQueued)
	require.NoError(t, repo.SavePending(ctx, order))

	pending, err = repo.LoadPending(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, order.ID, pending.ID)

	require.NoError(t, repo.ClearPending(ctx))
	pending, err = repo.LoadPending(ctx)
	require.NoError(t, err)
	assert.Nil(t, pending)
}
