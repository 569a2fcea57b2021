package service

import (
	"context"
	"fmt"

	"github.com/hector17rock/SeatServe/internal/repositories"
	"github.com/hector17rock/SeatServe/models"
	"github.com/hector17rock/SeatServe/pkg/logger"
)

// OrderSummary aggregates the persisted order list for the status header.
type OrderSummary struct {
	TotalOrders  int                        `json:"total_orders"`
	ByStatus     map[models.OrderStatus]int `json:"by_status"`
	TotalRevenue float64                    `json:"total_revenue"`
}

// SummaryServiceInterface reports aggregate figures over the order list.
type SummaryServiceInterface interface {
	Summary(ctx context.Context) (*OrderSummary, error)
}

// SummaryService derives its numbers from the order repository on demand;
// nothing is cached, the list is small.
type SummaryService struct {
	orderRepo repositories.OrderRepositoryInterface
	logger    *logger.Logger
}

// NewSummaryService creates a SummaryService over the given repository.
func NewSummaryService(orderRepo repositories.OrderRepositoryInterface, log *logger.Logger) *SummaryService {
	return &SummaryService{
		orderRepo: orderRepo,
		logger:    log.WithComponent("summary_service"),
	}
}

// Summary counts orders per status and sums their placement-time totals.
func (s *SummaryService) Summary(ctx context.Context) (*OrderSummary, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load order list: %w", err)
	}

	summary := &OrderSummary{
		TotalOrders: len(orders),
		ByStatus:    make(map[models.OrderStatus]int),
	}
	for _, order := range orders {
		summary.ByStatus[order.Status]++
		summary.TotalRevenue += order.Total
	}

	s.logger.Debug("Order summary computed", "total_orders", summary.TotalOrders)
	return summary, nil
}
