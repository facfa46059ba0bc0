package service

import (
	"context"
	"math"

	"changemoney-backend/internal/domain"
	"changemoney-backend/internal/ports"
)

// Stats are derived from the current order list on every call, never stored.
type Stats struct {
	TotalOrders     int   `json:"totalOrders"`
	PendingOrders   int   `json:"pendingOrders"`
	CompletedOrders int   `json:"completedOrders"`
	TotalRevenue    int64 `json:"totalRevenue"`
	// DeliveredAmount sums subtotal over completed orders; Profit sums fee
	// over completed orders.
	DeliveredAmount int64 `json:"totalDeliveredAmount"`
	Profit          int64 `json:"totalProfit"`
	// Rates are rounded integer percents, 0 when the denominator is 0.
	CompletionRate int `json:"completionRate"`
	ProfitRate     int `json:"profitRate"`
}

type ReportService struct {
	Store ports.OrderStore
}

func NewReportService(store ports.OrderStore) *ReportService {
	return &ReportService{Store: store}
}

func (s *ReportService) Stats(ctx context.Context) (*Stats, error) {
	orders, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := Compute(orders)
	return &stats, nil
}

// Compute derives the statistics from an order list.
func Compute(orders []domain.Order) Stats {
	var st Stats
	st.TotalOrders = len(orders)
	for _, o := range orders {
		st.TotalRevenue += o.Total
		switch o.Status {
		case domain.StatusCompleted:
			st.CompletedOrders++
			st.DeliveredAmount += o.Subtotal
			st.Profit += o.Fee
		default:
			st.PendingOrders++
		}
	}
	st.CompletionRate = roundedPercent(int64(st.CompletedOrders), int64(st.TotalOrders))
	st.ProfitRate = roundedPercent(st.Profit, st.DeliveredAmount)
	return st
}

func roundedPercent(part, whole int64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
