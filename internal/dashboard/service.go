package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/opsboard-backend/internal/orders"
	"github.com/angelmondragon/opsboard-backend/pkg/db"
	"github.com/angelmondragon/opsboard-backend/pkg/enums"
	"github.com/angelmondragon/opsboard-backend/pkg/types"
)

const monthLabelLayout = "Jan 2006"

// Service computes the dashboard widgets.
type Service interface {
	KPIs(ctx context.Context) (*KPIsDTO, error)
	MonthlySales(ctx context.Context) ([]MonthlySalesDTO, error)
	OrderStatusDistribution(ctx context.Context) ([]StatusCountDTO, error)
	RecentOrders(ctx context.Context, limit int) ([]orders.OrderDTO, error)
}

type recentOrderLister interface {
	ListRecentOrders(ctx context.Context, limit int) ([]orders.OrderDTO, error)
}

type service struct {
	repo   *Repository
	orders recentOrderLister
	cutoff time.Time
}

// NewService builds the dashboard service. cutoff bounds the monthly sales
// series from below.
func NewService(repo *Repository, orderLister recentOrderLister, cutoff time.Time) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dashboard repository required")
	}
	if orderLister == nil {
		return nil, fmt.Errorf("order lister required")
	}
	return &service{repo: repo, orders: orderLister, cutoff: cutoff.UTC()}, nil
}

func (s *service) KPIs(ctx context.Context) (*KPIsDTO, error) {
	row, err := s.repo.KPIs(ctx)
	if err != nil {
		return nil, db.Classify(err, "kpis")
	}
	return &KPIsDTO{
		TotalOrders:    row.TotalOrders,
		TotalRevenue:   types.FormatMoney(row.TotalRevenue),
		TotalProducts:  row.TotalProducts,
		TotalCustomers: row.TotalCustomers,
	}, nil
}

func (s *service) MonthlySales(ctx context.Context) ([]MonthlySalesDTO, error) {
	rows, err := s.repo.SalesSince(ctx, s.cutoff)
	if err != nil {
		return nil, db.Classify(err, "sales")
	}
	return foldMonthlySales(rows), nil
}

func (s *service) OrderStatusDistribution(ctx context.Context) ([]StatusCountDTO, error) {
	rows, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return nil, db.Classify(err, "order status")
	}
	return mergeStatusCounts(rows), nil
}

func (s *service) RecentOrders(ctx context.Context, limit int) ([]orders.OrderDTO, error) {
	return s.orders.ListRecentOrders(ctx, limit)
}

// foldMonthlySales buckets orders by UTC calendar month, keyed on year and
// month so that equally named months of different years stay apart.
func foldMonthlySales(rows []saleRow) []MonthlySalesDTO {
	type bucket struct {
		start time.Time
		sum   decimal.Decimal
	}
	buckets := make(map[int]*bucket)
	for _, row := range rows {
		at := row.OrderDate.UTC()
		key := at.Year()*12 + int(at.Month()) - 1
		b, ok := buckets[key]
		if !ok {
			b = &bucket{start: time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)}
			buckets[key] = b
		}
		b.sum = b.sum.Add(row.TotalAmount)
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]MonthlySalesDTO, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		out = append(out, MonthlySalesDTO{
			Month:   b.start.Format(monthLabelLayout),
			Revenue: json.Number(b.sum.String()),
		})
	}
	return out
}

// mergeStatusCounts folds NULL and empty statuses into "unknown" and orders
// the result by count, then name.
func mergeStatusCounts(rows []statusRow) []StatusCountDTO {
	counts := make(map[string]int64)
	for _, row := range rows {
		label := enums.OrderStatusUnknown
		if row.Status != nil && *row.Status != "" {
			label = *row.Status
		}
		counts[label] += row.Count
	}

	out := make([]StatusCountDTO, 0, len(counts))
	for status, count := range counts {
		out = append(out, StatusCountDTO{Status: status, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Status < out[j].Status
	})
	return out
}
