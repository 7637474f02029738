package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type kpiRow struct {
	TotalOrders    int64
	TotalRevenue   decimal.Decimal
	TotalProducts  int64
	TotalCustomers int64
}

type saleRow struct {
	OrderDate   time.Time
	TotalAmount decimal.Decimal
}

type statusRow struct {
	Status *string
	Count  int64
}

// Repository runs the read-only reporting queries.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// KPIs computes the four scalar rollups in one round trip.
func (r *Repository) KPIs(ctx context.Context) (kpiRow, error) {
	var row kpiRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders) AS total_orders,
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders) AS total_revenue,
			(SELECT COUNT(*) FROM products WHERE is_active = ?) AS total_products,
			(SELECT COUNT(*) FROM customers WHERE is_active = ?) AS total_customers
	`, true, true).Scan(&row).Error
	return row, err
}

// SalesSince returns the date and total of every order on or after cutoff.
func (r *Repository) SalesSince(ctx context.Context, cutoff time.Time) ([]saleRow, error) {
	var rows []saleRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("order_date, total_amount").
		Where("order_date >= ?", cutoff).
		Order("order_date ASC").
		Scan(&rows).Error
	return rows, err
}

// StatusCounts groups orders by raw status value.
func (r *Repository) StatusCounts(ctx context.Context) ([]statusRow, error) {
	var rows []statusRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}
