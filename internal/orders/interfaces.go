package orders

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
)

// Repository defines persistence operations for orders and their items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateItems(ctx context.Context, items []models.OrderItem) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	SaveOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	DeleteItems(ctx context.Context, orderID uint) error
	SumItemTotals(ctx context.Context, orderID uint) (decimal.Decimal, error)
	DeleteOrder(ctx context.Context, id uint) error
	CustomerExists(ctx context.Context, id uint) (bool, error)
	ExistingProductIDs(ctx context.Context, ids []uint) (map[uint]bool, error)
	FindDetail(ctx context.Context, id uint) (*OrderDetail, error)
	ListDetails(ctx context.Context, limit int) ([]OrderDetail, error)
}
