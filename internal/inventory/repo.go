package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
)

const (
	DefaultLocationCode = "MAIN"
	DefaultReorderPoint = 10
)

// DefaultRow is the inventory row created alongside every new product.
func DefaultRow(productID uint) *models.Inventory {
	return &models.Inventory{
		ProductID:         productID,
		LocationCode:      DefaultLocationCode,
		QuantityOnHand:    0,
		QuantityReserved:  0,
		QuantityAvailable: 0,
		ReorderPoint:      DefaultReorderPoint,
	}
}

// itemRow is one inventory LEFT JOIN products row.
type itemRow struct {
	models.Inventory
	PID       *uint               `gorm:"column:p_id"`
	PSKU      *string             `gorm:"column:p_sku"`
	PName     *string             `gorm:"column:p_name"`
	PCategory *string             `gorm:"column:p_category"`
	PPrice    decimal.NullDecimal `gorm:"column:p_price"`
	PIsActive *bool               `gorm:"column:p_is_active"`
}

const itemColumns = `i.id, i.product_id, i.location_code, i.quantity_on_hand, i.quantity_reserved,
i.quantity_available, i.reorder_point, i.max_stock_level, i.last_count_date, i.updated_at,
p.id AS p_id, p.sku AS p_sku, p.name AS p_name, p.category AS p_category,
p.price AS p_price, p.is_active AS p_is_active`

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

func (r *Repository) Create(ctx context.Context, row *models.Inventory) (*models.Inventory, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindByProductID returns the first inventory row for the product.
func (r *Repository) FindByProductID(ctx context.Context, productID uint) (*models.Inventory, error) {
	var row models.Inventory
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Save writes every column of an already loaded row.
func (r *Repository) Save(ctx context.Context, row *models.Inventory) (*models.Inventory, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) DeleteByProductID(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.Inventory{}).Error
}

// List returns every inventory row with its product, scarcest stock first.
func (r *Repository) List(ctx context.Context) ([]itemRow, error) {
	var rows []itemRow
	err := r.joined(ctx).
		Order("i.quantity_available ASC, i.id ASC").
		Scan(&rows).Error
	return rows, err
}

// ListLowStock returns rows whose available quantity is strictly below the
// reorder point.
func (r *Repository) ListLowStock(ctx context.Context) ([]itemRow, error) {
	var rows []itemRow
	err := r.joined(ctx).
		Where("i.quantity_available < i.reorder_point").
		Order("i.quantity_available ASC, i.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *Repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("inventory AS i").
		Select(itemColumns).
		Joins("LEFT JOIN products AS p ON p.id = i.product_id")
}
