package orders

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
)

const detailColumns = `o.id AS o_id, o.order_number AS o_order_number, o.customer_id AS o_customer_id,
o.order_date AS o_order_date, o.required_date AS o_required_date, o.shipped_date AS o_shipped_date,
o.status AS o_status, o.subtotal AS o_subtotal, o.tax_amount AS o_tax_amount,
o.shipping_amount AS o_shipping_amount, o.total_amount AS o_total_amount, o.notes AS o_notes,
o.created_at AS o_created_at, o.updated_at AS o_updated_at,
c.id AS c_id, c.customer_code AS c_customer_code, c.company_name AS c_company_name,
c.contact_person AS c_contact_person, c.email AS c_email, c.phone AS c_phone,
c.address AS c_address, c.city AS c_city, c.province AS c_province, c.postal_code AS c_postal_code,
c.country AS c_country, c.tax_number AS c_tax_number, c.credit_limit AS c_credit_limit,
c.is_active AS c_is_active, c.created_at AS c_created_at, c.updated_at AS c_updated_at,
i.id AS i_id, i.product_id AS i_product_id, i.quantity AS i_quantity,
i.unit_price AS i_unit_price, i.total_price AS i_total_price,
p.id AS p_id, p.sku AS p_sku, p.name AS p_name, p.description AS p_description,
p.category AS p_category, p.price AS p_price, p.cost AS p_cost, p.weight AS p_weight,
p.dimensions AS p_dimensions, p.is_active AS p_is_active,
p.created_at AS p_created_at, p.updated_at AS p_updated_at`

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) CreateItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&items).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) SaveOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) DeleteItems(ctx context.Context, orderID uint) error {
	return r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error
}

// SumItemTotals returns the sum of the order's stored line totals, rounded to
// cents since sqlite sums numeric columns as floats.
func (r *repository) SumItemTotals(ctx context.Context, orderID uint) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("order_id = ?", orderID).
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}
	return sum.Round(moneyPlaces), nil
}

func (r *repository) DeleteOrder(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Order{}, id).Error
}

func (r *repository) CustomerExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistingProductIDs returns the subset of ids that resolve to a product.
func (r *repository) ExistingProductIDs(ctx context.Context, ids []uint) (map[uint]bool, error) {
	found := make(map[uint]bool, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	var existing []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error; err != nil {
		return nil, err
	}
	for _, id := range existing {
		found[id] = true
	}
	return found, nil
}

// FindDetail returns one order with its customer and items.
func (r *repository) FindDetail(ctx context.Context, id uint) (*OrderDetail, error) {
	var rows []orderRow
	if err := r.joined(ctx).Where("o.id = ?", id).Order("i.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	details := foldOrderRows(rows)
	if len(details) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &details[0], nil
}

// ListDetails returns orders newest first. A positive limit caps the number of
// orders, not joined rows.
func (r *repository) ListDetails(ctx context.Context, limit int) ([]OrderDetail, error) {
	query := r.joined(ctx)
	if limit > 0 {
		newest := r.db.WithContext(ctx).
			Model(&models.Order{}).
			Select("id").
			Order("created_at DESC, id DESC").
			Limit(limit)
		query = query.Where("o.id IN (?)", newest)
	}

	var rows []orderRow
	if err := query.Order("o.created_at DESC, o.id DESC, i.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return foldOrderRows(rows), nil
}

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("orders AS o").
		Select(detailColumns).
		Joins("LEFT JOIN customers AS c ON c.id = o.customer_id").
		Joins("LEFT JOIN order_items AS i ON i.order_id = o.id").
		Joins("LEFT JOIN products AS p ON p.id = i.product_id")
}
