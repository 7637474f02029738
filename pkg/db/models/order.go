package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/opsboard-backend/pkg/enums"
)

// Order is a customer purchase. Totals are stored as supplied and verified on write.
type Order struct {
	ID             uint              `gorm:"primaryKey;autoIncrement"`
	OrderNumber    string            `gorm:"column:order_number;size:50;not null;uniqueIndex"`
	CustomerID     uint              `gorm:"column:customer_id;not null;index"`
	Customer       *Customer         `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	OrderDate      time.Time         `gorm:"column:order_date;not null"`
	RequiredDate   *time.Time        `gorm:"column:required_date"`
	ShippedDate    *time.Time        `gorm:"column:shipped_date"`
	Status         enums.OrderStatus `gorm:"column:status;size:50;not null"`
	Subtotal       decimal.Decimal   `gorm:"column:subtotal;type:numeric(12,2);not null"`
	TaxAmount      decimal.Decimal   `gorm:"column:tax_amount;type:numeric(12,2);not null"`
	ShippingAmount decimal.Decimal   `gorm:"column:shipping_amount;type:numeric(12,2);not null"`
	TotalAmount    decimal.Decimal   `gorm:"column:total_amount;type:numeric(12,2);not null"`
	Notes          *string           `gorm:"column:notes"`
	Items          []OrderItem       `gorm:"foreignKey:OrderID"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderItem is one product line on an order.
type OrderItem struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	OrderID    uint            `gorm:"column:order_id;not null;index"`
	ProductID  uint            `gorm:"column:product_id;not null;index"`
	Product    *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Quantity   int             `gorm:"column:quantity;not null;check:quantity >= 1"`
	UnitPrice  decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:numeric(12,2);not null"`
}
