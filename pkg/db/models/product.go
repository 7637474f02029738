package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/opsboard-backend/pkg/types"
)

// Product is a sellable catalogue item. Every product owns one Inventory row.
type Product struct {
	ID          uint                `gorm:"primaryKey;autoIncrement"`
	SKU         string              `gorm:"column:sku;size:100;not null;uniqueIndex"`
	Name        string              `gorm:"column:name;size:255;not null"`
	Description *string             `gorm:"column:description"`
	Category    *string             `gorm:"column:category;size:100"`
	Price       decimal.Decimal     `gorm:"column:price;type:numeric(10,2);not null"`
	Cost        decimal.NullDecimal `gorm:"column:cost;type:numeric(10,2)"`
	Weight      decimal.NullDecimal `gorm:"column:weight;type:numeric(8,2)"`
	Dimensions  *types.Dimensions   `gorm:"column:dimensions;type:jsonb"`
	IsActive    bool                `gorm:"column:is_active;not null"`
	Inventory   *Inventory          `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
