package models

import "time"

// Inventory tracks stock counts for a product at a location.
type Inventory struct {
	ID                uint       `gorm:"primaryKey;autoIncrement"`
	ProductID         uint       `gorm:"column:product_id;not null;index"`
	LocationCode      string     `gorm:"column:location_code;size:50;not null"`
	QuantityOnHand    int        `gorm:"column:quantity_on_hand;not null"`
	QuantityReserved  int        `gorm:"column:quantity_reserved;not null"`
	QuantityAvailable int        `gorm:"column:quantity_available;not null"`
	ReorderPoint      int        `gorm:"column:reorder_point;not null"`
	MaxStockLevel     *int       `gorm:"column:max_stock_level"`
	LastCountDate     *time.Time `gorm:"column:last_count_date"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Inventory) TableName() string {
	return "inventory"
}
