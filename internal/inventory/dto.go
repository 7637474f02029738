package inventory

import (
	"time"

	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
	"github.com/angelmondragon/opsboard-backend/pkg/types"
)

// InventoryDTO is the inventory row as returned to clients.
type InventoryDTO struct {
	ID                uint       `json:"id"`
	ProductID         uint       `json:"productId"`
	LocationCode      string     `json:"locationCode"`
	QuantityOnHand    int        `json:"quantityOnHand"`
	QuantityReserved  int        `json:"quantityReserved"`
	QuantityAvailable int        `json:"quantityAvailable"`
	ReorderPoint      int        `json:"reorderPoint"`
	MaxStockLevel     *int       `json:"maxStockLevel"`
	LastCountDate     *time.Time `json:"lastCountDate"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// ItemDTO is an inventory row joined with the product it counts.
type ItemDTO struct {
	InventoryDTO
	Product *ProductSummaryDTO `json:"product"`
}

// ProductSummaryDTO is the slice of a product shown next to its stock level.
type ProductSummaryDTO struct {
	ID       uint    `json:"id"`
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Category *string `json:"category"`
	Price    string  `json:"price"`
	IsActive bool    `json:"isActive"`
}

func NewInventoryDTO(row *models.Inventory) *InventoryDTO {
	if row == nil {
		return nil
	}
	return &InventoryDTO{
		ID:                row.ID,
		ProductID:         row.ProductID,
		LocationCode:      row.LocationCode,
		QuantityOnHand:    row.QuantityOnHand,
		QuantityReserved:  row.QuantityReserved,
		QuantityAvailable: row.QuantityAvailable,
		ReorderPoint:      row.ReorderPoint,
		MaxStockLevel:     row.MaxStockLevel,
		LastCountDate:     row.LastCountDate,
		UpdatedAt:         row.UpdatedAt,
	}
}

func newItemDTO(row itemRow) ItemDTO {
	item := ItemDTO{InventoryDTO: *NewInventoryDTO(&row.Inventory)}
	if row.PID != nil {
		summary := &ProductSummaryDTO{
			ID:       *row.PID,
			Category: row.PCategory,
			Price:    types.FormatMoney(row.PPrice.Decimal),
		}
		if row.PSKU != nil {
			summary.SKU = *row.PSKU
		}
		if row.PName != nil {
			summary.Name = *row.PName
		}
		if row.PIsActive != nil {
			summary.IsActive = *row.PIsActive
		}
		item.Product = summary
	}
	return item
}
