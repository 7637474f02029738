package product

import (
	"time"

	"github.com/angelmondragon/opsboard-backend/internal/inventory"
	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
	"github.com/angelmondragon/opsboard-backend/pkg/types"
)

// ProductDTO is the product as returned by the API. Inventory is omitted when
// the product has no stock row.
type ProductDTO struct {
	ID          uint                    `json:"id"`
	SKU         string                  `json:"sku"`
	Name        string                  `json:"name"`
	Description *string                 `json:"description"`
	Category    *string                 `json:"category"`
	Price       string                  `json:"price"`
	Cost        *string                 `json:"cost"`
	Weight      *string                 `json:"weight"`
	Dimensions  *types.Dimensions       `json:"dimensions"`
	IsActive    bool                    `json:"isActive"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
	Inventory   *inventory.InventoryDTO `json:"inventory,omitempty"`
}

func NewProductDTO(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       types.FormatMoney(p.Price),
		Cost:        types.FormatNullMoney(p.Cost),
		Weight:      types.FormatNullMoney(p.Weight),
		Dimensions:  p.Dimensions,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Inventory:   inventory.NewInventoryDTO(p.Inventory),
	}
}
