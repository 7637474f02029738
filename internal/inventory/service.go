package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/opsboard-backend/pkg/db"
	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
)

// Service exposes stock level reads and the per-product stock update.
type Service interface {
	List(ctx context.Context) ([]ItemDTO, error)
	ListLowStock(ctx context.Context) ([]ItemDTO, error)
	UpdateByProduct(ctx context.Context, productID uint, input UpdateInput) (*InventoryDTO, error)
}

// UpdateInput holds optional changes; nil fields keep their stored value.
type UpdateInput struct {
	LocationCode      *string    `json:"locationCode" validate:"omitempty,min=1,max=50"`
	QuantityOnHand    *int       `json:"quantityOnHand" validate:"omitempty,gte=0"`
	QuantityReserved  *int       `json:"quantityReserved" validate:"omitempty,gte=0"`
	QuantityAvailable *int       `json:"quantityAvailable" validate:"omitempty,gte=0"`
	ReorderPoint      *int       `json:"reorderPoint" validate:"omitempty,gte=0"`
	MaxStockLevel     *int       `json:"maxStockLevel" validate:"omitempty,gte=0"`
	LastCountDate     *time.Time `json:"lastCountDate"`
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]ItemDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, db.Classify(err, "inventory")
	}
	return toItems(rows), nil
}

func (s *service) ListLowStock(ctx context.Context) ([]ItemDTO, error) {
	rows, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return nil, db.Classify(err, "inventory")
	}
	return toItems(rows), nil
}

func (s *service) UpdateByProduct(ctx context.Context, productID uint, input UpdateInput) (*InventoryDTO, error) {
	row, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.NotFound("inventory for product")
		}
		return nil, db.Classify(err, "inventory")
	}

	input.apply(row)
	if err := VerifyCounts(row); err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, row)
	if err != nil {
		return nil, db.Classify(err, "inventory")
	}
	return NewInventoryDTO(saved), nil
}

func (in UpdateInput) apply(row *models.Inventory) {
	if in.LocationCode != nil {
		row.LocationCode = *in.LocationCode
	}
	if in.QuantityOnHand != nil {
		row.QuantityOnHand = *in.QuantityOnHand
	}
	if in.QuantityReserved != nil {
		row.QuantityReserved = *in.QuantityReserved
	}
	if in.QuantityAvailable != nil {
		row.QuantityAvailable = *in.QuantityAvailable
	}
	if in.ReorderPoint != nil {
		row.ReorderPoint = *in.ReorderPoint
	}
	if in.MaxStockLevel != nil {
		row.MaxStockLevel = in.MaxStockLevel
	}
	if in.LastCountDate != nil {
		row.LastCountDate = in.LastCountDate
	}
}

// VerifyCounts checks available = onHand - reserved on a complete row.
func VerifyCounts(row *models.Inventory) error {
	var agg error
	if row.QuantityReserved > row.QuantityOnHand {
		agg = pkgerrors.AppendField(agg, "quantityReserved", "cannot exceed quantityOnHand")
	}
	if want := row.QuantityOnHand - row.QuantityReserved; row.QuantityAvailable != want {
		agg = pkgerrors.AppendField(agg, "quantityAvailable",
			fmt.Sprintf("must equal quantityOnHand - quantityReserved (%d)", want))
	}
	return pkgerrors.FromFieldErrors("inventory counts are inconsistent", agg)
}

func toItems(rows []itemRow) []ItemDTO {
	out := make([]ItemDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, newItemDTO(row))
	}
	return out
}
