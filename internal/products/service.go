package product

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/opsboard-backend/internal/inventory"
	"github.com/angelmondragon/opsboard-backend/pkg/db"
	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
	"github.com/angelmondragon/opsboard-backend/pkg/types"
)

// Service exposes catalogue management.
type Service interface {
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	GetProduct(ctx context.Context, id uint) (*ProductDTO, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, id uint, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, id uint) error
}

// CreateProductInput is the full payload for a new product.
type CreateProductInput struct {
	SKU         string            `json:"sku" validate:"required,max=100"`
	Name        string            `json:"name" validate:"required,max=255"`
	Description *string           `json:"description"`
	Category    *string           `json:"category" validate:"omitempty,max=100"`
	Price       *decimal.Decimal  `json:"price" validate:"required,gte=0"`
	Cost        *decimal.Decimal  `json:"cost" validate:"omitempty,gte=0"`
	Weight      *decimal.Decimal  `json:"weight" validate:"omitempty,gte=0"`
	Dimensions  *types.Dimensions `json:"dimensions"`
	IsActive    *bool             `json:"isActive"`
}

// UpdateProductInput holds optional mutation values for a product.
type UpdateProductInput struct {
	SKU         *string           `json:"sku" validate:"omitempty,min=1,max=100"`
	Name        *string           `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string           `json:"description"`
	Category    *string           `json:"category" validate:"omitempty,max=100"`
	Price       *decimal.Decimal  `json:"price" validate:"omitempty,gte=0"`
	Cost        *decimal.Decimal  `json:"cost" validate:"omitempty,gte=0"`
	Weight      *decimal.Decimal  `json:"weight" validate:"omitempty,gte=0"`
	Dimensions  *types.Dimensions `json:"dimensions"`
	IsActive    *bool             `json:"isActive"`
}

type service struct {
	repo          *Repository
	inventoryRepo *inventory.Repository
	dbClient      *db.Client
}

// NewService constructs a product service instance.
func NewService(repo *Repository, inventoryRepo *inventory.Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if inventoryRepo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, inventoryRepo: inventoryRepo, dbClient: dbClient}, nil
}

func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.ListWithInventory(ctx)
	if err != nil {
		return nil, db.Classify(err, "product")
	}
	out := make([]ProductDTO, 0, len(products))
	for i := range products {
		out = append(out, *NewProductDTO(&products[i]))
	}
	return out, nil
}

func (s *service) GetProduct(ctx context.Context, id uint) (*ProductDTO, error) {
	product, err := s.repo.GetWithInventory(ctx, id)
	if err != nil {
		return nil, db.Classify(err, "product")
	}
	return NewProductDTO(product), nil
}

// CreateProduct inserts the product and its zeroed inventory row atomically.
func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	product := &models.Product{
		SKU:         input.SKU,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Cost:        types.NullDecimalFrom(input.Cost),
		Weight:      types.NullDecimalFrom(input.Weight),
		Dimensions:  input.Dimensions,
		IsActive:    true,
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		created, err := s.repo.WithTx(tx).Create(ctx, product)
		if err != nil {
			return err
		}
		stock, err := s.inventoryRepo.WithTx(tx).Create(ctx, inventory.DefaultRow(created.ID))
		if err != nil {
			return err
		}
		created.Inventory = stock
		return nil
	}); err != nil {
		return nil, db.Classify(err, "product")
	}
	return NewProductDTO(product), nil
}

func (s *service) UpdateProduct(ctx context.Context, id uint, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.Classify(err, "product")
	}

	input.apply(product)
	if _, err := s.repo.Save(ctx, product); err != nil {
		return nil, db.Classify(err, "product")
	}
	return s.GetProduct(ctx, id)
}

// DeleteProduct removes the product and its inventory. Products referenced by
// order lines are kept.
func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.FindByID(ctx, id); err != nil {
			return err
		}
		refs, err := txRepo.CountOrderItems(ctx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return pkgerrors.New(pkgerrors.CodeConflict, "product is referenced by existing orders")
		}
		if err := s.inventoryRepo.WithTx(tx).DeleteByProductID(ctx, id); err != nil {
			return err
		}
		return txRepo.Delete(ctx, id)
	})
	return db.Classify(err, "product")
}

func (in UpdateProductInput) apply(p *models.Product) {
	if in.SKU != nil {
		p.SKU = *in.SKU
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Category != nil {
		p.Category = in.Category
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Cost != nil {
		p.Cost = types.NullDecimalFrom(in.Cost)
	}
	if in.Weight != nil {
		p.Weight = types.NullDecimalFrom(in.Weight)
	}
	if in.Dimensions != nil {
		p.Dimensions = in.Dimensions
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
}
