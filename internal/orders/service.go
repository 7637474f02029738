package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/opsboard-backend/pkg/db"
	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
	"github.com/angelmondragon/opsboard-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
)

// Service exposes order reads and writes.
type Service interface {
	ListOrders(ctx context.Context) ([]OrderDTO, error)
	ListRecentOrders(ctx context.Context, limit int) ([]OrderDTO, error)
	GetOrder(ctx context.Context, id uint) (*OrderDTO, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDTO, error)
	UpdateOrder(ctx context.Context, id uint, input UpdateOrderInput) (*OrderDTO, error)
	DeleteOrder(ctx context.Context, id uint) error
}

// CreateOrderInput is the POST /api/orders body.
type CreateOrderInput struct {
	Order OrderInput  `json:"order"`
	Items []ItemInput `json:"items" validate:"dive"`
}

type OrderInput struct {
	OrderNumber    string           `json:"orderNumber" validate:"required,max=50"`
	CustomerID     uint             `json:"customerId" validate:"required"`
	OrderDate      *time.Time       `json:"orderDate"`
	RequiredDate   *time.Time       `json:"requiredDate"`
	ShippedDate    *time.Time       `json:"shippedDate"`
	Status         *string          `json:"status" validate:"omitempty,oneof=pending processing shipped delivered completed cancelled"`
	Subtotal       *decimal.Decimal `json:"subtotal" validate:"required,gte=0"`
	TaxAmount      *decimal.Decimal `json:"taxAmount" validate:"omitempty,gte=0"`
	ShippingAmount *decimal.Decimal `json:"shippingAmount" validate:"omitempty,gte=0"`
	TotalAmount    *decimal.Decimal `json:"totalAmount" validate:"required,gte=0"`
	Notes          *string          `json:"notes"`
}

type ItemInput struct {
	ProductID  uint             `json:"productId" validate:"required"`
	Quantity   int              `json:"quantity" validate:"required,min=1"`
	UnitPrice  *decimal.Decimal `json:"unitPrice" validate:"required,gte=0"`
	TotalPrice *decimal.Decimal `json:"totalPrice" validate:"required,gte=0"`
}

// UpdateOrderInput patches order header fields. Items are not editable here.
type UpdateOrderInput struct {
	OrderNumber    *string          `json:"orderNumber" validate:"omitempty,min=1,max=50"`
	CustomerID     *uint            `json:"customerId" validate:"omitempty,gt=0"`
	OrderDate      *time.Time       `json:"orderDate"`
	RequiredDate   *time.Time       `json:"requiredDate"`
	ShippedDate    *time.Time       `json:"shippedDate"`
	Status         *string          `json:"status" validate:"omitempty,oneof=pending processing shipped delivered completed cancelled"`
	Subtotal       *decimal.Decimal `json:"subtotal" validate:"omitempty,gte=0"`
	TaxAmount      *decimal.Decimal `json:"taxAmount" validate:"omitempty,gte=0"`
	ShippingAmount *decimal.Decimal `json:"shippingAmount" validate:"omitempty,gte=0"`
	TotalAmount    *decimal.Decimal `json:"totalAmount" validate:"omitempty,gte=0"`
	Notes          *string          `json:"notes"`
}

type service struct {
	repo     Repository
	dbClient *db.Client
	now      func() time.Time
}

// NewService constructs an order service.
func NewService(repo Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient, now: time.Now}, nil
}

func (s *service) ListOrders(ctx context.Context) ([]OrderDTO, error) {
	return s.list(ctx, 0)
}

func (s *service) ListRecentOrders(ctx context.Context, limit int) ([]OrderDTO, error) {
	if limit <= 0 {
		return nil, pkgerrors.Validation("invalid limit", []pkgerrors.FieldError{
			{Field: "limit", Message: "must be greater than 0"},
		})
	}
	return s.list(ctx, limit)
}

func (s *service) list(ctx context.Context, limit int) ([]OrderDTO, error) {
	details, err := s.repo.ListDetails(ctx, limit)
	if err != nil {
		return nil, db.Classify(err, "order")
	}
	out := make([]OrderDTO, 0, len(details))
	for i := range details {
		out = append(out, *NewOrderDTO(&details[i]))
	}
	return out, nil
}

func (s *service) GetOrder(ctx context.Context, id uint) (*OrderDTO, error) {
	detail, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, db.Classify(err, "order")
	}
	return NewOrderDTO(detail), nil
}

// CreateOrder verifies the derived totals, then inserts the order and its
// items in one transaction.
func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDTO, error) {
	order, items := input.toModels(s.now())
	if err := checkStatus(order.Status, "order.status"); err != nil {
		return nil, err
	}
	if err := VerifyTotals(order, items); err != nil {
		return nil, err
	}

	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := checkReferences(ctx, txRepo, "order.customerId", order.CustomerID, items); err != nil {
			return err
		}
		created, err := txRepo.CreateOrder(ctx, order)
		if err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = created.ID
		}
		return txRepo.CreateItems(ctx, items)
	})
	if err != nil {
		return nil, db.Classify(err, "order")
	}
	return s.GetOrder(ctx, order.ID)
}

func (s *service) UpdateOrder(ctx context.Context, id uint, input UpdateOrderInput) (*OrderDTO, error) {
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		order, err := txRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		customerChanged := input.CustomerID != nil && *input.CustomerID != order.CustomerID

		var itemSum *decimal.Decimal
		if input.Subtotal != nil {
			sum, err := txRepo.SumItemTotals(ctx, id)
			if err != nil {
				return err
			}
			itemSum = &sum
		}

		input.apply(order)
		if err := checkStatus(order.Status, "status"); err != nil {
			return err
		}
		if err := VerifyOrderTotal(order, itemSum); err != nil {
			return err
		}
		if customerChanged {
			if err := checkReferences(ctx, txRepo, "customerId", order.CustomerID, nil); err != nil {
				return err
			}
		}
		_, err = txRepo.SaveOrder(ctx, order)
		return err
	})
	if err != nil {
		return nil, db.Classify(err, "order")
	}
	return s.GetOrder(ctx, id)
}

// DeleteOrder removes the order's items, then the order.
func (s *service) DeleteOrder(ctx context.Context, id uint) error {
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.FindByID(ctx, id); err != nil {
			return err
		}
		if err := txRepo.DeleteItems(ctx, id); err != nil {
			return err
		}
		return txRepo.DeleteOrder(ctx, id)
	})
	return db.Classify(err, "order")
}

func checkStatus(status enums.OrderStatus, field string) error {
	if _, err := enums.ParseOrderStatus(status.String()); err != nil {
		return pkgerrors.Validation("invalid order status", []pkgerrors.FieldError{
			{Field: field, Message: "must be one of: " + strings.Join(enums.OrderStatusValues(), ", ")},
		})
	}
	return nil
}

func checkReferences(ctx context.Context, repo Repository, customerField string, customerID uint, items []models.OrderItem) error {
	var agg error
	ok, err := repo.CustomerExists(ctx, customerID)
	if err != nil {
		return err
	}
	if !ok {
		agg = pkgerrors.AppendField(agg, customerField, "does not reference an existing customer")
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	found, err := repo.ExistingProductIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i, item := range items {
		if !found[item.ProductID] {
			agg = pkgerrors.AppendField(agg, fmt.Sprintf("items[%d].productId", i), "does not reference an existing product")
		}
	}
	return pkgerrors.FromFieldErrors("order references missing records", agg)
}

func (in CreateOrderInput) toModels(now time.Time) (*models.Order, []models.OrderItem) {
	o := in.Order
	order := &models.Order{
		OrderNumber:    o.OrderNumber,
		CustomerID:     o.CustomerID,
		OrderDate:      now.UTC(),
		RequiredDate:   o.RequiredDate,
		ShippedDate:    o.ShippedDate,
		Status:         enums.OrderStatusPending,
		Subtotal:       decimalOrZero(o.Subtotal),
		TaxAmount:      decimalOrZero(o.TaxAmount),
		ShippingAmount: decimalOrZero(o.ShippingAmount),
		TotalAmount:    decimalOrZero(o.TotalAmount),
		Notes:          o.Notes,
	}
	if o.OrderDate != nil {
		order.OrderDate = o.OrderDate.UTC()
	}
	if o.Status != nil {
		order.Status = enums.OrderStatus(*o.Status)
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, models.OrderItem{
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  decimalOrZero(it.UnitPrice),
			TotalPrice: decimalOrZero(it.TotalPrice),
		})
	}
	return order, items
}

func (in UpdateOrderInput) apply(o *models.Order) {
	if in.OrderNumber != nil {
		o.OrderNumber = *in.OrderNumber
	}
	if in.CustomerID != nil {
		o.CustomerID = *in.CustomerID
	}
	if in.OrderDate != nil {
		o.OrderDate = in.OrderDate.UTC()
	}
	if in.RequiredDate != nil {
		o.RequiredDate = in.RequiredDate
	}
	if in.ShippedDate != nil {
		o.ShippedDate = in.ShippedDate
	}
	if in.Status != nil {
		o.Status = enums.OrderStatus(*in.Status)
	}
	if in.Subtotal != nil {
		o.Subtotal = *in.Subtotal
	}
	if in.TaxAmount != nil {
		o.TaxAmount = *in.TaxAmount
	}
	if in.ShippingAmount != nil {
		o.ShippingAmount = *in.ShippingAmount
	}
	if in.TotalAmount != nil {
		o.TotalAmount = *in.TotalAmount
	}
	if in.Notes != nil {
		o.Notes = in.Notes
	}
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
