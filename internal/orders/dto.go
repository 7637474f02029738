package orders

import (
	"time"

	"github.com/angelmondragon/opsboard-backend/internal/customers"
	products "github.com/angelmondragon/opsboard-backend/internal/products"
	"github.com/angelmondragon/opsboard-backend/pkg/types"
)

// OrderDTO is an order with its customer and items as returned by the API.
type OrderDTO struct {
	ID             uint                   `json:"id"`
	OrderNumber    string                 `json:"orderNumber"`
	CustomerID     uint                   `json:"customerId"`
	OrderDate      time.Time              `json:"orderDate"`
	RequiredDate   *time.Time             `json:"requiredDate"`
	ShippedDate    *time.Time             `json:"shippedDate"`
	Status         string                 `json:"status"`
	Subtotal       string                 `json:"subtotal"`
	TaxAmount      string                 `json:"taxAmount"`
	ShippingAmount string                 `json:"shippingAmount"`
	TotalAmount    string                 `json:"totalAmount"`
	Notes          *string                `json:"notes"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
	Customer       *customers.CustomerDTO `json:"customer"`
	Items          []OrderItemDTO         `json:"orderItems"`
}

type OrderItemDTO struct {
	ID         uint                 `json:"id"`
	OrderID    uint                 `json:"orderId"`
	ProductID  uint                 `json:"productId"`
	Quantity   int                  `json:"quantity"`
	UnitPrice  string               `json:"unitPrice"`
	TotalPrice string               `json:"totalPrice"`
	Product    *products.ProductDTO `json:"product"`
}

func NewOrderDTO(d *OrderDetail) *OrderDTO {
	if d == nil {
		return nil
	}
	o := d.Order
	dto := &OrderDTO{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerID:     o.CustomerID,
		OrderDate:      o.OrderDate,
		RequiredDate:   o.RequiredDate,
		ShippedDate:    o.ShippedDate,
		Status:         o.Status.String(),
		Subtotal:       types.FormatMoney(o.Subtotal),
		TaxAmount:      types.FormatMoney(o.TaxAmount),
		ShippingAmount: types.FormatMoney(o.ShippingAmount),
		TotalAmount:    types.FormatMoney(o.TotalAmount),
		Notes:          o.Notes,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		Customer:       customers.NewCustomerDTO(d.Customer),
		Items:          make([]OrderItemDTO, 0, len(d.Items)),
	}
	for _, it := range d.Items {
		dto.Items = append(dto.Items, newItemDTO(it))
	}
	return dto
}

func newItemDTO(it ItemDetail) OrderItemDTO {
	return OrderItemDTO{
		ID:         it.Item.ID,
		OrderID:    it.Item.OrderID,
		ProductID:  it.Item.ProductID,
		Quantity:   it.Item.Quantity,
		UnitPrice:  types.FormatMoney(it.Item.UnitPrice),
		TotalPrice: types.FormatMoney(it.Item.TotalPrice),
		Product:    products.NewProductDTO(&it.Product),
	}
}
