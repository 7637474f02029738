package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
	"github.com/angelmondragon/opsboard-backend/pkg/enums"
	"github.com/angelmondragon/opsboard-backend/pkg/types"
)

// OrderDetail is an order with its customer and resolved line items.
type OrderDetail struct {
	Order    models.Order
	Customer *models.Customer
	Items    []ItemDetail
}

// ItemDetail is a line item with the product it references.
type ItemDetail struct {
	Item    models.OrderItem
	Product models.Product
}

// orderRow is one row of orders LEFT JOIN customers LEFT JOIN order_items
// LEFT JOIN products. Orders without items produce a single row with nil item
// columns.
type orderRow struct {
	OID             uint            `gorm:"column:o_id"`
	OOrderNumber    string          `gorm:"column:o_order_number"`
	OCustomerID     uint            `gorm:"column:o_customer_id"`
	OOrderDate      time.Time       `gorm:"column:o_order_date"`
	ORequiredDate   *time.Time      `gorm:"column:o_required_date"`
	OShippedDate    *time.Time      `gorm:"column:o_shipped_date"`
	OStatus         *string         `gorm:"column:o_status"`
	OSubtotal       decimal.Decimal `gorm:"column:o_subtotal"`
	OTaxAmount      decimal.Decimal `gorm:"column:o_tax_amount"`
	OShippingAmount decimal.Decimal `gorm:"column:o_shipping_amount"`
	OTotalAmount    decimal.Decimal `gorm:"column:o_total_amount"`
	ONotes          *string         `gorm:"column:o_notes"`
	OCreatedAt      time.Time       `gorm:"column:o_created_at"`
	OUpdatedAt      time.Time       `gorm:"column:o_updated_at"`

	CID            *uint               `gorm:"column:c_id"`
	CCustomerCode  *string             `gorm:"column:c_customer_code"`
	CCompanyName   *string             `gorm:"column:c_company_name"`
	CContactPerson *string             `gorm:"column:c_contact_person"`
	CEmail         *string             `gorm:"column:c_email"`
	CPhone         *string             `gorm:"column:c_phone"`
	CAddress       *string             `gorm:"column:c_address"`
	CCity          *string             `gorm:"column:c_city"`
	CProvince      *string             `gorm:"column:c_province"`
	CPostalCode    *string             `gorm:"column:c_postal_code"`
	CCountry       *string             `gorm:"column:c_country"`
	CTaxNumber     *string             `gorm:"column:c_tax_number"`
	CCreditLimit   decimal.NullDecimal `gorm:"column:c_credit_limit"`
	CIsActive      *bool               `gorm:"column:c_is_active"`
	CCreatedAt     *time.Time          `gorm:"column:c_created_at"`
	CUpdatedAt     *time.Time          `gorm:"column:c_updated_at"`

	IID         *uint               `gorm:"column:i_id"`
	IProductID  *uint               `gorm:"column:i_product_id"`
	IQuantity   *int                `gorm:"column:i_quantity"`
	IUnitPrice  decimal.NullDecimal `gorm:"column:i_unit_price"`
	ITotalPrice decimal.NullDecimal `gorm:"column:i_total_price"`

	PID          *uint               `gorm:"column:p_id"`
	PSKU         *string             `gorm:"column:p_sku"`
	PName        *string             `gorm:"column:p_name"`
	PDescription *string             `gorm:"column:p_description"`
	PCategory    *string             `gorm:"column:p_category"`
	PPrice       decimal.NullDecimal `gorm:"column:p_price"`
	PCost        decimal.NullDecimal `gorm:"column:p_cost"`
	PWeight      decimal.NullDecimal `gorm:"column:p_weight"`
	PDimensions  *types.Dimensions   `gorm:"column:p_dimensions"`
	PIsActive    *bool               `gorm:"column:p_is_active"`
	PCreatedAt   *time.Time          `gorm:"column:p_created_at"`
	PUpdatedAt   *time.Time          `gorm:"column:p_updated_at"`
}

// foldOrderRows regroups the flat join by order id in first-seen order. Items
// are appended once per item id and only when both the item and its product
// resolved.
func foldOrderRows(rows []orderRow) []OrderDetail {
	out := make([]OrderDetail, 0)
	index := make(map[uint]int)
	seenItems := make(map[uint]struct{})

	for _, row := range rows {
		pos, ok := index[row.OID]
		if !ok {
			out = append(out, OrderDetail{
				Order:    row.order(),
				Customer: row.customer(),
				Items:    []ItemDetail{},
			})
			pos = len(out) - 1
			index[row.OID] = pos
		}

		if row.IID == nil || row.PID == nil {
			continue
		}
		if _, dup := seenItems[*row.IID]; dup {
			continue
		}
		seenItems[*row.IID] = struct{}{}
		out[pos].Items = append(out[pos].Items, row.item())
	}
	return out
}

func (r orderRow) order() models.Order {
	order := models.Order{
		ID:             r.OID,
		OrderNumber:    r.OOrderNumber,
		CustomerID:     r.OCustomerID,
		OrderDate:      r.OOrderDate,
		RequiredDate:   r.ORequiredDate,
		ShippedDate:    r.OShippedDate,
		Subtotal:       r.OSubtotal,
		TaxAmount:      r.OTaxAmount,
		ShippingAmount: r.OShippingAmount,
		TotalAmount:    r.OTotalAmount,
		Notes:          r.ONotes,
		CreatedAt:      r.OCreatedAt,
		UpdatedAt:      r.OUpdatedAt,
	}
	if r.OStatus != nil {
		order.Status = enums.OrderStatus(*r.OStatus)
	}
	return order
}

func (r orderRow) customer() *models.Customer {
	if r.CID == nil {
		return nil
	}
	c := &models.Customer{
		ID:            *r.CID,
		ContactPerson: r.CContactPerson,
		Email:         r.CEmail,
		Phone:         r.CPhone,
		Address:       r.CAddress,
		City:          r.CCity,
		Province:      r.CProvince,
		PostalCode:    r.CPostalCode,
		TaxNumber:     r.CTaxNumber,
		CreditLimit:   r.CCreditLimit,
	}
	if r.CCustomerCode != nil {
		c.CustomerCode = *r.CCustomerCode
	}
	if r.CCompanyName != nil {
		c.CompanyName = *r.CCompanyName
	}
	if r.CCountry != nil {
		c.Country = *r.CCountry
	}
	if r.CIsActive != nil {
		c.IsActive = *r.CIsActive
	}
	if r.CCreatedAt != nil {
		c.CreatedAt = *r.CCreatedAt
	}
	if r.CUpdatedAt != nil {
		c.UpdatedAt = *r.CUpdatedAt
	}
	return c
}

func (r orderRow) item() ItemDetail {
	item := models.OrderItem{
		ID:         *r.IID,
		OrderID:    r.OID,
		UnitPrice:  r.IUnitPrice.Decimal,
		TotalPrice: r.ITotalPrice.Decimal,
	}
	if r.IProductID != nil {
		item.ProductID = *r.IProductID
	}
	if r.IQuantity != nil {
		item.Quantity = *r.IQuantity
	}

	product := models.Product{
		ID:          *r.PID,
		Description: r.PDescription,
		Category:    r.PCategory,
		Price:       r.PPrice.Decimal,
		Cost:        r.PCost,
		Weight:      r.PWeight,
		Dimensions:  r.PDimensions,
	}
	if r.PSKU != nil {
		product.SKU = *r.PSKU
	}
	if r.PName != nil {
		product.Name = *r.PName
	}
	if r.PIsActive != nil {
		product.IsActive = *r.PIsActive
	}
	if r.PCreatedAt != nil {
		product.CreatedAt = *r.PCreatedAt
	}
	if r.PUpdatedAt != nil {
		product.UpdatedAt = *r.PUpdatedAt
	}
	return ItemDetail{Item: item, Product: product}
}
