package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/opsboard-backend/internal/orders"
	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
)

type stubOrderService struct {
	created   *orders.CreateOrderInput
	deletedID uint
	err       error
}

func (s *stubOrderService) ListOrders(context.Context) ([]orders.OrderDTO, error) {
	return []orders.OrderDTO{}, s.err
}

func (s *stubOrderService) ListRecentOrders(context.Context, int) ([]orders.OrderDTO, error) {
	return []orders.OrderDTO{}, s.err
}

func (s *stubOrderService) GetOrder(_ context.Context, id uint) (*orders.OrderDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &orders.OrderDTO{ID: id, Items: []orders.OrderItemDTO{}}, nil
}

func (s *stubOrderService) CreateOrder(_ context.Context, input orders.CreateOrderInput) (*orders.OrderDTO, error) {
	s.created = &input
	if s.err != nil {
		return nil, s.err
	}
	return &orders.OrderDTO{ID: 1, OrderNumber: input.Order.OrderNumber, TotalAmount: input.Order.TotalAmount.StringFixed(2)}, nil
}

func (s *stubOrderService) UpdateOrder(_ context.Context, id uint, _ orders.UpdateOrderInput) (*orders.OrderDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &orders.OrderDTO{ID: id}, nil
}

func (s *stubOrderService) DeleteOrder(_ context.Context, id uint) error {
	s.deletedID = id
	return s.err
}

func TestCreateOrderDecodesEnvelope(t *testing.T) {
	stub := &stubOrderService{}
	body := `{
		"order": {"orderNumber": "ORD-1", "customerId": 1, "subtotal": "345", "taxAmount": 0, "shippingAmount": 0, "totalAmount": 345},
		"items": [
			{"productId": 1, "quantity": 3, "unitPrice": "100", "totalPrice": "300"},
			{"productId": 2, "quantity": 1, "unitPrice": 45, "totalPrice": 45}
		]
	}`
	req := newRequest(http.MethodPost, "/api/orders", body, nil)

	rec := serve(CreateOrder(stub, testLogger()), req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.created)
	assert.Len(t, stub.created.Items, 2)
	assert.Equal(t, uint(1), stub.created.Order.CustomerID)
	assert.JSONEq(t, `"345.00"`, mustField(t, rec.Body.Bytes(), "totalAmount"))
}

func TestCreateOrderReportsNestedFieldPaths(t *testing.T) {
	stub := &stubOrderService{}
	body := `{
		"order": {"customerId": 1, "subtotal": "10", "totalAmount": "10", "status": "lost"},
		"items": [{"productId": 1, "quantity": 0, "unitPrice": "10", "totalPrice": "10"}]
	}`
	req := newRequest(http.MethodPost, "/api/orders", body, nil)

	rec := serve(CreateOrder(stub, testLogger()), req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.created)
	assert.ElementsMatch(t,
		[]string{"order.orderNumber", "order.status", "items[0].quantity"},
		errorFields(decodeErrorBody(t, rec)),
	)
}

func TestCreateOrderPassesServiceFieldErrors(t *testing.T) {
	stub := &stubOrderService{err: pkgerrors.Validation("invalid order", []pkgerrors.FieldError{
		{Field: "order.totalAmount", Message: "must equal subtotal + taxAmount + shippingAmount"},
	})}
	body := `{"order": {"orderNumber": "ORD-2", "customerId": 1, "subtotal": "10", "totalAmount": "11"}, "items": []}`
	req := newRequest(http.MethodPost, "/api/orders", body, nil)

	rec := serve(CreateOrder(stub, testLogger()), req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"order.totalAmount"}, errorFields(decodeErrorBody(t, rec)))
}

func TestDeleteOrder(t *testing.T) {
	stub := &stubOrderService{}
	req := newRequest(http.MethodDelete, "/api/orders/12", "", map[string]string{"id": "12"})

	rec := serve(DeleteOrder(stub, testLogger()), req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, uint(12), stub.deletedID)

	stub = &stubOrderService{err: pkgerrors.NotFound("order")}
	rec = serve(DeleteOrder(stub, testLogger()), newRequest(http.MethodDelete, "/api/orders/12", "", map[string]string{"id": "12"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateOrderRejectsUnknownStatus(t *testing.T) {
	req := newRequest(http.MethodPut, "/api/orders/1", `{"status":"Shipped"}`, map[string]string{"id": "1"})

	rec := serve(UpdateOrder(&stubOrderService{}, testLogger()), req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"status"}, errorFields(decodeErrorBody(t, rec)))
}
