package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestVerifyTotalsAcceptsConsistentOrder(t *testing.T) {
	order := &models.Order{Subtotal: money("300"), TaxAmount: money("45"), TotalAmount: money("345.00")}
	items := []models.OrderItem{{Quantity: 3, UnitPrice: money("100.00"), TotalPrice: money("300")}}

	assert.NoError(t, VerifyTotals(order, items))
}

func TestVerifyTotalsReportsEveryMismatch(t *testing.T) {
	order := &models.Order{Subtotal: money("250"), TaxAmount: money("10"), ShippingAmount: money("5"), TotalAmount: money("250")}
	items := []models.OrderItem{
		{Quantity: 2, UnitPrice: money("50"), TotalPrice: money("100")},
		{Quantity: 3, UnitPrice: money("50"), TotalPrice: money("140")},
	}

	err := VerifyTotals(order, items)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	fields := pkgerrors.FieldErrors(err)
	require.Len(t, fields, 3)
	assert.Equal(t, "items[1].totalPrice", fields[0].Field)
	assert.Equal(t, "order.subtotal", fields[1].Field)
	assert.Equal(t, "order.totalAmount", fields[2].Field)
}

func TestVerifyTotalsEmptyOrder(t *testing.T) {
	assert.NoError(t, VerifyTotals(&models.Order{}, nil))

	err := VerifyTotals(&models.Order{Subtotal: money("1"), TotalAmount: money("1")}, nil)
	require.Error(t, err)
	assert.Equal(t, "order.subtotal", pkgerrors.FieldErrors(err)[0].Field)
}

func TestVerifyOrderTotal(t *testing.T) {
	ok := &models.Order{Subtotal: money("100"), ShippingAmount: money("20"), TotalAmount: money("120")}
	assert.NoError(t, VerifyOrderTotal(ok, nil))

	bad := &models.Order{Subtotal: money("100"), TotalAmount: money("99.99")}
	err := VerifyOrderTotal(bad, nil)
	require.Error(t, err)
	assert.Equal(t, "totalAmount", pkgerrors.FieldErrors(err)[0].Field)
}

func TestVerifyOrderTotalAgainstItemSum(t *testing.T) {
	order := &models.Order{Subtotal: money("1000"), TaxAmount: money("45"), TotalAmount: money("1045")}
	itemSum := money("300.00")

	err := VerifyOrderTotal(order, &itemSum)
	require.Error(t, err)
	fields := pkgerrors.FieldErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "subtotal", fields[0].Field)

	order.Subtotal = money("300")
	order.TotalAmount = money("345")
	assert.NoError(t, VerifyOrderTotal(order, &itemSum))
}

func TestVerifyTotalsRejectsSubCentAmounts(t *testing.T) {
	order := &models.Order{Subtotal: money("99.999"), TotalAmount: money("99.999")}
	items := []models.OrderItem{{Quantity: 3, UnitPrice: money("33.333"), TotalPrice: money("99.999")}}

	err := VerifyTotals(order, items)
	require.Error(t, err)

	var fields []string
	for _, fe := range pkgerrors.FieldErrors(err) {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{
		"order.subtotal", "order.totalAmount", "items[0].unitPrice", "items[0].totalPrice",
	}, fields)
}

func TestVerifyTotalsAcceptsTrailingZeros(t *testing.T) {
	order := &models.Order{Subtotal: money("3.000"), TotalAmount: money("3.0000")}
	items := []models.OrderItem{{Quantity: 2, UnitPrice: money("1.500"), TotalPrice: money("3.00")}}

	assert.NoError(t, VerifyTotals(order, items))
}

func TestVerifyOrderTotalRejectsSubCentPatch(t *testing.T) {
	order := &models.Order{Subtotal: money("100"), TaxAmount: money("0.005"), TotalAmount: money("100.005")}

	err := VerifyOrderTotal(order, nil)
	require.Error(t, err)
	assert.Equal(t, "taxAmount", pkgerrors.FieldErrors(err)[0].Field)
}
