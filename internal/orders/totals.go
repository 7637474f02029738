package orders

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
)

// moneyPlaces is the scale of every stored amount column.
const moneyPlaces = 2

// VerifyTotals checks the caller-supplied derived amounts of a new order:
// every amount is whole cents, every item total is quantity x unit price, the
// subtotal is their sum and the order total is subtotal + tax + shipping. All
// mismatches are reported.
func VerifyTotals(order *models.Order, items []models.OrderItem) error {
	agg := checkOrderScale(nil, order, "order.")
	sum := decimal.Zero
	for i, item := range items {
		prefix := fmt.Sprintf("items[%d].", i)
		agg = checkScale(agg, prefix+"unitPrice", item.UnitPrice)
		agg = checkScale(agg, prefix+"totalPrice", item.TotalPrice)

		want := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if !item.TotalPrice.Equal(want) {
			agg = pkgerrors.AppendField(agg, prefix+"totalPrice",
				fmt.Sprintf("must equal quantity x unitPrice (%s)", want.StringFixed(moneyPlaces)))
		}
		sum = sum.Add(item.TotalPrice)
	}
	if !order.Subtotal.Equal(sum) {
		agg = pkgerrors.AppendField(agg, "order.subtotal",
			fmt.Sprintf("must equal the sum of item totals (%s)", sum.StringFixed(moneyPlaces)))
	}
	if err := verifyOrderTotal(order, "order.totalAmount"); err != nil {
		agg = pkgerrors.AppendField(agg, err.Field, err.Message)
	}
	return pkgerrors.FromFieldErrors("order totals are inconsistent", agg)
}

// VerifyOrderTotal checks a patched order: whole-cent amounts and
// total = subtotal + tax + shipping. When itemSum is set the subtotal must
// also equal it.
func VerifyOrderTotal(order *models.Order, itemSum *decimal.Decimal) error {
	agg := checkOrderScale(nil, order, "")
	if itemSum != nil && !order.Subtotal.Equal(*itemSum) {
		agg = pkgerrors.AppendField(agg, "subtotal",
			fmt.Sprintf("must equal the sum of item totals (%s)", itemSum.StringFixed(moneyPlaces)))
	}
	if err := verifyOrderTotal(order, "totalAmount"); err != nil {
		agg = pkgerrors.AppendField(agg, err.Field, err.Message)
	}
	return pkgerrors.FromFieldErrors("order totals are inconsistent", agg)
}

func verifyOrderTotal(order *models.Order, field string) *pkgerrors.FieldError {
	want := order.Subtotal.Add(order.TaxAmount).Add(order.ShippingAmount)
	if order.TotalAmount.Equal(want) {
		return nil
	}
	return &pkgerrors.FieldError{
		Field:   field,
		Message: fmt.Sprintf("must equal subtotal + taxAmount + shippingAmount (%s)", want.StringFixed(moneyPlaces)),
	}
}

func checkOrderScale(agg error, order *models.Order, prefix string) error {
	agg = checkScale(agg, prefix+"subtotal", order.Subtotal)
	agg = checkScale(agg, prefix+"taxAmount", order.TaxAmount)
	agg = checkScale(agg, prefix+"shippingAmount", order.ShippingAmount)
	return checkScale(agg, prefix+"totalAmount", order.TotalAmount)
}

// checkScale rejects sub-cent amounts. Trailing zeros ("1.500") are fine.
func checkScale(agg error, field string, amount decimal.Decimal) error {
	if amount.Equal(amount.Truncate(moneyPlaces)) {
		return agg
	}
	return pkgerrors.AppendField(agg, field, fmt.Sprintf("must have at most %d decimal places", moneyPlaces))
}
