package types

import "github.com/shopspring/decimal"

// FormatMoney renders a numeric(…,2) column the way Postgres prints it.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func FormatNullMoney(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.StringFixed(2)
	return &s
}

// NullDecimalFrom converts an optional input value into a nullable column value.
func NullDecimalFrom(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
