package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Dimensions is the physical size of a product, stored as a JSON column.
type Dimensions struct {
	Length float64 `json:"length" validate:"gte=0"`
	Width  float64 `json:"width" validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
}

// Value marshals Dimensions into its JSON column form.
func (d Dimensions) Value() (driver.Value, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("dimensions: %w", err)
	}
	return string(raw), nil
}

// Scan decodes the JSON column. NULL yields the zero value.
func (d *Dimensions) Scan(value interface{}) error {
	if value == nil {
		*d = Dimensions{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("dimensions: unsupported scan type %T", value)
	}
	if len(raw) == 0 {
		*d = Dimensions{}
		return nil
	}
	return json.Unmarshal(raw, d)
}
