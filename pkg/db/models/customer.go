package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a business account that places orders.
type Customer struct {
	ID            uint                `gorm:"primaryKey;autoIncrement"`
	CustomerCode  string              `gorm:"column:customer_code;size:50;not null;uniqueIndex"`
	CompanyName   string              `gorm:"column:company_name;size:255;not null"`
	ContactPerson *string             `gorm:"column:contact_person;size:255"`
	Email         *string             `gorm:"column:email;size:255"`
	Phone         *string             `gorm:"column:phone;size:50"`
	Address       *string             `gorm:"column:address"`
	City          *string             `gorm:"column:city;size:100"`
	Province      *string             `gorm:"column:province;size:100"`
	PostalCode    *string             `gorm:"column:postal_code;size:20"`
	Country       string              `gorm:"column:country;size:100;not null"`
	TaxNumber     *string             `gorm:"column:tax_number;size:50"`
	CreditLimit   decimal.NullDecimal `gorm:"column:credit_limit;type:numeric(12,2)"`
	IsActive      bool                `gorm:"column:is_active;not null"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
