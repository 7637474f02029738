package customers

import (
	"time"

	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
	"github.com/angelmondragon/opsboard-backend/pkg/types"
)

type CustomerDTO struct {
	ID            uint      `json:"id"`
	CustomerCode  string    `json:"customerCode"`
	CompanyName   string    `json:"companyName"`
	ContactPerson *string   `json:"contactPerson"`
	Email         *string   `json:"email"`
	Phone         *string   `json:"phone"`
	Address       *string   `json:"address"`
	City          *string   `json:"city"`
	Province      *string   `json:"province"`
	PostalCode    *string   `json:"postalCode"`
	Country       string    `json:"country"`
	TaxNumber     *string   `json:"taxNumber"`
	CreditLimit   *string   `json:"creditLimit"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewCustomerDTO(c *models.Customer) *CustomerDTO {
	if c == nil {
		return nil
	}
	return &CustomerDTO{
		ID:            c.ID,
		CustomerCode:  c.CustomerCode,
		CompanyName:   c.CompanyName,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		City:          c.City,
		Province:      c.Province,
		PostalCode:    c.PostalCode,
		Country:       c.Country,
		TaxNumber:     c.TaxNumber,
		CreditLimit:   types.FormatNullMoney(c.CreditLimit),
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
