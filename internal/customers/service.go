package customers

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/opsboard-backend/pkg/db"
	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
	"github.com/angelmondragon/opsboard-backend/pkg/types"
)

// DefaultCountry is stored when a new customer omits country.
const DefaultCountry = "South Africa"

type Service interface {
	ListCustomers(ctx context.Context) ([]CustomerDTO, error)
	GetCustomer(ctx context.Context, id uint) (*CustomerDTO, error)
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*CustomerDTO, error)
	UpdateCustomer(ctx context.Context, id uint, input UpdateCustomerInput) (*CustomerDTO, error)
	DeleteCustomer(ctx context.Context, id uint) error
}

type CreateCustomerInput struct {
	CustomerCode  string           `json:"customerCode" validate:"required,max=50"`
	CompanyName   string           `json:"companyName" validate:"required,max=255"`
	ContactPerson *string          `json:"contactPerson" validate:"omitempty,max=255"`
	Email         *string          `json:"email" validate:"omitempty,email,max=255"`
	Phone         *string          `json:"phone" validate:"omitempty,max=50"`
	Address       *string          `json:"address"`
	City          *string          `json:"city" validate:"omitempty,max=100"`
	Province      *string          `json:"province" validate:"omitempty,max=100"`
	PostalCode    *string          `json:"postalCode" validate:"omitempty,max=20"`
	Country       *string          `json:"country" validate:"omitempty,max=100"`
	TaxNumber     *string          `json:"taxNumber" validate:"omitempty,max=50"`
	CreditLimit   *decimal.Decimal `json:"creditLimit" validate:"omitempty,gte=0"`
	IsActive      *bool            `json:"isActive"`
}

// UpdateCustomerInput is a partial patch; nil fields are left untouched.
type UpdateCustomerInput struct {
	CustomerCode  *string          `json:"customerCode" validate:"omitempty,min=1,max=50"`
	CompanyName   *string          `json:"companyName" validate:"omitempty,min=1,max=255"`
	ContactPerson *string          `json:"contactPerson" validate:"omitempty,max=255"`
	Email         *string          `json:"email" validate:"omitempty,email,max=255"`
	Phone         *string          `json:"phone" validate:"omitempty,max=50"`
	Address       *string          `json:"address"`
	City          *string          `json:"city" validate:"omitempty,max=100"`
	Province      *string          `json:"province" validate:"omitempty,max=100"`
	PostalCode    *string          `json:"postalCode" validate:"omitempty,max=20"`
	Country       *string          `json:"country" validate:"omitempty,min=1,max=100"`
	TaxNumber     *string          `json:"taxNumber" validate:"omitempty,max=50"`
	CreditLimit   *decimal.Decimal `json:"creditLimit" validate:"omitempty,gte=0"`
	IsActive      *bool            `json:"isActive"`
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func (s *service) ListCustomers(ctx context.Context) ([]CustomerDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, db.Classify(err, "customer")
	}
	out := make([]CustomerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewCustomerDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) GetCustomer(ctx context.Context, id uint) (*CustomerDTO, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.Classify(err, "customer")
	}
	return NewCustomerDTO(customer), nil
}

func (s *service) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*CustomerDTO, error) {
	customer := &models.Customer{
		CustomerCode:  input.CustomerCode,
		CompanyName:   input.CompanyName,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		City:          input.City,
		Province:      input.Province,
		PostalCode:    input.PostalCode,
		Country:       DefaultCountry,
		TaxNumber:     input.TaxNumber,
		CreditLimit:   types.NullDecimalFrom(input.CreditLimit),
		IsActive:      true,
	}
	if input.Country != nil && *input.Country != "" {
		customer.Country = *input.Country
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, db.Classify(err, "customer")
	}
	return NewCustomerDTO(created), nil
}

func (s *service) UpdateCustomer(ctx context.Context, id uint, input UpdateCustomerInput) (*CustomerDTO, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.Classify(err, "customer")
	}
	input.apply(customer)
	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		return nil, db.Classify(err, "customer")
	}
	return NewCustomerDTO(saved), nil
}

// DeleteCustomer hard-deletes a customer that no order references.
func (s *service) DeleteCustomer(ctx context.Context, id uint) error {
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.FindByID(ctx, id); err != nil {
			return err
		}
		refs, err := txRepo.CountOrders(ctx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return pkgerrors.New(pkgerrors.CodeConflict, "customer has existing orders")
		}
		return txRepo.Delete(ctx, id)
	})
	return db.Classify(err, "customer")
}

func (in UpdateCustomerInput) apply(c *models.Customer) {
	if in.CustomerCode != nil {
		c.CustomerCode = *in.CustomerCode
	}
	if in.CompanyName != nil {
		c.CompanyName = *in.CompanyName
	}
	if in.ContactPerson != nil {
		c.ContactPerson = in.ContactPerson
	}
	if in.Email != nil {
		c.Email = in.Email
	}
	if in.Phone != nil {
		c.Phone = in.Phone
	}
	if in.Address != nil {
		c.Address = in.Address
	}
	if in.City != nil {
		c.City = in.City
	}
	if in.Province != nil {
		c.Province = in.Province
	}
	if in.PostalCode != nil {
		c.PostalCode = in.PostalCode
	}
	if in.Country != nil {
		c.Country = *in.Country
	}
	if in.TaxNumber != nil {
		c.TaxNumber = in.TaxNumber
	}
	if in.CreditLimit != nil {
		c.CreditLimit = types.NullDecimalFrom(in.CreditLimit)
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
}
