package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/opsboard-backend/internal/customers"
	"github.com/angelmondragon/opsboard-backend/internal/inventory"
	"github.com/angelmondragon/opsboard-backend/internal/orders"
	"github.com/angelmondragon/opsboard-backend/pkg/db"
	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
	"github.com/angelmondragon/opsboard-backend/pkg/logger"
	"github.com/angelmondragon/opsboard-backend/pkg/metrics"
)

const (
	SeededMessage  = "Mock data seeded successfully"
	ClearedMessage = "Database cleared successfully"
)

// Summary counts what a seed run inserted.
type Summary struct {
	Customers    int `json:"customers"`
	Products     int `json:"products"`
	Orders       int `json:"orders"`
	Integrations int `json:"integrations"`
}

type SeedResultDTO struct {
	Message string  `json:"message"`
	Summary Summary `json:"summary"`
}

// Service loads and wipes the demo dataset.
type Service interface {
	Seed(ctx context.Context) (*SeedResultDTO, error)
	Clear(ctx context.Context) error
}

// clearOrder lists tables children first so no delete trips a foreign key.
var clearOrder = []any{
	&models.OrderItem{},
	&models.Order{},
	&models.Inventory{},
	&models.Product{},
	&models.Customer{},
	&models.ErpIntegration{},
}

type service struct {
	dbClient *db.Client
	metrics  *metrics.AdminMetrics
	logg     *logger.Logger
}

func NewService(dbClient *db.Client, adminMetrics *metrics.AdminMetrics, logg *logger.Logger) (Service, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{dbClient: dbClient, metrics: adminMetrics, logg: logg}, nil
}

// Clear deletes every business row in one transaction. Users are kept.
func (s *service) Clear(ctx context.Context) error {
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		for _, model := range clearOrder {
			if err := tx.WithContext(ctx).Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	s.metrics.Record("clear", err)
	if err != nil {
		return db.Classify(err, "clear data")
	}
	if s.logg != nil {
		s.logg.Info(ctx, "demo data cleared")
	}
	return nil
}

// Seed inserts the demo dataset atomically. It fails with a conflict when
// the demo rows already exist.
func (s *service) Seed(ctx context.Context) (*SeedResultDTO, error) {
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		return insertDataset(ctx, tx)
	})
	s.metrics.Record("seed", err)
	if err != nil {
		return nil, db.Classify(err, "demo data")
	}

	summary := Summary{
		Customers:    len(demoCustomers),
		Products:     len(demoProducts),
		Orders:       len(demoOrders),
		Integrations: len(demoIntegrations),
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"customers":    summary.Customers,
			"products":     summary.Products,
			"orders":       summary.Orders,
			"integrations": summary.Integrations,
		}), "demo data seeded")
	}
	return &SeedResultDTO{Message: SeededMessage, Summary: summary}, nil
}

func insertDataset(ctx context.Context, tx *gorm.DB) error {
	conn := tx.WithContext(ctx)

	customerIDs := make([]uint, 0, len(demoCustomers))
	for _, c := range demoCustomers {
		row := &models.Customer{
			CustomerCode:  c.code,
			CompanyName:   c.company,
			ContactPerson: strPtr(c.contact),
			Email:         strPtr(c.email),
			Phone:         strPtr(c.phone),
			Address:       strPtr(c.address),
			Country:       customers.DefaultCountry,
			CreditLimit:   decimal.NewNullDecimal(decimal.RequireFromString(c.creditLimit)),
			IsActive:      true,
		}
		if err := conn.Create(row).Error; err != nil {
			return err
		}
		customerIDs = append(customerIDs, row.ID)
	}

	productIDs := make([]uint, 0, len(demoProducts))
	stockRepo := inventory.NewRepository(tx)
	for i, p := range demoProducts {
		row := &models.Product{
			SKU:         p.sku,
			Name:        p.name,
			Description: strPtr(p.description),
			Category:    strPtr(p.category),
			Price:       decimal.RequireFromString(p.price),
			IsActive:    true,
		}
		if err := conn.Omit("Inventory").Create(row).Error; err != nil {
			return err
		}
		productIDs = append(productIDs, row.ID)

		stock := inventory.DefaultRow(row.ID)
		stock.LocationCode = demoStock[i].location
		stock.QuantityOnHand = demoStock[i].available
		stock.QuantityAvailable = demoStock[i].available
		stock.ReorderPoint = demoStock[i].reorderPoint
		if _, err := stockRepo.Create(ctx, stock); err != nil {
			return err
		}
	}

	orderRepo := orders.NewRepository(tx)
	for _, o := range demoOrders {
		order, items := buildOrder(o, customerIDs, productIDs)
		if err := orders.VerifyTotals(order, items); err != nil {
			return err
		}
		created, err := orderRepo.CreateOrder(ctx, order)
		if err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = created.ID
		}
		if err := orderRepo.CreateItems(ctx, items); err != nil {
			return err
		}
	}

	for _, in := range demoIntegrations {
		lastSync := in.lastSync
		row := &models.ErpIntegration{
			Name:          in.name,
			Type:          in.kind,
			Status:        in.status,
			APIEndpoint:   strPtr(in.endpoint),
			LastSyncDate:  &lastSync,
			SyncStatus:    in.syncStatus,
			Configuration: in.configuration,
		}
		if err := conn.Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}

// buildOrder derives item totals and the subtotal from the seeded lines. Demo
// orders carry no tax or shipping.
func buildOrder(o orderSeed, customerIDs, productIDs []uint) (*models.Order, []models.OrderItem) {
	subtotal := decimal.Zero
	items := make([]models.OrderItem, 0, len(o.items))
	for _, it := range o.items {
		unit := decimal.RequireFromString(it.unit)
		total := unit.Mul(decimal.NewFromInt(it.quantity))
		subtotal = subtotal.Add(total)
		items = append(items, models.OrderItem{
			ProductID:  productIDs[it.product],
			Quantity:   int(it.quantity),
			UnitPrice:  unit,
			TotalPrice: total,
		})
	}
	order := &models.Order{
		OrderNumber:    o.number,
		CustomerID:     customerIDs[o.customer],
		OrderDate:      o.date,
		Status:         o.status,
		Subtotal:       subtotal,
		TaxAmount:      decimal.Zero,
		ShippingAmount: decimal.Zero,
		TotalAmount:    subtotal,
	}
	return order, items
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
