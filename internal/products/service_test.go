package product

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/angelmondragon/opsboard-backend/internal/inventory"
	"github.com/angelmondragon/opsboard-backend/pkg/db/dbtest"
	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
	"github.com/angelmondragon/opsboard-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
	"github.com/angelmondragon/opsboard-backend/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	client, conn := dbtest.Client(t)
	svc, err := NewService(NewRepository(conn), inventory.NewRepository(conn), client)
	require.NoError(t, err)
	return svc, conn
}

func validInput(sku string) CreateProductInput {
	return CreateProductInput{
		SKU:        sku,
		Name:       "Widget " + sku,
		Category:   ptr("Hardware"),
		Price:      ptr(decimal.RequireFromString("100")),
		Cost:       ptr(decimal.RequireFromString("55.5")),
		Dimensions: &types.Dimensions{Length: 10, Width: 5, Height: 2},
	}
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := NewService(nil, nil, nil)
	require.Error(t, err)
}

func TestCreateProductAddsZeroedInventory(t *testing.T) {
	svc, conn := newTestService(t)

	created, err := svc.CreateProduct(context.Background(), validInput("SKU1"))
	require.NoError(t, err)

	assert.Equal(t, "100.00", created.Price)
	require.NotNil(t, created.Cost)
	assert.Equal(t, "55.50", *created.Cost)
	assert.Nil(t, created.Weight)
	assert.True(t, created.IsActive)

	var rows []models.Inventory
	require.NoError(t, conn.Where("product_id = ?", created.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "MAIN", rows[0].LocationCode)
	assert.Zero(t, rows[0].QuantityOnHand)
	assert.Zero(t, rows[0].QuantityReserved)
	assert.Zero(t, rows[0].QuantityAvailable)
	assert.Equal(t, 10, rows[0].ReorderPoint)

	require.NotNil(t, created.Inventory)
	assert.Equal(t, rows[0].ID, created.Inventory.ID)
}

func TestCreateProductDuplicateSKURollsBack(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, validInput("DUP"))
	require.NoError(t, err)

	_, err = svc.CreateProduct(ctx, validInput("DUP"))
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())

	var products, stock int64
	require.NoError(t, conn.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, conn.Model(&models.Inventory{}).Count(&stock).Error)
	assert.EqualValues(t, 1, products)
	assert.EqualValues(t, 1, stock)
}

func TestCreateProductHonoursInactiveFlag(t *testing.T) {
	svc, _ := newTestService(t)
	input := validInput("OFF")
	input.IsActive = ptr(false)

	created, err := svc.CreateProduct(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, created.IsActive)
}

func TestGetProductJoinsInventory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	created, err := svc.CreateProduct(ctx, validInput("GET"))
	require.NoError(t, err)

	got, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "GET", got.SKU)
	require.NotNil(t, got.Dimensions)
	assert.Equal(t, 10.0, got.Dimensions.Length)
	require.NotNil(t, got.Inventory)
	assert.Equal(t, 10, got.Inventory.ReorderPoint)
}

func TestGetProductWithoutInventoryOmitsIt(t *testing.T) {
	svc, conn := newTestService(t)
	bare := &models.Product{SKU: "BARE", Name: "Bare", Price: decimal.NewFromInt(1), IsActive: true}
	require.NoError(t, conn.Create(bare).Error)

	got, err := svc.GetProduct(context.Background(), bare.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Inventory)
	assert.Nil(t, got.Dimensions)
}

func TestGetProductUnknown(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetProduct(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestListProductsNewestFirst(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	older, err := svc.CreateProduct(ctx, validInput("OLD"))
	require.NoError(t, err)
	newer, err := svc.CreateProduct(ctx, validInput("NEW"))
	require.NoError(t, err)
	require.NoError(t, conn.Model(&models.Product{}).Where("id = ?", older.ID).
		UpdateColumn("created_at", time.Now().Add(-time.Hour)).Error)

	list, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
	for _, p := range list {
		assert.NotNil(t, p.Inventory)
	}
}

func TestUpdateProductPatchesProvidedFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	created, err := svc.CreateProduct(ctx, validInput("UPD"))
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(ctx, created.ID, UpdateProductInput{
		Price:    ptr(decimal.RequireFromString("120.25")),
		IsActive: ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "120.25", updated.Price)
	assert.False(t, updated.IsActive)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Category, updated.Category)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	assert.NotNil(t, updated.Inventory)
}

func TestUpdateProductUnknownDoesNotUpsert(t *testing.T) {
	svc, conn := newTestService(t)
	_, err := svc.UpdateProduct(context.Background(), 77, UpdateProductInput{Name: ptr("ghost")})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	var count int64
	require.NoError(t, conn.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteProductRemovesInventory(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	created, err := svc.CreateProduct(ctx, validInput("DEL"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))

	var products, stock int64
	require.NoError(t, conn.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, conn.Model(&models.Inventory{}).Count(&stock).Error)
	assert.Zero(t, products)
	assert.Zero(t, stock)

	err = svc.DeleteProduct(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestDeleteProductReferencedByOrderConflicts(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	created, err := svc.CreateProduct(ctx, validInput("REF"))
	require.NoError(t, err)

	customer := &models.Customer{CustomerCode: "C1", CompanyName: "Acme", Country: "South Africa", IsActive: true}
	require.NoError(t, conn.Create(customer).Error)
	order := &models.Order{
		OrderNumber: "ORD-1",
		CustomerID:  customer.ID,
		OrderDate:   time.Now(),
		Status:      enums.OrderStatusPending,
		Subtotal:    decimal.NewFromInt(100),
		TotalAmount: decimal.NewFromInt(100),
		Items: []models.OrderItem{{
			ProductID:  created.ID,
			Quantity:   1,
			UnitPrice:  decimal.NewFromInt(100),
			TotalPrice: decimal.NewFromInt(100),
		}},
	}
	require.NoError(t, conn.Create(order).Error)

	err = svc.DeleteProduct(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())

	_, err = svc.GetProduct(ctx, created.ID)
	require.NoError(t, err, "blocked delete must keep the product")
}
