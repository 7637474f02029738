package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productsvc "github.com/angelmondragon/opsboard-backend/internal/products"
	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
)

type stubProductService struct {
	created   *productsvc.CreateProductInput
	updated   *productsvc.UpdateProductInput
	deletedID uint
	err       error
}

func (s *stubProductService) ListProducts(context.Context) ([]productsvc.ProductDTO, error) {
	return []productsvc.ProductDTO{{ID: 1, SKU: "SKU1", Price: "10.00"}}, s.err
}

func (s *stubProductService) GetProduct(_ context.Context, id uint) (*productsvc.ProductDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &productsvc.ProductDTO{ID: id, SKU: "SKU1", Price: "10.00"}, nil
}

func (s *stubProductService) CreateProduct(_ context.Context, input productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
	s.created = &input
	if s.err != nil {
		return nil, s.err
	}
	return &productsvc.ProductDTO{ID: 7, SKU: input.SKU, Name: input.Name, Price: input.Price.StringFixed(2)}, nil
}

func (s *stubProductService) UpdateProduct(_ context.Context, id uint, input productsvc.UpdateProductInput) (*productsvc.ProductDTO, error) {
	s.updated = &input
	if s.err != nil {
		return nil, s.err
	}
	return &productsvc.ProductDTO{ID: id}, nil
}

func (s *stubProductService) DeleteProduct(_ context.Context, id uint) error {
	s.deletedID = id
	return s.err
}

func TestCreateProductReturnsCreated(t *testing.T) {
	stub := &stubProductService{}
	req := newRequest(http.MethodPost, "/api/products", `{"sku":"SKU1","name":"Widget","price":"19.5"}`, nil)

	rec := serve(CreateProduct(stub, testLogger()), req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.created)
	assert.Equal(t, "SKU1", stub.created.SKU)

	var body productsvc.ProductDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint(7), body.ID)
	assert.Equal(t, "19.50", body.Price)
}

func TestCreateProductReportsEveryInvalidField(t *testing.T) {
	stub := &stubProductService{}
	req := newRequest(http.MethodPost, "/api/products", `{"name":"","price":-1}`, nil)

	rec := serve(CreateProduct(stub, testLogger()), req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.created)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, string(pkgerrors.CodeValidation), body.Code)
	assert.ElementsMatch(t, []string{"sku", "name", "price"}, errorFields(body))
}

func TestCreateProductRejectsUnknownFields(t *testing.T) {
	req := newRequest(http.MethodPost, "/api/products", `{"sku":"A","name":"B","price":"1","colour":"red"}`, nil)

	rec := serve(CreateProduct(&stubProductService{}, testLogger()), req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"colour"}, errorFields(decodeErrorBody(t, rec)))
}

func TestUpdateProductLeavesOmittedFieldsNil(t *testing.T) {
	stub := &stubProductService{}
	req := newRequest(http.MethodPut, "/api/products/3", `{"name":"Renamed"}`, map[string]string{"id": "3"})

	rec := serve(UpdateProduct(stub, testLogger()), req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.updated)
	require.NotNil(t, stub.updated.Name)
	assert.Equal(t, "Renamed", *stub.updated.Name)
	assert.Nil(t, stub.updated.Price)
	assert.Nil(t, stub.updated.SKU)
}

func TestGetProductRejectsBadIDs(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-4", ""} {
		req := newRequest(http.MethodGet, "/api/products/"+raw, "", map[string]string{"id": raw})
		rec := serve(GetProduct(&stubProductService{}, testLogger()), req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", raw)
	}
}

func TestGetProductNotFound(t *testing.T) {
	stub := &stubProductService{err: pkgerrors.NotFound("product")}
	req := newRequest(http.MethodGet, "/api/products/99", "", map[string]string{"id": "99"})

	rec := serve(GetProduct(stub, testLogger()), req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "product not found", decodeErrorBody(t, rec).Message)
}

func TestDeleteProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stub := &stubProductService{}
		req := newRequest(http.MethodDelete, "/api/products/5", "", map[string]string{"id": "5"})

		rec := serve(DeleteProduct(stub, testLogger()), req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
		assert.Equal(t, uint(5), stub.deletedID)
	})

	t.Run("referenced by orders", func(t *testing.T) {
		stub := &stubProductService{err: pkgerrors.New(pkgerrors.CodeConflict, "product is referenced by existing orders")}
		req := newRequest(http.MethodDelete, "/api/products/5", "", map[string]string{"id": "5"})

		rec := serve(DeleteProduct(stub, testLogger()), req)

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "product is referenced by existing orders", decodeErrorBody(t, rec).Message)
	})
}

func TestProductHandlersWithoutService(t *testing.T) {
	req := newRequest(http.MethodGet, "/api/products", "", nil)
	rec := serve(ListProducts(nil, testLogger()), req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
