package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
)

type lineRequest struct {
	ProductID uint             `json:"productId" validate:"required"`
	Quantity  int              `json:"quantity" validate:"min=1"`
	UnitPrice *decimal.Decimal `json:"unitPrice" validate:"required,gte=0"`
}

type sampleRequest struct {
	Name  string           `json:"name" validate:"required,max=10"`
	Price *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Lines []lineRequest    `json:"lines" validate:"required,min=1,dive"`
}

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func fieldNames(err error) []string {
	var out []string
	for _, fe := range pkgerrors.FieldErrors(err) {
		out = append(out, fe.Field)
	}
	return out
}

func TestDecodeJSONBodyAcceptsStringAndNumberDecimals(t *testing.T) {
	var req sampleRequest
	err := DecodeJSONBody(newRequest(`{"name":"widget","price":"12.50","lines":[{"productId":1,"quantity":2,"unitPrice":3.25}]}`), &req)
	require.NoError(t, err)
	assert.True(t, req.Price.Equal(decimal.RequireFromString("12.50")))
	assert.True(t, req.Lines[0].UnitPrice.Equal(decimal.RequireFromString("3.25")))
}

func TestDecodeJSONBodyReportsEveryField(t *testing.T) {
	var req sampleRequest
	err := DecodeJSONBody(newRequest(`{"name":"","price":"-1","lines":[{"productId":0,"quantity":0,"unitPrice":"-2"}]}`), &req)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.ElementsMatch(t,
		[]string{"name", "price", "lines[0].productId", "lines[0].quantity", "lines[0].unitPrice"},
		fieldNames(err),
	)
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	var req sampleRequest
	err := DecodeJSONBody(newRequest(`{"name":"x","lines":[],"colour":"red"}`), &req)
	require.Error(t, err)
	assert.Equal(t, []string{"colour"}, fieldNames(err))
}

func TestDecodeJSONBodyTypeMismatch(t *testing.T) {
	var req sampleRequest
	err := DecodeJSONBody(newRequest(`{"name":42}`), &req)
	require.Error(t, err)
	assert.Equal(t, []string{"name"}, fieldNames(err))
}

func TestDecodeJSONBodyEmptyAndMalformed(t *testing.T) {
	var req sampleRequest
	err := DecodeJSONBody(newRequest(``), &req)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	err = DecodeJSONBody(newRequest(`{"name":`), &req)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestParseIDParam(t *testing.T) {
	withParam := func(value string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", value)
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := ParseIDParam(withParam("42"), "id")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, bad := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := ParseIDParam(withParam(bad), "id")
		require.Error(t, err, bad)
		assert.Equal(t, []string{"id"}, fieldNames(err))
	}
}

func TestParseQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?limit=7", nil)
	v, err := ParseQueryInt(r, "limit", 5, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	v, err = ParseQueryInt(r, "limit", 5, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	r = httptest.NewRequest(http.MethodGet, "/?limit=500", nil)
	_, err = ParseQueryInt(r, "limit", 5, 1, 50)
	require.Error(t, err)
}
