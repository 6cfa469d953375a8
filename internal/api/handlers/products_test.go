package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhandekar/restock-tracker/internal/api/handlers"
	domain "github.com/mkhandekar/restock-tracker/pkg/types"
)

// mockProductsProvider is a test double for ProductsProvider.
type mockProductsProvider struct {
	products []domain.Product
	product  *domain.Product
	err      error
}

func (m *mockProductsProvider) ListProducts(_ context.Context) ([]domain.Product, error) {
	return m.products, m.err
}

func (m *mockProductsProvider) GetProduct(_ context.Context, _ string) (*domain.Product, error) {
	return m.product, m.err
}

func sampleProduct(productID, name string) domain.Product {
	now := time.Now().Truncate(time.Second)
	return domain.Product{
		ID:                "row-id-1",
		ProductID:         productID,
		Name:              name,
		Alias:             "sample-alias",
		Price:             24.99,
		InventoryQuantity: 3,
		LastChecked:       now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestListProducts_Success(t *testing.T) {
	t.Parallel()

	products := []domain.Product{
		sampleProduct("prod-1", "Masala Chai"),
		sampleProduct("prod-2", "Darjeeling First Flush"),
	}
	h := handlers.NewProductsHandler(&mockProductsProvider{products: products})

	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, h)

	resp := api.Get("/api/v1/products")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Masala Chai")
	assert.Contains(t, resp.Body.String(), "Darjeeling First Flush")
}

func TestListProducts_Empty(t *testing.T) {
	t.Parallel()

	h := handlers.NewProductsHandler(&mockProductsProvider{products: nil})

	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, h)

	resp := api.Get("/api/v1/products")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "[]")
}

func TestListProducts_Error(t *testing.T) {
	t.Parallel()

	h := handlers.NewProductsHandler(&mockProductsProvider{err: errors.New("db error")})

	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, h)

	resp := api.Get("/api/v1/products")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "listing products failed")
}

func TestGetProduct_Success(t *testing.T) {
	t.Parallel()

	p := sampleProduct("prod-1", "Masala Chai")
	h := handlers.NewProductsHandler(&mockProductsProvider{product: &p})

	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, h)

	resp := api.Get("/api/v1/products/prod-1")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Masala Chai")
}

func TestGetProduct_NotFound(t *testing.T) {
	t.Parallel()

	h := handlers.NewProductsHandler(&mockProductsProvider{err: pgx.ErrNoRows})

	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, h)

	resp := api.Get("/api/v1/products/missing")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "product not found")
}

func TestGetProduct_Error(t *testing.T) {
	t.Parallel()

	h := handlers.NewProductsHandler(&mockProductsProvider{err: errors.New("db error")})

	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, h)

	resp := api.Get("/api/v1/products/prod-1")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "fetching product failed")
}
