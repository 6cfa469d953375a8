package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"

	domain "github.com/mkhandekar/restock-tracker/pkg/types"
)

// ProductsProvider defines the store methods required by the products handler.
type ProductsProvider interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
}

// ProductsHandler handles tracked-product read requests.
type ProductsHandler struct {
	store ProductsProvider
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(s ProductsProvider) *ProductsHandler {
	return &ProductsHandler{store: s}
}

// ListProductsOutput is the response body for listing tracked products.
type ListProductsOutput struct {
	Body []domain.Product
}

// GetProductInput is the request path for a single product.
type GetProductInput struct {
	ProductID string `path:"product_id" doc:"Storefront product identifier"`
}

// GetProductOutput is the response body for a single product.
type GetProductOutput struct {
	Body domain.Product
}

// ListProducts returns all currently tracked products.
func (h *ProductsHandler) ListProducts(
	ctx context.Context,
	_ *struct{},
) (*ListProductsOutput, error) {
	products, err := h.store.ListProducts(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing products failed: " + err.Error())
	}

	if products == nil {
		products = []domain.Product{}
	}

	return &ListProductsOutput{Body: products}, nil
}

// GetProduct returns one tracked product by its storefront ID.
func (h *ProductsHandler) GetProduct(
	ctx context.Context,
	input *GetProductInput,
) (*GetProductOutput, error) {
	p, err := h.store.GetProduct(ctx, input.ProductID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, huma.Error404NotFound("product not found: " + input.ProductID)
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching product failed: " + err.Error())
	}

	return &GetProductOutput{Body: *p}, nil
}

// RegisterProductRoutes registers product endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List tracked products",
		Description: "Returns every product known from storefront snapshots, with its last observed stock level.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListProducts)

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{product_id}",
		Summary:     "Get a tracked product",
		Description: "Returns a single tracked product by its storefront identifier.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetProduct)
}
