// Package shop provides a storefront inventory API client abstracted behind
// interfaces for testability.
package shop

import (
	"context"
	"errors"
)

// ErrSourceUnavailable indicates the storefront snapshot could not be
// fetched or parsed. A reconciliation pass aborts when it sees this error.
var ErrSourceUnavailable = errors.New("storefront source unavailable")

// ProductData is a single product record from the storefront API snapshot.
type ProductData struct {
	ID                string         `json:"_id"`
	Name              string         `json:"name"`
	Alias             string         `json:"alias"`
	Brand             string         `json:"brand,omitempty"`
	Price             float64        `json:"price"`
	InventoryQuantity int            `json:"inventory_quantity"`
	Images            []ProductImage `json:"images,omitempty"`
}

// ProductImage holds a storefront image reference.
type ProductImage struct {
	Image string `json:"image"`
}

// ShopClient defines the interface for fetching the storefront snapshot.
type ShopClient interface {
	FetchProducts(ctx context.Context) ([]ProductData, error)
}
