package shop

import (
	domain "github.com/mkhandekar/restock-tracker/pkg/types"
)

// defaultImageCDN prefixes relative image names from the storefront API.
const defaultImageCDN = "https://shop.example.com/s/catalog/"

// ToProduct converts a storefront snapshot record into a domain product.
// The stored out-of-stock flag is derived from the observed quantity so the
// two are always written together.
func ToProduct(rec *ProductData) domain.Product {
	p := domain.Product{
		ProductID:         rec.ID,
		Name:              rec.Name,
		Alias:             rec.Alias,
		Brand:             rec.Brand,
		Price:             rec.Price,
		InventoryQuantity: rec.InventoryQuantity,
		WasOutOfStock:     rec.InventoryQuantity == 0,
	}

	if len(rec.Images) > 0 && rec.Images[0].Image != "" {
		p.Image = defaultImageCDN + rec.Images[0].Image
	}

	return p
}
