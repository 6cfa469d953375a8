package shop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkhandekar/restock-tracker/internal/shop"
)

func TestToProduct(t *testing.T) {
	t.Parallel()

	rec := &shop.ProductData{
		ID:                "p1",
		Name:              "Masala Chai",
		Alias:             "masala-chai",
		Brand:             "Chai Co",
		Price:             12.5,
		InventoryQuantity: 6,
		Images:            []shop.ProductImage{{Image: "masala-chai.jpg"}},
	}

	p := shop.ToProduct(rec)

	assert.Equal(t, "p1", p.ProductID)
	assert.Equal(t, "Masala Chai", p.Name)
	assert.Equal(t, "masala-chai", p.Alias)
	assert.Equal(t, "Chai Co", p.Brand)
	assert.Equal(t, 12.5, p.Price)
	assert.Equal(t, 6, p.InventoryQuantity)
	assert.False(t, p.WasOutOfStock)
	assert.Contains(t, p.Image, "masala-chai.jpg")
}

func TestToProduct_OutOfStock(t *testing.T) {
	t.Parallel()

	p := shop.ToProduct(&shop.ProductData{
		ID:                "p2",
		Name:              "Green Tea",
		InventoryQuantity: 0,
	})

	assert.True(t, p.WasOutOfStock)
	assert.Empty(t, p.Image)
}
