//go:build unit

package cart_test

import (
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/cart"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCart_Lines(t *testing.T) {
	productID := uuid.New()
	variantID := uuid.New()
	c := cart.Reconstruct(uuid.New(), nil, nil, []cart.Item{
		{ID: uuid.New(), ProductID: productID, Quantity: 2, UnitPriceCents: 5000, WeightGrams: 400},
		{ID: uuid.New(), ProductID: productID, VariantID: &variantID, Quantity: 1, UnitPriceCents: 7500, WeightGrams: 250},
	})

	assert.False(t, c.IsEmpty())

	lines := c.PricingLines()
	assert.Equal(t, int64(17500), pricing.Subtotal(lines))
	assert.Equal(t, 1050, pricing.TotalWeight(lines))

	res := c.ReservationLines()
	assert.Equal(t, productID, res[0].SKU.ProductID)
	assert.Nil(t, res[0].SKU.VariantID)
	assert.Equal(t, &variantID, res[1].SKU.VariantID)
	assert.Equal(t, 1, res[1].Quantity)
}

func TestCart_IsEmpty(t *testing.T) {
	var missing *cart.Cart
	assert.True(t, missing.IsEmpty())
	assert.True(t, cart.Reconstruct(uuid.New(), nil, nil, nil).IsEmpty())
}
