package auth

import (
	"testing"

	"github.com/hammadi-dev/cartly-api/models"
	"github.com/hammadi-dev/cartly-api/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productLookup(products map[uint]models.Product) func(uint) (models.Product, bool) {
	return func(id uint) (models.Product, bool) {
		p, ok := products[id]
		return p, ok
	}
}

func TestPlanMergeClampsToStock(t *testing.T) {
	// guest cart {productId=7, qty=2}, product 7 has stock=1 at login
	products := map[uint]models.Product{
		7: {ID: 7, Name: "Lamp", StockQuantity: 1},
	}
	guest := []session.Line{{ProductID: 7, Quantity: 2}}

	changes := planMerge(nil, guest, productLookup(products))

	require.Len(t, changes, 1)
	assert.Equal(t, uint(7), changes[0].ProductID)
	assert.Equal(t, 1, changes[0].Quantity)
	assert.False(t, changes[0].Existing)
}

func TestPlanMergeAddsQuantitiesThenClamps(t *testing.T) {
	products := map[uint]models.Product{
		3: {ID: 3, Name: "Mug", StockQuantity: 5},
	}
	existing := []models.CartItem{{ID: 10, CartID: 1, ProductID: 3, Quantity: 4}}
	guest := []session.Line{{ProductID: 3, Quantity: 4}}

	changes := planMerge(existing, guest, productLookup(products))

	require.Len(t, changes, 1)
	assert.Equal(t, 5, changes[0].Quantity) // 4+4 clamped to stock
	assert.True(t, changes[0].Existing)
}

func TestPlanMergeSkipsMissingProducts(t *testing.T) {
	products := map[uint]models.Product{
		2: {ID: 2, Name: "Pen", StockQuantity: 10},
	}
	guest := []session.Line{
		{ProductID: 99, Quantity: 1}, // deleted since the guest added it
		{ProductID: 2, Quantity: 3},
	}

	changes := planMerge(nil, guest, productLookup(products))

	require.Len(t, changes, 1)
	assert.Equal(t, uint(2), changes[0].ProductID)
	assert.Equal(t, 3, changes[0].Quantity)
}

func TestPlanMergeEmptyGuestCartIsNoop(t *testing.T) {
	changes := planMerge(nil, nil, productLookup(nil))
	assert.Empty(t, changes)
}

func TestPlanMergeDropsSubMinimumLines(t *testing.T) {
	products := map[uint]models.Product{
		4: {ID: 4, Name: "Sold out", StockQuantity: 0},
	}
	guest := []session.Line{
		{ProductID: 4, Quantity: 2}, // clamps to 0, must not be stored
		{ProductID: 4, Quantity: 0}, // invalid quantity
	}

	changes := planMerge(nil, guest, productLookup(products))
	assert.Empty(t, changes)
}

func TestPlanMergeFoldsDuplicateGuestLines(t *testing.T) {
	products := map[uint]models.Product{
		5: {ID: 5, Name: "Plate", StockQuantity: 10},
	}
	guest := []session.Line{
		{ProductID: 5, Quantity: 2},
		{ProductID: 5, Quantity: 3},
	}

	changes := planMerge(nil, guest, productLookup(products))

	require.Len(t, changes, 1)
	assert.Equal(t, 5, changes[0].Quantity)
}

func TestPlanMergeNeverExceedsStock(t *testing.T) {
	products := map[uint]models.Product{
		1: {ID: 1, StockQuantity: 3},
		2: {ID: 2, StockQuantity: 7},
		3: {ID: 3, StockQuantity: 1},
	}
	existing := []models.CartItem{
		{ID: 1, CartID: 1, ProductID: 1, Quantity: 2},
		{ID: 2, CartID: 1, ProductID: 2, Quantity: 6},
	}
	guest := []session.Line{
		{ProductID: 1, Quantity: 9},
		{ProductID: 2, Quantity: 9},
		{ProductID: 3, Quantity: 9},
	}

	for _, ch := range planMerge(existing, guest, productLookup(products)) {
		assert.LessOrEqual(t, ch.Quantity, products[ch.ProductID].StockQuantity,
			"post-merge quantity must not exceed stock for product %d", ch.ProductID)
		assert.GreaterOrEqual(t, ch.Quantity, 1)
	}
}
