package orderControllers

import (
	"testing"

	"github.com/hammadi-dev/cartly-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuildOrderRejectsWholeCheckoutOnShortStock(t *testing.T) {
	// cart: product A (stock 5) qty 3, product B (stock 0) qty 1
	lines := []settlementLine{
		{
			Item:    models.CartItem{ProductID: 1, Quantity: 3},
			Product: models.Product{ID: 1, Name: "Product A", Price: price("10.00"), StockQuantity: 5},
		},
		{
			Item:    models.CartItem{ProductID: 2, Quantity: 1},
			Product: models.Product{ID: 2, Name: "Product B", Price: price("4.50"), StockQuantity: 0},
		},
	}

	items, total, err := buildOrder(lines)

	require.Error(t, err)
	var stockErr StockExceededError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Product B", stockErr.ProductName)
	assert.Nil(t, items, "no partial order may be built")
	assert.True(t, total.IsZero())
}

func TestBuildOrderTotalIsExact(t *testing.T) {
	lines := []settlementLine{
		{
			Item:    models.CartItem{ProductID: 1, Quantity: 3},
			Product: models.Product{ID: 1, Name: "Widget", Price: price("19.99"), StockQuantity: 10},
		},
		{
			Item:    models.CartItem{ProductID: 2, Quantity: 2},
			Product: models.Product{ID: 2, Name: "Gadget", Price: price("0.10"), StockQuantity: 4},
		},
	}

	items, total, err := buildOrder(lines)

	require.NoError(t, err)
	require.Len(t, items, 2)
	// 3×19.99 + 2×0.10 == 60.17, exactly
	assert.True(t, total.Equal(price("60.17")), "got total %s", total)

	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	assert.True(t, total.Equal(sum))
}

func TestBuildOrderSnapshotsNameAndPrice(t *testing.T) {
	lines := []settlementLine{
		{
			Item:    models.CartItem{ProductID: 8, Quantity: 1},
			Product: models.Product{ID: 8, Name: "Teapot", Price: price("25.00"), StockQuantity: 2},
		},
	}

	items, _, err := buildOrder(lines)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, uint(8), items[0].ProductID)
	assert.Equal(t, "Teapot", items[0].ProductName)
	assert.True(t, items[0].UnitPrice.Equal(price("25.00")))
	assert.Equal(t, 1, items[0].Quantity)
}

func TestBuildOrderQuantityEqualToStockPasses(t *testing.T) {
	lines := []settlementLine{
		{
			Item:    models.CartItem{ProductID: 1, Quantity: 5},
			Product: models.Product{ID: 1, Name: "Last ones", Price: price("2.00"), StockQuantity: 5},
		},
	}

	items, total, err := buildOrder(lines)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, total.Equal(price("10.00")))
}

func TestCancelableOnlyFromPending(t *testing.T) {
	cases := []struct {
		status models.OrderStatus
		want   bool
	}{
		{models.OrderStatusPending, true},
		{models.OrderStatusConfirmed, false},
		{models.OrderStatusShipped, false},
		{models.OrderStatusDelivered, false},
		{models.OrderStatusCanceled, false},
	}
	for _, tc := range cases {
		order := models.Order{Status: tc.status}
		assert.Equal(t, tc.want, order.Cancelable(), "status %s", tc.status)
	}
}

func TestMapOrderStatus(t *testing.T) {
	status, err := mapOrderStatus("Shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, status)

	_, err = mapOrderStatus("returned")
	assert.Error(t, err)

	_, err = mapOrderStatus("")
	assert.Error(t, err)
}
