// internal/services/cart_service_test.go
package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techtrove/storefront-backend/internal/cart"
	"github.com/techtrove/storefront-backend/internal/models"
)

func newCartFixture(t *testing.T, products ...*models.Product) *CartService {
	t.Helper()
	store, err := cart.Open(filepath.Join(t.TempDir(), "cart.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewCartService(store, NewQuoteService(newFakeSource(products...)))
}

func TestCartServiceAddItem(t *testing.T) {
	product := quoteFixture()
	svc := newCartFixture(t, product)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "sess-1", product.ID, &QuoteRequest{
		Selections: map[string]string{"capacity": "256gb", "color": "black"},
		Quantity:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, product.ID, item.ProductID)
	assert.Equal(t, "aurora-x5", item.SKU)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(1250)))
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "256 GB", item.Options["Capacity"])
	assert.False(t, item.PreOrder)

	view, err := svc.View(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)
	assert.True(t, view.Total.Equal(decimal.NewFromInt(2500)))
}

func TestCartServiceRepeatedAddsStack(t *testing.T) {
	product := quoteFixture()
	svc := newCartFixture(t, product)
	ctx := context.Background()
	req := &QuoteRequest{
		Selections: map[string]string{"capacity": "128gb", "color": "black"},
		Quantity:   1,
	}

	first, err := svc.AddItem(ctx, "sess-1", product.ID, req)
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, "sess-1", product.ID, req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	view, err := svc.View(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, view.Count)
	assert.True(t, view.Total.Equal(decimal.NewFromInt(2000)))
}

func TestCartServiceRejectsOutOfStockConfiguration(t *testing.T) {
	product := quoteFixture()
	svc := newCartFixture(t, product)

	_, err := svc.AddItem(context.Background(), "sess-1", product.ID, &QuoteRequest{
		Selections: map[string]string{"capacity": "128gb", "color": "silver"},
		Quantity:   1,
	})
	assert.ErrorIs(t, err, ErrConfigurationOutOfStock)

	view, err := svc.View(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Count)
}

func TestCartServiceOrderNowReplacesCart(t *testing.T) {
	product := quoteFixture()
	svc := newCartFixture(t, product)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", product.ID, &QuoteRequest{
		Selections: map[string]string{"capacity": "128gb", "color": "black"},
		Quantity:   3,
	})
	require.NoError(t, err)

	item, err := svc.OrderNow(ctx, "sess-1", product.ID, &QuoteRequest{
		Selections: map[string]string{"capacity": "256gb", "color": "black"},
		Quantity:   1,
	})
	require.NoError(t, err)

	view, err := svc.View(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, 1, view.Count)
	assert.Equal(t, item.ID, view.Items[0].ID)
	assert.True(t, view.Total.Equal(decimal.NewFromInt(1250)))
}

func TestCartServiceRemoveAndClear(t *testing.T) {
	product := quoteFixture()
	svc := newCartFixture(t, product)
	ctx := context.Background()
	req := &QuoteRequest{
		Selections: map[string]string{"capacity": "128gb", "color": "black"},
		Quantity:   1,
	}

	first, err := svc.AddItem(ctx, "sess-1", product.ID, req)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sess-1", product.ID, req)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, "sess-1", first.ID))
	view, err := svc.View(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)

	// Absent id: no-op
	require.NoError(t, svc.RemoveItem(ctx, "sess-1", uuid.New()))

	require.NoError(t, svc.Clear(ctx, "sess-1"))
	view, err = svc.View(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Count)
	assert.True(t, view.Total.Equal(decimal.Zero))
}

func TestCartServicePreOrderFlag(t *testing.T) {
	product := quoteFixture()
	product.PreOrder = &models.PreOrderPolicy{Active: true, MaxQuantity: 2}
	svc := newCartFixture(t, product)

	item, err := svc.AddItem(context.Background(), "sess-1", product.ID, &QuoteRequest{
		Selections: map[string]string{"capacity": "128gb", "color": "black"},
		Quantity:   5,
	})
	require.NoError(t, err)
	assert.True(t, item.PreOrder)
	assert.Equal(t, 2, item.Quantity)
}
