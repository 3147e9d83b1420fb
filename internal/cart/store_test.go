// internal/cart/store_test.go
package cart

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techtrove/storefront-backend/internal/models"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cart.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func lineItem(name string, unit int64, qty int) models.LineItem {
	return models.LineItem{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		SKU:       "test-sku",
		Name:      name,
		UnitPrice: decimal.NewFromInt(unit),
		Quantity:  qty,
		Options:   map[string]string{"Capacity": "256 GB"},
		AddedAt:   time.Now().UTC(),
	}
}

func TestStoreEmptySessionReadsEmpty(t *testing.T) {
	store, _ := openTestStore(t)

	items, err := store.ReadAll(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStoreAddAppendsWithoutDedup(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	first := lineItem("Aurora X5", 1250, 1)
	second := lineItem("Aurora X5", 1250, 1)
	require.NoError(t, store.Add(ctx, "sess-1", first))
	require.NoError(t, store.Add(ctx, "sess-1", second))

	items, err := store.ReadAll(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "sess-a", lineItem("A", 100, 1)))

	items, err := store.ReadAll(ctx, "sess-b")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStoreRemove(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	keep := lineItem("Keep", 100, 1)
	drop := lineItem("Drop", 200, 1)
	require.NoError(t, store.Add(ctx, "sess-1", keep))
	require.NoError(t, store.Add(ctx, "sess-1", drop))

	require.NoError(t, store.Remove(ctx, "sess-1", drop.ID))

	items, err := store.ReadAll(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].ID)

	// Removing an absent id is a no-op, not an error.
	require.NoError(t, store.Remove(ctx, "sess-1", uuid.New()))
	items, err = store.ReadAll(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestStoreClear(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "sess-1", lineItem("A", 100, 1)))
	require.NoError(t, store.Clear(ctx, "sess-1"))

	items, err := store.ReadAll(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	item := lineItem("Persisted", 999, 2)
	require.NoError(t, store.Add(ctx, "sess-1", item))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	items, err := reopened.ReadAll(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(999)))
	assert.Equal(t, 2, items[0].Quantity)
}

func TestStoreCorruptSnapshotReadsEmpty(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	_, err := store.sql.ExecContext(ctx, `
INSERT INTO snapshots(key, value, updated_at) VALUES(?, ?, ?)
	`, cartKey("sess-1"), "{not json", time.Now().UTC())
	require.NoError(t, err)

	items, err := store.ReadAll(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	// The next mutation overwrites the corrupt row.
	require.NoError(t, store.Add(ctx, "sess-1", lineItem("Fresh", 10, 1)))
	items, err = store.ReadAll(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestTotalDerivedFromItems(t *testing.T) {
	items := []models.LineItem{
		lineItem("A", 1250, 2),
		lineItem("B", 100, 1),
	}
	assert.True(t, Total(items).Equal(decimal.NewFromInt(2600)))
	assert.True(t, Total(nil).Equal(decimal.Zero))
}
