// internal/cart/cache.go
package cart

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ListingCache is the second key of the persistence boundary: a short-lived
// cache of catalog listing responses used only by listing surfaces, never by
// the pricing or order-intent core.
type ListingCache struct {
	store *Store
	ttl   time.Duration
}

// NewListingCache shares the store's sqlite handle. TTL defaults to the
// 5-minute freshness window when non-positive.
func NewListingCache(store *Store, ttl time.Duration) *ListingCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ListingCache{store: store, ttl: ttl}
}

func listingKey(key string) string {
	return "listing:" + key
}

// Get returns the cached payload for key, or ok=false when absent or stale.
func (c *ListingCache) Get(ctx context.Context, key string) ([]byte, bool) {
	var (
		value     string
		updatedAt time.Time
	)
	err := c.store.sql.QueryRowContext(ctx,
		"SELECT value, updated_at FROM snapshots WHERE key = ?", listingKey(key)).
		Scan(&value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) || err != nil {
		return nil, false
	}
	if time.Since(updatedAt) > c.ttl {
		return nil, false
	}
	return []byte(value), true
}

// Put stores the payload with the current timestamp.
func (c *ListingCache) Put(ctx context.Context, key string, payload []byte) error {
	_, err := c.store.sql.ExecContext(ctx, `
INSERT INTO snapshots(key, value, updated_at) VALUES(?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, listingKey(key), string(payload), time.Now().UTC())
	return err
}
