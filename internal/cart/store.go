// internal/cart/store.go
package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/techtrove/storefront-backend/internal/models"
)

// Store is the order-intent store: the single source of truth for the
// purchasable line items of every session. It is constructed once at startup
// and passed by reference to every consumer; no consumer keeps a local copy
// of items or totals across a mutation. Each mutation rewrites the session's
// snapshot synchronously, so a crash immediately after a mutation still
// reconstructs the exact prior collection on restart.
type Store struct {
	sql *sql.DB
}

func Open(path string) (*Store, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS snapshots (
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
	`); err != nil {
		return nil, err
	}
	return &Store{sql: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sql == nil {
		return nil
	}
	return s.sql.Close()
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// ReadAll returns the session's ordered line items. A missing or corrupt
// snapshot reads as an empty collection, never an error; the corrupt row is
// overwritten by the next mutation.
func (s *Store) ReadAll(ctx context.Context, sessionID string) ([]models.LineItem, error) {
	var value string
	err := s.sql.QueryRowContext(ctx,
		"SELECT value FROM snapshots WHERE key = ?", cartKey(sessionID)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.LineItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.LineItem
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		logrus.WithFields(logrus.Fields{
			"session_id": sessionID,
		}).WithError(err).Warn("Corrupt cart snapshot, treating as empty")
		return []models.LineItem{}, nil
	}
	if items == nil {
		items = []models.LineItem{}
	}
	return items, nil
}

// Add appends a line item unconditionally. Repeated purchases of the same
// configuration yield multiple line items, each independently removable; the
// store never deduplicates and never checks orderability — that guard belongs
// to the caller.
func (s *Store) Add(ctx context.Context, sessionID string, item models.LineItem) error {
	return s.mutate(ctx, sessionID, func(items []models.LineItem) []models.LineItem {
		return append(items, item)
	})
}

// Remove drops the line item with the given id. No-op if absent.
func (s *Store) Remove(ctx context.Context, sessionID string, itemID uuid.UUID) error {
	return s.mutate(ctx, sessionID, func(items []models.LineItem) []models.LineItem {
		out := items[:0]
		for _, it := range items {
			if it.ID != itemID {
				out = append(out, it)
			}
		}
		return out
	})
}

// Clear empties the session's collection. Used before a fresh single-item
// "order now" flow so a previous cart selection cannot leak into an unrelated
// checkout.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.mutate(ctx, sessionID, func([]models.LineItem) []models.LineItem {
		return []models.LineItem{}
	})
}

func (s *Store) mutate(ctx context.Context, sessionID string, fn func([]models.LineItem) []models.LineItem) error {
	items, err := s.ReadAll(ctx, sessionID)
	if err != nil {
		return err
	}

	items = fn(items)
	value, err := json.Marshal(items)
	if err != nil {
		return err
	}

	_, err = s.sql.ExecContext(ctx, `
INSERT INTO snapshots(key, value, updated_at) VALUES(?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, cartKey(sessionID), string(value), time.Now().UTC())
	return err
}

// Total derives the cart total by summing unit price times quantity at read
// time. It is never cached, so it can never drift from the items themselves.
func Total(items []models.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
