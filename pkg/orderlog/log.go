// Package orderlog keeps the durable, append-only record of placed orders,
// most recent first, serialized as a single JSON blob in a key-value store.
package orderlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"stitchkart.in/storefront/api/pkg/models"
)

// DefaultKey is the store key holding the serialized order history.
const DefaultKey = "orders"

// Store is the durable key-value collaborator. Get reports absence through
// the bool rather than an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Log reads and appends orders under a single key. The full sequence is
// rewritten on every append (read-modify-write, no compare-and-swap), which
// is only safe because each key has exactly one writer: the owning session.
type Log struct {
	store Store
	key   string
}

func New(store Store, key string) *Log {
	if key == "" {
		key = DefaultKey
	}
	return &Log{store: store, key: key}
}

// Load returns the persisted orders, most recent first. An unset key or an
// unparseable payload both come back as an empty list: a fresh install and a
// corrupted blob look the same to the caller.
func (l *Log) Load(ctx context.Context) ([]models.Order, error) {
	raw, ok, err := l.store.Get(ctx, l.key)
	if err != nil {
		return nil, fmt.Errorf("load order log %q: %w", l.key, err)
	}
	if !ok || raw == "" {
		return []models.Order{}, nil
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		log.Printf("Warning: order log %q is unparseable, treating as empty: %v", l.key, err)
		return []models.Order{}, nil
	}
	return orders, nil
}

// Append prepends the order and writes the whole sequence back. A failed
// write is logged and returned; the order is not silently dropped.
func (l *Log) Append(ctx context.Context, order models.Order) error {
	orders, err := l.Load(ctx)
	if err != nil {
		return err
	}

	orders = append([]models.Order{order}, orders...)

	payload, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode order log %q: %w", l.key, err)
	}

	if err := l.store.Set(ctx, l.key, string(payload)); err != nil {
		log.Printf("Error: failed to persist order %s: %v", order.ID, err)
		return fmt.Errorf("persist order log %q: %w", l.key, err)
	}
	return nil
}
