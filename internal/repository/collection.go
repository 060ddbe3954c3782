package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go-cafe-pos/pkg/kvstore"
)

// Store keys. Each holds one JSON array.
const (
	KeyProducts     = "products"
	KeyCategories   = "categories"
	KeyCartItems    = "cartItems"
	KeyUsers        = "users"
	KeyTransactions = "transactions"
	KeyDiscounts    = "discounts"
	KeyFees         = "fees"
)

var ErrSchema = errors.New("stored data does not match schema")

// SchemaError reports a key whose stored bytes are not a JSON array of the
// expected element type.
type SchemaError struct {
	Key string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("key %q: %v: %v", e.Key, ErrSchema, e.Err)
}

func (e *SchemaError) Unwrap() []error {
	return []error{ErrSchema, e.Err}
}

// collection binds a store key to an element type. Every write replaces the
// whole array.
type collection[T any] struct {
	store kvstore.Store
	key   string
	mu    sync.Mutex
}

func newCollection[T any](store kvstore.Store, key string) *collection[T] {
	return &collection[T]{store: store, key: key}
}

func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}
	if raw[0] != '[' {
		return nil, &SchemaError{Key: c.key, Err: errors.New("not a JSON array")}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &SchemaError{Key: c.key, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// all reads the collection under the lock so it never observes a half
// finished mutate from this process.
func (c *collection[T]) all(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// mutate runs load → fn → save under the collection lock. If fn returns an
// error nothing is written.
func (c *collection[T]) mutate(ctx context.Context, fn func([]T) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	items, err = fn(items)
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// seedIfEmpty writes defaults when the collection holds nothing and returns
// the resulting contents.
func (c *collection[T]) seedIfEmpty(ctx context.Context, defaults []T) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}
	if err := c.save(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, it := range items {
		if match(it) {
			return i
		}
	}
	return -1
}

func without[T any](items []T, match func(T) bool) []T {
	out := items[:0:0]
	for _, it := range items {
		if !match(it) {
			out = append(out, it)
		}
	}
	return out
}

// nextID returns max(existing)+1, or 1 for an empty list.
func nextID[T any](items []T, id func(T) int64) int64 {
	var highest int64
	for _, it := range items {
		if v := id(it); v > highest {
			highest = v
		}
	}
	return highest + 1
}
