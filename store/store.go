// Package store keeps whole collections as JSON text under a key, the way
// the console kept them in browser storage. Drivers only need Get and Set.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

const (
	UsersKey      = "users"
	AttendanceKey = "attendance"
	StationsKey   = "stations"
)

var ErrUnknownDriver = errors.New("unknown store driver")

// Backend is a text key-value store.
type Backend interface {
	// Get returns ok=false when nothing is stored under key.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Collection is a typed view of one key.
type Collection[T any] struct {
	backend Backend
	key     string
}

func NewCollection[T any](backend Backend, key string) *Collection[T] {
	return &Collection[T]{backend: backend, key: key}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// Load returns the stored items. A missing key, an unavailable backend or an
// undecodable payload all give an empty slice; the failure is only logged.
func (c *Collection[T]) Load(ctx context.Context) []T {
	items := make([]T, 0)

	raw, ok, err := c.backend.Get(ctx, c.key)
	if err != nil {
		log.Printf("store: load %q: %v", c.key, err)
		return items
	}
	if !ok || raw == "" {
		return items
	}

	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("store: decode %q: %v", c.key, err)
		return make([]T, 0)
	}
	return items
}

// Replace overwrites the whole collection.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	if items == nil {
		items = make([]T, 0)
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", c.key, err)
	}
	if err := c.backend.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("save collection %q: %w", c.key, err)
	}
	return nil
}
