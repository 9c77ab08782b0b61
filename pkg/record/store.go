package record

import (
	"context"
	"errors"
)

// ErrItemNotFound is returned when a keyed lookup matches nothing.
var ErrItemNotFound = errors.New("item not found")

// Key identifies one item by its partition attribute.
type Key struct {
	Field string
	Value string
}

// FieldFilter restricts a scan to items whose attribute equals the value.
type FieldFilter struct {
	Field string
	Value string
}

// Store abstracts the key-value record service. All operations are atomic
// per single item; there are no multi-item transactions.
type Store interface {
	// PutRecord inserts or replaces the item whole.
	PutRecord(ctx context.Context, table string, item Item) error

	// UpdateRecord applies cmd to the item at key and returns the
	// post-update values of the touched attributes.
	UpdateRecord(ctx context.Context, table string, key Key, cmd UpdateCommand) (Item, error)

	// GetRecord fetches the item at key, or ErrItemNotFound.
	GetRecord(ctx context.Context, table string, key Key) (Item, error)

	// Scan returns all items, optionally narrowed by filter.
	Scan(ctx context.Context, table string, filter *FieldFilter) ([]Item, error)

	// FindByField returns the first item whose attribute equals value, or
	// ErrItemNotFound. Used for unique-field lookups such as login by email.
	FindByField(ctx context.Context, table, field, value string) (Item, error)
}
