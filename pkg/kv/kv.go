// Package kv defines the snapshot store contract: named collections mapped to
// whole JSON values, read and replaced as single units.
//
// The store is shared mutable state between any processes pointed at the same
// backing file or server. Concurrent read-modify-write cycles race: the second
// writer's whole-collection overwrite silently discards the first writer's
// change (last-writer-wins). This is a documented limitation carried over from
// the system this service replaces; there is no merge or locking.
package kv

import "context"

// Collection keys. The value under each key is always a complete snapshot.
const (
	CollectionProducts    = "products"
	CollectionCategories  = "categories"
	CollectionOrders      = "orders"
	CollectionTeam        = "team"
	CollectionHostSet     = "hostSet"
	CollectionCurrentUser = "currentUser"
)

// Store persists raw collection snapshots. Writes are immediately durable and
// visible to subsequent reads from the same store.
type Store interface {
	// Get returns the stored snapshot and whether one exists.
	Get(ctx context.Context, collection string) ([]byte, bool, error)
	// Set replaces the stored snapshot for the collection.
	Set(ctx context.Context, collection string, value []byte) error
	// Delete removes the collection's snapshot entirely.
	Delete(ctx context.Context, collection string) error
	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error
	// Close releases driver resources.
	Close() error
}

// Pinger exposes the health-check surface of a store.
type Pinger interface {
	Ping(ctx context.Context) error
}
