package orders

import (
	"context"

	"github.com/neonmart/neonmart-backend/pkg/kv"
)

// Repository reads and replaces the orders snapshot.
type Repository struct {
	store kv.Store
}

func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// Orders returns the current order snapshot; an empty sequence is the default.
func (r *Repository) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	found, err := kv.Read(ctx, r.store, kv.CollectionOrders, &orders)
	if err != nil {
		return nil, err
	}
	if !found || orders == nil {
		return []Order{}, nil
	}
	return orders, nil
}

// SaveOrders replaces the whole order snapshot.
func (r *Repository) SaveOrders(ctx context.Context, orders []Order) error {
	return kv.Write(ctx, r.store, kv.CollectionOrders, orders)
}
