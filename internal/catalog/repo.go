package catalog

import (
	"context"

	"github.com/neonmart/neonmart-backend/pkg/kv"
)

// Repository reads and replaces the products and categories snapshots.
type Repository struct {
	store kv.Store
}

func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// Products returns the current product snapshot, falling back to the seeded
// defaults when the snapshot is absent or unreadable.
func (r *Repository) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	found, err := kv.Read(ctx, r.store, kv.CollectionProducts, &products)
	if err != nil {
		return nil, err
	}
	if !found || products == nil {
		return DefaultProducts(), nil
	}
	return products, nil
}

// SaveProducts replaces the whole product snapshot.
func (r *Repository) SaveProducts(ctx context.Context, products []Product) error {
	return kv.Write(ctx, r.store, kv.CollectionProducts, products)
}

// Categories returns the current category snapshot or the seeded defaults.
func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	found, err := kv.Read(ctx, r.store, kv.CollectionCategories, &categories)
	if err != nil {
		return nil, err
	}
	if !found || categories == nil {
		return DefaultCategories(), nil
	}
	return categories, nil
}

// SaveCategories replaces the whole category snapshot.
func (r *Repository) SaveCategories(ctx context.Context, categories []string) error {
	return kv.Write(ctx, r.store, kv.CollectionCategories, categories)
}
