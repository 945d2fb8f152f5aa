package catalog

import (
	"context"
	"testing"

	"github.com/neonmart/neonmart-backend/pkg/config"
	"github.com/neonmart/neonmart-backend/pkg/kv"
	"github.com/neonmart/neonmart-backend/pkg/kv/kvsqlite"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) kv.Store {
	t.Helper()
	store, err := kvsqlite.Open(context.Background(), config.StoreConfig{
		Driver:     config.StoreDriverSQLite,
		SQLitePath: "file::memory:?cache=shared",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRepositoryDefaultsOnEmptyStore(t *testing.T) {
	repo := NewRepository(newSQLiteStore(t))
	ctx := context.Background()

	products, err := repo.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, int64(1), products[0].ID)

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Electronics", "Furniture", "Accessories"}, categories)
}

func TestRepositoryRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	repo := NewRepository(store)
	ctx := context.Background()

	written := DefaultProducts()[:1]
	require.NoError(t, repo.SaveProducts(ctx, written))

	read, err := repo.Products(ctx)
	require.NoError(t, err)
	require.Equal(t, written, read)
}

func TestRepositoryMalformedSnapshotFallsBack(t *testing.T) {
	store := newSQLiteStore(t)
	repo := NewRepository(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, kv.CollectionProducts, []byte(`{"broken":`)))

	products, err := repo.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2, "corrupt snapshot must read as the seeded defaults")

	require.NoError(t, store.Set(ctx, kv.CollectionCategories, []byte(`null`)))
	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, DefaultCategories(), categories)
}
