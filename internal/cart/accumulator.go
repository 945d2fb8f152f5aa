// Package cart holds the in-process shopping cart. Unlike the catalog and
// order snapshots the cart is never persisted: it lives for the lifetime of
// the process and starts empty on every boot.
package cart

import (
	"sync"

	"github.com/neonmart/neonmart-backend/internal/catalog"
	pkgerrors "github.com/neonmart/neonmart-backend/pkg/errors"
	"github.com/neonmart/neonmart-backend/pkg/types"
)

// Accumulator is a positional multiset of product snapshots. Adding the same
// product twice yields two independent entries, and removal is by position,
// not by product id.
type Accumulator struct {
	mu    sync.Mutex
	items []catalog.Product
}

func NewAccumulator() *Accumulator {
	return &Accumulator{items: []catalog.Product{}}
}

// Add appends a copy of the product to the cart.
func (a *Accumulator) Add(product catalog.Product) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items = append(a.items, product)
}

// Remove drops the entry at the given position. Entries after it shift down.
func (a *Accumulator) Remove(index int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if index < 0 || index >= len(a.items) {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart index out of range")
	}
	a.items = append(a.items[:index], a.items[index+1:]...)
	return nil
}

// Items returns a copy of the current entries in insertion order.
func (a *Accumulator) Items() []catalog.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]catalog.Product, len(a.items))
	copy(out, a.items)
	return out
}

// Count reports the number of entries, counting duplicates separately.
func (a *Accumulator) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.items)
}

// Total sums the price of every entry.
func (a *Accumulator) Total() types.Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return totalOf(a.items)
}

// Drain hands the current entries to fn under the lock and empties the cart
// only when fn succeeds. A failing fn leaves the cart untouched, so the
// shopper can retry the same checkout.
func (a *Accumulator) Drain(fn func(items []catalog.Product, total types.Money) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	items := make([]catalog.Product, len(a.items))
	copy(items, a.items)
	if err := fn(items, totalOf(items)); err != nil {
		return err
	}
	a.items = a.items[:0]
	return nil
}

func totalOf(items []catalog.Product) types.Money {
	total := types.MustMoney("0")
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return total
}
