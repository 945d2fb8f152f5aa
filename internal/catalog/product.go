package catalog

import "github.com/neonmart/neonmart-backend/pkg/types"

// Product is a catalog entry. Products are never partially updated: edits are
// modeled as delete plus re-add, so every stored value is a complete record.
type Product struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Price       types.Money `json:"price"`
	Category    string      `json:"category"`
	Image       string      `json:"image"`
	Description string      `json:"description"`
}
