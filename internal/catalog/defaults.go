package catalog

import "github.com/neonmart/neonmart-backend/pkg/types"

// DefaultProducts returns the seeded catalog shown before any admin edits.
// Returned slices are fresh copies; callers may mutate them freely.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Neon Cyber Headphones",
			Price:       types.MustMoney("199.99"),
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&q=80",
			Description: "Immersive sound with active noise cancellation and RBG lighting integration.",
		},
		{
			ID:          2,
			Name:        "Ergonomic Mesh Chair",
			Price:       types.MustMoney("349.00"),
			Category:    "Furniture",
			Image:       "https://images.unsplash.com/photo-1505843490538-5133c6c7d0e1?w=800&q=80",
			Description: "Designed for all-day comfort with breathable mesh and lumbar support.",
		},
	}
}

// DefaultCategories returns the seeded category list.
func DefaultCategories() []string {
	return []string{"Electronics", "Furniture", "Accessories"}
}
