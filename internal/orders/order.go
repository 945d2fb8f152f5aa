package orders

import (
	"time"

	"github.com/neonmart/neonmart-backend/internal/catalog"
	"github.com/neonmart/neonmart-backend/pkg/types"
)

// Customer carries the checkout form fields. Presence is required, nothing
// more is validated.
type Customer struct {
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Address    string `json:"address"`
	NationalID string `json:"nationalId"`
}

// Order is a completed checkout. Items are product snapshots copied by value
// at checkout time; later catalog edits never reach an existing order.
type Order struct {
	ID        int64             `json:"id"`
	Customer  Customer          `json:"customer"`
	Items     []catalog.Product `json:"items"`
	Total     types.Money       `json:"total"`
	Date      string            `json:"date"`
	CreatedAt time.Time         `json:"createdAt"`
}
