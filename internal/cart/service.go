package cart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neonmart/neonmart-backend/internal/catalog"
	"github.com/neonmart/neonmart-backend/internal/orders"
	pkgerrors "github.com/neonmart/neonmart-backend/pkg/errors"
	"github.com/neonmart/neonmart-backend/pkg/ids"
	"github.com/neonmart/neonmart-backend/pkg/types"
)

// orderDateLayout mirrors a browser locale timestamp, e.g.
// "6/15/2025, 3:04:05 PM".
const orderDateLayout = "1/2/2006, 3:04:05 PM"

// View is the cart as shown to the shopper.
type View struct {
	Items []catalog.Product `json:"items"`
	Count int               `json:"count"`
	Total types.Money       `json:"total"`
}

// Service mediates between the in-process cart, the catalog and the order
// log. Checkout is the only path that creates orders.
type Service interface {
	// Add looks the product up in the catalog and appends a snapshot of it.
	Add(ctx context.Context, productID int64) error
	// Remove drops the entry at the given cart position.
	Remove(ctx context.Context, index int) error
	View(ctx context.Context) View
	// Checkout turns the cart into an order. The cart is emptied only after
	// the order has been persisted.
	Checkout(ctx context.Context, customer orders.Customer) (*orders.Order, error)
}

type productLookup interface {
	GetProduct(ctx context.Context, id int64) (*catalog.Product, error)
}

type orderAppender interface {
	Append(ctx context.Context, order orders.Order) error
}

// ServiceParams carries the cart service dependencies.
type ServiceParams struct {
	Catalog productLookup
	Orders  orderAppender
	IDs     *ids.Generator
}

type service struct {
	cart    *Accumulator
	catalog productLookup
	orders  orderAppender
	ids     *ids.Generator
	now     func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog lookup is required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("order appender is required")
	}
	if params.IDs == nil {
		return nil, fmt.Errorf("id generator is required")
	}
	return &service{
		cart:    NewAccumulator(),
		catalog: params.Catalog,
		orders:  params.Orders,
		ids:     params.IDs,
		now:     time.Now,
	}, nil
}

func (s *service) Add(ctx context.Context, productID int64) error {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	s.cart.Add(*product)
	return nil
}

func (s *service) Remove(_ context.Context, index int) error {
	return s.cart.Remove(index)
}

func (s *service) View(_ context.Context) View {
	items := s.cart.Items()
	return View{Items: items, Count: len(items), Total: s.cart.Total()}
}

func (s *service) Checkout(ctx context.Context, customer orders.Customer) (*orders.Order, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	var placed *orders.Order
	err := s.cart.Drain(func(items []catalog.Product, total types.Money) error {
		if len(items) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		now := s.now().UTC()
		order := orders.Order{
			ID:        s.ids.Next(),
			Customer:  customer,
			Items:     items,
			Total:     total,
			Date:      now.Format(orderDateLayout),
			CreatedAt: now,
		}
		if err := s.orders.Append(ctx, order); err != nil {
			return err
		}
		placed = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

func validateCustomer(customer orders.Customer) error {
	missing := []string{}
	if strings.TrimSpace(customer.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(customer.Contact) == "" {
		missing = append(missing, "contact")
	}
	if strings.TrimSpace(customer.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(customer.NationalID) == "" {
		missing = append(missing, "nationalId")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("missing customer fields: %s", strings.Join(missing, ", ")))
	}
	return nil
}
