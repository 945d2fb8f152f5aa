package orders

import (
	"context"
	"fmt"

	pkgerrors "github.com/neonmart/neonmart-backend/pkg/errors"
)

// Service exposes order queries and mutators. Completing an order deletes it:
// no completed state is retained anywhere.
type Service interface {
	List(ctx context.Context) ([]Order, error)
	// Append persists a new order at the end of the snapshot. Only checkout
	// calls this.
	Append(ctx context.Context, order Order) error
	// Complete removes the order by id; an absent id is an idempotent success.
	Complete(ctx context.Context, id int64) error
}

type repository interface {
	Orders(ctx context.Context) ([]Order, error)
	SaveOrders(ctx context.Context, orders []Order) error
}

type service struct {
	repo repository
}

// NewService builds an order service backed by the provided snapshot repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]Order, error) {
	orders, err := s.repo.Orders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load orders")
	}
	return orders, nil
}

func (s *service) Append(ctx context.Context, order Order) error {
	orders, err := s.repo.Orders(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load orders")
	}
	orders = append(orders, order)
	if err := s.repo.SaveOrders(ctx, orders); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save orders")
	}
	return nil
}

func (s *service) Complete(ctx context.Context, id int64) error {
	orders, err := s.repo.Orders(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load orders")
	}

	remaining := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.ID != id {
			remaining = append(remaining, o)
		}
	}

	if err := s.repo.SaveOrders(ctx, remaining); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save orders")
	}
	return nil
}
