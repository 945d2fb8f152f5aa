package catalog

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/neonmart/neonmart-backend/pkg/errors"
	"github.com/neonmart/neonmart-backend/pkg/ids"
	"github.com/neonmart/neonmart-backend/pkg/types"
)

// Service exposes catalog queries and mutators. Every mutator follows the
// same protocol: read the full snapshot, validate, compute the new snapshot,
// write it back whole.
type Service interface {
	ListProducts(ctx context.Context, category string) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	AddProduct(ctx context.Context, input AddProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, name string) error
}

type repository interface {
	Products(ctx context.Context) ([]Product, error)
	SaveProducts(ctx context.Context, products []Product) error
	Categories(ctx context.Context) ([]string, error)
	SaveCategories(ctx context.Context, categories []string) error
}

type service struct {
	repo repository
	ids  *ids.Generator
}

// NewService builds a catalog service backed by the provided snapshot repository.
func NewService(repo repository, gen *ids.Generator) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	if gen == nil {
		return nil, fmt.Errorf("id generator is required")
	}
	return &service{repo: repo, ids: gen}, nil
}

// AddProductInput carries raw form input; the price arrives as text and is
// parsed here, as the form layer does no business validation.
type AddProductInput struct {
	Name        string
	Price       string
	Category    string
	Image       string
	Description string
}

func (s *service) ListProducts(ctx context.Context, category string) ([]Product, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products")
	}
	if category == "" || category == "all" {
		return products, nil
	}
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products")
	}
	for i := range products {
		if products[i].ID == id {
			found := products[i]
			return &found, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (s *service) AddProduct(ctx context.Context, input AddProductInput) (*Product, error) {
	price, err := types.ParseMoney(input.Price)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price")
	}
	if price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}

	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products")
	}

	product := Product{
		ID:          s.ids.Next(),
		Name:        input.Name,
		Price:       price,
		Category:    input.Category,
		Image:       input.Image,
		Description: input.Description,
	}

	products = append(products, product)
	if err := s.repo.SaveProducts(ctx, products); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save products")
	}
	return &product, nil
}

// DeleteProduct removes the product by id. Deleting an id that no longer
// exists is an idempotent success, not an error.
func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products")
	}

	remaining := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}

	if err := s.repo.SaveProducts(ctx, remaining); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save products")
	}
	return nil
}

func (s *service) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load categories")
	}
	return categories, nil
}

// AddCategory appends a new category name, preserving insertion order.
// Duplicate names (exact string match) are refused.
func (s *service) AddCategory(ctx context.Context, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load categories")
	}
	for _, existing := range categories {
		if existing == trimmed {
			return pkgerrors.New(pkgerrors.CodeConflict, "category already exists")
		}
	}

	categories = append(categories, trimmed)
	if err := s.repo.SaveCategories(ctx, categories); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save categories")
	}
	return nil
}
