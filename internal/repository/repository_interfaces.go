// Package repository provides data access for the product catalog.
package repository

import (
	"context"

	"github.com/casadulce/storefront/internal/domain/model"
)

// ProductFilter narrows a product query. Zero-value fields impose no
// constraint; set fields combine with AND semantics.
type ProductFilter struct {
	Category model.Category
	Featured *bool
	InStock  *bool
}

// Matches reports whether the product satisfies every set predicate.
func (f ProductFilter) Matches(p model.Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	return true
}

// ProductRepository defines read-only access to the product catalog.
// Implementations must return model.ErrProductNotFound for unknown ids
// rather than panicking.
type ProductRepository interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}
