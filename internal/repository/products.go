package repository

import (
	"context"
	"time"

	"github.com/casadulce/storefront/internal/domain/model"
)

// StaticProductRepository serves a fixed, read-only product catalog from
// memory. It stands in for a backend catalog service: an optional per-call
// latency simulates the network round trip, and an injectable error lets
// tests exercise the failure path.
type StaticProductRepository struct {
	products []model.Product
	latency  time.Duration
	failWith error
}

// Option configures a StaticProductRepository.
type Option func(*StaticProductRepository)

// WithLatency makes every call wait the given duration before answering,
// honoring context cancellation during the wait.
func WithLatency(d time.Duration) Option {
	return func(r *StaticProductRepository) {
		r.latency = d
	}
}

// WithFailure makes every call fail with the given error.
func WithFailure(err error) Option {
	return func(r *StaticProductRepository) {
		r.failWith = err
	}
}

// NewStaticProductRepository creates a repository over the given catalog.
// A nil catalog uses the built-in seed products.
func NewStaticProductRepository(products []model.Product, opts ...Option) *StaticProductRepository {
	if products == nil {
		products = SeedProducts()
	}
	r := &StaticProductRepository{products: products}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ListProducts returns the products matching every set filter predicate.
func (r *StaticProductRepository) ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	if err := r.simulate(ctx); err != nil {
		return nil, err
	}

	result := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Matches(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

// GetProductByID returns the product with the given id, or
// model.ErrProductNotFound for unknown ids.
func (r *StaticProductRepository) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	if err := r.simulate(ctx); err != nil {
		return nil, err
	}

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, model.ErrProductNotFound
}

// ListCategories returns the distinct categories of the full catalog.
func (r *StaticProductRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	if err := r.simulate(ctx); err != nil {
		return nil, err
	}

	seen := make(map[model.Category]bool, 3)
	categories := make([]model.Category, 0, 3)
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

// simulate applies the configured latency and error injection.
func (r *StaticProductRepository) simulate(ctx context.Context) error {
	if r.latency > 0 {
		timer := time.NewTimer(r.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return r.failWith
}
