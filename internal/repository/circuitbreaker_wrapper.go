package repository

import (
	"context"
	"errors"

	"github.com/casadulce/storefront/internal/circuitbreaker"
	"github.com/casadulce/storefront/internal/domain/model"
)

// ProductRepositoryWithCircuitBreaker wraps a ProductRepository with circuit
// breaker protection, so a failing catalog source trips open instead of
// failing every query slowly.
type ProductRepositoryWithCircuitBreaker struct {
	repo           ProductRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProductRepositoryWithCircuitBreaker creates a new repository wrapper
// with circuit breaker protection.
func NewProductRepositoryWithCircuitBreaker(repo ProductRepository, cb *circuitbreaker.CircuitBreaker) *ProductRepositoryWithCircuitBreaker {
	return &ProductRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// ListProducts lists products with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	var result []model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListProducts(ctx, filter)
		return cbErr
	})
	return result, err
}

// GetProductByID looks up a product with circuit breaker protection.
// A not-found outcome is a valid answer from a healthy source and does not
// count toward the failure threshold.
func (r *ProductRepositoryWithCircuitBreaker) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	var result *model.Product
	var notFound bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetProductByID(ctx, id)
		if errors.Is(cbErr, model.ErrProductNotFound) {
			notFound = true
			return nil
		}
		return cbErr
	})
	if err != nil {
		return nil, err
	}
	if notFound {
		return nil, model.ErrProductNotFound
	}
	return result, nil
}

// ListCategories lists categories with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) ListCategories(ctx context.Context) ([]model.Category, error) {
	var result []model.Category
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListCategories(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProductRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
