package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/casadulce/storefront/internal/domain/model"
	"github.com/casadulce/storefront/internal/metrics"
	"github.com/casadulce/storefront/internal/repository"
)

// CatalogService answers read-only queries over the product catalog.
type CatalogService interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
	GetProductsByCategory(ctx context.Context, category model.Category) ([]model.Product, error)
	FeaturedProducts(ctx context.Context) ([]model.Product, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	// Close releases service resources (the query cache, when enabled).
	Close()
}

// CatalogServiceImpl implements CatalogService over a ProductRepository.
type CatalogServiceImpl struct {
	repo  repository.ProductRepository
	cache *queryCache
}

// CatalogOption configures a CatalogServiceImpl.
type CatalogOption func(*CatalogServiceImpl)

// WithQueryCache enables caching of ListProducts results with the given
// capacity and TTL.
func WithQueryCache(capacity int, ttl time.Duration) CatalogOption {
	return func(s *CatalogServiceImpl) {
		s.cache = newQueryCache(capacity, ttl)
	}
}

// NewCatalogService creates a catalog service over the given repository.
func NewCatalogService(repo repository.ProductRepository, opts ...CatalogOption) *CatalogServiceImpl {
	s := &CatalogServiceImpl{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// filterKey builds a stable cache key for a product filter.
func filterKey(f repository.ProductFilter) string {
	featured, inStock := "any", "any"
	if f.Featured != nil {
		featured = fmt.Sprintf("%t", *f.Featured)
	}
	if f.InStock != nil {
		inStock = fmt.Sprintf("%t", *f.InStock)
	}
	return fmt.Sprintf("category=%s;featured=%s;in_stock=%s", f.Category, featured, inStock)
}

// ListProducts returns products matching the filter, serving repeated
// queries from the cache when one is configured.
func (s *CatalogServiceImpl) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	key := filterKey(filter)
	if s.cache != nil {
		if products, ok := s.cache.Get(key); ok {
			metrics.RecordCatalogQuery("list_products", "cached")
			return products, nil
		}
	}

	products, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		metrics.RecordCatalogQuery("list_products", "error")
		log.Error().Err(err).Str("filter", key).Msg("Catalog query failed")
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(key, products)
	}
	metrics.RecordCatalogQuery("list_products", "success")
	return products, nil
}

// GetProductByID returns the product with the given id, or
// model.ErrProductNotFound for unknown ids.
func (s *CatalogServiceImpl) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		metrics.RecordCatalogQuery("get_product", "error")
		return nil, err
	}
	metrics.RecordCatalogQuery("get_product", "success")
	return product, nil
}

// GetProductsByCategory returns the products of one category, possibly empty.
func (s *CatalogServiceImpl) GetProductsByCategory(ctx context.Context, category model.Category) ([]model.Product, error) {
	return s.ListProducts(ctx, repository.ProductFilter{Category: category})
}

// FeaturedProducts returns the products flagged as featured.
func (s *CatalogServiceImpl) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	featured := true
	return s.ListProducts(ctx, repository.ProductFilter{Featured: &featured})
}

// ListCategories returns the distinct categories of the full catalog.
func (s *CatalogServiceImpl) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		metrics.RecordCatalogQuery("list_categories", "error")
		return nil, err
	}
	metrics.RecordCatalogQuery("list_categories", "success")
	return categories, nil
}

// Close stops the query cache, when one is configured.
func (s *CatalogServiceImpl) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}
