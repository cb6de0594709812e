package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/casadulce/storefront/internal/domain/model"
	"github.com/casadulce/storefront/internal/mocks"
	"github.com/casadulce/storefront/internal/repository"
)

func newTestCatalog(opts ...CatalogOption) *CatalogServiceImpl {
	return NewCatalogService(repository.NewStaticProductRepository(nil), opts...)
}

func TestCatalogListProducts(t *testing.T) {
	svc := newTestCatalog()
	defer svc.Close()

	products, err := svc.ListProducts(context.Background(), repository.ProductFilter{})

	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestCatalogGetProductByID(t *testing.T) {
	svc := newTestCatalog()
	defer svc.Close()
	ctx := context.Background()

	product, err := svc.GetProductByID(ctx, "alfajores-maicena")
	require.NoError(t, err)
	assert.Equal(t, "Alfajores de Maicena", product.Name)

	product, err = svc.GetProductByID(ctx, "nonexistent")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestCatalogGetProductsByCategory(t *testing.T) {
	svc := newTestCatalog()
	defer svc.Close()

	cakes, err := svc.GetProductsByCategory(context.Background(), model.CategoryCakes)
	require.NoError(t, err)
	assert.Len(t, cakes, 2)

	empty, err := svc.GetProductsByCategory(context.Background(), model.Category("bread"))
	require.NoError(t, err)
	assert.Empty(t, empty, "unknown category yields empty result, not error")
}

func TestCatalogFeaturedProducts(t *testing.T) {
	svc := newTestCatalog()
	defer svc.Close()

	featured, err := svc.FeaturedProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, featured, 2)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}
}

func TestCatalogListCategories(t *testing.T) {
	svc := newTestCatalog()
	defer svc.Close()

	categories, err := svc.ListCategories(context.Background())

	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]model.Category{model.CategoryCookies, model.CategoryCakes, model.CategoryCandies},
		categories,
	)
}

func TestCatalogQueryCacheServesRepeatedQueries(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("ListProducts", mock.Anything, mock.Anything).
		Return([]model.Product{{ID: "p1"}}, nil).
		Once()

	svc := NewCatalogService(repo, WithQueryCache(10, time.Minute))
	defer svc.Close()
	ctx := context.Background()

	first, err := svc.ListProducts(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	second, err := svc.ListProducts(ctx, repository.ProductFilter{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertExpectations(t)
}

func TestCatalogCacheKeyDistinguishesFilters(t *testing.T) {
	featured := true
	notFeatured := false

	assert.NotEqual(t,
		filterKey(repository.ProductFilter{Featured: &featured}),
		filterKey(repository.ProductFilter{Featured: &notFeatured}),
	)
	assert.NotEqual(t,
		filterKey(repository.ProductFilter{Category: model.CategoryCakes}),
		filterKey(repository.ProductFilter{}),
	)
	assert.Equal(t,
		filterKey(repository.ProductFilter{InStock: &featured}),
		filterKey(repository.ProductFilter{InStock: &featured}),
	)
}

func TestCatalogErrorPropagates(t *testing.T) {
	injected := errors.New("catalog unavailable")
	svc := NewCatalogService(repository.NewStaticProductRepository(nil, repository.WithFailure(injected)))
	defer svc.Close()
	ctx := context.Background()

	_, err := svc.ListProducts(ctx, repository.ProductFilter{})
	assert.ErrorIs(t, err, injected)

	_, err = svc.ListCategories(ctx)
	assert.ErrorIs(t, err, injected)
}
