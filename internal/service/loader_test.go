package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casadulce/storefront/internal/domain/model"
	"github.com/casadulce/storefront/internal/repository"
)

// gatedCatalog is a CatalogService whose ListProducts blocks until the gate
// registered for the query's category is closed, so tests can order
// overlapping queries deterministically.
type gatedCatalog struct {
	CatalogService
	mu      sync.Mutex
	gates   map[model.Category]chan struct{}
	results map[model.Category][]model.Product
}

func newGatedCatalog() *gatedCatalog {
	return &gatedCatalog{
		gates:   make(map[model.Category]chan struct{}),
		results: make(map[model.Category][]model.Product),
	}
}

func (g *gatedCatalog) expect(category model.Category, result []model.Product) chan struct{} {
	gate := make(chan struct{})
	g.mu.Lock()
	g.gates[category] = gate
	g.results[category] = result
	g.mu.Unlock()
	return gate
}

func (g *gatedCatalog) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	g.mu.Lock()
	gate := g.gates[filter.Category]
	result := g.results[filter.Category]
	g.mu.Unlock()

	select {
	case <-gate:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if result == nil {
		return nil, errors.New("load failed")
	}
	return result, nil
}

func (g *gatedCatalog) Close() {}

func TestLoaderSuccessLifecycle(t *testing.T) {
	catalog := newTestCatalog()
	defer catalog.Close()
	loader := NewCatalogLoader(catalog)

	loader.Load(context.Background(), repository.ProductFilter{})
	state := loader.Wait(context.Background())

	assert.False(t, state.Loading)
	assert.NoError(t, state.Err)
	assert.Len(t, state.Products, 4)
}

func TestLoaderReportsLoading(t *testing.T) {
	catalog := newGatedCatalog()
	gate := catalog.expect(model.CategoryCookies, products("p1"))
	loader := NewCatalogLoader(catalog)

	loader.Load(context.Background(), repository.ProductFilter{Category: model.CategoryCookies})

	assert.True(t, loader.State().Loading)

	close(gate)
	state := loader.Wait(context.Background())
	assert.False(t, state.Loading)
	assert.Len(t, state.Products, 1)
}

func TestLoaderErrorStateDistinctFromEmpty(t *testing.T) {
	t.Run("error state", func(t *testing.T) {
		injected := errors.New("catalog unavailable")
		catalog := NewCatalogService(
			repository.NewStaticProductRepository(nil, repository.WithFailure(injected)),
		)
		defer catalog.Close()
		loader := NewCatalogLoader(catalog)

		loader.Load(context.Background(), repository.ProductFilter{})
		state := loader.Wait(context.Background())

		assert.ErrorIs(t, state.Err, injected)
		assert.Nil(t, state.Products)
	})

	t.Run("empty result is success", func(t *testing.T) {
		catalog := newTestCatalog()
		defer catalog.Close()
		loader := NewCatalogLoader(catalog)

		falseVal := false
		loader.Load(context.Background(), repository.ProductFilter{
			Category: model.CategoryCookies,
			InStock:  &falseVal,
		})
		state := loader.Wait(context.Background())

		assert.NoError(t, state.Err)
		assert.NotNil(t, state.Products)
		assert.Empty(t, state.Products)
	})
}

func TestLoaderStaleResultDiscarded(t *testing.T) {
	catalog := newGatedCatalog()
	gate1 := catalog.expect(model.CategoryCookies, products("stale"))
	gate2 := catalog.expect(model.CategoryCakes, products("fresh"))
	loader := NewCatalogLoader(catalog)
	ctx := context.Background()

	// First query starts and blocks; the second supersedes it and completes.
	loader.Load(ctx, repository.ProductFilter{Category: model.CategoryCookies})
	loader.Load(ctx, repository.ProductFilter{Category: model.CategoryCakes})

	close(gate2)
	state := loader.Wait(ctx)
	require.Len(t, state.Products, 1)
	assert.Equal(t, "fresh", state.Products[0].ID)

	// The first query resolves late; its result must not overwrite the newer one.
	close(gate1)
	time.Sleep(20 * time.Millisecond)

	state = loader.State()
	require.Len(t, state.Products, 1)
	assert.Equal(t, "fresh", state.Products[0].ID)
}
