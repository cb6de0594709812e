package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/casadulce/storefront/internal/domain/model"
	"github.com/casadulce/storefront/internal/repository"
)

// LoadState is the observable state of an asynchronous catalog query.
// Exactly one of the three phases holds: loading, success (Products set,
// possibly empty), or error (Err set). An empty result is not an error.
type LoadState struct {
	Loading  bool
	Products []model.Product
	Err      error
}

// CatalogLoader drives the asynchronous load lifecycle of catalog queries
// for a presentation layer. Each Load supersedes the previous one: results
// of stale in-flight queries are discarded by generation comparison, so only
// the most recently issued query's outcome is ever observable.
type CatalogLoader struct {
	catalog CatalogService

	mu    sync.Mutex
	gen   uint64
	state LoadState
	done  chan struct{}
}

// NewCatalogLoader creates a loader over the given catalog service.
func NewCatalogLoader(catalog CatalogService) *CatalogLoader {
	return &CatalogLoader{catalog: catalog}
}

// Load starts an asynchronous query for products matching the filter and
// returns immediately with the loader in the loading state.
func (l *CatalogLoader) Load(ctx context.Context, filter repository.ProductFilter) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.state = LoadState{Loading: true}
	done := make(chan struct{})
	l.done = done
	l.mu.Unlock()

	go func() {
		defer close(done)
		products, err := l.catalog.ListProducts(ctx, filter)

		l.mu.Lock()
		defer l.mu.Unlock()
		if l.gen != gen {
			// A newer query superseded this one; drop the stale result.
			log.Debug().Uint64("generation", gen).Msg("Discarding stale catalog load")
			return
		}
		if err != nil {
			l.state = LoadState{Err: err}
			return
		}
		l.state = LoadState{Products: products}
	}()
}

// State returns the current load state.
func (l *CatalogLoader) State() LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Wait blocks until the most recently issued query settles or the context is
// done, then returns the current state. Queries superseded while waiting are
// waited out through their successor.
func (l *CatalogLoader) Wait(ctx context.Context) LoadState {
	for {
		l.mu.Lock()
		done := l.done
		state := l.state
		l.mu.Unlock()

		if done == nil || !state.Loading {
			return state
		}
		select {
		case <-done:
		case <-ctx.Done():
			return l.State()
		}
	}
}
