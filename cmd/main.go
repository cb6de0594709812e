// Package main runs a demonstration pass over the storefront core: it loads
// the catalog, fills an order form, and submits a sample order. Useful as a
// manual smoke run; the core itself is consumed as a library by the
// presentation layer.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/casadulce/storefront/config"
	"github.com/casadulce/storefront/internal/circuitbreaker"
	"github.com/casadulce/storefront/internal/domain/model"
	"github.com/casadulce/storefront/internal/logger"
	"github.com/casadulce/storefront/internal/repository"
	"github.com/casadulce/storefront/internal/service"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	repo := repository.NewProductRepositoryWithCircuitBreaker(
		repository.NewStaticProductRepository(nil, repository.WithLatency(cfg.Catalog.FetchDelay)),
		circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: cfg.Catalog.CircuitBreakerFailureThreshold,
			SuccessThreshold: cfg.Catalog.CircuitBreakerSuccessThreshold,
			Timeout:          cfg.Catalog.CircuitBreakerTimeout,
			Name:             "catalog",
		}),
	)
	catalog := service.NewCatalogService(repo,
		service.WithQueryCache(cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL),
	)
	defer catalog.Close()

	ctx := context.Background()

	loader := service.NewCatalogLoader(catalog)
	loader.Load(ctx, repository.ProductFilter{})
	state := loader.Wait(ctx)
	if state.Err != nil {
		log.Fatal().Err(state.Err).Msg("Catalog load failed")
	}
	log.Info().Int("products", len(state.Products)).Msg("Catalog loaded")

	for _, p := range state.Products {
		min, max := p.PriceRange()
		log.Info().
			Str("product", p.ID).
			Str("category", string(p.Category)).
			Float64("price_min", min).
			Float64("price_max", max).
			Bool("orderable", p.Orderable()).
			Msg("Product available")
	}

	form := service.NewOrderForm(catalog,
		service.WithSubmitDelay(cfg.Orders.SubmitDelay),
		service.WithLocale(cfg.Orders.Locale),
	)

	name, email, phone := "Josefina", "josefina@example.com", "+54 11 1234-5678"
	form.UpdateCustomer(model.CustomerUpdate{Name: &name, Email: &email, Phone: &phone})
	form.SetPaymentMethod(model.PaymentCash)

	if err := form.AddItem(ctx, model.ProductSelection{
		ProductID: "cookies-chocolate",
		FlavorID:  "chocolate-clasico",
		BoxSizeID: "medium",
		Quantity:  2,
	}); err != nil {
		log.Fatal().Err(err).Msg("Could not add item")
	}

	if !form.IsValid() {
		log.Fatal().Interface("errors", form.Errors()).Msg("Form unexpectedly invalid")
	}

	result := form.SubmitOrder(ctx)
	if !result.Success {
		log.Fatal().Str("message", result.Message).Msg("Submission failed")
	}
	log.Info().
		Str("order_id", result.OrderID).
		Float64("total", result.Order.Total).
		Str("currency", string(result.Order.Currency)).
		Msg("Sample order submitted")
}
