package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/listing-search-service/internal/adapters/http"
	"github.com/jsamuelsen11/listing-search-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/listing-search-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/listing-search-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/listing-search-service/internal/app"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/config"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/health"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/validator"
	"github.com/jsamuelsen11/listing-search-service/internal/ports"
)

// registerDependencies declares the object graph. Providers are lazy; the
// graph is built when main resolves the server.
func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Depending on the providers orders their flush after everything that
	// records metrics has shut down.
	do.Provide(injector, func(i do.Injector) (*telemetry.Metrics, error) {
		return do.MustInvoke[*telemetry.Providers](i).Metrics, nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, cfg.Upstream.BaseURL, acl.HealthName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.ListingClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return acl.NewListingClient(client, acl.ListingClientConfig{
			Token:            cfg.Upstream.Token,
			PropertyResource: cfg.Upstream.PropertyResource,
			HistoryResource:  cfg.Upstream.HistoryResource,
		}, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ListingClient, error) {
		return do.MustInvoke[*acl.ListingClient](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ListingService, error) {
		client := do.MustInvoke[ports.ListingClient](i)
		return app.NewListingService(client, app.SearchLimits{
			DefaultTop: cfg.Search.DefaultTop,
			MaxTop:     cfg.Search.MaxTop,
		}, logger), nil
	})

	// Readiness follows the listing client's circuit breaker.
	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New(health.DefaultCheckTimeout)
		registry.Register(do.MustInvoke[*acl.ListingClient](i))
		return registry, nil
	})

	do.Provide(injector, func(_ do.Injector) (*validator.Validator, error) {
		return validator.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ListingHandler, error) {
		svc := do.MustInvoke[ports.ListingService](i)
		validate := do.MustInvoke[*validator.Validator](i)
		return handlers.NewListingHandler(svc, validate), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		routes := adapthttp.Handlers{
			Listings: do.MustInvoke[*handlers.ListingHandler](i),
			Health:   do.MustInvoke[*handlers.HealthHandler](i),
		}
		return adapthttp.NewRouter(routes, middleware.Inbound(middleware.InboundConfig{
			Logger:         logger,
			Metrics:        do.MustInvoke[*telemetry.Metrics](i),
			CORS:           cfg.Server.CORS,
			RequestTimeout: cfg.Server.RequestTimeout,
		})...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
