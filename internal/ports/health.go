package ports

import "context"

// HealthChecker reports whether one dependency can currently serve traffic.
// The listing client implements it from its circuit breaker state.
type HealthChecker interface {
	// Name identifies the component in readiness output, e.g. "listing-api".
	Name() string

	// HealthCheck returns nil when healthy. It must honor ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them for the
// readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and keys the results by name; nil means
	// healthy.
	CheckAll(ctx context.Context) map[string]error
}
