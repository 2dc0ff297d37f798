package acl

import (
	"context"
	"fmt"
)

// HealthName identifies the upstream listing API in the health registry and
// matches the service name given to the underlying httpclient.Client.
const HealthName = "listing-api"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *ListingClient) Name() string {
	return HealthName
}

// HealthCheck reports the upstream's availability based on the circuit
// breaker state. No network call is made, so a probe never spends upstream
// quota.
//
// State mapping:
//   - "closed"    -- upstream is operating normally; returns nil.
//   - "half-open" -- the breaker is probing recovery; returns a
//     descriptive error indicating degraded state.
//   - "open"      -- searches are failing fast; returns a descriptive error
//     indicating failure.
func (c *ListingClient) HealthCheck(_ context.Context) error {
	state := c.req.CircuitBreakerState()
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", HealthName)
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", HealthName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", HealthName, state)
	}
}
