package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultCORSMaxAge = 300

	defaultSearchTop    = 50
	defaultSearchMaxTop = 1000
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                 "0.0.0.0",
		"server.port":                 defaultServerPort,
		"server.read_timeout":         "5s",
		"server.write_timeout":        "30s",
		"server.idle_timeout":         "120s",
		"server.request_timeout":      "25s",
		"server.cors.allowed_origins": []string{},
		"server.cors.max_age":         defaultCORSMaxAge,

		"log.level":  "info",
		"log.format": "json",

		"client.timeout":                         "0s",
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"upstream.base_url":          "https://query.ampre.ca/odata",
		"upstream.token":             "",
		"upstream.property_resource": "Property",
		"upstream.history_resource":  "HistoryTransactional",

		"search.default_top": defaultSearchTop,
		"search.max_top":     defaultSearchMaxTop,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "listing-search-service",
	}
}
