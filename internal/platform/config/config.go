// Package config loads the service configuration from built-in defaults,
// configs/base.yaml, a profile file and APP_* environment variables, then
// checks it against the `validate` tags below.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Upstream  UpstreamConfig  `koanf:"upstream"`
	Search    SearchConfig    `koanf:"search"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"gte=0"`
	// RequestTimeout bounds the handler, upstream call included. It must
	// expire before WriteTimeout so the 504 body can still be written.
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"gt=0"`
	CORS           CORSConfig    `koanf:"cors"`
}

// CORSConfig holds cross-origin settings for the browser front end.
// An empty AllowedOrigins list disables the CORS middleware.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
	MaxAge         int      `koanf:"max_age" validate:"gte=0"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text pretty"`
}

// ClientConfig holds outbound HTTP client settings for the listing service.
// A zero Timeout leaves the transport default in place. Requests are never
// retried, so there is no retry policy to configure.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout" validate:"gte=0"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures" validate:"min=1"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"gte=0"`
}

// RateLimitConfig caps outbound request rate. Zero RequestsPerSecond disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gte=0"`
	BurstSize         int     `koanf:"burst_size"`
}

// UpstreamConfig identifies the OData listing service and its credential.
type UpstreamConfig struct {
	BaseURL          string `koanf:"base_url" validate:"required,http_url"`
	Token            string `koanf:"token" validate:"required"`
	PropertyResource string `koanf:"property_resource" validate:"required"`
	HistoryResource  string `koanf:"history_resource" validate:"required"`
}

// SearchConfig bounds inbound search parameters.
type SearchConfig struct {
	DefaultTop int `koanf:"default_top" validate:"min=1"`
	MaxTop     int `koanf:"max_top" validate:"gte=0"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
