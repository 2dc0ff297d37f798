package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structRules = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		return name
	})
	return v
}

// Validate checks c against its field tags and the rules that span fields.
// Every problem is reported, keyed by its dotted config path.
func (c *Config) Validate() error {
	return errors.Join(
		fieldErrors(structRules.Struct(c)),
		c.Server.validate(),
		c.Client.RateLimit.validate(),
		c.Search.validate(),
		c.Telemetry.validate(),
	)
}

func fieldErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace is "Config.server.port"; drop the root type name.
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		if rule == "required" {
			errs = append(errs, fmt.Errorf("%s must be set", path))
			continue
		}
		errs = append(errs, fmt.Errorf("%s must satisfy %s, got %v", path, rule, fe.Value()))
	}
	return errors.Join(errs...)
}

func (s *ServerConfig) validate() error {
	if s.RequestTimeout > 0 && s.WriteTimeout > 0 && s.RequestTimeout >= s.WriteTimeout {
		return fmt.Errorf("server.request_timeout (%s) must be below server.write_timeout (%s)", s.RequestTimeout, s.WriteTimeout)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.RequestsPerSecond > 0 && r.BurstSize < 1 {
		return fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting is on, got %d", r.BurstSize)
	}
	return nil
}

func (s *SearchConfig) validate() error {
	if s.MaxTop > 0 && s.DefaultTop > s.MaxTop {
		return fmt.Errorf("search.default_top (%d) must not exceed search.max_top (%d)", s.DefaultTop, s.MaxTop)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error
	switch t.Exporter {
	case "stdout":
	case "otlp":
		if t.Endpoint == "" {
			errs = append(errs, errors.New("telemetry.endpoint must be set for the otlp exporter"))
		}
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be stdout or otlp, got %q", t.Exporter))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must be set when telemetry is enabled"))
	}
	return errors.Join(errs...)
}
