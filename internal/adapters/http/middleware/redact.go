package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/listing-search-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders returns headers as one "headers" log group with keys in
// sorted order. Credential headers listed in logging.SensitiveHeaders are
// replaced by "[REDACTED]"; repeated values are comma-joined.
func RedactHeaders(headers http.Header) slog.Attr {
	names := slices.Sorted(func(yield func(string) bool) {
		for name := range headers {
			if !yield(name) {
				return
			}
		}
	})

	attrs := make([]any, 0, len(names))
	for _, name := range names {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.Group("headers", attrs...)
}
