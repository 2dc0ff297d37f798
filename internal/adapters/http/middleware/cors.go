package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/jsamuelsen11/listing-search-service/internal/platform/config"
)

// CORS returns middleware that answers browser preflight requests and sets
// Access-Control headers for the configured origins. The search endpoints
// are read-only, so only GET and OPTIONS are allowed. When no origins are
// configured the returned middleware is a pass-through.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	if len(cfg.AllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", headerRequestID, headerCorrelationID},
		ExposedHeaders: []string{"X-Result-Count", headerRequestID, headerCorrelationID},
		MaxAge:         cfg.MaxAge,
	})
}
