package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jsamuelsen11/listing-search-service/internal/adapters/http/dto"
)

// Timeout returns middleware that bounds each request with a deadline. The
// deadline travels in the request context, so an upstream listing query still
// in flight is canceled with it and the handler reports the failure itself.
// If the handler returns past the deadline without writing anything, a 504
// problem response is written here.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			rw := recordStatus(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			if !rw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				dto.WriteErrorResponse(rw, r,
					fmt.Errorf("request exceeded %s: %w", timeout, context.DeadlineExceeded))
			}
		})
	}
}
