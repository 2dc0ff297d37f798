package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/listing-search-service/internal/platform/httpclient"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	// maxIncomingIDLen caps caller-supplied IDs before they reach logs and
	// upstream headers.
	maxIncomingIDLen = 128
)

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// RequestIDFromContext returns the request ID stored by [RequestID], or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// CorrelationIDFromContext returns the correlation ID stored by
// [CorrelationID], or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// RequestID returns middleware that assigns every request an X-Request-ID.
// A usable incoming header is kept; anything else is replaced by a fresh
// UUID v4. The ID is echoed in the response and forwarded on the upstream
// listing call.
func RequestID() func(http.Handler) http.Handler {
	return propagateID(headerRequestID, requestIDKey, httpclient.WithRequestID,
		func(*http.Request) string { return uuid.NewString() })
}

// CorrelationID returns middleware that assigns every request an
// X-Correlation-ID. Without a usable incoming header the request ID is
// reused, so it must run after [RequestID].
func CorrelationID() func(http.Handler) http.Handler {
	return propagateID(headerCorrelationID, correlationIDKey, httpclient.WithCorrelationID,
		func(r *http.Request) string { return RequestIDFromContext(r.Context()) })
}

func propagateID(
	header string,
	key idKey,
	outbound func(context.Context, string) context.Context,
	fallback func(*http.Request) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !usableID(id) {
				id = fallback(r)
			}

			ctx := outbound(context.WithValue(r.Context(), key, id), id)
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// usableID reports whether a caller-supplied ID can be reused as is: non-empty,
// at most maxIncomingIDLen bytes, and printable ASCII only so it cannot forge
// log lines.
func usableID(id string) bool {
	if id == "" || len(id) > maxIncomingIDLen {
		return false
	}
	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
