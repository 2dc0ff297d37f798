package httpclient

import (
	"context"
	"net/http"
)

type outboundID int

const (
	outboundRequestID outboundID = iota
	outboundCorrelationID
)

var outboundHeaders = [...]struct {
	key    outboundID
	header string
}{
	{outboundRequestID, "X-Request-ID"},
	{outboundCorrelationID, "X-Correlation-ID"},
}

// WithRequestID stores the inbound request ID for forwarding as
// X-Request-ID on upstream calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, outboundRequestID, id)
}

// WithCorrelationID stores the correlation ID for forwarding as
// X-Correlation-ID on upstream calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, outboundCorrelationID, id)
}

func setOutboundIDs(ctx context.Context, h http.Header) {
	for _, o := range outboundHeaders {
		if id, _ := ctx.Value(o.key).(string); id != "" {
			h.Set(o.header, id)
		}
	}
}
