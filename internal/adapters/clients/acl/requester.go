package acl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/listing-search-service/internal/domain"
	"github.com/jsamuelsen11/listing-search-service/internal/domain/listing"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/httpclient"
)

// maxResponseBodySize caps a successful upstream body. A $top of 1000
// Property records stays well below it.
const maxResponseBodySize = 64 << 20 // 64 MB

// Requester centralizes the upstream request lifecycle for the ACL client:
// request creation, header injection, execution via httpclient.Client,
// response body cleanup, status code validation, error translation, and
// envelope decoding.
type Requester struct {
	client  *httpclient.Client
	token   string
	logger  *slog.Logger
	maxBody int64
}

// NewRequester creates a Requester backed by the given HTTP client. token is
// sent as a bearer credential on every request.
func NewRequester(client *httpclient.Client, token string, logger *slog.Logger) *Requester {
	return &Requester{client: client, token: token, logger: logger, maxBody: maxResponseBodySize}
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// CircuitBreakerState returns the circuit breaker state from the underlying
// HTTP client.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

// Get issues GET <base>/<resource>?<query> and decodes the body as an
// envelope. op names the operation in error messages.
//
// Any 2xx status is success. A success body that is not a JSON object, or
// whose "value" member is not an array of objects, fails with
// domain.ErrUpstreamContract. A missing "value" is tolerated: the envelope
// comes back empty with ValueMissing set and a warning is logged.
func (r *Requester) Get(ctx context.Context, op, resource, query string) (*listing.Envelope, error) {
	url := r.client.BaseURL() + "/" + resource
	if query != "" {
		url += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%s: creating request: %w", op, err)
	}
	r.setHeaders(req)

	body, err := r.execute(req, op)
	if err != nil {
		return nil, err
	}

	env, err := listing.DecodeEnvelope(body)
	if err != nil {
		r.logger.ErrorContext(ctx, "upstream response malformed",
			slog.String("operation", op),
			slog.String("resource", resource),
			slog.Int("body_bytes", len(body)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w: %w", op, domain.ErrUpstreamContract, err)
	}
	if env.ValueMissing {
		r.logger.WarnContext(ctx, "unexpected response format",
			slog.String("operation", op),
			slog.String("resource", resource),
			slog.String("reason", "value array missing"),
		)
	}

	return env, nil
}

func (r *Requester) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+r.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request and returns the success body. It ensures
// resp.Body is always closed.
func (r *Requester) execute(req *http.Request, op string) ([]byte, error) {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if err != nil && resp == nil {
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return nil, TranslateTransportError(op, err)
	}

	// httpclient.Do returns both resp and err for a 5xx or 429; the status is
	// what the caller needs to see.
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		translateErr := TranslateHTTPError(op, resp)
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)
		return nil, translateErr
	}

	// One byte past the cap tells an oversized body from one that fits.
	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%s: reading response: %w: %w", op, domain.ErrUpstream, err)
	}
	if int64(len(body)) > r.maxBody {
		r.logger.ErrorContext(ctx, "upstream response too large",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int64("limit_bytes", r.maxBody),
		)
		return nil, fmt.Errorf("%s: response exceeds %s: %w", op, byteSize(r.maxBody), domain.ErrUpstreamContract)
	}
	return body, nil
}

// byteSize renders n in MB when it is a whole number of megabytes.
func byteSize(n int64) string {
	if n >= 1<<20 && n%(1<<20) == 0 {
		return fmt.Sprintf("%d MB", n>>20)
	}
	return fmt.Sprintf("%d bytes", n)
}
