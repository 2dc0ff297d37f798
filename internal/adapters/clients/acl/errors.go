// Package acl implements the Anti-Corruption Layer between this service and
// the upstream OData listing API. Query translation lives in acl/odata;
// request execution, error mapping, and envelope decoding live here.
package acl

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/listing-search-service/internal/domain"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/httpclient"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// TranslateHTTPError maps a non-success upstream response to an error
// wrapping domain.ErrUpstream. The message carries op, the status line, and
// the response body text, e.g.
//
//	fetching properties: 503 Service Unavailable - service unavailable: upstream request failed
//
// Every status maps to ErrUpstream, including 401 and 404: from the caller's
// point of view the upstream failed, not the request.
func TranslateHTTPError(op string, resp *http.Response) error {
	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return fmt.Errorf("%s: %s - %s: %w", op, status, readErrorBody(resp), domain.ErrUpstream)
}

// TranslateTransportError maps a failure that produced no response. Breaker
// rejections become domain.ErrUnavailable; anything else, including
// cancellation, wraps domain.ErrUpstream alongside the cause.
func TranslateTransportError(op string, err error) error {
	if httpclient.IsBreakerRejection(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrUpstream, err)
}

// readErrorBody returns the response body as trimmed text, best effort.
func readErrorBody(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}

	// A read error keeps whatever arrived before it.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	return strings.TrimSpace(string(body))
}
