package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrFailureStatus marks a response whose status counts against the circuit
// breaker (5xx or 429). Do returns it together with the response, body open,
// so callers can still report the upstream status line and body.
var ErrFailureStatus = errors.New("failure status")

// send performs exactly one round-trip. The upstream is a single-attempt
// dependency: nothing is retried here or above. The result is written to resp
// rather than returned to keep the bodyclose linter quiet; the caller closes
// the body.
func (c *Client) send(req *http.Request, resp **http.Response) error {
	r, err := c.http.Do(req)
	if err != nil {
		return err
	}

	*resp = r
	if isFailureStatus(r.StatusCode) {
		return fmt.Errorf("HTTP %d from %s: %w", r.StatusCode, c.peer, ErrFailureStatus)
	}
	return nil
}

// isFailureStatus reports whether an upstream status indicates the upstream
// itself is struggling. 4xx other than 429 are the request's fault and do not
// trip the breaker.
func isFailureStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
