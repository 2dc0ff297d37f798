package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/listing-search-service/internal/domain"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/logging"
)

// ProblemContentType is the media type of every error body.
const ProblemContentType = "application/problem+json"

// ErrorResponse is an RFC 9457 problem body. Error repeats Detail for
// clients that read a top-level "error" string.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Error    string        `json:"error"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail names one rejected query parameter.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statuses is matched in order; the first error in the chain wins. A caller
// mistake is a 4xx and anything the listing API got wrong is a 5xx gateway
// status. The deadline check sits above ErrUpstream because a timed-out
// upstream call wraps both.
var statuses = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrUnavailable, http.StatusServiceUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{domain.ErrUpstream, http.StatusBadGateway},
	{domain.ErrUpstreamContract, http.StatusBadGateway},
}

// StatusOf returns the HTTP status that reports err, 500 when err matches
// no known domain error.
func StatusOf(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.target) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem body for err. Instance is the request
// URI, so a rejected search echoes its query string.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusOf(err)
	msg := err.Error()

	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   msg,
		Instance: r.RequestURI,
		Error:    msg,
		Errors:   queryErrors(err),
	}
}

// WriteErrorResponse answers r with the problem body for err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	problem := NewErrorResponse(r, err)
	writeBody(w, r, ProblemContentType, problem.Status, problem)
}

// WriteJSON answers r with v encoded as JSON.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	writeBody(w, r, "application/json", status, v)
}

func writeBody(w http.ResponseWriter, r *http.Request, contentType string, status int, v any) {
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "writing response body failed",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// queryErrors lists the rejected parameters of a validation error, sorted
// by name. It returns nil for any other error.
func queryErrors(err error) []ErrorDetail {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}

	details := make([]ErrorDetail, 0, len(verr.Fields))
	for _, field := range slices.Sorted(maps.Keys(verr.Fields)) {
		details = append(details, ErrorDetail{
			Location: "query." + field,
			Message:  verr.Fields[field],
		})
	}
	return details
}

// WriteStatusProblem answers r with a problem body for status when no
// domain error is involved, such as a method the route does not serve.
func WriteStatusProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeBody(w, r, ProblemContentType, status, ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
		Error:    detail,
	})
}
