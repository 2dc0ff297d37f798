package httpclient

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestBreakerSuccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: true},
		{name: "caller canceled", err: context.Canceled, want: true},
		{name: "wrapped cancel", err: fmt.Errorf("GET /Property: %w", context.Canceled), want: true},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: false},
		{name: "failure status", err: fmt.Errorf("HTTP 503 from listing-api: %w", ErrFailureStatus), want: false},
		{name: "transport error", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := breakerSuccess(tt.err); got != tt.want {
				t.Errorf("breakerSuccess(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
