package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// RequestFunc performs a single HTTP request attempt.
type RequestFunc func(ctx context.Context) (*http.Response, error)

// DefaultRetryDelays returns the backoff delays for API retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// DoWithRetry performs a request with exponential backoff. A transport error,
// HTTP 429, or any 5xx response is retried once per entry in delays.
//
// When every attempt fails, the last response is returned if there was one,
// so the caller can inspect the status; otherwise the last error is returned.
// The logger, if not nil, receives one line per retry.
func DoWithRetry(ctx context.Context, do RequestFunc, delays []time.Duration, logger *slog.Logger) (*http.Response, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	for attempt := 0; ; attempt++ {
		resp, err := do(ctx)
		if err == nil && !retryable(resp.StatusCode) {
			return resp, nil
		}

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			return resp, err
		}

		if resp != nil {
			resp.Body.Close()
		}

		if logger != nil {
			status := 0
			if resp != nil {
				status = resp.StatusCode
			}
			logger.Debug("retry",
				"attempt", attempt+2,
				"status", status,
				"err", err,
			)
		}

		// Wait before next attempt
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
