// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the API clients.
package httputil

import (
	"context"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// transient HTTP failures. Tests override this to avoid real sleeps.
var RetryBaseDelay = 1 * time.Second

const defaultMaxRetries = 3

// Retryable reports whether an HTTP status code indicates a transient
// failure worth retrying: 429 (Too Many Requests) or any 5xx.
func Retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// DoWithRetry executes an HTTP request and retries transient failures
// (429 and 5xx statuses) with exponential backoff. The delay starts at
// RetryBaseDelay and doubles each attempt.
//
// When maxRetries is 0 the default (3) is used. On each transient
// response the body is drained and closed before sleeping. If the context
// is cancelled during a backoff wait the function returns ctx.Err().
// After exhausting retries the last response is returned so the caller
// can inspect its status.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if !Retryable(resp.StatusCode) {
			return resp, nil
		}

		// Exhausted retries — return the failing response as-is.
		if attempt >= maxRetries {
			return resp, nil
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
