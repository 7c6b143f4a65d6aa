// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transport

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/smithy-go"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/middleware"
)

// RetryConfig configures retry behavior for calls.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts including the first (default: 3)
	MaxAttempts int

	// InitialBackoff is the initial backoff duration (default: 1s)
	InitialBackoff time.Duration

	// MaxBackoff is the maximum backoff duration (default: 30s)
	MaxBackoff time.Duration

	// BackoffFactor is the exponential backoff multiplier (default: 2.0)
	BackoffFactor float64

	// RetryableErrors is the list of HTTP status codes that should be retried
	// Default: [408, 429, 500, 502, 503, 504]
	RetryableErrors []int

	// RetryableCodes lists service error codes that are retried regardless of status.
	RetryableCodes []string
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:     3,
		InitialBackoff:  1 * time.Second,
		MaxBackoff:      30 * time.Second,
		BackoffFactor:   2.0,
		RetryableErrors: []int{408, 429, 500, 502, 503, 504},
		RetryableCodes: []string{
			"Throttling",
			"ThrottlingException",
			"ThrottledException",
			"RequestLimitExceeded",
			"RequestThrottled",
			"TooManyRequestsException",
			"ProvisionedThroughputExceededException",
			"RequestTimeout",
			"RequestTimeoutException",
		},
	}
}

// Validate checks if the retry configuration is valid.
func (c *RetryConfig) Validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.InitialBackoff < 0 {
		return fmt.Errorf("initial_backoff must be non-negative, got %v", c.InitialBackoff)
	}
	if c.MaxBackoff < c.InitialBackoff {
		return fmt.Errorf("max_backoff (%v) must be >= initial_backoff (%v)", c.MaxBackoff, c.InitialBackoff)
	}
	if c.BackoffFactor < 1.0 {
		return fmt.Errorf("backoff_factor must be >= 1.0, got %f", c.BackoffFactor)
	}
	return nil
}

// IsRetryable returns true if the given status code should be retried.
func (c *RetryConfig) IsRetryable(statusCode int) bool {
	for _, code := range c.RetryableErrors {
		if code == statusCode {
			return true
		}
	}
	return false
}

// isRetryableCode returns true if the service error code should be retried.
func (c *RetryConfig) isRetryableCode(code string) bool {
	for _, known := range c.RetryableCodes {
		if known == code {
			return true
		}
	}
	return false
}

// WithMaxAttempts returns a copy of c with MaxAttempts replaced.
func (c *RetryConfig) WithMaxAttempts(n int) *RetryConfig {
	cp := *c
	cp.MaxAttempts = n
	return &cp
}

// HeaderSDKRequest carries the attempt number and limit of each request.
const HeaderSDKRequest = "Amz-Sdk-Request"

type retryMiddleware struct {
	config *RetryConfig
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewRetryMiddleware returns finalize-step middleware that re-runs the rest of the
// stack for retryable failures.
//
// Retry behavior:
// - Retries on retryable status codes (408, 429, 5xx) and throttling error codes
// - Retries on connection errors and timeouts
// - Does NOT retry on other 4xx errors, serialization or deserialization failures
// - Respects Retry-After header when present
// - Stops immediately on context cancellation
//
// Each attempt receives its own copy of the request, so signing and other
// per-attempt middleware start from the serialized request every time.
func NewRetryMiddleware(config *RetryConfig) middleware.Middleware {
	if config == nil {
		config = DefaultRetryConfig()
	}
	return &retryMiddleware{config: config, sleep: sleepContext}
}

// ID implements middleware.Middleware.
func (m *retryMiddleware) ID() string { return RetryMiddlewareID }

// HandleMiddleware implements middleware.Middleware.
func (m *retryMiddleware) HandleMiddleware(ctx context.Context, in middleware.Input, next middleware.Handler) (middleware.Output, error) {
	ec := middleware.GetExecutionContext(ctx)
	original := in.Request

	var (
		out middleware.Output
		err error
	)
	for attempt := 1; ; attempt++ {
		attemptIn := in
		if original != nil {
			attemptIn.Request = original.Clone()
			attemptIn.Request.Header.Set(HeaderSDKRequest, fmt.Sprintf("attempt=%d; max=%d", attempt, m.config.MaxAttempts))
		}
		if ec != nil {
			ec.Attempts = attempt
		}

		out, err = next.Handle(ctx, attemptIn)
		if err == nil {
			return out, nil
		}

		shouldRetry, retryAfter := shouldRetryError(err, m.config)
		if attempt >= m.config.MaxAttempts || !shouldRetry {
			return out, err
		}

		if ctx.Err() != nil {
			return out, &TransportError{
				Type:      ErrorTypeCancelled,
				Message:   "request cancelled before retry",
				Retryable: false,
				Cause:     ctx.Err(),
			}
		}

		delay := calculateBackoff(m.config, attempt, retryAfter)
		ec.Log().Debug("retrying call",
			"attempt", attempt,
			"delay", delay,
			"error", err.Error(),
		)

		if sleepErr := m.sleep(ctx, delay); sleepErr != nil {
			return out, &TransportError{
				Type:      ErrorTypeCancelled,
				Message:   "request cancelled during retry backoff",
				Retryable: false,
				Cause:     sleepErr,
			}
		}
		if ec != nil {
			ec.RetryDelay += delay
		}
	}
}

// shouldRetryError determines if an error should be retried and extracts Retry-After if present.
func shouldRetryError(err error, config *RetryConfig) (shouldRetry bool, retryAfter time.Duration) {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		if !transportErr.Retryable {
			return false, 0
		}
		if transportErr.StatusCode > 0 && !config.IsRetryable(transportErr.StatusCode) {
			return false, 0
		}
		return true, 0
	}

	var serErr *smithy.SerializationError
	var deserErr *smithy.DeserializationError
	if errors.As(err, &serErr) || errors.As(err, &deserErr) {
		return false, 0
	}

	var apiErr awserrors.APIError
	if !errors.As(err, &apiErr) {
		var classified awserrors.ErrorClassifier
		if errors.As(err, &classified) {
			return classified.IsRetryable(), 0
		}
		// Unknown error type - don't retry
		return false, 0
	}

	meta := apiErr.ErrorMetadata()
	retry := config.isRetryableCode(apiErr.ErrorCode()) ||
		config.IsRetryable(meta.HTTPStatusCode) ||
		apiErr.ErrorFault() == smithy.FaultServer
	if !retry {
		return false, 0
	}

	if meta.HTTPStatusCode == 429 || meta.HTTPStatusCode == 503 {
		retryAfter = extractRetryAfter(meta.Header)
	}
	return true, retryAfter
}

// calculateBackoff calculates the backoff delay for a retry attempt.
//
// Formula: delay = min(InitialBackoff * (BackoffFactor ^ (attempt - 1)), MaxBackoff) + jitter
// Jitter: random [0ms, 100ms]
func calculateBackoff(config *RetryConfig, attempt int, retryAfter time.Duration) time.Duration {
	baseDelay := float64(config.InitialBackoff) * pow(config.BackoffFactor, attempt-1)

	if baseDelay > float64(config.MaxBackoff) {
		baseDelay = float64(config.MaxBackoff)
	}

	delay := time.Duration(baseDelay)

	// Retry-After wins over the computed delay but never beyond MaxBackoff.
	if retryAfter > 0 {
		if retryAfter > delay {
			delay = retryAfter
		}
		if delay > config.MaxBackoff {
			delay = config.MaxBackoff
		}
	}

	jitter := time.Duration(rand.Int63n(101)) * time.Millisecond

	return delay + jitter
}

// extractRetryAfter reads the Retry-After header.
// Returns 0 if not present or invalid.
//
// Supports two formats:
// - Numeric: seconds to wait (e.g., "120")
// - HTTP-date: absolute time (e.g., "Wed, 21 Oct 2015 07:28:00 GMT")
func extractRetryAfter(header http.Header) time.Duration {
	retryAfterStr := header.Get("Retry-After")
	if retryAfterStr == "" {
		return 0
	}

	if seconds, err := strconv.ParseInt(retryAfterStr, 10, 64); err == nil {
		return time.Duration(seconds) * time.Second
	}

	retryTime, parseErr := http.ParseTime(retryAfterStr)
	if parseErr != nil {
		return 0
	}

	delay := time.Until(retryTime)
	if delay < 0 {
		return 0
	}

	return delay
}

// pow calculates base^exp for integer exponents.
func pow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
