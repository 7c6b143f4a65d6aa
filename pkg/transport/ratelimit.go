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
	"fmt"

	"golang.org/x/time/rate"

	"github.com/tombee/awsclient/pkg/middleware"
)

// RateLimitConfig configures client-side request rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained request rate. Zero disables limiting.
	RequestsPerSecond float64

	// Burst is the number of requests allowed at once (default: 1).
	Burst int
}

// NewLimiter returns a token-bucket limiter for the config, or nil when limiting is
// disabled.
func (c RateLimitConfig) NewLimiter() *rate.Limiter {
	if c.RequestsPerSecond <= 0 {
		return nil
	}
	burst := c.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(c.RequestsPerSecond), burst)
}

type rateLimitMiddleware struct {
	limiter RateLimiter
}

// NewRateLimitMiddleware returns finalize-step middleware that waits for limiter
// before every attempt, including retries.
func NewRateLimitMiddleware(limiter RateLimiter) middleware.Middleware {
	return &rateLimitMiddleware{limiter: limiter}
}

// ID implements middleware.Middleware.
func (m *rateLimitMiddleware) ID() string { return RateLimitMiddlewareID }

// HandleMiddleware implements middleware.Middleware.
func (m *rateLimitMiddleware) HandleMiddleware(ctx context.Context, in middleware.Input, next middleware.Handler) (middleware.Output, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return middleware.Output{}, &TransportError{
			Type:      ErrorTypeCancelled,
			Message:   fmt.Sprintf("rate limiter wait failed: %v", err),
			Retryable: false,
			Cause:     err,
		}
	}
	return next.Handle(ctx, in)
}
