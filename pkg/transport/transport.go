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

// Package transport provides the collaborators that sit below the middleware stack.
//
// The transport layer separates network concerns from the call pipeline. A
// RequestHandler turns a wire request into a wire response; it does not interpret
// status codes, so a 404 is a successful exchange here and becomes a typed error in
// the deserialize step. The middleware in this package (retry, SigV4 signing, bearer
// auth, rate limiting) register at the finalize step and run once per attempt.
package transport

import (
	"context"

	"github.com/tombee/awsclient/pkg/wire"
)

// RequestHandler sends a request and returns the raw response.
// The context controls cancellation and deadlines; implementations abort the
// in-flight exchange when it is done.
// Returns TransportError on failure.
type RequestHandler interface {
	Handle(ctx context.Context, req *wire.Request) (*wire.Response, error)
}

// RequestHandlerFunc adapts a function to RequestHandler.
type RequestHandlerFunc func(ctx context.Context, req *wire.Request) (*wire.Response, error)

// Handle calls f.
func (f RequestHandlerFunc) Handle(ctx context.Context, req *wire.Request) (*wire.Response, error) {
	return f(ctx, req)
}

// RateLimiter provides rate limiting for requests.
// Implementations should block until a request is allowed.
type RateLimiter interface {
	// Wait blocks until a request is allowed under the rate limit.
	// Returns an error if the context is cancelled before the request can proceed.
	Wait(ctx context.Context) error
}

// Middleware IDs registered by this package.
const (
	RetryMiddlewareID     = "Retry"
	SigningMiddlewareID   = "Signing"
	BearerMiddlewareID    = "BearerAuth"
	RateLimitMiddlewareID = "RateLimit"
)
