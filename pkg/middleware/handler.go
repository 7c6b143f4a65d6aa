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

package middleware

import (
	"context"

	"github.com/tombee/awsclient/pkg/wire"
)

// Input is what flows down the stack.
type Input struct {
	// Parameters is the operation's logical input.
	Parameters any

	// Request is the wire request, nil until the serialize step has run.
	Request *wire.Request
}

// Output is what flows back up the stack.
type Output struct {
	// Result is the typed operation output, nil until the deserialize step has run.
	Result any

	// Response is the raw wire response, nil when no response was received.
	Response *wire.Response
}

// Handler processes one call.
type Handler interface {
	Handle(ctx context.Context, in Input) (Output, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, in Input) (Output, error)

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, in Input) (Output, error) {
	return f(ctx, in)
}

// Middleware wraps the next handler in the stack. A middleware may pass the call
// through, change the input or output, return its own output without calling next,
// or fail.
type Middleware interface {
	// ID names the middleware. Non-empty IDs are unique within a resolved stack.
	ID() string

	HandleMiddleware(ctx context.Context, in Input, next Handler) (Output, error)
}

type middlewareFunc struct {
	id string
	fn func(ctx context.Context, in Input, next Handler) (Output, error)
}

// MiddlewareFunc builds a Middleware from a function.
func MiddlewareFunc(id string, fn func(ctx context.Context, in Input, next Handler) (Output, error)) Middleware {
	return middlewareFunc{id: id, fn: fn}
}

func (m middlewareFunc) ID() string { return m.id }

func (m middlewareFunc) HandleMiddleware(ctx context.Context, in Input, next Handler) (Output, error) {
	return m.fn(ctx, in, next)
}

// decoratedHandler binds a middleware to the handler that follows it.
type decoratedHandler struct {
	next Handler
	with Middleware
}

func (h decoratedHandler) Handle(ctx context.Context, in Input) (Output, error) {
	return h.with.HandleMiddleware(ctx, in, h.next)
}
