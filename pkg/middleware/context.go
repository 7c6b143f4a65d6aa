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
	"io"
	"log/slog"
	"time"

	"github.com/tombee/awsclient/pkg/wire"
)

// ExecutionContext carries cross-cutting data for one call. It is created by the
// client when a call starts and discarded when it returns; middleware of the same
// call share it, and nothing else does.
type ExecutionContext struct {
	// ServiceID identifies the service, e.g. "Widgets".
	ServiceID string

	// Operation is the operation name, e.g. "GetWidget".
	Operation string

	// Region is the signing and endpoint region.
	Region string

	// InvocationID is a unique id shared by every attempt of the call.
	InvocationID string

	// Logger receives call-scoped logs.
	Logger *slog.Logger

	// EndpointResolver resolves the service endpoint for Region.
	EndpointResolver wire.EndpointResolver

	// Attempts counts transport attempts made so far.
	Attempts int

	// RetryDelay accumulates time spent waiting between attempts.
	RetryDelay time.Duration
}

// ResolveEndpoint resolves the endpoint for the call's region.
func (ec *ExecutionContext) ResolveEndpoint(ctx context.Context) (wire.Endpoint, error) {
	return ec.EndpointResolver.ResolveEndpoint(ctx, ec.Region)
}

// Log returns the call logger, or a discarding logger when none is set.
func (ec *ExecutionContext) Log() *slog.Logger {
	if ec == nil || ec.Logger == nil {
		return discardLogger
	}
	return ec.Logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type executionContextKey struct{}

// WithExecutionContext returns a context carrying ec.
func WithExecutionContext(ctx context.Context, ec *ExecutionContext) context.Context {
	return context.WithValue(ctx, executionContextKey{}, ec)
}

// GetExecutionContext returns the call's execution context, or nil outside a call.
func GetExecutionContext(ctx context.Context) *ExecutionContext {
	ec, _ := ctx.Value(executionContextKey{}).(*ExecutionContext)
	return ec
}
