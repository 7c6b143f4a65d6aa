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

package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/smithy-go"

	"github.com/tombee/awsclient/internal/log"
	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/middleware"
)

// CallState is the lifecycle state of one call.
type CallState int

const (
	StateCreated CallState = iota
	StateSerializing
	StateInFlight
	StateDeserializing
	StateSucceeded
	StateFailed
)

var callStateNames = [...]string{"created", "serializing", "in_flight", "deserializing", "succeeded", "failed"}

func (s CallState) String() string {
	if s < 0 || int(s) >= len(callStateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return callStateNames[s]
}

// CallOptions are per-call overrides.
type CallOptions struct {
	// Timeout bounds the call, including retries. Zero uses the client timeout.
	Timeout time.Duration

	// MaxAttempts overrides the retry attempt limit for this call.
	MaxAttempts int

	// Middleware is added after the command's serde plugin.
	Middleware middleware.Stack

	// OnStateChange observes lifecycle transitions. With retries, the in-flight and
	// deserializing states repeat once per attempt.
	OnStateChange func(CallState)
}

// WithTimeout sets a per-call timeout.
func WithTimeout(d time.Duration) func(*CallOptions) {
	return func(o *CallOptions) { o.Timeout = d }
}

// WithMaxAttempts sets a per-call attempt limit.
func WithMaxAttempts(n int) func(*CallOptions) {
	return func(o *CallOptions) { o.MaxAttempts = n }
}

// WithMiddleware adds per-call middleware.
func WithMiddleware(step middleware.Step, m middleware.Middleware, opts ...middleware.Option) func(*CallOptions) {
	return func(o *CallOptions) { o.Middleware = o.Middleware.Use(step, m, opts...) }
}

// Send runs cmd on c and returns its typed output.
//
// Errors are returned as *smithy.OperationError wrapping one of:
// *smithy.SerializationError (nothing was sent), *transport.TransportError,
// a modeled service error or *errors.GenericError, *smithy.DeserializationError,
// or *errors.TimeoutError when the per-call timeout expired.
func Send[In, Out any](ctx context.Context, c *Client, cmd *Command[In, Out], optFns ...func(*CallOptions)) (Out, error) {
	var zero Out
	if cmd == nil {
		return zero, fmt.Errorf("client: nil command")
	}

	opts := CallOptions{Timeout: c.cfg.Timeout}
	for _, fn := range optFns {
		fn(&opts)
	}

	ec := &middleware.ExecutionContext{
		ServiceID:        c.cfg.ServiceID,
		Operation:        cmd.Name(),
		Region:           c.cfg.Region,
		Logger:           log.WithOperation(c.cfg.Logger, c.cfg.ServiceID, cmd.Name()),
		EndpointResolver: c.endpoints,
	}
	track := stateTracker(ctx, ec, opts.OnStateChange)
	track(StateCreated)

	stack := cmd.ResolveMiddleware(c.stackFor(opts), opts).
		Use(middleware.SerializeStep, middleware.MiddlewareFunc(CallStateMiddlewareID,
			func(ctx context.Context, in middleware.Input, next middleware.Handler) (middleware.Output, error) {
				track(StateSerializing)
				return next.Handle(ctx, in)
			}), middleware.WithPriority(middleware.PriorityHigh))

	terminal := middleware.HandlerFunc(func(ctx context.Context, in middleware.Input) (middleware.Output, error) {
		if in.Request == nil {
			return middleware.Output{}, fmt.Errorf("no request was serialized")
		}
		track(StateInFlight)
		resp, err := c.handler.Handle(ctx, in.Request)
		if err != nil {
			return middleware.Output{}, err
		}
		track(StateDeserializing)
		return middleware.Output{Response: resp}, nil
	})

	handler, err := stack.Resolve(terminal)
	if err != nil {
		track(StateFailed)
		return zero, operationError(ec, err)
	}

	callCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	callCtx = middleware.WithExecutionContext(callCtx, ec)

	out, err := handler.Handle(callCtx, middleware.Input{Parameters: cmd.Input()})
	if err != nil {
		track(StateFailed)
		if opts.Timeout > 0 && ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			err = &awserrors.TimeoutError{
				Operation: c.cfg.ServiceID + "." + cmd.Name(),
				Duration:  opts.Timeout,
				Cause:     err,
			}
		}
		return zero, operationError(ec, err)
	}

	result, ok := out.Result.(Out)
	if !ok {
		track(StateFailed)
		return zero, operationError(ec, &smithy.DeserializationError{
			Err: fmt.Errorf("unexpected output type %T for %s", out.Result, cmd.Name()),
		})
	}

	track(StateSucceeded)
	return result, nil
}

func operationError(ec *middleware.ExecutionContext, err error) error {
	return &smithy.OperationError{
		ServiceID:     ec.ServiceID,
		OperationName: ec.Operation,
		Err:           err,
	}
}

// stateTracker reports lifecycle transitions to the call logger and observer.
func stateTracker(ctx context.Context, ec *middleware.ExecutionContext, observe func(CallState)) func(CallState) {
	return func(s CallState) {
		log.Trace(ctx, ec.Log(), "call state", slog.String("state", s.String()))
		if observe != nil {
			observe(s)
		}
	}
}
