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

package log

import (
	"context"
	"errors"
	"log/slog"
	"time"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/middleware"
	"github.com/tombee/awsclient/pkg/redact"
)

// MiddlewareID is the ID of the call logging middleware.
const MiddlewareID = "CallLogger"

// CallRecord describes one completed call for logging purposes.
type CallRecord struct {
	// Service and Operation identify the call.
	Service   string
	Operation string

	// InvocationID is shared by every attempt of the call.
	InvocationID string

	// RequestID is the service request id of the last response, if any.
	RequestID string

	// StatusCode is the HTTP status of the last response, zero when none arrived.
	StatusCode int

	// Attempts is the number of transport attempts.
	Attempts int

	// DurationMs is the wall time of the call in milliseconds.
	DurationMs int64

	// Err is the call error, nil on success.
	Err error
}

// LogCall logs a completed call at info level, or error level when it failed.
// Error text is scrubbed of credentials before it is written.
func LogCall(ctx context.Context, logger *slog.Logger, rec *CallRecord) {
	attrs := []any{
		EventKey, "call_end",
		ServiceKey, rec.Service,
		OperationKey, rec.Operation,
		DurationKey, rec.DurationMs,
		"attempts", rec.Attempts,
	}

	if rec.InvocationID != "" {
		attrs = append(attrs, InvocationIDKey, rec.InvocationID)
	}

	if rec.RequestID != "" {
		attrs = append(attrs, RequestIDKey, rec.RequestID)
	}

	if rec.StatusCode != 0 {
		attrs = append(attrs, "status_code", rec.StatusCode)
	}

	level := slog.LevelInfo
	message := "call completed"

	if rec.Err != nil {
		level = slog.LevelError
		message = "call failed"
		attrs = append(attrs, "error", redact.Default.RedactString(rec.Err.Error()))
	}

	logger.Log(ctx, level, message, attrs...)
}

type callLogger struct{}

// Middleware returns initialize-step middleware that logs every call. Inputs and
// outputs are logged at trace level after redaction.
func Middleware() middleware.Middleware {
	return callLogger{}
}

// ID implements middleware.Middleware.
func (callLogger) ID() string { return MiddlewareID }

// HandleMiddleware implements middleware.Middleware.
func (callLogger) HandleMiddleware(ctx context.Context, in middleware.Input, next middleware.Handler) (middleware.Output, error) {
	ec := middleware.GetExecutionContext(ctx)
	logger := ec.Log()

	rec := &CallRecord{}
	if ec != nil {
		rec.Service = ec.ServiceID
		rec.Operation = ec.Operation
		rec.InvocationID = ec.InvocationID
	}

	Trace(ctx, logger, "call started",
		slog.String(EventKey, "call_start"),
		slog.String(ServiceKey, rec.Service),
		slog.String(OperationKey, rec.Operation),
		slog.Any("input", redact.Value(in.Parameters)),
	)

	start := time.Now()
	out, err := next.Handle(ctx, in)
	rec.DurationMs = time.Since(start).Milliseconds()
	rec.Err = err

	if ec != nil {
		rec.Attempts = ec.Attempts
	}
	if out.Response != nil {
		rec.StatusCode = out.Response.StatusCode
		rec.RequestID = out.Response.RequestID()
	}

	var apiErr awserrors.APIError
	if errors.As(err, &apiErr) {
		meta := apiErr.ErrorMetadata()
		rec.StatusCode = meta.HTTPStatusCode
		rec.RequestID = meta.RequestID
	}

	LogCall(ctx, logger, rec)

	if err == nil {
		Trace(ctx, logger, "call output",
			slog.String(OperationKey, rec.Operation),
			slog.Any("output", redact.Value(out.Result)),
		)
	}
	return out, err
}
