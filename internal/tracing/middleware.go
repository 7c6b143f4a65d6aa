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

package tracing

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/middleware"
	"github.com/tombee/awsclient/pkg/redact"
)

// MiddlewareID is the ID of the tracing middleware.
const MiddlewareID = "OperationTracing"

// InstrumentationName is the tracer name used for call spans.
const InstrumentationName = "github.com/tombee/awsclient"

// Span attribute keys.
const (
	AttrRPCSystem    = attribute.Key("rpc.system")
	AttrRPCService   = attribute.Key("rpc.service")
	AttrRPCMethod    = attribute.Key("rpc.method")
	AttrRegion       = attribute.Key("cloud.region")
	AttrStatusCode   = attribute.Key("http.response.status_code")
	AttrRequestID    = attribute.Key("aws.request_id")
	AttrInvocationID = attribute.Key("aws.invocation_id")
	AttrAttempts     = attribute.Key("aws.attempts")
	AttrErrorCode    = attribute.Key("aws.error_code")
	AttrErrorFault   = attribute.Key("aws.error_fault")
)

type spanMiddleware struct {
	tracer   trace.Tracer
	redactor *redact.Redactor
}

// Middleware returns initialize-step middleware that wraps each call in a client
// span. Attribute values and error descriptions pass through redactor; nil uses
// the standard redactor.
func Middleware(tp trace.TracerProvider, redactor *redact.Redactor) middleware.Middleware {
	if redactor == nil {
		redactor = redact.Default
	}
	return &spanMiddleware{
		tracer:   tp.Tracer(InstrumentationName),
		redactor: redactor,
	}
}

// ID implements middleware.Middleware.
func (m *spanMiddleware) ID() string { return MiddlewareID }

// HandleMiddleware implements middleware.Middleware.
func (m *spanMiddleware) HandleMiddleware(ctx context.Context, in middleware.Input, next middleware.Handler) (middleware.Output, error) {
	ec := middleware.GetExecutionContext(ctx)
	name := "call"
	var attrs []attribute.KeyValue
	if ec != nil {
		name = ec.ServiceID + "." + ec.Operation
		attrs = append(attrs,
			AttrRPCSystem.String("aws-api"),
			AttrRPCService.String(ec.ServiceID),
			AttrRPCMethod.String(ec.Operation),
			AttrRegion.String(ec.Region),
			AttrInvocationID.String(ec.InvocationID),
		)
	}

	ctx, span := m.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(m.redactor.RedactAttributes(attrs)...),
	)
	defer span.End()

	out, err := next.Handle(ctx, in)

	var end []attribute.KeyValue
	if ec != nil {
		end = append(end, AttrAttempts.Int(ec.Attempts))
	}
	if out.Response != nil {
		end = append(end,
			AttrStatusCode.Int(out.Response.StatusCode),
			AttrRequestID.String(out.Response.RequestID()),
		)
	}

	if err != nil {
		var apiErr awserrors.APIError
		if errors.As(err, &apiErr) {
			meta := apiErr.ErrorMetadata()
			end = append(end,
				AttrErrorCode.String(apiErr.ErrorCode()),
				AttrErrorFault.String(apiErr.ErrorFault().String()),
				AttrStatusCode.Int(meta.HTTPStatusCode),
				AttrRequestID.String(meta.RequestID),
			)
		}
		msg := m.redactor.RedactString(err.Error())
		span.RecordError(errors.New(msg))
		span.SetStatus(codes.Error, msg)
	} else {
		span.SetStatus(codes.Ok, "")
	}

	span.SetAttributes(m.redactor.RedactAttributes(end)...)
	return out, err
}
