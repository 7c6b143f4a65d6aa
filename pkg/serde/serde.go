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

// Package serde installs an operation's codec into a middleware stack.
//
// A Plugin pairs the serialize and deserialize functions of one operation. Apply
// registers them at the serialize and deserialize steps, so the logical input is
// replaced by a wire request before any build or finalize middleware runs, and the
// wire response is replaced by a typed output (or typed error) before control
// returns to them.
package serde

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/middleware"
	"github.com/tombee/awsclient/pkg/wire"
)

// Middleware IDs registered by Apply.
const (
	SerializerID   = "OperationSerializer"
	DeserializerID = "OperationDeserializer"
)

// SerializeFunc writes input onto req. req arrives with its endpoint resolved,
// method POST and path "/".
type SerializeFunc[In any] func(ctx context.Context, input In, req *wire.Request) error

// DeserializeFunc decodes a successful response.
type DeserializeFunc[Out any] func(ctx context.Context, resp *wire.Response) (Out, error)

// ErrorDeserializer decodes an error response into a typed error.
type ErrorDeserializer func(ctx context.Context, resp *wire.Response) error

// Plugin is the codec of one operation.
type Plugin[In, Out any] struct {
	Operation        string
	Serialize        SerializeFunc[In]
	Deserialize      DeserializeFunc[Out]
	DeserializeError ErrorDeserializer
}

// Apply returns s with the operation serializer and deserializer installed.
func (p Plugin[In, Out]) Apply(s middleware.Stack) middleware.Stack {
	return s.
		Use(middleware.SerializeStep, &serializer[In, Out]{plugin: p}).
		Use(middleware.DeserializeStep, &deserializer[In, Out]{plugin: p})
}

type serializer[In, Out any] struct {
	plugin Plugin[In, Out]
}

func (m *serializer[In, Out]) ID() string { return SerializerID }

func (m *serializer[In, Out]) HandleMiddleware(ctx context.Context, in middleware.Input, next middleware.Handler) (middleware.Output, error) {
	params, ok := in.Parameters.(In)
	if !ok {
		return middleware.Output{}, &smithy.SerializationError{
			Err: fmt.Errorf("unexpected input type %T for %s", in.Parameters, m.plugin.Operation),
		}
	}

	ec := middleware.GetExecutionContext(ctx)
	if ec == nil || ec.EndpointResolver == nil {
		return middleware.Output{}, fmt.Errorf("%s: no endpoint resolver in execution context", m.plugin.Operation)
	}
	endpoint, err := ec.ResolveEndpoint(ctx)
	if err != nil {
		return middleware.Output{}, awserrors.Wrap(err, "failed to resolve endpoint")
	}

	req := wire.NewRequest()
	req.Endpoint = endpoint
	if err := m.plugin.Serialize(ctx, params, req); err != nil {
		var serErr *smithy.SerializationError
		if errors.As(err, &serErr) {
			return middleware.Output{}, err
		}
		return middleware.Output{}, &smithy.SerializationError{Err: err}
	}

	in.Request = req
	return next.Handle(ctx, in)
}

type deserializer[In, Out any] struct {
	plugin Plugin[In, Out]
}

func (m *deserializer[In, Out]) ID() string { return DeserializerID }

func (m *deserializer[In, Out]) HandleMiddleware(ctx context.Context, in middleware.Input, next middleware.Handler) (middleware.Output, error) {
	out, err := next.Handle(ctx, in)
	if err != nil {
		return out, err
	}

	resp := out.Response
	if resp == nil {
		return out, &smithy.DeserializationError{Err: fmt.Errorf("no response to deserialize")}
	}

	ec := middleware.GetExecutionContext(ctx)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var err error
		if m.plugin.DeserializeError != nil {
			err = m.plugin.DeserializeError(ctx, resp)
		}
		if err == nil {
			err = &awserrors.GenericError{
				Code:  awserrors.UnknownErrorCode,
				Fault: awserrors.FaultForStatus(resp.StatusCode),
			}
		}
		attachMetadata(err, resp, ec)
		return out, err
	}

	result, err := m.plugin.Deserialize(ctx, resp)
	if err != nil {
		var deserErr *smithy.DeserializationError
		if errors.As(err, &deserErr) {
			return out, err
		}
		return out, &smithy.DeserializationError{Err: err, Snapshot: resp.Body}
	}

	if setter, ok := any(result).(awserrors.MetadataSetter); ok {
		setter.SetResponseMetadata(metadataFor(resp, ec))
	}
	out.Result = result
	return out, nil
}

// attachMetadata stamps response metadata on a decoded service error.
func attachMetadata(err error, resp *wire.Response, ec *middleware.ExecutionContext) {
	var setter awserrors.MetadataSetter
	if !errors.As(err, &setter) {
		return
	}
	meta := metadataFor(resp, ec)
	var apiErr awserrors.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMetadata().RequestID != "" {
		meta.RequestID = apiErr.ErrorMetadata().RequestID
	}
	setter.SetResponseMetadata(meta)
}

func metadataFor(resp *wire.Response, ec *middleware.ExecutionContext) awserrors.ResponseMetadata {
	meta := awserrors.MetadataFromResponse(resp)
	if ec != nil {
		meta.Attempts = ec.Attempts
		meta.TotalRetryDelay = ec.RetryDelay
	}
	return meta
}
