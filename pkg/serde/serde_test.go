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

package serde

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/middleware"
	"github.com/tombee/awsclient/pkg/wire"
)

type echoInput struct {
	Message string
}

type echoOutput struct {
	Message  string
	Metadata awserrors.ResponseMetadata
}

func (o *echoOutput) SetResponseMetadata(m awserrors.ResponseMetadata) { o.Metadata = m }

var echoPlugin = Plugin[*echoInput, *echoOutput]{
	Operation: "Echo",
	Serialize: func(ctx context.Context, input *echoInput, req *wire.Request) error {
		if input.Message == "" {
			return fmt.Errorf("input member Message must not be empty")
		}
		req.SetBody("text/plain", []byte(input.Message))
		return nil
	},
	Deserialize: func(ctx context.Context, resp *wire.Response) (*echoOutput, error) {
		if len(resp.Body) == 0 {
			return nil, fmt.Errorf("empty body")
		}
		return &echoOutput{Message: string(resp.Body)}, nil
	},
}

func execContext(t *testing.T) context.Context {
	t.Helper()
	resolver, err := wire.StaticEndpoint("https://echo.example.com")
	require.NoError(t, err)
	return middleware.WithExecutionContext(context.Background(), &middleware.ExecutionContext{
		ServiceID:        "Echo",
		Operation:        "Echo",
		EndpointResolver: resolver,
		Attempts:         2,
	})
}

// echoTerminal returns the request body as a response with the given status.
func echoTerminal(status int, header http.Header) middleware.Handler {
	return middleware.HandlerFunc(func(ctx context.Context, in middleware.Input) (middleware.Output, error) {
		if header == nil {
			header = http.Header{}
		}
		return middleware.Output{Response: &wire.Response{
			StatusCode: status,
			Header:     header,
			Body:       in.Request.Body,
		}}, nil
	})
}

func handle(t *testing.T, ctx context.Context, plugin Plugin[*echoInput, *echoOutput], terminal middleware.Handler, input any) (middleware.Output, error) {
	t.Helper()
	h, err := plugin.Apply(middleware.Stack{}).Resolve(terminal)
	require.NoError(t, err)
	return h.Handle(ctx, middleware.Input{Parameters: input})
}

func TestPlugin_RoundTrip(t *testing.T) {
	header := http.Header{"X-Amzn-Requestid": []string{"req-1"}}
	out, err := handle(t, execContext(t), echoPlugin, echoTerminal(200, header), &echoInput{Message: "hello"})
	require.NoError(t, err)

	result, ok := out.Result.(*echoOutput)
	require.True(t, ok)
	assert.Equal(t, "hello", result.Message)
	assert.Equal(t, "req-1", result.Metadata.RequestID)
	assert.Equal(t, 2, result.Metadata.Attempts)
}

func TestPlugin_RegistersIDs(t *testing.T) {
	s := echoPlugin.Apply(middleware.Stack{})
	assert.Equal(t, []string{SerializerID, DeserializerID}, s.List())
}

func TestPlugin_SerializationErrorSendsNothing(t *testing.T) {
	sent := false
	terminal := middleware.HandlerFunc(func(ctx context.Context, in middleware.Input) (middleware.Output, error) {
		sent = true
		return middleware.Output{}, nil
	})

	_, err := handle(t, execContext(t), echoPlugin, terminal, &echoInput{})
	var serErr *smithy.SerializationError
	require.True(t, errors.As(err, &serErr))
	assert.False(t, sent)

	_, err = handle(t, execContext(t), echoPlugin, terminal, "wrong type")
	assert.True(t, errors.As(err, &serErr))
	assert.False(t, sent)
}

func TestPlugin_NoResolver(t *testing.T) {
	_, err := handle(t, context.Background(), echoPlugin, echoTerminal(200, nil), &echoInput{Message: "x"})
	assert.Error(t, err)
}

func TestPlugin_EndpointErrorIsWrapped(t *testing.T) {
	unresolvable := errors.New("no endpoint for region moon-1")
	ctx := middleware.WithExecutionContext(context.Background(), &middleware.ExecutionContext{
		Operation: "Echo",
		EndpointResolver: wire.EndpointResolverFunc(func(ctx context.Context, region string) (wire.Endpoint, error) {
			return wire.Endpoint{}, unresolvable
		}),
	})

	_, err := handle(t, ctx, echoPlugin, echoTerminal(200, nil), &echoInput{Message: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, unresolvable)
	assert.EqualError(t, err, "failed to resolve endpoint: no endpoint for region moon-1")
}

func TestPlugin_DeserializationError(t *testing.T) {
	plugin := echoPlugin
	plugin.Serialize = func(ctx context.Context, input *echoInput, req *wire.Request) error { return nil }

	_, err := handle(t, execContext(t), plugin, echoTerminal(200, nil), &echoInput{})
	var deserErr *smithy.DeserializationError
	assert.True(t, errors.As(err, &deserErr))
}

func TestPlugin_ErrorStatus(t *testing.T) {
	plugin := echoPlugin
	plugin.DeserializeError = func(ctx context.Context, resp *wire.Response) error {
		return awserrors.ErrorTable{}.Decode(resp, awserrors.ErrorInfo{Code: "Teapot", RequestID: "body-id"})
	}

	_, err := handle(t, execContext(t), plugin, echoTerminal(418, nil), &echoInput{Message: "x"})
	var generic *awserrors.GenericError
	require.True(t, errors.As(err, &generic))
	assert.Equal(t, "Teapot", generic.ErrorCode())
	assert.Equal(t, 418, generic.ErrorMetadata().HTTPStatusCode)
	assert.Equal(t, "body-id", generic.ErrorMetadata().RequestID)
	assert.Equal(t, 2, generic.ErrorMetadata().Attempts)
}

func TestPlugin_ErrorStatusWithoutErrorDecoder(t *testing.T) {
	_, err := handle(t, execContext(t), echoPlugin, echoTerminal(503, nil), &echoInput{Message: "x"})

	var generic *awserrors.GenericError
	require.True(t, errors.As(err, &generic))
	assert.Equal(t, awserrors.UnknownErrorCode, generic.ErrorCode())
	assert.Equal(t, smithy.FaultServer, generic.ErrorFault())
	assert.Equal(t, 503, generic.ErrorMetadata().HTTPStatusCode)
}

func TestPlugin_TransportErrorPassesThrough(t *testing.T) {
	boom := errors.New("connection reset")
	terminal := middleware.HandlerFunc(func(ctx context.Context, in middleware.Input) (middleware.Output, error) {
		return middleware.Output{}, boom
	})
	_, err := handle(t, execContext(t), echoPlugin, terminal, &echoInput{Message: "x"})
	assert.ErrorIs(t, err, boom)
}
