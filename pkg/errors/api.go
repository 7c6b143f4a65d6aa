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

// Package errors defines the error taxonomy shared by every service client.
//
// A call fails with one of four kinds of error:
//   - *smithy.SerializationError: the input could not be encoded; nothing was sent.
//   - *transport.TransportError: the request handler failed (connection, timeout, cancel).
//   - a modeled service error: a per-service type embedding ErrorBase whose ErrorCode
//     matches the service's declared exception name.
//   - *GenericError: the service answered with status >= 400 and a code the service
//     does not model, or with no code at all.
//
// Service and generic errors implement APIError, so callers can discriminate on
// ErrorCode and ErrorFault without knowing the concrete type.
package errors

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aws/smithy-go"

	"github.com/tombee/awsclient/pkg/wire"
)

// UnknownErrorCode names errors whose response carried no error code.
const UnknownErrorCode = "UnknownError"

// ResponseMetadata describes the HTTP exchange behind a result or an error.
type ResponseMetadata struct {
	// HTTPStatusCode is the status of the last response, zero when none was received.
	HTTPStatusCode int

	// RequestID is the service request id (x-amzn-RequestId or x-amz-request-id).
	RequestID string

	// ExtendedRequestID is the S3-style x-amz-id-2 value.
	ExtendedRequestID string

	// Header holds the response headers.
	Header http.Header

	// Attempts is the number of transport attempts made.
	Attempts int

	// TotalRetryDelay is the time spent waiting between attempts.
	TotalRetryDelay time.Duration
}

// MetadataFromResponse builds ResponseMetadata from a wire response.
func MetadataFromResponse(resp *wire.Response) ResponseMetadata {
	if resp == nil {
		return ResponseMetadata{}
	}
	return ResponseMetadata{
		HTTPStatusCode:    resp.StatusCode,
		RequestID:         resp.RequestID(),
		ExtendedRequestID: resp.Header.Get(wire.HeaderExtendedRequestID),
		Header:            resp.Header,
	}
}

// APIError is a service error carrying its response metadata.
type APIError interface {
	smithy.APIError
	ErrorMetadata() ResponseMetadata
}

// ErrorBase holds the members shared by every modeled exception.
// Modeled exceptions embed it and add ErrorCode and ErrorFault.
type ErrorBase struct {
	Message  string
	Metadata ResponseMetadata
}

// ErrorMessage returns the service-provided message.
func (e *ErrorBase) ErrorMessage() string { return e.Message }

// ErrorMetadata returns the response metadata.
func (e *ErrorBase) ErrorMetadata() ResponseMetadata { return e.Metadata }

// SetResponseMetadata implements MetadataSetter.
func (e *ErrorBase) SetResponseMetadata(m ResponseMetadata) { e.Metadata = m }

// FormatError renders an API error as "api error <code>: <message>".
func FormatError(e smithy.APIError) string {
	if msg := e.ErrorMessage(); msg != "" {
		return fmt.Sprintf("api error %s: %s", e.ErrorCode(), msg)
	}
	return fmt.Sprintf("api error %s", e.ErrorCode())
}

// FaultForStatus attributes a failed status code to the caller or the service.
func FaultForStatus(status int) smithy.ErrorFault {
	if status >= 500 {
		return smithy.FaultServer
	}
	return smithy.FaultClient
}

// GenericError is an unmodeled service error.
type GenericError struct {
	// Code is the sanitized error code, empty when the response carried none.
	Code string

	// Message is the service-provided message.
	Message string

	// Fault attributes the failure to the caller or the service.
	Fault smithy.ErrorFault

	// Fields holds whatever other members the error body contained.
	Fields map[string]any

	// Metadata describes the response.
	Metadata ResponseMetadata
}

// Error implements the error interface.
func (e *GenericError) Error() string { return FormatError(e) }

// ErrorCode returns the error code, or UnknownErrorCode.
func (e *GenericError) ErrorCode() string {
	if e.Code == "" {
		return UnknownErrorCode
	}
	return e.Code
}

// ErrorMessage returns the message.
func (e *GenericError) ErrorMessage() string { return e.Message }

// ErrorFault returns the fault.
func (e *GenericError) ErrorFault() smithy.ErrorFault { return e.Fault }

// ErrorMetadata returns the response metadata.
func (e *GenericError) ErrorMetadata() ResponseMetadata { return e.Metadata }

// SetResponseMetadata implements MetadataSetter.
func (e *GenericError) SetResponseMetadata(m ResponseMetadata) { e.Metadata = m }

// ErrorType implements ErrorClassifier.
func (e *GenericError) ErrorType() string { return "service" }

// IsRetryable implements ErrorClassifier. Server faults and throttling are retryable.
func (e *GenericError) IsRetryable() bool {
	return e.Fault == smithy.FaultServer || e.Metadata.HTTPStatusCode == http.StatusTooManyRequests
}

var (
	_ APIError        = (*GenericError)(nil)
	_ ErrorClassifier = (*GenericError)(nil)
	_ MetadataSetter  = (*GenericError)(nil)
)
