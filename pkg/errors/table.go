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

package errors

import (
	"sort"

	"github.com/tombee/awsclient/pkg/wire"
)

// ErrorInfo is what a protocol extracts from an error response before dispatch.
type ErrorInfo struct {
	// Code is the sanitized error code.
	Code string

	// Message is the error message, if any.
	Message string

	// RequestID is a request id found in the body (query and XML protocols).
	RequestID string

	// Fields holds the decoded error body members, when the body is a document.
	Fields map[string]any
}

// ErrorDecoder builds one modeled exception from an error response.
type ErrorDecoder func(resp *wire.Response, info ErrorInfo) error

// ErrorTable maps a service's declared error codes to their decoders.
// Services build their table once, as a package-level value.
type ErrorTable map[string]ErrorDecoder

// Codes returns the modeled error codes in sorted order.
func (t ErrorTable) Codes() []string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Decode returns the modeled exception for info.Code, or a GenericError when the
// code is not in the table. Response metadata is attached either way.
func (t ErrorTable) Decode(resp *wire.Response, info ErrorInfo) error {
	meta := MetadataFromResponse(resp)
	if meta.RequestID == "" {
		meta.RequestID = info.RequestID
	}

	var err error
	if decode, ok := t[info.Code]; ok && info.Code != "" {
		err = decode(resp, info)
	} else {
		err = &GenericError{
			Code:    info.Code,
			Message: info.Message,
			Fault:   FaultForStatus(meta.HTTPStatusCode),
			Fields:  info.Fields,
		}
	}

	if setter, ok := err.(MetadataSetter); ok {
		setter.SetResponseMetadata(meta)
	}
	return err
}
