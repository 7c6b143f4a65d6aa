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

// Package ec2query implements the ec2Query protocol. Requests are query forms with
// flattened list members (Name.1, Name.2); responses are <{op}Response> documents
// without a result wrapper, and errors nest under <Response><Errors>.
package ec2query

import (
	"bytes"
	"context"
	"fmt"

	awsec2query "github.com/aws/aws-sdk-go-v2/aws/protocol/ec2query"
	"github.com/aws/smithy-go"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol"
	"github.com/tombee/awsclient/pkg/protocol/query"
	"github.com/tombee/awsclient/pkg/serde"
	"github.com/tombee/awsclient/pkg/wire"
)

// NewForm starts a form for action at the given API version.
func NewForm(action, version string) *query.Form {
	return query.NewForm(action, version)
}

// DecodeResponse decodes the <{op}Response> element into v.
func DecodeResponse(body []byte, op string, v any) error {
	return protocol.DecodeElement(body, op+"Response", v)
}

// ErrorInfo extracts the code, message and request id of an ec2Query error.
func ErrorInfo(resp *wire.Response) (awserrors.ErrorInfo, error) {
	var info awserrors.ErrorInfo
	if len(resp.Body) == 0 {
		return info, nil
	}

	components, err := awsec2query.GetErrorResponseComponents(bytes.NewReader(resp.Body))
	if err != nil {
		return info, &smithy.DeserializationError{
			Err:      fmt.Errorf("failed to decode error body, %w", err),
			Snapshot: resp.Body,
		}
	}

	info.Code = protocol.SanitizeErrorCode(components.Code)
	info.Message = components.Message
	info.RequestID = components.RequestID
	info.Fields = protocol.XMLFields(resp.Body)
	return info, nil
}

// ErrorDeserializer decodes ec2Query errors against table.
func ErrorDeserializer(table awserrors.ErrorTable) serde.ErrorDeserializer {
	return func(ctx context.Context, resp *wire.Response) error {
		info, err := ErrorInfo(resp)
		if err != nil {
			return err
		}
		return table.Decode(resp, info)
	}
}
