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

// Package awsjson implements the awsJson1_1 protocol: every operation is a POST to
// "/" naming its target in the X-Amz-Target header, with the whole input as a JSON
// body.
package awsjson

import (
	"context"

	smithyjson "github.com/aws/smithy-go/encoding/json"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol"
	"github.com/tombee/awsclient/pkg/serde"
	"github.com/tombee/awsclient/pkg/wire"
)

const (
	// ContentType is the media type of awsJson1_1 payloads.
	ContentType = "application/x-amz-json-1.1"

	// HeaderTarget names the operation, e.g. "Streams_20250101.DescribeStream".
	HeaderTarget = "X-Amz-Target"
)

// Prepare addresses req to operation op of the service with the given target prefix.
func Prepare(req *wire.Request, targetPrefix, op string) {
	req.Method = "POST"
	req.Path = "/"
	req.Header.Set(HeaderTarget, targetPrefix+"."+op)
}

// SetPayload writes the encoded document as the request body. An input with no
// members still sends "{}".
func SetPayload(req *wire.Request, enc *smithyjson.Encoder) {
	body := enc.Bytes()
	if len(body) == 0 {
		body = []byte("{}")
	}
	req.SetBody(ContentType, body)
}

// ErrorInfo extracts the error code, message and members of an awsJson1_1 error.
// The code comes from "__type" (or "code"), or the X-Amzn-ErrorType header.
func ErrorInfo(resp *wire.Response) (awserrors.ErrorInfo, error) {
	return protocol.JSONErrorInfo(resp)
}

// ErrorDeserializer decodes awsJson1_1 errors against table.
func ErrorDeserializer(table awserrors.ErrorTable) serde.ErrorDeserializer {
	return func(ctx context.Context, resp *wire.Response) error {
		info, err := ErrorInfo(resp)
		if err != nil {
			return err
		}
		return table.Decode(resp, info)
	}
}
