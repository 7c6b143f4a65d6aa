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

// Package restxml implements the restXml protocol. Bindings are shared with
// restJson1; payloads and errors are XML documents.
package restxml

import (
	"bytes"
	"context"
	"fmt"

	awsxml "github.com/aws/aws-sdk-go-v2/aws/protocol/xml"
	"github.com/aws/smithy-go"
	smithyxml "github.com/aws/smithy-go/encoding/xml"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol"
	"github.com/tombee/awsclient/pkg/serde"
	"github.com/tombee/awsclient/pkg/wire"
)

// ContentType is the media type of restXml payloads.
const ContentType = "application/xml"

// SetPayload writes the encoded document as the request body.
func SetPayload(req *wire.Request, enc *smithyxml.Encoder) {
	req.SetBody(ContentType, enc.Bytes())
}

// Decode decodes the root element named root into v.
func Decode(body []byte, root string, v any) error {
	return protocol.DecodeElement(body, root, v)
}

// ErrorInfo extracts the code, message and request id of a restXml error. With
// noErrorWrapping the body root is <Error>; otherwise it is
// <ErrorResponse><Error>.
func ErrorInfo(resp *wire.Response, noErrorWrapping bool) (awserrors.ErrorInfo, error) {
	var info awserrors.ErrorInfo
	if len(resp.Body) == 0 {
		return info, nil
	}

	components, err := awsxml.GetErrorResponseComponents(bytes.NewReader(resp.Body), noErrorWrapping)
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

// ErrorDeserializer decodes restXml errors against table.
func ErrorDeserializer(table awserrors.ErrorTable, noErrorWrapping bool) serde.ErrorDeserializer {
	return func(ctx context.Context, resp *wire.Response) error {
		info, err := ErrorInfo(resp, noErrorWrapping)
		if err != nil {
			return err
		}
		return table.Decode(resp, info)
	}
}
