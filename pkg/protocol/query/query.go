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

// Package query implements the awsQuery protocol: the input is a form-encoded POST
// body naming its Action and Version, and results arrive wrapped in
// <OpResponse><OpResult>.
package query

import (
	"bytes"
	"context"
	"fmt"

	awsquery "github.com/aws/aws-sdk-go-v2/aws/protocol/query"
	awsxml "github.com/aws/aws-sdk-go-v2/aws/protocol/xml"
	"github.com/aws/smithy-go"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol"
	"github.com/tombee/awsclient/pkg/serde"
	"github.com/tombee/awsclient/pkg/wire"
)

// ContentType is the media type of query request bodies.
const ContentType = "application/x-www-form-urlencoded"

// Form is a form body under construction.
type Form struct {
	buf *bytes.Buffer
	enc *awsquery.Encoder
}

// NewForm starts a form for action at the given API version.
func NewForm(action, version string) *Form {
	buf := bytes.NewBuffer(nil)
	enc := awsquery.NewEncoder(buf)
	body := enc.Object()
	body.Key("Action").String(action)
	body.Key("Version").String(version)
	return &Form{buf: buf, enc: enc}
}

// Object returns the root object; members are added with Key or FlatKey.
func (f *Form) Object() *awsquery.Object {
	return f.enc.Object()
}

// Apply encodes the form into req as a POST to "/".
func (f *Form) Apply(req *wire.Request) error {
	if err := f.enc.Encode(); err != nil {
		return &smithy.SerializationError{Err: fmt.Errorf("failed to encode form, %w", err)}
	}
	req.Method = "POST"
	req.Path = "/"
	req.SetBody(ContentType, append([]byte(nil), f.buf.Bytes()...))
	return nil
}

// DecodeResult decodes the <{op}Result> element into v.
func DecodeResult(body []byte, op string, v any) error {
	return protocol.DecodeElement(body, op+"Result", v)
}

// ResponseMetadata is the trailer of every query response.
type ResponseMetadata struct {
	RequestID string `xml:"RequestId"`
}

// RequestID returns the request id from the response metadata trailer.
func RequestID(body []byte) string {
	var meta ResponseMetadata
	if err := protocol.DecodeElement(body, "ResponseMetadata", &meta); err != nil {
		return ""
	}
	return meta.RequestID
}

// ErrorInfo extracts the code, message and request id of a query error
// (<ErrorResponse><Error><Code/><Message/></Error><RequestId/></ErrorResponse>).
func ErrorInfo(resp *wire.Response) (awserrors.ErrorInfo, error) {
	var info awserrors.ErrorInfo
	if len(resp.Body) == 0 {
		return info, nil
	}

	components, err := awsxml.GetErrorResponseComponents(bytes.NewReader(resp.Body), false)
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

// ErrorDeserializer decodes query errors against table.
func ErrorDeserializer(table awserrors.ErrorTable) serde.ErrorDeserializer {
	return func(ctx context.Context, resp *wire.Response) error {
		info, err := ErrorInfo(resp)
		if err != nil {
			return err
		}
		return table.Decode(resp, info)
	}
}
