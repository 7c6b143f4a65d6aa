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

// Package protocol holds helpers shared by the wire protocol codecs.
//
// Service codecs are written per operation, in the shape of generated code: a
// serializer binds each input member to the request, and a deserializer walks the
// decoded document member by member, coercing wire values into Go types. The
// helpers here cover what every codec repeats: error code sanitization, JSON
// document decoding, value coercion and XML field extraction.
package protocol

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/protocol/restjson"
	"github.com/aws/smithy-go"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/wire"
)

// HeaderErrorType is the restJson1 and awsJson error code header.
const HeaderErrorType = "X-Amzn-Errortype"

// SanitizeErrorCode strips a ":"-suffix and a "#"-prefixed namespace from a wire
// error code, e.g. "aws.widgets#NotFoundException:http://x" becomes
// "NotFoundException".
func SanitizeErrorCode(code string) string {
	return restjson.SanitizeErrorCode(strings.TrimSpace(code))
}

// IsError reports whether resp carries an error status.
func IsError(resp *wire.Response) bool {
	return resp != nil && resp.StatusCode >= 400
}

// DecodeDocument decodes a JSON object body. Numbers are kept as json.Number so
// that integers and timestamps lose no precision. An empty body decodes to an
// empty document.
func DecodeDocument(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var shape any
	if err := decoder.Decode(&shape); err != nil && err != io.EOF {
		return nil, &smithy.DeserializationError{
			Err:      fmt.Errorf("failed to decode response body, %w", err),
			Snapshot: body,
		}
	}

	doc, ok := shape.(map[string]any)
	if !ok {
		return nil, &smithy.DeserializationError{
			Err:      fmt.Errorf("unexpected JSON type %T, expected an object", shape),
			Snapshot: body,
		}
	}
	return doc, nil
}

// JSONErrorInfo extracts the error code, message and body members of a JSON error
// response. The X-Amzn-ErrorType header wins over the "code" and "__type" body
// members.
func JSONErrorInfo(resp *wire.Response) (awserrors.ErrorInfo, error) {
	var info awserrors.ErrorInfo

	doc, err := DecodeDocument(resp.Body)
	if err != nil {
		return info, err
	}
	info.Fields = doc

	code, message, err := restjson.GetErrorInfo(json.NewDecoder(bytes.NewReader(resp.Body)))
	if err != nil {
		return info, &smithy.DeserializationError{
			Err:      fmt.Errorf("failed to decode error body, %w", err),
			Snapshot: resp.Body,
		}
	}

	if header := resp.Header.Get(HeaderErrorType); header != "" {
		code = header
	}
	info.Code = SanitizeErrorCode(code)
	info.Message = message
	return info, nil
}

// XMLFields collects the text of every leaf element in an XML document, keyed by
// local name. The first occurrence of a name wins.
func XMLFields(body []byte) map[string]any {
	fields := map[string]any{}
	decoder := xml.NewDecoder(bytes.NewReader(body))

	var (
		name   string
		text   strings.Builder
		isLeaf bool
	)
	for {
		tok, err := decoder.Token()
		if err != nil {
			return fields
		}
		switch t := tok.(type) {
		case xml.StartElement:
			name = t.Name.Local
			text.Reset()
			isLeaf = true
		case xml.CharData:
			if isLeaf {
				text.Write(t)
			}
		case xml.EndElement:
			if isLeaf && t.Name.Local == name {
				if _, exists := fields[name]; !exists {
					fields[name] = strings.TrimSpace(text.String())
				}
			}
			isLeaf = false
		}
	}
}

// DecodeElement finds the first element named local and decodes it into v.
func DecodeElement(body []byte, local string, v any) error {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return &smithy.DeserializationError{
				Err:      fmt.Errorf("element %s not found in response", local),
				Snapshot: body,
			}
		}
		if err != nil {
			return &smithy.DeserializationError{
				Err:      fmt.Errorf("failed to decode response body, %w", err),
				Snapshot: body,
			}
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != local {
			continue
		}
		if err := decoder.DecodeElement(v, &start); err != nil {
			return &smithy.DeserializationError{
				Err:      fmt.Errorf("failed to decode %s, %w", local, err),
				Snapshot: body,
			}
		}
		return nil
	}
}
