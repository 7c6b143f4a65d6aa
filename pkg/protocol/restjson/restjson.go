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

// Package restjson implements the restJson1 protocol: inputs bind to the URI path,
// query string and headers, the remaining members form a JSON body, and errors
// carry their code in the X-Amzn-ErrorType header or the body.
package restjson

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aws/smithy-go/encoding/httpbinding"
	smithyjson "github.com/aws/smithy-go/encoding/json"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol"
	"github.com/tombee/awsclient/pkg/serde"
	"github.com/tombee/awsclient/pkg/wire"
)

// ContentType is the media type of restJson1 payloads.
const ContentType = "application/json"

// BindFunc binds input members through enc.
type BindFunc func(enc *httpbinding.Encoder) error

// Bind sets the method and expands the URI template of req. The template may carry
// a literal query, e.g. "/{Bucket}/{Key+}?tagging"; bind fills labels, query
// parameters and headers.
func Bind(req *wire.Request, method, uri string, bind BindFunc) error {
	path, query := httpbinding.SplitURI(uri)

	enc, err := httpbinding.NewEncoder(path, query, req.Header)
	if err != nil {
		return fmt.Errorf("failed to create binding encoder, %w", err)
	}
	if bind != nil {
		if err := bind(enc); err != nil {
			return err
		}
	}

	scratch := &http.Request{URL: &url.URL{}, Header: http.Header{}}
	if scratch, err = enc.Encode(scratch); err != nil {
		return fmt.Errorf("failed to encode bindings, %w", err)
	}

	values, err := url.ParseQuery(scratch.URL.RawQuery)
	if err != nil {
		return fmt.Errorf("failed to parse bound query, %w", err)
	}
	for k, v := range req.Query {
		values[k] = append(values[k], v...)
	}

	req.Method = method
	req.Path = scratch.URL.Path
	req.RawPath = scratch.URL.RawPath
	req.Query = values
	req.Header = scratch.Header
	return nil
}

// SetPayload writes the encoded document as the request body.
func SetPayload(req *wire.Request, enc *smithyjson.Encoder) {
	req.SetBody(ContentType, enc.Bytes())
}

// ErrorInfo extracts the error code, message and members of a restJson1 error.
func ErrorInfo(resp *wire.Response) (awserrors.ErrorInfo, error) {
	return protocol.JSONErrorInfo(resp)
}

// ErrorDeserializer decodes restJson1 errors against table.
func ErrorDeserializer(table awserrors.ErrorTable) serde.ErrorDeserializer {
	return func(ctx context.Context, resp *wire.Response) error {
		info, err := ErrorInfo(resp)
		if err != nil {
			return err
		}
		return table.Decode(resp, info)
	}
}
