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

package wire

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// Request ID headers, in lookup order.
const (
	HeaderRequestID         = "X-Amzn-Requestid"
	HeaderS3RequestID       = "X-Amz-Request-Id"
	HeaderExtendedRequestID = "X-Amz-Id-2"
)

// Response is the wire-level representation of a service reply.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Header contains response headers.
	Header http.Header

	// Body is the fully collected response payload.
	Body []byte
}

// RequestID returns the service request id from the response headers.
func (r *Response) RequestID() string {
	if r == nil || r.Header == nil {
		return ""
	}
	if id := r.Header.Get(HeaderRequestID); id != "" {
		return id
	}
	return r.Header.Get(HeaderS3RequestID)
}

// BodyReader returns a fresh reader over the body.
func (r *Response) BodyReader() io.Reader {
	return bytes.NewReader(r.Body)
}

// CollectBody reads a response stream to completion and closes it when it is a ReadCloser.
func CollectBody(body io.Reader) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	if rc, ok := body.(io.ReadCloser); ok {
		defer rc.Close()
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return b, nil
}

// FromHTTP collects an http.Response into a Response.
func FromHTTP(resp *http.Response) (*Response, error) {
	body, err := CollectBody(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
