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

// Package wire holds the protocol-level HTTP messages exchanged by one call.
//
// Request and Response are plain values: they carry no connection state and are
// owned by exactly one call. Codecs fill a Request during the serialize step and
// read a Response during the deserialize step; the request handler turns one into
// the other.
package wire

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Request is the wire-level representation of an operation call.
type Request struct {
	// Method is the HTTP method.
	Method string

	// Endpoint is where the request is sent.
	Endpoint Endpoint

	// Path is the unescaped operation path, relative to Endpoint.Path.
	Path string

	// RawPath is the escaped form of Path when it differs from the default encoding.
	RawPath string

	// Query holds query string parameters.
	Query url.Values

	// Header holds request headers.
	Header http.Header

	// Body is the serialized payload, nil for operations without a body.
	Body []byte
}

// NewRequest returns an empty POST request to "/".
func NewRequest() *Request {
	return &Request{
		Method: http.MethodPost,
		Path:   "/",
		Query:  url.Values{},
		Header: http.Header{},
	}
}

// Clone returns a deep copy of r.
func (r *Request) Clone() *Request {
	c := *r
	c.Query = url.Values{}
	for k, v := range r.Query {
		c.Query[k] = append([]string(nil), v...)
	}
	c.Header = r.Header.Clone()
	if c.Header == nil {
		c.Header = http.Header{}
	}
	if r.Body != nil {
		c.Body = append([]byte(nil), r.Body...)
	}
	return &c
}

// SetBody replaces the payload and its content type.
func (r *Request) SetBody(contentType string, body []byte) {
	r.Body = body
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
}

// URL returns the full request URL.
func (r *Request) URL() *url.URL {
	u := r.Endpoint.URL()
	u.Path = joinPath(u.Path, r.Path)
	if r.RawPath != "" {
		u.RawPath = joinPath(r.Endpoint.Path, r.RawPath)
	}
	if len(r.Query) > 0 {
		u.RawQuery = r.Query.Encode()
	}
	return u
}

// Build converts r into a net/http request bound to ctx.
func (r *Request) Build(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL().String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = r.Header.Clone()
	if req.Header == nil {
		req.Header = http.Header{}
	}
	if r.Body != nil {
		req.ContentLength = int64(len(r.Body))
		req.Header.Set("Content-Length", strconv.Itoa(len(r.Body)))
	}
	return req, nil
}

func joinPath(base, p string) string {
	if base == "" {
		if p == "" {
			return "/"
		}
		return p
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(p, "/")
}
