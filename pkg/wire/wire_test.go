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
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Endpoint
		wantErr string
	}{
		{
			name: "https default port",
			raw:  "https://widgets.us-east-1.amazonaws.com",
			want: Endpoint{Scheme: "https", Host: "widgets.us-east-1.amazonaws.com"},
		},
		{
			name: "http with port and base path",
			raw:  "http://localhost:4566/api/",
			want: Endpoint{Scheme: "http", Host: "localhost", Port: 4566, Path: "/api"},
		},
		{
			name:    "missing scheme",
			raw:     "localhost:4566",
			wantErr: "must start with http://",
		},
		{
			name:    "missing host",
			raw:     "https://",
			wantErr: "has no host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEndpoint(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegionalEndpoint(t *testing.T) {
	resolver := RegionalEndpoint("widgets")

	ep, err := resolver.ResolveEndpoint(context.Background(), "eu-west-1")
	require.NoError(t, err)
	assert.Equal(t, "https://widgets.eu-west-1.amazonaws.com", ep.String())

	ep, err = resolver.ResolveEndpoint(context.Background(), "cn-north-1")
	require.NoError(t, err)
	assert.Equal(t, "widgets.cn-north-1.amazonaws.com.cn", ep.Host)

	_, err = resolver.ResolveEndpoint(context.Background(), "")
	assert.Error(t, err)
}

func TestRequestURL(t *testing.T) {
	req := NewRequest()
	req.Endpoint = Endpoint{Scheme: "http", Host: "localhost", Port: 8080, Path: "/base"}
	req.Method = http.MethodGet
	req.Path = "/widgets/42"
	req.Query.Set("maxResults", "10")

	assert.Equal(t, "http://localhost:8080/base/widgets/42?maxResults=10", req.URL().String())
}

func TestRequestClone(t *testing.T) {
	req := NewRequest()
	req.Header.Set("X-Test", "a")
	req.Query.Set("q", "1")
	req.Body = []byte("body")

	clone := req.Clone()
	clone.Header.Set("X-Test", "b")
	clone.Query.Set("q", "2")
	clone.Body[0] = 'B'

	assert.Equal(t, "a", req.Header.Get("X-Test"))
	assert.Equal(t, "1", req.Query.Get("q"))
	assert.Equal(t, "body", string(req.Body))
}

func TestRequestBuild(t *testing.T) {
	req := NewRequest()
	req.Endpoint = Endpoint{Scheme: "https", Host: "example.com"}
	req.SetBody("application/json", []byte(`{"a":1}`))

	httpReq, err := req.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, httpReq.Method)
	assert.Equal(t, "https://example.com/", httpReq.URL.String())
	assert.Equal(t, int64(7), httpReq.ContentLength)
	assert.Equal(t, "application/json", httpReq.Header.Get("Content-Type"))

	body, err := io.ReadAll(httpReq.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(body))
}

func TestResponseRequestID(t *testing.T) {
	resp := &Response{Header: http.Header{}}
	assert.Empty(t, resp.RequestID())

	resp.Header.Set("x-amz-request-id", "s3-id")
	assert.Equal(t, "s3-id", resp.RequestID())

	resp.Header.Set("x-amzn-RequestId", "json-id")
	assert.Equal(t, "json-id", resp.RequestID())

	var nilResp *Response
	assert.Empty(t, nilResp.RequestID())
}

func TestCollectBody(t *testing.T) {
	b, err := CollectBody(io.NopCloser(strings.NewReader("payload")))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(b))

	b, err = CollectBody(nil)
	require.NoError(t, err)
	assert.Nil(t, b)
}
