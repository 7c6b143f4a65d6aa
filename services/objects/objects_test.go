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

package objects

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/awsclient/pkg/client"
	"github.com/tombee/awsclient/pkg/transport"
	"github.com/tombee/awsclient/pkg/wire"
)

type stubResponse struct {
	status int
	header http.Header
	body   string
}

func newTestClient(t *testing.T, resp stubResponse) (*Client, *[]*wire.Request) {
	t.Helper()
	var seen []*wire.Request
	if resp.header == nil {
		resp.header = http.Header{}
	}
	c, err := New(client.Config{
		Region: "us-west-2",
		RequestHandler: transport.RequestHandlerFunc(func(ctx context.Context, req *wire.Request) (*wire.Response, error) {
			seen = append(seen, req)
			return &wire.Response{StatusCode: resp.status, Header: resp.header, Body: []byte(resp.body)}, nil
		}),
	})
	require.NoError(t, err)
	return c, &seen
}

func TestGetObjectTagging(t *testing.T) {
	header := http.Header{}
	header.Set("x-amz-version-id", "v-7")
	header.Set("x-amz-request-id", "s3-req")
	c, seen := newTestClient(t, stubResponse{status: 200, header: header, body: `<?xml version="1.0" encoding="UTF-8"?>
<Tagging xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <TagSet>
    <Tag><Key>team</Key><Value>storage</Value></Tag>
    <Tag><Key>tier</Key><Value>cold</Value></Tag>
  </TagSet>
</Tagging>`})

	out, err := c.GetObjectTagging(context.Background(), &GetObjectTaggingInput{
		Bucket:              ptr.String("photos"),
		Key:                 ptr.String("2024/summer/beach.jpg"),
		VersionId:           ptr.String("v-7"),
		ExpectedBucketOwner: ptr.String("111122223333"),
	})
	require.NoError(t, err)
	require.Len(t, out.TagSet, 2)
	assert.Equal(t, "team", *out.TagSet[0].Key)
	assert.Equal(t, "cold", *out.TagSet[1].Value)
	assert.Equal(t, "v-7", *out.VersionId)
	assert.Equal(t, "s3-req", out.ResultMetadata.RequestID)

	req := (*seen)[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/photos/2024/summer/beach.jpg", req.Path)
	assert.True(t, req.Query.Has("tagging"))
	assert.Equal(t, "v-7", req.Query.Get("versionId"))
	assert.Equal(t, "111122223333", req.Header.Get("X-Amz-Expected-Bucket-Owner"))
	assert.Equal(t, "s3.us-west-2.amazonaws.com", req.URL().Host)
	assert.Empty(t, req.Body)
}

func TestPutObjectTagging_BodyRoundTrip(t *testing.T) {
	c, seen := newTestClient(t, stubResponse{status: 200})

	tags := []Tag{
		{Key: ptr.String("team"), Value: ptr.String("a & b")},
		{Key: ptr.String("empty"), Value: ptr.String("")},
	}
	_, err := c.PutObjectTagging(context.Background(), &PutObjectTaggingInput{
		Bucket: ptr.String("photos"),
		Key:    ptr.String("cat.jpg"),
		TagSet: tags,
	})
	require.NoError(t, err)

	req := (*seen)[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "application/xml", req.Header.Get("Content-Type"))
	assert.Contains(t, string(req.Body), `<Tagging xmlns="http://s3.amazonaws.com/doc/2006-03-01/">`)

	got, err := deserializeOpGetObjectTagging(context.Background(), &wire.Response{StatusCode: 200, Header: http.Header{}, Body: req.Body})
	require.NoError(t, err)
	require.Len(t, got.TagSet, 2)
	assert.Equal(t, "a & b", *got.TagSet[0].Value)
	assert.Equal(t, "empty", *got.TagSet[1].Key)
	assert.Nil(t, got.VersionId)
}

func TestPutObjectTagging_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *PutObjectTaggingInput
	}{
		{
			name:  "missing bucket",
			input: &PutObjectTaggingInput{Key: ptr.String("k")},
		},
		{
			name:  "missing key",
			input: &PutObjectTaggingInput{Bucket: ptr.String("b")},
		},
		{
			name: "tag without key",
			input: &PutObjectTaggingInput{
				Bucket: ptr.String("b"),
				Key:    ptr.String("k"),
				TagSet: []Tag{{Value: ptr.String("v")}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, seen := newTestClient(t, stubResponse{status: 200})
			_, err := c.PutObjectTagging(context.Background(), tt.input)

			var serErr *smithy.SerializationError
			assert.True(t, errors.As(err, &serErr))
			assert.Empty(t, *seen)
		})
	}
}

func TestGetObjectTagging_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "no such key",
			status: 404,
			body:   `<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message><Key>cat.jpg</Key><RequestId>req-404</RequestId></Error>`,
			check: func(t *testing.T, err error) {
				var notFound *NoSuchKey
				require.True(t, errors.As(err, &notFound))
				assert.Equal(t, "cat.jpg", notFound.Key)
				assert.Equal(t, "req-404", notFound.ErrorMetadata().RequestID)
			},
		},
		{
			name:   "no such bucket",
			status: 404,
			body:   `<Error><Code>NoSuchBucket</Code><Message>The specified bucket does not exist</Message><BucketName>photos</BucketName></Error>`,
			check: func(t *testing.T, err error) {
				var missing *NoSuchBucket
				require.True(t, errors.As(err, &missing))
				assert.Equal(t, "photos", missing.BucketName)
			},
		},
		{
			name:   "empty body",
			status: 403,
			check: func(t *testing.T, err error) {
				var apiErr smithy.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, smithy.FaultClient, apiErr.ErrorFault())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, stubResponse{status: tt.status, body: tt.body})
			_, err := c.GetObjectTagging(context.Background(), &GetObjectTaggingInput{
				Bucket: ptr.String("photos"),
				Key:    ptr.String("cat.jpg"),
			})
			var opErr *smithy.OperationError
			require.True(t, errors.As(err, &opErr))
			assert.Equal(t, "GetObjectTagging", opErr.OperationName)
			tt.check(t, err)
		})
	}
}
