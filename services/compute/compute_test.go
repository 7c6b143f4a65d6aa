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

package compute

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/awsclient/pkg/client"
	"github.com/tombee/awsclient/pkg/transport"
	"github.com/tombee/awsclient/pkg/wire"
)

const regionsBody = `<DescribeRegionsResponse xmlns="http://ec2.amazonaws.com/doc/2016-11-15/">
  <requestId>59dbff89-35bd-4eac-99ed-be587EXAMPLE</requestId>
  <regionInfo>
    <item>
      <regionName>us-east-1</regionName>
      <regionEndpoint>ec2.us-east-1.amazonaws.com</regionEndpoint>
      <optInStatus>opt-in-not-required</optInStatus>
    </item>
    <item>
      <regionName>eu-west-1</regionName>
      <regionEndpoint>ec2.eu-west-1.amazonaws.com</regionEndpoint>
      <optInStatus>opt-in-not-required</optInStatus>
    </item>
  </regionInfo>
</DescribeRegionsResponse>`

func newTestClient(t *testing.T, status int, body string) (*Client, *[]*wire.Request) {
	t.Helper()
	var seen []*wire.Request
	c, err := New(client.Config{
		Region: "us-east-1",
		RequestHandler: transport.RequestHandlerFunc(func(ctx context.Context, req *wire.Request) (*wire.Response, error) {
			seen = append(seen, req)
			return &wire.Response{StatusCode: status, Header: http.Header{}, Body: []byte(body)}, nil
		}),
	})
	require.NoError(t, err)
	return c, &seen
}

func TestDescribeRegions(t *testing.T) {
	c, seen := newTestClient(t, 200, regionsBody)

	out, err := c.DescribeRegions(context.Background(), &DescribeRegionsInput{
		RegionNames: []string{"us-east-1", "eu-west-1"},
		Filters: []Filter{
			{Name: ptr.String("opt-in-status"), Values: []string{"opt-in-not-required", "opted-in"}},
		},
		AllRegions: ptr.Bool(true),
	})
	require.NoError(t, err)
	require.Len(t, out.Regions, 2)
	assert.Equal(t, "us-east-1", *out.Regions[0].RegionName)
	assert.Equal(t, "ec2.eu-west-1.amazonaws.com", *out.Regions[1].Endpoint)

	req := (*seen)[0]
	assert.Equal(t, "https://ec2.us-east-1.amazonaws.com/", req.URL().String())
	form, err := url.ParseQuery(string(req.Body))
	require.NoError(t, err)
	assert.Equal(t, "DescribeRegions", form.Get("Action"))
	assert.Equal(t, "2016-11-15", form.Get("Version"))
	assert.Equal(t, "true", form.Get("AllRegions"))
	assert.Equal(t, "us-east-1", form.Get("RegionName.1"))
	assert.Equal(t, "eu-west-1", form.Get("RegionName.2"))
	assert.Equal(t, "opt-in-status", form.Get("Filter.1.Name"))
	assert.Equal(t, "opt-in-not-required", form.Get("Filter.1.Value.1"))
	assert.Equal(t, "opted-in", form.Get("Filter.1.Value.2"))
}

func TestDescribeRegions_Empty(t *testing.T) {
	c, _ := newTestClient(t, 200, `<DescribeRegionsResponse><requestId>r</requestId><regionInfo/></DescribeRegionsResponse>`)

	out, err := c.DescribeRegions(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out.Regions)
}

func TestDescribeRegions_Unauthorized(t *testing.T) {
	c, _ := newTestClient(t, 403, `<Response><Errors><Error><Code>UnauthorizedOperation</Code><Message>You are not authorized to perform this operation.</Message></Error></Errors><RequestID>req-403</RequestID></Response>`)

	_, err := c.DescribeRegions(context.Background(), &DescribeRegionsInput{DryRun: ptr.Bool(true)})
	var unauthorized *UnauthorizedOperation
	require.True(t, errors.As(err, &unauthorized))
	assert.Equal(t, "req-403", unauthorized.ErrorMetadata().RequestID)
	assert.Equal(t, 403, unauthorized.ErrorMetadata().HTTPStatusCode)
}

func TestDescribeRegions_FilterWithoutName(t *testing.T) {
	c, seen := newTestClient(t, 200, regionsBody)

	_, err := c.DescribeRegions(context.Background(), &DescribeRegionsInput{Filters: []Filter{{Values: []string{"x"}}}})
	var serErr *smithy.SerializationError
	assert.True(t, errors.As(err, &serErr))
	assert.Empty(t, *seen)
}
