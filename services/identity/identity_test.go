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

package identity

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/awsclient/pkg/client"
	"github.com/tombee/awsclient/pkg/protocol/query"
	"github.com/tombee/awsclient/pkg/redact"
	"github.com/tombee/awsclient/pkg/transport"
	"github.com/tombee/awsclient/pkg/wire"
)

func newTestClient(t *testing.T, respond func(req *wire.Request) *wire.Response) (*Client, *[]*wire.Request) {
	t.Helper()
	var seen []*wire.Request
	c, err := New(client.Config{
		Region: "us-east-1",
		RequestHandler: transport.RequestHandlerFunc(func(ctx context.Context, req *wire.Request) (*wire.Response, error) {
			seen = append(seen, req)
			return respond(req), nil
		}),
	})
	require.NoError(t, err)
	return c, &seen
}

func xmlReply(status int, body string) *wire.Response {
	h := http.Header{}
	h.Set("Content-Type", "text/xml")
	return &wire.Response{StatusCode: status, Header: h, Body: []byte(body)}
}

func TestGetCallerIdentity(t *testing.T) {
	c, seen := newTestClient(t, func(*wire.Request) *wire.Response {
		return xmlReply(200, `<GetCallerIdentityResponse xmlns="https://sts.amazonaws.com/doc/2011-06-15/">
  <GetCallerIdentityResult>
    <Arn>arn:aws:iam::123456789012:user/alice</Arn>
    <UserId>AIDACKCEVSQ6C2EXAMPLE</UserId>
    <Account>123456789012</Account>
  </GetCallerIdentityResult>
  <ResponseMetadata><RequestId>01234567-89ab</RequestId></ResponseMetadata>
</GetCallerIdentityResponse>`)
	})

	out, err := c.GetCallerIdentity(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", *out.Account)
	assert.Equal(t, "arn:aws:iam::123456789012:user/alice", *out.Arn)

	req := (*seen)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, query.ContentType, req.Header.Get("Content-Type"))
	assert.Equal(t, "Action=GetCallerIdentity&Version=2011-06-15", string(req.Body))
	assert.Equal(t, "https://sts.us-east-1.amazonaws.com/", req.URL().String())
}

func TestGetSessionToken(t *testing.T) {
	c, seen := newTestClient(t, func(*wire.Request) *wire.Response {
		return xmlReply(200, `<GetSessionTokenResponse>
  <GetSessionTokenResult>
    <Credentials>
      <AccessKeyId>ASIAEXAMPLE</AccessKeyId>
      <SecretAccessKey>wJalrXUtnFEMI/K7MDENG/bPxRfiCYzEXAMPLEKEY</SecretAccessKey>
      <SessionToken>AQoEXAMPLEH4aoAH0gNCAPyJxz4BlCFFxWNE1OPTgk5TthT</SessionToken>
      <Expiration>2025-07-11T19:55:29.611Z</Expiration>
    </Credentials>
  </GetSessionTokenResult>
  <ResponseMetadata><RequestId>58c5dbae</RequestId></ResponseMetadata>
</GetSessionTokenResponse>`)
	})

	out, err := c.GetSessionToken(context.Background(), &GetSessionTokenInput{
		DurationSeconds: ptr.Int32(3600),
		SerialNumber:    ptr.String("arn:aws:iam::123456789012:mfa/alice"),
		TokenCode:       ptr.String("123456"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Credentials)
	assert.Equal(t, "ASIAEXAMPLE", *out.Credentials.AccessKeyId)
	assert.True(t, out.Credentials.Expiration.Equal(time.Date(2025, 7, 11, 19, 55, 29, 611e6, time.UTC)))

	form, err := url.ParseQuery(string((*seen)[0].Body))
	require.NoError(t, err)
	assert.Equal(t, "GetSessionToken", form.Get("Action"))
	assert.Equal(t, "3600", form.Get("DurationSeconds"))
	assert.Equal(t, "123456", form.Get("TokenCode"))

	redacted := redact.Value(out).(*GetSessionTokenOutput)
	assert.Equal(t, redact.SensitiveString, *redacted.Credentials.SecretAccessKey)
	assert.Equal(t, redact.SensitiveString, *redacted.Credentials.SessionToken)
	assert.Equal(t, "ASIAEXAMPLE", *redacted.Credentials.AccessKeyId)
	assert.NotEqual(t, redact.SensitiveString, *out.Credentials.SecretAccessKey)
}

func TestGetSessionToken_DurationOutOfRange(t *testing.T) {
	c, seen := newTestClient(t, func(*wire.Request) *wire.Response { return xmlReply(200, "") })

	_, err := c.GetSessionToken(context.Background(), &GetSessionTokenInput{DurationSeconds: ptr.Int32(60)})
	var serErr *smithy.SerializationError
	assert.True(t, errors.As(err, &serErr))
	assert.Empty(t, *seen)
}

func TestGetCallerIdentity_ExpiredToken(t *testing.T) {
	c, _ := newTestClient(t, func(*wire.Request) *wire.Response {
		return xmlReply(403, `<ErrorResponse xmlns="https://sts.amazonaws.com/doc/2011-06-15/">
  <Error>
    <Type>Sender</Type>
    <Code>ExpiredTokenException</Code>
    <Message>The security token included in the request is expired</Message>
  </Error>
  <RequestId>err-req-1</RequestId>
</ErrorResponse>`)
	})

	_, err := c.GetCallerIdentity(context.Background(), &GetCallerIdentityInput{})
	var expired *ExpiredTokenException
	require.True(t, errors.As(err, &expired))
	assert.Equal(t, "The security token included in the request is expired", expired.ErrorMessage())
	assert.Equal(t, "err-req-1", expired.ErrorMetadata().RequestID)
	assert.Equal(t, smithy.FaultClient, expired.ErrorFault())
}

func TestGetCallerIdentity_MissingResult(t *testing.T) {
	c, _ := newTestClient(t, func(*wire.Request) *wire.Response {
		return xmlReply(200, `<GetCallerIdentityResponse></GetCallerIdentityResponse>`)
	})

	_, err := c.GetCallerIdentity(context.Background(), nil)
	var deserErr *smithy.DeserializationError
	assert.True(t, errors.As(err, &deserErr))
}
