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

package query

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/wire"
)

func TestForm(t *testing.T) {
	form := NewForm("GetSessionToken", "2011-06-15")
	form.Object().Key("DurationSeconds").Integer(900)

	req := wire.NewRequest()
	require.NoError(t, form.Apply(req))

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, ContentType, req.Header.Get("Content-Type"))
	values, err := url.ParseQuery(string(req.Body))
	require.NoError(t, err)
	assert.Equal(t, "GetSessionToken", values.Get("Action"))
	assert.Equal(t, "2011-06-15", values.Get("Version"))
	assert.Equal(t, "900", values.Get("DurationSeconds"))
}

const callerIdentity = `<GetCallerIdentityResponse xmlns="https://sts.amazonaws.com/doc/2011-06-15/">
  <GetCallerIdentityResult>
    <Arn>arn:aws:iam::123456789012:user/alice</Arn>
    <Account>123456789012</Account>
  </GetCallerIdentityResult>
  <ResponseMetadata>
    <RequestId>01234567-89ab-cdef-0123-456789abcdef</RequestId>
  </ResponseMetadata>
</GetCallerIdentityResponse>`

func TestDecodeResult(t *testing.T) {
	var result struct {
		Arn     string `xml:"Arn"`
		Account string `xml:"Account"`
	}
	require.NoError(t, DecodeResult([]byte(callerIdentity), "GetCallerIdentity", &result))
	assert.Equal(t, "123456789012", result.Account)
	assert.Equal(t, "01234567-89ab-cdef-0123-456789abcdef", RequestID([]byte(callerIdentity)))

	assert.Error(t, DecodeResult([]byte(callerIdentity), "GetSessionToken", &result))
	assert.Empty(t, RequestID([]byte("<x/>")))
}

func TestErrorDeserializer(t *testing.T) {
	body := `<ErrorResponse>
  <Error><Type>Sender</Type><Code>ExpiredToken</Code><Message>token expired</Message></Error>
  <RequestId>r-9</RequestId>
</ErrorResponse>`

	err := ErrorDeserializer(awserrors.ErrorTable{})(context.Background(), &wire.Response{
		StatusCode: 403,
		Header:     http.Header{},
		Body:       []byte(body),
	})

	var generic *awserrors.GenericError
	require.True(t, errors.As(err, &generic))
	assert.Equal(t, "ExpiredToken", generic.ErrorCode())
	assert.Equal(t, "token expired", generic.ErrorMessage())
	assert.Equal(t, "r-9", generic.ErrorMetadata().RequestID)
	assert.Equal(t, "Sender", generic.Fields["Type"])
}
