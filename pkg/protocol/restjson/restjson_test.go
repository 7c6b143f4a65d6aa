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

package restjson

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/encoding/httpbinding"
	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/wire"
)

func TestBind(t *testing.T) {
	req := wire.NewRequest()
	req.Endpoint = wire.Endpoint{Scheme: "https", Host: "widgets.us-east-1.amazonaws.com"}

	err := Bind(req, http.MethodGet, "/widgets/{Id}", func(enc *httpbinding.Encoder) error {
		if err := enc.SetURI("Id").String("a b/c"); err != nil {
			return err
		}
		enc.SetQuery("maxResults").Integer(10)
		enc.SetHeader("X-Widget-Tag").String("blue")
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/widgets/a b/c", req.Path)
	assert.Equal(t, "/widgets/a%20b%2Fc", req.RawPath)
	assert.Equal(t, "10", req.Query.Get("maxResults"))
	assert.Equal(t, "blue", req.Header.Get("X-Widget-Tag"))
	assert.Nil(t, req.Body)
	assert.Equal(t, "https://widgets.us-east-1.amazonaws.com/widgets/a%20b%2Fc?maxResults=10", req.URL().String())
}

func TestBind_GreedyLabelAndLiteralQuery(t *testing.T) {
	req := wire.NewRequest()
	err := Bind(req, http.MethodGet, "/{Bucket}/{Key+}?tagging", func(enc *httpbinding.Encoder) error {
		if err := enc.SetURI("Bucket").String("photos"); err != nil {
			return err
		}
		return enc.SetURI("Key").String("2025/jan/cat.png")
	})
	require.NoError(t, err)

	assert.Equal(t, "/photos/2025/jan/cat.png", req.Path)
	assert.True(t, req.Query.Has("tagging"))
}

func TestSetPayload(t *testing.T) {
	req := wire.NewRequest()
	enc := smithyjson.NewEncoder()
	obj := enc.Value.Object()
	obj.Key("Name").String("foo")
	obj.Close()

	SetPayload(req, enc)
	assert.JSONEq(t, `{"Name":"foo"}`, string(req.Body))
	assert.Equal(t, ContentType, req.Header.Get("Content-Type"))
}

type notFound struct {
	awserrors.ErrorBase
}

func (e *notFound) Error() string                 { return awserrors.FormatError(e) }
func (e *notFound) ErrorCode() string             { return "NotFoundException" }
func (e *notFound) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func TestErrorDeserializer(t *testing.T) {
	table := awserrors.ErrorTable{
		"NotFoundException": func(resp *wire.Response, info awserrors.ErrorInfo) error {
			return &notFound{ErrorBase: awserrors.ErrorBase{Message: info.Message}}
		},
	}
	decode := ErrorDeserializer(table)

	resp := &wire.Response{
		StatusCode: 404,
		Header:     http.Header{"X-Amzn-Errortype": []string{"NotFoundException:http://internal/"}},
		Body:       []byte(`{"message":"no widget"}`),
	}
	err := decode(context.Background(), resp)

	var nf *notFound
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "no widget", nf.ErrorMessage())
	assert.Equal(t, 404, nf.ErrorMetadata().HTTPStatusCode)

	resp.Header = http.Header{}
	resp.Body = []byte(`{"__type":"InternalFailure"}`)
	resp.StatusCode = 500
	var generic *awserrors.GenericError
	require.True(t, errors.As(decode(context.Background(), resp), &generic))
	assert.Equal(t, "InternalFailure", generic.ErrorCode())
	assert.Equal(t, smithy.FaultServer, generic.ErrorFault())
}
