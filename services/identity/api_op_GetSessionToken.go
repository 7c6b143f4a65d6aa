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

	"github.com/tombee/awsclient/pkg/client"
	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol/query"
	"github.com/tombee/awsclient/pkg/redact"
	"github.com/tombee/awsclient/pkg/serde"
)

// GetSessionTokenInput requests temporary credentials.
type GetSessionTokenInput struct {
	// DurationSeconds is the credential lifetime, 900 to 129600 seconds.
	DurationSeconds *int32

	// SerialNumber identifies the MFA device.
	SerialNumber *string

	// TokenCode is the current MFA code.
	TokenCode *string
}

// GetSessionTokenOutput holds the issued credentials.
type GetSessionTokenOutput struct {
	Credentials *Credentials

	ResultMetadata awserrors.ResponseMetadata
}

func (o *GetSessionTokenOutput) SetResponseMetadata(m awserrors.ResponseMetadata) {
	o.ResultMetadata = m
}

// Redacted returns a copy with the credential secrets masked.
func (o *GetSessionTokenOutput) Redacted() any {
	cp := *o
	if o.Credentials != nil {
		cp.Credentials = o.Credentials.Redacted().(*Credentials)
	}
	return &cp
}

var getSessionTokenPlugin = serde.Plugin[*GetSessionTokenInput, *GetSessionTokenOutput]{
	Operation:        "GetSessionToken",
	Serialize:        serializeOpGetSessionToken,
	Deserialize:      deserializeOpGetSessionToken,
	DeserializeError: query.ErrorDeserializer(errorTable),
}

// NewGetSessionTokenCommand returns a GetSessionToken command for params.
func NewGetSessionTokenCommand(params *GetSessionTokenInput, opts ...client.CommandOption) *client.Command[*GetSessionTokenInput, *GetSessionTokenOutput] {
	return client.NewCommand(params, getSessionTokenPlugin, opts...)
}

// GetSessionToken issues temporary credentials for the caller.
func (c *Client) GetSessionToken(ctx context.Context, params *GetSessionTokenInput, optFns ...func(*client.CallOptions)) (*GetSessionTokenOutput, error) {
	if params == nil {
		params = &GetSessionTokenInput{}
	}
	return client.Send(ctx, c.runtime, NewGetSessionTokenCommand(params), optFns...)
}

var _ redact.Redactable = (*GetSessionTokenOutput)(nil)
