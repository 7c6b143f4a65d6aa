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
	"fmt"

	"github.com/tombee/awsclient/pkg/client"
	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol/query"
	"github.com/tombee/awsclient/pkg/serde"
	"github.com/tombee/awsclient/pkg/wire"
)

// GetCallerIdentityInput has no members.
type GetCallerIdentityInput struct{}

// GetCallerIdentityOutput identifies the caller.
type GetCallerIdentityOutput struct {
	UserId  *string
	Account *string
	Arn     *string

	ResultMetadata awserrors.ResponseMetadata
}

func (o *GetCallerIdentityOutput) SetResponseMetadata(m awserrors.ResponseMetadata) {
	o.ResultMetadata = m
}

var getCallerIdentityPlugin = serde.Plugin[*GetCallerIdentityInput, *GetCallerIdentityOutput]{
	Operation: "GetCallerIdentity",
	Serialize: func(ctx context.Context, input *GetCallerIdentityInput, req *wire.Request) error {
		if input == nil {
			return fmt.Errorf("unexpected nil input")
		}
		return query.NewForm("GetCallerIdentity", apiVersion).Apply(req)
	},
	Deserialize:      deserializeOpGetCallerIdentity,
	DeserializeError: query.ErrorDeserializer(errorTable),
}

// NewGetCallerIdentityCommand returns a GetCallerIdentity command.
func NewGetCallerIdentityCommand(params *GetCallerIdentityInput, opts ...client.CommandOption) *client.Command[*GetCallerIdentityInput, *GetCallerIdentityOutput] {
	return client.NewCommand(params, getCallerIdentityPlugin, opts...)
}

// GetCallerIdentity returns the account and principal whose credentials signed
// the request.
func (c *Client) GetCallerIdentity(ctx context.Context, params *GetCallerIdentityInput, optFns ...func(*client.CallOptions)) (*GetCallerIdentityOutput, error) {
	if params == nil {
		params = &GetCallerIdentityInput{}
	}
	return client.Send(ctx, c.runtime, NewGetCallerIdentityCommand(params), optFns...)
}
