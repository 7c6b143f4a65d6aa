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

package widgets

import (
	"context"

	"github.com/tombee/awsclient/pkg/client"
	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol/restjson"
	"github.com/tombee/awsclient/pkg/serde"
)

// DeleteWidgetInput identifies the widget to delete.
type DeleteWidgetInput struct {
	// Id is the widget id. Required.
	Id *string
}

// DeleteWidgetOutput is empty; the service answers 204.
type DeleteWidgetOutput struct {
	ResultMetadata awserrors.ResponseMetadata
}

func (o *DeleteWidgetOutput) SetResponseMetadata(m awserrors.ResponseMetadata) { o.ResultMetadata = m }

var deleteWidgetPlugin = serde.Plugin[*DeleteWidgetInput, *DeleteWidgetOutput]{
	Operation:        "DeleteWidget",
	Serialize:        serializeOpDeleteWidget,
	Deserialize:      deserializeOpDeleteWidget,
	DeserializeError: restjson.ErrorDeserializer(errorTable),
}

// NewDeleteWidgetCommand returns a DeleteWidget command for params.
func NewDeleteWidgetCommand(params *DeleteWidgetInput, opts ...client.CommandOption) *client.Command[*DeleteWidgetInput, *DeleteWidgetOutput] {
	return client.NewCommand(params, deleteWidgetPlugin, opts...)
}

// DeleteWidget deletes a widget.
func (c *Client) DeleteWidget(ctx context.Context, params *DeleteWidgetInput, optFns ...func(*client.CallOptions)) (*DeleteWidgetOutput, error) {
	if params == nil {
		params = &DeleteWidgetInput{}
	}
	return client.Send(ctx, c.runtime, NewDeleteWidgetCommand(params), optFns...)
}
