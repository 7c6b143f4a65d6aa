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
	"time"

	"github.com/tombee/awsclient/pkg/client"
	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol/restjson"
	"github.com/tombee/awsclient/pkg/serde"
)

// GetWidgetInput identifies the widget to describe.
type GetWidgetInput struct {
	// Id is the widget id. Required.
	Id *string
}

// GetWidgetOutput describes a widget.
type GetWidgetOutput struct {
	Id        *string
	Name      *string
	Status    WidgetStatus
	CreatedAt *time.Time
	Tags      map[string]string

	ResultMetadata awserrors.ResponseMetadata
}

func (o *GetWidgetOutput) SetResponseMetadata(m awserrors.ResponseMetadata) { o.ResultMetadata = m }

var getWidgetPlugin = serde.Plugin[*GetWidgetInput, *GetWidgetOutput]{
	Operation:        "GetWidget",
	Serialize:        serializeOpGetWidget,
	Deserialize:      deserializeOpGetWidget,
	DeserializeError: restjson.ErrorDeserializer(errorTable),
}

// NewGetWidgetCommand returns a GetWidget command for params.
func NewGetWidgetCommand(params *GetWidgetInput, opts ...client.CommandOption) *client.Command[*GetWidgetInput, *GetWidgetOutput] {
	return client.NewCommand(params, getWidgetPlugin, opts...)
}

// GetWidget describes a widget.
func (c *Client) GetWidget(ctx context.Context, params *GetWidgetInput, optFns ...func(*client.CallOptions)) (*GetWidgetOutput, error) {
	if params == nil {
		params = &GetWidgetInput{}
	}
	return client.Send(ctx, c.runtime, NewGetWidgetCommand(params), optFns...)
}
