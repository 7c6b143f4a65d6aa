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
	"github.com/tombee/awsclient/pkg/redact"
	"github.com/tombee/awsclient/pkg/serde"
)

// CreateWidgetInput describes a new widget.
type CreateWidgetInput struct {
	// Name is the widget name. Required.
	Name *string

	// Secret is stored with the widget and never returned. Sensitive.
	Secret *string

	Tags map[string]string

	// ClientToken makes the request idempotent.
	ClientToken *string
}

// Redacted returns a copy with sensitive members masked.
func (in *CreateWidgetInput) Redacted() any {
	cp := *in
	cp.Secret = redact.String(in.Secret)
	return &cp
}

// CreateWidgetOutput describes the created widget.
type CreateWidgetOutput struct {
	Id        *string
	Name      *string
	Status    WidgetStatus
	CreatedAt *time.Time
	Tags      map[string]string

	ResultMetadata awserrors.ResponseMetadata
}

func (o *CreateWidgetOutput) SetResponseMetadata(m awserrors.ResponseMetadata) { o.ResultMetadata = m }

var createWidgetPlugin = serde.Plugin[*CreateWidgetInput, *CreateWidgetOutput]{
	Operation:        "CreateWidget",
	Serialize:        serializeOpCreateWidget,
	Deserialize:      deserializeOpCreateWidget,
	DeserializeError: restjson.ErrorDeserializer(errorTable),
}

// NewCreateWidgetCommand returns a CreateWidget command for params.
func NewCreateWidgetCommand(params *CreateWidgetInput, opts ...client.CommandOption) *client.Command[*CreateWidgetInput, *CreateWidgetOutput] {
	return client.NewCommand(params, createWidgetPlugin, opts...)
}

// CreateWidget creates a widget. The widget starts in the CREATING status; use
// the WidgetActive waiter to wait for it to become usable.
func (c *Client) CreateWidget(ctx context.Context, params *CreateWidgetInput, optFns ...func(*client.CallOptions)) (*CreateWidgetOutput, error) {
	if params == nil {
		params = &CreateWidgetInput{}
	}
	return client.Send(ctx, c.runtime, NewCreateWidgetCommand(params), optFns...)
}
