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
	"fmt"
	"net/http"

	"github.com/aws/smithy-go/encoding/httpbinding"
	smithyjson "github.com/aws/smithy-go/encoding/json"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol/restjson"
	"github.com/tombee/awsclient/pkg/wire"
)

func serializeOpGetWidget(ctx context.Context, input *GetWidgetInput, req *wire.Request) error {
	if input == nil {
		return fmt.Errorf("unexpected nil input")
	}
	return restjson.Bind(req, http.MethodGet, "/widgets/{Id}", func(enc *httpbinding.Encoder) error {
		return bindWidgetID(enc, input.Id)
	})
}

func serializeOpDeleteWidget(ctx context.Context, input *DeleteWidgetInput, req *wire.Request) error {
	if input == nil {
		return fmt.Errorf("unexpected nil input")
	}
	return restjson.Bind(req, http.MethodDelete, "/widgets/{Id}", func(enc *httpbinding.Encoder) error {
		return bindWidgetID(enc, input.Id)
	})
}

func bindWidgetID(enc *httpbinding.Encoder, id *string) error {
	if id == nil || len(*id) == 0 {
		return &awserrors.ValidationError{Field: "Id", Message: "input member Id must not be empty"}
	}
	return enc.SetURI("Id").String(*id)
}

func serializeOpCreateWidget(ctx context.Context, input *CreateWidgetInput, req *wire.Request) error {
	if input == nil {
		return fmt.Errorf("unexpected nil input")
	}
	if input.Name == nil || len(*input.Name) == 0 {
		return &awserrors.ValidationError{Field: "Name", Message: "input member Name must not be empty"}
	}
	if err := restjson.Bind(req, http.MethodPost, "/widgets", nil); err != nil {
		return err
	}

	enc := smithyjson.NewEncoder()
	serializeOpDocumentCreateWidgetInput(input, enc.Value)
	restjson.SetPayload(req, enc)
	return nil
}

func serializeOpDocumentCreateWidgetInput(v *CreateWidgetInput, value smithyjson.Value) {
	object := value.Object()
	defer object.Close()

	if v.ClientToken != nil {
		object.Key("ClientToken").String(*v.ClientToken)
	}
	if v.Name != nil {
		object.Key("Name").String(*v.Name)
	}
	if v.Secret != nil {
		object.Key("Secret").String(*v.Secret)
	}
	if v.Tags != nil {
		serializeDocumentTagMap(v.Tags, object.Key("Tags"))
	}
}

func serializeDocumentTagMap(v map[string]string, value smithyjson.Value) {
	object := value.Object()
	defer object.Close()

	for key := range v {
		object.Key(key).String(v[key])
	}
}

func serializeOpListWidgets(ctx context.Context, input *ListWidgetsInput, req *wire.Request) error {
	if input == nil {
		return fmt.Errorf("unexpected nil input")
	}
	return restjson.Bind(req, http.MethodGet, "/widgets", func(enc *httpbinding.Encoder) error {
		if input.MaxResults != nil {
			enc.SetQuery("maxResults").Integer(*input.MaxResults)
		}
		if input.NextToken != nil {
			enc.SetQuery("nextToken").String(*input.NextToken)
		}
		if len(input.Status) > 0 {
			enc.SetQuery("status").String(string(input.Status))
		}
		return nil
	})
}
