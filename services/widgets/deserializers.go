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

	"github.com/tombee/awsclient/pkg/protocol"
	"github.com/tombee/awsclient/pkg/wire"
)

func deserializeOpGetWidget(ctx context.Context, resp *wire.Response) (*GetWidgetOutput, error) {
	doc, err := protocol.DecodeDocument(resp.Body)
	if err != nil {
		return nil, err
	}
	var w Widget
	if err := deserializeDocumentWidget(&w, doc); err != nil {
		return nil, err
	}
	return &GetWidgetOutput{
		Id:        w.Id,
		Name:      w.Name,
		Status:    w.Status,
		CreatedAt: w.CreatedAt,
		Tags:      w.Tags,
	}, nil
}

func deserializeOpCreateWidget(ctx context.Context, resp *wire.Response) (*CreateWidgetOutput, error) {
	doc, err := protocol.DecodeDocument(resp.Body)
	if err != nil {
		return nil, err
	}
	var w Widget
	if err := deserializeDocumentWidget(&w, doc); err != nil {
		return nil, err
	}
	return &CreateWidgetOutput{
		Id:        w.Id,
		Name:      w.Name,
		Status:    w.Status,
		CreatedAt: w.CreatedAt,
		Tags:      w.Tags,
	}, nil
}

func deserializeOpDeleteWidget(ctx context.Context, resp *wire.Response) (*DeleteWidgetOutput, error) {
	return &DeleteWidgetOutput{}, nil
}

func deserializeOpListWidgets(ctx context.Context, resp *wire.Response) (*ListWidgetsOutput, error) {
	doc, err := protocol.DecodeDocument(resp.Body)
	if err != nil {
		return nil, err
	}

	out := &ListWidgetsOutput{}
	for key, value := range doc {
		switch key {
		case "NextToken":
			if out.NextToken, err = protocol.ExpectString(value); err != nil {
				return nil, fmt.Errorf("NextToken: %w", err)
			}
		case "Widgets":
			items, err := protocol.ExpectArray(value)
			if err != nil {
				return nil, fmt.Errorf("Widgets: %w", err)
			}
			out.Widgets = make([]Widget, 0, len(items))
			for i, item := range items {
				obj, err := protocol.ExpectObject(item)
				if err != nil {
					return nil, fmt.Errorf("Widgets[%d]: %w", i, err)
				}
				var w Widget
				if err := deserializeDocumentWidget(&w, obj); err != nil {
					return nil, fmt.Errorf("Widgets[%d]: %w", i, err)
				}
				out.Widgets = append(out.Widgets, w)
			}
		}
	}
	return out, nil
}

func deserializeDocumentWidget(v *Widget, doc map[string]any) error {
	var err error
	for key, value := range doc {
		switch key {
		case "Id":
			v.Id, err = protocol.ExpectString(value)
		case "Name":
			v.Name, err = protocol.ExpectString(value)
		case "Status":
			var s *string
			if s, err = protocol.ExpectString(value); s != nil {
				v.Status = WidgetStatus(*s)
			}
		case "CreatedAt":
			v.CreatedAt, err = protocol.ExpectEpochSeconds(value)
		case "Tags":
			v.Tags, err = deserializeDocumentTagMap(value)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func deserializeDocumentTagMap(value any) (map[string]string, error) {
	obj, err := protocol.ExpectObject(value)
	if err != nil || obj == nil {
		return nil, err
	}
	tags := make(map[string]string, len(obj))
	for key, raw := range obj {
		s, err := protocol.ExpectString(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if s != nil {
			tags[key] = *s
		}
	}
	return tags, nil
}
