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

	"github.com/tombee/awsclient/pkg/client"
	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol/restjson"
	"github.com/tombee/awsclient/pkg/serde"
)

// ListWidgetsInput pages through widgets.
type ListWidgetsInput struct {
	// MaxResults bounds the page size.
	MaxResults *int32

	// NextToken continues a previous listing.
	NextToken *string

	// Status filters by widget status.
	Status WidgetStatus
}

// ListWidgetsOutput is one page of widgets.
type ListWidgetsOutput struct {
	Widgets   []Widget
	NextToken *string

	ResultMetadata awserrors.ResponseMetadata
}

func (o *ListWidgetsOutput) SetResponseMetadata(m awserrors.ResponseMetadata) { o.ResultMetadata = m }

var listWidgetsPlugin = serde.Plugin[*ListWidgetsInput, *ListWidgetsOutput]{
	Operation:        "ListWidgets",
	Serialize:        serializeOpListWidgets,
	Deserialize:      deserializeOpListWidgets,
	DeserializeError: restjson.ErrorDeserializer(errorTable),
}

// NewListWidgetsCommand returns a ListWidgets command for params.
func NewListWidgetsCommand(params *ListWidgetsInput, opts ...client.CommandOption) *client.Command[*ListWidgetsInput, *ListWidgetsOutput] {
	return client.NewCommand(params, listWidgetsPlugin, opts...)
}

// ListWidgets returns one page of widgets.
func (c *Client) ListWidgets(ctx context.Context, params *ListWidgetsInput, optFns ...func(*client.CallOptions)) (*ListWidgetsOutput, error) {
	if params == nil {
		params = &ListWidgetsInput{}
	}
	return client.Send(ctx, c.runtime, NewListWidgetsCommand(params), optFns...)
}

// ListWidgetsAPIClient is the client a ListWidgetsPaginator pages with.
type ListWidgetsAPIClient interface {
	ListWidgets(context.Context, *ListWidgetsInput, ...func(*client.CallOptions)) (*ListWidgetsOutput, error)
}

var _ ListWidgetsAPIClient = (*Client)(nil)

// ListWidgetsPaginatorOptions configure a ListWidgetsPaginator.
type ListWidgetsPaginatorOptions struct {
	// Limit sets MaxResults on every page request when positive.
	Limit int32

	// StopOnDuplicateToken ends pagination when the service repeats a token.
	StopOnDuplicateToken bool
}

// ListWidgetsPaginator pages through ListWidgets results.
type ListWidgetsPaginator struct {
	options   ListWidgetsPaginatorOptions
	client    ListWidgetsAPIClient
	params    ListWidgetsInput
	nextToken *string
	firstPage bool
}

// NewListWidgetsPaginator returns a paginator starting at params.NextToken.
func NewListWidgetsPaginator(c ListWidgetsAPIClient, params *ListWidgetsInput, optFns ...func(*ListWidgetsPaginatorOptions)) *ListWidgetsPaginator {
	if params == nil {
		params = &ListWidgetsInput{}
	}
	options := ListWidgetsPaginatorOptions{StopOnDuplicateToken: true}
	if params.MaxResults != nil {
		options.Limit = *params.MaxResults
	}
	for _, fn := range optFns {
		fn(&options)
	}
	return &ListWidgetsPaginator{
		options:   options,
		client:    c,
		params:    *params,
		nextToken: params.NextToken,
		firstPage: true,
	}
}

// HasMorePages reports whether another page can be requested.
func (p *ListWidgetsPaginator) HasMorePages() bool {
	return p.firstPage || (p.nextToken != nil && len(*p.nextToken) != 0)
}

// NextPage fetches the next page.
func (p *ListWidgetsPaginator) NextPage(ctx context.Context, optFns ...func(*client.CallOptions)) (*ListWidgetsOutput, error) {
	if !p.HasMorePages() {
		return nil, fmt.Errorf("no more pages available")
	}

	params := p.params
	params.NextToken = p.nextToken
	if p.options.Limit > 0 {
		limit := p.options.Limit
		params.MaxResults = &limit
	}

	out, err := p.client.ListWidgets(ctx, &params, optFns...)
	if err != nil {
		return nil, err
	}
	p.firstPage = false

	prev := p.nextToken
	p.nextToken = out.NextToken
	if p.options.StopOnDuplicateToken && prev != nil && p.nextToken != nil && *prev == *p.nextToken {
		p.nextToken = nil
	}
	return out, nil
}
