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

package compute

import (
	"context"
	"fmt"

	awsquery "github.com/aws/aws-sdk-go-v2/aws/protocol/query"

	"github.com/tombee/awsclient/pkg/client"
	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol/ec2query"
	"github.com/tombee/awsclient/pkg/serde"
	"github.com/tombee/awsclient/pkg/wire"
)

// DescribeRegionsInput selects regions to describe.
type DescribeRegionsInput struct {
	// RegionNames limits the result to these regions.
	RegionNames []string

	// Filters narrow the result, e.g. opt-in-status.
	Filters []Filter

	// AllRegions includes regions not enabled for the account.
	AllRegions *bool

	// DryRun checks permissions without describing anything.
	DryRun *bool
}

// DescribeRegionsOutput lists regions.
type DescribeRegionsOutput struct {
	Regions []Region

	ResultMetadata awserrors.ResponseMetadata
}

func (o *DescribeRegionsOutput) SetResponseMetadata(m awserrors.ResponseMetadata) {
	o.ResultMetadata = m
}

var describeRegionsPlugin = serde.Plugin[*DescribeRegionsInput, *DescribeRegionsOutput]{
	Operation:        "DescribeRegions",
	Serialize:        serializeOpDescribeRegions,
	Deserialize:      deserializeOpDescribeRegions,
	DeserializeError: ec2query.ErrorDeserializer(errorTable),
}

// NewDescribeRegionsCommand returns a DescribeRegions command for params.
func NewDescribeRegionsCommand(params *DescribeRegionsInput, opts ...client.CommandOption) *client.Command[*DescribeRegionsInput, *DescribeRegionsOutput] {
	return client.NewCommand(params, describeRegionsPlugin, opts...)
}

// DescribeRegions lists the regions available to the account.
func (c *Client) DescribeRegions(ctx context.Context, params *DescribeRegionsInput, optFns ...func(*client.CallOptions)) (*DescribeRegionsOutput, error) {
	if params == nil {
		params = &DescribeRegionsInput{}
	}
	return client.Send(ctx, c.runtime, NewDescribeRegionsCommand(params), optFns...)
}

func serializeOpDescribeRegions(ctx context.Context, input *DescribeRegionsInput, req *wire.Request) error {
	if input == nil {
		return fmt.Errorf("unexpected nil input")
	}
	for i, f := range input.Filters {
		if f.Name == nil || len(*f.Name) == 0 {
			return &awserrors.ValidationError{Field: fmt.Sprintf("Filters[%d].Name", i), Message: "filter name must not be empty"}
		}
	}

	form := ec2query.NewForm("DescribeRegions", apiVersion)
	object := form.Object()
	if input.AllRegions != nil {
		object.Key("AllRegions").Boolean(*input.AllRegions)
	}
	if input.DryRun != nil {
		object.Key("DryRun").Boolean(*input.DryRun)
	}
	if input.Filters != nil {
		array := object.FlatKey("Filter").Array("Filter")
		for i := range input.Filters {
			serializeDocumentFilter(&input.Filters[i], array.Value())
		}
	}
	if input.RegionNames != nil {
		serializeDocumentStringList(input.RegionNames, object.FlatKey("RegionName"))
	}
	return form.Apply(req)
}

func serializeDocumentFilter(v *Filter, value awsquery.Value) {
	object := value.Object()
	if v.Name != nil {
		object.Key("Name").String(*v.Name)
	}
	if v.Values != nil {
		serializeDocumentStringList(v.Values, object.FlatKey("Value"))
	}
}

func serializeDocumentStringList(v []string, value awsquery.Value) {
	array := value.Array("item")
	for i := range v {
		array.Value().String(v[i])
	}
}

type describeRegionsResponse struct {
	RequestID string `xml:"requestId"`
	Regions   []struct {
		RegionName  *string `xml:"regionName"`
		Endpoint    *string `xml:"regionEndpoint"`
		OptInStatus *string `xml:"optInStatus"`
	} `xml:"regionInfo>item"`
}

func deserializeOpDescribeRegions(ctx context.Context, resp *wire.Response) (*DescribeRegionsOutput, error) {
	var result describeRegionsResponse
	if err := ec2query.DecodeResponse(resp.Body, "DescribeRegions", &result); err != nil {
		return nil, err
	}

	out := &DescribeRegionsOutput{Regions: make([]Region, 0, len(result.Regions))}
	for _, r := range result.Regions {
		out.Regions = append(out.Regions, Region{
			RegionName:  r.RegionName,
			Endpoint:    r.Endpoint,
			OptInStatus: r.OptInStatus,
		})
	}
	return out, nil
}
