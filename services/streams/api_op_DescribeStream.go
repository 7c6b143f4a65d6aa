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

package streams

import (
	"context"

	"github.com/tombee/awsclient/pkg/client"
	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol/awsjson"
	"github.com/tombee/awsclient/pkg/serde"
)

// DescribeStreamInput identifies the stream to describe.
type DescribeStreamInput struct {
	// StreamName is the stream name. Required.
	StreamName *string

	// Limit bounds the number of shards returned.
	Limit *int32

	// ExclusiveStartShardId continues a previous shard listing.
	ExclusiveStartShardId *string
}

// DescribeStreamOutput describes a stream.
type DescribeStreamOutput struct {
	StreamDescription *StreamDescription

	ResultMetadata awserrors.ResponseMetadata
}

func (o *DescribeStreamOutput) SetResponseMetadata(m awserrors.ResponseMetadata) { o.ResultMetadata = m }

var describeStreamPlugin = serde.Plugin[*DescribeStreamInput, *DescribeStreamOutput]{
	Operation:        "DescribeStream",
	Serialize:        serializeOpDescribeStream,
	Deserialize:      deserializeOpDescribeStream,
	DeserializeError: awsjson.ErrorDeserializer(errorTable),
}

// NewDescribeStreamCommand returns a DescribeStream command for params.
func NewDescribeStreamCommand(params *DescribeStreamInput, opts ...client.CommandOption) *client.Command[*DescribeStreamInput, *DescribeStreamOutput] {
	return client.NewCommand(params, describeStreamPlugin, opts...)
}

// DescribeStream describes a stream and a page of its shards.
func (c *Client) DescribeStream(ctx context.Context, params *DescribeStreamInput, optFns ...func(*client.CallOptions)) (*DescribeStreamOutput, error) {
	if params == nil {
		params = &DescribeStreamInput{}
	}
	return client.Send(ctx, c.runtime, NewDescribeStreamCommand(params), optFns...)
}
