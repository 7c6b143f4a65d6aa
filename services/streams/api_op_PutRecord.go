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

// PutRecordInput writes one record.
type PutRecordInput struct {
	// StreamName is the stream name. Required.
	StreamName *string

	// Data is the record payload, sent base64 encoded. Required.
	Data []byte

	// PartitionKey selects the shard. Required.
	PartitionKey *string

	// ExplicitHashKey overrides the partition key hash.
	ExplicitHashKey *string

	// SequenceNumberForOrdering orders records from one producer.
	SequenceNumberForOrdering *string
}

// PutRecordOutput locates the written record.
type PutRecordOutput struct {
	ShardId        *string
	SequenceNumber *string
	EncryptionType EncryptionType

	ResultMetadata awserrors.ResponseMetadata
}

func (o *PutRecordOutput) SetResponseMetadata(m awserrors.ResponseMetadata) { o.ResultMetadata = m }

var putRecordPlugin = serde.Plugin[*PutRecordInput, *PutRecordOutput]{
	Operation:        "PutRecord",
	Serialize:        serializeOpPutRecord,
	Deserialize:      deserializeOpPutRecord,
	DeserializeError: awsjson.ErrorDeserializer(errorTable),
}

// NewPutRecordCommand returns a PutRecord command for params.
func NewPutRecordCommand(params *PutRecordInput, opts ...client.CommandOption) *client.Command[*PutRecordInput, *PutRecordOutput] {
	return client.NewCommand(params, putRecordPlugin, opts...)
}

// PutRecord writes one record to a stream.
func (c *Client) PutRecord(ctx context.Context, params *PutRecordInput, optFns ...func(*client.CallOptions)) (*PutRecordOutput, error) {
	if params == nil {
		params = &PutRecordInput{}
	}
	return client.Send(ctx, c.runtime, NewPutRecordCommand(params), optFns...)
}
