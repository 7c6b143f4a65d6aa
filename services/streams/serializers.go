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
	"fmt"

	smithyjson "github.com/aws/smithy-go/encoding/json"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol/awsjson"
	"github.com/tombee/awsclient/pkg/wire"
)

func serializeOpDescribeStream(ctx context.Context, input *DescribeStreamInput, req *wire.Request) error {
	if input == nil {
		return fmt.Errorf("unexpected nil input")
	}
	if input.StreamName == nil || len(*input.StreamName) == 0 {
		return &awserrors.ValidationError{Field: "StreamName", Message: "input member StreamName must not be empty"}
	}

	awsjson.Prepare(req, targetPrefix, "DescribeStream")
	enc := smithyjson.NewEncoder()
	serializeOpDocumentDescribeStreamInput(input, enc.Value)
	awsjson.SetPayload(req, enc)
	return nil
}

func serializeOpDocumentDescribeStreamInput(v *DescribeStreamInput, value smithyjson.Value) {
	object := value.Object()
	defer object.Close()

	if v.ExclusiveStartShardId != nil {
		object.Key("ExclusiveStartShardId").String(*v.ExclusiveStartShardId)
	}
	if v.Limit != nil {
		object.Key("Limit").Integer(*v.Limit)
	}
	if v.StreamName != nil {
		object.Key("StreamName").String(*v.StreamName)
	}
}

func serializeOpPutRecord(ctx context.Context, input *PutRecordInput, req *wire.Request) error {
	if input == nil {
		return fmt.Errorf("unexpected nil input")
	}
	if input.StreamName == nil || len(*input.StreamName) == 0 {
		return &awserrors.ValidationError{Field: "StreamName", Message: "input member StreamName must not be empty"}
	}
	if input.PartitionKey == nil || len(*input.PartitionKey) == 0 {
		return &awserrors.ValidationError{Field: "PartitionKey", Message: "input member PartitionKey must not be empty"}
	}
	if input.Data == nil {
		return &awserrors.ValidationError{Field: "Data", Message: "input member Data is required"}
	}

	awsjson.Prepare(req, targetPrefix, "PutRecord")
	enc := smithyjson.NewEncoder()
	serializeOpDocumentPutRecordInput(input, enc.Value)
	awsjson.SetPayload(req, enc)
	return nil
}

func serializeOpDocumentPutRecordInput(v *PutRecordInput, value smithyjson.Value) {
	object := value.Object()
	defer object.Close()

	if v.Data != nil {
		object.Key("Data").Base64EncodeBytes(v.Data)
	}
	if v.ExplicitHashKey != nil {
		object.Key("ExplicitHashKey").String(*v.ExplicitHashKey)
	}
	if v.PartitionKey != nil {
		object.Key("PartitionKey").String(*v.PartitionKey)
	}
	if v.SequenceNumberForOrdering != nil {
		object.Key("SequenceNumberForOrdering").String(*v.SequenceNumberForOrdering)
	}
	if v.StreamName != nil {
		object.Key("StreamName").String(*v.StreamName)
	}
}
