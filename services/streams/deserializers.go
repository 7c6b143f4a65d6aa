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

	"github.com/tombee/awsclient/pkg/protocol"
	"github.com/tombee/awsclient/pkg/wire"
)

func deserializeOpDescribeStream(ctx context.Context, resp *wire.Response) (*DescribeStreamOutput, error) {
	doc, err := protocol.DecodeDocument(resp.Body)
	if err != nil {
		return nil, err
	}

	out := &DescribeStreamOutput{}
	if raw, ok := doc["StreamDescription"]; ok {
		obj, err := protocol.ExpectObject(raw)
		if err != nil {
			return nil, fmt.Errorf("StreamDescription: %w", err)
		}
		if obj != nil {
			out.StreamDescription = &StreamDescription{}
			if err := deserializeDocumentStreamDescription(out.StreamDescription, obj); err != nil {
				return nil, fmt.Errorf("StreamDescription: %w", err)
			}
		}
	}
	return out, nil
}

func deserializeDocumentStreamDescription(v *StreamDescription, doc map[string]any) error {
	var err error
	for key, value := range doc {
		switch key {
		case "StreamName":
			v.StreamName, err = protocol.ExpectString(value)
		case "StreamARN":
			v.StreamARN, err = protocol.ExpectString(value)
		case "StreamStatus":
			var s *string
			if s, err = protocol.ExpectString(value); s != nil {
				v.StreamStatus = StreamStatus(*s)
			}
		case "EncryptionType":
			var s *string
			if s, err = protocol.ExpectString(value); s != nil {
				v.EncryptionType = EncryptionType(*s)
			}
		case "StreamCreationTimestamp":
			v.StreamCreationTimestamp, err = protocol.ExpectEpochSeconds(value)
		case "RetentionPeriodHours":
			v.RetentionPeriodHours, err = protocol.ExpectInt32(value)
		case "HasMoreShards":
			v.HasMoreShards, err = protocol.ExpectBool(value)
		case "Shards":
			v.Shards, err = deserializeDocumentShardList(value)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func deserializeDocumentShardList(value any) ([]Shard, error) {
	items, err := protocol.ExpectArray(value)
	if err != nil || items == nil {
		return nil, err
	}
	shards := make([]Shard, 0, len(items))
	for i, item := range items {
		obj, err := protocol.ExpectObject(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		var s Shard
		if err := deserializeDocumentShard(&s, obj); err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		shards = append(shards, s)
	}
	return shards, nil
}

func deserializeDocumentShard(v *Shard, doc map[string]any) error {
	var err error
	for key, value := range doc {
		switch key {
		case "ShardId":
			v.ShardId, err = protocol.ExpectString(value)
		case "ParentShardId":
			v.ParentShardId, err = protocol.ExpectString(value)
		case "HashKeyRange":
			var obj map[string]any
			if obj, err = protocol.ExpectObject(value); obj != nil {
				v.HashKeyRange = &HashKeyRange{}
				v.HashKeyRange.StartingHashKey, _ = protocol.ExpectString(obj["StartingHashKey"])
				v.HashKeyRange.EndingHashKey, _ = protocol.ExpectString(obj["EndingHashKey"])
			}
		case "SequenceNumberRange":
			var obj map[string]any
			if obj, err = protocol.ExpectObject(value); obj != nil {
				v.SequenceNumberRange = &SequenceNumberRange{}
				v.SequenceNumberRange.StartingSequenceNumber, _ = protocol.ExpectString(obj["StartingSequenceNumber"])
				v.SequenceNumberRange.EndingSequenceNumber, _ = protocol.ExpectString(obj["EndingSequenceNumber"])
			}
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func deserializeOpPutRecord(ctx context.Context, resp *wire.Response) (*PutRecordOutput, error) {
	doc, err := protocol.DecodeDocument(resp.Body)
	if err != nil {
		return nil, err
	}

	out := &PutRecordOutput{}
	for key, value := range doc {
		switch key {
		case "ShardId":
			out.ShardId, err = protocol.ExpectString(value)
		case "SequenceNumber":
			out.SequenceNumber, err = protocol.ExpectString(value)
		case "EncryptionType":
			var s *string
			if s, err = protocol.ExpectString(value); s != nil {
				out.EncryptionType = EncryptionType(*s)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}
	return out, nil
}
