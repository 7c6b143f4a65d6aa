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
	"time"
)

// StreamStatus is the lifecycle status of a stream.
type StreamStatus string

const (
	StreamStatusCreating StreamStatus = "CREATING"
	StreamStatusDeleting StreamStatus = "DELETING"
	StreamStatusActive   StreamStatus = "ACTIVE"
	StreamStatusUpdating StreamStatus = "UPDATING"
)

// EncryptionType is the server-side encryption applied to records.
type EncryptionType string

const (
	EncryptionTypeNone EncryptionType = "NONE"
	EncryptionTypeKms  EncryptionType = "KMS"
)

// StreamDescription describes a stream and a page of its shards.
type StreamDescription struct {
	StreamName              *string
	StreamARN               *string
	StreamStatus            StreamStatus
	StreamCreationTimestamp *time.Time
	RetentionPeriodHours    *int32
	EncryptionType          EncryptionType
	Shards                  []Shard
	HasMoreShards           *bool
}

// Shard is one shard of a stream.
type Shard struct {
	ShardId             *string
	ParentShardId       *string
	HashKeyRange        *HashKeyRange
	SequenceNumberRange *SequenceNumberRange
}

// HashKeyRange is the range of partition key hashes a shard owns.
type HashKeyRange struct {
	StartingHashKey *string
	EndingHashKey   *string
}

// SequenceNumberRange is the range of sequence numbers in a shard.
type SequenceNumberRange struct {
	StartingSequenceNumber *string
	EndingSequenceNumber   *string
}
