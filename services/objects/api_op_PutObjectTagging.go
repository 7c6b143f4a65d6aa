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

package objects

import (
	"context"

	"github.com/tombee/awsclient/pkg/client"
	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol/restxml"
	"github.com/tombee/awsclient/pkg/serde"
)

// PutObjectTaggingInput replaces the tag set of an object.
type PutObjectTaggingInput struct {
	// Bucket is required.
	Bucket *string

	// Key is required and may contain slashes.
	Key *string

	// TagSet is the complete new tag set. Every tag needs a Key.
	TagSet []Tag

	VersionId *string

	ExpectedBucketOwner *string
}

// PutObjectTaggingOutput reports the version that was tagged.
type PutObjectTaggingOutput struct {
	VersionId *string

	ResultMetadata awserrors.ResponseMetadata
}

func (o *PutObjectTaggingOutput) SetResponseMetadata(m awserrors.ResponseMetadata) {
	o.ResultMetadata = m
}

var putObjectTaggingPlugin = serde.Plugin[*PutObjectTaggingInput, *PutObjectTaggingOutput]{
	Operation:        "PutObjectTagging",
	Serialize:        serializeOpPutObjectTagging,
	Deserialize:      deserializeOpPutObjectTagging,
	DeserializeError: restxml.ErrorDeserializer(errorTable, true),
}

// NewPutObjectTaggingCommand returns a PutObjectTagging command for params.
func NewPutObjectTaggingCommand(params *PutObjectTaggingInput, opts ...client.CommandOption) *client.Command[*PutObjectTaggingInput, *PutObjectTaggingOutput] {
	return client.NewCommand(params, putObjectTaggingPlugin, opts...)
}

// PutObjectTagging sets the tag set of an object.
func (c *Client) PutObjectTagging(ctx context.Context, params *PutObjectTaggingInput, optFns ...func(*client.CallOptions)) (*PutObjectTaggingOutput, error) {
	if params == nil {
		params = &PutObjectTaggingInput{}
	}
	return client.Send(ctx, c.runtime, NewPutObjectTaggingCommand(params), optFns...)
}
