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

// GetObjectTaggingInput names the object whose tags are read.
type GetObjectTaggingInput struct {
	// Bucket is required.
	Bucket *string

	// Key is required and may contain slashes.
	Key *string

	// VersionId selects a specific object version.
	VersionId *string

	// ExpectedBucketOwner fails the call when the bucket belongs to another account.
	ExpectedBucketOwner *string
}

// GetObjectTaggingOutput holds the object's tags.
type GetObjectTaggingOutput struct {
	TagSet []Tag

	// VersionId is the version the tags belong to.
	VersionId *string

	ResultMetadata awserrors.ResponseMetadata
}

func (o *GetObjectTaggingOutput) SetResponseMetadata(m awserrors.ResponseMetadata) {
	o.ResultMetadata = m
}

var getObjectTaggingPlugin = serde.Plugin[*GetObjectTaggingInput, *GetObjectTaggingOutput]{
	Operation:        "GetObjectTagging",
	Serialize:        serializeOpGetObjectTagging,
	Deserialize:      deserializeOpGetObjectTagging,
	DeserializeError: restxml.ErrorDeserializer(errorTable, true),
}

// NewGetObjectTaggingCommand returns a GetObjectTagging command for params.
func NewGetObjectTaggingCommand(params *GetObjectTaggingInput, opts ...client.CommandOption) *client.Command[*GetObjectTaggingInput, *GetObjectTaggingOutput] {
	return client.NewCommand(params, getObjectTaggingPlugin, opts...)
}

// GetObjectTagging returns the tag set of an object.
func (c *Client) GetObjectTagging(ctx context.Context, params *GetObjectTaggingInput, optFns ...func(*client.CallOptions)) (*GetObjectTaggingOutput, error) {
	if params == nil {
		params = &GetObjectTaggingInput{}
	}
	return client.Send(ctx, c.runtime, NewGetObjectTaggingCommand(params), optFns...)
}
