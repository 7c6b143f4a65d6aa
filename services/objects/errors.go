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
	"github.com/aws/smithy-go"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/wire"
)

// NoSuchKey is returned when the object does not exist.
type NoSuchKey struct {
	awserrors.ErrorBase
	Key string
}

func (e *NoSuchKey) Error() string                 { return awserrors.FormatError(e) }
func (e *NoSuchKey) ErrorCode() string             { return "NoSuchKey" }
func (e *NoSuchKey) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// NoSuchBucket is returned when the bucket does not exist.
type NoSuchBucket struct {
	awserrors.ErrorBase
	BucketName string
}

func (e *NoSuchBucket) Error() string                 { return awserrors.FormatError(e) }
func (e *NoSuchBucket) ErrorCode() string             { return "NoSuchBucket" }
func (e *NoSuchBucket) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

var errorTable = awserrors.ErrorTable{
	"NoSuchKey": func(resp *wire.Response, info awserrors.ErrorInfo) error {
		key, _ := info.Fields["Key"].(string)
		return &NoSuchKey{ErrorBase: awserrors.ErrorBase{Message: info.Message}, Key: key}
	},
	"NoSuchBucket": func(resp *wire.Response, info awserrors.ErrorInfo) error {
		bucket, _ := info.Fields["BucketName"].(string)
		return &NoSuchBucket{ErrorBase: awserrors.ErrorBase{Message: info.Message}, BucketName: bucket}
	},
}
