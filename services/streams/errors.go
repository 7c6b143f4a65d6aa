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
	"github.com/aws/smithy-go"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/wire"
)

// ResourceNotFoundException is returned when the stream does not exist.
type ResourceNotFoundException struct {
	awserrors.ErrorBase
}

func (e *ResourceNotFoundException) Error() string                 { return awserrors.FormatError(e) }
func (e *ResourceNotFoundException) ErrorCode() string             { return "ResourceNotFoundException" }
func (e *ResourceNotFoundException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// ProvisionedThroughputExceededException is returned when the stream's write
// capacity is exhausted. It is retried.
type ProvisionedThroughputExceededException struct {
	awserrors.ErrorBase
}

func (e *ProvisionedThroughputExceededException) Error() string { return awserrors.FormatError(e) }
func (e *ProvisionedThroughputExceededException) ErrorCode() string {
	return "ProvisionedThroughputExceededException"
}
func (e *ProvisionedThroughputExceededException) ErrorFault() smithy.ErrorFault {
	return smithy.FaultClient
}

// InvalidArgumentException is returned when an input member is invalid.
type InvalidArgumentException struct {
	awserrors.ErrorBase
}

func (e *InvalidArgumentException) Error() string                 { return awserrors.FormatError(e) }
func (e *InvalidArgumentException) ErrorCode() string             { return "InvalidArgumentException" }
func (e *InvalidArgumentException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

var errorTable = awserrors.ErrorTable{
	"ResourceNotFoundException": func(resp *wire.Response, info awserrors.ErrorInfo) error {
		return &ResourceNotFoundException{ErrorBase: awserrors.ErrorBase{Message: info.Message}}
	},
	"ProvisionedThroughputExceededException": func(resp *wire.Response, info awserrors.ErrorInfo) error {
		return &ProvisionedThroughputExceededException{ErrorBase: awserrors.ErrorBase{Message: info.Message}}
	},
	"InvalidArgumentException": func(resp *wire.Response, info awserrors.ErrorInfo) error {
		return &InvalidArgumentException{ErrorBase: awserrors.ErrorBase{Message: info.Message}}
	},
}
