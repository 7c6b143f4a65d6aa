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
	"github.com/aws/smithy-go"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/wire"
)

// UnauthorizedOperation is returned when the caller may not perform the operation.
type UnauthorizedOperation struct {
	awserrors.ErrorBase
}

func (e *UnauthorizedOperation) Error() string                 { return awserrors.FormatError(e) }
func (e *UnauthorizedOperation) ErrorCode() string             { return "UnauthorizedOperation" }
func (e *UnauthorizedOperation) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// InvalidParameterValue is returned when a parameter value is malformed.
type InvalidParameterValue struct {
	awserrors.ErrorBase
}

func (e *InvalidParameterValue) Error() string                 { return awserrors.FormatError(e) }
func (e *InvalidParameterValue) ErrorCode() string             { return "InvalidParameterValue" }
func (e *InvalidParameterValue) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

var errorTable = awserrors.ErrorTable{
	"UnauthorizedOperation": func(resp *wire.Response, info awserrors.ErrorInfo) error {
		return &UnauthorizedOperation{ErrorBase: awserrors.ErrorBase{Message: info.Message}}
	},
	"InvalidParameterValue": func(resp *wire.Response, info awserrors.ErrorInfo) error {
		return &InvalidParameterValue{ErrorBase: awserrors.ErrorBase{Message: info.Message}}
	},
}
