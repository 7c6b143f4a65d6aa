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

package widgets

import (
	"github.com/aws/smithy-go"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol"
	"github.com/tombee/awsclient/pkg/wire"
)

// NotFoundException is returned when the widget does not exist.
type NotFoundException struct {
	awserrors.ErrorBase

	ResourceId *string
}

func (e *NotFoundException) Error() string                 { return awserrors.FormatError(e) }
func (e *NotFoundException) ErrorCode() string             { return "NotFoundException" }
func (e *NotFoundException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// ValidationException is returned when the input fails service-side validation.
type ValidationException struct {
	awserrors.ErrorBase

	FieldName *string
}

func (e *ValidationException) Error() string                 { return awserrors.FormatError(e) }
func (e *ValidationException) ErrorCode() string             { return "ValidationException" }
func (e *ValidationException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// ConflictException is returned when the widget is in a conflicting state.
type ConflictException struct {
	awserrors.ErrorBase
}

func (e *ConflictException) Error() string                 { return awserrors.FormatError(e) }
func (e *ConflictException) ErrorCode() string             { return "ConflictException" }
func (e *ConflictException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// ThrottlingException is returned when the request rate is too high.
type ThrottlingException struct {
	awserrors.ErrorBase
}

func (e *ThrottlingException) Error() string                 { return awserrors.FormatError(e) }
func (e *ThrottlingException) ErrorCode() string             { return "ThrottlingException" }
func (e *ThrottlingException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }
func (e *ThrottlingException) ErrorType() string             { return "throttling" }
func (e *ThrottlingException) IsRetryable() bool             { return true }

// InternalServerException is returned when the service fails.
type InternalServerException struct {
	awserrors.ErrorBase
}

func (e *InternalServerException) Error() string                 { return awserrors.FormatError(e) }
func (e *InternalServerException) ErrorCode() string             { return "InternalServerException" }
func (e *InternalServerException) ErrorFault() smithy.ErrorFault { return smithy.FaultServer }

var errorTable = awserrors.ErrorTable{
	"NotFoundException": func(resp *wire.Response, info awserrors.ErrorInfo) error {
		id, _ := protocol.ExpectString(info.Fields["ResourceId"])
		return &NotFoundException{ErrorBase: awserrors.ErrorBase{Message: info.Message}, ResourceId: id}
	},
	"ValidationException": func(resp *wire.Response, info awserrors.ErrorInfo) error {
		field, _ := protocol.ExpectString(info.Fields["FieldName"])
		return &ValidationException{ErrorBase: awserrors.ErrorBase{Message: info.Message}, FieldName: field}
	},
	"ConflictException": func(resp *wire.Response, info awserrors.ErrorInfo) error {
		return &ConflictException{ErrorBase: awserrors.ErrorBase{Message: info.Message}}
	},
	"ThrottlingException": func(resp *wire.Response, info awserrors.ErrorInfo) error {
		return &ThrottlingException{ErrorBase: awserrors.ErrorBase{Message: info.Message}}
	},
	"InternalServerException": func(resp *wire.Response, info awserrors.ErrorInfo) error {
		return &InternalServerException{ErrorBase: awserrors.ErrorBase{Message: info.Message}}
	},
}

var (
	_ awserrors.APIError        = (*NotFoundException)(nil)
	_ awserrors.ErrorClassifier = (*ThrottlingException)(nil)
)
