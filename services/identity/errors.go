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

package identity

import (
	"github.com/aws/smithy-go"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/wire"
)

// ExpiredTokenException is returned when the session token used to sign the
// request has expired.
type ExpiredTokenException struct {
	awserrors.ErrorBase
}

func (e *ExpiredTokenException) Error() string                 { return awserrors.FormatError(e) }
func (e *ExpiredTokenException) ErrorCode() string             { return "ExpiredTokenException" }
func (e *ExpiredTokenException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// RegionDisabledException is returned when the service is not activated in the
// requested region.
type RegionDisabledException struct {
	awserrors.ErrorBase
}

func (e *RegionDisabledException) Error() string                 { return awserrors.FormatError(e) }
func (e *RegionDisabledException) ErrorCode() string             { return "RegionDisabledException" }
func (e *RegionDisabledException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

var errorTable = awserrors.ErrorTable{
	"ExpiredTokenException": func(resp *wire.Response, info awserrors.ErrorInfo) error {
		return &ExpiredTokenException{ErrorBase: awserrors.ErrorBase{Message: info.Message}}
	},
	"RegionDisabledException": func(resp *wire.Response, info awserrors.ErrorInfo) error {
		return &RegionDisabledException{ErrorBase: awserrors.ErrorBase{Message: info.Message}}
	},
}
