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

package errors

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Wrap prefixes err with message. The result still matches err through
// errors.Is and errors.As. A nil err stays nil.
func Wrap(err error, message string) error {
	return Wrapf(err, "%s", message)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Code returns the service error code found in err's chain, or "" when the
// chain holds no service error.
func Code(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// Metadata returns the response metadata of the service error in err's chain.
func Metadata(err error) (ResponseMetadata, bool) {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorMetadata(), true
	}
	return ResponseMetadata{}, false
}
