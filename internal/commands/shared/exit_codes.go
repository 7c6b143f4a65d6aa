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

package shared

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/smithy-go"

	awserrors "github.com/tombee/awsclient/pkg/errors"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitFailed       = 1
	ExitInvalidInput = 2
	ExitConfigError  = 3
	ExitServiceError = 4
	ExitTimeout      = 5
)

// ExitError is an error that carries an exit code
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewInvalidInputError creates an error for bad flags or arguments.
func NewInvalidInputError(msg string, cause error) *ExitError {
	return &ExitError{Code: ExitInvalidInput, Message: msg, Cause: cause}
}

// NewConfigError creates an error for configuration failures.
func NewConfigError(msg string, cause error) *ExitError {
	return &ExitError{Code: ExitConfigError, Message: msg, Cause: cause}
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var cfgErr *awserrors.ConfigError
	if errors.As(err, &cfgErr) {
		return ExitConfigError
	}
	var timeoutErr *awserrors.TimeoutError
	if errors.As(err, &timeoutErr) || errors.Is(err, context.DeadlineExceeded) {
		return ExitTimeout
	}
	var serErr *smithy.SerializationError
	if errors.As(err, &serErr) {
		return ExitInvalidInput
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return ExitServiceError
	}
	return ExitFailed
}

// FormatError renders err for the terminal. Service errors show their code and
// request id on separate lines.
func FormatError(err error) string {
	var b strings.Builder
	b.WriteString(RenderError(err.Error()))

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintf(&b, "\n  %s %s", RenderLabel("code:"), Code.Render(apiErr.ErrorCode()))
		fmt.Fprintf(&b, "\n  %s %s", RenderLabel("fault:"), RenderFault(apiErr.ErrorFault()))
	}

	if md, ok := awserrors.Metadata(err); ok {
		if md.RequestID != "" {
			fmt.Fprintf(&b, "\n  %s %s", RenderLabel("request id:"), md.RequestID)
		}
		if md.HTTPStatusCode != 0 {
			fmt.Fprintf(&b, "\n  %s %d", RenderLabel("status:"), md.HTTPStatusCode)
		}
	}

	return b.String()
}

// WriteError writes the formatted error to w and returns its exit code.
func WriteError(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintln(w, FormatError(err))
	return ExitCode(err)
}

// HandleExitError prints err to stderr and exits with its exit code.
func HandleExitError(err error) {
	if err == nil {
		return
	}
	os.Exit(WriteError(os.Stderr, err))
}
