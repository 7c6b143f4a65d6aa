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

package middleware

import "fmt"

// Step is one of the fixed phases a call passes through.
// Steps execute in declaration order.
type Step int

const (
	// InitializeStep prepares the logical input (defaults, validation, logging).
	InitializeStep Step = iota

	// SerializeStep turns the logical input into a wire request.
	SerializeStep

	// BuildStep adds request-wide headers that do not depend on the attempt.
	BuildStep

	// FinalizeStep covers per-attempt work: retries, rate limiting, signing.
	FinalizeStep

	// DeserializeStep turns the wire response into a typed output or error.
	DeserializeStep
)

// Steps lists every step in execution order.
var Steps = []Step{InitializeStep, SerializeStep, BuildStep, FinalizeStep, DeserializeStep}

// String returns the step name.
func (s Step) String() string {
	switch s {
	case InitializeStep:
		return "initialize"
	case SerializeStep:
		return "serialize"
	case BuildStep:
		return "build"
	case FinalizeStep:
		return "finalizeRequest"
	case DeserializeStep:
		return "deserialize"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

func (s Step) valid() bool {
	return s >= InitializeStep && s <= DeserializeStep
}

// Priority orders middleware within a step. Higher priorities run first.
type Priority int

const (
	PriorityLow    Priority = -1
	PriorityNormal Priority = 0
	PriorityHigh   Priority = 1
)
