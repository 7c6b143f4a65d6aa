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

// Package middleware implements the step-ordered handler stack every call runs through.
//
// A call passes through five steps in a fixed order:
//
//	initialize -> serialize -> build -> finalizeRequest -> deserialize -> terminal
//
// Middleware registered at a step wraps everything registered at later steps, so a
// finalize middleware (retry, signing) sees the typed result or error produced by the
// deserialize step, and serialize always completes before anything is sent.
//
// Stacks are immutable values. Use, Concat and Remove return new stacks; a client keeps
// one base stack and each command derives its own from it without copying state back.
package middleware
