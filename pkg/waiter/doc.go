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

// Package waiter polls an operation until its result reaches a terminal state.
//
// A waiter is a list of acceptors checked in order after every poll. An acceptor
// matches either the operation output, through an expr-lang boolean expression
// evaluated against the output document, or the error code of a failed poll:
//
//	w, err := waiter.New[*widgets.GetWidgetOutput]([]waiter.Acceptor{
//	    {State: waiter.StateSuccess, Expression: `Status == "ACTIVE"`},
//	    {State: waiter.StateFailure, Expression: `Status == "FAILED"`},
//	    {State: waiter.StateRetry, ErrorCode: "NotFoundException"},
//	})
//
// The first matching acceptor decides: success returns the output, failure
// returns a *FailureStateError, retry polls again after a delay. A poll that
// matches nothing succeeds or fails on its own terms: an error is returned as is,
// an output is polled again.
//
// The output document is the JSON rendering of the output: member names as keys,
// nil members absent, timestamps as RFC 3339 strings. Expressions may use
// has(collection, element) and length(collection) besides the expr builtins.
package waiter
