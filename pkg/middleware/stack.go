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

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoTerminal is returned by Resolve when the terminal handler is nil.
var ErrNoTerminal = errors.New("middleware: terminal handler is required")

// entry is one registration in a Stack.
type entry struct {
	step       Step
	priority   Priority
	middleware Middleware
	override   bool
}

// Stack is an immutable, ordered collection of middleware.
//
// Every method that changes the stack returns a new value and leaves the receiver
// untouched, so a Stack can be shared by concurrent calls without locking. The zero
// value is an empty stack.
//
// Resolved order is: step (initialize, serialize, build, finalizeRequest,
// deserialize), then priority (high before low), then registration order.
type Stack struct {
	entries []entry
}

// Option configures a single registration.
type Option func(*entry)

// WithPriority sets the priority of a registration within its step.
func WithPriority(p Priority) Option {
	return func(e *entry) {
		e.priority = p
	}
}

// Override lets a registration replace an existing middleware with the same ID
// instead of failing resolution.
func Override() Option {
	return func(e *entry) {
		e.override = true
	}
}

// NewStack returns a stack holding the given middleware at step, in order.
func NewStack(step Step, ms ...Middleware) Stack {
	var s Stack
	for _, m := range ms {
		s = s.Use(step, m)
	}
	return s
}

// Use returns a new stack with m registered at step.
func (s Stack) Use(step Step, m Middleware, opts ...Option) Stack {
	e := entry{step: step, priority: PriorityNormal, middleware: m}
	for _, opt := range opts {
		opt(&e)
	}

	entries := make([]entry, 0, len(s.entries)+1)
	for _, existing := range s.entries {
		if e.override && m != nil && m.ID() != "" && existing.middleware != nil && existing.middleware.ID() == m.ID() {
			continue
		}
		entries = append(entries, existing)
	}
	entries = append(entries, e)
	return Stack{entries: entries}
}

// Concat returns a new stack holding s's registrations followed by other's.
// Neither input is modified. Override registrations in other replace same-ID
// registrations in s.
func (s Stack) Concat(other Stack) Stack {
	out := Stack{entries: make([]entry, 0, len(s.entries)+len(other.entries))}
	out.entries = append(out.entries, s.entries...)
	for _, e := range other.entries {
		if e.override && e.middleware != nil && e.middleware.ID() != "" {
			out.entries = removeID(out.entries, e.middleware.ID())
		}
		out.entries = append(out.entries, e)
	}
	return out
}

// Remove returns a new stack without middleware named id.
func (s Stack) Remove(id string) Stack {
	return Stack{entries: removeID(append([]entry(nil), s.entries...), id)}
}

// Len returns the number of registrations.
func (s Stack) Len() int {
	return len(s.entries)
}

// Has reports whether a middleware named id is registered.
func (s Stack) Has(id string) bool {
	for _, e := range s.entries {
		if e.middleware != nil && e.middleware.ID() == id {
			return true
		}
	}
	return false
}

// List returns middleware IDs in execution order.
func (s Stack) List() []string {
	ordered := s.ordered()
	ids := make([]string, 0, len(ordered))
	for _, e := range ordered {
		ids = append(ids, e.middleware.ID())
	}
	return ids
}

// String renders the resolved order, one "step/id" per line.
func (s Stack) String() string {
	var b strings.Builder
	for _, e := range s.ordered() {
		fmt.Fprintf(&b, "%s/%s\n", e.step, e.middleware.ID())
	}
	return b.String()
}

// Resolve folds every registration around terminal and returns the composed handler.
// The stack is not retained by the handler beyond the resolved order, so resolving
// the same stack twice yields two independent handlers.
func (s Stack) Resolve(terminal Handler) (Handler, error) {
	if terminal == nil {
		return nil, ErrNoTerminal
	}

	seen := make(map[string]bool, len(s.entries))
	for _, e := range s.entries {
		if e.middleware == nil {
			return nil, fmt.Errorf("middleware: nil middleware registered at step %s", e.step)
		}
		if !e.step.valid() {
			return nil, fmt.Errorf("middleware: %q registered at unknown %s", e.middleware.ID(), e.step)
		}
		id := e.middleware.ID()
		if id == "" {
			continue
		}
		if seen[id] {
			return nil, fmt.Errorf("middleware: duplicate middleware %q", id)
		}
		seen[id] = true
	}

	ordered := s.ordered()
	h := terminal
	for i := len(ordered) - 1; i >= 0; i-- {
		h = decoratedHandler{next: h, with: ordered[i].middleware}
	}
	return h, nil
}

// ordered returns a sorted copy of the registrations.
func (s Stack) ordered() []entry {
	ordered := make([]entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.middleware != nil {
			ordered = append(ordered, e)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].step != ordered[j].step {
			return ordered[i].step < ordered[j].step
		}
		return ordered[i].priority > ordered[j].priority
	})
	return ordered
}

func removeID(entries []entry, id string) []entry {
	out := entries[:0]
	for _, e := range entries {
		if e.middleware != nil && e.middleware.ID() == id {
			continue
		}
		out = append(out, e)
	}
	return out
}
