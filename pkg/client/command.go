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

package client

import (
	"github.com/tombee/awsclient/pkg/middleware"
	"github.com/tombee/awsclient/pkg/serde"
)

// Command describes one API call: the operation, its input and its codec.
// Commands are immutable and may be sent more than once.
type Command[In, Out any] struct {
	input  In
	plugin serde.Plugin[In, Out]
	stack  middleware.Stack
}

// CommandOption adds command-scoped middleware.
type CommandOption func(middleware.Stack) middleware.Stack

// WithCommandMiddleware registers m for every send of the command.
func WithCommandMiddleware(step middleware.Step, m middleware.Middleware, opts ...middleware.Option) CommandOption {
	return func(s middleware.Stack) middleware.Stack {
		return s.Use(step, m, opts...)
	}
}

// NewCommand returns a command for input using plugin as its codec.
func NewCommand[In, Out any](input In, plugin serde.Plugin[In, Out], opts ...CommandOption) *Command[In, Out] {
	var s middleware.Stack
	for _, opt := range opts {
		s = opt(s)
	}
	return &Command[In, Out]{input: input, plugin: plugin, stack: s}
}

// Name returns the operation name.
func (c *Command[In, Out]) Name() string {
	return c.plugin.Operation
}

// Input returns the command input.
func (c *Command[In, Out]) Input() In {
	return c.input
}

// ResolveMiddleware derives the stack for one send: base, then command middleware,
// then the serde plugin, then per-call middleware. base is not modified.
func (c *Command[In, Out]) ResolveMiddleware(base middleware.Stack, opts CallOptions) middleware.Stack {
	s := base.Concat(c.stack)
	s = c.plugin.Apply(s)
	return s.Concat(opts.Middleware)
}
