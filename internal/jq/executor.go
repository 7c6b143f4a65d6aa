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

// Package jq filters command output with jq expressions.
package jq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/itchyny/gojq"
)

const (
	// DefaultTimeout is the default execution timeout for a query.
	DefaultTimeout = 5 * time.Second

	// DefaultMaxInputSize is the default maximum input size (10MB).
	DefaultMaxInputSize = 10 * 1024 * 1024
)

// Query is a compiled jq expression.
type Query struct {
	expression string
	code       *gojq.Code
}

// Compile parses and compiles expression.
func Compile(expression string) (*Query, error) {
	parsed, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("jq compilation failed: %w", err)
	}

	return &Query{expression: expression, code: code}, nil
}

// String returns the source expression.
func (q *Query) String() string {
	return q.expression
}

// Executor runs queries with timeout and size limits.
type Executor struct {
	timeout      time.Duration
	maxInputSize int64
}

// NewExecutor creates a new jq executor with the given limits. Zero values use
// the defaults.
func NewExecutor(timeout time.Duration, maxInputSize int64) *Executor {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if maxInputSize == 0 {
		maxInputSize = DefaultMaxInputSize
	}

	return &Executor{
		timeout:      timeout,
		maxInputSize: maxInputSize,
	}
}

// Execute runs expression against data, which must be a JSON document made of
// map[string]any, []any and scalars. An empty expression returns data unchanged.
// A single result is returned as is; several results are returned as a slice.
func (e *Executor) Execute(ctx context.Context, expression string, data any) (any, error) {
	if expression == "" {
		return data, nil
	}

	q, err := Compile(expression)
	if err != nil {
		return nil, err
	}

	results, err := e.Run(ctx, q, data)
	if err != nil {
		return nil, err
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

// Run runs q against data and collects every emitted value.
func (e *Executor) Run(ctx context.Context, q *Query, data any) ([]any, error) {
	if err := e.validateInputSize(data); err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var results []any
	iter := q.code.RunWithContext(runCtx, data)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			if runCtx.Err() != nil {
				return nil, fmt.Errorf("execution timeout after %v", e.timeout)
			}
			return nil, fmt.Errorf("jq %q: %w", q.expression, err)
		}
		results = append(results, v)
	}

	return results, nil
}

// validateInputSize checks if the data size is within limits.
func (e *Executor) validateInputSize(data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	if int64(len(jsonData)) > e.maxInputSize {
		return fmt.Errorf("data size (%d bytes) exceeds maximum (%d bytes)",
			len(jsonData), e.maxInputSize)
	}

	return nil
}
