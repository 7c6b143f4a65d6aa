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

package waiter

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	awserrors "github.com/tombee/awsclient/pkg/errors"
)

// evaluator compiles and caches acceptor expressions.
type evaluator struct {
	cache map[string]*vm.Program
	mu    sync.RWMutex
}

func newEvaluator() *evaluator {
	return &evaluator{cache: make(map[string]*vm.Program)}
}

// evaluate runs expression against env and returns its boolean result.
func (e *evaluator) evaluate(expression string, env map[string]any) (bool, error) {
	program, err := e.compile(expression)
	if err != nil {
		return false, &awserrors.ValidationError{
			Field:   "expression",
			Message: fmt.Sprintf("failed to compile expression: %s", err.Error()),
		}
	}

	evalEnv := make(map[string]any, len(env)+2)
	for k, v := range env {
		evalEnv[k] = v
	}
	evalEnv["has"] = hasFunc
	evalEnv["length"] = lengthFunc

	result, err := expr.Run(program, evalEnv)
	if err != nil {
		return false, &awserrors.ValidationError{
			Field:   "expression",
			Message: fmt.Sprintf("expression evaluation failed: %s", err.Error()),
		}
	}

	b, ok := result.(bool)
	if !ok {
		return false, &awserrors.ValidationError{
			Field:   "expression",
			Message: fmt.Sprintf("expression must return boolean, got %T (%v)", result, result),
		}
	}
	return b, nil
}

func (e *evaluator) compile(expression string) (*vm.Program, error) {
	e.mu.RLock()
	if prog, ok := e.cache[expression]; ok {
		e.mu.RUnlock()
		return prog, nil
	}
	e.mu.RUnlock()

	env := map[string]any{
		"has":    hasFunc,
		"length": lengthFunc,
	}
	prog, err := expr.Compile(expression,
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.cache[expression] = prog
	e.mu.Unlock()
	return prog, nil
}

// document renders an output as the map expressions are evaluated against.
func document(v any) (map[string]any, error) {
	if v == nil {
		return map[string]any{}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to render output document: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("output is not a document: %w", err)
	}
	return doc, nil
}

// hasFunc reports whether a collection holds an element, a map holds a key, or
// a string holds a substring. Usage: has(Tags, "env")
func hasFunc(args ...any) (any, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("has requires exactly 2 arguments, got %d", len(args))
	}
	collection, target := args[0], args[1]
	if collection == nil {
		return false, nil
	}

	v := reflect.ValueOf(collection)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if reflect.DeepEqual(v.Index(i).Interface(), target) {
				return true, nil
			}
		}
		return false, nil
	case reflect.Map:
		key := reflect.ValueOf(target)
		if !key.IsValid() || !key.Type().AssignableTo(v.Type().Key()) {
			return false, nil
		}
		return v.MapIndex(key).IsValid(), nil
	case reflect.String:
		substr, ok := target.(string)
		return ok && substr != "" && strings.Contains(v.String(), substr), nil
	default:
		return false, nil
	}
}

// lengthFunc returns the length of a collection or string, zero for nil.
func lengthFunc(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("length requires exactly 1 argument, got %d", len(args))
	}
	if args[0] == nil {
		return 0, nil
	}
	v := reflect.ValueOf(args[0])
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return v.Len(), nil
	default:
		return nil, fmt.Errorf("length requires a collection or string, got %T", args[0])
	}
}
