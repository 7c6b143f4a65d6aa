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

package jq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widgetsDocument() map[string]any {
	return map[string]any{
		"Widgets": []any{
			map[string]any{"Id": "w-1", "Status": "ACTIVE"},
			map[string]any{"Id": "w-2", "Status": "CREATING"},
		},
		"NextToken": nil,
	}
}

func TestExecutor_Execute(t *testing.T) {
	e := NewExecutor(0, 0)

	tests := []struct {
		name       string
		expression string
		want       any
	}{
		{name: "empty expression", expression: "", want: widgetsDocument()},
		{name: "single value", expression: ".Widgets[0].Id", want: "w-1"},
		{name: "multiple values", expression: ".Widgets[].Id", want: []any{"w-1", "w-2"}},
		{name: "no values", expression: "empty", want: nil},
		{name: "select", expression: `[.Widgets[] | select(.Status == "ACTIVE") | .Id]`, want: []any{"w-1"}},
		{name: "length", expression: ".Widgets | length", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Execute(context.Background(), tt.expression, widgetsDocument())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecutor_Errors(t *testing.T) {
	e := NewExecutor(0, 0)

	_, err := e.Execute(context.Background(), ".Widgets[", widgetsDocument())
	assert.ErrorContains(t, err, "invalid jq expression")

	_, err = e.Execute(context.Background(), ".Widgets.Id", widgetsDocument())
	assert.Error(t, err)

	_, err = e.Execute(context.Background(), `error("boom")`, widgetsDocument())
	assert.ErrorContains(t, err, "boom")
}

func TestExecutor_InputSizeLimit(t *testing.T) {
	e := NewExecutor(0, 16)

	_, err := e.Execute(context.Background(), ".", widgetsDocument())
	assert.ErrorContains(t, err, "exceeds maximum")
}

func TestCompile(t *testing.T) {
	q, err := Compile(".Account")
	require.NoError(t, err)
	assert.Equal(t, ".Account", q.String())

	results, err := NewExecutor(0, 0).Run(context.Background(), q, map[string]any{"Account": "123456789012"})
	require.NoError(t, err)
	assert.Equal(t, []any{"123456789012"}, results)
}
