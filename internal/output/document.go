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

// Package output renders command results as JSON or text.
package output

import (
	"encoding/json"
	"fmt"
)

// metadataKey is the output field carrying response metadata; it is not shown.
const metadataKey = "ResultMetadata"

// ToDocument converts v into a JSON document of map[string]any, []any and
// scalars, dropping response metadata from the top-level object.
func ToDocument(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode output: %w", err)
	}

	if m, ok := doc.(map[string]any); ok {
		delete(m, metadataKey)
	}
	return doc, nil
}
