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

package protocol

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/aws/smithy-go/ptr"
	smithytime "github.com/aws/smithy-go/time"
)

// The Expect helpers coerce one decoded JSON value. A nil value yields a nil
// pointer; any other unexpected type is an error.

// ExpectString coerces a JSON string.
func ExpectString(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", v)
	}
	return ptr.String(s), nil
}

// ExpectBool coerces a JSON boolean.
func ExpectBool(v any) (*bool, error) {
	if v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("expected boolean, got %T", v)
	}
	return ptr.Bool(b), nil
}

// ExpectInt32 coerces a JSON number that must fit in an int32.
func ExpectInt32(v any) (*int32, error) {
	n, err := ExpectInt64(v)
	if err != nil || n == nil {
		return nil, err
	}
	if *n > math.MaxInt32 || *n < math.MinInt32 {
		return nil, fmt.Errorf("value %d overflows int32", *n)
	}
	return ptr.Int32(int32(*n)), nil
}

// ExpectInt64 coerces a JSON integer.
func ExpectInt64(v any) (*int64, error) {
	if v == nil {
		return nil, nil
	}
	num, ok := v.(json.Number)
	if !ok {
		return nil, fmt.Errorf("expected number, got %T", v)
	}
	n, err := num.Int64()
	if err != nil {
		return nil, fmt.Errorf("expected integer, got %s", num)
	}
	return ptr.Int64(n), nil
}

// ExpectFloat64 coerces a JSON number.
func ExpectFloat64(v any) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	num, ok := v.(json.Number)
	if !ok {
		return nil, fmt.Errorf("expected number, got %T", v)
	}
	f, err := num.Float64()
	if err != nil {
		return nil, err
	}
	return ptr.Float64(f), nil
}

// ExpectEpochSeconds coerces an epoch-seconds number (possibly fractional) to a
// UTC time.
func ExpectEpochSeconds(v any) (*time.Time, error) {
	f, err := ExpectFloat64(v)
	if err != nil || f == nil {
		return nil, err
	}
	return ptr.Time(smithytime.ParseEpochSeconds(*f)), nil
}

// ExpectDateTime coerces an RFC 3339 date-time string.
func ExpectDateTime(v any) (*time.Time, error) {
	s, err := ExpectString(v)
	if err != nil || s == nil {
		return nil, err
	}
	t, err := smithytime.ParseDateTime(*s)
	if err != nil {
		return nil, err
	}
	return ptr.Time(t), nil
}

// ExpectBlob coerces a base64 string.
func ExpectBlob(v any) ([]byte, error) {
	s, err := ExpectString(v)
	if err != nil || s == nil {
		return nil, err
	}
	b, err := base64.StdEncoding.DecodeString(*s)
	if err != nil {
		return nil, fmt.Errorf("failed to base64 decode blob, %w", err)
	}
	return b, nil
}

// ExpectObject coerces a JSON object.
func ExpectObject(v any) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected object, got %T", v)
	}
	return m, nil
}

// ExpectArray coerces a JSON array.
func ExpectArray(v any) ([]any, error) {
	if v == nil {
		return nil, nil
	}
	a, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected array, got %T", v)
	}
	return a, nil
}

// FormatEpochSeconds renders t as epoch seconds for query and header bindings.
func FormatEpochSeconds(t time.Time) string {
	return strconv.FormatFloat(smithytime.FormatEpochSeconds(t), 'f', -1, 64)
}
