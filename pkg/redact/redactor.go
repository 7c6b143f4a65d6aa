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

// Package redact keeps sensitive values out of logs, traces and error messages.
//
// Generated shapes with sensitive members implement Redactable; everything that
// renders call inputs or outputs goes through Value first. Free-form strings such as
// error bodies go through a pattern-based Redactor.
package redact

import (
	"regexp"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

// SensitiveString replaces sensitive member values.
const SensitiveString = "***SensitiveInformation***"

// Redactable is implemented by shapes with sensitive members.
type Redactable interface {
	// Redacted returns a copy with every sensitive member replaced by
	// SensitiveString. The receiver is not modified.
	Redacted() any
}

// Value returns v.Redacted() when v implements Redactable, and v otherwise.
func Value(v any) any {
	if r, ok := v.(Redactable); ok && r != nil {
		return r.Redacted()
	}
	return v
}

// String returns a pointer to SensitiveString when s is set, and nil otherwise.
// Generated Redacted methods use it for optional string members.
func String(s *string) *string {
	if s == nil {
		return nil
	}
	v := SensitiveString
	return &v
}

// RedactionMode determines the level of redaction applied.
type RedactionMode string

const (
	// ModeNone disables redaction (not recommended for production).
	ModeNone RedactionMode = "none"

	// ModeStandard applies pattern-based redaction for common secrets.
	ModeStandard RedactionMode = "standard"

	// ModeStrict redacts all attribute values (only keys preserved).
	ModeStrict RedactionMode = "strict"
)

// Pattern defines a redaction pattern with a name and regular expression.
type Pattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// StandardPatterns returns the default set of redaction patterns.
func StandardPatterns() []Pattern {
	return []Pattern{
		{
			Name:        "aws_access_key",
			Regex:       regexp.MustCompile(`\b((?:AKIA|ASIA)[0-9A-Z]{16})\b`),
			Replacement: "[REDACTED-AWS-KEY]",
		},
		{
			Name:        "aws_secret_key",
			Regex:       regexp.MustCompile(`(?i)(aws_?secret_?access_?key|SecretAccessKey)["\s:=>]+([A-Za-z0-9/+=]{40})`),
			Replacement: "$1=[REDACTED]",
		},
		{
			Name:        "signature",
			Regex:       regexp.MustCompile(`(?i)(Signature=)([0-9a-f]{64})`),
			Replacement: "$1[REDACTED]",
		},
		{
			Name:        "bearer_token",
			Regex:       regexp.MustCompile(`(?i)(bearer\s+)([a-zA-Z0-9_\-\.]{20,})`),
			Replacement: "$1[REDACTED]",
		},
		{
			Name:        "jwt",
			Regex:       regexp.MustCompile(`eyJ[a-zA-Z0-9_-]*\.eyJ[a-zA-Z0-9_-]*\.[a-zA-Z0-9_-]*`),
			Replacement: "[REDACTED-JWT]",
		},
		{
			Name:        "generic_secret",
			Regex:       regexp.MustCompile(`(?i)(secret|token)["\s:=]+([a-zA-Z0-9_\-]{16,})`),
			Replacement: "$1=[REDACTED]",
		},
	}
}

// Redactor applies redaction rules to free-form strings and attributes.
type Redactor struct {
	mode     RedactionMode
	patterns []Pattern
}

// NewRedactor creates a new redactor with the specified mode.
func NewRedactor(mode RedactionMode) *Redactor {
	return &Redactor{
		mode:     mode,
		patterns: StandardPatterns(),
	}
}

// NewRedactorWithPatterns creates a redactor with custom patterns.
func NewRedactorWithPatterns(mode RedactionMode, patterns []Pattern) *Redactor {
	return &Redactor{
		mode:     mode,
		patterns: patterns,
	}
}

// Default is a standard-mode redactor.
var Default = NewRedactor(ModeStandard)

// RedactString applies redaction patterns to a string value.
func (r *Redactor) RedactString(s string) string {
	if r.mode == ModeNone {
		return s
	}

	if r.mode == ModeStrict {
		return "[REDACTED]"
	}

	result := s
	for _, pattern := range r.patterns {
		result = pattern.Regex.ReplaceAllString(result, pattern.Replacement)
	}
	return result
}

// RedactAttributes applies redaction to span attributes.
func (r *Redactor) RedactAttributes(attrs []attribute.KeyValue) []attribute.KeyValue {
	if r.mode == ModeNone {
		return attrs
	}

	redacted := make([]attribute.KeyValue, len(attrs))
	for i, attr := range attrs {
		key := string(attr.Key)
		value := attr.Value.AsInterface()

		if ShouldRedactKey(key) {
			redacted[i] = attribute.String(key, "[REDACTED]")
			continue
		}

		if strVal, ok := value.(string); ok {
			redacted[i] = attribute.String(key, r.RedactString(strVal))
		} else if r.mode == ModeStrict {
			redacted[i] = attribute.String(key, "[REDACTED]")
		} else {
			redacted[i] = attr
		}
	}
	return redacted
}

// ShouldRedactKey reports whether a key name indicates sensitive data.
func ShouldRedactKey(key string) bool {
	lowerKey := strings.ToLower(key)
	sensitiveKeys := []string{
		"password", "secret", "token",
		"authorization", "credential",
		"cookie", "x-amz-security-token",
	}

	for _, sensitive := range sensitiveKeys {
		if strings.Contains(lowerKey, sensitive) {
			return true
		}
	}
	return false
}
