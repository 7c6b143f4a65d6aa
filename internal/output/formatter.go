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

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Output format names accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Formatter writes a JSON document to w.
type Formatter interface {
	Format(w io.Writer, doc any) error
}

// New returns the formatter named format.
func New(format string) (Formatter, error) {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}, nil
	case FormatText:
		return &TextFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected json or text)", format)
	}
}

// Detect picks text for terminals and JSON for pipes and files.
func Detect(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return FormatText
	}
	return FormatJSON
}

// JSONFormatter implements Formatter for JSON output
type JSONFormatter struct {
	Indent string
}

// Format writes doc as JSON followed by a newline.
func (f *JSONFormatter) Format(w io.Writer, doc any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", f.Indent)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(doc)
}

// TextFormatter implements Formatter for human-readable text output. Objects
// render as sorted "key: value" lines, nested values are indented and lists of
// scalars are joined with commas.
type TextFormatter struct {
	// Label styles keys. Nil renders them unstyled.
	Label *lipgloss.Style
}

// Format writes doc as indented text.
func (f *TextFormatter) Format(w io.Writer, doc any) error {
	var b strings.Builder
	f.write(&b, doc, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func (f *TextFormatter) write(b *strings.Builder, v any, depth int) {
	indent := strings.Repeat("  ", depth)

	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			if val[k] != nil {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			label := f.label(k)
			if isScalar(val[k]) || isScalarList(val[k]) {
				fmt.Fprintf(b, "%s%s %s\n", indent, label, scalarText(val[k]))
				continue
			}
			fmt.Fprintf(b, "%s%s\n", indent, label)
			f.write(b, val[k], depth+1)
		}

	case []any:
		if isScalarList(val) {
			fmt.Fprintf(b, "%s%s\n", indent, scalarText(val))
			return
		}
		for i, item := range val {
			if i > 0 {
				b.WriteString("\n")
			}
			f.write(b, item, depth)
		}

	default:
		fmt.Fprintf(b, "%s%s\n", indent, scalarText(val))
	}
}

func (f *TextFormatter) label(key string) string {
	if f.Label == nil {
		return key + ":"
	}
	return f.Label.Render(key + ":")
}

func isScalar(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return false
	default:
		return true
	}
}

func isScalarList(v any) bool {
	list, ok := v.([]any)
	if !ok {
		return false
	}
	for _, item := range list {
		if !isScalar(item) {
			return false
		}
	}
	return true
}

func scalarText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, scalarText(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}
