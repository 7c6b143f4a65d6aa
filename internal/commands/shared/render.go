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

package shared

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tombee/awsclient/internal/jq"
	"github.com/tombee/awsclient/internal/output"
	"github.com/tombee/awsclient/pkg/redact"
)

// Render writes a command result in the selected output format after applying
// --query. Sensitive members are masked unless reveal is set.
func Render(cmd *cobra.Command, v any, reveal bool) error {
	if !reveal {
		v = redact.Value(v)
	}

	doc, err := output.ToDocument(v)
	if err != nil {
		return err
	}

	if queryFlag != "" {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		doc, err = jq.NewExecutor(0, 0).Execute(ctx, queryFlag, doc)
		if err != nil {
			return NewInvalidInputError("applying --query", err)
		}
	}

	w := cmd.OutOrStdout()
	format := outputFlag
	if format == "" {
		format = output.Detect(w)
	}

	formatter, err := output.New(format)
	if err != nil {
		return NewInvalidInputError("invalid --output", err)
	}
	// Styled labels only on a terminal.
	if text, ok := formatter.(*output.TextFormatter); ok && output.Detect(w) == output.FormatText {
		text.Label = &Muted
	}
	return formatter.Format(w, doc)
}
