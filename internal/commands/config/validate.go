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

package config

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tombee/awsclient/internal/commands/shared"
	"github.com/tombee/awsclient/internal/config"
	"github.com/tombee/awsclient/internal/output"
	awserrors "github.com/tombee/awsclient/pkg/errors"
)

// ValidationResult represents the result of config validation.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Path     string   `json:"path"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func newValidateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validate the configuration file and environment overrides.

Checks performed:
  - YAML syntax and structure
  - Field values (endpoint URL, credentials source, retry and rate limits)
  - A region is set, unless every request uses --endpoint-url

With --strict, warnings are treated as errors.`,
		Example: `  # Validate configuration
  awsclient config validate

  # Get validation result as JSON
  awsclient config validate --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors")

	return cmd
}

func runValidate(cmd *cobra.Command, strict bool) error {
	p, err := configPath()
	if err != nil {
		return err
	}

	result := ValidationResult{Valid: true, Path: p}
	cfg, err := config.Load(shared.GetConfigPath())
	if err != nil {
		result.Valid = false
		result.Errors = splitErrors(err)
	} else {
		result.Warnings = warnings(cfg)
		if strict && len(result.Warnings) > 0 {
			result.Valid = false
		}
	}

	if shared.GetOutput() == output.FormatJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else {
		for _, e := range result.Errors {
			cmd.Println(shared.RenderError(e))
		}
		for _, w := range result.Warnings {
			cmd.Println(shared.RenderWarn(w))
		}
		if result.Valid {
			cmd.Println(shared.RenderOK("Configuration is valid: " + p))
		}
	}

	if !result.Valid {
		return &shared.ExitError{Code: shared.ExitConfigError, Message: "configuration is invalid"}
	}
	return nil
}

func warnings(cfg *config.Config) []string {
	var w []string
	if cfg.Region == "" && cfg.EndpointURL == "" {
		w = append(w, "no region set; requests will fail unless --region or AWS_REGION is given")
	}
	if cfg.Credentials.Source == config.SourceStatic {
		w = append(w, "static credentials are stored in plain text; consider the keyring source")
	}
	return w
}

// splitErrors turns a multi-line validation error into one entry per problem.
func splitErrors(err error) []string {
	msg := err.Error()
	var cfgErr *awserrors.ConfigError
	if errors.As(err, &cfgErr) && cfgErr.Cause != nil {
		msg = cfgErr.Cause.Error()
	}

	lines := strings.Split(msg, "\n")
	if len(lines) > 1 {
		lines = lines[1:]
	}
	var errs []string
	for _, line := range lines {
		line = strings.TrimPrefix(strings.TrimSpace(line), "- ")
		if line != "" {
			errs = append(errs, line)
		}
	}
	return errs
}
