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

// Package config implements the config command, which inspects the effective
// configuration.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tombee/awsclient/internal/commands/shared"
	"github.com/tombee/awsclient/internal/config"
	"github.com/tombee/awsclient/internal/log"
	"github.com/tombee/awsclient/internal/output"
)

// NewCommand creates the config command with subcommands
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View the effective configuration",
		Long: `View the effective awsclient configuration.

Subcommands:
  show     - Display the config file merged with environment overrides
  path     - Show config file location
  validate - Check the configuration without sending a request`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigPathCommand())
	cmd.AddCommand(newValidateCommand())

	// If no subcommand provided, default to 'show'
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd, args)
	}

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long: `Display the current effective configuration.

Static credentials are masked.
Use --output json for machine-readable output.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show config file location",
		Long:  `Display the path to the configuration file.`,
		Args:  cobra.NoArgs,
		RunE:  runConfigPath,
	}
}

func configPath() (string, error) {
	if p := shared.GetConfigPath(); p != "" {
		return p, nil
	}
	p, err := config.ConfigPath()
	if err != nil {
		return "", shared.NewConfigError("failed to determine config path", err)
	}
	return p, nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(shared.GetConfigPath())
	if err != nil {
		return shared.NewConfigError("failed to load config", err)
	}

	masked := maskSensitiveConfig(cfg)

	if shared.GetOutput() == output.FormatJSON || shared.GetQuery() != "" {
		return shared.Render(cmd, masked, true)
	}
	return outputConfigYAML(cmd.OutOrStdout(), masked)
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	p, err := configPath()
	if err != nil {
		return err
	}
	cmd.Println(p)
	return nil
}

// maskSensitiveConfig creates a copy of config with sensitive values masked
func maskSensitiveConfig(cfg *config.Config) *config.Config {
	masked := *cfg
	if masked.Credentials.AccessKeyID != "" {
		masked.Credentials.AccessKeyID = log.SanitizeAccessKey(masked.Credentials.AccessKeyID)
	}
	if masked.Credentials.SecretAccessKey != "" {
		masked.Credentials.SecretAccessKey = "****"
	}
	if masked.Credentials.SessionToken != "" {
		masked.Credentials.SessionToken = "****"
	}
	if len(cfg.Tracing.Headers) > 0 {
		masked.Tracing.Headers = make(map[string]string, len(cfg.Tracing.Headers))
		for k := range cfg.Tracing.Headers {
			masked.Tracing.Headers[k] = "****"
		}
	}
	return &masked
}

func outputConfigYAML(w io.Writer, cfg *config.Config) error {
	p, err := configPath()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Configuration: %s\n", p)
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return encoder.Close()
}
