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

package completion

import (
	"github.com/spf13/cobra"

	"github.com/tombee/awsclient/internal/commands/shared"
	"github.com/tombee/awsclient/internal/config"
	"github.com/tombee/awsclient/internal/output"
)

// SafeCompletionWrapper runs fn and turns a panic or nil result into an empty list.
func SafeCompletionWrapper(fn func() ([]string, cobra.ShellCompDirective)) (results []string, directive cobra.ShellCompDirective) {
	results = []string{}
	directive = cobra.ShellCompDirectiveNoFileComp

	defer func() {
		if r := recover(); r != nil {
			results = []string{}
			directive = cobra.ShellCompDirectiveNoFileComp
		}
	}()

	results, directive = fn()
	if results == nil {
		results = []string{}
	}
	return results, directive
}

// CompleteOutputFormats provides completion for --output flag values.
func CompleteOutputFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return SafeCompletionWrapper(func() ([]string, cobra.ShellCompDirective) {
		return []string{
			output.FormatJSON + "\tIndented JSON",
			output.FormatText + "\tAligned key: value text",
		}, cobra.ShellCompDirectiveNoFileComp
	})
}

// CompleteCredentialsSources provides completion for --credentials-source flag values.
func CompleteCredentialsSources(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return SafeCompletionWrapper(func() ([]string, cobra.ShellCompDirective) {
		return []string{
			config.SourceDefault + "\tSDK default chain (env, shared files, SSO)",
			config.SourceKeyring + "\tSystem keychain",
			config.SourceStatic + "\tKeys in the config file",
			config.SourceAnonymous + "\tUnsigned requests",
		}, cobra.ShellCompDirectiveNoFileComp
	})
}

// CompleteConfiguredRegion offers the region from the config file.
func CompleteConfiguredRegion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return SafeCompletionWrapper(func() ([]string, cobra.ShellCompDirective) {
		cfg, err := config.Load(shared.GetConfigPath())
		if err != nil || cfg.Region == "" {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return []string{cfg.Region}, cobra.ShellCompDirectiveNoFileComp
	})
}

// RegisterFlagCompletions attaches value completions to the global flags of root.
func RegisterFlagCompletions(root *cobra.Command) error {
	if err := root.RegisterFlagCompletionFunc("output", CompleteOutputFormats); err != nil {
		return err
	}
	return root.RegisterFlagCompletionFunc("region", CompleteConfiguredRegion)
}
