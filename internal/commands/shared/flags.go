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

// Package shared holds state and helpers used by every awsclient command.
package shared

import (
	"github.com/spf13/cobra"
)

// Global flag values - set by root command
var (
	configFlag      string
	regionFlag      string
	endpointURLFlag string
	profileFlag     string
	queryFlag       string
	outputFlag      string
	debugFlag       bool

	// Build-time version information
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// RegisterFlags adds the global flags to cmd's persistent flag set.
func RegisterFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", "", "Path to config file (default: ~/.config/awsclient/config.yaml)")
	flags.StringVar(&regionFlag, "region", "", "Region to send requests to")
	flags.StringVar(&endpointURLFlag, "endpoint-url", "", "Override the service endpoint URL")
	flags.StringVar(&profileFlag, "profile", "", "Credentials profile to use")
	flags.StringVar(&queryFlag, "query", "", "jq expression applied to the command output")
	flags.StringVarP(&outputFlag, "output", "o", "", "Output format: json or text (default: text on a terminal, json otherwise)")
	flags.BoolVar(&debugFlag, "debug", false, "Log every call at debug level")
}

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	version = v
	commit = c
	buildDate = b
}

// GetVersion returns version information
func GetVersion() (string, string, string) {
	return version, commit, buildDate
}

// GetConfigPath returns the config file path
func GetConfigPath() string {
	return configFlag
}

// GetQuery returns the --query expression
func GetQuery() string {
	return queryFlag
}

// GetOutput returns the --output format
func GetOutput() string {
	return outputFlag
}

// ResetFlagsForTest restores every global flag to its zero value.
func ResetFlagsForTest() {
	configFlag, regionFlag, endpointURLFlag, profileFlag = "", "", "", ""
	queryFlag, outputFlag = "", ""
	debugFlag = false
}

// GetRegion returns the --region flag value
func GetRegion() string {
	return regionFlag
}

// GetEndpointURL returns the --endpoint-url flag value
func GetEndpointURL() string {
	return endpointURLFlag
}

// GetProfile returns the --profile flag value
func GetProfile() string {
	return profileFlag
}
