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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tombee/awsclient/internal/commands/completion"
	"github.com/tombee/awsclient/internal/commands/shared"
)

// Command groups.
const (
	GroupServices = "services"
	GroupSetup    = "setup"
)

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	shared.SetVersion(v, c, b)
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "awsclient",
		Short: "awsclient - call AWS-style services from the command line",
		Long: `awsclient sends signed requests to AWS-style services using the
restJson1, awsJson1_1, restXml, awsQuery and ec2Query protocols.

Run 'awsclient configure' to set a default region and credentials.`,
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes
	}

	// The binary registers its own completion command.
	cmd.CompletionOptions.DisableDefaultCmd = true

	shared.RegisterFlags(cmd)
	// Only fails when a global flag is missing or registered twice.
	if err := completion.RegisterFlagCompletions(cmd); err != nil {
		panic(fmt.Sprintf("registering flag completions: %v", err))
	}
	cmd.AddGroup(
		&cobra.Group{ID: GroupServices, Title: "Service Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
	)
	cmd.SetHelpCommand(NewHelpCommand(cmd))

	return cmd
}

// AddCommands adds cmds to root under group.
func AddCommands(root *cobra.Command, group string, cmds ...*cobra.Command) {
	for _, c := range cmds {
		c.GroupID = group
		root.AddCommand(c)
	}
}

// GetVersion returns version information
func GetVersion() (string, string, string) {
	return shared.GetVersion()
}

// HandleExitError handles an error and exits with the appropriate code
func HandleExitError(err error) {
	shared.HandleExitError(err)
}
