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

// Command awsclient calls AWS-style services from the command line.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tombee/awsclient/internal/cli"
	"github.com/tombee/awsclient/internal/commands/completion"
	"github.com/tombee/awsclient/internal/commands/compute"
	configcmd "github.com/tombee/awsclient/internal/commands/config"
	"github.com/tombee/awsclient/internal/commands/configure"
	"github.com/tombee/awsclient/internal/commands/identity"
	"github.com/tombee/awsclient/internal/commands/objects"
	"github.com/tombee/awsclient/internal/commands/streams"
	versioncmd "github.com/tombee/awsclient/internal/commands/version"
	"github.com/tombee/awsclient/internal/commands/widgets"
	"github.com/tombee/awsclient/pkg/client"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// Set version information from build-time ldflags
	cli.SetVersion(version, commit, buildDate)
	client.Version = version

	rootCmd := cli.NewRootCommand()

	cli.AddCommands(rootCmd, cli.GroupServices,
		widgets.NewCommand(),
		streams.NewCommand(),
		identity.NewCommand(),
		compute.NewCommand(),
		objects.NewCommand(),
	)
	cli.AddCommands(rootCmd, cli.GroupSetup,
		configure.NewCommand(),
		configcmd.NewCommand(),
		completion.NewCommand(),
		versioncmd.NewVersionCommand(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		cli.HandleExitError(err)
	}
}
