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

// Package configure implements the configure command, which writes the config
// file and stores keyring credentials.
package configure

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/tombee/awsclient/internal/commands/completion"
	"github.com/tombee/awsclient/internal/commands/shared"
	"github.com/tombee/awsclient/internal/config"
	"github.com/tombee/awsclient/internal/secrets"
	"github.com/tombee/awsclient/pkg/wire"
)

// answers collects configure input from flags or the interactive form.
type answers struct {
	Region          string
	EndpointURL     string
	Profile         string
	Source          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// Replaced in tests.
var (
	promptAnswers = runForm
	newResolver   = func() *secrets.Resolver {
		return secrets.NewResolver(secrets.NewEnvBackend(), secrets.NewKeychainBackend())
	}
)

// NewCommand creates the configure command.
func NewCommand() *cobra.Command {
	var a answers
	var nonInteractive bool

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Write the awsclient config file",
		Long: `Set the default region, endpoint and credentials source.

The global --region, --endpoint-url and --profile flags set the stored values.
With no flags on a terminal, configure prompts for each value. Access keys for
the keyring source are stored in the OS keychain, never in the config file.`,
		Example: `  # Interactive
  awsclient configure

  # Scripted, keys stored in the keychain
  awsclient configure --region us-west-2 --credentials-source keyring \
    --access-key-id AKID --secret-access-key SECRET`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Region = shared.GetRegion()
			a.EndpointURL = shared.GetEndpointURL()
			a.Profile = shared.GetProfile()
			interactive := !nonInteractive && !a.any() && !shared.IsNonInteractive()
			return run(cmd, a, interactive)
		},
	}

	f := cmd.Flags()
	f.StringVar(&a.Source, "credentials-source", "", "Credentials source: default, keyring, static or anonymous")
	f.StringVar(&a.AccessKeyID, "access-key-id", "", "Access key id (keyring and static sources)")
	f.StringVar(&a.SecretAccessKey, "secret-access-key", "", "Secret access key (keyring and static sources)")
	f.StringVar(&a.SessionToken, "session-token", "", "Optional session token")
	f.BoolVar(&nonInteractive, "non-interactive", false, "Never prompt")
	_ = cmd.RegisterFlagCompletionFunc("credentials-source", completion.CompleteCredentialsSources)

	return cmd
}

func run(cmd *cobra.Command, a answers, interactive bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	f, err := config.NewFile(shared.GetConfigPath())
	if err != nil {
		return shared.NewConfigError("locating config file", err)
	}

	if interactive {
		var current *config.Config
		if err := f.WithLock(func() error {
			var err error
			current, err = f.Read()
			return err
		}); err != nil {
			return shared.NewConfigError("reading config file", err)
		}
		a = answersFrom(current)
		if err := promptAnswers(&a); err != nil {
			return err
		}
	}

	if err := a.validate(); err != nil {
		return shared.NewInvalidInputError("invalid configure input", err)
	}

	if a.Source == config.SourceKeyring && a.AccessKeyID != "" {
		creds := aws.Credentials{
			AccessKeyID:     a.AccessKeyID,
			SecretAccessKey: a.SecretAccessKey,
			SessionToken:    a.SessionToken,
		}
		if err := secrets.StoreCredentials(ctx, newResolver(), profileOrDefault(a.Profile), creds); err != nil {
			return fmt.Errorf("storing credentials: %w", err)
		}
	}

	if err := config.Update(f.Path(), a.apply); err != nil {
		return shared.NewConfigError("writing config file", err)
	}

	cmd.Println(shared.RenderOK("Configuration saved to " + f.Path()))
	return nil
}

// any reports whether any value was given on the command line.
func (a answers) any() bool {
	return a != answers{}
}

func answersFrom(cfg *config.Config) answers {
	return answers{
		Region:      cfg.Region,
		EndpointURL: cfg.EndpointURL,
		Profile:     cfg.Profile,
		Source:      cfg.Credentials.Source,
	}
}

func (a answers) validate() error {
	if a.EndpointURL != "" {
		if _, err := wire.ParseEndpoint(a.EndpointURL); err != nil {
			return err
		}
	}
	switch a.Source {
	case "", config.SourceDefault, config.SourceAnonymous:
	case config.SourceKeyring:
		if (a.AccessKeyID == "") != (a.SecretAccessKey == "") {
			return errors.New("access key id and secret access key must be given together")
		}
	case config.SourceStatic:
		if a.AccessKeyID == "" || a.SecretAccessKey == "" {
			return errors.New("static credentials need an access key id and secret access key")
		}
	default:
		return fmt.Errorf("unknown credentials source %q", a.Source)
	}
	return nil
}

// apply merges the non-empty answers into cfg. Keyring secrets never reach the file.
func (a answers) apply(cfg *config.Config) error {
	if a.Region != "" {
		cfg.Region = a.Region
	}
	if a.EndpointURL != "" {
		cfg.EndpointURL = a.EndpointURL
	}
	if a.Profile != "" {
		cfg.Profile = a.Profile
	}
	if a.Source != "" {
		cfg.Credentials.Source = a.Source
	}

	cfg.Credentials.AccessKeyID = ""
	cfg.Credentials.SecretAccessKey = ""
	cfg.Credentials.SessionToken = ""
	if cfg.Credentials.Source == config.SourceStatic {
		cfg.Credentials.AccessKeyID = a.AccessKeyID
		cfg.Credentials.SecretAccessKey = a.SecretAccessKey
		cfg.Credentials.SessionToken = a.SessionToken
	}
	return nil
}

func profileOrDefault(p string) string {
	if p == "" {
		return "default"
	}
	return p
}

func runForm(a *answers) error {
	if a.Source == "" {
		a.Source = config.SourceDefault
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default region").
				Placeholder("us-east-1").
				Value(&a.Region),
			huh.NewInput().
				Title("Endpoint URL").
				Description("Leave empty to resolve endpoints from the region").
				Value(&a.EndpointURL).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := wire.ParseEndpoint(s)
					return err
				}),
			huh.NewInput().
				Title("Profile").
				Placeholder("default").
				Value(&a.Profile),
			huh.NewSelect[string]().
				Title("Credentials source").
				Options(
					huh.NewOption("Default chain (env, shared files, SSO)", config.SourceDefault),
					huh.NewOption("OS keychain", config.SourceKeyring),
					huh.NewOption("Config file (static keys)", config.SourceStatic),
					huh.NewOption("Anonymous", config.SourceAnonymous),
				).
				Value(&a.Source),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Access key id").
				Value(&a.AccessKeyID).
				Validate(required),
			huh.NewInput().
				Title("Secret access key").
				EchoMode(huh.EchoModePassword).
				Value(&a.SecretAccessKey).
				Validate(required),
			huh.NewInput().
				Title("Session token").
				Description("Optional").
				EchoMode(huh.EchoModePassword).
				Value(&a.SessionToken),
		).WithHideFunc(func() bool {
			return a.Source != config.SourceKeyring && a.Source != config.SourceStatic
		}),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return &shared.ExitError{Code: shared.ExitFailed, Message: "configure cancelled"}
		}
		return err
	}
	return nil
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}
