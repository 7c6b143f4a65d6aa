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

// Package identity implements the identity command group.
package identity

import (
	"context"
	"time"

	"github.com/aws/smithy-go/ptr"
	"github.com/spf13/cobra"

	"github.com/tombee/awsclient/internal/commands/shared"
	identityapi "github.com/tombee/awsclient/services/identity"
)

// NewCommand creates the identity command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Inspect the calling identity (awsQuery)",
	}
	cmd.AddCommand(newWhoAmICommand(), newSessionTokenCommand())
	return cmd
}

func withClient(cmd *cobra.Command, fn func(ctx context.Context, c *identityapi.Client) error) error {
	return shared.Run(cmd, func(ctx context.Context, s *shared.Session) error {
		c, err := identityapi.New(s.Client)
		if err != nil {
			return shared.NewConfigError("creating identity client", err)
		}
		return fn(ctx, c)
	})
}

func newWhoAmICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account and ARN of the caller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *identityapi.Client) error {
				out, err := c.GetCallerIdentity(ctx, &identityapi.GetCallerIdentityInput{})
				if err != nil {
					return err
				}
				return shared.Render(cmd, out, false)
			})
		},
	}
}

func newSessionTokenCommand() *cobra.Command {
	var (
		duration     time.Duration
		serialNumber string
		tokenCode    string
		reveal       bool
	)

	cmd := &cobra.Command{
		Use:   "session-token",
		Short: "Issue temporary credentials",
		Long: `Issue temporary credentials for the caller.

The secret access key and session token are masked unless --reveal is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &identityapi.GetSessionTokenInput{}
			if duration > 0 {
				in.DurationSeconds = ptr.Int32(int32(duration / time.Second))
			}
			if serialNumber != "" {
				in.SerialNumber = ptr.String(serialNumber)
			}
			if tokenCode != "" {
				in.TokenCode = ptr.String(tokenCode)
			}

			return withClient(cmd, func(ctx context.Context, c *identityapi.Client) error {
				out, err := c.GetSessionToken(ctx, in)
				if err != nil {
					return err
				}
				return shared.Render(cmd, out, reveal)
			})
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 0, "Credential lifetime, 15m to 36h (default: service default)")
	cmd.Flags().StringVar(&serialNumber, "serial-number", "", "MFA device serial number or ARN")
	cmd.Flags().StringVar(&tokenCode, "token-code", "", "Current MFA code")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the secret key and session token in clear")
	return cmd
}
