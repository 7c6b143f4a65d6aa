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

// Package compute implements the compute command group.
package compute

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/smithy-go/ptr"
	"github.com/spf13/cobra"

	"github.com/tombee/awsclient/internal/commands/shared"
	computeapi "github.com/tombee/awsclient/services/compute"
)

// NewCommand creates the compute command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Query the compute service (ec2Query)",
	}
	cmd.AddCommand(newRegionsCommand())
	return cmd
}

func newRegionsCommand() *cobra.Command {
	var (
		all     bool
		dryRun  bool
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "regions [region-name...]",
		Short: "Describe regions",
		Example: `  awsclient compute regions --all --filter opt-in-status=opted-in,not-opted-in`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseFilters(filters)
			if err != nil {
				return shared.NewInvalidInputError("invalid --filter", err)
			}

			in := &computeapi.DescribeRegionsInput{Filters: parsed}
			if len(args) > 0 {
				in.RegionNames = args
			}
			if all {
				in.AllRegions = ptr.Bool(true)
			}
			if dryRun {
				in.DryRun = ptr.Bool(true)
			}

			return shared.Run(cmd, func(ctx context.Context, s *shared.Session) error {
				c, err := computeapi.New(s.Client)
				if err != nil {
					return shared.NewConfigError("creating compute client", err)
				}
				out, err := c.DescribeRegions(ctx, in)
				if err != nil {
					return err
				}
				return shared.Render(cmd, out, false)
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include regions not enabled for the account")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Check permissions only")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Filter as name=value[,value...] (repeatable)")
	return cmd
}

func parseFilters(raw []string) ([]computeapi.Filter, error) {
	var filters []computeapi.Filter
	for _, f := range raw {
		name, values, ok := strings.Cut(f, "=")
		if !ok || name == "" || values == "" {
			return nil, fmt.Errorf("expected name=value[,value...], got %q", f)
		}
		filters = append(filters, computeapi.Filter{
			Name:   ptr.String(name),
			Values: strings.Split(values, ","),
		})
	}
	return filters, nil
}
