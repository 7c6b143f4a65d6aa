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

// Package widgets implements the widgets command group.
package widgets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/smithy-go/ptr"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tombee/awsclient/internal/commands/shared"
	"github.com/tombee/awsclient/pkg/waiter"
	widgetsapi "github.com/tombee/awsclient/services/widgets"
)

// NewCommand creates the widgets command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "widgets",
		Short: "Manage widgets (restJson1)",
	}

	cmd.AddCommand(
		newGetCommand(),
		newCreateCommand(),
		newListCommand(),
		newDeleteCommand(),
		newWaitCommand(),
	)
	return cmd
}

func withClient(cmd *cobra.Command, fn func(ctx context.Context, c *widgetsapi.Client) error) error {
	return shared.Run(cmd, func(ctx context.Context, s *shared.Session) error {
		c, err := widgetsapi.New(s.Client)
		if err != nil {
			return shared.NewConfigError("creating widgets client", err)
		}
		return fn(ctx, c)
	})
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Describe a widget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *widgetsapi.Client) error {
				out, err := c.GetWidget(ctx, &widgetsapi.GetWidgetInput{Id: ptr.String(args[0])})
				if err != nil {
					return err
				}
				return shared.Render(cmd, out, false)
			})
		},
	}
}

func newCreateCommand() *cobra.Command {
	var (
		name        string
		secret      string
		tags        []string
		clientToken string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a widget",
		Example: `  awsclient widgets create --name blue --tag team=infra --tag env=dev`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tagMap, err := parseTags(tags)
			if err != nil {
				return shared.NewInvalidInputError("invalid --tag", err)
			}
			if clientToken == "" {
				clientToken = uuid.NewString()
			}

			in := &widgetsapi.CreateWidgetInput{
				Name:        ptr.String(name),
				Tags:        tagMap,
				ClientToken: ptr.String(clientToken),
			}
			if secret != "" {
				in.Secret = ptr.String(secret)
			}

			return withClient(cmd, func(ctx context.Context, c *widgetsapi.Client) error {
				out, err := c.CreateWidget(ctx, in)
				if err != nil {
					return err
				}
				return shared.Render(cmd, out, false)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Widget name (required)")
	cmd.Flags().StringVar(&secret, "secret", "", "Secret stored with the widget")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag as key=value (repeatable)")
	cmd.Flags().StringVar(&clientToken, "client-token", "", "Idempotency token (default: random UUID)")
	return cmd
}

func newListCommand() *cobra.Command {
	var (
		status   string
		pageSize int32
		maxItems int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List widgets, following every page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &widgetsapi.ListWidgetsInput{Status: widgetsapi.WidgetStatus(strings.ToUpper(status))}
			if pageSize > 0 {
				in.MaxResults = ptr.Int32(pageSize)
			}

			return withClient(cmd, func(ctx context.Context, c *widgetsapi.Client) error {
				all := &widgetsapi.ListWidgetsOutput{Widgets: []widgetsapi.Widget{}}
				p := widgetsapi.NewListWidgetsPaginator(c, in)
				for p.HasMorePages() {
					page, err := p.NextPage(ctx)
					if err != nil {
						return err
					}
					all.Widgets = append(all.Widgets, page.Widgets...)
					if maxItems > 0 && len(all.Widgets) >= maxItems {
						all.Widgets = all.Widgets[:maxItems]
						all.NextToken = page.NextToken
						break
					}
				}
				return shared.Render(cmd, all, false)
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only list widgets with this status")
	cmd.Flags().Int32Var(&pageSize, "page-size", 0, "Widgets requested per call")
	cmd.Flags().IntVar(&maxItems, "max-items", 0, "Stop after this many widgets")
	return cmd
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a widget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *widgetsapi.Client) error {
				if _, err := c.DeleteWidget(ctx, &widgetsapi.DeleteWidgetInput{Id: ptr.String(args[0])}); err != nil {
					return err
				}
				cmd.PrintErrln(shared.RenderOK("Deleted widget " + args[0]))
				return nil
			})
		},
	}
}

func newWaitCommand() *cobra.Command {
	var (
		maxWait  time.Duration
		minDelay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "wait <id>",
		Short: "Wait until a widget is ACTIVE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *widgetsapi.Client) error {
				w, err := widgetsapi.NewWidgetActiveWaiter(c, func(o *waiter.Options) {
					if minDelay > 0 {
						o.MinDelay = minDelay
						if o.MaxDelay < minDelay {
							o.MaxDelay = minDelay
						}
					}
				})
				if err != nil {
					return err
				}
				out, err := w.Wait(ctx, &widgetsapi.GetWidgetInput{Id: ptr.String(args[0])}, maxWait)
				if err != nil {
					return err
				}
				return shared.Render(cmd, out, false)
			})
		},
	}

	cmd.Flags().DurationVar(&maxWait, "max-wait", 10*time.Minute, "Give up after this long")
	cmd.Flags().DurationVar(&minDelay, "delay", 0, "Minimum delay between polls (default: 5s)")
	return cmd
}

func parseTags(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	tags := make(map[string]string, len(raw))
	for _, kv := range raw {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", kv)
		}
		tags[k] = v
	}
	return tags, nil
}
