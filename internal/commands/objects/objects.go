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

// Package objects implements the objects command group.
package objects

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/smithy-go/ptr"
	"github.com/spf13/cobra"

	"github.com/tombee/awsclient/internal/commands/shared"
	objectsapi "github.com/tombee/awsclient/services/objects"
)

// NewCommand creates the objects command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "objects",
		Short: "Read and write object tags (restXml)",
	}
	cmd.AddCommand(newGetTaggingCommand(), newPutTaggingCommand())
	return cmd
}

type objectFlags struct {
	versionID   string
	bucketOwner string
}

func (f *objectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.versionID, "version-id", "", "Object version")
	cmd.Flags().StringVar(&f.bucketOwner, "expected-bucket-owner", "", "Fail unless the bucket belongs to this account")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return ptr.String(s)
}

func withClient(cmd *cobra.Command, fn func(ctx context.Context, c *objectsapi.Client) error) error {
	return shared.Run(cmd, func(ctx context.Context, s *shared.Session) error {
		c, err := objectsapi.New(s.Client)
		if err != nil {
			return shared.NewConfigError("creating objects client", err)
		}
		return fn(ctx, c)
	})
}

func newGetTaggingCommand() *cobra.Command {
	var of objectFlags

	cmd := &cobra.Command{
		Use:   "get-tagging <bucket> <key>",
		Short: "Show the tags of an object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &objectsapi.GetObjectTaggingInput{
				Bucket:              ptr.String(args[0]),
				Key:                 ptr.String(args[1]),
				VersionId:           optional(of.versionID),
				ExpectedBucketOwner: optional(of.bucketOwner),
			}
			return withClient(cmd, func(ctx context.Context, c *objectsapi.Client) error {
				out, err := c.GetObjectTagging(ctx, in)
				if err != nil {
					return err
				}
				return shared.Render(cmd, out, false)
			})
		},
	}
	of.register(cmd)
	return cmd
}

func newPutTaggingCommand() *cobra.Command {
	var (
		of   objectFlags
		tags []string
	)

	cmd := &cobra.Command{
		Use:     "put-tagging <bucket> <key>",
		Short:   "Replace the tags of an object",
		Example: `  awsclient objects put-tagging photos 2024/cat.jpg --tag owner=alice --tag public=false`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tagSet, err := parseTagSet(tags)
			if err != nil {
				return shared.NewInvalidInputError("invalid --tag", err)
			}

			in := &objectsapi.PutObjectTaggingInput{
				Bucket:              ptr.String(args[0]),
				Key:                 ptr.String(args[1]),
				TagSet:              tagSet,
				VersionId:           optional(of.versionID),
				ExpectedBucketOwner: optional(of.bucketOwner),
			}
			return withClient(cmd, func(ctx context.Context, c *objectsapi.Client) error {
				out, err := c.PutObjectTagging(ctx, in)
				if err != nil {
					return err
				}
				return shared.Render(cmd, out, false)
			})
		},
	}
	of.register(cmd)
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag as key=value (repeatable)")
	return cmd
}

// parseTagSet keeps flag order and rejects repeated keys.
func parseTagSet(raw []string) ([]objectsapi.Tag, error) {
	seen := make(map[string]bool, len(raw))
	tagSet := make([]objectsapi.Tag, 0, len(raw))
	for _, kv := range raw {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", kv)
		}
		if seen[k] {
			return nil, fmt.Errorf("duplicate tag key %q", k)
		}
		seen[k] = true
		tagSet = append(tagSet, objectsapi.Tag{Key: ptr.String(k), Value: ptr.String(v)})
	}
	return tagSet, nil
}
