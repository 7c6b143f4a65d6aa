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

// Package streams implements the streams command group.
package streams

import (
	"context"
	"io"
	"os"

	"github.com/aws/smithy-go/ptr"
	"github.com/spf13/cobra"

	"github.com/tombee/awsclient/internal/commands/shared"
	streamsapi "github.com/tombee/awsclient/services/streams"
)

// NewCommand creates the streams command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streams",
		Short: "Describe and write to data streams (awsJson1_1)",
	}
	cmd.AddCommand(newDescribeCommand(), newPutCommand())
	return cmd
}

func withClient(cmd *cobra.Command, fn func(ctx context.Context, c *streamsapi.Client) error) error {
	return shared.Run(cmd, func(ctx context.Context, s *shared.Session) error {
		c, err := streamsapi.New(s.Client)
		if err != nil {
			return shared.NewConfigError("creating streams client", err)
		}
		return fn(ctx, c)
	})
}

func newDescribeCommand() *cobra.Command {
	var (
		limit      int32
		startShard string
	)

	cmd := &cobra.Command{
		Use:   "describe <stream-name>",
		Short: "Describe a stream and its shards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &streamsapi.DescribeStreamInput{StreamName: ptr.String(args[0])}
			if limit > 0 {
				in.Limit = ptr.Int32(limit)
			}
			if startShard != "" {
				in.ExclusiveStartShardId = ptr.String(startShard)
			}

			return withClient(cmd, func(ctx context.Context, c *streamsapi.Client) error {
				out, err := c.DescribeStream(ctx, in)
				if err != nil {
					return err
				}
				return shared.Render(cmd, out, false)
			})
		},
	}

	cmd.Flags().Int32Var(&limit, "limit", 0, "Maximum shards to return")
	cmd.Flags().StringVar(&startShard, "exclusive-start-shard-id", "", "List shards after this one")
	return cmd
}

func newPutCommand() *cobra.Command {
	var (
		partitionKey string
		data         string
		dataFile     string
		hashKey      string
	)

	cmd := &cobra.Command{
		Use:   "put <stream-name>",
		Short: "Write one record",
		Example: `  awsclient streams put clicks --partition-key user-1 --data '{"page":"/"}'
  cat event.bin | awsclient streams put clicks --partition-key user-1 --data-file -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := []byte(data)
			if dataFile != "" {
				var err error
				if payload, err = readData(cmd, dataFile); err != nil {
					return shared.NewInvalidInputError("reading --data-file", err)
				}
			}

			in := &streamsapi.PutRecordInput{
				StreamName:   ptr.String(args[0]),
				PartitionKey: ptr.String(partitionKey),
				Data:         payload,
			}
			if hashKey != "" {
				in.ExplicitHashKey = ptr.String(hashKey)
			}

			return withClient(cmd, func(ctx context.Context, c *streamsapi.Client) error {
				out, err := c.PutRecord(ctx, in)
				if err != nil {
					return err
				}
				return shared.Render(cmd, out, false)
			})
		},
	}

	cmd.Flags().StringVar(&partitionKey, "partition-key", "", "Partition key (required)")
	cmd.Flags().StringVar(&data, "data", "", "Record payload")
	cmd.Flags().StringVar(&dataFile, "data-file", "", "Read the payload from a file, or - for stdin")
	cmd.Flags().StringVar(&hashKey, "explicit-hash-key", "", "Override the partition key hash")
	cmd.MarkFlagsMutuallyExclusive("data", "data-file")
	return cmd
}

func readData(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
