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

package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/tombee/awsclient/internal/secrets"
)

// CredentialsProvider returns the provider selected by credentials.source, or nil for
// the anonymous source. With the default source an empty Region is filled from the
// shared config profile.
func (c *Config) CredentialsProvider(ctx context.Context) (aws.CredentialsProvider, error) {
	switch c.Credentials.Source {
	case SourceAnonymous:
		return nil, nil

	case SourceStatic:
		return credentials.NewStaticCredentialsProvider(
			c.Credentials.AccessKeyID,
			c.Credentials.SecretAccessKey,
			c.Credentials.SessionToken,
		), nil

	case SourceKeyring:
		resolver := secrets.NewResolver(secrets.NewEnvBackend(), secrets.NewKeychainBackend())
		return aws.NewCredentialsCache(secrets.NewCredentialsProvider(resolver, c.profile())), nil

	case SourceDefault, "":
		var opts []func(*awsconfig.LoadOptions) error
		if c.Profile != "" && c.Profile != "default" {
			opts = append(opts, awsconfig.WithSharedConfigProfile(c.Profile))
		}
		if c.Region != "" {
			opts = append(opts, awsconfig.WithRegion(c.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("loading default credential chain: %w", err)
		}
		if c.Region == "" {
			c.Region = awsCfg.Region
		}
		return awsCfg.Credentials, nil

	default:
		return nil, fmt.Errorf("unknown credentials source %q", c.Credentials.Source)
	}
}

func (c *Config) profile() string {
	if c.Profile == "" {
		return "default"
	}
	return c.Profile
}
