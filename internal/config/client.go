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

	"github.com/tombee/awsclient/internal/log"
	"github.com/tombee/awsclient/pkg/client"
	"github.com/tombee/awsclient/pkg/transport"
)

// ClientConfig converts the file configuration into service-independent client
// configuration. Services fill in their own ServiceID, SigningName and
// EndpointPrefix.
func (c *Config) ClientConfig(ctx context.Context) (client.Config, error) {
	creds, err := c.CredentialsProvider(ctx)
	if err != nil {
		return client.Config{}, err
	}

	retry := transport.DefaultRetryConfig()
	if c.Retry.MaxAttempts > 0 {
		retry.MaxAttempts = c.Retry.MaxAttempts
	}
	if c.Retry.InitialBackoff > 0 {
		retry.InitialBackoff = c.Retry.InitialBackoff
	}
	if c.Retry.MaxBackoff > 0 {
		retry.MaxBackoff = c.Retry.MaxBackoff
	}
	if retry.MaxBackoff < retry.InitialBackoff {
		retry.MaxBackoff = retry.InitialBackoff
	}

	logCfg := c.Log
	return client.Config{
		Region:      c.Region,
		EndpointURL: c.EndpointURL,
		Credentials: creds,
		Retry:       retry,
		RateLimit: transport.RateLimitConfig{
			RequestsPerSecond: c.RateLimit.RequestsPerSecond,
			Burst:             c.RateLimit.Burst,
		},
		Logger:  log.New(&logCfg),
		Timeout: c.Timeout,
	}, nil
}
