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

// Package identity is a client for the Identity service, an awsQuery API that
// reports the caller's identity and issues temporary credentials.
package identity

import (
	"github.com/tombee/awsclient/pkg/client"
)

const (
	// ServiceID identifies the service in errors, logs and metrics.
	ServiceID = "Identity"

	signingName    = "sts"
	endpointPrefix = "sts"
	apiVersion     = "2011-06-15"
)

// Client calls the Identity service.
type Client struct {
	runtime *client.Client
}

// New returns an Identity client.
func New(cfg client.Config, optFns ...func(*client.Config)) (*Client, error) {
	if cfg.ServiceID == "" {
		cfg.ServiceID = ServiceID
	}
	if cfg.SigningName == "" {
		cfg.SigningName = signingName
	}
	if cfg.EndpointPrefix == "" {
		cfg.EndpointPrefix = endpointPrefix
	}
	c, err := client.New(cfg, optFns...)
	if err != nil {
		return nil, err
	}
	return &Client{runtime: c}, nil
}

// Runtime returns the underlying client.
func (c *Client) Runtime() *client.Client {
	return c.runtime
}
