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

// Package widgets is a client for the Widgets service, a restJson1 API.
//
// Operations bind their input to the URI, query string and JSON body:
//
//	GetWidget     GET    /widgets/{Id}
//	CreateWidget  POST   /widgets
//	ListWidgets   GET    /widgets?maxResults&nextToken&status
//	DeleteWidget  DELETE /widgets/{Id}
package widgets

import (
	"github.com/tombee/awsclient/pkg/client"
)

const (
	// ServiceID identifies the service in errors, logs and metrics.
	ServiceID = "Widgets"

	signingName    = "widgets"
	endpointPrefix = "widgets"
)

// Client calls the Widgets service.
type Client struct {
	runtime *client.Client
}

// New returns a Widgets client. Service identity fields left empty in cfg are
// filled in.
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

// Runtime returns the underlying client, for use with client.Send.
func (c *Client) Runtime() *client.Client {
	return c.runtime
}
