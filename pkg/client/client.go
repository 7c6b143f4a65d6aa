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

// Package client sends commands through the middleware stack.
//
// A Client owns resolved configuration and a base middleware stack, both fixed at
// construction. Send derives a per-call stack from the base stack, the command's
// serde plugin and any per-call middleware, binds it to the request handler and
// invokes it once:
//
//	c, err := client.New(client.Config{
//	    ServiceID:      "Widgets",
//	    SigningName:    "widgets",
//	    EndpointPrefix: "widgets",
//	    Region:         "us-east-1",
//	    Credentials:    credentials.NewStaticCredentialsProvider(id, secret, ""),
//	})
//	out, err := client.Send(ctx, c, widgets.NewGetWidgetCommand(&widgets.GetWidgetInput{Id: ptr.String("42")}))
//
// Concurrent calls on one Client are safe: nothing written during a call is shared
// with another call.
package client

import (
	"context"

	"github.com/tombee/awsclient/internal/log"
	"github.com/tombee/awsclient/internal/tracing"
	"github.com/tombee/awsclient/pkg/middleware"
	"github.com/tombee/awsclient/pkg/transport"
	"github.com/tombee/awsclient/pkg/wire"
)

// Client holds resolved configuration and the base middleware stack.
type Client struct {
	cfg       Config
	endpoints wire.EndpointResolver
	handler   transport.RequestHandler
	retry     *transport.RetryConfig
	stack     middleware.Stack
}

// New validates cfg, resolves its collaborators and builds the base stack.
func New(cfg Config, optFns ...func(*Config)) (*Client, error) {
	for _, fn := range optFns {
		fn(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	endpoints, err := cfg.endpointResolver()
	if err != nil {
		return nil, err
	}

	handler := cfg.RequestHandler
	if handler == nil {
		h, err := transport.NewHTTPHandler(cfg.HTTP)
		if err != nil {
			return nil, err
		}
		handler = h
	}

	retry := transport.DefaultRetryConfig()
	if cfg.Retry != nil {
		cp := *cfg.Retry
		retry = &cp
	}
	cfg.Retry = retry

	if cfg.Logger == nil {
		cfg.Logger = log.Discard()
	}

	c := &Client{
		cfg:       cfg,
		endpoints: endpoints,
		handler:   handler,
		retry:     retry,
	}
	if c.stack, err = c.baseStack(); err != nil {
		return nil, err
	}
	return c, nil
}

// baseStack registers the middleware every call of this client runs through.
func (c *Client) baseStack() (middleware.Stack, error) {
	s := middleware.Stack{}.
		Use(middleware.InitializeStep, invocationID(), middleware.WithPriority(middleware.PriorityHigh)).
		Use(middleware.InitializeStep, log.Middleware())

	if c.cfg.TracerProvider != nil {
		s = s.Use(middleware.InitializeStep, tracing.Middleware(c.cfg.TracerProvider, nil))
	}
	if c.cfg.Metrics != nil {
		s = s.Use(middleware.InitializeStep, c.cfg.Metrics.Middleware())
	}

	s = s.Use(middleware.BuildStep, requestHeaders(UserAgent(c.cfg.ServiceID, c.cfg.AppID)))
	s = s.Use(middleware.FinalizeStep, transport.NewRetryMiddleware(c.retry), middleware.WithPriority(middleware.PriorityHigh))

	if limiter := c.cfg.RateLimit.NewLimiter(); limiter != nil {
		s = s.Use(middleware.FinalizeStep, transport.NewRateLimitMiddleware(limiter))
	}

	switch {
	case c.cfg.Credentials != nil:
		signer, err := transport.NewSigningMiddleware(transport.SignerConfig{
			Credentials: c.cfg.Credentials,
			SigningName: c.cfg.SigningName,
			Region:      c.cfg.Region,
		})
		if err != nil {
			return middleware.Stack{}, err
		}
		s = s.Use(middleware.FinalizeStep, signer, middleware.WithPriority(middleware.PriorityLow))
	case c.cfg.Bearer != nil:
		bearer, err := transport.NewBearerMiddleware(context.Background(), *c.cfg.Bearer)
		if err != nil {
			return middleware.Stack{}, err
		}
		s = s.Use(middleware.FinalizeStep, bearer, middleware.WithPriority(middleware.PriorityLow))
	}

	return s.Concat(c.cfg.Middleware), nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	cfg := c.cfg
	retry := *c.retry
	cfg.Retry = &retry
	return cfg
}

// Stack returns the base middleware stack.
func (c *Client) Stack() middleware.Stack {
	return c.stack
}

// stackFor returns the base stack adjusted for per-call options.
func (c *Client) stackFor(opts CallOptions) middleware.Stack {
	if opts.MaxAttempts <= 0 || !c.stack.Has(transport.RetryMiddlewareID) {
		return c.stack
	}
	return c.stack.Use(middleware.FinalizeStep,
		transport.NewRetryMiddleware(c.retry.WithMaxAttempts(opts.MaxAttempts)),
		middleware.WithPriority(middleware.PriorityHigh),
		middleware.Override(),
	)
}
