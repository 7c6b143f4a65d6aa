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

package transport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tombee/awsclient/pkg/wire"
)

// HTTPConfig configures the HTTP request handler.
type HTTPConfig struct {
	// Timeout bounds a single attempt, including reading the body (default: 30s).
	// Zero uses the default; the call context may impose a shorter deadline.
	Timeout time.Duration

	// MaxIdleConns caps idle connections across all hosts (default: 100).
	MaxIdleConns int

	// MaxIdleConnsPerHost caps idle connections per host (default: 10).
	MaxIdleConnsPerHost int

	// IdleConnTimeout closes idle connections after this long (default: 90s).
	IdleConnTimeout time.Duration

	// Client replaces the pooled client entirely when set.
	Client *http.Client
}

// Validate checks if the configuration is valid.
func (c *HTTPConfig) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	if c.MaxIdleConns < 0 || c.MaxIdleConnsPerHost < 0 {
		return fmt.Errorf("idle connection limits cannot be negative")
	}
	return nil
}

// HTTPHandler sends wire requests over net/http. It is safe for concurrent use
// and shares one connection pool across all calls of a client.
type HTTPHandler struct {
	client *http.Client
}

// NewHTTPHandler creates a handler with a pooled transport.
func NewHTTPHandler(cfg *HTTPConfig) (*HTTPHandler, error) {
	if cfg == nil {
		cfg = &HTTPConfig{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Client != nil {
		return &HTTPHandler{client: cfg.Client}, nil
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = 100
	}
	maxIdlePerHost := cfg.MaxIdleConnsPerHost
	if maxIdlePerHost == 0 {
		maxIdlePerHost = 10
	}
	idleTimeout := cfg.IdleConnTimeout
	if idleTimeout == 0 {
		idleTimeout = 90 * time.Second
	}

	return &HTTPHandler{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        maxIdle,
				MaxIdleConnsPerHost: maxIdlePerHost,
				IdleConnTimeout:     idleTimeout,
			},
		},
	}, nil
}

// Handle sends req and collects the response body. Error statuses are returned as
// responses; only failures to complete the exchange produce an error.
func (h *HTTPHandler) Handle(ctx context.Context, req *wire.Request) (*wire.Response, error) {
	if req == nil || req.Endpoint.Host == "" {
		return nil, &TransportError{
			Type:      ErrorTypeInvalidReq,
			Message:   "request has no endpoint",
			Retryable: false,
		}
	}

	httpReq, err := req.Build(ctx)
	if err != nil {
		return nil, &TransportError{
			Type:      ErrorTypeInvalidReq,
			Message:   fmt.Sprintf("failed to create request: %v", err),
			Retryable: false,
			Cause:     err,
		}
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, classifyHTTPError(err)
	}

	out, err := wire.FromHTTP(resp)
	if err != nil {
		if ctx.Err() != nil {
			return nil, classifyHTTPError(ctx.Err())
		}
		return nil, &TransportError{
			Type:       ErrorTypeConnection,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to read response body: %v", err),
			Retryable:  true,
			Cause:      err,
		}
	}
	return out, nil
}

// CloseIdleConnections releases pooled connections.
func (h *HTTPHandler) CloseIdleConnections() {
	h.client.CloseIdleConnections()
}
