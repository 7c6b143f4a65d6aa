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

package client

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"go.opentelemetry.io/otel/trace"

	"github.com/tombee/awsclient/pkg/metrics"
	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/middleware"
	"github.com/tombee/awsclient/pkg/transport"
	"github.com/tombee/awsclient/pkg/wire"
)

// Config is the resolved configuration of a Client. It is copied by New and never
// modified afterwards; build a new Client to change it.
type Config struct {
	// ServiceID names the service in logs, errors and metrics (e.g. "Widgets").
	ServiceID string

	// SigningName is the SigV4 service name (e.g. "widgets").
	SigningName string

	// EndpointPrefix builds the default regional endpoint
	// https://{prefix}.{region}.amazonaws.com.
	EndpointPrefix string

	// Region is the signing and endpoint region.
	Region string

	// EndpointURL overrides endpoint resolution with a fixed URL.
	EndpointURL string

	// EndpointResolver overrides endpoint resolution. EndpointURL wins when both are set.
	EndpointResolver wire.EndpointResolver

	// RequestHandler sends wire requests. Default: a pooled HTTP handler built from HTTP.
	RequestHandler transport.RequestHandler

	// HTTP configures the default request handler.
	HTTP *transport.HTTPConfig

	// Credentials enables SigV4 signing.
	Credentials aws.CredentialsProvider

	// Bearer enables bearer token authentication. Mutually exclusive with Credentials.
	Bearer *transport.BearerConfig

	// Retry configures retries. Default: transport.DefaultRetryConfig().
	Retry *transport.RetryConfig

	// RateLimit limits the request rate of all calls made by the client.
	RateLimit transport.RateLimitConfig

	// Logger receives call logs. Default: discard.
	Logger *slog.Logger

	// TracerProvider enables a span per call.
	TracerProvider trace.TracerProvider

	// Metrics enables Prometheus call metrics.
	Metrics *metrics.Collector

	// AppID is appended to the User-Agent header.
	AppID string

	// Timeout bounds every call unless overridden per call. Zero means no timeout.
	Timeout time.Duration

	// Middleware is added to the base stack of every call.
	Middleware middleware.Stack
}

// Validate checks the configuration is valid.
func (c *Config) Validate() error {
	if c.ServiceID == "" {
		return &awserrors.ConfigError{Key: "service_id", Reason: "service id is required"}
	}
	if c.EndpointURL == "" && c.EndpointResolver == nil {
		if c.EndpointPrefix == "" {
			return &awserrors.ConfigError{Key: "endpoint_url", Reason: "an endpoint URL, resolver or prefix is required"}
		}
		if c.Region == "" {
			return &awserrors.ConfigError{Key: "region", Reason: "region is required to resolve the service endpoint"}
		}
	}
	if c.Credentials != nil && c.Bearer != nil {
		return &awserrors.ConfigError{Key: "credentials", Reason: "credentials and bearer auth are mutually exclusive"}
	}
	if c.Credentials != nil {
		if c.SigningName == "" {
			return &awserrors.ConfigError{Key: "signing_name", Reason: "signing name is required with credentials"}
		}
		if c.Region == "" {
			return &awserrors.ConfigError{Key: "region", Reason: "region is required to sign requests"}
		}
	}
	if c.Retry != nil {
		if err := c.Retry.Validate(); err != nil {
			return &awserrors.ConfigError{Key: "retry", Reason: err.Error(), Cause: err}
		}
	}
	if c.Timeout < 0 {
		return &awserrors.ConfigError{Key: "timeout", Reason: fmt.Sprintf("timeout cannot be negative, got %v", c.Timeout)}
	}
	return nil
}

// endpointResolver picks the resolver for the configuration.
func (c *Config) endpointResolver() (wire.EndpointResolver, error) {
	if c.EndpointURL != "" {
		resolver, err := wire.StaticEndpoint(c.EndpointURL)
		if err != nil {
			return nil, &awserrors.ConfigError{Key: "endpoint_url", Reason: err.Error(), Cause: err}
		}
		return resolver, nil
	}
	if c.EndpointResolver != nil {
		return c.EndpointResolver, nil
	}
	return wire.RegionalEndpoint(c.EndpointPrefix), nil
}
