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

package wire

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Endpoint is the resolved network location a request is sent to.
type Endpoint struct {
	// Scheme is "https" or "http".
	Scheme string

	// Host is the hostname without port.
	Host string

	// Port is the explicit port, zero for the scheme default.
	Port int

	// Path is a base path prefix prepended to every operation path.
	Path string
}

// ParseEndpoint parses an absolute endpoint URL such as "https://widgets.example.com:8443".
func ParseEndpoint(raw string) (Endpoint, error) {
	if !strings.HasPrefix(raw, "https://") && !strings.HasPrefix(raw, "http://") {
		return Endpoint{}, fmt.Errorf("endpoint must start with http:// or https://, got %q", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Endpoint{}, fmt.Errorf("invalid endpoint %q: %w", raw, err)
	}
	if u.Hostname() == "" {
		return Endpoint{}, fmt.Errorf("endpoint %q has no host", raw)
	}

	ep := Endpoint{
		Scheme: u.Scheme,
		Host:   u.Hostname(),
		Path:   strings.TrimSuffix(u.Path, "/"),
	}
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return Endpoint{}, fmt.Errorf("invalid endpoint port %q: %w", p, err)
		}
		ep.Port = port
	}
	return ep, nil
}

// HostPort returns host[:port].
func (e Endpoint) HostPort() string {
	if e.Port == 0 {
		return e.Host
	}
	return e.Host + ":" + strconv.Itoa(e.Port)
}

// URL returns the endpoint as a URL.
func (e Endpoint) URL() *url.URL {
	scheme := e.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return &url.URL{Scheme: scheme, Host: e.HostPort(), Path: e.Path}
}

// String implements fmt.Stringer.
func (e Endpoint) String() string {
	return e.URL().String()
}

// EndpointResolver resolves the endpoint for a region.
type EndpointResolver interface {
	ResolveEndpoint(ctx context.Context, region string) (Endpoint, error)
}

// EndpointResolverFunc adapts a function to EndpointResolver.
type EndpointResolverFunc func(ctx context.Context, region string) (Endpoint, error)

// ResolveEndpoint calls f.
func (f EndpointResolverFunc) ResolveEndpoint(ctx context.Context, region string) (Endpoint, error) {
	return f(ctx, region)
}

// StaticEndpoint returns a resolver that always yields the parsed raw URL.
func StaticEndpoint(raw string) (EndpointResolver, error) {
	ep, err := ParseEndpoint(raw)
	if err != nil {
		return nil, err
	}
	return EndpointResolverFunc(func(context.Context, string) (Endpoint, error) {
		return ep, nil
	}), nil
}

// RegionalEndpoint returns a resolver producing https://{prefix}.{region}.amazonaws.com.
func RegionalEndpoint(prefix string) EndpointResolver {
	return EndpointResolverFunc(func(_ context.Context, region string) (Endpoint, error) {
		if region == "" {
			return Endpoint{}, fmt.Errorf("region is required to resolve the %s endpoint", prefix)
		}
		host := fmt.Sprintf("%s.%s.amazonaws.com", prefix, region)
		if strings.HasPrefix(region, "cn-") {
			host += ".cn"
		}
		return Endpoint{Scheme: "https", Host: host}, nil
	})
}
