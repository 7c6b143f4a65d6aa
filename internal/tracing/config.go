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

package tracing

import (
	"crypto/tls"
	"fmt"
	"io"
)

// Exporter names accepted in Config.Exporter.
const (
	ExporterNone     = "none"
	ExporterStdout   = "stdout"
	ExporterOTLPHTTP = "otlp-http"
	ExporterOTLPGRPC = "otlp-grpc"
)

// Config holds tracing configuration.
type Config struct {
	// Exporter selects the span exporter: none, stdout, otlp-http or otlp-grpc.
	// Default: none
	Exporter string `yaml:"exporter,omitempty"`

	// Endpoint is the collector address for OTLP exporters (e.g., "localhost:4317").
	Endpoint string `yaml:"endpoint,omitempty"`

	// URLPath overrides the OTLP HTTP path (default: "/v1/traces").
	URLPath string `yaml:"url_path,omitempty"`

	// Insecure disables TLS (for development only).
	Insecure bool `yaml:"insecure,omitempty"`

	// Headers are sent with every export request.
	Headers map[string]string `yaml:"headers,omitempty"`

	// SampleRate is the fraction of calls to trace (0.0 - 1.0).
	// Zero means sample all.
	SampleRate float64 `yaml:"sample_rate,omitempty"`

	// Writer receives stdout exporter output (default: os.Stdout).
	Writer io.Writer `yaml:"-"`

	// TLSConfig provides custom TLS configuration for OTLP exporters.
	TLSConfig *tls.Config `yaml:"-"`
}

// Enabled reports whether an exporter is configured.
func (c Config) Enabled() bool {
	return c.Exporter != "" && c.Exporter != ExporterNone
}

// Validate checks the configuration is valid.
func (c Config) Validate() error {
	switch c.Exporter {
	case "", ExporterNone, ExporterStdout:
	case ExporterOTLPHTTP, ExporterOTLPGRPC:
		if c.Endpoint == "" {
			return fmt.Errorf("tracing endpoint is required for exporter %q", c.Exporter)
		}
	default:
		return fmt.Errorf("unknown tracing exporter %q (expected none, stdout, otlp-http or otlp-grpc)", c.Exporter)
	}
	if c.SampleRate < 0 || c.SampleRate > 1 {
		return fmt.Errorf("sample_rate must be between 0 and 1, got %v", c.SampleRate)
	}
	if c.TLSConfig != nil && c.TLSConfig.MinVersion != 0 && c.TLSConfig.MinVersion < tls.VersionTLS12 {
		return fmt.Errorf("minimum TLS version must be at least TLS 1.2")
	}
	return nil
}
