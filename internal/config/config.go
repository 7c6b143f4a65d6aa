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

// Package config loads the CLI configuration file and turns it into client
// configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tombee/awsclient/internal/log"
	"github.com/tombee/awsclient/internal/tracing"
	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/wire"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Credential sources accepted in credentials.source.
const (
	// SourceDefault uses the AWS SDK default chain (env, shared files, SSO, IMDS).
	SourceDefault = "default"
	// SourceKeyring reads access keys from the OS keychain.
	SourceKeyring = "keyring"
	// SourceStatic uses the keys written in the config file.
	SourceStatic = "static"
	// SourceAnonymous sends unsigned requests.
	SourceAnonymous = "anonymous"
)

// Config is the awsclient configuration file.
type Config struct {
	// Region is the signing and endpoint region.
	// Environment: AWS_REGION
	Region string `yaml:"region,omitempty"`

	// EndpointURL overrides endpoint resolution for every service.
	// Environment: AWSCLIENT_ENDPOINT_URL
	EndpointURL string `yaml:"endpoint_url,omitempty"`

	// Profile names the shared config profile or keyring entry.
	// Environment: AWS_PROFILE
	// Default: default
	Profile string `yaml:"profile,omitempty"`

	// Timeout bounds every call. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	Credentials CredentialsConfig `yaml:"credentials,omitempty"`
	Retry       RetryConfig       `yaml:"retry,omitempty"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit,omitempty"`
	Log         log.Config        `yaml:"log,omitempty"`
	Tracing     tracing.Config    `yaml:"tracing,omitempty"`
}

// CredentialsConfig selects where signing credentials come from.
type CredentialsConfig struct {
	// Source is one of default, keyring, static or anonymous.
	// Default: default
	Source string `yaml:"source,omitempty"`

	// AccessKeyID, SecretAccessKey and SessionToken are used by the static source.
	AccessKeyID     string `yaml:"access_key_id,omitempty"`
	SecretAccessKey string `yaml:"secret_access_key,omitempty"`
	SessionToken    string `yaml:"session_token,omitempty"`
}

// RetryConfig overrides the client retry policy. Zero values keep the defaults.
type RetryConfig struct {
	// MaxAttempts includes the first attempt.
	// Environment: AWSCLIENT_MAX_ATTEMPTS
	MaxAttempts int `yaml:"max_attempts,omitempty"`

	InitialBackoff time.Duration `yaml:"initial_backoff,omitempty"`
	MaxBackoff     time.Duration `yaml:"max_backoff,omitempty"`
}

// RateLimitConfig limits the request rate of the CLI's clients.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second,omitempty"`
	Burst             int     `yaml:"burst,omitempty"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Profile: "default",
		Credentials: CredentialsConfig{
			Source: SourceDefault,
		},
		Log: log.Config{
			Level:  "warn",
			Format: log.FormatText,
		},
		Tracing: tracing.Config{
			Exporter: tracing.ExporterNone,
		},
	}
}

// Load loads configuration from an optional YAML file and environment variables.
// Environment variables take precedence over the file. A missing file at the
// default path is not an error; a missing file that was named explicitly is.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	explicit := configPath != ""
	if !explicit {
		var err error
		if configPath, err = ConfigPath(); err != nil {
			return nil, &awserrors.ConfigError{Key: "config_file", Reason: "cannot locate config directory", Cause: err}
		}
	}

	if err := cfg.loadFromFile(configPath); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, &awserrors.ConfigError{
				Key:    "config_file",
				Reason: fmt.Sprintf("failed to load from %s", configPath),
				Cause:  err,
			}
		}
	}

	cfg.applyDefaults()
	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, &awserrors.ConfigError{
			Key:    "validation",
			Reason: "configuration validation failed",
			Cause:  err,
		}
	}

	return cfg, nil
}

// applyDefaults fills in zero values so minimal files work.
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Profile == "" {
		c.Profile = defaults.Profile
	}
	if c.Credentials.Source == "" {
		c.Credentials.Source = defaults.Credentials.Source
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
	if c.Tracing.Exporter == "" {
		c.Tracing.Exporter = defaults.Tracing.Exporter
	}
}

// loadFromFile loads configuration from a YAML file.
func (c *Config) loadFromFile(path string) error {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return awserrors.Wrap(err, "failed to get home directory")
		}
		path = filepath.Join(home, path[2:])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return awserrors.Wrap(err, "failed to read config file")
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return awserrors.Wrapf(err, "failed to parse YAML in %s", path)
	}

	return nil
}

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() {
	if val := os.Getenv("AWS_REGION"); val != "" {
		c.Region = val
	} else if val := os.Getenv("AWS_DEFAULT_REGION"); val != "" && c.Region == "" {
		c.Region = val
	}
	if val := os.Getenv("AWSCLIENT_ENDPOINT_URL"); val != "" {
		c.EndpointURL = val
	}
	if val := os.Getenv("AWS_PROFILE"); val != "" {
		c.Profile = val
	}
	if val := os.Getenv("AWSCLIENT_CREDENTIALS_SOURCE"); val != "" {
		c.Credentials.Source = strings.ToLower(val)
	}
	if val := os.Getenv("AWSCLIENT_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.Timeout = d
		}
	}
	if val := os.Getenv("AWSCLIENT_MAX_ATTEMPTS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			c.Retry.MaxAttempts = n
		}
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = strings.ToLower(val)
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = log.Format(strings.ToLower(val))
	}
	if val := os.Getenv("AWSCLIENT_DEBUG"); val == "1" || strings.ToLower(val) == "true" {
		c.Log.Level = "debug"
		c.Log.AddSource = true
	}

	if val := os.Getenv("AWSCLIENT_TRACING_EXPORTER"); val != "" {
		c.Tracing.Exporter = strings.ToLower(val)
	}
	if val := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); val != "" {
		c.Tracing.Endpoint = val
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.EndpointURL != "" {
		if _, err := wire.ParseEndpoint(c.EndpointURL); err != nil {
			errs = append(errs, fmt.Sprintf("endpoint_url: %v", err))
		}
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("timeout must not be negative, got %v", c.Timeout))
	}

	switch c.Credentials.Source {
	case SourceDefault, SourceKeyring, SourceAnonymous:
	case SourceStatic:
		if c.Credentials.AccessKeyID == "" || c.Credentials.SecretAccessKey == "" {
			errs = append(errs, "credentials.access_key_id and credentials.secret_access_key are required for the static source")
		}
	default:
		errs = append(errs, fmt.Sprintf("credentials.source must be one of default, keyring, static, anonymous, got %q", c.Credentials.Source))
	}

	if c.Retry.MaxAttempts < 0 {
		errs = append(errs, fmt.Sprintf("retry.max_attempts must not be negative, got %d", c.Retry.MaxAttempts))
	}
	if c.Retry.InitialBackoff < 0 {
		errs = append(errs, fmt.Sprintf("retry.initial_backoff must not be negative, got %v", c.Retry.InitialBackoff))
	}
	if c.Retry.MaxBackoff != 0 && c.Retry.MaxBackoff < c.Retry.InitialBackoff {
		errs = append(errs, fmt.Sprintf("retry.max_backoff (%v) must be >= retry.initial_backoff (%v)", c.Retry.MaxBackoff, c.Retry.InitialBackoff))
	}

	if c.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Sprintf("rate_limit.requests_per_second must not be negative, got %v", c.RateLimit.RequestsPerSecond))
	}
	if c.RateLimit.Burst < 0 {
		errs = append(errs, fmt.Sprintf("rate_limit.burst must not be negative, got %d", c.RateLimit.Burst))
	}

	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be one of trace, debug, info, warn, error, got %q", c.Log.Level))
	}
	switch c.Log.Format {
	case log.FormatJSON, log.FormatText:
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}

	if err := c.Tracing.Validate(); err != nil {
		errs = append(errs, "tracing: "+err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}

	return nil
}
