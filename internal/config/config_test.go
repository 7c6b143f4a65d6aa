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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/zalando/go-keyring"

	"github.com/tombee/awsclient/internal/log"
	"github.com/tombee/awsclient/internal/secrets"
	"github.com/tombee/awsclient/internal/tracing"
	awserrors "github.com/tombee/awsclient/pkg/errors"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"AWS_REGION", "AWS_DEFAULT_REGION", "AWS_PROFILE",
		"AWSCLIENT_ENDPOINT_URL", "AWSCLIENT_CREDENTIALS_SOURCE", "AWSCLIENT_TIMEOUT",
		"AWSCLIENT_MAX_ATTEMPTS", "AWSCLIENT_DEBUG", "AWSCLIENT_TRACING_EXPORTER",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(name, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Profile != "default" {
		t.Errorf("expected profile 'default', got %q", cfg.Profile)
	}
	if cfg.Credentials.Source != SourceDefault {
		t.Errorf("expected credentials source %q, got %q", SourceDefault, cfg.Credentials.Source)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected log level 'warn', got %q", cfg.Log.Level)
	}
	if cfg.Tracing.Enabled() {
		t.Errorf("expected tracing disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
region: eu-west-1
endpoint_url: http://localhost:4566
timeout: 45s
credentials:
  source: static
  access_key_id: AKIDEXAMPLE
  secret_access_key: secret
retry:
  max_attempts: 5
  initial_backoff: 200ms
rate_limit:
  requests_per_second: 10
  burst: 2
log:
  level: debug
tracing:
  exporter: stdout
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Region != "eu-west-1" {
		t.Errorf("expected region eu-west-1, got %q", cfg.Region)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("expected timeout 45s, got %v", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 5 || cfg.Retry.InitialBackoff != 200*time.Millisecond {
		t.Errorf("unexpected retry config %+v", cfg.Retry)
	}
	if cfg.RateLimit.RequestsPerSecond != 10 || cfg.RateLimit.Burst != 2 {
		t.Errorf("unexpected rate limit config %+v", cfg.RateLimit)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Log.Level)
	}
	// Unset values fall back to defaults.
	if cfg.Log.Format != log.FormatText {
		t.Errorf("expected default log format text, got %q", cfg.Log.Format)
	}
	if cfg.Profile != "default" {
		t.Errorf("expected default profile, got %q", cfg.Profile)
	}
	if cfg.Tracing.Exporter != tracing.ExporterStdout {
		t.Errorf("expected stdout exporter, got %q", cfg.Tracing.Exporter)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "region: eu-west-1\nendpoint_url: http://localhost:4566\n")

	t.Setenv("AWS_REGION", "ap-southeast-2")
	t.Setenv("AWSCLIENT_ENDPOINT_URL", "http://localhost:9000")
	t.Setenv("AWS_PROFILE", "staging")
	t.Setenv("AWSCLIENT_MAX_ATTEMPTS", "7")
	t.Setenv("AWSCLIENT_DEBUG", "1")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Region != "ap-southeast-2" {
		t.Errorf("expected env region, got %q", cfg.Region)
	}
	if cfg.EndpointURL != "http://localhost:9000" {
		t.Errorf("expected env endpoint, got %q", cfg.EndpointURL)
	}
	if cfg.Profile != "staging" {
		t.Errorf("expected env profile, got %q", cfg.Profile)
	}
	if cfg.Retry.MaxAttempts != 7 {
		t.Errorf("expected 7 attempts, got %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.AddSource {
		t.Errorf("expected debug logging with source, got %+v", cfg.Log)
	}
}

func TestLoad_DefaultRegionOnlyFillsEmpty(t *testing.T) {
	clearEnv(t)
	t.Setenv("AWS_DEFAULT_REGION", "us-west-1")

	cfg, err := Load(writeConfig(t, "region: eu-central-1\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Region != "eu-central-1" {
		t.Errorf("AWS_DEFAULT_REGION must not override the file, got %q", cfg.Region)
	}
}

func TestLoad_MissingFiles(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("missing default file should not fail: %v", err)
	}
	if cfg.Credentials.Source != SourceDefault {
		t.Errorf("expected defaults, got %+v", cfg.Credentials)
	}

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	var cfgErr *awserrors.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Key != "config_file" {
		t.Fatalf("expected config_file ConfigError, got %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeConfig(t, "region: [unterminated\n"))
	if err == nil || !strings.Contains(err.Error(), "failed to load") {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		errText string
	}{
		{
			name:   "valid default config",
			modify: func(c *Config) {},
		},
		{
			name:    "bad endpoint",
			modify:  func(c *Config) { c.EndpointURL = "://nope" },
			errText: "endpoint_url",
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.Timeout = -time.Second },
			errText: "timeout must not be negative",
		},
		{
			name:    "unknown credentials source",
			modify:  func(c *Config) { c.Credentials.Source = "vault" },
			errText: "credentials.source",
		},
		{
			name:    "static without keys",
			modify:  func(c *Config) { c.Credentials.Source = SourceStatic },
			errText: "required for the static source",
		},
		{
			name: "backoff ordering",
			modify: func(c *Config) {
				c.Retry.InitialBackoff = 2 * time.Second
				c.Retry.MaxBackoff = time.Second
			},
			errText: "retry.max_backoff",
		},
		{
			name:    "negative rate",
			modify:  func(c *Config) { c.RateLimit.RequestsPerSecond = -1 },
			errText: "rate_limit.requests_per_second",
		},
		{
			name:    "bad log level",
			modify:  func(c *Config) { c.Log.Level = "loud" },
			errText: "log.level",
		},
		{
			name:    "otlp without endpoint",
			modify:  func(c *Config) { c.Tracing.Exporter = tracing.ExporterOTLPGRPC },
			errText: "tracing:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.errText == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.errText)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errText)
			}
		})
	}
}

func TestSaveAndUpdate(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Region = "us-east-2"
	cfg.Timeout = 30 * time.Second
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	err = Update(path, func(c *Config) error {
		c.Profile = "ops"
		return nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Region != "us-east-2" || loaded.Profile != "ops" || loaded.Timeout != 30*time.Second {
		t.Errorf("unexpected round trip %+v", loaded)
	}

	bad := Default()
	bad.Credentials.Source = "vault"
	if err := bad.Save(path); err == nil {
		t.Errorf("Save() must reject invalid config")
	}
}

func TestCredentialsProvider_Static(t *testing.T) {
	cfg := Default()
	cfg.Credentials = CredentialsConfig{Source: SourceStatic, AccessKeyID: "AKIDEXAMPLE", SecretAccessKey: "secret"}

	provider, err := cfg.CredentialsProvider(context.Background())
	if err != nil {
		t.Fatalf("CredentialsProvider() error = %v", err)
	}
	creds, err := provider.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if creds.AccessKeyID != "AKIDEXAMPLE" || creds.SecretAccessKey != "secret" {
		t.Errorf("unexpected credentials %+v", creds)
	}
}

func TestCredentialsProvider_Anonymous(t *testing.T) {
	cfg := Default()
	cfg.Credentials.Source = SourceAnonymous

	provider, err := cfg.CredentialsProvider(context.Background())
	if err != nil || provider != nil {
		t.Fatalf("expected nil provider, got %v, %v", provider, err)
	}
}

func TestCredentialsProvider_Keyring(t *testing.T) {
	clearEnv(t)
	keyring.MockInit()
	ctx := context.Background()

	resolver := secrets.NewResolver(secrets.NewKeychainBackend())
	err := secrets.StoreCredentials(ctx, resolver, "ops", aws.Credentials{AccessKeyID: "AKIDOPS", SecretAccessKey: "ops-secret"})
	if err != nil {
		t.Fatalf("StoreCredentials() error = %v", err)
	}

	cfg := Default()
	cfg.Profile = "ops"
	cfg.Credentials.Source = SourceKeyring

	provider, err := cfg.CredentialsProvider(ctx)
	if err != nil {
		t.Fatalf("CredentialsProvider() error = %v", err)
	}
	creds, err := provider.Retrieve(ctx)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if creds.AccessKeyID != "AKIDOPS" || creds.Source != secrets.CredentialsSource {
		t.Errorf("unexpected credentials %+v", creds)
	}
}

func TestCredentialsProvider_DefaultChain(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIDENV")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "env-secret")
	t.Setenv("AWS_REGION", "sa-east-1")

	cfg := Default()
	provider, err := cfg.CredentialsProvider(context.Background())
	if err != nil {
		t.Fatalf("CredentialsProvider() error = %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Errorf("expected region from the default chain, got %q", cfg.Region)
	}

	creds, err := provider.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if creds.AccessKeyID != "AKIDENV" {
		t.Errorf("expected env credentials, got %q", creds.AccessKeyID)
	}
}

func TestClientConfig(t *testing.T) {
	cfg := Default()
	cfg.Region = "us-east-1"
	cfg.EndpointURL = "http://localhost:4566"
	cfg.Timeout = 5 * time.Second
	cfg.Credentials.Source = SourceAnonymous
	cfg.Retry = RetryConfig{MaxAttempts: 6, InitialBackoff: 2 * time.Minute}
	cfg.RateLimit = RateLimitConfig{RequestsPerSecond: 3}

	cc, err := cfg.ClientConfig(context.Background())
	if err != nil {
		t.Fatalf("ClientConfig() error = %v", err)
	}

	if cc.Region != "us-east-1" || cc.EndpointURL != "http://localhost:4566" || cc.Timeout != 5*time.Second {
		t.Errorf("unexpected client config %+v", cc)
	}
	if cc.Credentials != nil {
		t.Errorf("anonymous source must not set credentials")
	}
	if cc.Retry.MaxAttempts != 6 {
		t.Errorf("expected 6 attempts, got %d", cc.Retry.MaxAttempts)
	}
	if cc.Retry.MaxBackoff < cc.Retry.InitialBackoff {
		t.Errorf("max backoff %v below initial %v", cc.Retry.MaxBackoff, cc.Retry.InitialBackoff)
	}
	if err := cc.Retry.Validate(); err != nil {
		t.Errorf("retry config invalid: %v", err)
	}
	if cc.RateLimit.RequestsPerSecond != 3 {
		t.Errorf("expected rate 3, got %v", cc.RateLimit.RequestsPerSecond)
	}
	if cc.Logger == nil {
		t.Errorf("expected a logger")
	}
}
