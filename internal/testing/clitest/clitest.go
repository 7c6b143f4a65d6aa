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

// Package clitest runs awsclient commands end to end against a local HTTP
// server in tests.
package clitest

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/tombee/awsclient/internal/commands/shared"
)

// envVars are cleared so the host environment cannot leak into a test.
var envVars = []string{
	"AWS_REGION", "AWS_DEFAULT_REGION", "AWS_PROFILE",
	"AWSCLIENT_ENDPOINT_URL", "AWSCLIENT_CREDENTIALS_SOURCE", "AWSCLIENT_TIMEOUT",
	"AWSCLIENT_MAX_ATTEMPTS", "AWSCLIENT_DEBUG", "AWSCLIENT_TRACING_EXPORTER",
	"LOG_LEVEL", "LOG_FORMAT", "OTEL_EXPORTER_OTLP_ENDPOINT",
}

// Result holds what a command wrote and returned.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// Server starts handler and returns a config file pointing every client at it
// with anonymous credentials and a single attempt per call.
func Server(t *testing.T, handler http.Handler) string {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return WriteConfig(t, srv.URL)
}

// WriteConfig writes a config file for endpoint and returns its path.
func WriteConfig(t *testing.T, endpoint string) string {
	t.Helper()
	for _, name := range envVars {
		t.Setenv(name, "")
	}
	t.Setenv("AWSCLIENT_NON_INTERACTIVE", "true")

	body := fmt.Sprintf(`region: us-east-1
endpoint_url: %s
credentials:
  source: anonymous
retry:
  max_attempts: 1
log:
  level: error
  format: text
`, endpoint)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

// Execute runs cmd under a root command carrying the global flags, with JSON
// output and the config file at configPath.
func Execute(t *testing.T, configPath string, cmd *cobra.Command, args ...string) Result {
	t.Helper()
	t.Cleanup(shared.ResetFlagsForTest)

	root := &cobra.Command{Use: "awsclient", SilenceUsage: true, SilenceErrors: true}
	shared.RegisterFlags(root)
	root.AddCommand(cmd)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	argv := append([]string{cmd.Name()}, args...)
	root.SetArgs(append(argv, "--config", configPath, "--output", "json"))

	err := root.ExecuteContext(context.Background())
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}
