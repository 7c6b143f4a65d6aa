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

package shared

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tombee/awsclient/internal/config"
	"github.com/tombee/awsclient/internal/tracing"
	"github.com/tombee/awsclient/pkg/client"
)

// Session is the resolved configuration of one command invocation.
type Session struct {
	// Config is the file configuration with flag overrides applied.
	Config *config.Config

	// Client is ready to pass to a service constructor.
	Client client.Config

	tracer *tracing.Provider
}

// NewSession loads the config file, applies the global flags and builds the
// client configuration, including the tracer provider when tracing is enabled.
func NewSession(ctx context.Context) (*Session, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, NewConfigError("loading configuration", err)
	}

	if regionFlag != "" {
		cfg.Region = regionFlag
	}
	if endpointURLFlag != "" {
		cfg.EndpointURL = endpointURLFlag
	}
	if profileFlag != "" {
		cfg.Profile = profileFlag
	}
	if debugFlag {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, NewConfigError("invalid flags", err)
	}

	cc, err := cfg.ClientConfig(ctx)
	if err != nil {
		return nil, NewConfigError("resolving credentials", err)
	}

	cc.AppID = "awsclient-cli"
	s := &Session{Config: cfg, Client: cc}
	if cfg.Tracing.Enabled() {
		// Keep stdout for command output.
		if cfg.Tracing.Writer == nil {
			cfg.Tracing.Writer = os.Stderr
		}
		tp, err := tracing.NewProvider(ctx, cfg.Tracing, "awsclient", version)
		if err != nil {
			return nil, NewConfigError("starting tracing", err)
		}
		s.tracer = tp
		s.Client.TracerProvider = tp.TracerProvider()
	}
	return s, nil
}

// Close flushes spans.
func (s *Session) Close(ctx context.Context) error {
	if s.tracer == nil {
		return nil
	}
	if err := s.tracer.Shutdown(ctx); err != nil {
		return fmt.Errorf("flushing traces: %w", err)
	}
	return nil
}

// Run opens a session, calls fn and closes the session.
func Run(cmd *cobra.Command, fn func(ctx context.Context, s *Session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := NewSession(ctx)
	if err != nil {
		return err
	}

	runErr := fn(ctx, s)
	if err := s.Close(context.WithoutCancel(ctx)); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
