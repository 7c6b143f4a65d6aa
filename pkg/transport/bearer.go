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
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/tombee/awsclient/pkg/middleware"
	"github.com/tombee/awsclient/pkg/redact"
)

// BearerConfig configures bearer token authentication.
// Exactly one of TokenSource or TokenURL must be set.
type BearerConfig struct {
	// TokenSource supplies tokens directly.
	TokenSource oauth2.TokenSource

	// TokenURL enables the client_credentials flow against this endpoint.
	TokenURL string

	// ClientID and ClientSecret identify the client for client_credentials.
	ClientID     string
	ClientSecret string

	// Scopes are the OAuth2 scopes (optional)
	Scopes []string
}

// Validate checks the configuration is valid.
func (c *BearerConfig) Validate() error {
	if c.TokenSource != nil && c.TokenURL != "" {
		return fmt.Errorf("token_source and token_url are mutually exclusive")
	}
	if c.TokenSource == nil && c.TokenURL == "" {
		return fmt.Errorf("either token_source or token_url is required for bearer auth")
	}
	if c.TokenURL != "" {
		if !strings.HasPrefix(c.TokenURL, "https://") && !strings.HasPrefix(c.TokenURL, "http://") {
			return fmt.Errorf("token_url must start with http:// or https://")
		}
		if c.ClientID == "" || c.ClientSecret == "" {
			return fmt.Errorf("client_id and client_secret are required with token_url")
		}
	}
	return nil
}

type bearerMiddleware struct {
	source oauth2.TokenSource
}

// NewBearerMiddleware returns finalize-step middleware that sets an
// "Authorization: Bearer" header on each attempt. Tokens are reused until they
// expire.
func NewBearerMiddleware(ctx context.Context, cfg BearerConfig) (middleware.Middleware, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	source := cfg.TokenSource
	if cfg.TokenURL != "" {
		ccConfig := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		source = ccConfig.TokenSource(ctx)
	}

	return &bearerMiddleware{source: oauth2.ReuseTokenSource(nil, source)}, nil
}

// ID implements middleware.Middleware.
func (m *bearerMiddleware) ID() string { return BearerMiddlewareID }

// HandleMiddleware implements middleware.Middleware.
func (m *bearerMiddleware) HandleMiddleware(ctx context.Context, in middleware.Input, next middleware.Handler) (middleware.Output, error) {
	if in.Request == nil {
		return middleware.Output{}, &TransportError{
			Type:    ErrorTypeInvalidReq,
			Message: "no request to authorize",
		}
	}

	token, err := m.source.Token()
	if err != nil {
		return middleware.Output{}, &TransportError{
			Type:      ErrorTypeAuth,
			Message:   fmt.Sprintf("failed to obtain bearer token: %s", redact.Default.RedactString(err.Error())),
			Retryable: false,
			Cause:     err,
		}
	}
	if token.AccessToken == "" {
		return middleware.Output{}, &TransportError{
			Type:    ErrorTypeAuth,
			Message: "token source returned an empty access token",
		}
	}

	in.Request.Header.Set("Authorization", "Bearer "+token.AccessToken)
	return next.Handle(ctx, in)
}
