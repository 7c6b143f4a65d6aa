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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"

	"github.com/tombee/awsclient/pkg/middleware"
	"github.com/tombee/awsclient/pkg/redact"
)

// SignerConfig configures SigV4 request signing.
type SignerConfig struct {
	// Credentials supplies signing credentials. Providers that are not already
	// cached are wrapped in an aws.CredentialsCache.
	Credentials aws.CredentialsProvider

	// SigningName is the service name in the credential scope (e.g. "sts").
	SigningName string

	// Region overrides the call region for the credential scope.
	Region string

	// Now returns the signing time (default: time.Now).
	Now func() time.Time
}

// Validate checks if the configuration is valid.
func (c *SignerConfig) Validate() error {
	if c.Credentials == nil {
		return fmt.Errorf("credentials provider is required")
	}
	if c.SigningName == "" {
		return fmt.Errorf("signing name is required")
	}
	return nil
}

type sigv4Middleware struct {
	creds  aws.CredentialsProvider
	signer *v4.Signer
	name   string
	region string
	now    func() time.Time
}

// NewSigningMiddleware returns finalize-step middleware that signs each attempt
// with AWS Signature Version 4. Register it at low priority so it runs after any
// middleware that still changes the request.
func NewSigningMiddleware(cfg SignerConfig) (middleware.Middleware, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	creds := cfg.Credentials
	if _, ok := creds.(*aws.CredentialsCache); !ok {
		creds = aws.NewCredentialsCache(creds)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &sigv4Middleware{
		creds:  creds,
		signer: v4.NewSigner(),
		name:   cfg.SigningName,
		region: cfg.Region,
		now:    now,
	}, nil
}

// ID implements middleware.Middleware.
func (m *sigv4Middleware) ID() string { return SigningMiddlewareID }

// HandleMiddleware implements middleware.Middleware.
func (m *sigv4Middleware) HandleMiddleware(ctx context.Context, in middleware.Input, next middleware.Handler) (middleware.Output, error) {
	req := in.Request
	if req == nil {
		return middleware.Output{}, &TransportError{
			Type:    ErrorTypeInvalidReq,
			Message: "no request to sign",
		}
	}

	creds, err := m.creds.Retrieve(ctx)
	if err != nil {
		return middleware.Output{}, &TransportError{
			Type:      ErrorTypeAuth,
			Message:   fmt.Sprintf("unable to resolve AWS credentials: %s", redact.Default.RedactString(err.Error())),
			Retryable: false,
			Cause:     err,
		}
	}

	region := m.region
	if region == "" {
		if ec := middleware.GetExecutionContext(ctx); ec != nil {
			region = ec.Region
		}
	}
	if region == "" {
		return middleware.Output{}, &TransportError{
			Type:    ErrorTypeInvalidReq,
			Message: "a region is required to sign requests",
		}
	}

	payloadHash := calculatePayloadHash(req.Body)
	req.Header.Set("X-Amz-Content-Sha256", payloadHash)

	httpReq, err := req.Build(ctx)
	if err != nil {
		return middleware.Output{}, &TransportError{
			Type:    ErrorTypeInvalidReq,
			Message: fmt.Sprintf("failed to create request: %v", err),
			Cause:   err,
		}
	}

	if err := m.signer.SignHTTP(ctx, creds, httpReq, payloadHash, m.name, region, m.now().UTC()); err != nil {
		return middleware.Output{}, &TransportError{
			Type:    ErrorTypeInvalidReq,
			Message: fmt.Sprintf("failed to sign request: %v", err),
			Cause:   err,
		}
	}

	// The signer only adds headers; copy them back onto the wire request.
	req.Header = httpReq.Header.Clone()
	return next.Handle(ctx, in)
}

// calculatePayloadHash computes the SHA256 hash of the request body.
func calculatePayloadHash(body []byte) string {
	if body == nil {
		body = []byte{}
	}
	hash := sha256.Sum256(body)
	return hex.EncodeToString(hash[:])
}
