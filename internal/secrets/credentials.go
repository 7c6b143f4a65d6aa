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

package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// CredentialsSource is reported in aws.Credentials.Source.
const CredentialsSource = "AwsclientSecretsProvider"

// CredentialsProvider retrieves access keys for a profile from a Resolver.
type CredentialsProvider struct {
	resolver *Resolver
	profile  string
}

// NewCredentialsProvider returns a provider reading profile's keys from resolver.
func NewCredentialsProvider(resolver *Resolver, profile string) *CredentialsProvider {
	return &CredentialsProvider{resolver: resolver, profile: profile}
}

// Retrieve implements aws.CredentialsProvider.
func (p *CredentialsProvider) Retrieve(ctx context.Context) (aws.Credentials, error) {
	akid, err := p.resolver.Get(ctx, CredentialKey(p.profile, FieldAccessKeyID))
	if err != nil {
		return aws.Credentials{}, fmt.Errorf("access key for profile %q: %w", p.profile, err)
	}
	secret, err := p.resolver.Get(ctx, CredentialKey(p.profile, FieldSecretAccessKey))
	if err != nil {
		return aws.Credentials{}, fmt.Errorf("secret key for profile %q: %w", p.profile, err)
	}

	token, err := p.resolver.Get(ctx, CredentialKey(p.profile, FieldSessionToken))
	if err != nil && !errors.Is(err, ErrSecretNotFound) {
		return aws.Credentials{}, fmt.Errorf("session token for profile %q: %w", p.profile, err)
	}

	return aws.Credentials{
		AccessKeyID:     akid,
		SecretAccessKey: secret,
		SessionToken:    token,
		Source:          CredentialsSource,
	}, nil
}

// StoreCredentials writes creds for profile to the resolver's writable backend.
// An empty session token removes any stored one.
func StoreCredentials(ctx context.Context, resolver *Resolver, profile string, creds aws.Credentials) error {
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return errors.New("access key id and secret access key are required")
	}
	if err := resolver.Set(ctx, CredentialKey(profile, FieldAccessKeyID), creds.AccessKeyID); err != nil {
		return err
	}
	if err := resolver.Set(ctx, CredentialKey(profile, FieldSecretAccessKey), creds.SecretAccessKey); err != nil {
		return err
	}
	if creds.SessionToken != "" {
		return resolver.Set(ctx, CredentialKey(profile, FieldSessionToken), creds.SessionToken)
	}
	if err := resolver.Delete(ctx, CredentialKey(profile, FieldSessionToken)); err != nil && !errors.Is(err, ErrSecretNotFound) {
		return err
	}
	return nil
}
