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
	"fmt"
	"os"
	"strings"
)

const (
	// EnvBackendPriority is the priority for environment variable backend.
	// This is the highest priority to allow environment overrides.
	EnvBackendPriority = 100

	envSecretPrefix = "AWSCLIENT_SECRET_"
)

// EnvBackend provides read-only access to secrets via environment variables named
// AWSCLIENT_SECRET_<KEY>, e.g. AWSCLIENT_SECRET_PROFILES_DEFAULT_ACCESS_KEY_ID.
type EnvBackend struct{}

// NewEnvBackend creates a new environment variable backend.
func NewEnvBackend() *EnvBackend {
	return &EnvBackend{}
}

// Name returns the backend identifier.
func (e *EnvBackend) Name() string {
	return "env"
}

// Get retrieves a secret from the environment.
func (e *EnvBackend) Get(ctx context.Context, key string) (string, error) {
	if value := os.Getenv(EnvName(key)); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("%w: environment variable %s not set", ErrSecretNotFound, EnvName(key))
}

// Set returns ErrReadOnlyBackend as environment backend is read-only.
func (e *EnvBackend) Set(ctx context.Context, key string, value string) error {
	return ErrReadOnlyBackend
}

// Delete returns ErrReadOnlyBackend as environment backend is read-only.
func (e *EnvBackend) Delete(ctx context.Context, key string) error {
	return ErrReadOnlyBackend
}

// Available returns true as environment variables are always available.
func (e *EnvBackend) Available() bool {
	return true
}

// Priority returns the backend priority (highest).
func (e *EnvBackend) Priority() int {
	return EnvBackendPriority
}

// EnvName converts a secret key to its environment variable name.
// Example: "profiles/default/access_key_id" -> "AWSCLIENT_SECRET_PROFILES_DEFAULT_ACCESS_KEY_ID"
func EnvName(key string) string {
	normalized := strings.NewReplacer("/", "_", "-", "_", ".", "_").Replace(key)
	return envSecretPrefix + strings.ToUpper(normalized)
}
