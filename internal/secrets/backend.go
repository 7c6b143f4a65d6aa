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
)

var (
	ErrSecretNotFound     = errors.New("secret not found")
	ErrBackendUnavailable = errors.New("secret backend unavailable")
	ErrReadOnlyBackend    = errors.New("secret backend is read-only")
)

// Credential fields stored for each profile.
const (
	FieldAccessKeyID     = "access_key_id"
	FieldSecretAccessKey = "secret_access_key"
	FieldSessionToken    = "session_token"
)

// SecretBackend stores credential fields under keys built by CredentialKey.
// A Resolver skips backends that are not Available and asks the rest in
// descending Priority.
type SecretBackend interface {
	Name() string
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Available() bool
	Priority() int
}

// CredentialKey returns the key holding field for profile,
// e.g. "profiles/default/access_key_id".
func CredentialKey(profile, field string) string {
	return "profiles/" + profile + "/" + field
}
