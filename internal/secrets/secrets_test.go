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
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func newMockResolver(t *testing.T) *Resolver {
	t.Helper()
	keyring.MockInit()
	return NewResolver(NewKeychainBackend(), NewEnvBackend())
}

func TestResolver_PriorityOrder(t *testing.T) {
	r := newMockResolver(t)
	assert.Equal(t, []string{"env", "keychain"}, r.Backends())

	ctx := context.Background()
	require.NoError(t, r.Set(ctx, "profiles/dev/access_key_id", "FROM-KEYCHAIN"))

	got, err := r.Get(ctx, "profiles/dev/access_key_id")
	require.NoError(t, err)
	assert.Equal(t, "FROM-KEYCHAIN", got)

	t.Setenv("AWSCLIENT_SECRET_PROFILES_DEV_ACCESS_KEY_ID", "FROM-ENV")
	got, err = r.Get(ctx, "profiles/dev/access_key_id")
	require.NoError(t, err)
	assert.Equal(t, "FROM-ENV", got)
}

func TestResolver_NotFound(t *testing.T) {
	r := newMockResolver(t)

	_, err := r.Get(context.Background(), "profiles/none/access_key_id")
	assert.ErrorIs(t, err, ErrSecretNotFound)

	err = r.Delete(context.Background(), "profiles/none/access_key_id")
	assert.ErrorIs(t, err, ErrSecretNotFound)
}

func TestResolver_NoBackends(t *testing.T) {
	r := NewResolver()

	_, err := r.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.ErrorIs(t, r.Set(context.Background(), "k", "v"), ErrBackendUnavailable)
}

func TestEnvBackend(t *testing.T) {
	e := NewEnvBackend()
	assert.Equal(t, "AWSCLIENT_SECRET_PROFILES_MY_TEAM_SESSION_TOKEN", EnvName("profiles/my-team/session_token"))
	assert.ErrorIs(t, e.Set(context.Background(), "k", "v"), ErrReadOnlyBackend)
	assert.ErrorIs(t, e.Delete(context.Background(), "k"), ErrReadOnlyBackend)

	t.Setenv("AWSCLIENT_SECRET_FOO", "bar")
	got, err := e.Get(context.Background(), "foo")
	require.NoError(t, err)
	assert.Equal(t, "bar", got)
}

func TestCredentialsProvider(t *testing.T) {
	r := newMockResolver(t)
	ctx := context.Background()

	provider := NewCredentialsProvider(r, "default")
	_, err := provider.Retrieve(ctx)
	assert.True(t, errors.Is(err, ErrSecretNotFound))

	require.NoError(t, StoreCredentials(ctx, r, "default", aws.Credentials{
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY",
		SessionToken:    "token-1",
	}))

	creds, err := provider.Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AKIDEXAMPLE", creds.AccessKeyID)
	assert.Equal(t, "token-1", creds.SessionToken)
	assert.Equal(t, CredentialsSource, creds.Source)

	require.NoError(t, StoreCredentials(ctx, r, "default", aws.Credentials{
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY",
	}))
	creds, err = provider.Retrieve(ctx)
	require.NoError(t, err)
	assert.Empty(t, creds.SessionToken)

	assert.Error(t, StoreCredentials(ctx, r, "default", aws.Credentials{AccessKeyID: "only"}))
}

func TestKeychain_Classify(t *testing.T) {
	assert.ErrorIs(t, classify("k", keyring.ErrNotFound), ErrSecretNotFound)
	assert.ErrorIs(t, classify("k", errors.New("The name org.freedesktop.secrets was not provided by any .service files: dbus")), ErrBackendUnavailable)

	other := classify("k", errors.New("boom"))
	assert.NotErrorIs(t, other, ErrBackendUnavailable)
	assert.EqualError(t, other, "keychain k: boom")
}

func TestKeychain_UnavailableStore(t *testing.T) {
	keyring.MockInitWithError(errors.New("keyring locked"))
	t.Cleanup(keyring.MockInit)

	k := NewKeychainBackend()
	assert.False(t, k.Available())
	_, err := k.Get(context.Background(), CredentialKey("dev", FieldAccessKeyID))
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	r := NewResolver(k, NewEnvBackend())
	assert.Equal(t, []string{"env"}, r.Backends())
}
