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
	"strings"
	"sync"

	"github.com/zalando/go-keyring"
)

// KeychainBackendPriority ranks the OS keychain below environment overrides.
const KeychainBackendPriority = 50

const (
	keychainService = "awsclient"
	probeKey        = "profiles/__probe__/" + FieldAccessKeyID
)

// lockedMarkers are substrings of keyring errors meaning the store exists but
// cannot be used right now (locked, no D-Bus session, user dismissed a prompt).
var lockedMarkers = []string{
	"locked", "cannot access", "permission denied", "failed to unlock",
	"user interaction required", "secret service", "dbus", "user canceled",
}

// KeychainBackend keeps access keys in the OS credential store (macOS Keychain,
// Secret Service on Linux, Windows Credential Manager). Every entry uses the
// service name "awsclient" and the CredentialKey as the account.
type KeychainBackend struct {
	probe     sync.Once
	available bool
}

// NewKeychainBackend returns a keychain backend. The store is probed lazily on
// first use.
func NewKeychainBackend() *KeychainBackend {
	return &KeychainBackend{}
}

func (k *KeychainBackend) Name() string  { return "keychain" }
func (k *KeychainBackend) Priority() int { return KeychainBackendPriority }

// Available reports whether the credential store answered a probe lookup.
func (k *KeychainBackend) Available() bool {
	k.probe.Do(func() {
		_, err := keyring.Get(keychainService, probeKey)
		k.available = err == nil || errors.Is(err, keyring.ErrNotFound)
	})
	return k.available
}

func (k *KeychainBackend) Get(ctx context.Context, key string) (string, error) {
	if !k.Available() {
		return "", fmt.Errorf("%w: keychain", ErrBackendUnavailable)
	}
	value, err := keyring.Get(keychainService, key)
	if err != nil {
		return "", classify(key, err)
	}
	return value, nil
}

func (k *KeychainBackend) Set(ctx context.Context, key string, value string) error {
	if !k.Available() {
		return fmt.Errorf("%w: keychain", ErrBackendUnavailable)
	}
	if err := keyring.Set(keychainService, key, value); err != nil {
		return classify(key, err)
	}
	return nil
}

func (k *KeychainBackend) Delete(ctx context.Context, key string) error {
	if !k.Available() {
		return fmt.Errorf("%w: keychain", ErrBackendUnavailable)
	}
	if err := keyring.Delete(keychainService, key); err != nil {
		return classify(key, err)
	}
	return nil
}

// classify maps a keyring error onto the package sentinels.
func classify(key string, err error) error {
	if errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrSecretNotFound, key)
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range lockedMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
	}
	return fmt.Errorf("keychain %s: %w", key, err)
}
