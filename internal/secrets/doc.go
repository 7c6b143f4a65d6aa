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

/*
Package secrets stores and resolves sensitive values such as access keys.

Secrets are resolved through a priority-ordered chain of backends:

	env      - Environment variables (AWSCLIENT_SECRET_*), read-only
	keychain - OS keychain (macOS Keychain, Linux Secret Service, Windows Credential Manager)

Keys are slash-separated paths. Credentials for a profile live under
"profiles/<profile>/access_key_id", "profiles/<profile>/secret_access_key" and,
optionally, "profiles/<profile>/session_token":

	resolver := secrets.NewResolver(secrets.NewEnvBackend(), secrets.NewKeychainBackend())
	provider := secrets.NewCredentialsProvider(resolver, "default")
	creds, err := provider.Retrieve(ctx)
*/
package secrets
