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

package identity

import (
	"time"

	"github.com/tombee/awsclient/pkg/redact"
)

// Credentials are temporary security credentials.
type Credentials struct {
	AccessKeyId     *string
	SecretAccessKey *string
	SessionToken    *string
	Expiration      *time.Time
}

// Redacted returns a copy with the secret key and session token masked.
func (c *Credentials) Redacted() any {
	cp := *c
	cp.SecretAccessKey = redact.String(c.SecretAccessKey)
	cp.SessionToken = redact.String(c.SessionToken)
	return &cp
}
