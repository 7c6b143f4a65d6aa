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
	"context"
	"fmt"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol"
	"github.com/tombee/awsclient/pkg/protocol/query"
	"github.com/tombee/awsclient/pkg/wire"
)

func serializeOpGetSessionToken(ctx context.Context, input *GetSessionTokenInput, req *wire.Request) error {
	if input == nil {
		return fmt.Errorf("unexpected nil input")
	}
	if d := input.DurationSeconds; d != nil && (*d < 900 || *d > 129600) {
		return &awserrors.ValidationError{Field: "DurationSeconds", Message: fmt.Sprintf("must be between 900 and 129600, got %d", *d)}
	}

	form := query.NewForm("GetSessionToken", apiVersion)
	object := form.Object()
	if input.DurationSeconds != nil {
		object.Key("DurationSeconds").Integer(*input.DurationSeconds)
	}
	if input.SerialNumber != nil {
		object.Key("SerialNumber").String(*input.SerialNumber)
	}
	if input.TokenCode != nil {
		object.Key("TokenCode").String(*input.TokenCode)
	}
	return form.Apply(req)
}

type callerIdentityResult struct {
	UserId  *string `xml:"UserId"`
	Account *string `xml:"Account"`
	Arn     *string `xml:"Arn"`
}

func deserializeOpGetCallerIdentity(ctx context.Context, resp *wire.Response) (*GetCallerIdentityOutput, error) {
	var result callerIdentityResult
	if err := query.DecodeResult(resp.Body, "GetCallerIdentity", &result); err != nil {
		return nil, err
	}
	return &GetCallerIdentityOutput{
		UserId:  result.UserId,
		Account: result.Account,
		Arn:     result.Arn,
	}, nil
}

type sessionTokenResult struct {
	Credentials *struct {
		AccessKeyId     *string `xml:"AccessKeyId"`
		SecretAccessKey *string `xml:"SecretAccessKey"`
		SessionToken    *string `xml:"SessionToken"`
		Expiration      *string `xml:"Expiration"`
	} `xml:"Credentials"`
}

func deserializeOpGetSessionToken(ctx context.Context, resp *wire.Response) (*GetSessionTokenOutput, error) {
	var result sessionTokenResult
	if err := query.DecodeResult(resp.Body, "GetSessionToken", &result); err != nil {
		return nil, err
	}

	out := &GetSessionTokenOutput{}
	if c := result.Credentials; c != nil {
		expiration, err := protocol.ExpectDateTime(derefAny(c.Expiration))
		if err != nil {
			return nil, fmt.Errorf("Expiration: %w", err)
		}
		out.Credentials = &Credentials{
			AccessKeyId:     c.AccessKeyId,
			SecretAccessKey: c.SecretAccessKey,
			SessionToken:    c.SessionToken,
			Expiration:      expiration,
		}
	}
	return out, nil
}

// derefAny returns *s as an untyped value, or nil.
func derefAny(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
