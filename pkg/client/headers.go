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

package client

import (
	"context"
	"runtime"
	"strings"

	"github.com/google/uuid"

	"github.com/tombee/awsclient/pkg/middleware"
)

// Version is the runtime version reported in the User-Agent header.
// It is set at build time via ldflags.
var Version = "dev"

// Middleware IDs registered by the client.
const (
	InvocationIDMiddlewareID   = "InvocationID"
	RequestHeadersMiddlewareID = "RequestHeaders"
	CallStateMiddlewareID      = "CallState"
)

// Header names set on every request.
const (
	HeaderInvocationID = "Amz-Sdk-Invocation-Id"
	HeaderUserAgent    = "User-Agent"
)

// invocationID assigns a fresh invocation id to the call.
func invocationID() middleware.Middleware {
	return middleware.MiddlewareFunc(InvocationIDMiddlewareID, func(ctx context.Context, in middleware.Input, next middleware.Handler) (middleware.Output, error) {
		if ec := middleware.GetExecutionContext(ctx); ec != nil && ec.InvocationID == "" {
			ec.InvocationID = uuid.NewString()
		}
		return next.Handle(ctx, in)
	})
}

// requestHeaders sets the invocation id and User-Agent headers.
func requestHeaders(userAgent string) middleware.Middleware {
	return middleware.MiddlewareFunc(RequestHeadersMiddlewareID, func(ctx context.Context, in middleware.Input, next middleware.Handler) (middleware.Output, error) {
		if in.Request != nil {
			if ec := middleware.GetExecutionContext(ctx); ec != nil && ec.InvocationID != "" {
				in.Request.Header.Set(HeaderInvocationID, ec.InvocationID)
			}
			in.Request.Header.Set(HeaderUserAgent, userAgent)
		}
		return next.Handle(ctx, in)
	})
}

// UserAgent builds the User-Agent value for a service.
func UserAgent(serviceID, appID string) string {
	var b strings.Builder
	b.WriteString("awsclient-go/")
	b.WriteString(Version)
	b.WriteString(" os/")
	b.WriteString(runtime.GOOS)
	b.WriteString(" lang/go#")
	b.WriteString(strings.TrimPrefix(runtime.Version(), "go"))
	b.WriteString(" md/GOARCH#")
	b.WriteString(runtime.GOARCH)
	b.WriteString(" api/")
	b.WriteString(strings.ToLower(strings.ReplaceAll(serviceID, " ", "")))
	b.WriteString("#")
	b.WriteString(Version)
	if appID != "" {
		b.WriteString(" app/")
		b.WriteString(appID)
	}
	return b.String()
}
