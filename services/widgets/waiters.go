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

package widgets

import (
	"context"
	"time"

	"github.com/tombee/awsclient/pkg/client"
	"github.com/tombee/awsclient/pkg/waiter"
)

// GetWidgetAPIClient is the client a WidgetActiveWaiter polls with.
type GetWidgetAPIClient interface {
	GetWidget(context.Context, *GetWidgetInput, ...func(*client.CallOptions)) (*GetWidgetOutput, error)
}

var _ GetWidgetAPIClient = (*Client)(nil)

var widgetActiveAcceptors = []waiter.Acceptor{
	{State: waiter.StateSuccess, Expression: `Status == "ACTIVE"`},
	{State: waiter.StateFailure, Expression: `Status == "FAILED"`},
	{State: waiter.StateFailure, Expression: `Status == "DELETING"`},
	{State: waiter.StateRetry, ErrorCode: "NotFoundException"},
}

// WidgetActiveWaiter waits for a widget to reach the ACTIVE status.
type WidgetActiveWaiter struct {
	client GetWidgetAPIClient
	waiter *waiter.Waiter[*GetWidgetOutput]
}

// NewWidgetActiveWaiter returns a waiter polling GetWidget every 5 to 60 seconds.
func NewWidgetActiveWaiter(c GetWidgetAPIClient, optFns ...func(*waiter.Options)) (*WidgetActiveWaiter, error) {
	fns := append([]func(*waiter.Options){func(o *waiter.Options) {
		o.MinDelay = 5 * time.Second
		o.MaxDelay = 60 * time.Second
	}}, optFns...)

	w, err := waiter.New[*GetWidgetOutput](widgetActiveAcceptors, fns...)
	if err != nil {
		return nil, err
	}
	return &WidgetActiveWaiter{client: c, waiter: w}, nil
}

// Wait polls GetWidget with params until the widget is ACTIVE, returning the last
// output. maxWait bounds the wait.
func (w *WidgetActiveWaiter) Wait(ctx context.Context, params *GetWidgetInput, maxWait time.Duration, optFns ...func(*waiter.Options)) (*GetWidgetOutput, error) {
	fns := append([]func(*waiter.Options){func(o *waiter.Options) {
		o.MaxWait = maxWait
	}}, optFns...)

	return w.waiter.Wait(ctx, func(ctx context.Context) (*GetWidgetOutput, error) {
		return w.client.GetWidget(ctx, params)
	}, fns...)
}
