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

package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/smithy-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/middleware"
)

func TestCollector_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.Record("Widgets", "GetWidget", 150*time.Millisecond, 1, nil)
	c.Record("Widgets", "GetWidget", 10*time.Millisecond, 2, &awserrors.GenericError{Code: "NotFoundException", Fault: smithy.FaultClient})
	c.Record("Widgets", "GetWidget", 10*time.Millisecond, 3, &awserrors.GenericError{Code: "InternalServerException", Fault: smithy.FaultServer})
	c.Record("Widgets", "GetWidget", time.Millisecond, 0, errors.New("connection refused"))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.calls.WithLabelValues("Widgets", "GetWidget", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.calls.WithLabelValues("Widgets", "GetWidget", OutcomeClientError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.calls.WithLabelValues("Widgets", "GetWidget", OutcomeServerError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.calls.WithLabelValues("Widgets", "GetWidget", OutcomeTransportError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.errors.WithLabelValues("Widgets", "GetWidget", "NotFoundException")))

	count, err := testutil.GatherAndCount(reg, "awsclient_operation_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, OutcomeClientError, Outcome(&smithy.SerializationError{Err: errors.New("missing Id")}))
	assert.Equal(t, OutcomeTransportError, Outcome(context.DeadlineExceeded))
}

func TestCollector_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	stack := middleware.NewStack(middleware.InitializeStep, c.Middleware())
	h, err := stack.Resolve(middleware.HandlerFunc(func(ctx context.Context, in middleware.Input) (middleware.Output, error) {
		middleware.GetExecutionContext(ctx).Attempts = 2
		return middleware.Output{Result: "ok"}, nil
	}))
	require.NoError(t, err)

	ctx := middleware.WithExecutionContext(context.Background(), &middleware.ExecutionContext{
		ServiceID: "Streams",
		Operation: "PutRecord",
	})
	_, err = h.Handle(ctx, middleware.Input{})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.calls.WithLabelValues("Streams", "PutRecord", OutcomeSuccess)))
	count, err := testutil.GatherAndCount(reg, "awsclient_operation_attempts")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
