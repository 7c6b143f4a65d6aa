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

// Package metrics records per-call Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/aws/smithy-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/middleware"
)

// MiddlewareID is the ID of the metrics middleware.
const MiddlewareID = "OperationMetrics"

// Call outcomes used as the "outcome" label.
const (
	OutcomeSuccess        = "success"
	OutcomeClientError    = "client_error"
	OutcomeServerError    = "server_error"
	OutcomeTransportError = "transport_error"
)

// Collector holds the metric vectors of one registry. Create one per registry;
// registering twice against the same registry panics.
type Collector struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	attempts *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// NewCollector registers the call metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		calls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "awsclient_operation_calls_total",
				Help: "Total operation calls by outcome",
			},
			[]string{"service", "operation", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "awsclient_operation_duration_seconds",
				Help:    "Duration of operation calls including retries",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "operation"},
		),
		attempts: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "awsclient_operation_attempts",
				Help:    "Transport attempts per operation call",
				Buckets: []float64{1, 2, 3, 5, 8},
			},
			[]string{"service", "operation"},
		),
		errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "awsclient_operation_errors_total",
				Help: "Total service errors by error code",
			},
			[]string{"service", "operation", "code"},
		),
	}
}

// Record records one completed call.
func (c *Collector) Record(service, operation string, duration time.Duration, attempts int, err error) {
	outcome := Outcome(err)
	c.calls.WithLabelValues(service, operation, outcome).Inc()
	c.duration.WithLabelValues(service, operation).Observe(duration.Seconds())
	if attempts > 0 {
		c.attempts.WithLabelValues(service, operation).Observe(float64(attempts))
	}

	if code := awserrors.Code(err); code != "" {
		c.errors.WithLabelValues(service, operation, code).Inc()
	}
}

// Outcome classifies a call result for the outcome label.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	var apiErr awserrors.APIError
	if errors.As(err, &apiErr) {
		if apiErr.ErrorFault() == smithy.FaultServer {
			return OutcomeServerError
		}
		return OutcomeClientError
	}
	var serErr *smithy.SerializationError
	if errors.As(err, &serErr) {
		return OutcomeClientError
	}
	return OutcomeTransportError
}

// Middleware returns initialize-step middleware that records every call in c.
func (c *Collector) Middleware() middleware.Middleware {
	return middleware.MiddlewareFunc(MiddlewareID, func(ctx context.Context, in middleware.Input, next middleware.Handler) (middleware.Output, error) {
		start := time.Now()
		out, err := next.Handle(ctx, in)

		var service, operation string
		var attempts int
		if ec := middleware.GetExecutionContext(ctx); ec != nil {
			service, operation, attempts = ec.ServiceID, ec.Operation, ec.Attempts
		}
		c.Record(service, operation, time.Since(start), attempts, err)
		return out, err
	})
}
