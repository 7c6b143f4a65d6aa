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
Package tracing provides OpenTelemetry tracing for operation calls.

Middleware opens one client span per call, named "Service.Operation", and records
the region, invocation id, status code, request id and attempt count. Failed calls
set the span status to error with a redacted description.

NewProvider builds an SDK tracer provider from Config, exporting to stdout, OTLP over
HTTP or OTLP over gRPC:

	provider, err := tracing.NewProvider(ctx, tracing.Config{
	    Exporter: tracing.ExporterOTLPHTTP,
	    Endpoint: "localhost:4318",
	    Insecure: true,
	}, "awsclient", version.Version)
	if err != nil {
	    return err
	}
	defer provider.Shutdown(ctx)

	cfg.TracerProvider = provider.TracerProvider()
*/
package tracing
