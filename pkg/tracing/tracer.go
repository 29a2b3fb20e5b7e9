// Copyright 2025 The Ceph Go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tracing provides an abstraction for distributed tracing. The
// default build uses a no-op tracer with no OpenTelemetry dependency at run
// time; when built with the "otel" build tag and configured via OTEL_*
// environment variables, spans are exported over OTLP HTTP. Callers use the
// same Start/Run API either way.
package tracing

import "context"

// Span is a single named, timed operation in a trace. End it when the
// operation completes; SetAttribute attaches key-value metadata.
type Span interface {
	// SetAttribute sets a key-value attribute on the span.
	SetAttribute(key string, value interface{})
	// End marks the span as finished.
	End()
}

// Tracer creates spans. When OpenTelemetry is not built in or not
// configured, the no-op implementation stands in so call sites never branch.
type Tracer interface {
	// Start begins a span with the given name. Use the returned context for
	// downstream calls and End the span when done.
	Start(ctx context.Context, name string) (context.Context, Span)
}

var globalTracer Tracer = NoopTracer{}

// SetTracer installs the global tracer used by Start and Run. Passing nil
// restores the no-op tracer. Typically called once after InitFromEnv.
func SetTracer(t Tracer) {
	if t == nil {
		globalTracer = NoopTracer{}
		return
	}
	globalTracer = t
}

// GetTracer returns the current global tracer; never nil.
func GetTracer() Tracer {
	return globalTracer
}

// Start begins a span on the global tracer.
func Start(ctx context.Context, name string) (context.Context, Span) {
	return globalTracer.Start(ctx, name)
}

// Enabled reports whether a real (non-noop) tracer is installed. Always
// false in the default build.
func Enabled() bool {
	_, noop := globalTracer.(NoopTracer)
	return !noop
}

// Run wraps fn in a span with the given name and attributes: start, set
// attributes, run, end. When no real tracer is installed, fn runs directly
// with no overhead. A nil attrs map is fine.
func Run(ctx context.Context, name string, attrs map[string]interface{}, fn func(context.Context) error) error {
	if !Enabled() {
		return fn(ctx)
	}

	ctx, span := globalTracer.Start(ctx, name)
	defer span.End()
	for k, v := range attrs {
		span.SetAttribute(k, v)
	}
	return fn(ctx)
}
