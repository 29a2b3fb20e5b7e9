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

//go:build !otel

// Default-build stand-ins for the OpenTelemetry initialization in
// env_otel.go.

package tracing

import "context"

// InitFromEnv initializes tracing from OTEL_* environment variables. In the
// default build (without the "otel" build tag) it is a no-op.
func InitFromEnv() error {
	return nil
}

// Shutdown flushes and stops the tracer provider. In the default build it
// is a no-op.
func Shutdown(context.Context) error {
	return nil
}
