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

package tracing

import (
	"context"
	"errors"
	"testing"
)

// recordingTracer captures span names for assertions.
type recordingTracer struct {
	names []string
}

type recordingSpan struct {
	attrs map[string]interface{}
	ended bool
}

func (t *recordingTracer) Start(ctx context.Context, name string) (context.Context, Span) {
	t.names = append(t.names, name)
	return ctx, &recordingSpan{attrs: make(map[string]interface{})}
}

func (s *recordingSpan) SetAttribute(key string, value interface{}) { s.attrs[key] = value }
func (s *recordingSpan) End()                                       { s.ended = true }

func TestDefaultTracerIsNoop(t *testing.T) {
	if Enabled() {
		t.Fatal("Enabled() = true in default build, want false")
	}

	ctx := context.Background()
	got, span := Start(ctx, "op")
	if got != ctx {
		t.Error("NoopTracer.Start() changed the context")
	}
	span.SetAttribute("k", "v")
	span.End()
}

func TestRun_NoTracerCallsFnDirectly(t *testing.T) {
	called := false
	err := Run(context.Background(), "op", nil, func(context.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Errorf("Run() error = %v", err)
	}
	if !called {
		t.Error("Run() did not call fn")
	}
}

func TestRun_PropagatesError(t *testing.T) {
	want := errors.New("boom")
	if err := Run(context.Background(), "op", nil, func(context.Context) error { return want }); err != want {
		t.Errorf("Run() error = %v, want %v", err, want)
	}
}

func TestSetTracer(t *testing.T) {
	rec := &recordingTracer{}
	SetTracer(rec)
	defer SetTracer(nil)

	if !Enabled() {
		t.Fatal("Enabled() = false with real tracer installed")
	}

	err := Run(context.Background(), "crypto.install", map[string]interface{}{"locks": 4}, func(context.Context) error {
		return nil
	})
	if err != nil {
		t.Errorf("Run() error = %v", err)
	}
	if len(rec.names) != 1 || rec.names[0] != "crypto.install" {
		t.Errorf("recorded spans = %v, want [crypto.install]", rec.names)
	}
}

func TestSetTracer_NilRestoresNoop(t *testing.T) {
	SetTracer(&recordingTracer{})
	SetTracer(nil)
	if Enabled() {
		t.Error("Enabled() = true after SetTracer(nil)")
	}
}
