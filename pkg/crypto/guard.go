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

package crypto

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/Chen840302/ceph/pkg/logging"
	"github.com/Chen840302/ceph/pkg/tracing"
)

// FatalFunc aborts on an unrecoverable condition: a corrupted locking
// protocol or a violated lifecycle contract. It is the hosting process's
// fatal-abort primitive and must not return normally.
type FatalFunc func(format string, args ...interface{})

// defaultFatal panics. Setup failure of the cryptographic subsystem is a
// correctness precondition, not a recoverable error.
func defaultFatal(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// Guard owns the shared lifecycle of one provider. The ref count is the
// single source of truth for whether the subsystem is installed: the atomic
// increment and decrement linearize all transitions, so exactly one
// goroutine observes 0→1 and runs install, and exactly one observes 1→0 and
// runs uninstall, with no extra mutex on the hot path.
type Guard struct {
	refs     atomic.Int64
	provider Provider
	shim     *shim
	logger   logging.Logger
	fatal    FatalFunc
}

// Option configures a Guard.
type Option func(*Guard)

// WithLogger sets the logger used for lifecycle transitions.
func WithLogger(l logging.Logger) Option {
	return func(g *Guard) { g.logger = l }
}

// WithFatalFunc replaces the fatal-abort primitive. Intended for tests that
// need to observe contract violations without crashing the process.
func WithFatalFunc(f FatalFunc) Option {
	return func(g *Guard) { g.fatal = f }
}

// NewGuard builds a lifecycle guard around the given provider.
func NewGuard(p Provider, opts ...Option) *Guard {
	g := &Guard{provider: p, fatal: defaultFatal}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = logging.EnsureLogger(g.logger)
	g.shim = newShim(p, g.logger, g.fatal)
	return g
}

// Acquire marks the start of one caller's use of the subsystem. The first
// Acquire of an epoch installs the provider's global state; every Acquire,
// first or not, records the calling goroutine so its per-thread provider
// state can be drained at teardown. Acquire cannot fail; unrecoverable
// setup problems abort via the guard's FatalFunc.
func (g *Guard) Acquire() {
	if g.refs.Add(1) == 1 {
		_ = tracing.Run(context.Background(), "crypto.install", nil, func(context.Context) error {
			g.shim.install()
			return nil
		})
		g.logger.Debug("crypto subsystem installed")
	}
	g.shim.recordCurrentThread()
}

// Release marks the end of one caller's use. Only the call that returns the
// ref count to zero tears the subsystem down; any other call returns
// immediately. A Release without a matching Acquire is a contract violation
// and aborts.
func (g *Guard) Release() {
	n := g.refs.Add(-1)
	switch {
	case n < 0:
		g.fatal("crypto: Release without matching Acquire (ref count %d)", n)
	case n == 0:
		_ = tracing.Run(context.Background(), "crypto.uninstall", nil, func(context.Context) error {
			g.shim.uninstall()
			return nil
		})
		g.logger.Debug("crypto subsystem uninstalled")
	}
}

// Active reports whether the subsystem is currently held by at least one
// caller.
func (g *Guard) Active() bool {
	return g.refs.Load() > 0
}

// Refs returns the current reference count.
func (g *Guard) Refs() int64 {
	return g.refs.Load()
}

// std guards the process-wide default provider.
var std = NewGuard(StdProvider{})

// Default returns the process-wide guard used by the package-level
// Acquire, Release and NewDigest.
func Default() *Guard {
	return std
}

// Acquire acquires the process-wide default guard.
func Acquire() {
	std.Acquire()
}

// Release releases the process-wide default guard.
func Release() {
	std.Release()
}
