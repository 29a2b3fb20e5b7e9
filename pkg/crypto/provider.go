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

// LockingCallback is invoked by the provider to acquire or release one entry
// of the lock table. The index is chosen by the provider's own locking
// protocol, not by this package.
type LockingCallback func(index int, acquire bool)

// ThreadIDCallback returns a stable numeric identity for the calling thread
// of execution, used by the provider's internal locking protocol.
type ThreadIDCallback func() uint64

// Provider models the underlying cryptographic library's initialization and
// thread-safety protocol. It is an injectable strategy: production code uses
// StdProvider, tests substitute fakes to observe install/uninstall behavior
// on both the thread-safe and legacy code paths in the same build.
type Provider interface {
	// ThreadSafe reports whether the provider performs its own internal
	// locking. When true, the locking shim disengages entirely.
	ThreadSafe() bool

	// LockCount returns how many locks the provider needs for its internal
	// locking protocol. Only consulted when ThreadSafe is false.
	LockCount() int

	// Initialize loads the provider's global tables (algorithms, error
	// strings). Called once per epoch, before the callbacks are registered.
	Initialize()

	// SetLockingCallback registers the locking hook. Passing nil
	// unregisters it.
	SetLockingCallback(LockingCallback)

	// SetThreadIDCallback registers the thread-identity hook. Passing nil
	// unregisters it.
	SetThreadIDCallback(ThreadIDCallback)

	// ReleaseThreadState frees hidden per-thread state the provider
	// allocated for the thread identified by tid.
	ReleaseThreadState(tid uint64)

	// Cleanup runs the provider's global teardown sequence. Called once per
	// epoch, after the callbacks have been unregistered.
	Cleanup()
}

// Compile-time check.
var _ Provider = StdProvider{}

// StdProvider is the production provider, backed by the Go crypto packages
// registered with the hashengines registry. Those packages are internally
// thread-safe and need no global setup or teardown, so every hook is a
// no-op; the value of routing through the Guard anyway is that callers
// behave identically should a legacy provider ever be substituted.
type StdProvider struct{}

// ThreadSafe always returns true for the standard provider.
func (StdProvider) ThreadSafe() bool { return true }

// LockCount returns 0; the standard provider needs no external locks.
func (StdProvider) LockCount() int { return 0 }

// Initialize is a no-op.
func (StdProvider) Initialize() {}

// SetLockingCallback is a no-op.
func (StdProvider) SetLockingCallback(LockingCallback) {}

// SetThreadIDCallback is a no-op.
func (StdProvider) SetThreadIDCallback(ThreadIDCallback) {}

// ReleaseThreadState is a no-op.
func (StdProvider) ReleaseThreadState(uint64) {}

// Cleanup is a no-op.
func (StdProvider) Cleanup() {}
