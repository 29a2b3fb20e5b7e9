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

// Package crypto manages the shared lifecycle of an underlying cryptographic
// library and exposes restartable digest sessions on top of it.
//
// Any number of independent subsystems may call Acquire and Release without
// coordinating with one another: the calls are reference-counted, the first
// Acquire installs the library's global state and the Release that returns
// the count to zero tears it down. The cycle is restartable, so a later
// Acquire begins a fresh epoch.
//
// Providers that are not internally thread-safe (see Provider) are wrapped
// in a locking shim: a table of re-entrant locks driven by the provider's
// locking callback, plus a thread-identity callback and a registry of every
// goroutine that acquired the subsystem, drained at teardown to release
// per-thread state the provider allocated invisibly. For internally
// thread-safe providers, such as the default StdProvider, the shim is a
// no-op; callers still pair Acquire and Release so behavior is uniform.
//
// Known limitation, inherited from the underlying protocol: a goroutine that
// uses the library without ever calling Acquire is not present in the
// registry, so its per-thread state is not drained at shutdown and may leak.
//
// Digest sessions are created with NewDigest once the lifecycle is held.
// A session is cheap, single-goroutine, and restartable; distinct sessions
// may be used concurrently from different goroutines.
package crypto
