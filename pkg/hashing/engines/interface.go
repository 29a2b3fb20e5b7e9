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

// Package hashengines defines the interfaces and algorithm registry for
// computing cryptographic digests.
//
// The registry plays the role of the underlying library's algorithm table:
// engines register themselves by name at package init time, and callers look
// them up with Create. Concrete implementations live in the memory
// subpackage.
package hashengines

import (
	"github.com/Chen840302/ceph/pkg/hashing/digests"
)

// HashEngine computes the digest of whatever data it has been given.
//
// The algorithm name reported by DigestName must include every parameter
// that influences the output, so that a digest can later be recomputed
// compatibly from the name alone.
type HashEngine interface {
	// Compute finalizes the computation and returns the resulting digest.
	Compute() (digests.Digest, error)

	// DigestName returns the canonical name of the algorithm.
	DigestName() string

	// DigestSize returns the size in bytes of digests produced by this
	// engine. It matches the Size of the Digest returned by Compute.
	DigestSize() int
}

// Streaming is the incremental side of a hash engine. It is a separate
// interface so one-shot engines do not have to fake it.
type Streaming interface {
	// Update appends additional bytes to the running computation.
	Update(data []byte)

	// Reset discards all state and optionally seeds the fresh computation
	// with data.
	Reset(data []byte)
}

// StreamingHashEngine is a hash engine that accepts data incrementally.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
