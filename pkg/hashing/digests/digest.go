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

// Package digests provides an immutable value type for computed hash digests.
//
// A Digest pairs the algorithm name with the raw digest bytes. Fields are
// unexported and the byte slice is defensively copied on the way in and out,
// so a Digest can be shared between goroutines without synchronization.
package digests

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Digest is one computed hash digest: the algorithm that produced it and the
// resulting bytes.
type Digest struct {
	algorithm string
	value     []byte
}

// NewDigest builds a Digest for the given algorithm name and raw bytes.
// The value slice is copied, so the caller may reuse its buffer.
func NewDigest(algorithm string, value []byte) Digest {
	v := make([]byte, len(value))
	copy(v, value)
	return Digest{algorithm: algorithm, value: v}
}

// Algorithm returns the name of the algorithm that produced this digest,
// e.g. "sha256" or "blake2b". The name carries every parameter that affects
// the output, so it can be used to reconstruct a compatible computation.
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	v := make([]byte, len(d.value))
	copy(v, d.value)
	return v
}

// Hex returns the lowercase hexadecimal encoding of the digest bytes.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Size returns the length of the digest in bytes.
func (d Digest) Size() int {
	return len(d.value)
}

// String formats the digest as "algorithm:hex".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether two digests have the same algorithm and bytes.
func (d Digest) Equal(other Digest) bool {
	return d.algorithm == other.algorithm && bytes.Equal(d.value, other.value)
}
