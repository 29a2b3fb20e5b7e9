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
	"io"

	"github.com/Chen840302/ceph/pkg/hashing/digests"
	hashengines "github.com/Chen840302/ceph/pkg/hashing/engines"

	// Register the built-in hash engines; they are the provider's
	// algorithm table.
	_ "github.com/Chen840302/ceph/pkg/hashing/engines/memory"
)

// Digest is a restartable digest session bound to one algorithm. Feed bytes
// with Update (or io.Copy via Write), read the result with Final or Compute,
// and reuse the session for a fresh computation with Restart.
//
// A session is not safe for concurrent use by more than one goroutine;
// distinct sessions are independent and may run concurrently. After Final or
// Compute the session is finalized and rejects further input until Restart.
type Digest struct {
	algorithm string
	engine    hashengines.StreamingHashEngine
	fatal     FatalFunc
	finalized bool
}

var _ io.Writer = (*Digest)(nil)

// NewDigest creates a digest session for the named algorithm. The guard
// must be held (Acquire without a matching Release); creating a session on
// an inactive guard is a contract violation and aborts. An unknown
// algorithm name is an ordinary error listing the supported names.
//
// The session is ready for input immediately; no explicit Restart is needed
// after construction.
func (g *Guard) NewDigest(algorithm string) (*Digest, error) {
	if !g.Active() {
		g.fatal("crypto: NewDigest(%q) called before Acquire", algorithm)
	}

	engine, err := hashengines.Create(algorithm)
	if err != nil {
		return nil, err
	}

	return &Digest{algorithm: algorithm, engine: engine, fatal: g.fatal}, nil
}

// NewDigest creates a digest session on the process-wide default guard.
func NewDigest(algorithm string) (*Digest, error) {
	return std.NewDigest(algorithm)
}

// Algorithm returns the algorithm name the session is bound to.
func (d *Digest) Algorithm() string {
	return d.algorithm
}

// Size returns the length in bytes of the digest this session produces.
func (d *Digest) Size() int {
	d.checkOpen()
	return d.engine.DigestSize()
}

// Restart re-initializes the session for a fresh computation with the same
// algorithm, discarding any partial or finalized state. Safe to call at any
// point, including immediately after construction or after Final.
func (d *Digest) Restart() {
	d.checkOpen()
	d.engine.Reset(nil)
	d.finalized = false
}

// Close releases the session's digest context. The session must not be used
// afterwards. Closing does not finalize: a pending computation is discarded
// without producing a digest.
func (d *Digest) Close() {
	d.engine = nil
}

func (d *Digest) checkOpen() {
	if d.engine == nil {
		d.fatal("crypto: use of closed digest session")
	}
}

// Update feeds bytes into the running computation. Empty input is a no-op
// and is never forwarded to the engine. The result depends on the order
// bytes are fed, not on how they are chunked across calls.
func (d *Digest) Update(p []byte) {
	d.checkOpen()
	if d.finalized {
		d.fatal("crypto: Update on finalized digest session; call Restart first")
		return
	}
	if len(p) == 0 {
		return
	}
	d.engine.Update(p)
}

// Write feeds bytes into the computation, adapting the session to
// io.Writer so callers can stream data in with io.Copy.
func (d *Digest) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

// Final writes the digest into out, which must be exactly Size() bytes.
// The session is left finalized; feeding more data or finalizing again
// without a Restart is a contract violation.
func (d *Digest) Final(out []byte) {
	d.checkOpen()
	if len(out) != d.engine.DigestSize() {
		d.fatal("crypto: Final buffer is %d bytes, algorithm %q produces %d",
			len(out), d.algorithm, d.engine.DigestSize())
		return
	}

	dg, err := d.compute()
	if err != nil {
		d.fatal("crypto: finalizing %q digest: %v", d.algorithm, err)
		return
	}
	copy(out, dg.Value())
}

// Compute finalizes the computation and returns the digest as a value.
// Like Final, it leaves the session finalized until Restart.
func (d *Digest) Compute() (digests.Digest, error) {
	return d.compute()
}

func (d *Digest) compute() (digests.Digest, error) {
	d.checkOpen()
	if d.finalized {
		d.fatal("crypto: finalize on already finalized digest session; call Restart first")
	}

	dg, err := d.engine.Compute()
	if err != nil {
		return digests.Digest{}, err
	}
	d.finalized = true
	return dg, nil
}
