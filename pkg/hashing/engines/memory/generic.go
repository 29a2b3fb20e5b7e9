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

// Package memory provides in-memory streaming hash engines built on
// hash.Hash implementations from the standard library and golang.org/x/crypto.
// Each engine registers itself with the hashengines registry at init time.
package memory

import (
	"hash"

	"github.com/Chen840302/ceph/pkg/hashing/digests"
	hashengines "github.com/Chen840302/ceph/pkg/hashing/engines"
)

var _ hashengines.StreamingHashEngine = (*Engine)(nil)

// HashFactory creates a fresh hash.Hash instance for one algorithm.
type HashFactory func() (hash.Hash, error)

// Engine wraps any hash.Hash as a StreamingHashEngine. All concrete
// algorithms in this package are instances of it, differing only in name,
// size and factory.
type Engine struct {
	name    string
	size    int
	factory HashFactory
	h       hash.Hash
}

// NewEngine builds an engine for the named algorithm. size is the digest
// length in bytes. If initialData is non-empty it is hashed immediately.
func NewEngine(name string, size int, factory HashFactory, initialData []byte) (*Engine, error) {
	h, err := factory()
	if err != nil {
		return nil, err
	}

	e := &Engine{name: name, size: size, factory: factory, h: h}
	if len(initialData) > 0 {
		// hash.Hash.Write never returns an error per its contract.
		_, _ = e.h.Write(initialData)
	}
	return e, nil
}

// Update appends more bytes to the running computation.
func (e *Engine) Update(data []byte) {
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Reset discards the current state and optionally seeds the fresh
// computation with data.
func (e *Engine) Reset(data []byte) {
	// The factory already succeeded once at construction time.
	h, _ := e.factory()
	e.h = h

	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Compute finalizes the computation and returns the digest. The engine
// state itself is not consumed; Reset starts a fresh computation.
func (e *Engine) Compute() (digests.Digest, error) {
	return digests.NewDigest(e.name, e.h.Sum(nil)), nil
}

// DigestName returns the canonical algorithm name.
func (e *Engine) DigestName() string {
	return e.name
}

// DigestSize returns the digest length in bytes.
func (e *Engine) DigestSize() int {
	return e.size
}
