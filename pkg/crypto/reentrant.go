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
	"sync"
	"sync/atomic"

	"github.com/Chen840302/ceph/internal/goid"
)

// reentrantMutex is a mutex the holding goroutine may lock again without
// deadlocking. The lock-callback protocol requires recursive locks: the
// provider may re-enter a lock it already holds on the same thread.
//
// The owner field is read without holding mu, which is safe: a goroutine
// only ever compares it against its own ID, and the ID is stored by that
// same goroutine while it holds mu.
type reentrantMutex struct {
	mu    sync.Mutex
	owner atomic.Uint64 // goroutine ID of the holder, 0 when free
	depth int           // lock depth, guarded by ownership
}

// Lock acquires the mutex, or increments the depth if the calling goroutine
// already holds it.
func (m *reentrantMutex) Lock() {
	id := goid.ID()
	if m.owner.Load() == id {
		m.depth++
		return
	}

	m.mu.Lock()
	m.owner.Store(id)
	m.depth = 1
}

// Unlock releases one level of the mutex. Unlocking a mutex not held by the
// calling goroutine is a programming error and panics, matching the
// fail-fast behavior of the runtime's own lock misuse checks.
func (m *reentrantMutex) Unlock() {
	id := goid.ID()
	if m.owner.Load() != id {
		panic("crypto: unlock of lock-table entry not held by this goroutine")
	}

	m.depth--
	if m.depth == 0 {
		m.owner.Store(0)
		m.mu.Unlock()
	}
}
