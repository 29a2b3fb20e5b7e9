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

	"github.com/Chen840302/ceph/internal/goid"
	"github.com/Chen840302/ceph/pkg/logging"
)

// shim makes a provider without internal locking safe to call from multiple
// goroutines. It owns the lock table and the registry of acquiring
// goroutines. For thread-safe providers every method is a no-op; the
// capability check happens once at construction.
//
// The Guard's atomic ref-count transitions guarantee install and uninstall
// each run on exactly one goroutine per epoch, so the shim itself needs no
// locking beyond the registry mutex.
type shim struct {
	provider Provider
	logger   logging.Logger
	fatal    FatalFunc
	engaged  bool

	locks []reentrantMutex

	// The registry has its own lock, distinct from the lock table: it is
	// appended to during the very first Acquire, before the table exists,
	// and drained at teardown just before the table is dropped.
	regMu sync.Mutex
	tids  []uint64
}

func newShim(p Provider, logger logging.Logger, fatal FatalFunc) *shim {
	return &shim{
		provider: p,
		logger:   logger,
		fatal:    fatal,
		engaged:  !p.ThreadSafe(),
	}
}

// install allocates the lock table and registers the locking and
// thread-identity callbacks with the provider. Runs on the goroutine that
// moved the ref count 0→1.
func (s *shim) install() {
	if !s.engaged {
		return
	}

	n := s.provider.LockCount()
	if n < 0 {
		n = 0
	}
	if n > 0 {
		s.locks = make([]reentrantMutex, n)
	}

	s.provider.Initialize()
	s.provider.SetLockingCallback(s.lockEntry)
	s.provider.SetThreadIDCallback(goid.ID)

	s.logger.Debug("crypto shim installed: %d lock-table entries", n)
}

// lockEntry is the locking callback handed to the provider. The index comes
// from the provider's own protocol; anything out of range means the protocol
// is corrupted and there is no safe way to continue.
func (s *shim) lockEntry(index int, acquire bool) {
	if index < 0 || index >= len(s.locks) {
		s.fatal("crypto: locking callback index %d outside lock table of %d entries", index, len(s.locks))
		return
	}

	if acquire {
		s.locks[index].Lock()
	} else {
		s.locks[index].Unlock()
	}
}

// recordCurrentThread registers the calling goroutine's identity so its
// hidden per-thread provider state can be released at teardown. Called on
// every Acquire, not just the installing one. Duplicate entries are
// tolerated; releasing the same identity twice is harmless and cheaper than
// deduplicating here.
func (s *shim) recordCurrentThread() {
	if !s.engaged {
		return
	}

	tid := goid.ID()
	s.regMu.Lock()
	s.tids = append(s.tids, tid)
	s.regMu.Unlock()
}

// uninstall tears the shim down. Runs on the goroutine that moved the ref
// count 1→0. Order matters: per-thread state is drained first (it does not
// need the lock table), callbacks are unregistered before the table is
// dropped, and the provider's global cleanup runs in between.
func (s *shim) uninstall() {
	if !s.engaged {
		return
	}

	s.regMu.Lock()
	tids := s.tids
	s.tids = nil
	s.regMu.Unlock()

	for _, tid := range tids {
		s.provider.ReleaseThreadState(tid)
	}

	s.provider.SetLockingCallback(nil)
	s.provider.SetThreadIDCallback(nil)
	s.provider.Cleanup()

	s.locks = nil

	s.logger.Debug("crypto shim uninstalled: drained %d recorded thread identities", len(tids))
}
