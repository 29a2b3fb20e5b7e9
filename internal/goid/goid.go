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

// Package goid extracts a stable numeric identity for the calling goroutine.
//
// The runtime does not expose goroutine IDs on purpose, so this package
// parses the first line of a runtime.Stack dump, which has the fixed format
// "goroutine 123 [running]:". The ID is unique for the lifetime of the
// goroutine and never reused while it is alive, which is all the locking
// protocol in pkg/crypto needs from it.
package goid

import "runtime"

// ID returns the current goroutine's numeric identity.
//
// Returns 0 only if the stack header cannot be parsed, which would indicate
// a runtime format change.
func ID() uint64 {
	// Only the first line is needed; 64 bytes always covers
	// "goroutine <n> [running]:".
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	return parse(buf[:n])
}

// parse extracts the numeric ID from a stack header of the form
// "goroutine 123 [running]:...". Returns 0 if the prefix is absent.
func parse(buf []byte) uint64 {
	const prefix = "goroutine "

	if len(buf) < len(prefix) || string(buf[:len(prefix)]) != prefix {
		return 0
	}

	var id uint64
	for i := len(prefix); i < len(buf); i++ {
		c := buf[i]
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
