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

package memory

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	hashengines "github.com/Chen840302/ceph/pkg/hashing/engines"
)

func init() {
	hashengines.MustRegister("sha256", func() (hashengines.StreamingHashEngine, error) {
		return NewSHA256(nil)
	})
	hashengines.MustRegister("sha512", func() (hashengines.StreamingHashEngine, error) {
		return NewSHA512(nil)
	})
}

// NewSHA256 creates a SHA-256 engine. If initialData is non-empty it is
// hashed immediately.
func NewSHA256(initialData []byte) (*Engine, error) {
	return NewEngine("sha256", sha256.Size, func() (hash.Hash, error) {
		return sha256.New(), nil
	}, initialData)
}

// NewSHA512 creates a SHA-512 engine. If initialData is non-empty it is
// hashed immediately.
func NewSHA512(initialData []byte) (*Engine, error) {
	return NewEngine("sha512", sha512.Size, func() (hash.Hash, error) {
		return sha512.New(), nil
	}, initialData)
}
