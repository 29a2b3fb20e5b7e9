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
	"hash"

	hashengines "github.com/Chen840302/ceph/pkg/hashing/engines"
	"golang.org/x/crypto/sha3"
)

func init() {
	hashengines.MustRegister("sha3-256", func() (hashengines.StreamingHashEngine, error) {
		return NewSHA3_256(nil)
	})
}

// NewSHA3_256 creates a SHA3-256 engine. If initialData is non-empty it is
// hashed immediately.
func NewSHA3_256(initialData []byte) (*Engine, error) {
	return NewEngine("sha3-256", 32, func() (hash.Hash, error) {
		return sha3.New256(), nil
	}, initialData)
}
