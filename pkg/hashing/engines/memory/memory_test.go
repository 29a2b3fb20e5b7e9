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
	"testing"

	hashengines "github.com/Chen840302/ceph/pkg/hashing/engines"
)

// Compile-time check that Engine satisfies the streaming interface.
var _ hashengines.StreamingHashEngine = (*Engine)(nil)

// Well-known digests of the empty string.
const (
	emptySHA256  = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	emptySHA512  = "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"
	emptyBLAKE2b = "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"
	emptySHA3    = "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"
)

func computeHex(t *testing.T, e hashengines.StreamingHashEngine) string {
	t.Helper()
	d, err := e.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return d.Hex()
}

func TestEmptyInputDigests(t *testing.T) {
	tests := []struct {
		algorithm string
		want      string
	}{
		{"sha256", emptySHA256},
		{"sha512", emptySHA512},
		{"blake2b", emptyBLAKE2b},
		{"sha3-256", emptySHA3},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			e, err := hashengines.Create(tt.algorithm)
			if err != nil {
				t.Fatalf("Create(%q) error = %v", tt.algorithm, err)
			}
			if got := computeHex(t, e); got != tt.want {
				t.Errorf("Compute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSHA256_UpdateThenCompute(t *testing.T) {
	const want = "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"

	e, err := NewSHA256(nil)
	if err != nil {
		t.Fatalf("NewSHA256() error = %v", err)
	}
	e.Update([]byte("abcd"))

	if got := computeHex(t, e); got != want {
		t.Errorf("Compute() = %q, want %q", got, want)
	}
}

func TestSHA256_InitialDataConstructor(t *testing.T) {
	const want = "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"

	e, err := NewSHA256([]byte("abcd"))
	if err != nil {
		t.Fatalf("NewSHA256() error = %v", err)
	}

	if got := computeHex(t, e); got != want {
		t.Errorf("Compute() = %q, want %q", got, want)
	}
}

func TestEngine_ResetDiscardsState(t *testing.T) {
	const want = "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"

	e, err := NewSHA256(nil)
	if err != nil {
		t.Fatalf("NewSHA256() error = %v", err)
	}

	e.Update([]byte("junk"))
	e.Reset(nil)
	e.Update([]byte("abcd"))

	if got := computeHex(t, e); got != want {
		t.Errorf("Compute() after Reset() = %q, want %q", got, want)
	}
}

func TestEngine_ResetWithSeedData(t *testing.T) {
	const want = "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"

	e, err := NewSHA256(nil)
	if err != nil {
		t.Fatalf("NewSHA256() error = %v", err)
	}
	e.Reset([]byte("abcd"))

	if got := computeHex(t, e); got != want {
		t.Errorf("Compute() = %q, want %q", got, want)
	}
}

func TestEngine_NamesAndSizes(t *testing.T) {
	tests := []struct {
		algorithm string
		size      int
	}{
		{"sha256", 32},
		{"sha512", 64},
		{"blake2b", 64},
		{"sha3-256", 32},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			e, err := hashengines.Create(tt.algorithm)
			if err != nil {
				t.Fatalf("Create(%q) error = %v", tt.algorithm, err)
			}
			if got := e.DigestName(); got != tt.algorithm {
				t.Errorf("DigestName() = %q, want %q", got, tt.algorithm)
			}
			if got := e.DigestSize(); got != tt.size {
				t.Errorf("DigestSize() = %d, want %d", got, tt.size)
			}

			d, err := e.Compute()
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if d.Size() != tt.size {
				t.Errorf("Digest.Size() = %d, want %d", d.Size(), tt.size)
			}
			if d.Algorithm() != tt.algorithm {
				t.Errorf("Digest.Algorithm() = %q, want %q", d.Algorithm(), tt.algorithm)
			}
		})
	}
}

func TestBLAKE2b_KnownVector(t *testing.T) {
	const want = "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923"

	e, err := NewBLAKE2b([]byte("abc"))
	if err != nil {
		t.Fatalf("NewBLAKE2b() error = %v", err)
	}

	if got := computeHex(t, e); got != want {
		t.Errorf("Compute() = %q, want %q", got, want)
	}
}

func TestSHA3_256_KnownVector(t *testing.T) {
	const want = "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"

	e, err := NewSHA3_256(nil)
	if err != nil {
		t.Fatalf("NewSHA3_256() error = %v", err)
	}
	e.Update([]byte("abc"))

	if got := computeHex(t, e); got != want {
		t.Errorf("Compute() = %q, want %q", got, want)
	}
}
