// Digests for record fingerprints and document checksums.
//
// Every algorithm produces 64 bits, rendered as 16 hex characters.
// Callers stream their input into the digest.
package gedcom

import (
	"encoding/hex"
	"hash"
	"hash/fnv"
	"io"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hash algorithms selectable through Config.HashAlgorithm.
const (
	AlgXXHash3 = 1
	AlgFNV1a   = 2
	AlgBlake2b = 3
)

// newDigest returns a fresh 64-bit hash for alg, or nil.
func newDigest(alg int) hash.Hash {
	switch alg {
	case AlgXXHash3:
		return xxh3.New()
	case AlgFNV1a:
		return fnv.New64a()
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil)
		return h
	}
	return nil
}

// digest runs write against a new hash for alg and returns the hex sum.
// An unsupported alg yields "".
func digest(alg int, write func(io.Writer)) string {
	h := newDigest(alg)
	if h == nil {
		return ""
	}
	write(h)
	return hex.EncodeToString(h.Sum(nil))
}

func validAlg(alg int) bool {
	return newDigest(alg) != nil
}
