// In-memory bloom filter for record membership.
//
// Contains, IndexOf and Remove on a List would otherwise scan the whole
// primary sequence. Once a list grows past bloomThreshold it keeps a bloom
// filter over record keys, so a definite miss skips the scan. Bits are
// never cleared on removal; a stale bit only costs a scan. The filter is
// rebuilt at double capacity when it fills and dropped on Clear.
package gedcom

import (
	"hash/fnv"

	"github.com/zeebo/xxh3"
)

// Bloom filter sizing constants.
const (
	BloomBitsPerEntry = 10 // ~1% false positives at BloomK=7
	BloomK            = 7  // number of hash functions

	bloomThreshold = 64 // list length at which a filter is built
)

type bloom struct {
	bits     []byte
	capacity int // entries the filter was sized for
	count    int // entries added since the last Reset
}

// newBloom returns a zeroed bloom filter sized for capacity entries.
func newBloom(capacity int) *bloom {
	if capacity < bloomThreshold {
		capacity = bloomThreshold
	}
	nbytes := (capacity*BloomBitsPerEntry + 7) / 8
	return &bloom{bits: make([]byte, nbytes), capacity: capacity}
}

// Add inserts a key into the filter.
func (b *bloom) Add(key string) {
	for _, pos := range b.positions(key) {
		b.bits[pos/8] |= 1 << (pos % 8)
	}
	b.count++
}

// Contains returns true if the key might be present, false if definitely absent.
func (b *bloom) Contains(key string) bool {
	for _, pos := range b.positions(key) {
		if b.bits[pos/8]&(1<<(pos%8)) == 0 {
			return false
		}
	}
	return true
}

// Full reports whether the filter holds as many entries as it was sized for.
func (b *bloom) Full() bool {
	return b.count >= b.capacity
}

// Reset clears all bits.
func (b *bloom) Reset() {
	clear(b.bits)
	b.count = 0
}

// positions returns BloomK bit positions using double hashing (xxHash3 + FNV-32a).
func (b *bloom) positions(key string) [BloomK]uint {
	a := xxh3.HashString(key)

	h32 := fnv.New32a()
	h32.Write([]byte(key))
	step := uint(h32.Sum32())

	nbits := uint(len(b.bits) * 8)
	var pos [BloomK]uint
	for i := range BloomK {
		pos[i] = (uint(a) + uint(i)*step) % nbits
	}
	return pos
}
