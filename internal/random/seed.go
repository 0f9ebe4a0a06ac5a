// Package random provides cryptographic seed generation and the seeded
// generators used to sample dice.
//
// Seeds come from crypto/rand. Each roll builds its own generator from a
// fresh seed, so concurrent rolls never share generator state and any roll
// can be replayed by reusing its seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source produces uniformly distributed integers in [0, n).
//
// *rand.Rand satisfies Source; tests substitute deterministic sequences.
type Source interface {
	Int63n(n int64) int64
}

// SeedFunc returns a seed for a new generator.
type SeedFunc func() (int64, error)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a generator seeded with seed. The generator is not safe for
// concurrent use; create one per roll.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
