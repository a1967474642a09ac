package rng

import (
	"math/rand"

	"healthsynth/ports"
)

// Seeded derives a deterministic per-chunk stream from a base seed:
// seed(chunk i) = base + i. Re-running with the same base seed and chunking
// reproduces every chunk bit-for-bit regardless of worker count.
type Seeded struct {
	base int64
}

// NewSeeded creates a seeded stream factory
func NewSeeded(base int64) *Seeded {
	return &Seeded{base: base}
}

var _ ports.RNG = (*Seeded)(nil)

// ChunkStream returns the generator for chunk chunkIndex
func (s *Seeded) ChunkStream(chunkIndex int) *rand.Rand {
	return rand.New(rand.NewSource(s.base + int64(chunkIndex)))
}

// BaseSeed returns the base seed
func (s *Seeded) BaseSeed() int64 {
	return s.base
}
