package ports

import (
	"math/rand"
)

// RNG provides seeded random number generation for deterministic chunked
// runs. Each chunk must get its own stream: parallel consumption of a single
// sequential generator is not reproducible across differing levels of
// parallelism.
type RNG interface {
	// ChunkStream returns the deterministic generator for one chunk.
	// The same base seed and chunk index always yield the same stream.
	ChunkStream(chunkIndex int) *rand.Rand

	// BaseSeed returns the seed the streams derive from
	BaseSeed() int64
}
