package ports

import (
	"context"

	"healthsynth/domain/health"
)

// ChunkSink persists one self-contained chunk of generated records and
// returns an identifier the merger can consume.
type ChunkSink interface {
	WriteChunk(ctx context.Context, chunkIndex int, records []health.Record) (string, error)
}

// ChunkMerger concatenates chunk artifacts, in the given order, into one
// final artifact with a single header. It returns the merged row count.
type ChunkMerger interface {
	Merge(ctx context.Context, chunkIDs []string, dest string) (int, error)
}

// RecordRepository loads generated records into external storage.
type RecordRepository interface {
	EnsureSchema(ctx context.Context) error
	BulkInsert(ctx context.Context, records []health.Record) error
	Count(ctx context.Context) (int, error)
}
