package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"healthsynth/domain/health"
	"healthsynth/internal/errors"
	"healthsynth/ports"
)

// ChunkWriter persists chunks as self-contained CSV files, each with its own
// header row, under a per-run directory. Chunk files are intermediate: they
// are never the final artifact.
type ChunkWriter struct {
	dir string
}

// NewChunkWriter creates a writer rooted at dir
func NewChunkWriter(dir string) *ChunkWriter {
	return &ChunkWriter{dir: dir}
}

var _ ports.ChunkSink = (*ChunkWriter)(nil)

// ChunkPath returns the file path for a chunk index
func (w *ChunkWriter) ChunkPath(chunkIndex int) string {
	return filepath.Join(w.dir, fmt.Sprintf("chunk_%05d.csv", chunkIndex))
}

// WriteChunk writes one chunk file and returns its path.
func (w *ChunkWriter) WriteChunk(ctx context.Context, chunkIndex int, records []health.Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := w.ChunkPath(chunkIndex)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.IO(fmt.Sprintf("create chunk file %s", path), err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(health.CSVHeader); err != nil {
		return "", errors.IO("write chunk header", err)
	}
	for _, rec := range records {
		if err := cw.Write(rec.CSVRow()); err != nil {
			return "", errors.IO("write chunk row", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", errors.IO("flush chunk file", err)
	}
	if err := f.Close(); err != nil {
		return "", errors.IO("close chunk file", err)
	}
	return path, nil
}
