// Package dataset handles the chunked CSV plumbing around the sampler chain.
//
// Merging always streams: chunk files are copied row-by-row into the final
// artifact, so memory stays constant regardless of dataset size.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"healthsynth/domain/health"
	"healthsynth/internal/errors"
	"healthsynth/ports"
)

// Merger concatenates ordered chunk files into one artifact with a single
// header. The destination is written through a temp file and renamed on
// success so a failed merge never leaves a partial final artifact.
type Merger struct{}

// NewMerger creates a streaming merger
func NewMerger() *Merger {
	return &Merger{}
}

var _ ports.ChunkMerger = (*Merger)(nil)

// Merge streams the chunk files, in order, into dest. Returns merged row
// count excluding the header.
func (m *Merger) Merge(ctx context.Context, chunkPaths []string, dest string) (int, error) {
	if len(chunkPaths) == 0 {
		return 0, errors.ConfigInvalid("no chunks to merge")
	}

	tmp := dest + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return 0, errors.IO(fmt.Sprintf("create merge output %s", tmp), err)
	}
	defer func() {
		out.Close()
		os.Remove(tmp)
	}()

	cw := csv.NewWriter(out)
	if err := cw.Write(health.CSVHeader); err != nil {
		return 0, errors.IO("write merged header", err)
	}

	rows := 0
	for _, path := range chunkPaths {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		n, err := m.appendChunk(cw, path)
		if err != nil {
			return 0, err
		}
		rows += n
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, errors.IO("flush merged output", err)
	}
	if err := out.Close(); err != nil {
		return 0, errors.IO("close merged output", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return 0, errors.IO(fmt.Sprintf("finalize merged artifact %s", dest), err)
	}
	return rows, nil
}

// appendChunk streams one chunk file into the writer, validating and
// dropping its header row.
func (m *Merger) appendChunk(cw *csv.Writer, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.IO(fmt.Sprintf("open chunk %s", path), err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		return 0, errors.IO(fmt.Sprintf("read chunk header %s", path), err)
	}
	if len(header) != len(health.CSVHeader) {
		return 0, errors.Validationf("chunk %s has %d columns, want %d", path, len(header), len(health.CSVHeader))
	}

	rows := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, errors.IO(fmt.Sprintf("read chunk row in %s", path), err)
		}
		if err := cw.Write(row); err != nil {
			return 0, errors.IO("write merged row", err)
		}
		rows++
	}
	return rows, nil
}
