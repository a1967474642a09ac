// Package generate orchestrates chunked dataset generation: it partitions
// the target row count, runs the sampler chain per chunk on a bounded worker
// pool, and merges chunk files in original order into the final artifact.
package generate

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"healthsynth/adapters/rng"
	"healthsynth/domain/health"
	"healthsynth/domain/run"
	"healthsynth/domain/sampler"
	"healthsynth/internal"
	"healthsynth/internal/dataset"
	"healthsynth/internal/errors"
)

// Options configures a generation run.
type Options struct {
	Rows      int
	ChunkSize int
	Workers   int
	Seed      int64
	Output    string
	Tables    *health.Tables
}

// Runner executes generation runs.
type Runner struct {
	log *internal.Logger
}

// NewRunner creates a runner
func NewRunner(log *internal.Logger) *Runner {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &Runner{log: log}
}

// planChunks splits rows into chunk sizes; the last chunk may be short.
func planChunks(rows, chunkSize int) []int {
	var sizes []int
	for remaining := rows; remaining > 0; remaining -= chunkSize {
		n := chunkSize
		if remaining < chunkSize {
			n = remaining
		}
		sizes = append(sizes, n)
	}
	return sizes
}

// Run generates opts.Rows records into opts.Output. On any error the run is
// aborted: intermediate chunks are discarded and no final artifact is left
// behind.
func (r *Runner) Run(ctx context.Context, opts Options) (*run.Manifest, error) {
	if opts.Rows <= 0 {
		return nil, errors.ConfigInvalidf("row count must be positive, got %d", opts.Rows)
	}
	if opts.ChunkSize <= 0 {
		return nil, errors.ConfigInvalidf("chunk size must be positive, got %d", opts.ChunkSize)
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	tables := opts.Tables
	if tables == nil {
		tables = health.DefaultTables()
	}
	// Table validation is fatal before any generation starts.
	if err := tables.Validate(); err != nil {
		return nil, err
	}

	sizes := planChunks(opts.Rows, opts.ChunkSize)
	manifest := run.NewManifest(opts.Seed, opts.Rows, opts.ChunkSize, len(sizes), tables.Hash())
	r.log.Info("run %s: generating %d rows in %d chunks (seed=%d, workers=%d)",
		manifest.RunID, opts.Rows, len(sizes), opts.Seed, opts.Workers)

	tmpDir, err := os.MkdirTemp(filepath.Dir(opts.Output), ".healthsynth-*")
	if err != nil {
		return nil, errors.IO("create chunk directory", err)
	}
	defer os.RemoveAll(tmpDir)

	writer := dataset.NewChunkWriter(tmpDir)
	streams := rng.NewSeeded(opts.Seed)

	var totalClamps int64
	clampCh := make(chan int64, len(sizes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, n := range sizes {
		g.Go(func() error {
			chain, err := sampler.NewChain(tables, n)
			if err != nil {
				return err
			}
			stream := streams.ChunkStream(i)

			records := make([]health.Record, 0, n)
			for row := 0; row < n; row++ {
				rec, err := chain.Generate(stream)
				if err != nil {
					return errors.Wrapf(err, "chunk %d row %d", i, row)
				}
				records = append(records, rec)
			}
			if _, err := writer.WriteChunk(gctx, i, records); err != nil {
				return err
			}
			clampCh <- chain.ClampCount()
			r.log.Debug("chunk %d: wrote %d rows", i, n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(clampCh)
	for c := range clampCh {
		totalClamps += c
	}

	chunkPaths := make([]string, len(sizes))
	for i := range sizes {
		chunkPaths[i] = writer.ChunkPath(i)
	}

	rows, err := dataset.NewMerger().Merge(ctx, chunkPaths, opts.Output)
	if err != nil {
		return nil, err
	}
	if rows != opts.Rows {
		return nil, errors.Validationf("merged %d rows, expected %d", rows, opts.Rows)
	}

	manifest.ClampCount = totalClamps
	manifest.Artifact = opts.Output
	if totalClamps > 0 {
		r.log.Warn("run %s: clamped %d risk probabilities to [0,1]; check table calibration", manifest.RunID, totalClamps)
	}
	if err := manifest.Write(opts.Output + ".manifest.json"); err != nil {
		return nil, errors.IO("write run manifest", err)
	}
	r.log.Info("run %s: wrote %d rows to %s", manifest.RunID, rows, opts.Output)
	return manifest, nil
}
