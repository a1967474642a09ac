package run

import (
	"encoding/json"
	"os"

	"healthsynth/domain/core"
)

// Manifest is the truth source for a generation run: with the same seed,
// chunking and parameter tables, a replay must reproduce the artifact
// byte-for-byte. It is written next to the final artifact.
type Manifest struct {
	RunID       core.RunID          `json:"run_id"`
	Seed        int64               `json:"seed"`
	Rows        int                 `json:"rows"`
	ChunkSize   int                 `json:"chunk_size"`
	Chunks      int                 `json:"chunks"`
	TableHash   core.Hash           `json:"table_hash"`
	Fingerprint core.RunFingerprint `json:"fingerprint"`
	ClampCount  int64               `json:"clamp_count"`
	Artifact    string              `json:"artifact"`
	CreatedAt   core.Timestamp      `json:"created_at"`
}

// NewManifest builds a manifest for a planned run.
func NewManifest(seed int64, rows, chunkSize, chunks int, tableHash core.Hash) *Manifest {
	return &Manifest{
		RunID:       core.NewRunID(),
		Seed:        seed,
		Rows:        rows,
		ChunkSize:   chunkSize,
		Chunks:      chunks,
		TableHash:   tableHash,
		Fingerprint: core.NewRunFingerprint(seed, rows, chunkSize, tableHash),
		CreatedAt:   core.Now(),
	}
}

// Write persists the manifest as indented JSON.
func (m *Manifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Load reads a manifest back from disk.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
