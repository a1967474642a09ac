package run

import (
	"path/filepath"
	"testing"

	"healthsynth/domain/core"
)

func TestManifest_RoundTrip(t *testing.T) {
	tableHash := core.NewHash([]byte("tables"))
	m := NewManifest(42, 10000, 1000, 10, tableHash)
	m.Artifact = "records.csv"
	m.ClampCount = 3

	path := filepath.Join(t.TempDir(), "run.manifest.json")
	if err := m.Write(path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.RunID != m.RunID || got.Seed != 42 || got.Rows != 10000 || got.Chunks != 10 {
		t.Errorf("loaded manifest mismatch: %+v", got)
	}
	if got.ClampCount != 3 || got.Artifact != "records.csv" {
		t.Errorf("loaded manifest mismatch: %+v", got)
	}
	if !core.Hash(got.Fingerprint).Equals(core.Hash(m.Fingerprint)) {
		t.Error("fingerprint did not survive the round trip")
	}
}

func TestManifest_FingerprintDeterministic(t *testing.T) {
	tableHash := core.NewHash([]byte("tables"))
	a := NewManifest(1, 100, 10, 10, tableHash)
	b := NewManifest(1, 100, 10, 10, tableHash)
	if a.Fingerprint != b.Fingerprint {
		t.Error("same inputs produced different fingerprints")
	}

	c := NewManifest(2, 100, 10, 10, tableHash)
	if c.Fingerprint == a.Fingerprint {
		t.Error("different seeds produced the same fingerprint")
	}
}
