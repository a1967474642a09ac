package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestNewRunID tests run ID generation
func TestNewRunID(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	if a.String() == "" {
		t.Error("Expected non-empty run ID")
	}
	if a == b {
		t.Errorf("Expected distinct run IDs, got %s twice", a)
	}
}

// TestNewHash tests hash determinism and distinctness
func TestNewHash(t *testing.T) {
	h1 := NewHash([]byte("records"))
	h2 := NewHash([]byte("records"))
	h3 := NewHash([]byte("other"))

	if h1.IsEmpty() {
		t.Error("Expected non-empty hash")
	}
	if !h1.Equals(h2) {
		t.Errorf("Expected equal hashes for equal input, got %s vs %s", h1, h2)
	}
	if h1.Equals(h3) {
		t.Error("Expected different hashes for different input")
	}
	if len(h1.String()) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(h1.String()))
	}
}

// TestNewRunFingerprint tests that fingerprints track every run input
func TestNewRunFingerprint(t *testing.T) {
	tables := NewHash([]byte("tables"))
	base := NewRunFingerprint(1234, 100000, 5000, tables)

	if base != NewRunFingerprint(1234, 100000, 5000, tables) {
		t.Error("Expected identical fingerprints for identical inputs")
	}

	variants := []RunFingerprint{
		NewRunFingerprint(1235, 100000, 5000, tables),
		NewRunFingerprint(1234, 100001, 5000, tables),
		NewRunFingerprint(1234, 100000, 5001, tables),
		NewRunFingerprint(1234, 100000, 5000, NewHash([]byte("altered"))),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("Variant %d: expected fingerprint to change when input %d changes", i, i)
		}
	}
}
