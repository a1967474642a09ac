package dataset

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"healthsynth/domain/health"
	"healthsynth/internal/errors"
)

func testRecord(age int) health.Record {
	return health.Record{
		Age:                age,
		Gender:             health.Female,
		BMI:                24.3,
		BMICategory:        health.NormalWeight,
		WaistCircumference: 31.5,
		FBG:                88,
		Triglyceride:       120,
		HDL:                62,
		HighBloodPressure:  false,
	}
}

func TestMerger_ConcatenatesChunksInOrder(t *testing.T) {
	dir := t.TempDir()
	writer := NewChunkWriter(dir)
	ctx := context.Background()

	// Chunks of sizes 3, 4, 5 with ages encoding global row order.
	sizes := []int{3, 4, 5}
	age := 18
	var paths []string
	for i, n := range sizes {
		records := make([]health.Record, 0, n)
		for j := 0; j < n; j++ {
			records = append(records, testRecord(age))
			age++
		}
		path, err := writer.WriteChunk(ctx, i, records)
		if err != nil {
			t.Fatalf("WriteChunk(%d) failed: %v", i, err)
		}
		paths = append(paths, path)
	}

	dest := filepath.Join(dir, "merged.csv")
	rows, err := NewMerger().Merge(ctx, paths, dest)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if rows != 12 {
		t.Errorf("merged %d rows, want 12", rows)
	}

	f, err := os.Open(dest)
	if err != nil {
		t.Fatalf("open merged artifact: %v", err)
	}
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read merged artifact: %v", err)
	}
	if len(all) != 13 {
		t.Fatalf("artifact has %d lines, want 13 (header + 12 rows)", len(all))
	}
	if all[0][0] != "Age" {
		t.Errorf("first line is not the header: %v", all[0])
	}
	// Exactly one header and preserved chunk/row order.
	for i, row := range all[1:] {
		if row[0] == "Age" {
			t.Fatalf("duplicate header at row %d", i+1)
		}
		rec, err := health.ParseCSVRow(row)
		if err != nil {
			t.Fatalf("row %d unparsable: %v", i+1, err)
		}
		if rec.Age != 18+i {
			t.Errorf("row %d has age %d, want %d (order not preserved)", i+1, rec.Age, 18+i)
		}
	}
}

func TestMerger_NoChunks(t *testing.T) {
	_, err := NewMerger().Merge(context.Background(), nil, filepath.Join(t.TempDir(), "out.csv"))
	if !errors.IsConfigInvalid(err) {
		t.Errorf("expected %s, got %v", errors.CodeConfigInvalid, err)
	}
}

func TestMerger_FailureLeavesNoArtifact(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "merged.csv")

	_, err := NewMerger().Merge(context.Background(), []string{filepath.Join(dir, "missing.csv")}, dest)
	if err == nil {
		t.Fatal("expected merge failure for missing chunk")
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("failed merge left a final artifact behind")
	}
	if _, statErr := os.Stat(dest + ".tmp"); !os.IsNotExist(statErr) {
		t.Error("failed merge left a temp file behind")
	}
}

func TestReadRecords_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	writer := NewChunkWriter(dir)

	want := []health.Record{testRecord(30), testRecord(45)}
	path, err := writer.WriteChunk(context.Background(), 0, want)
	if err != nil {
		t.Fatalf("WriteChunk failed: %v", err)
	}

	got, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("read %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d mismatch: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
