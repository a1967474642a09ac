package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"healthsynth/domain/health"
	"healthsynth/internal/errors"
)

// ReadRecords parses a generated CSV artifact back into records.
func ReadRecords(path string) ([]health.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IO(fmt.Sprintf("open dataset %s", path), err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		return nil, errors.IO(fmt.Sprintf("read header of %s", path), err)
	}
	if len(header) != len(health.CSVHeader) {
		return nil, errors.Validationf("dataset %s has %d columns, want %d", path, len(header), len(health.CSVHeader))
	}

	var records []health.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.IO(fmt.Sprintf("read row of %s", path), err)
		}
		rec, err := health.ParseCSVRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d of %s", len(records)+2, path)
		}
		records = append(records, rec)
	}
	return records, nil
}
