// Package excel exports generated datasets as spreadsheets.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"healthsynth/domain/health"
	"healthsynth/internal/errors"
)

const sheetName = "Sheet1"

// Writer exports records to an xlsx workbook.
type Writer struct{}

// NewWriter creates an Excel writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write exports the records, with the standard header row, to path.
func (w *Writer) Write(records []health.Record, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return errors.IO("create stream writer", err)
	}

	header := make([]interface{}, len(health.CSVHeader))
	for i, h := range health.CSVHeader {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return errors.IO("write xlsx header", err)
	}

	for i, rec := range records {
		bp := 0
		if rec.HighBloodPressure {
			bp = 1
		}
		row := []interface{}{
			rec.Age,
			rec.Gender.String(),
			rec.BMI,
			rec.WaistCircumference,
			rec.BMICategory.String(),
			rec.FBG,
			rec.Triglyceride,
			rec.HDL,
			bp,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.IO("compute cell coordinates", err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return errors.IO(fmt.Sprintf("write xlsx row %d", i+2), err)
		}
	}

	if err := sw.Flush(); err != nil {
		return errors.IO("flush xlsx stream", err)
	}
	if err := f.SaveAs(path); err != nil {
		return errors.IO(fmt.Sprintf("save workbook %s", path), err)
	}
	return nil
}
