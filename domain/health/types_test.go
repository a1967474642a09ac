package health

import (
	"reflect"
	"testing"
)

func sampleRecord() Record {
	return Record{
		Age:                60,
		Gender:             Male,
		BMI:                32.0,
		BMICategory:        Obese,
		WaistCircumference: 48.7,
		FBG:                142,
		Triglyceride:       210,
		HDL:                38,
		HighBloodPressure:  true,
	}
}

func TestRecord_CSVRow_Formatting(t *testing.T) {
	row := sampleRecord().CSVRow()
	want := []string{"60", "Male", "32.0", "48.7", "Obese", "142", "210", "38", "1"}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("CSVRow() = %v, want %v", row, want)
	}
}

func TestRecord_CSVRoundTrip(t *testing.T) {
	rec := sampleRecord()
	parsed, err := ParseCSVRow(rec.CSVRow())
	if err != nil {
		t.Fatalf("ParseCSVRow failed: %v", err)
	}
	if parsed != rec {
		t.Errorf("round trip mismatch: got %+v, want %+v", parsed, rec)
	}
}

func TestParseCSVRow_Invalid(t *testing.T) {
	cases := [][]string{
		{"60", "Male"}, // wrong width
		{"x", "Male", "32.0", "48.7", "Obese", "142", "210", "38", "1"},
		{"60", "Other", "32.0", "48.7", "Obese", "142", "210", "38", "1"},
		{"60", "Male", "32.0", "48.7", "Huge", "142", "210", "38", "1"},
		{"60", "Male", "32.0", "48.7", "Obese", "142", "210", "38", "yes"},
	}
	for _, row := range cases {
		if _, err := ParseCSVRow(row); err == nil {
			t.Errorf("ParseCSVRow(%v) succeeded, want error", row)
		}
	}
}
