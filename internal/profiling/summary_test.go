package profiling

import (
	"math"
	"testing"

	"healthsynth/domain/health"
	"healthsynth/internal/errors"
)

func TestSummarize_KnownValues(t *testing.T) {
	records := []health.Record{
		{Age: 20, Gender: health.Male, BMI: 22.0, BMICategory: health.NormalWeight, WaistCircumference: 32.0, FBG: 80, Triglyceride: 100, HDL: 55, HighBloodPressure: false},
		{Age: 40, Gender: health.Female, BMI: 26.0, BMICategory: health.Overweight, WaistCircumference: 34.0, FBG: 90, Triglyceride: 140, HDL: 60, HighBloodPressure: true},
		{Age: 60, Gender: health.Male, BMI: 30.0, BMICategory: health.Obese, WaistCircumference: 40.0, FBG: 120, Triglyceride: 180, HDL: 35, HighBloodPressure: true},
	}

	summaries, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	byName := map[string]ColumnSummary{}
	for _, s := range summaries {
		byName[s.Name] = s
	}

	age := byName["Age"]
	if age.Count != 3 || age.Mean != 40 || age.Min != 20 || age.Max != 60 || age.Median != 40 {
		t.Errorf("unexpected Age summary: %+v", age)
	}
	bmi := byName["BMI"]
	if math.Abs(bmi.Mean-26.0) > 1e-9 {
		t.Errorf("BMI mean = %v, want 26.0", bmi.Mean)
	}
	bp := byName["High_Blood_Pressure"]
	if math.Abs(bp.AtRiskPct-200.0/3) > 1e-9 {
		t.Errorf("hypertension at-risk = %v%%, want %v%%", bp.AtRiskPct, 200.0/3)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if _, err := Summarize(nil); !errors.IsValidation(err) {
		t.Errorf("expected %s, got %v", errors.CodeValidation, err)
	}
}
