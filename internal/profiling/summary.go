// Package profiling computes per-column summary statistics for generated
// datasets, used by the summarize command to eyeball calibration.
package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"healthsynth/domain/health"
	"healthsynth/internal/errors"
)

// ColumnSummary holds the summary statistics for one numeric column.
type ColumnSummary struct {
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"std_dev"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Median    float64 `json:"median"`
	Q25       float64 `json:"q25"`
	Q75       float64 `json:"q75"`
	NormalP   float64 `json:"normal_p"`
	AtRiskPct float64 `json:"at_risk_pct,omitempty"`
}

// Summarize computes summaries for every numeric column of the dataset plus
// the at-risk share of the binary hypertension column.
func Summarize(records []health.Record) ([]ColumnSummary, error) {
	if len(records) == 0 {
		return nil, errors.Validation("no records to summarize")
	}

	cols := map[string][]float64{
		"Age":                 make([]float64, 0, len(records)),
		"BMI":                 make([]float64, 0, len(records)),
		"Waist_Circumference": make([]float64, 0, len(records)),
		"FBG":                 make([]float64, 0, len(records)),
		"Triglyceride":        make([]float64, 0, len(records)),
		"HDL":                 make([]float64, 0, len(records)),
	}
	bpAtRisk := 0
	for _, r := range records {
		cols["Age"] = append(cols["Age"], float64(r.Age))
		cols["BMI"] = append(cols["BMI"], r.BMI)
		cols["Waist_Circumference"] = append(cols["Waist_Circumference"], r.WaistCircumference)
		cols["FBG"] = append(cols["FBG"], float64(r.FBG))
		cols["Triglyceride"] = append(cols["Triglyceride"], float64(r.Triglyceride))
		cols["HDL"] = append(cols["HDL"], float64(r.HDL))
		if r.HighBloodPressure {
			bpAtRisk++
		}
	}

	order := []string{"Age", "BMI", "Waist_Circumference", "FBG", "Triglyceride", "HDL"}
	summaries := make([]ColumnSummary, 0, len(order)+1)
	for _, name := range order {
		s, err := summarizeColumn(name, cols[name])
		if err != nil {
			return nil, errors.Wrapf(err, "summarize column %s", name)
		}
		summaries = append(summaries, s)
	}
	summaries = append(summaries, ColumnSummary{
		Name:      "High_Blood_Pressure",
		Count:     len(records),
		AtRiskPct: 100 * float64(bpAtRisk) / float64(len(records)),
	})
	return summaries, nil
}

func summarizeColumn(name string, data []float64) (ColumnSummary, error) {
	s := ColumnSummary{Name: name, Count: len(data)}

	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return s, err
	}
	if s.Min, err = stats.Min(data); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, err
	}
	if s.Q25, err = stats.Percentile(data, 25); err != nil {
		return s, err
	}
	if s.Q75, err = stats.Percentile(data, 75); err != nil {
		return s, err
	}
	s.NormalP = jarqueBeraP(data, s.Mean, s.StdDev)
	return s, nil
}

// jarqueBeraP returns the Jarque-Bera normality test p-value. The JB
// statistic is asymptotically chi-squared with 2 degrees of freedom.
func jarqueBeraP(data []float64, mean, std float64) float64 {
	n := float64(len(data))
	if n < 8 || std == 0 {
		return math.NaN()
	}
	var m3, m4 float64
	for _, v := range data {
		d := v - mean
		m3 += d * d * d
		m4 += d * d * d * d
	}
	m3 /= n
	m4 /= n
	skew := m3 / (std * std * std)
	kurt := m4/(std*std*std*std) - 3
	jb := n / 6 * (skew*skew + kurt*kurt/4)

	chi2 := distuv.ChiSquared{K: 2}
	return 1 - chi2.CDF(jb)
}
