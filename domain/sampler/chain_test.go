package sampler

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"healthsynth/domain/health"
)

func TestChain_RecordInvariants(t *testing.T) {
	const n = 20000
	chain, err := NewChain(health.DefaultTables(), n)
	if err != nil {
		t.Fatalf("NewChain failed: %v", err)
	}

	rng := rand.New(rand.NewSource(31))
	for i := 0; i < n; i++ {
		rec, err := chain.Generate(rng)
		if err != nil {
			t.Fatalf("record %d failed: %v", i, err)
		}

		if rec.Age < health.MinAge || rec.Age > health.MaxAge {
			t.Fatalf("age %d outside domain", rec.Age)
		}
		if rec.BMI < health.MinBMI || rec.BMI > health.MaxBMI {
			t.Fatalf("BMI %v outside bounds", rec.BMI)
		}
		if got := health.CategorizeBMI(rec.BMI); got != rec.BMICategory {
			t.Fatalf("category %s does not match BMI %v (want %s)", rec.BMICategory, rec.BMI, got)
		}
		if rec.Gender == health.Male && (rec.WaistCircumference < 30 || rec.WaistCircumference > 65) {
			t.Fatalf("male waist %v outside [30,65]", rec.WaistCircumference)
		}
		if rec.Gender == health.Female && (rec.WaistCircumference < 26 || rec.WaistCircumference > 60) {
			t.Fatalf("female waist %v outside [26,60]", rec.WaistCircumference)
		}
		if rec.FBG < 70 || rec.FBG > 300 {
			t.Fatalf("FBG %d outside [70,300]", rec.FBG)
		}
		if rec.Triglyceride < 50 || rec.Triglyceride > 500 {
			t.Fatalf("triglyceride %d outside [50,500]", rec.Triglyceride)
		}
		lo, hi := 25, 90
		if rec.Gender == health.Female {
			lo, hi = 30, 100
		}
		if rec.HDL < lo || rec.HDL > hi {
			t.Fatalf("HDL %d outside [%d,%d] for %s", rec.HDL, lo, hi, rec.Gender)
		}
	}
}

func TestChain_Deterministic(t *testing.T) {
	tables := health.DefaultTables()
	c1, err := NewChain(tables, 500)
	if err != nil {
		t.Fatalf("NewChain failed: %v", err)
	}
	c2, err := NewChain(tables, 500)
	if err != nil {
		t.Fatalf("NewChain failed: %v", err)
	}

	r1 := rand.New(rand.NewSource(77))
	r2 := rand.New(rand.NewSource(77))
	for i := 0; i < 500; i++ {
		a, err := c1.Generate(r1)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		b, err := c2.Generate(r2)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if a != b {
			t.Fatalf("record %d diverged:\n%+v\n%+v", i, a, b)
		}
	}
}

// lowHDLRate samples HDL n times for a fixed stratum and returns the count
// below the gender threshold.
func lowHDLRate(t *testing.T, age int, gender health.Gender, cat health.BMICategory, n int, seed int64) int {
	t.Helper()
	s := NewHDLSampler(health.DefaultTables().HDL, &ClampCounter{})
	rng := rand.New(rand.NewSource(seed))
	threshold := health.HDLThreshold(gender)

	low := 0
	for i := 0; i < n; i++ {
		v, err := s.Sample(rng, age, gender, cat)
		if err != nil {
			t.Fatalf("HDL sample failed: %v", err)
		}
		if v < threshold {
			low++
		}
	}
	return low
}

// chiSquareP computes the two-proportion chi-square p-value for a 2x2
// contingency of at-risk counts.
func chiSquareP(lowA, nA, lowB, nB int) float64 {
	obs := [2][2]float64{
		{float64(lowA), float64(nA - lowA)},
		{float64(lowB), float64(nB - lowB)},
	}
	total := float64(nA + nB)
	rowSums := [2]float64{float64(nA), float64(nB)}
	colSums := [2]float64{obs[0][0] + obs[1][0], obs[0][1] + obs[1][1]}

	chi := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			expected := rowSums[i] * colSums[j] / total
			if expected > 0 {
				d := obs[i][j] - expected
				chi += d * d / expected
			}
		}
	}
	return 1 - distuv.ChiSquared{K: 1}.CDF(chi)
}

func TestHDL_LowRateIncreasesWithCategory(t *testing.T) {
	const n = 10000
	rates := make([]int, health.NumBMICategories)
	for cat := health.Underweight; cat < health.NumBMICategories; cat++ {
		rates[cat] = lowHDLRate(t, 50, health.Male, cat, n, 41+int64(cat))
	}

	for cat := health.NormalWeight; cat < health.NumBMICategories; cat++ {
		if rates[cat] <= rates[cat-1] {
			t.Errorf("low-HDL count for %s (%d) not above %s (%d)",
				cat, rates[cat], cat-1, rates[cat-1])
		}
	}

	// Obese vs underweight must be a decisive difference, not noise.
	if p := chiSquareP(rates[health.Obese], n, rates[health.Underweight], n); p > 0.001 {
		t.Errorf("obese vs underweight low-HDL difference not significant: p=%v", p)
	}
}

func TestHDL_LowRateIncreasesWithAge(t *testing.T) {
	const n = 10000
	young := lowHDLRate(t, 25, health.Female, health.Overweight, n, 101)
	old := lowHDLRate(t, 85, health.Female, health.Overweight, n, 102)

	if old <= young {
		t.Errorf("low-HDL count at 85 (%d) not above 25 (%d)", old, young)
	}
	if p := chiSquareP(old, n, young, n); p > 0.001 {
		t.Errorf("age effect on low HDL not significant: p=%v", p)
	}
}

func TestFBG_ElevatedRateIncreasesWithCategory(t *testing.T) {
	const n = 10000
	s := NewFBGSampler(health.DefaultTables().FBG, &ClampCounter{})

	elevated := make([]int, health.NumBMICategories)
	for cat := health.Underweight; cat < health.NumBMICategories; cat++ {
		rng := rand.New(rand.NewSource(200 + int64(cat)))
		for i := 0; i < n; i++ {
			v, err := s.Sample(rng, 50, cat)
			if err != nil {
				t.Fatalf("FBG sample failed: %v", err)
			}
			if v >= 100 {
				elevated[cat]++
			}
		}
	}

	for cat := health.NormalWeight; cat < health.NumBMICategories; cat++ {
		if elevated[cat] <= elevated[cat-1] {
			t.Errorf("elevated FBG count for %s (%d) not above %s (%d)",
				cat, elevated[cat], cat-1, elevated[cat-1])
		}
	}

	// Obese at age 50 should track the adjusted probability closely.
	wantP := 0.50 + 0.1*(50.0-18.0)/72.0
	got := float64(elevated[health.Obese]) / n
	if math.Abs(got-wantP) > 0.02 {
		t.Errorf("obese elevated rate = %v, want ~%v", got, wantP)
	}
}
