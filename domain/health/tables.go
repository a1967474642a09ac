package health

import (
	"fmt"
	"math"

	"healthsynth/domain/core"
	"healthsynth/internal/errors"
)

// Sampling bounds shared across tables.
const (
	MinAge = 18
	MaxAge = 90

	MinBMI = 15.0
	MaxBMI = 50.0

	// Gender shifts the age-bucket BMI mean by this amount, + for Male.
	BMIGenderShift = 0.3
)

// HDL clinical thresholds. "Low HDL" is defined by the gender threshold,
// not by the category range.
const (
	HDLThresholdMale   = 40
	HDLThresholdFemale = 50
)

// HDLThreshold returns the clinical low-HDL cutoff for a gender
func HDLThreshold(g Gender) int {
	if g == Female {
		return HDLThresholdFemale
	}
	return HDLThresholdMale
}

// AgeRange is one bucket of the age-group distribution, inclusive on both
// ends.
type AgeRange struct {
	Min        int
	Max        int
	Proportion float64
}

// Contains reports whether age falls inside the bucket
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// AgeGroupTable is the ordered set of disjoint age buckets with population
// proportions.
type AgeGroupTable []AgeRange

// Validate checks that the buckets are ordered, contiguous, cover exactly
// [MinAge, MaxAge], and that the proportions sum to 1.
func (t AgeGroupTable) Validate() error {
	if len(t) == 0 {
		return errors.ConfigInvalid("age group table is empty")
	}
	if t[0].Min != MinAge {
		return errors.ConfigInvalidf("age group table must start at %d, starts at %d", MinAge, t[0].Min)
	}
	sum := 0.0
	for i, r := range t {
		if r.Min > r.Max {
			return errors.ConfigInvalidf("age range %d-%d is inverted", r.Min, r.Max)
		}
		if r.Proportion < 0 || r.Proportion > 1 {
			return errors.ConfigInvalidf("age range %d-%d has proportion %v outside [0,1]", r.Min, r.Max, r.Proportion)
		}
		if i > 0 && r.Min != t[i-1].Max+1 {
			return errors.ConfigInvalidf("age ranges %d-%d and %d-%d are not contiguous", t[i-1].Min, t[i-1].Max, r.Min, r.Max)
		}
		sum += r.Proportion
	}
	if t[len(t)-1].Max != MaxAge {
		return errors.ConfigInvalidf("age group table must end at %d, ends at %d", MaxAge, t[len(t)-1].Max)
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return errors.ConfigInvalidf("age group proportions sum to %v, want 1.0", sum)
	}
	return nil
}

// Bucket returns the range containing age
func (t AgeGroupTable) Bucket(age int) (AgeRange, bool) {
	for _, r := range t {
		if r.Contains(age) {
			return r, true
		}
	}
	return AgeRange{}, false
}

// BMIParams holds the Gaussian parameters for one age bucket, before the
// gender shift is applied.
type BMIParams struct {
	Min  int
	Max  int
	Mean float64
	Std  float64
}

// BMIParamsTable maps age buckets to Gaussian BMI parameters.
type BMIParamsTable []BMIParams

// Validate checks bucket coverage and parameter sanity
func (t BMIParamsTable) Validate() error {
	if len(t) == 0 {
		return errors.ConfigInvalid("BMI params table is empty")
	}
	if t[0].Min != MinAge || t[len(t)-1].Max != MaxAge {
		return errors.ConfigInvalidf("BMI params table must cover %d-%d", MinAge, MaxAge)
	}
	for i, p := range t {
		if p.Min > p.Max {
			return errors.ConfigInvalidf("BMI params range %d-%d is inverted", p.Min, p.Max)
		}
		if i > 0 && p.Min != t[i-1].Max+1 {
			return errors.ConfigInvalidf("BMI params ranges %d-%d and %d-%d are not contiguous", t[i-1].Min, t[i-1].Max, p.Min, p.Max)
		}
		if p.Std <= 0 {
			return errors.ConfigInvalidf("BMI params range %d-%d has non-positive std %v", p.Min, p.Max, p.Std)
		}
		if p.Mean < MinBMI || p.Mean > MaxBMI {
			return errors.ConfigInvalidf("BMI params range %d-%d has mean %v outside [%v,%v]", p.Min, p.Max, p.Mean, MinBMI, MaxBMI)
		}
	}
	return nil
}

// Lookup returns the parameters for the bucket containing age
func (t BMIParamsTable) Lookup(age int) (BMIParams, bool) {
	for _, p := range t {
		if age >= p.Min && age <= p.Max {
			return p, true
		}
	}
	return BMIParams{}, false
}

// ValueRange is an inclusive integer range for a sampled risk value.
type ValueRange struct {
	Min int
	Max int
}

// CategoryRisk holds the per-category parameters for one risk variable:
// base at-risk probability before the age boost, and the elevated/normal
// value sub-ranges.
type CategoryRisk struct {
	BaseProb float64
	Elevated ValueRange
	Normal   ValueRange
}

// CategoryRiskTable is indexed by BMICategory; the array length makes the
// table exhaustive over the closed category enumeration by construction.
type CategoryRiskTable [NumBMICategories]CategoryRisk

// Validate checks probability and range sanity for every category
func (t CategoryRiskTable) Validate(name string) error {
	for cat := Underweight; cat < NumBMICategories; cat++ {
		r := t[cat]
		if r.BaseProb < 0 || r.BaseProb > 1 {
			return errors.ConfigInvalidf("%s base probability %v for %s outside [0,1]", name, r.BaseProb, cat)
		}
		for _, vr := range []ValueRange{r.Elevated, r.Normal} {
			if vr.Min > vr.Max {
				return errors.ConfigInvalidf("%s range [%d,%d] for %s is inverted", name, vr.Min, vr.Max, cat)
			}
		}
	}
	return nil
}

// HDLRisk holds the gender/category-specific HDL parameters. The low/normal
// split inside [Min,Max] comes from the gender threshold, not from the table.
type HDLRisk struct {
	BaseProb float64
	Min      int
	Max      int
}

// HDLRiskTable is indexed by Gender then BMICategory.
type HDLRiskTable [NumGenders][NumBMICategories]HDLRisk

// Validate checks that every gender/category cell brackets its threshold
func (t HDLRiskTable) Validate() error {
	for g := Male; g < NumGenders; g++ {
		threshold := HDLThreshold(g)
		for cat := Underweight; cat < NumBMICategories; cat++ {
			r := t[g][cat]
			if r.BaseProb < 0 || r.BaseProb > 1 {
				return errors.ConfigInvalidf("HDL base probability %v for %s/%s outside [0,1]", r.BaseProb, g, cat)
			}
			if r.Min >= threshold || r.Max < threshold {
				return errors.ConfigInvalidf("HDL range [%d,%d] for %s/%s does not bracket threshold %d", r.Min, r.Max, g, cat, threshold)
			}
		}
	}
	return nil
}

// HypertensionTable holds the per-category base probability of high blood
// pressure.
type HypertensionTable [NumBMICategories]float64

// Validate checks every probability
func (t HypertensionTable) Validate() error {
	for cat := Underweight; cat < NumBMICategories; cat++ {
		if t[cat] < 0 || t[cat] > 1 {
			return errors.ConfigInvalidf("hypertension base probability %v for %s outside [0,1]", t[cat], cat)
		}
	}
	return nil
}

// Tables bundles every parameter table the sampler chain needs. Tables are
// immutable after construction; every sampler receives them explicitly.
type Tables struct {
	AgeGroups    AgeGroupTable
	BMIParams    BMIParamsTable
	FBG          CategoryRiskTable
	Triglyceride CategoryRiskTable
	HDL          HDLRiskTable
	Hypertension HypertensionTable
}

// Validate checks every table; generation must not start if this fails.
func (t *Tables) Validate() error {
	if err := t.AgeGroups.Validate(); err != nil {
		return err
	}
	if err := t.BMIParams.Validate(); err != nil {
		return err
	}
	if err := t.FBG.Validate("FBG"); err != nil {
		return err
	}
	if err := t.Triglyceride.Validate("triglyceride"); err != nil {
		return err
	}
	if err := t.HDL.Validate(); err != nil {
		return err
	}
	return t.Hypertension.Validate()
}

// Hash returns a deterministic digest of the full parameter set, used in the
// run fingerprint. Tables contain no maps, so the printed form is stable.
func (t *Tables) Hash() core.Hash {
	return core.NewHash([]byte(fmt.Sprintf("%+v", *t)))
}

// DefaultTables returns the built-in parameter set, calibrated against
// published adult population statistics. The age domain stops at 90 because
// the risk model's age factor is only defined on [18,90].
func DefaultTables() *Tables {
	return &Tables{
		AgeGroups: AgeGroupTable{
			{Min: 18, Max: 30, Proportion: 0.25},
			{Min: 31, Max: 45, Proportion: 0.30},
			{Min: 46, Max: 60, Proportion: 0.25},
			{Min: 61, Max: 75, Proportion: 0.15},
			{Min: 76, Max: 90, Proportion: 0.05},
		},
		BMIParams: BMIParamsTable{
			{Min: 18, Max: 30, Mean: 23.8, Std: 3.6},
			{Min: 31, Max: 45, Mean: 25.9, Std: 4.1},
			{Min: 46, Max: 60, Mean: 27.3, Std: 4.3},
			{Min: 61, Max: 75, Mean: 27.0, Std: 4.0},
			{Min: 76, Max: 90, Mean: 25.6, Std: 3.7},
		},
		FBG: CategoryRiskTable{
			Underweight:  {BaseProb: 0.08, Elevated: ValueRange{100, 300}, Normal: ValueRange{70, 99}},
			NormalWeight: {BaseProb: 0.10, Elevated: ValueRange{100, 300}, Normal: ValueRange{70, 99}},
			Overweight:   {BaseProb: 0.25, Elevated: ValueRange{100, 300}, Normal: ValueRange{70, 99}},
			Obese:        {BaseProb: 0.50, Elevated: ValueRange{100, 300}, Normal: ValueRange{70, 99}},
		},
		Triglyceride: CategoryRiskTable{
			Underweight:  {BaseProb: 0.05, Elevated: ValueRange{151, 200}, Normal: ValueRange{50, 150}},
			NormalWeight: {BaseProb: 0.15, Elevated: ValueRange{151, 250}, Normal: ValueRange{60, 150}},
			Overweight:   {BaseProb: 0.30, Elevated: ValueRange{151, 350}, Normal: ValueRange{70, 150}},
			Obese:        {BaseProb: 0.50, Elevated: ValueRange{151, 500}, Normal: ValueRange{80, 150}},
		},
		HDL: HDLRiskTable{
			Male: {
				Underweight:  {BaseProb: 0.15, Min: 25, Max: 90},
				NormalWeight: {BaseProb: 0.20, Min: 25, Max: 90},
				Overweight:   {BaseProb: 0.35, Min: 25, Max: 90},
				Obese:        {BaseProb: 0.50, Min: 25, Max: 90},
			},
			Female: {
				Underweight:  {BaseProb: 0.12, Min: 30, Max: 100},
				NormalWeight: {BaseProb: 0.18, Min: 30, Max: 100},
				Overweight:   {BaseProb: 0.32, Min: 30, Max: 100},
				Obese:        {BaseProb: 0.48, Min: 30, Max: 100},
			},
		},
		Hypertension: HypertensionTable{
			Underweight:  0.10,
			NormalWeight: 0.15,
			Overweight:   0.30,
			Obese:        0.50,
		},
	}
}
