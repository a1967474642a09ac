package sampler

import (
	"math/rand"
	"sync/atomic"

	"healthsynth/domain/health"
	"healthsynth/internal/errors"
)

// ageBoost is the maximum additive probability increase from age: a record
// at the top of the age domain is 10 points more likely to be at risk than
// the category base rate.
const ageBoost = 0.1

// ClampCounter counts probability clamps across a run. The source model adds
// the age boost without clamping; here the clamp is applied but every
// occurrence is counted so calibration drift stays visible instead of being
// silently absorbed.
type ClampCounter struct {
	n atomic.Int64
}

func (c *ClampCounter) inc() {
	if c != nil {
		c.n.Add(1)
	}
}

// Count returns the number of clamps recorded so far
func (c *ClampCounter) Count() int64 {
	if c == nil {
		return 0
	}
	return c.n.Load()
}

// adjustedProbability applies the age boost to a category base rate and
// clamps the result to [0,1].
func adjustedProbability(base float64, age int, clamps *ClampCounter) (float64, error) {
	f, err := AgeFactor(age)
	if err != nil {
		return 0, err
	}
	p := base + ageBoost*f
	if p > 1 {
		p = 1
		clamps.inc()
	} else if p < 0 {
		p = 0
		clamps.inc()
	}
	return p, nil
}

func uniformInt(rng *rand.Rand, r health.ValueRange) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// categoryRisk is the shared shape of the FBG and triglyceride samplers: a
// Bernoulli trial on the age-adjusted category rate, then a uniform draw
// from the elevated or normal sub-range.
type categoryRisk struct {
	table  health.CategoryRiskTable
	clamps *ClampCounter
}

func (s categoryRisk) sample(rng *rand.Rand, age int, cat health.BMICategory) (int, error) {
	if !cat.Valid() {
		return 0, errors.Lookupf("BMI category %d outside risk table domain", int(cat))
	}
	params := s.table[cat]

	p, err := adjustedProbability(params.BaseProb, age, s.clamps)
	if err != nil {
		return 0, err
	}
	if rng.Float64() < p {
		return uniformInt(rng, params.Elevated), nil
	}
	return uniformInt(rng, params.Normal), nil
}

// FBGSampler draws fasting blood glucose in mg/dL.
type FBGSampler struct {
	risk categoryRisk
}

// NewFBGSampler wires the FBG table to the shared risk shape.
func NewFBGSampler(table health.CategoryRiskTable, clamps *ClampCounter) *FBGSampler {
	return &FBGSampler{risk: categoryRisk{table: table, clamps: clamps}}
}

// Sample draws one FBG value
func (s *FBGSampler) Sample(rng *rand.Rand, age int, cat health.BMICategory) (int, error) {
	return s.risk.sample(rng, age, cat)
}

// TriglycerideSampler draws triglycerides in mg/dL.
type TriglycerideSampler struct {
	risk categoryRisk
}

// NewTriglycerideSampler wires the triglyceride table to the shared risk shape.
func NewTriglycerideSampler(table health.CategoryRiskTable, clamps *ClampCounter) *TriglycerideSampler {
	return &TriglycerideSampler{risk: categoryRisk{table: table, clamps: clamps}}
}

// Sample draws one triglyceride value
func (s *TriglycerideSampler) Sample(rng *rand.Rand, age int, cat health.BMICategory) (int, error) {
	return s.risk.sample(rng, age, cat)
}

// HDLSampler draws HDL cholesterol in mg/dL. The at-risk branch samples
// below the gender threshold, the healthy branch at or above it.
type HDLSampler struct {
	table  health.HDLRiskTable
	clamps *ClampCounter
}

// NewHDLSampler wires the gender/category HDL table.
func NewHDLSampler(table health.HDLRiskTable, clamps *ClampCounter) *HDLSampler {
	return &HDLSampler{table: table, clamps: clamps}
}

// Sample draws one HDL value
func (s *HDLSampler) Sample(rng *rand.Rand, age int, gender health.Gender, cat health.BMICategory) (int, error) {
	if !gender.Valid() {
		return 0, errors.Lookupf("gender %d outside HDL table domain", int(gender))
	}
	if !cat.Valid() {
		return 0, errors.Lookupf("BMI category %d outside HDL table domain", int(cat))
	}
	params := s.table[gender][cat]
	threshold := health.HDLThreshold(gender)

	p, err := adjustedProbability(params.BaseProb, age, s.clamps)
	if err != nil {
		return 0, err
	}
	if rng.Float64() < p {
		// Low HDL: [min, threshold)
		return uniformInt(rng, health.ValueRange{Min: params.Min, Max: threshold - 1}), nil
	}
	return uniformInt(rng, health.ValueRange{Min: threshold, Max: params.Max}), nil
}

// HypertensionSampler draws the binary high-blood-pressure outcome.
type HypertensionSampler struct {
	table  health.HypertensionTable
	clamps *ClampCounter
}

// NewHypertensionSampler wires the hypertension probability table.
func NewHypertensionSampler(table health.HypertensionTable, clamps *ClampCounter) *HypertensionSampler {
	return &HypertensionSampler{table: table, clamps: clamps}
}

// Sample draws one hypertension outcome
func (s *HypertensionSampler) Sample(rng *rand.Rand, age int, cat health.BMICategory) (bool, error) {
	if !cat.Valid() {
		return false, errors.Lookupf("BMI category %d outside hypertension table domain", int(cat))
	}
	p, err := adjustedProbability(s.table[cat], age, s.clamps)
	if err != nil {
		return false, err
	}
	return rng.Float64() < p, nil
}
