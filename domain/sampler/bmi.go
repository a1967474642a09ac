package sampler

import (
	"math"
	"math/rand"

	"healthsynth/domain/health"
	"healthsynth/internal/errors"
)

// BMISampler draws BMI from a per-age-bucket Gaussian with a gender-shifted
// mean, clipped to the legal BMI bounds.
type BMISampler struct {
	params health.BMIParamsTable
}

// NewBMISampler validates the parameter table once up front.
func NewBMISampler(params health.BMIParamsTable) (*BMISampler, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &BMISampler{params: params}, nil
}

// Sample draws one BMI value for the given age and gender, rounded to one
// decimal.
func (s *BMISampler) Sample(rng *rand.Rand, age int, gender health.Gender) (float64, error) {
	p, ok := s.params.Lookup(age)
	if !ok {
		return 0, errors.Lookupf("age %d matches no BMI parameter bucket", age)
	}

	mean := p.Mean + health.BMIGenderShift
	if gender == health.Female {
		mean = p.Mean - health.BMIGenderShift
	}

	v := mean + p.Std*rng.NormFloat64()
	return round1(clip(v, health.MinBMI, health.MaxBMI)), nil
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
