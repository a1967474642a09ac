package sampler

import (
	"healthsynth/domain/health"
	"healthsynth/internal/errors"
)

// AgeFactor normalizes age into [0,1] over the modeled adult domain
// [18,90]. Ages outside the domain are rejected rather than extrapolated,
// since an out-of-range factor would push risk probabilities outside [0,1]
// by more than the clamp is meant to absorb.
func AgeFactor(age int) (float64, error) {
	if age < health.MinAge || age > health.MaxAge {
		return 0, errors.Validationf("age %d outside risk model domain [%d,%d]", age, health.MinAge, health.MaxAge)
	}
	return float64(age-health.MinAge) / float64(health.MaxAge-health.MinAge), nil
}

// waistAgeFactor scales the waist base value for ages past 30. Unlike
// AgeFactor it is defined for any non-negative age.
func waistAgeFactor(age int) float64 {
	f := float64(age-30) / 100.0
	if f < 0 {
		return 0
	}
	return f
}
