package sampler

import (
	"math/rand"

	"healthsynth/domain/health"
	"healthsynth/internal/errors"
)

// Waist circumference model coefficients and bounds, per gender.
const (
	waistSlopeMale     = 0.8
	waistInterceptMale = 12.0
	waistMinMale       = 30.0
	waistMaxMale       = 65.0

	waistSlopeFemale     = 0.7
	waistInterceptFemale = 10.0
	waistMinFemale       = 26.0
	waistMaxFemale       = 60.0

	waistNoiseHalfWidth = 3.0
)

// SampleWaist computes waist circumference as a linear function of BMI and
// gender, boosted by age past 30, plus bounded uniform noise, clipped to the
// gender bounds and rounded to one decimal.
func SampleWaist(rng *rand.Rand, bmi float64, age int, gender health.Gender) (float64, error) {
	if bmi < 0 {
		return 0, errors.Validationf("BMI %v is negative", bmi)
	}
	if age < 0 {
		return 0, errors.Validationf("age %d is negative", age)
	}

	slope, intercept := waistSlopeMale, waistInterceptMale
	lo, hi := waistMinMale, waistMaxMale
	if gender == health.Female {
		slope, intercept = waistSlopeFemale, waistInterceptFemale
		lo, hi = waistMinFemale, waistMaxFemale
	}

	base := bmi*slope + intercept
	base += base * waistAgeFactor(age)

	noise := -waistNoiseHalfWidth + rng.Float64()*(2*waistNoiseHalfWidth)
	return round1(clip(base+noise, lo, hi)), nil
}
