package sampler

import (
	"math/rand"

	"healthsynth/domain/health"
	"healthsynth/internal/errors"
)

// DemographicSampler draws ages from a weighted multiset built by expanding
// each age range into its constituent integers, repeated floor(proportion*n)
// times.
//
// The realized age distribution only converges to the configured proportions
// as n grows within a single batch, and independently generated batches do
// not share the pooling, so proportions drift batch-to-batch. This is a
// documented property of the proportional-expansion scheme, not a defect.
type DemographicSampler struct {
	pool []int
}

// NewDemographicSampler builds the age pool for a batch of n records.
func NewDemographicSampler(table health.AgeGroupTable, n int) (*DemographicSampler, error) {
	if n <= 0 {
		return nil, errors.ConfigInvalidf("batch size must be positive, got %d", n)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	var pool []int
	for _, r := range table {
		repeats := int(r.Proportion * float64(n))
		for rep := 0; rep < repeats; rep++ {
			for age := r.Min; age <= r.Max; age++ {
				pool = append(pool, age)
			}
		}
	}
	if len(pool) == 0 {
		// Every floor(proportion*n) came out zero; the batch is too small
		// for the configured proportions.
		return nil, errors.ConfigInvalidf("batch size %d too small to realize any age-group proportion", n)
	}
	return &DemographicSampler{pool: pool}, nil
}

// SampleAge draws one age uniformly from the expanded pool
func (s *DemographicSampler) SampleAge(rng *rand.Rand) int {
	return s.pool[rng.Intn(len(s.pool))]
}

// SampleGender draws a gender uniformly
func SampleGender(rng *rand.Rand) health.Gender {
	if rng.Intn(2) == 0 {
		return health.Male
	}
	return health.Female
}

// PoolSize exposes the expanded pool size for diagnostics
func (s *DemographicSampler) PoolSize() int {
	return len(s.pool)
}
