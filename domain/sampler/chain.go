package sampler

import (
	"math/rand"

	"healthsynth/domain/health"
)

// Chain composes the per-variable samplers into a single record pipeline:
// demographics, BMI, category, waist, then the four independent risk
// samplers. One call produces one complete record; no record is mutated
// after the chain returns it.
//
// The four risk draws are independent given (age, gender, category). Real
// metabolic variables are correlated beyond that conditioning; the model
// deliberately does not capture the joint dependency.
type Chain struct {
	demo   *DemographicSampler
	bmi    *BMISampler
	fbg    *FBGSampler
	trig   *TriglycerideSampler
	hdl    *HDLSampler
	bp     *HypertensionSampler
	clamps *ClampCounter
}

// NewChain validates the full parameter set and builds the sampler pipeline
// for a batch of n records.
func NewChain(tables *health.Tables, n int) (*Chain, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}

	demo, err := NewDemographicSampler(tables.AgeGroups, n)
	if err != nil {
		return nil, err
	}
	bmi, err := NewBMISampler(tables.BMIParams)
	if err != nil {
		return nil, err
	}

	clamps := &ClampCounter{}
	return &Chain{
		demo:   demo,
		bmi:    bmi,
		fbg:    NewFBGSampler(tables.FBG, clamps),
		trig:   NewTriglycerideSampler(tables.Triglyceride, clamps),
		hdl:    NewHDLSampler(tables.HDL, clamps),
		bp:     NewHypertensionSampler(tables.Hypertension, clamps),
		clamps: clamps,
	}, nil
}

// Generate draws one complete record. Any sampler error propagates; there is
// no per-field skipping since every field is required.
func (c *Chain) Generate(rng *rand.Rand) (health.Record, error) {
	age := c.demo.SampleAge(rng)
	gender := SampleGender(rng)

	bmi, err := c.bmi.Sample(rng, age, gender)
	if err != nil {
		return health.Record{}, err
	}
	cat := health.CategorizeBMI(bmi)

	waist, err := SampleWaist(rng, bmi, age, gender)
	if err != nil {
		return health.Record{}, err
	}

	fbg, err := c.fbg.Sample(rng, age, cat)
	if err != nil {
		return health.Record{}, err
	}
	trig, err := c.trig.Sample(rng, age, cat)
	if err != nil {
		return health.Record{}, err
	}
	hdl, err := c.hdl.Sample(rng, age, gender, cat)
	if err != nil {
		return health.Record{}, err
	}
	bp, err := c.bp.Sample(rng, age, cat)
	if err != nil {
		return health.Record{}, err
	}

	return health.Record{
		Age:                age,
		Gender:             gender,
		BMI:                bmi,
		BMICategory:        cat,
		WaistCircumference: waist,
		FBG:                fbg,
		Triglyceride:       trig,
		HDL:                hdl,
		HighBloodPressure:  bp,
	}, nil
}

// ClampCount reports how many probability clamps the risk samplers applied
func (c *Chain) ClampCount() int64 {
	return c.clamps.Count()
}
