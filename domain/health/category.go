package health

// BMI category thresholds, half-open on the upper bound.
const (
	underweightMax = 18.5
	normalMax      = 25.0
	overweightMax  = 30.0
)

// CategorizeBMI maps a BMI value to its ordinal category. Every sampler that
// needs the category goes through this function; the thresholds are not
// duplicated anywhere else.
func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < underweightMax:
		return Underweight
	case bmi < normalMax:
		return NormalWeight
	case bmi < overweightMax:
		return Overweight
	default:
		return Obese
	}
}
