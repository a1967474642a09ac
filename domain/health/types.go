package health

import (
	"strconv"

	"healthsynth/internal/errors"
)

// Gender is a closed enumeration. Risk tables are indexed by it, so an
// unhandled gender is a construction-time error rather than a runtime
// fallback.
type Gender int

const (
	Male Gender = iota
	Female

	NumGenders = 2
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "Male"
	case Female:
		return "Female"
	}
	return "unknown"
}

// Valid reports whether g is a defined gender value
func (g Gender) Valid() bool {
	return g >= Male && g < NumGenders
}

// ParseGender converts the CSV representation back to the enumeration
func ParseGender(s string) (Gender, error) {
	switch s {
	case "Male":
		return Male, nil
	case "Female":
		return Female, nil
	}
	return 0, errors.Lookupf("unknown gender %q", s)
}

// BMICategory is the ordinal adiposity category derived from BMI.
type BMICategory int

const (
	Underweight BMICategory = iota
	NormalWeight
	Overweight
	Obese

	NumBMICategories = 4
)

func (c BMICategory) String() string {
	switch c {
	case Underweight:
		return "Underweight"
	case NormalWeight:
		return "Normal weight"
	case Overweight:
		return "Overweight"
	case Obese:
		return "Obese"
	}
	return "unknown"
}

// Valid reports whether c is a defined category value
func (c BMICategory) Valid() bool {
	return c >= Underweight && c < NumBMICategories
}

// ParseBMICategory converts the CSV representation back to the enumeration
func ParseBMICategory(s string) (BMICategory, error) {
	switch s {
	case "Underweight":
		return Underweight, nil
	case "Normal weight":
		return NormalWeight, nil
	case "Overweight":
		return Overweight, nil
	case "Obese":
		return Obese, nil
	}
	return 0, errors.Lookupf("unknown BMI category %q", s)
}

// Record is one fully generated simulated health record. A record is built
// by running the sampler chain once and is never mutated afterwards.
type Record struct {
	Age                int         `json:"age" db:"age"`
	Gender             Gender      `json:"gender" db:"gender"`
	BMI                float64     `json:"bmi" db:"bmi"`
	BMICategory        BMICategory `json:"bmi_category" db:"bmi_category"`
	WaistCircumference float64     `json:"waist_circumference" db:"waist_circumference"`
	FBG                int         `json:"fbg" db:"fbg"`
	Triglyceride       int         `json:"triglyceride" db:"triglyceride"`
	HDL                int         `json:"hdl" db:"hdl"`
	HighBloodPressure  bool        `json:"high_blood_pressure" db:"high_blood_pressure"`
}

// CSVHeader is the column layout of the final artifact.
var CSVHeader = []string{
	"Age",
	"Gender",
	"BMI",
	"Waist_Circumference",
	"BMI_Category",
	"FBG",
	"Triglyceride",
	"HDL",
	"High_Blood_Pressure",
}

// CSVRow renders the record with the artifact's numeric formatting:
// integers for Age/FBG/Triglyceride/HDL, one decimal for BMI and waist,
// 0/1 for hypertension.
func (r Record) CSVRow() []string {
	bp := "0"
	if r.HighBloodPressure {
		bp = "1"
	}
	return []string{
		strconv.Itoa(r.Age),
		r.Gender.String(),
		strconv.FormatFloat(r.BMI, 'f', 1, 64),
		strconv.FormatFloat(r.WaistCircumference, 'f', 1, 64),
		r.BMICategory.String(),
		strconv.Itoa(r.FBG),
		strconv.Itoa(r.Triglyceride),
		strconv.Itoa(r.HDL),
		bp,
	}
}

// ParseCSVRow reconstructs a record from an artifact row.
func ParseCSVRow(row []string) (Record, error) {
	if len(row) != len(CSVHeader) {
		return Record{}, errors.Validationf("expected %d columns, got %d", len(CSVHeader), len(row))
	}

	var (
		rec Record
		err error
	)
	if rec.Age, err = strconv.Atoi(row[0]); err != nil {
		return Record{}, errors.Validationf("invalid Age %q", row[0])
	}
	if rec.Gender, err = ParseGender(row[1]); err != nil {
		return Record{}, err
	}
	if rec.BMI, err = strconv.ParseFloat(row[2], 64); err != nil {
		return Record{}, errors.Validationf("invalid BMI %q", row[2])
	}
	if rec.WaistCircumference, err = strconv.ParseFloat(row[3], 64); err != nil {
		return Record{}, errors.Validationf("invalid Waist_Circumference %q", row[3])
	}
	if rec.BMICategory, err = ParseBMICategory(row[4]); err != nil {
		return Record{}, err
	}
	if rec.FBG, err = strconv.Atoi(row[5]); err != nil {
		return Record{}, errors.Validationf("invalid FBG %q", row[5])
	}
	if rec.Triglyceride, err = strconv.Atoi(row[6]); err != nil {
		return Record{}, errors.Validationf("invalid Triglyceride %q", row[6])
	}
	if rec.HDL, err = strconv.Atoi(row[7]); err != nil {
		return Record{}, errors.Validationf("invalid HDL %q", row[7])
	}
	switch row[8] {
	case "0":
		rec.HighBloodPressure = false
	case "1":
		rec.HighBloodPressure = true
	default:
		return Record{}, errors.Validationf("invalid High_Blood_Pressure %q", row[8])
	}
	return rec, nil
}
