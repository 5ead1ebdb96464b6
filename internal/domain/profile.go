package domain

// Goal is the user's primary training goal. The generator's rule tables are
// keyed directly off these values, so renaming a constant is a breaking
// change to the rules, not just the API.
type Goal string

const (
	GoalMuscleGain          Goal = "muscle_gain"
	GoalWeightLoss          Goal = "weight_loss"
	GoalStrength            Goal = "strength"
	GoalEndurance           Goal = "endurance"
	GoalMaintenance         Goal = "maintenance"
	GoalFlexibility         Goal = "flexibility"
	GoalAthleticPerformance Goal = "athletic_performance"
)

// Valid reports whether g is one of the known goal values.
func (g Goal) Valid() bool {
	switch g {
	case GoalMuscleGain, GoalWeightLoss, GoalStrength, GoalEndurance,
		GoalMaintenance, GoalFlexibility, GoalAthleticPerformance:
		return true
	}
	return false
}

// Experience is the user's self-reported training experience level.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

func (e Experience) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

// Tier maps experience to the maximum catalog difficulty tier the user
// should be offered (1 = beginner ... 3 = advanced).
func (e Experience) Tier() int {
	switch e {
	case ExperienceIntermediate:
		return 2
	case ExperienceAdvanced:
		return 3
	default:
		return 1
	}
}

// Gender is informational only; no rule table branches on it.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// UserProfile is the immutable generation input, owned by the caller.
// Units are always metric: height in cm, weight in kg, session duration in
// minutes. Injury/medical/medication entries are free text from onboarding
// and are mapped to closed health tags at the pipeline boundary.
type UserProfile struct {
	Age                int         `json:"age"`
	Gender             Gender      `json:"gender,omitempty"`
	HeightCm           float64     `json:"heightCm,omitempty"`
	WeightKg           float64     `json:"weightKg,omitempty"`
	Goal               Goal        `json:"goal"`
	Experience         Experience  `json:"experience"`
	SessionsPerWeek    int         `json:"sessionsPerWeek"`
	SessionMinutes     int         `json:"sessionMinutes"`
	Equipment          []Equipment `json:"equipment,omitempty"`
	Injuries           []string    `json:"injuries,omitempty"`
	MedicalConditions  []string    `json:"medicalConditions,omitempty"`
	Medications        []string    `json:"medications,omitempty"`
	Pregnant           bool        `json:"pregnant,omitempty"`
	PregnancyTrimester int         `json:"pregnancyTrimester,omitempty"` // 1-3, meaningful only when Pregnant
	Breastfeeding      bool        `json:"breastfeeding,omitempty"`
}
