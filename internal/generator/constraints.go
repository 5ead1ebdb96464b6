package generator

import (
	"fitforge/plan-generator/internal/domain"
)

// constraintRule is the effect one health tag has on the constraint set.
// Effects accumulate commutatively across tags: exclusions union, RPE caps
// take the minimum, clearance and gentle mode OR together, warnings dedup.
type constraintRule struct {
	exclusions []domain.MovementPattern
	rpeCap     int
	clearance  bool
	gentle     bool
	warning    string
}

// tagRules is the constraint rule table. Numeric caps and exclusion lists
// are product-tuning values; revise them here.
var tagRules = map[HealthTag]constraintRule{
	TagKneeInjury: {
		exclusions: []domain.MovementPattern{domain.PatternSquat, domain.PatternLunge, domain.PatternJumping},
		warning:    "Knee issue reported: squat, lunge and jumping movements are excluded.",
	},
	TagBackInjury: {
		exclusions: []domain.MovementPattern{domain.PatternDeadlift, domain.PatternRow, domain.PatternGoodMorning, domain.PatternSpinalLoad},
		warning:    "Back issue reported: deadlifts, rows and spinal-loading movements are excluded.",
	},
	TagShoulderInjury: {
		exclusions: []domain.MovementPattern{domain.PatternOverhead},
		warning:    "Shoulder issue reported: overhead pressing is excluded.",
	},
	TagWristInjury: {
		exclusions: []domain.MovementPattern{domain.PatternWristLoad},
		warning:    "Wrist issue reported: exercises loading the wrists are excluded.",
	},
	TagAnkleInjury: {
		exclusions: []domain.MovementPattern{domain.PatternJumping, domain.PatternLunge},
		warning:    "Ankle issue reported: jumping and lunging movements are excluded.",
	},
	TagHipInjury: {
		exclusions: []domain.MovementPattern{domain.PatternLunge, domain.PatternJumping},
		warning:    "Hip issue reported: lunging and jumping movements are excluded.",
	},
	TagNeckInjury: {
		exclusions: []domain.MovementPattern{domain.PatternOverhead, domain.PatternNeckLoad},
		warning:    "Neck issue reported: overhead and neck-loading movements are excluded.",
	},
	TagHeartDisease: {
		exclusions: []domain.MovementPattern{domain.PatternMaxEffort, domain.PatternHIIT},
		rpeCap:     6,
		clearance:  true,
		warning:    "Heart condition reported: intensity is capped and max-effort work is excluded. Consult your cardiologist before starting.",
	},
	TagHypertension: {
		exclusions: []domain.MovementPattern{domain.PatternMaxEffort},
		rpeCap:     7,
		warning:    "High blood pressure reported: avoid breath-holding during lifts and keep intensity moderate.",
	},
	TagAsthma: {
		warning: "Asthma reported: keep your inhaler nearby and build intensity gradually.",
	},
	TagDiabetes: {
		warning: "Diabetes reported: monitor blood sugar around sessions and keep fast-acting carbs at hand.",
	},
	TagOsteoporosis: {
		exclusions: []domain.MovementPattern{domain.PatternJumping, domain.PatternTwisting, domain.PatternMaxEffort},
		warning:    "Low bone density reported: high-impact and twisting movements are excluded.",
	},
	TagArthritis: {
		exclusions: []domain.MovementPattern{domain.PatternJumping},
		warning:    "Arthritis reported: the plan favours low-impact movements.",
	},
	TagHernia: {
		exclusions: []domain.MovementPattern{domain.PatternDeadlift, domain.PatternSpinalLoad, domain.PatternMaxEffort},
		warning:    "Hernia reported: heavy lifting and spinal-loading movements are excluded.",
	},
	TagBetaBlocker: {
		rpeCap:  6,
		warning: "Beta blockers blunt heart-rate response: gauge effort by RPE, not heart rate.",
	},
	TagPregnancyT1: {
		exclusions: []domain.MovementPattern{domain.PatternMaxEffort, domain.PatternHIIT},
		rpeCap:     7,
		warning:    "First trimester: keep intensity moderate and stop at any dizziness or pain.",
	},
	TagPregnancyT2: {
		exclusions: []domain.MovementPattern{domain.PatternSupine, domain.PatternTwisting, domain.PatternOverhead, domain.PatternJumping, domain.PatternMaxEffort, domain.PatternHIIT},
		rpeCap:     6,
		warning:    "Second trimester: lying on the back, twisting, jumping and overhead loading are excluded.",
	},
	TagPregnancyT3: {
		exclusions: []domain.MovementPattern{domain.PatternSupine, domain.PatternProne, domain.PatternTwisting, domain.PatternOverhead, domain.PatternJumping, domain.PatternDeadlift, domain.PatternMaxEffort, domain.PatternHIIT},
		rpeCap:     4,
		clearance:  true,
		gentle:     true,
		warning:    "Third trimester: gentle-only programming. Get medical clearance before training.",
	},
	TagBreastfeeding: {
		warning: "Breastfeeding: hydrate well and keep training volume conservative.",
	},
}

// ExtractConstraints derives the canonical constraint set from a profile.
// Pure and total: it never fails, unknown input simply adds no constraint,
// and two calls with the same profile produce identical sets.
func ExtractConstraints(profile domain.UserProfile) *domain.ConstraintSet {
	cs := domain.NewConstraintSet()
	cs.AddEquipment(profile.Equipment...)

	for _, tag := range TagProfile(profile) {
		rule, ok := tagRules[tag]
		if !ok {
			continue
		}
		cs.Exclude(rule.exclusions...)
		cs.CapRPE(rule.rpeCap)
		if rule.clearance {
			cs.RequiresMedicalClearance = true
		}
		if rule.gentle {
			cs.GentleMode = true
		}
		cs.AddWarning(rule.warning)
	}
	return cs
}
