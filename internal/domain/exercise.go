package domain

// Equipment tags describe what an exercise needs and what the user owns.
type Equipment string

const (
	EquipmentBodyweight     Equipment = "bodyweight"
	EquipmentDumbbell       Equipment = "dumbbell"
	EquipmentBarbell        Equipment = "barbell"
	EquipmentKettlebell     Equipment = "kettlebell"
	EquipmentResistanceBand Equipment = "resistance_band"
	EquipmentPullUpBar      Equipment = "pull_up_bar"
	EquipmentBench          Equipment = "bench"
	EquipmentCableMachine   Equipment = "cable_machine"
	EquipmentYogaMat        Equipment = "yoga_mat"
)

// MovementPattern is the biomechanical tag vocabulary used both for an
// exercise's pattern tags and for constraint exclusions. Exclusion matching
// is exact tag intersection, never substring matching.
type MovementPattern string

const (
	PatternSquat       MovementPattern = "squat"
	PatternHinge       MovementPattern = "hinge"
	PatternLunge       MovementPattern = "lunge"
	PatternPush        MovementPattern = "push"
	PatternPull        MovementPattern = "pull"
	PatternOverhead    MovementPattern = "overhead"
	PatternDeadlift    MovementPattern = "deadlift"
	PatternRow         MovementPattern = "row"
	PatternGoodMorning MovementPattern = "good_morning"
	PatternSupine      MovementPattern = "supine"
	PatternProne       MovementPattern = "prone"
	PatternJumping     MovementPattern = "jumping"
	PatternTwisting    MovementPattern = "twisting"
	PatternCompound    MovementPattern = "compound"
	PatternIsolation   MovementPattern = "isolation"
	PatternMaxEffort   MovementPattern = "max_effort"
	PatternHIIT        MovementPattern = "hiit"
	PatternWristLoad   MovementPattern = "wrist_load"
	PatternNeckLoad    MovementPattern = "neck_load"
	PatternSpinalLoad  MovementPattern = "spinal_load"
	PatternDynamic     MovementPattern = "dynamic"
	PatternStretch     MovementPattern = "stretch"
	PatternCarry       MovementPattern = "carry"
)

// MuscleGroup is the emphasis vocabulary shared by split templates and
// catalog entries.
type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "chest"
	MuscleBack       MuscleGroup = "back"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleArms       MuscleGroup = "arms"
	MuscleQuads      MuscleGroup = "quads"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleCore       MuscleGroup = "core"
	MuscleCalves     MuscleGroup = "calves"
	MuscleFullBody   MuscleGroup = "full_body"
)

// ExerciseRole marks where in a session an exercise is suitable.
type ExerciseRole string

const (
	RoleWarmup   ExerciseRole = "warmup"
	RoleMain     ExerciseRole = "main"
	RoleCooldown ExerciseRole = "cooldown"
)

// CatalogEntry is one exercise in the read-only catalog. The generator never
// mutates entries; the catalog collaborator owns curation.
type CatalogEntry struct {
	ID                string            `json:"id" bson:"_id"`
	Name              string            `json:"name" bson:"name"`
	Equipment         []Equipment       `json:"equipment" bson:"equipment"`
	Patterns          []MovementPattern `json:"patterns" bson:"patterns"`
	Muscles           []MuscleGroup     `json:"muscles" bson:"muscles"`
	Tier              int               `json:"tier" bson:"tier"` // 1 beginner, 2 intermediate, 3 advanced
	Roles             []ExerciseRole    `json:"roles" bson:"roles"`
	Contraindications []MovementPattern `json:"contraindications,omitempty" bson:"contraindications,omitempty"`
}

// HasRole reports whether the entry is suitable for the given session role.
func (e *CatalogEntry) HasRole(role ExerciseRole) bool {
	for _, r := range e.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Targets reports whether the entry works the given muscle group. Full-body
// entries target every group.
func (e *CatalogEntry) Targets(muscle MuscleGroup) bool {
	for _, m := range e.Muscles {
		if m == muscle || m == MuscleFullBody {
			return true
		}
	}
	return false
}

// HasPattern reports whether the entry carries the given pattern tag.
func (e *CatalogEntry) HasPattern(p MovementPattern) bool {
	for _, tag := range e.Patterns {
		if tag == p {
			return true
		}
	}
	return false
}

// RiskTags returns the union of pattern and contraindication tags, the set
// checked against a constraint's exclusions.
func (e *CatalogEntry) RiskTags() []MovementPattern {
	tags := make([]MovementPattern, 0, len(e.Patterns)+len(e.Contraindications))
	tags = append(tags, e.Patterns...)
	tags = append(tags, e.Contraindications...)
	return tags
}
