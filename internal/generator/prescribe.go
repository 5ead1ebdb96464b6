package generator

import (
	"fmt"

	"fitforge/plan-generator/internal/domain"
)

// repScheme is one goal's prescription band. The numbers are product-tuning
// defaults, kept in the table below rather than in branches so they can be
// revised without touching selection logic.
type repScheme struct {
	Sets    int
	MinReps int
	MaxReps int
	MinRest int // seconds
	MaxRest int
	Tempo   string
}

var prescriptionTable = map[domain.Goal]repScheme{
	domain.GoalStrength:            {Sets: 5, MinReps: 4, MaxReps: 8, MinRest: 120, MaxRest: 180},
	domain.GoalMuscleGain:          {Sets: 4, MinReps: 8, MaxReps: 12, MinRest: 60, MaxRest: 90, Tempo: "3-1-1"},
	domain.GoalWeightLoss:          {Sets: 3, MinReps: 12, MaxReps: 15, MinRest: 30, MaxRest: 45},
	domain.GoalEndurance:           {Sets: 3, MinReps: 15, MaxReps: 20, MinRest: 30, MaxRest: 45},
	domain.GoalMaintenance:         {Sets: 3, MinReps: 10, MaxReps: 12, MinRest: 60, MaxRest: 90},
	domain.GoalFlexibility:         {Sets: 2, MinReps: 10, MaxReps: 12, MinRest: 30, MaxRest: 45},
	domain.GoalAthleticPerformance: {Sets: 4, MinReps: 6, MaxReps: 10, MinRest: 90, MaxRest: 120},
}

// circuitScheme replaces the goal band when the session runs circuit-style:
// high reps and short rests, whatever the goal's own band says. A strength
// band's rest periods alone would not fit inside a short circuit session.
var circuitScheme = repScheme{Sets: 3, MinReps: 12, MaxReps: 15, MinRest: 30, MaxRest: 45}

// gentlePrescription overrides the whole table for gentle-mode constraint
// sets: low volume, long rest, no time-under-tension pushing.
var gentlePrescription = domain.Prescription{
	Sets:        2,
	Reps:        8,
	RestSeconds: 120,
	Note:        "Gentle pace: move smoothly, never push to strain, stop at any discomfort.",
}

// Prescribe assigns sets/reps/rest for one selected exercise. Circuit
// sessions use the circuit band regardless of goal. It never prescribes
// external load; under an RPE cap the band is biased toward its
// lower-intensity end and an RPE note replaces load guidance.
func Prescribe(entry *domain.CatalogEntry, goal domain.Goal, experience domain.Experience, circuit bool, cs *domain.ConstraintSet) (domain.Prescription, error) {
	if cs.GentleMode {
		return gentlePrescription, nil
	}

	scheme, ok := prescriptionTable[goal]
	if !ok {
		return domain.Prescription{}, fmt.Errorf("%w: no prescription scheme for goal %q", ErrConfigurationDefect, goal)
	}
	if circuit {
		scheme = circuitScheme
	}

	sets := scheme.Sets
	if experience == domain.ExperienceBeginner && sets > 2 {
		sets--
	}
	// Accessory work recovers faster than compound work.
	rest := scheme.MaxRest
	if entry.HasPattern(domain.PatternIsolation) {
		if sets > 2 {
			sets--
		}
		rest = scheme.MinRest
	}

	p := domain.Prescription{
		Sets:        sets,
		Reps:        (scheme.MinReps + scheme.MaxReps + 1) / 2,
		RestSeconds: rest,
		Tempo:       scheme.Tempo,
	}

	if cap := cs.IntensityCapRPE; cap > 0 {
		// Lower-intensity end of the band: fewer hard sets, the band's
		// lighter rep target, full rest, and an RPE ceiling instead of any
		// load guidance.
		if p.Sets > 2 {
			p.Sets--
		}
		p.Reps = scheme.MinReps
		p.RestSeconds = scheme.MaxRest
		p.Tempo = ""
		p.Note = fmt.Sprintf("Stay at RPE ≤ %d.", cap)
	}

	return p, nil
}
