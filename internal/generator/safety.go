package generator

import (
	"fmt"

	"fitforge/plan-generator/internal/domain"
)

const clearanceNotice = "This plan is flagged for medical clearance: have it reviewed by a medical professional before starting."

// Annotate attaches plan-level safety output: the constraint warnings, a
// clearance notice when required, and one note per filter-fallback event so
// the user can see why an exercise was swapped. Warnings are profile-level,
// not day-level, which is why they live on the plan.
func Annotate(plan *domain.WeeklyPlan, cs *domain.ConstraintSet, subs []Substitution) {
	warnings := cs.Warnings()

	if cs.RequiresMedicalClearance {
		warnings = append(warnings, clearanceNotice)
	}

	for _, sub := range subs {
		warnings = append(warnings, substitutionNote(sub))
	}

	plan.Warnings = warnings
	plan.RequiresMedicalClearance = cs.RequiresMedicalClearance
}

func substitutionNote(sub Substitution) string {
	switch sub.Stage {
	case StageBodyweight:
		return fmt.Sprintf("%s: no equipment-based %s exercises fit your constraints; bodyweight alternatives were used.",
			sub.DayLabel, sub.Requested)
	case StageAdjacent:
		return fmt.Sprintf("%s: no eligible %s exercises were available; %s work was substituted.",
			sub.DayLabel, sub.Requested, sub.Served)
	default:
		return fmt.Sprintf("%s: %s exercises were adjusted to fit your constraints.", sub.DayLabel, sub.Requested)
	}
}
