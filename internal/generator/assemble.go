package generator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fitforge/plan-generator/internal/domain"
)

var weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// trainingDayLayout spreads N sessions across the week so rest days land
// between hard days where possible. Deterministic by construction.
var trainingDayLayout = map[int][]int{
	1: {0},
	2: {0, 3},
	3: {0, 2, 4},
	4: {0, 1, 3, 4},
	5: {0, 1, 2, 4, 5},
	6: {0, 1, 2, 3, 4, 5},
	7: {0, 1, 2, 3, 4, 5, 6},
}

// Calorie heuristic weights: exercise-count-weighted estimate, documented as
// an estimate, not a physiological calculation.
const (
	caloriesPerDayBase      = 50
	caloriesPerMainExercise = 35
	caloriesPerAccessory    = 10
)

// assemblePlan aggregates the composed days into the final WeeklyPlan with
// rest-day labels, the calorie estimate and summary strings. Fails only if
// no days were produced, which the split selector should make unreachable.
func assemblePlan(id string, split Split, days []domain.WorkoutDay, profile domain.UserProfile, cs *domain.ConstraintSet, generatedAt time.Time) (*domain.WeeklyPlan, error) {
	if len(days) == 0 {
		return nil, errors.New("plan assembly: no workout days produced")
	}

	layout := trainingDayLayout[len(days)]
	training := make(map[int]bool, len(layout))
	for _, dayIdx := range layout {
		training[dayIdx] = true
	}
	var restDays []string
	for i, name := range weekdays {
		if !training[i] {
			restDays = append(restDays, name)
		}
	}

	calories := 0
	for _, day := range days {
		calories += caloriesPerDayBase +
			caloriesPerMainExercise*len(day.Main) +
			caloriesPerAccessory*(len(day.Warmup)+len(day.Cooldown))
	}

	return &domain.WeeklyPlan{
		ID:                      id,
		Title:                   fmt.Sprintf("%d-Day %s Plan", len(days), split.Name),
		Description:             planDescription(split, profile, cs),
		SplitName:               split.Name,
		Days:                    days,
		RestDays:                restDays,
		EstimatedWeeklyCalories: calories,
		GeneratedAt:             generatedAt,
	}, nil
}

func planDescription(split Split, profile domain.UserProfile, cs *domain.ConstraintSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A %s split with %d sessions per week of about %d minutes, built for %s training at %s level.",
		split.Name, profile.SessionsPerWeek, profile.SessionMinutes, strings.ReplaceAll(string(profile.Goal), "_", " "), profile.Experience)
	if cs.GentleMode {
		b.WriteString(" Programmed in gentle mode with conservative volume and long rests.")
	} else if cap := cs.IntensityCapRPE; cap > 0 {
		fmt.Fprintf(&b, " Intensity is capped at RPE %d.", cap)
	}
	b.WriteString(" Weekly calorie figures are a rough exercise-count-based estimate.")
	return b.String()
}
