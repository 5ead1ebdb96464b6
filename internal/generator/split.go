package generator

import (
	"fmt"

	"fitforge/plan-generator/internal/domain"
)

// SplitKind names the weekly training-split archetype.
type SplitKind string

const (
	SplitFullBody     SplitKind = "full_body"
	SplitUpperLower   SplitKind = "upper_lower"
	SplitPushPullLegs SplitKind = "push_pull_legs"
)

// DayTemplate assigns a title and an ordered muscle-group emphasis to one
// training day. Slot allocation round-robins over Focus, so its order
// matters.
type DayTemplate struct {
	Title string
	Focus []domain.MuscleGroup
}

// Split is the selected weekly archetype with one template per training day.
type Split struct {
	Name    string
	Kind    SplitKind
	Circuit bool
	Days    []DayTemplate
}

// Sessions shorter than this are forced into circuit-style full-body
// training regardless of frequency.
const circuitThresholdMinutes = 30

type splitKey struct {
	bucket     int // 3 = low (<=3/wk), 4 = mid, 5 = high (>=5/wk)
	experience domain.Experience
}

// splitTable is the (frequency bucket, experience) lookup. Every valid
// combination must have an entry; a miss is a programming error, not a user
// error.
var splitTable = map[splitKey]SplitKind{
	{3, domain.ExperienceBeginner}:     SplitFullBody,
	{3, domain.ExperienceIntermediate}: SplitFullBody,
	{3, domain.ExperienceAdvanced}:     SplitFullBody,
	{4, domain.ExperienceBeginner}:     SplitFullBody,
	{4, domain.ExperienceIntermediate}: SplitUpperLower,
	{4, domain.ExperienceAdvanced}:     SplitUpperLower,
	{5, domain.ExperienceBeginner}:     SplitUpperLower,
	{5, domain.ExperienceIntermediate}: SplitPushPullLegs,
	{5, domain.ExperienceAdvanced}:     SplitPushPullLegs,
}

var fullBodyTemplates = []DayTemplate{
	{Title: "Full Body A", Focus: []domain.MuscleGroup{domain.MuscleQuads, domain.MuscleChest, domain.MuscleBack, domain.MuscleCore}},
	{Title: "Full Body B", Focus: []domain.MuscleGroup{domain.MuscleHamstrings, domain.MuscleShoulders, domain.MuscleBack, domain.MuscleCore}},
	{Title: "Full Body C", Focus: []domain.MuscleGroup{domain.MuscleGlutes, domain.MuscleChest, domain.MuscleArms, domain.MuscleCore}},
	{Title: "Full Body D", Focus: []domain.MuscleGroup{domain.MuscleQuads, domain.MuscleBack, domain.MuscleShoulders, domain.MuscleCalves}},
	{Title: "Full Body E", Focus: []domain.MuscleGroup{domain.MuscleHamstrings, domain.MuscleChest, domain.MuscleArms, domain.MuscleCore}},
	{Title: "Full Body F", Focus: []domain.MuscleGroup{domain.MuscleGlutes, domain.MuscleShoulders, domain.MuscleBack, domain.MuscleCalves}},
	{Title: "Full Body G", Focus: []domain.MuscleGroup{domain.MuscleQuads, domain.MuscleChest, domain.MuscleArms, domain.MuscleCore}},
}

var upperLowerTemplates = []DayTemplate{
	{Title: "Upper Body A", Focus: []domain.MuscleGroup{domain.MuscleChest, domain.MuscleBack, domain.MuscleShoulders, domain.MuscleArms}},
	{Title: "Lower Body A", Focus: []domain.MuscleGroup{domain.MuscleQuads, domain.MuscleHamstrings, domain.MuscleGlutes, domain.MuscleCalves}},
	{Title: "Upper Body B", Focus: []domain.MuscleGroup{domain.MuscleShoulders, domain.MuscleBack, domain.MuscleChest, domain.MuscleArms}},
	{Title: "Lower Body B", Focus: []domain.MuscleGroup{domain.MuscleGlutes, domain.MuscleQuads, domain.MuscleHamstrings, domain.MuscleCalves}},
}

var pplTemplates = []DayTemplate{
	{Title: "Push A", Focus: []domain.MuscleGroup{domain.MuscleChest, domain.MuscleShoulders, domain.MuscleArms}},
	{Title: "Pull A", Focus: []domain.MuscleGroup{domain.MuscleBack, domain.MuscleArms, domain.MuscleCore}},
	{Title: "Legs A", Focus: []domain.MuscleGroup{domain.MuscleQuads, domain.MuscleHamstrings, domain.MuscleGlutes, domain.MuscleCalves}},
	{Title: "Push B", Focus: []domain.MuscleGroup{domain.MuscleShoulders, domain.MuscleChest, domain.MuscleArms}},
	{Title: "Pull B", Focus: []domain.MuscleGroup{domain.MuscleBack, domain.MuscleCore, domain.MuscleArms}},
	{Title: "Legs B", Focus: []domain.MuscleGroup{domain.MuscleGlutes, domain.MuscleQuads, domain.MuscleHamstrings, domain.MuscleCalves}},
	{Title: "Conditioning & Core", Focus: []domain.MuscleGroup{domain.MuscleCore, domain.MuscleFullBody}},
}

func frequencyBucket(sessions int) int {
	switch {
	case sessions <= 3:
		return 3
	case sessions == 4:
		return 4
	default:
		return 5
	}
}

func splitDisplayName(kind SplitKind, circuit bool) string {
	switch {
	case circuit:
		return "Full Body Circuit"
	case kind == SplitFullBody:
		return "Full Body"
	case kind == SplitUpperLower:
		return "Upper/Lower"
	default:
		return "Push/Pull/Legs"
	}
}

// SelectSplit picks the weekly archetype from frequency, experience, goal
// and session duration. Deterministic: no randomness, ties broken by the
// lookup table. Returns ErrConfigurationDefect if the table is missing an
// entry for a valid input.
func SelectSplit(sessions, sessionMinutes int, goal domain.Goal, experience domain.Experience) (Split, error) {
	kind, ok := splitTable[splitKey{frequencyBucket(sessions), experience}]
	if !ok {
		return Split{}, fmt.Errorf("%w: no split for %d sessions/week, experience %q",
			ErrConfigurationDefect, sessions, experience)
	}

	// Short sessions leave no room for rest-heavy station work; run
	// circuit-style full-body instead, whatever the frequency says.
	circuit := sessionMinutes < circuitThresholdMinutes
	if circuit || (goal == domain.GoalWeightLoss && kind == SplitFullBody) {
		circuit = true
		kind = SplitFullBody
	}

	var templates []DayTemplate
	switch kind {
	case SplitFullBody:
		templates = fullBodyTemplates
	case SplitUpperLower:
		templates = upperLowerTemplates
	case SplitPushPullLegs:
		templates = pplTemplates
	}

	days := make([]DayTemplate, sessions)
	for i := 0; i < sessions; i++ {
		days[i] = templates[i%len(templates)]
	}

	return Split{
		Name:    splitDisplayName(kind, circuit),
		Kind:    kind,
		Circuit: circuit,
		Days:    days,
	}, nil
}
