package domain

import "time"

// Prescription is the sets/reps/rest scheme attached to one selected
// exercise. The generator never prescribes external load in kg/lb; intensity
// guidance is rep- and RPE-based only.
type Prescription struct {
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
	Tempo       string `json:"tempo,omitempty"`
	Note        string `json:"note,omitempty"`
}

// PlannedExercise is a catalog entry placed into a day, with its
// prescription. Warmup and cooldown items carry no prescription and omit the
// field entirely when serialized, hence the pointer.
type PlannedExercise struct {
	ExerciseID   string        `json:"exerciseId"`
	Name         string        `json:"name"`
	Prescription *Prescription `json:"prescription,omitempty"`
}

// WorkoutDay is one training day of the weekly plan, immutable once
// assembled.
type WorkoutDay struct {
	Label            string            `json:"label"` // e.g. "Monday"
	Title            string            `json:"title"` // e.g. "Push Day"
	Focus            []MuscleGroup     `json:"focus"`
	Warmup           []PlannedExercise `json:"warmup"`
	Main             []PlannedExercise `json:"main"`
	Cooldown         []PlannedExercise `json:"cooldown"`
	EstimatedMinutes int               `json:"estimatedMinutes"`
	Difficulty       string            `json:"difficulty"`
}

// WeeklyPlan is the generation output: one WorkoutDay per training day plus
// rest-day labels, with plan-level safety metadata. Constructed once per
// request and returned to the caller; this subsystem does not persist it.
type WeeklyPlan struct {
	ID                       string       `json:"id"`
	Title                    string       `json:"title"`
	Description              string       `json:"description"`
	SplitName                string       `json:"splitName"`
	Days                     []WorkoutDay `json:"days"`
	RestDays                 []string     `json:"restDays"`
	Warnings                 []string     `json:"warnings,omitempty"`
	RequiresMedicalClearance bool         `json:"requiresMedicalClearance"`
	EstimatedWeeklyCalories  int          `json:"estimatedWeeklyCalories"`
	GeneratedAt              time.Time    `json:"generatedAt"`
}
