package generator

import (
	"testing"
	"time"

	"fitforge/plan-generator/internal/catalog"
	"fitforge/plan-generator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinnedGenerator(t *testing.T, cat *catalog.Catalog) *Generator {
	t.Helper()
	fixed := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	return New(cat,
		WithClock(func() time.Time { return fixed }),
		WithIDSource(func() string { return "plan-0001" }),
	)
}

// checkPlanInvariants asserts the properties every generated plan must hold,
// whatever the profile: day counts, per-day uniqueness, and that no selected
// exercise violates the profile's exclusions or equipment.
func checkPlanInvariants(t *testing.T, cat *catalog.Catalog, profile domain.UserProfile, plan *domain.WeeklyPlan) {
	t.Helper()
	cs := ExtractConstraints(profile)

	require.Len(t, plan.Days, profile.SessionsPerWeek)
	assert.Len(t, plan.RestDays, 7-profile.SessionsPerWeek)

	for _, day := range plan.Days {
		seen := make(map[string]bool)
		for _, section := range [][]domain.PlannedExercise{day.Warmup, day.Main, day.Cooldown} {
			for _, ex := range section {
				assert.Falsef(t, seen[ex.ExerciseID], "day %s repeats exercise %q", day.Label, ex.ExerciseID)
				seen[ex.ExerciseID] = true

				entry, ok := cat.ByID(ex.ExerciseID)
				require.Truef(t, ok, "exercise %q not in catalog", ex.ExerciseID)
				assert.Truef(t, cs.AllowsEntry(entry), "day %s serves excluded exercise %q", day.Label, ex.ExerciseID)
				assert.Truef(t, cs.EquipmentSatisfied(entry), "day %s serves %q needing unavailable equipment", day.Label, ex.ExerciseID)
			}
		}
		require.NotEmpty(t, day.Main, "day %s has no main work", day.Label)
		for _, ex := range day.Main {
			require.NotNilf(t, ex.Prescription, "main exercise %q has no prescription", ex.ExerciseID)
			assert.Positive(t, ex.Prescription.Sets)
			assert.Positive(t, ex.Prescription.Reps)
		}
		for _, section := range [][]domain.PlannedExercise{day.Warmup, day.Cooldown} {
			for _, ex := range section {
				assert.Nilf(t, ex.Prescription, "accessory exercise %q carries a prescription", ex.ExerciseID)
			}
		}
	}
}

func TestGenerate_BeginnerBodyweightWeightLoss(t *testing.T) {
	cat := builtinCatalog(t)
	gen := pinnedGenerator(t, cat)

	profile := domain.UserProfile{
		Age: 31, Goal: domain.GoalWeightLoss, Experience: domain.ExperienceBeginner,
		SessionsPerWeek: 3, SessionMinutes: 40,
	}

	plan, err := gen.Generate(profile)
	require.NoError(t, err)
	checkPlanInvariants(t, cat, profile, plan)

	assert.Equal(t, "Full Body Circuit", plan.SplitName)
	assert.Equal(t, "3-Day Full Body Circuit Plan", plan.Title)
	assert.Equal(t, []string{"Monday", "Wednesday", "Friday"}, dayLabels(plan))

	for _, day := range plan.Days {
		for _, ex := range day.Main {
			// Weight-loss band, uncapped: reps sit in the 12-15 range.
			assert.GreaterOrEqual(t, ex.Prescription.Reps, 12)
			assert.LessOrEqual(t, ex.Prescription.Reps, 15)
		}
	}
}

func TestGenerate_BackPainExcludesSpinalLoading(t *testing.T) {
	cat := builtinCatalog(t)
	gen := pinnedGenerator(t, cat)

	profile := domain.UserProfile{
		Goal: domain.GoalStrength, Experience: domain.ExperienceIntermediate,
		SessionsPerWeek: 4, SessionMinutes: 60,
		Equipment: fullGym(),
		Injuries:  []string{"lower back pain"},
	}

	plan, err := gen.Generate(profile)
	require.NoError(t, err)
	checkPlanInvariants(t, cat, profile, plan)

	excluded := []domain.MovementPattern{
		domain.PatternDeadlift, domain.PatternRow, domain.PatternGoodMorning, domain.PatternSpinalLoad,
	}
	for _, day := range plan.Days {
		for _, ex := range day.Main {
			entry, ok := cat.ByID(ex.ExerciseID)
			require.True(t, ok)
			for _, p := range excluded {
				for _, tag := range entry.RiskTags() {
					assert.NotEqualf(t, p, tag, "day %s serves %q carrying excluded pattern %q", day.Label, ex.ExerciseID, p)
				}
			}
		}
	}

	require.NotEmpty(t, plan.Warnings)
	assert.Contains(t, plan.Warnings[0], "Back issue")
}

func TestGenerate_ThirdTrimesterGentlePlan(t *testing.T) {
	cat := builtinCatalog(t)
	gen := pinnedGenerator(t, cat)

	profile := domain.UserProfile{
		Goal: domain.GoalMaintenance, Experience: domain.ExperienceIntermediate,
		SessionsPerWeek: 3, SessionMinutes: 40,
		Equipment:          fullGym(),
		Pregnant:           true,
		PregnancyTrimester: 3,
	}

	plan, err := gen.Generate(profile)
	require.NoError(t, err)
	checkPlanInvariants(t, cat, profile, plan)

	assert.True(t, plan.RequiresMedicalClearance)
	assert.Contains(t, plan.Warnings, clearanceNotice)

	for _, day := range plan.Days {
		assert.Equal(t, "gentle", day.Difficulty)
		for _, ex := range day.Main {
			require.NotNil(t, ex.Prescription)
			assert.Equal(t, gentlePrescription, *ex.Prescription)
			entry, ok := cat.ByID(ex.ExerciseID)
			require.True(t, ok)
			for _, tag := range entry.RiskTags() {
				assert.NotContainsf(t, []domain.MovementPattern{
					domain.PatternSupine, domain.PatternProne, domain.PatternJumping, domain.PatternTwisting,
				}, tag, "day %s serves %q with pattern %q", day.Label, ex.ExerciseID, tag)
			}
		}
	}
}

func TestGenerate_HeartConditionCapsIntensity(t *testing.T) {
	cat := builtinCatalog(t)
	gen := pinnedGenerator(t, cat)

	profile := domain.UserProfile{
		Goal: domain.GoalMuscleGain, Experience: domain.ExperienceIntermediate,
		SessionsPerWeek: 3, SessionMinutes: 50,
		Equipment:         fullGym(),
		MedicalConditions: []string{"heart disease"},
		Medications:       []string{"metoprolol"},
	}

	plan, err := gen.Generate(profile)
	require.NoError(t, err)
	checkPlanInvariants(t, cat, profile, plan)

	assert.True(t, plan.RequiresMedicalClearance)
	assert.Contains(t, plan.Description, "Intensity is capped at RPE 6")

	for _, day := range plan.Days {
		for _, ex := range day.Main {
			assert.Contains(t, ex.Prescription.Note, "RPE ≤ 6")
			entry, ok := cat.ByID(ex.ExerciseID)
			require.True(t, ok)
			assert.False(t, entry.HasPattern(domain.PatternMaxEffort))
			assert.False(t, entry.HasPattern(domain.PatternHIIT))
		}
	}
}

func TestGenerate_SevenDayAdvancedVariety(t *testing.T) {
	cat := builtinCatalog(t)
	gen := pinnedGenerator(t, cat)

	profile := domain.UserProfile{
		Goal: domain.GoalMuscleGain, Experience: domain.ExperienceAdvanced,
		SessionsPerWeek: 7, SessionMinutes: 60,
		Equipment: fullGym(),
	}

	plan, err := gen.Generate(profile)
	require.NoError(t, err)
	checkPlanInvariants(t, cat, profile, plan)

	assert.Equal(t, "Push/Pull/Legs", plan.SplitName)
	assert.Empty(t, plan.RestDays)

	// Same-emphasis days (Push A on Monday, Push B on Thursday) share no
	// main exercise: the week-level deprioritization keeps them distinct.
	pushA, pushB := plan.Days[0], plan.Days[3]
	assert.Equal(t, "Push A", pushA.Title)
	assert.Equal(t, "Push B", pushB.Title)
	aIDs := mainIDs(pushA)
	for id := range mainIDs(pushB) {
		assert.Falsef(t, aIDs[id], "exercise %q repeated on both push days", id)
	}
}

func TestGenerate_ShortSessionCircuitUsesCircuitBand(t *testing.T) {
	cat := builtinCatalog(t)
	gen := pinnedGenerator(t, cat)

	// Short sessions force circuit-style training; the goal's own band must
	// not leak through, or the rest periods alone would overflow the session.
	profile := domain.UserProfile{
		Goal: domain.GoalStrength, Experience: domain.ExperienceIntermediate,
		SessionsPerWeek: 3, SessionMinutes: 25,
	}

	plan, err := gen.Generate(profile)
	require.NoError(t, err)
	checkPlanInvariants(t, cat, profile, plan)

	assert.Equal(t, "Full Body Circuit", plan.SplitName)
	for _, day := range plan.Days {
		for _, ex := range day.Main {
			assert.GreaterOrEqual(t, ex.Prescription.Reps, 12)
			assert.LessOrEqual(t, ex.Prescription.Reps, 15)
			assert.LessOrEqual(t, ex.Prescription.RestSeconds, 45)
			assert.LessOrEqual(t, ex.Prescription.Sets, 3)
		}
	}
}

func TestGenerate_FlexibilityGoalEmphasizesMobility(t *testing.T) {
	cat := builtinCatalog(t)
	gen := pinnedGenerator(t, cat)

	base := domain.UserProfile{
		Goal: domain.GoalMaintenance, Experience: domain.ExperienceIntermediate,
		SessionsPerWeek: 3, SessionMinutes: 45,
		Equipment: fullGym(),
	}
	flex := base
	flex.Goal = domain.GoalFlexibility

	basePlan, err := gen.Generate(base)
	require.NoError(t, err)
	flexPlan, err := gen.Generate(flex)
	require.NoError(t, err)
	checkPlanInvariants(t, cat, flex, flexPlan)

	for i := range flexPlan.Days {
		assert.Greater(t, len(flexPlan.Days[i].Cooldown), len(basePlan.Days[i].Cooldown),
			"flexibility days carry a larger stretch block")
		assert.Less(t, len(flexPlan.Days[i].Main), len(basePlan.Days[i].Main),
			"the extra mobility time comes out of main work")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cat := builtinCatalog(t)
	gen := pinnedGenerator(t, cat)

	profile := domain.UserProfile{
		Goal: domain.GoalStrength, Experience: domain.ExperienceIntermediate,
		SessionsPerWeek: 4, SessionMinutes: 60,
		Equipment: fullGym(),
		Injuries:  []string{"knee pain"},
	}

	a, err := gen.Generate(profile)
	require.NoError(t, err)
	b, err := gen.Generate(profile)
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical profiles must yield identical plans")

	assert.Equal(t, "plan-0001", a.ID)
	assert.Equal(t, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), a.GeneratedAt)
}

func TestGenerate_AllFrequenciesProducePlans(t *testing.T) {
	cat := builtinCatalog(t)
	gen := pinnedGenerator(t, cat)

	for sessions := 1; sessions <= 7; sessions++ {
		profile := domain.UserProfile{
			Goal: domain.GoalMaintenance, Experience: domain.ExperienceIntermediate,
			SessionsPerWeek: sessions, SessionMinutes: 45,
			Equipment: fullGym(),
		}
		plan, err := gen.Generate(profile)
		require.NoErrorf(t, err, "sessions=%d", sessions)
		checkPlanInvariants(t, cat, profile, plan)
	}
}

func TestGenerate_InvalidProfile(t *testing.T) {
	gen := pinnedGenerator(t, builtinCatalog(t))

	valid := domain.UserProfile{
		Goal: domain.GoalStrength, Experience: domain.ExperienceBeginner,
		SessionsPerWeek: 3, SessionMinutes: 45,
	}

	tests := []struct {
		name   string
		mutate func(*domain.UserProfile)
	}{
		{"zero sessions", func(p *domain.UserProfile) { p.SessionsPerWeek = 0 }},
		{"eight sessions", func(p *domain.UserProfile) { p.SessionsPerWeek = 8 }},
		{"zero minutes", func(p *domain.UserProfile) { p.SessionMinutes = 0 }},
		{"unknown goal", func(p *domain.UserProfile) { p.Goal = "get huge" }},
		{"unknown experience", func(p *domain.UserProfile) { p.Experience = "expert" }},
		{"pregnant without trimester", func(p *domain.UserProfile) { p.Pregnant = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := valid
			tt.mutate(&profile)
			_, err := gen.Generate(profile)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
}

func TestGenerate_InsufficientCatalogCoverage(t *testing.T) {
	cat := mustCatalog(t, []domain.CatalogEntry{
		{
			ID: "wu_only", Name: "wu_only",
			Equipment: []domain.Equipment{domain.EquipmentBodyweight},
			Patterns:  []domain.MovementPattern{domain.PatternDynamic},
			Muscles:   []domain.MuscleGroup{domain.MuscleFullBody},
			Tier:      1,
			Roles:     []domain.ExerciseRole{domain.RoleWarmup},
		},
	})
	gen := pinnedGenerator(t, cat)

	_, err := gen.Generate(domain.UserProfile{
		Goal: domain.GoalStrength, Experience: domain.ExperienceBeginner,
		SessionsPerWeek: 3, SessionMinutes: 45,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientCatalogCoverage)
}

func dayLabels(plan *domain.WeeklyPlan) []string {
	labels := make([]string, 0, len(plan.Days))
	for _, day := range plan.Days {
		labels = append(labels, day.Label)
	}
	return labels
}
