package generator

import (
	"testing"

	"fitforge/plan-generator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectSplit(t *testing.T) {
	tests := []struct {
		name       string
		sessions   int
		minutes    int
		goal       domain.Goal
		experience domain.Experience
		wantKind   SplitKind
		wantName   string
		circuit    bool
	}{
		{
			name:     "three days beginner strength",
			sessions: 3, minutes: 60,
			goal: domain.GoalStrength, experience: domain.ExperienceBeginner,
			wantKind: SplitFullBody, wantName: "Full Body",
		},
		{
			name:     "weight loss full body runs as circuit",
			sessions: 3, minutes: 45,
			goal: domain.GoalWeightLoss, experience: domain.ExperienceBeginner,
			wantKind: SplitFullBody, wantName: "Full Body Circuit", circuit: true,
		},
		{
			name:     "four days intermediate",
			sessions: 4, minutes: 60,
			goal: domain.GoalMuscleGain, experience: domain.ExperienceIntermediate,
			wantKind: SplitUpperLower, wantName: "Upper/Lower",
		},
		{
			name:     "four days beginner stays full body",
			sessions: 4, minutes: 60,
			goal: domain.GoalMuscleGain, experience: domain.ExperienceBeginner,
			wantKind: SplitFullBody, wantName: "Full Body",
		},
		{
			name:     "five days beginner stays upper lower",
			sessions: 5, minutes: 60,
			goal: domain.GoalMuscleGain, experience: domain.ExperienceBeginner,
			wantKind: SplitUpperLower, wantName: "Upper/Lower",
		},
		{
			name:     "six days advanced",
			sessions: 6, minutes: 75,
			goal: domain.GoalMuscleGain, experience: domain.ExperienceAdvanced,
			wantKind: SplitPushPullLegs, wantName: "Push/Pull/Legs",
		},
		{
			name:     "short sessions force circuit regardless of frequency",
			sessions: 5, minutes: 20,
			goal: domain.GoalStrength, experience: domain.ExperienceAdvanced,
			wantKind: SplitFullBody, wantName: "Full Body Circuit", circuit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := SelectSplit(tt.sessions, tt.minutes, tt.goal, tt.experience)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, split.Kind)
			assert.Equal(t, tt.wantName, split.Name)
			assert.Equal(t, tt.circuit, split.Circuit)
			assert.Len(t, split.Days, tt.sessions)
		})
	}
}

func TestSelectSplit_TableCoversAllValidInputs(t *testing.T) {
	experiences := []domain.Experience{
		domain.ExperienceBeginner, domain.ExperienceIntermediate, domain.ExperienceAdvanced,
	}
	goals := []domain.Goal{
		domain.GoalStrength, domain.GoalMuscleGain, domain.GoalWeightLoss,
		domain.GoalEndurance, domain.GoalMaintenance, domain.GoalFlexibility,
		domain.GoalAthleticPerformance,
	}
	for sessions := 1; sessions <= 7; sessions++ {
		for _, exp := range experiences {
			for _, goal := range goals {
				split, err := SelectSplit(sessions, 60, goal, exp)
				require.NoErrorf(t, err, "sessions=%d exp=%s goal=%s", sessions, exp, goal)
				require.Len(t, split.Days, sessions)
				for _, day := range split.Days {
					assert.NotEmpty(t, day.Title)
					assert.NotEmpty(t, day.Focus)
				}
			}
		}
	}
}

func TestSelectSplit_SevenDayFullBodyHasDistinctTitles(t *testing.T) {
	split, err := SelectSplit(7, 60, domain.GoalMaintenance, domain.ExperienceIntermediate)
	require.NoError(t, err)

	seen := make(map[string]bool, len(split.Days))
	for _, day := range split.Days {
		assert.Falsef(t, seen[day.Title], "duplicate day title %q", day.Title)
		seen[day.Title] = true
	}
}

func TestSelectSplit_Deterministic(t *testing.T) {
	a, err := SelectSplit(5, 60, domain.GoalMuscleGain, domain.ExperienceAdvanced)
	require.NoError(t, err)
	b, err := SelectSplit(5, 60, domain.GoalMuscleGain, domain.ExperienceAdvanced)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
