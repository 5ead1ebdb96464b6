package generator

import (
	"testing"

	"fitforge/plan-generator/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTagProfile_KeywordMatching(t *testing.T) {
	tests := []struct {
		name    string
		profile domain.UserProfile
		want    []HealthTag
	}{
		{
			name:    "no health input yields no tags",
			profile: domain.UserProfile{},
			want:    []HealthTag{},
		},
		{
			name:    "knee injury",
			profile: domain.UserProfile{Injuries: []string{"right knee pain"}},
			want:    []HealthTag{TagKneeInjury},
		},
		{
			name:    "matching is case-insensitive",
			profile: domain.UserProfile{Injuries: []string{"KNEE Tendonitis"}},
			want:    []HealthTag{TagKneeInjury},
		},
		{
			name:    "lower back pain maps to back injury",
			profile: domain.UserProfile{Injuries: []string{"lower back pain"}},
			want:    []HealthTag{TagBackInjury},
		},
		{
			name:    "multiple keywords for the same tag collapse",
			profile: domain.UserProfile{Injuries: []string{"knee pain", "torn meniscus"}},
			want:    []HealthTag{TagKneeInjury},
		},
		{
			name: "conditions and medications combine",
			profile: domain.UserProfile{
				MedicalConditions: []string{"coronary heart disease"},
				Medications:       []string{"Metoprolol 50mg"},
			},
			want: []HealthTag{TagHeartDisease, TagBetaBlocker},
		},
		{
			name:    "unknown text adds no constraint",
			profile: domain.UserProfile{Injuries: []string{"stubbed toe"}},
			want:    []HealthTag{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TagProfile(tt.profile)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestTagProfile_CanonicalOrder(t *testing.T) {
	a := TagProfile(domain.UserProfile{Injuries: []string{"bad shoulder", "knee pain", "herniated disc"}})
	b := TagProfile(domain.UserProfile{Injuries: []string{"herniated disc", "bad shoulder", "knee pain"}})
	assert.Equal(t, a, b, "tag order must not depend on input order")
	assert.Equal(t, []HealthTag{TagKneeInjury, TagBackInjury, TagShoulderInjury}, a)
}

func TestTagProfile_PregnancyAndBreastfeeding(t *testing.T) {
	for trimester, want := range map[int]HealthTag{1: TagPregnancyT1, 2: TagPregnancyT2, 3: TagPregnancyT3} {
		got := TagProfile(domain.UserProfile{Pregnant: true, PregnancyTrimester: trimester})
		assert.Equal(t, []HealthTag{want}, got, "trimester %d", trimester)
	}

	got := TagProfile(domain.UserProfile{Breastfeeding: true})
	assert.Equal(t, []HealthTag{TagBreastfeeding}, got)

	// Trimester without the pregnancy flag is ignored.
	got = TagProfile(domain.UserProfile{PregnancyTrimester: 3})
	assert.Empty(t, got)
}

func TestTagRules_EveryTagHasARule(t *testing.T) {
	for _, tag := range canonicalTagOrder {
		_, ok := tagRules[tag]
		assert.True(t, ok, "tag %q has no constraint rule", tag)
	}
}
