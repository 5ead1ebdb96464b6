package generator

import (
	"strings"

	"fitforge/plan-generator/internal/domain"
)

// HealthTag is the closed vocabulary the constraint rules are keyed on.
// Free-text injury/medical/medication strings are mapped to these tags once
// at the pipeline boundary; nothing downstream ever looks at the raw text.
type HealthTag string

const (
	TagKneeInjury     HealthTag = "knee_injury"
	TagBackInjury     HealthTag = "back_injury"
	TagShoulderInjury HealthTag = "shoulder_injury"
	TagWristInjury    HealthTag = "wrist_injury"
	TagAnkleInjury    HealthTag = "ankle_injury"
	TagHipInjury      HealthTag = "hip_injury"
	TagNeckInjury     HealthTag = "neck_injury"
	TagHeartDisease   HealthTag = "heart_disease"
	TagHypertension   HealthTag = "hypertension"
	TagAsthma         HealthTag = "asthma"
	TagDiabetes       HealthTag = "diabetes"
	TagOsteoporosis   HealthTag = "osteoporosis"
	TagArthritis      HealthTag = "arthritis"
	TagHernia         HealthTag = "hernia"
	TagBetaBlocker    HealthTag = "beta_blocker"
	TagPregnancyT1    HealthTag = "pregnancy_t1"
	TagPregnancyT2    HealthTag = "pregnancy_t2"
	TagPregnancyT3    HealthTag = "pregnancy_t3"
	TagBreastfeeding  HealthTag = "breastfeeding"
)

// canonicalTagOrder fixes the order in which rules are reported, so warning
// lists come out identical for identical profiles regardless of how the
// caller ordered the free-text input.
var canonicalTagOrder = []HealthTag{
	TagKneeInjury, TagBackInjury, TagShoulderInjury, TagWristInjury,
	TagAnkleInjury, TagHipInjury, TagNeckInjury,
	TagHeartDisease, TagHypertension, TagAsthma, TagDiabetes,
	TagOsteoporosis, TagArthritis, TagHernia, TagBetaBlocker,
	TagPregnancyT1, TagPregnancyT2, TagPregnancyT3, TagBreastfeeding,
}

// keywordTags maps free-text fragments (injuries and medical conditions) to
// health tags. Matching is case-insensitive substring. Product-tuning table:
// extend it here, never add string matching elsewhere in the pipeline.
var keywordTags = []struct {
	keyword string
	tag     HealthTag
}{
	{"knee", TagKneeInjury},
	{"meniscus", TagKneeInjury},
	{"acl", TagKneeInjury},
	{"back", TagBackInjury},
	{"spine", TagBackInjury},
	{"disc", TagBackInjury},
	{"sciatica", TagBackInjury},
	{"lumbar", TagBackInjury},
	{"shoulder", TagShoulderInjury},
	{"rotator", TagShoulderInjury},
	{"wrist", TagWristInjury},
	{"carpal", TagWristInjury},
	{"ankle", TagAnkleInjury},
	{"achilles", TagAnkleInjury},
	{"hip", TagHipInjury},
	{"neck", TagNeckInjury},
	{"cervical", TagNeckInjury},
	{"heart", TagHeartDisease},
	{"cardiac", TagHeartDisease},
	{"coronary", TagHeartDisease},
	{"arrhythmia", TagHeartDisease},
	{"hypertension", TagHypertension},
	{"blood pressure", TagHypertension},
	{"asthma", TagAsthma},
	{"diabetes", TagDiabetes},
	{"diabetic", TagDiabetes},
	{"osteoporosis", TagOsteoporosis},
	{"osteopenia", TagOsteoporosis},
	{"arthritis", TagArthritis},
	{"hernia", TagHernia},
}

// medicationTags maps medication free text to health tags.
var medicationTags = []struct {
	keyword string
	tag     HealthTag
}{
	{"beta blocker", TagBetaBlocker},
	{"beta-blocker", TagBetaBlocker},
	{"metoprolol", TagBetaBlocker},
	{"atenolol", TagBetaBlocker},
	{"propranolol", TagBetaBlocker},
	{"bisoprolol", TagBetaBlocker},
}

// TagProfile maps the profile's free-text health input and structured flags
// to the closed tag set. Output order is canonical and duplicates are
// collapsed, so downstream accumulation is order-independent by
// construction.
func TagProfile(profile domain.UserProfile) []HealthTag {
	seen := make(map[HealthTag]struct{})

	match := func(texts []string, dict []struct {
		keyword string
		tag     HealthTag
	}) {
		for _, raw := range texts {
			text := strings.ToLower(raw)
			for _, kw := range dict {
				if strings.Contains(text, kw.keyword) {
					seen[kw.tag] = struct{}{}
				}
			}
		}
	}

	match(profile.Injuries, keywordTags)
	match(profile.MedicalConditions, keywordTags)
	match(profile.Medications, medicationTags)

	if profile.Pregnant {
		switch profile.PregnancyTrimester {
		case 1:
			seen[TagPregnancyT1] = struct{}{}
		case 2:
			seen[TagPregnancyT2] = struct{}{}
		case 3:
			seen[TagPregnancyT3] = struct{}{}
		}
	}
	if profile.Breastfeeding {
		seen[TagBreastfeeding] = struct{}{}
	}

	tags := make([]HealthTag, 0, len(seen))
	for _, tag := range canonicalTagOrder {
		if _, ok := seen[tag]; ok {
			tags = append(tags, tag)
		}
	}
	return tags
}
