package scoring

import "github.com/jonathan/bachflower-advisor/internal/types"

const (
	groupFears       = "Fears"
	groupUncertainty = "Uncertainty"
	groupLoneliness  = "Loneliness"
)

func testSymptoms() []types.Symptom {
	return []types.Symptom{
		{ID: "vague_anxiety", Name: "Vague anxiety", EmotionCategory: groupFears},
		{ID: "worry_for_others", Name: "Worry for others", EmotionCategory: groupFears},
		{ID: "nervousness", Name: "Nervousness", EmotionCategory: groupFears},
		{ID: "known_fears", Name: "Known fears", EmotionCategory: groupFears},
		{ID: "indecision", Name: "Indecision", EmotionCategory: groupUncertainty},
		{ID: "self_doubt", Name: "Self doubt", EmotionCategory: groupUncertainty},
		{ID: "isolation", Name: "Isolation", EmotionCategory: groupLoneliness},
	}
}

func aspen() types.Remedy {
	return types.Remedy{
		ID:          "aspen",
		NameGerman:  "Espe",
		NameEnglish: "Aspen",
		SymptomRelations: []types.SymptomRelation{
			{SymptomID: "vague_anxiety", IsPrimary: true},
			{SymptomID: "worry_for_others", IsPrimary: true},
			{SymptomID: "nervousness", IsPrimary: false},
		},
	}
}

func testRemedies() []types.Remedy {
	return []types.Remedy{
		aspen(),
		{
			ID:          "mimulus",
			NameEnglish: "Mimulus",
			SymptomRelations: []types.SymptomRelation{
				{SymptomID: "known_fears", IsPrimary: true},
				{SymptomID: "nervousness", IsPrimary: false},
			},
		},
		{
			ID:          "scleranthus",
			NameEnglish: "Scleranthus",
			SymptomRelations: []types.SymptomRelation{
				{SymptomID: "indecision", IsPrimary: true},
				{SymptomID: "self_doubt", IsPrimary: false},
				{SymptomID: "nervousness", IsPrimary: false},
			},
		},
		{
			ID:          "water_violet",
			NameEnglish: "Water Violet",
			SymptomRelations: []types.SymptomRelation{
				{SymptomID: "isolation", IsPrimary: true},
			},
		},
	}
}

// findScored returns the scored entry for a remedy id from any tier
func findScored(result *types.SuggestionResult, id string) (types.ScoredRemedy, Tier, bool) {
	tiers := []struct {
		tier   Tier
		scored []types.ScoredRemedy
	}{
		{TierHighPriority, result.PriorityGroups.HighPriority},
		{TierMediumPriority, result.PriorityGroups.MediumPriority},
		{TierAdditionalOptions, result.PriorityGroups.AdditionalOptions},
	}
	for _, t := range tiers {
		for _, s := range t.scored {
			if s.Remedy.ID == id {
				return s, t.tier, true
			}
		}
	}
	return types.ScoredRemedy{}, "", false
}
