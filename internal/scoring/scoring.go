package scoring

import (
	"github.com/jonathan/bachflower-advisor/internal/types"
)

// indexSymptoms maps symptom ids to symptoms. When an id occurs twice the first
// occurrence wins.
func indexSymptoms(symptoms []types.Symptom) map[string]types.Symptom {
	index := make(map[string]types.Symptom, len(symptoms))
	for _, symptom := range symptoms {
		if _, exists := index[symptom.ID]; !exists {
			index[symptom.ID] = symptom
		}
	}
	return index
}

// toSet builds a lookup set from a list of strings.
func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// matchRelations finds the remedy's relations whose symptom is selected and known.
// Relations are kept in catalog order; duplicates are counted as often as they occur.
func matchRelations(remedy *types.Remedy, selected map[string]bool, index map[string]types.Symptom, secondaryWeight float64) ([]types.Symptom, []types.WeightedSymptom) {
	primary := make([]types.Symptom, 0)
	secondary := make([]types.WeightedSymptom, 0)

	for _, rel := range remedy.SymptomRelations {
		if !selected[rel.SymptomID] {
			continue
		}
		symptom, found := index[rel.SymptomID]
		if !found {
			continue
		}
		if rel.IsPrimary {
			primary = append(primary, symptom)
		} else {
			secondary = append(secondary, types.WeightedSymptom{
				Symptom: symptom,
				Weight:  secondaryWeight,
			})
		}
	}

	return primary, secondary
}

// matchedEmotionGroups returns the distinct emotion categories of all matched
// symptoms, in order of first appearance.
func matchedEmotionGroups(primary []types.Symptom, secondary []types.WeightedSymptom) []string {
	seen := make(map[string]bool)
	groups := make([]string, 0)

	add := func(category string) {
		if !seen[category] {
			seen[category] = true
			groups = append(groups, category)
		}
	}
	for _, s := range primary {
		add(s.EmotionCategory)
	}
	for _, m := range secondary {
		add(m.Symptom.EmotionCategory)
	}

	return groups
}

// computeScores calculates the score breakdown for one remedy's matches.
// Coverage counts every matched group, selected or not.
func computeScores(primary []types.Symptom, secondary []types.WeightedSymptom, selectedGroups map[string]bool, params types.ScoringParameters) types.ScoreBreakdown {
	primaryScore := float64(len(primary)) * params.PrimaryWeight

	secondaryScore := 0.0
	for _, m := range secondary {
		secondaryScore += m.Weight
	}

	groups := matchedEmotionGroups(primary, secondary)
	selectedMatches := 0
	for _, group := range groups {
		if selectedGroups[group] {
			selectedMatches++
		}
	}
	emotionalScore := float64(selectedMatches) * params.EmotionalGroupWeight
	coverageScore := float64(len(groups)) * params.CoverageWeight

	return types.ScoreBreakdown{
		PrimarySymptomMatch:   primaryScore,
		SecondarySymptomMatch: secondaryScore,
		EmotionalGroupMatch:   emotionalScore,
		SymptomGroupCoverage:  coverageScore,
		Total:                 primaryScore + secondaryScore + emotionalScore + coverageScore,
	}
}

// classify assigns a score breakdown to its priority tier.
// A high total without any primary match is not eligible for the top tier and
// falls through to additional options.
func classify(scores types.ScoreBreakdown) Tier {
	switch {
	case scores.Total >= HighPriorityThreshold && scores.PrimarySymptomMatch > 0:
		return TierHighPriority
	case scores.Total >= MediumPriorityThreshold && scores.Total < HighPriorityThreshold:
		return TierMediumPriority
	default:
		return TierAdditionalOptions
	}
}

// matchesGroup reports whether any matched symptom belongs to the given category.
func matchesGroup(matched *types.MatchedSymptoms, group string) bool {
	for _, s := range matched.Primary {
		if s.EmotionCategory == group {
			return true
		}
	}
	for _, m := range matched.Secondary {
		if m.Symptom.EmotionCategory == group {
			return true
		}
	}
	return false
}
