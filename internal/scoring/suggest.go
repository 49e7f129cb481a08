package scoring

import (
	"github.com/jonathan/bachflower-advisor/internal/types"
)

// CalculateFlowerScores scores every remedy against the selected emotion groups
// and symptoms and partitions the results into priority tiers.
//
// A nil params uses DefaultParameters. Empty remedies, symptoms or selected
// symptoms yield an empty result. Unknown symptom ids never match. Inputs are
// not modified and every remedy appears in exactly one tier, in catalog order.
func CalculateFlowerScores(remedies []types.Remedy, symptoms []types.Symptom, selectedEmotionGroups []string, selectedSymptoms []string, params *types.ScoringParameters) *types.SuggestionResult {
	weights := DefaultParameters()
	if params != nil {
		weights = *params
	}

	if len(remedies) == 0 || len(symptoms) == 0 || len(selectedSymptoms) == 0 {
		return emptyResult()
	}

	index := indexSymptoms(symptoms)
	selected := toSet(selectedSymptoms)
	selectedGroups := toSet(selectedEmotionGroups)

	scored := make([]types.ScoredRemedy, 0, len(remedies))
	for i := range remedies {
		scored = append(scored, scoreRemedy(&remedies[i], selected, selectedGroups, index, weights))
	}

	return &types.SuggestionResult{
		PriorityGroups: groupByTier(scored),
		Statistics:     computeStatistics(scored, selectedEmotionGroups),
	}
}

// scoreRemedy computes the scored entry for a single remedy.
func scoreRemedy(remedy *types.Remedy, selected, selectedGroups map[string]bool, index map[string]types.Symptom, params types.ScoringParameters) types.ScoredRemedy {
	primary, secondary := matchRelations(remedy, selected, index, params.SecondaryWeight)

	return types.ScoredRemedy{
		Remedy: *remedy,
		Scores: computeScores(primary, secondary, selectedGroups, params),
		MatchedSymptoms: types.MatchedSymptoms{
			Primary:   primary,
			Secondary: secondary,
		},
	}
}

// groupByTier partitions scored remedies into the three tiers, keeping input order.
func groupByTier(scored []types.ScoredRemedy) types.PriorityGroups {
	groups := types.PriorityGroups{
		HighPriority:      make([]types.ScoredRemedy, 0),
		MediumPriority:    make([]types.ScoredRemedy, 0),
		AdditionalOptions: make([]types.ScoredRemedy, 0),
	}

	for _, s := range scored {
		switch classify(s.Scores) {
		case TierHighPriority:
			groups.HighPriority = append(groups.HighPriority, s)
		case TierMediumPriority:
			groups.MediumPriority = append(groups.MediumPriority, s)
		default:
			groups.AdditionalOptions = append(groups.AdditionalOptions, s)
		}
	}

	return groups
}

// computeStatistics summarises the scored remedies.
func computeStatistics(scored []types.ScoredRemedy, selectedEmotionGroups []string) types.Statistics {
	stats := types.Statistics{
		TotalMatches:     len(scored),
		CoveragePerGroup: make(map[string]int, len(selectedEmotionGroups)),
	}

	if len(scored) > 0 {
		sum := 0.0
		for _, s := range scored {
			sum += s.Scores.Total
		}
		stats.AverageScore = sum / float64(len(scored))
	}

	for _, group := range selectedEmotionGroups {
		count := 0
		for i := range scored {
			if matchesGroup(&scored[i].MatchedSymptoms, group) {
				count++
			}
		}
		stats.CoveragePerGroup[group] = count
	}

	return stats
}

func emptyResult() *types.SuggestionResult {
	return &types.SuggestionResult{
		PriorityGroups: types.PriorityGroups{
			HighPriority:      make([]types.ScoredRemedy, 0),
			MediumPriority:    make([]types.ScoredRemedy, 0),
			AdditionalOptions: make([]types.ScoredRemedy, 0),
		},
		Statistics: types.Statistics{
			CoveragePerGroup: make(map[string]int),
		},
	}
}
