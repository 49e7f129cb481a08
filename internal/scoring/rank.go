package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/bachflower-advisor/internal/types"
)

// RankOptions controls how a suggestion result is flattened into a ranked list
type RankOptions struct {
	// HideUnmatched drops remedies with a zero total
	HideUnmatched bool
	// Limit caps the number of entries; zero or negative means no limit
	Limit int
}

type tieredRemedy struct {
	tier   Tier
	scored types.ScoredRemedy
}

// RankSuggestions flattens the tiers of a result into a single list ordered by
// total score, then symptom group coverage, then primary match, all descending.
// Remaining ties keep tier order and catalog order.
func RankSuggestions(result *types.SuggestionResult, opts RankOptions) *types.RankedSuggestions {
	if result == nil {
		result = emptyResult()
	}

	entries := make([]tieredRemedy, 0, result.PriorityGroups.Len())
	collect := func(tier Tier, scored []types.ScoredRemedy) {
		for _, s := range scored {
			if opts.HideUnmatched && s.Scores.Total <= 0 {
				continue
			}
			entries = append(entries, tieredRemedy{tier: tier, scored: s})
		}
	}
	collect(TierHighPriority, result.PriorityGroups.HighPriority)
	collect(TierMediumPriority, result.PriorityGroups.MediumPriority)
	collect(TierAdditionalOptions, result.PriorityGroups.AdditionalOptions)

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].scored.Scores, entries[j].scored.Scores
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		if a.SymptomGroupCoverage != b.SymptomGroupCoverage {
			return a.SymptomGroupCoverage > b.SymptomGroupCoverage
		}
		return a.PrimarySymptomMatch > b.PrimarySymptomMatch
	})

	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}

	ranked := make([]types.RankedRemedy, 0, len(entries))
	for i, e := range entries {
		ranked = append(ranked, types.RankedRemedy{
			Rank:            i + 1,
			Tier:            string(e.tier),
			Remedy:          e.scored.Remedy,
			Scores:          e.scored.Scores,
			MatchedSymptoms: e.scored.MatchedSymptoms,
			Notes:           GenerateNotes(&e.scored),
		})
	}

	return &types.RankedSuggestions{
		Ranked:     ranked,
		Statistics: result.Statistics,
	}
}

// GenerateNotes creates a brief explanation of a remedy's score.
func GenerateNotes(scored *types.ScoredRemedy) string {
	var parts []string

	primary := scored.MatchedSymptoms.Primary
	secondary := scored.MatchedSymptoms.Secondary

	if len(primary) > 0 {
		parts = append(parts, fmt.Sprintf("Primary indication for %s", joinSymptomNames(primary)))
	}
	if len(secondary) > 0 {
		names := make([]types.Symptom, 0, len(secondary))
		for _, m := range secondary {
			names = append(names, m.Symptom)
		}
		parts = append(parts, fmt.Sprintf("Supporting indication for %s", joinSymptomNames(names)))
	}
	if len(parts) == 0 {
		return "No symptom matches"
	}

	groups := matchedEmotionGroups(primary, secondary)
	if len(groups) == 1 {
		parts = append(parts, fmt.Sprintf("Covers emotion group %s", groups[0]))
	} else {
		parts = append(parts, fmt.Sprintf("Covers %d emotion groups (%s)", len(groups), strings.Join(groups, ", ")))
	}

	return strings.Join(parts, ". ")
}

func joinSymptomNames(symptoms []types.Symptom) string {
	names := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		if s.Name != "" {
			names = append(names, s.Name)
		} else {
			names = append(names, s.ID)
		}
	}
	return strings.Join(names, ", ")
}
