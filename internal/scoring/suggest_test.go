package scoring

import (
	"testing"

	"github.com/jonathan/bachflower-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFlowerScores_AllMatchesHighPriority(t *testing.T) {
	result := CalculateFlowerScores(
		[]types.Remedy{aspen()},
		testSymptoms(),
		[]string{groupFears},
		[]string{"vague_anxiety", "worry_for_others", "nervousness"},
		nil,
	)

	require.Len(t, result.PriorityGroups.HighPriority, 1)
	assert.Empty(t, result.PriorityGroups.MediumPriority)
	assert.Empty(t, result.PriorityGroups.AdditionalOptions)

	scores := result.PriorityGroups.HighPriority[0].Scores
	assert.InDelta(t, 6.0, scores.PrimarySymptomMatch, 1e-9)
	assert.InDelta(t, 0.6, scores.SecondarySymptomMatch, 1e-9)
	assert.InDelta(t, 2.0, scores.EmotionalGroupMatch, 1e-9)
	assert.InDelta(t, 1.0, scores.SymptomGroupCoverage, 1e-9)
	assert.InDelta(t, 9.6, scores.Total, 1e-9)

	matched := result.PriorityGroups.HighPriority[0].MatchedSymptoms
	require.Len(t, matched.Primary, 2)
	assert.Equal(t, "vague_anxiety", matched.Primary[0].ID)
	assert.Equal(t, "worry_for_others", matched.Primary[1].ID)
	require.Len(t, matched.Secondary, 1)
	assert.Equal(t, "nervousness", matched.Secondary[0].Symptom.ID)
	assert.InDelta(t, DefaultSecondaryWeight, matched.Secondary[0].Weight, 1e-9)
}

func TestCalculateFlowerScores_SecondaryOnlyMatch(t *testing.T) {
	result := CalculateFlowerScores(
		[]types.Remedy{aspen()},
		testSymptoms(),
		[]string{groupFears},
		[]string{"nervousness"},
		nil,
	)

	scored, tier, found := findScored(result, "aspen")
	require.True(t, found)
	assert.Equal(t, TierAdditionalOptions, tier)
	assert.Equal(t, 0.0, scored.Scores.PrimarySymptomMatch)
	assert.InDelta(t, 0.6, scored.Scores.SecondarySymptomMatch, 1e-9)
	assert.InDelta(t, 2.0, scored.Scores.EmotionalGroupMatch, 1e-9)
	assert.InDelta(t, 1.0, scored.Scores.SymptomGroupCoverage, 1e-9)
	assert.InDelta(t, 3.6, scored.Scores.Total, 1e-9)
}

func TestCalculateFlowerScores_NoSelectedGroupsStillCountsCoverage(t *testing.T) {
	result := CalculateFlowerScores(
		[]types.Remedy{aspen()},
		testSymptoms(),
		[]string{},
		[]string{"vague_anxiety"},
		nil,
	)

	scored, tier, found := findScored(result, "aspen")
	require.True(t, found)
	assert.Equal(t, TierAdditionalOptions, tier)
	assert.InDelta(t, 3.0, scored.Scores.PrimarySymptomMatch, 1e-9)
	assert.Equal(t, 0.0, scored.Scores.EmotionalGroupMatch)
	assert.InDelta(t, 1.0, scored.Scores.SymptomGroupCoverage, 1e-9)
	assert.InDelta(t, 4.0, scored.Scores.Total, 1e-9)
	assert.Empty(t, result.Statistics.CoveragePerGroup)
}

func TestCalculateFlowerScores_EmptyInputs(t *testing.T) {
	expected := &types.SuggestionResult{
		PriorityGroups: types.PriorityGroups{
			HighPriority:      []types.ScoredRemedy{},
			MediumPriority:    []types.ScoredRemedy{},
			AdditionalOptions: []types.ScoredRemedy{},
		},
		Statistics: types.Statistics{
			TotalMatches:     0,
			AverageScore:     0,
			CoveragePerGroup: map[string]int{},
		},
	}

	tests := []struct {
		name     string
		remedies []types.Remedy
		symptoms []types.Symptom
		selected []string
	}{
		{"no selected symptoms", testRemedies(), testSymptoms(), []string{}},
		{"nil selected symptoms", testRemedies(), testSymptoms(), nil},
		{"no remedies", nil, testSymptoms(), []string{"vague_anxiety"}},
		{"no symptoms", testRemedies(), nil, []string{"vague_anxiety"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateFlowerScores(tt.remedies, tt.symptoms, []string{groupFears}, tt.selected, nil)
			assert.Equal(t, expected, result)
		})
	}
}

func TestCalculateFlowerScores_MultipleGroups(t *testing.T) {
	result := CalculateFlowerScores(
		testRemedies(),
		testSymptoms(),
		[]string{groupFears, groupUncertainty},
		[]string{"vague_anxiety", "nervousness", "indecision"},
		nil,
	)

	aspenScore, tier, _ := findScored(result, "aspen")
	assert.Equal(t, TierMediumPriority, tier)
	assert.InDelta(t, 6.6, aspenScore.Scores.Total, 1e-9)

	mimulusScore, tier, _ := findScored(result, "mimulus")
	assert.Equal(t, TierAdditionalOptions, tier)
	assert.InDelta(t, 3.6, mimulusScore.Scores.Total, 1e-9)

	scleranthusScore, tier, _ := findScored(result, "scleranthus")
	assert.Equal(t, TierHighPriority, tier)
	assert.InDelta(t, 4.0, scleranthusScore.Scores.EmotionalGroupMatch, 1e-9)
	assert.InDelta(t, 2.0, scleranthusScore.Scores.SymptomGroupCoverage, 1e-9)
	assert.InDelta(t, 9.6, scleranthusScore.Scores.Total, 1e-9)

	waterViolet, tier, _ := findScored(result, "water_violet")
	assert.Equal(t, TierAdditionalOptions, tier)
	assert.Equal(t, 0.0, waterViolet.Scores.Total)
	assert.Empty(t, waterViolet.MatchedSymptoms.Primary)
	assert.Empty(t, waterViolet.MatchedSymptoms.Secondary)

	assert.Equal(t, 4, result.Statistics.TotalMatches)
	assert.InDelta(t, 4.95, result.Statistics.AverageScore, 1e-9)
	assert.Equal(t, map[string]int{groupFears: 3, groupUncertainty: 1}, result.Statistics.CoveragePerGroup)
}

func TestCalculateFlowerScores_CoverageCountsUnselectedGroups(t *testing.T) {
	result := CalculateFlowerScores(
		testRemedies(),
		testSymptoms(),
		[]string{groupFears},
		[]string{"indecision"},
		nil,
	)

	scored, _, found := findScored(result, "scleranthus")
	require.True(t, found)
	assert.Equal(t, 0.0, scored.Scores.EmotionalGroupMatch)
	assert.InDelta(t, 1.0, scored.Scores.SymptomGroupCoverage, 1e-9)
	assert.Equal(t, map[string]int{groupFears: 0}, result.Statistics.CoveragePerGroup)
}

func TestCalculateFlowerScores_TiersAreExhaustive(t *testing.T) {
	remedies := testRemedies()
	selections := [][]string{
		{"vague_anxiety"},
		{"nervousness"},
		{"vague_anxiety", "worry_for_others", "nervousness", "indecision", "isolation"},
		{"unknown_symptom"},
	}

	for _, selected := range selections {
		result := CalculateFlowerScores(remedies, testSymptoms(), []string{groupFears}, selected, nil)

		assert.Equal(t, len(remedies), result.PriorityGroups.Len())
		assert.Equal(t, len(remedies), result.Statistics.TotalMatches)

		seen := make(map[string]int)
		for _, s := range result.PriorityGroups.HighPriority {
			seen[s.Remedy.ID]++
			assert.GreaterOrEqual(t, s.Scores.Total, HighPriorityThreshold)
			assert.Greater(t, s.Scores.PrimarySymptomMatch, 0.0)
		}
		for _, s := range result.PriorityGroups.MediumPriority {
			seen[s.Remedy.ID]++
			assert.GreaterOrEqual(t, s.Scores.Total, MediumPriorityThreshold)
			assert.Less(t, s.Scores.Total, HighPriorityThreshold)
		}
		for _, s := range result.PriorityGroups.AdditionalOptions {
			seen[s.Remedy.ID]++
		}
		for _, r := range remedies {
			assert.Equal(t, 1, seen[r.ID], "remedy %s should appear in exactly one tier", r.ID)
		}
	}
}

func TestCalculateFlowerScores_HighTotalWithoutPrimaryIsNotHighPriority(t *testing.T) {
	params := DefaultParameters()
	params.SecondaryWeight = 7.0

	result := CalculateFlowerScores(
		[]types.Remedy{aspen()},
		testSymptoms(),
		[]string{groupFears},
		[]string{"nervousness"},
		&params,
	)

	assert.Empty(t, result.PriorityGroups.HighPriority)
	assert.Empty(t, result.PriorityGroups.MediumPriority)
	require.Len(t, result.PriorityGroups.AdditionalOptions, 1)

	scores := result.PriorityGroups.AdditionalOptions[0].Scores
	assert.InDelta(t, 10.0, scores.Total, 1e-9)
	assert.Equal(t, 0.0, scores.PrimarySymptomMatch)
}

func TestCalculateFlowerScores_PrimaryWeightIsLinear(t *testing.T) {
	selected := []string{"vague_anxiety", "worry_for_others", "nervousness", "indecision"}
	groups := []string{groupFears}

	base := DefaultParameters()
	doubled := DefaultParameters()
	doubled.PrimaryWeight = base.PrimaryWeight * 2

	baseResult := CalculateFlowerScores(testRemedies(), testSymptoms(), groups, selected, &base)
	doubledResult := CalculateFlowerScores(testRemedies(), testSymptoms(), groups, selected, &doubled)

	for _, r := range testRemedies() {
		b, _, ok := findScored(baseResult, r.ID)
		require.True(t, ok)
		d, _, ok := findScored(doubledResult, r.ID)
		require.True(t, ok)

		assert.InDelta(t, 2*b.Scores.PrimarySymptomMatch, d.Scores.PrimarySymptomMatch, 1e-9)
		assert.Equal(t, b.Scores.SecondarySymptomMatch, d.Scores.SecondarySymptomMatch)
		assert.Equal(t, b.Scores.EmotionalGroupMatch, d.Scores.EmotionalGroupMatch)
		assert.Equal(t, b.Scores.SymptomGroupCoverage, d.Scores.SymptomGroupCoverage)
	}
}

func TestCalculateFlowerScores_Deterministic(t *testing.T) {
	selected := []string{"vague_anxiety", "nervousness", "indecision"}
	groups := []string{groupFears, groupUncertainty}

	first := CalculateFlowerScores(testRemedies(), testSymptoms(), groups, selected, nil)
	second := CalculateFlowerScores(testRemedies(), testSymptoms(), groups, selected, nil)

	assert.Equal(t, first, second)
}

func TestCalculateFlowerScores_DoesNotMutateInputs(t *testing.T) {
	remedies := testRemedies()
	symptoms := testSymptoms()
	groups := []string{groupFears}
	selected := []string{"vague_anxiety", "nervousness"}

	_ = CalculateFlowerScores(remedies, symptoms, groups, selected, nil)

	assert.Equal(t, testRemedies(), remedies)
	assert.Equal(t, testSymptoms(), symptoms)
	assert.Equal(t, []string{groupFears}, groups)
	assert.Equal(t, []string{"vague_anxiety", "nervousness"}, selected)
}

func TestCalculateFlowerScores_UnknownIdsAndMissingRelations(t *testing.T) {
	remedies := []types.Remedy{
		{ID: "no_relations"},
		{
			ID: "dangling",
			SymptomRelations: []types.SymptomRelation{
				{SymptomID: "not_in_catalog", IsPrimary: true},
			},
		},
	}

	result := CalculateFlowerScores(remedies, testSymptoms(), []string{groupFears}, []string{"not_in_catalog", "ghost"}, nil)

	require.Len(t, result.PriorityGroups.AdditionalOptions, 2)
	for _, s := range result.PriorityGroups.AdditionalOptions {
		assert.Equal(t, 0.0, s.Scores.Total)
	}
	assert.Equal(t, 0.0, result.Statistics.AverageScore)
}

func TestCalculateFlowerScores_DuplicateRelationsCountTwice(t *testing.T) {
	remedy := types.Remedy{
		ID: "duplicated",
		SymptomRelations: []types.SymptomRelation{
			{SymptomID: "vague_anxiety", IsPrimary: true},
			{SymptomID: "vague_anxiety", IsPrimary: true},
		},
	}

	result := CalculateFlowerScores([]types.Remedy{remedy}, testSymptoms(), nil, []string{"vague_anxiety"}, nil)

	scored, _, found := findScored(result, "duplicated")
	require.True(t, found)
	assert.InDelta(t, 6.0, scored.Scores.PrimarySymptomMatch, 1e-9)
	assert.InDelta(t, 1.0, scored.Scores.SymptomGroupCoverage, 1e-9)
}

func TestCalculateFlowerScores_PreservesCatalogOrderWithinTier(t *testing.T) {
	result := CalculateFlowerScores(testRemedies(), testSymptoms(), nil, []string{"isolation"}, nil)

	ids := make([]string, 0)
	for _, s := range result.PriorityGroups.AdditionalOptions {
		ids = append(ids, s.Remedy.ID)
	}
	assert.Equal(t, []string{"aspen", "mimulus", "scleranthus", "water_violet"}, ids)
}
