// Package evaluation measures how well scoring parameter sets reproduce the
// expected tier placements of a collection of scenarios.
package evaluation

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jonathan/bachflower-advisor/internal/catalog"
	"github.com/jonathan/bachflower-advisor/internal/scoring"
	"github.com/jonathan/bachflower-advisor/internal/types"
	"golang.org/x/sync/errgroup"
)

// scoreTolerance is the maximum absolute difference for an expected score to match
const scoreTolerance = 0.01

// idealDistribution is the target share of remedies per tier used by the balance metric
var idealDistribution = map[scoring.Tier]float64{
	scoring.TierHighPriority:      0.4,
	scoring.TierMediumPriority:    0.3,
	scoring.TierAdditionalOptions: 0.3,
}

// Tester evaluates parameter sets against a fixed catalog and scenario list
type Tester struct {
	Catalog   *types.Catalog
	Scenarios []types.Scenario
}

// NewTester creates a Tester. A nil catalog is treated as empty.
func NewTester(cat *types.Catalog, scenarios []types.Scenario) *Tester {
	if cat == nil {
		cat = &types.Catalog{}
	}
	return &Tester{Catalog: cat, Scenarios: scenarios}
}

// Evaluate runs every scenario with the given parameters. Scenario selections
// are normalized the same way user selections are.
func (t *Tester) Evaluate(params types.ScoringParameters) *types.EvaluationReport {
	results := make([]types.ScenarioResult, 0, len(t.Scenarios))
	for _, scenario := range t.Scenarios {
		selection := catalog.NormalizeSelection(&types.Selection{
			EmotionGroups: scenario.EmotionGroups,
			Symptoms:      scenario.Symptoms,
		})
		result := scoring.CalculateFlowerScores(
			t.Catalog.Remedies,
			t.Catalog.Symptoms,
			selection.EmotionGroups,
			selection.Symptoms,
			&params,
		)

		results = append(results, types.ScenarioResult{
			Scenario: scenario.Name,
			Passed:   validateScenario(result, &scenario.Expected),
			Metrics: types.ScenarioMetrics{
				Accuracy: accuracy(result, &scenario.Expected),
				Coverage: coverage(result),
				Balance:  balance(result),
			},
		})
	}

	return &types.EvaluationReport{
		RunID:      uuid.New(),
		Parameters: params,
		Results:    results,
		Summary:    summarize(results),
	}
}

// Compare evaluates several named parameter sets concurrently. Reports are
// returned in the order of the input sets.
func (t *Tester) Compare(ctx context.Context, sets []types.NamedParameters) ([]*types.EvaluationReport, error) {
	reports := make([]*types.EvaluationReport, len(sets))

	g, gCtx := errgroup.WithContext(ctx)
	for i, set := range sets {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if err := scoring.ValidateParameters(set.Parameters); err != nil {
				return fmt.Errorf("parameter set %q: %w", set.Name, err)
			}
			report := t.Evaluate(set.Parameters)
			report.Name = set.Name
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// tiers returns the result tiers paired with the expected placements for each
func tiers(result *types.SuggestionResult, expected *types.ExpectedOutcome) []struct {
	actual   []types.ScoredRemedy
	expected []types.ExpectedPlacement
} {
	return []struct {
		actual   []types.ScoredRemedy
		expected []types.ExpectedPlacement
	}{
		{result.PriorityGroups.HighPriority, expected.HighPriority},
		{result.PriorityGroups.MediumPriority, expected.MediumPriority},
		{result.PriorityGroups.AdditionalOptions, expected.AdditionalOptions},
	}
}

// validateScenario checks each specified tier: it must have exactly the
// expected size and contain every expected remedy with matching scores.
func validateScenario(result *types.SuggestionResult, expected *types.ExpectedOutcome) bool {
	for _, tier := range tiers(result, expected) {
		if tier.expected == nil {
			continue
		}
		if len(tier.actual) != len(tier.expected) {
			return false
		}
		for _, placement := range tier.expected {
			if !containsPlacement(tier.actual, placement) {
				return false
			}
		}
	}
	return true
}

// accuracy is the share of expected placements found with matching scores.
// It is 1 when nothing is expected.
func accuracy(result *types.SuggestionResult, expected *types.ExpectedOutcome) float64 {
	total, correct := 0, 0
	for _, tier := range tiers(result, expected) {
		total += len(tier.expected)
		for _, placement := range tier.expected {
			if containsPlacement(tier.actual, placement) {
				correct++
			}
		}
	}
	if total == 0 {
		return 1
	}
	return float64(correct) / float64(total)
}

// coverage counts selected emotion groups that at least one remedy matched
func coverage(result *types.SuggestionResult) int {
	covered := 0
	for _, count := range result.Statistics.CoveragePerGroup {
		if count > 0 {
			covered++
		}
	}
	return covered
}

// balance compares the tier distribution with idealDistribution. It is 1 for
// a perfect match or an empty result and 0 for the worst case.
func balance(result *types.SuggestionResult) float64 {
	total := result.PriorityGroups.Len()
	if total == 0 {
		return 1
	}

	shares := map[scoring.Tier]float64{
		scoring.TierHighPriority:      float64(len(result.PriorityGroups.HighPriority)) / float64(total),
		scoring.TierMediumPriority:    float64(len(result.PriorityGroups.MediumPriority)) / float64(total),
		scoring.TierAdditionalOptions: float64(len(result.PriorityGroups.AdditionalOptions)) / float64(total),
	}

	distance := 0.0
	for tier, ideal := range idealDistribution {
		distance += math.Abs(shares[tier] - ideal)
	}
	return 1 - distance/2
}

func containsPlacement(actual []types.ScoredRemedy, placement types.ExpectedPlacement) bool {
	for _, s := range actual {
		if s.Remedy.ID == placement.RemedyID {
			return scoresMatch(s.Scores, placement.Scores)
		}
	}
	return false
}

// scoresMatch compares the named expected components; unknown names never match
func scoresMatch(actual types.ScoreBreakdown, expected map[string]float64) bool {
	for name, want := range expected {
		got, ok := component(actual, name)
		if !ok || math.Abs(got-want) >= scoreTolerance {
			return false
		}
	}
	return true
}

func component(scores types.ScoreBreakdown, name string) (float64, bool) {
	switch name {
	case "primary_symptom_match":
		return scores.PrimarySymptomMatch, true
	case "secondary_symptom_match":
		return scores.SecondarySymptomMatch, true
	case "emotional_group_match":
		return scores.EmotionalGroupMatch, true
	case "symptom_group_coverage":
		return scores.SymptomGroupCoverage, true
	case "total":
		return scores.Total, true
	default:
		return 0, false
	}
}

func summarize(results []types.ScenarioResult) types.EvaluationSummary {
	summary := types.EvaluationSummary{
		TotalScenarios:  len(results),
		FailedScenarios: make([]string, 0),
	}
	if len(results) == 0 {
		return summary
	}

	var accuracySum, coverageSum, balanceSum float64
	for _, r := range results {
		if r.Passed {
			summary.PassedScenarios++
		} else {
			summary.FailedScenarios = append(summary.FailedScenarios, r.Scenario)
		}
		accuracySum += r.Metrics.Accuracy
		coverageSum += float64(r.Metrics.Coverage)
		balanceSum += r.Metrics.Balance
	}

	n := float64(len(results))
	summary.AverageAccuracy = accuracySum / n
	summary.AverageCoverage = coverageSum / n
	summary.AverageBalance = balanceSum / n
	return summary
}
