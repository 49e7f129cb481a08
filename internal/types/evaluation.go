package types

import "github.com/google/uuid"

// Scenario is a selection with the tier placements it is expected to produce
type Scenario struct {
	Name          string          `json:"name"`
	EmotionGroups []string        `json:"emotion_groups"`
	Symptoms      []string        `json:"symptoms"`
	Expected      ExpectedOutcome `json:"expected"`
}

// ExpectedOutcome lists expected placements per tier. A nil tier is not checked.
type ExpectedOutcome struct {
	HighPriority      []ExpectedPlacement `json:"high_priority,omitempty"`
	MediumPriority    []ExpectedPlacement `json:"medium_priority,omitempty"`
	AdditionalOptions []ExpectedPlacement `json:"additional_options,omitempty"`
}

// ExpectedPlacement names a remedy and the score components it should have.
// Score keys use the ScoreBreakdown JSON names, e.g. "primary_symptom_match".
type ExpectedPlacement struct {
	RemedyID string             `json:"remedy_id"`
	Scores   map[string]float64 `json:"scores,omitempty"`
}

// NamedParameters is a labelled parameter set to evaluate
type NamedParameters struct {
	Name       string            `json:"name" validate:"required"`
	Parameters ScoringParameters `json:"parameters"`
}

// ScenarioMetrics holds quality metrics of a single scenario run
type ScenarioMetrics struct {
	Accuracy float64 `json:"accuracy"`
	Coverage int     `json:"coverage"`
	Balance  float64 `json:"balance"`
}

// ScenarioResult is the outcome of one scenario under one parameter set
type ScenarioResult struct {
	Scenario string          `json:"scenario"`
	Passed   bool            `json:"passed"`
	Metrics  ScenarioMetrics `json:"metrics"`
}

// EvaluationSummary aggregates scenario results
type EvaluationSummary struct {
	TotalScenarios  int      `json:"total_scenarios"`
	PassedScenarios int      `json:"passed_scenarios"`
	AverageAccuracy float64  `json:"average_accuracy"`
	AverageCoverage float64  `json:"average_coverage"`
	AverageBalance  float64  `json:"average_balance"`
	FailedScenarios []string `json:"failed_scenarios"`
}

// EvaluationReport is the evaluation of one parameter set against all scenarios
type EvaluationReport struct {
	RunID      uuid.UUID         `json:"run_id"`
	Name       string            `json:"name,omitempty"`
	Parameters ScoringParameters `json:"parameters"`
	Results    []ScenarioResult  `json:"results"`
	Summary    EvaluationSummary `json:"summary"`
}
