package types

// ScoringParameters are the weights applied to each score component.
// All weights are plain multipliers and must be non-negative.
type ScoringParameters struct {
	PrimaryWeight        float64 `json:"primary_weight" validate:"gte=0"`
	SecondaryWeight      float64 `json:"secondary_weight" validate:"gte=0"`
	EmotionalGroupWeight float64 `json:"emotional_group_weight" validate:"gte=0"`
	CoverageWeight       float64 `json:"coverage_weight" validate:"gte=0"`
}

// ScoreBreakdown holds the individual score components of a remedy.
// Total is always the sum of the four components.
type ScoreBreakdown struct {
	PrimarySymptomMatch   float64 `json:"primary_symptom_match"`
	SecondarySymptomMatch float64 `json:"secondary_symptom_match"`
	EmotionalGroupMatch   float64 `json:"emotional_group_match"`
	SymptomGroupCoverage  float64 `json:"symptom_group_coverage"`
	Total                 float64 `json:"total"`
}

// WeightedSymptom is a secondary symptom match together with the weight it contributed
type WeightedSymptom struct {
	Symptom Symptom `json:"symptom"`
	Weight  float64 `json:"weight"`
}

// MatchedSymptoms partitions the symptoms a remedy matched by relation strength
type MatchedSymptoms struct {
	Primary   []Symptom         `json:"primary"`
	Secondary []WeightedSymptom `json:"secondary"`
}

// ScoredRemedy is a remedy with its score breakdown and the symptoms that produced it
type ScoredRemedy struct {
	Remedy          Remedy          `json:"remedy"`
	Scores          ScoreBreakdown  `json:"scores"`
	MatchedSymptoms MatchedSymptoms `json:"matched_symptoms"`
}

// PriorityGroups holds the three disjoint suggestion tiers
type PriorityGroups struct {
	HighPriority      []ScoredRemedy `json:"high_priority"`
	MediumPriority    []ScoredRemedy `json:"medium_priority"`
	AdditionalOptions []ScoredRemedy `json:"additional_options"`
}

// Len returns the number of remedies across all tiers.
func (g PriorityGroups) Len() int {
	return len(g.HighPriority) + len(g.MediumPriority) + len(g.AdditionalOptions)
}

// Statistics summarises a scoring run
type Statistics struct {
	TotalMatches     int            `json:"total_matches"`
	AverageScore     float64        `json:"average_score"`
	CoveragePerGroup map[string]int `json:"coverage_per_group"`
}

// SuggestionResult is the output of the scoring engine
type SuggestionResult struct {
	PriorityGroups PriorityGroups `json:"priority_groups"`
	Statistics     Statistics     `json:"statistics"`
}

// RankedRemedy is a single entry of a flattened, ranked suggestion list
type RankedRemedy struct {
	Rank            int             `json:"rank"`
	Tier            string          `json:"tier"`
	Remedy          Remedy          `json:"remedy"`
	Scores          ScoreBreakdown  `json:"scores"`
	MatchedSymptoms MatchedSymptoms `json:"matched_symptoms"`
	Notes           string          `json:"notes"`
}

// RankedSuggestions represents a ranked list of remedy suggestions
type RankedSuggestions struct {
	Ranked     []RankedRemedy `json:"ranked"`
	Statistics Statistics     `json:"statistics"`
}
