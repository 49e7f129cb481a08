// Package scoring computes tiered Bach flower remedy suggestions from a user's
// selected emotion categories and symptoms.
package scoring

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/bachflower-advisor/internal/types"
)

// Default weights for scoring components
const (
	DefaultPrimaryWeight        = 3.0
	DefaultSecondaryWeight      = 0.6
	DefaultEmotionalGroupWeight = 2.0
	DefaultCoverageWeight       = 1.0
)

// Tier thresholds on the total score
const (
	HighPriorityThreshold   = 8.0
	MediumPriorityThreshold = 5.0
)

// Tier names a priority bucket
type Tier string

// Priority tiers, ordered from strongest to weakest
const (
	TierHighPriority      Tier = "high_priority"
	TierMediumPriority    Tier = "medium_priority"
	TierAdditionalOptions Tier = "additional_options"
)

// DefaultParameters returns the default scoring weights.
func DefaultParameters() types.ScoringParameters {
	return types.ScoringParameters{
		PrimaryWeight:        DefaultPrimaryWeight,
		SecondaryWeight:      DefaultSecondaryWeight,
		EmotionalGroupWeight: DefaultEmotionalGroupWeight,
		CoverageWeight:       DefaultCoverageWeight,
	}
}

// ValidateParameters checks that every weight is non-negative.
func ValidateParameters(params types.ScoringParameters) error {
	validate := validator.New()
	if err := validate.Struct(params); err != nil {
		return fmt.Errorf("invalid scoring parameters: %w", err)
	}
	return nil
}
