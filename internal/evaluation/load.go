package evaluation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/bachflower-advisor/internal/scoring"
	"github.com/jonathan/bachflower-advisor/internal/types"
)

// LoadScenarios reads a JSON array of scenarios
func LoadScenarios(path string) ([]types.Scenario, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenarios file %s: %w", path, err)
	}

	var scenarios []types.Scenario
	if err := json.Unmarshal(content, &scenarios); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenarios: %w", err)
	}

	seen := make(map[string]bool, len(scenarios))
	for i, s := range scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("scenario %d has no name", i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
	}

	return scenarios, nil
}

// LoadParameterSets reads a JSON array of named parameter sets and validates each
func LoadParameterSets(path string) ([]types.NamedParameters, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameter sets file %s: %w", path, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parameter sets: %w", err)
	}

	// Weights missing from a set keep their defaults
	sets := make([]types.NamedParameters, len(raw))
	for i, entry := range raw {
		sets[i].Parameters = scoring.DefaultParameters()
		if err := json.Unmarshal(entry, &sets[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal parameter set %d: %w", i, err)
		}
	}

	validate := validator.New()
	for i, set := range sets {
		if err := validate.Struct(set); err != nil {
			return nil, fmt.Errorf("parameter set %d: %w", i, err)
		}
		if err := scoring.ValidateParameters(set.Parameters); err != nil {
			return nil, fmt.Errorf("parameter set %q: %w", set.Name, err)
		}
	}

	return sets, nil
}
