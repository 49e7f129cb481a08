package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/bachflower-advisor/internal/scoring"
	"github.com/jonathan/bachflower-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"catalog": "catalog.json",
		"parameters": {
			"primary_weight": 4,
			"secondary_weight": 0.5,
			"emotional_group_weight": 2,
			"coverage_weight": 1
		},
		"hide_unmatched": true,
		"limit": 10,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "catalog.json", cfg.Catalog)
	require.NotNil(t, cfg.Parameters)
	assert.Equal(t, 4.0, cfg.Parameters.PrimaryWeight)
	assert.Equal(t, 0.5, cfg.Parameters.SecondaryWeight)
	assert.True(t, cfg.HideUnmatched)
	assert.Equal(t, 10, cfg.Limit)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_PartialParameters(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{"parameters": {"primary_weight": 5}}`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	merged := cfg.MergeWithDefaults(Config{})
	require.NotNil(t, merged.Parameters)
	assert.Equal(t, types.ScoringParameters{
		PrimaryWeight:        5,
		SecondaryWeight:      scoring.DefaultSecondaryWeight,
		EmotionalGroupWeight: scoring.DefaultEmotionalGroupWeight,
		CoverageWeight:       scoring.DefaultCoverageWeight,
	}, *merged.Parameters)
}

func TestLoadConfig_NoParameters(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{"limit": 3}`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg.Parameters)
	assert.Equal(t, scoring.DefaultParameters(), *cfg.Parameters)

	// explicit zero weights are kept
	err = os.WriteFile(tmpFile, []byte(`{"parameters": {"coverage_weight": 0, "secondary_weight": 0}}`), 0644)
	require.NoError(t, err)

	cfg, err = LoadConfig(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Parameters.CoverageWeight)
	assert.Equal(t, 0.0, cfg.Parameters.SecondaryWeight)
	assert.Equal(t, scoring.DefaultPrimaryWeight, cfg.Parameters.PrimaryWeight)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Catalog:     "catalog.json",
		DatabaseURL: "postgres://localhost/bachflower",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_NegativeLimit(t *testing.T) {
	cfg := &Config{Limit: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestValidate_NegativeWeight(t *testing.T) {
	params := scoring.DefaultParameters()
	params.EmotionalGroupWeight = -2
	cfg := &Config{Parameters: &params}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parameters")
}

func TestValidate_MissingCatalog(t *testing.T) {
	cfg := &Config{Catalog: filepath.Join(t.TempDir(), "missing.json")}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "catalog file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	catalogFile := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(catalogFile, []byte(`{}`), 0644))

	params := scoring.DefaultParameters()
	cfg := &Config{
		Catalog:    catalogFile,
		Parameters: &params,
		Limit:      5,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaultParams := types.ScoringParameters{PrimaryWeight: 5}
	defaults := Config{
		Catalog:     "default.json",
		DatabaseURL: "postgres://localhost/default",
		Parameters:  &defaultParams,
		Limit:       20,
	}

	partial := Config{
		Catalog: "custom.json",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom.json", merged.Catalog)

	// Default values should fill in empty fields
	assert.Equal(t, "postgres://localhost/default", merged.DatabaseURL)
	assert.Equal(t, 20, merged.Limit)
	require.NotNil(t, merged.Parameters)
	assert.Equal(t, 5.0, merged.Parameters.PrimaryWeight)

	// Merged parameters are a copy
	merged.Parameters.PrimaryWeight = 1
	assert.Equal(t, 5.0, defaultParams.PrimaryWeight)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Catalog: "catalog.json"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "catalog.json", merged.Catalog)
	assert.Equal(t, 0, merged.Limit)
	require.NotNil(t, merged.Parameters)
	assert.Equal(t, scoring.DefaultParameters(), *merged.Parameters)
}

func TestMergeWithDefaults_KeepsOwnParameters(t *testing.T) {
	params := types.ScoringParameters{PrimaryWeight: 1, SecondaryWeight: 1}
	cfg := Config{Parameters: &params}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, params, *merged.Parameters)
}
