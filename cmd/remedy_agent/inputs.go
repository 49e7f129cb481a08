package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jonathan/bachflower-advisor/internal/catalog"
	"github.com/jonathan/bachflower-advisor/internal/config"
	"github.com/jonathan/bachflower-advisor/internal/schemas"
	"github.com/jonathan/bachflower-advisor/internal/scoring"
	"github.com/jonathan/bachflower-advisor/internal/types"
	schemafiles "github.com/jonathan/bachflower-advisor/schemas"
	"github.com/spf13/cobra"
)

// Weight flags shared by the scoring commands
var (
	weightPrimary   float64
	weightSecondary float64
	weightEmotional float64
	weightCoverage  float64
)

// Selection flags shared by suggest and rank
var (
	selectionPath     string
	selectionGroups   []string
	selectionSymptoms []string
)

func addWeightFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&weightPrimary, "primary-weight", scoring.DefaultPrimaryWeight, "Weight per primary symptom match")
	cmd.Flags().Float64Var(&weightSecondary, "secondary-weight", scoring.DefaultSecondaryWeight, "Weight per secondary symptom match")
	cmd.Flags().Float64Var(&weightEmotional, "emotional-group-weight", scoring.DefaultEmotionalGroupWeight, "Weight per matched selected emotion group")
	cmd.Flags().Float64Var(&weightCoverage, "coverage-weight", scoring.DefaultCoverageWeight, "Weight per distinct matched emotion group")
}

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&selectionPath, "selection", "s", "", "Path to selection JSON file (mutually exclusive with --groups/--symptoms)")
	cmd.Flags().StringSliceVarP(&selectionGroups, "groups", "g", nil, "Selected emotion categories (comma separated)")
	cmd.Flags().StringSliceVar(&selectionSymptoms, "symptoms", nil, "Selected symptom ids (comma separated)")
}

// resolveConfig loads the config file, applies flag overrides and defaults.
// Only flags that were explicitly set override config values.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg config.Config
	if rootConfigPath != "" {
		loadedCfg, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return nil, err
		}
		cfg = *loadedCfg
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog = rootCatalog
		cfg.DatabaseURL = ""
	}
	if flags.Changed("db-url") {
		cfg.DatabaseURL = rootDatabaseURL
		cfg.Catalog = ""
	}
	if flags.Changed("verbose") {
		cfg.Verbose = rootVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{})
	applyWeightFlags(cmd, cfg.Parameters)

	if cfg.Catalog == "" && cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Verbose && rootConfigPath != "" {
		log.Printf("Loaded config from: %s", rootConfigPath)
	}
	return &cfg, nil
}

// applyWeightFlags overrides the weights whose flags were set on cmd
func applyWeightFlags(cmd *cobra.Command, params *types.ScoringParameters) {
	flags := cmd.Flags()
	if flags.Lookup("primary-weight") == nil {
		return
	}
	if flags.Changed("primary-weight") {
		params.PrimaryWeight = weightPrimary
	}
	if flags.Changed("secondary-weight") {
		params.SecondaryWeight = weightSecondary
	}
	if flags.Changed("emotional-group-weight") {
		params.EmotionalGroupWeight = weightEmotional
	}
	if flags.Changed("coverage-weight") {
		params.CoverageWeight = weightCoverage
	}
}

// loadCatalog reads the catalog from a file or the database and normalizes it
func loadCatalog(ctx context.Context, cfg *config.Config) (*types.Catalog, []catalog.Warning, error) {
	var raw *types.Catalog

	switch {
	case cfg.Catalog != "":
		if err := schemas.ValidateFile(schemafiles.Catalog, cfg.Catalog); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Catalog validation failed: %v\n", err)
		}
		loaded, err := catalog.LoadCatalog(cfg.Catalog)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		raw = loaded

	case cfg.DatabaseURL != "":
		store, err := catalog.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		defer store.Close()

		loaded, err := store.LoadCatalog(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load catalog from database: %w", err)
		}
		raw = loaded

	default:
		return nil, nil, fmt.Errorf("either --catalog or --db-url must be provided (via flag, config or DATABASE_URL)")
	}

	normalized, warnings := catalog.Normalize(raw)
	if cfg.Verbose {
		log.Printf("Loaded catalog: %d remedies, %d symptoms, %d warnings",
			len(normalized.Remedies), len(normalized.Symptoms), len(warnings))
	}
	return normalized, warnings, nil
}

// loadSelection reads the selection from --selection or the --groups/--symptoms flags
func loadSelection() (*types.Selection, error) {
	var selection *types.Selection

	if selectionPath != "" {
		if len(selectionGroups) > 0 || len(selectionSymptoms) > 0 {
			return nil, fmt.Errorf("--selection and --groups/--symptoms are mutually exclusive; provide only one")
		}
		if err := schemas.ValidateFile(schemafiles.Selection, selectionPath); err != nil {
			return nil, fmt.Errorf("invalid selection: %w", err)
		}
		loaded, err := catalog.LoadSelection(selectionPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load selection: %w", err)
		}
		selection = loaded
	} else {
		selection = &types.Selection{
			EmotionGroups: selectionGroups,
			Symptoms:      selectionSymptoms,
		}
	}

	selection = catalog.NormalizeSelection(selection)
	if err := selection.Validate(); err != nil {
		return nil, fmt.Errorf("invalid selection: %w", err)
	}
	return selection, nil
}

// writeJSON writes value as indented JSON to path, or stdout when path is empty,
// then validates it against schemaName. Validation failures are only reported.
func writeJSON(path string, value any, schemaName string) error {
	jsonOutput, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		if _, err := fmt.Fprintln(os.Stdout, string(jsonOutput)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		// Ensure output directory exists
		outputDir := filepath.Dir(path)
		if outputDir != "" && outputDir != "." {
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
			}
		}
		if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", path, err)
		}
	}

	// Output validation is a safety check, not a requirement
	if schemaName != "" {
		if err := schemas.ValidateValue(schemaName, value); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}
	return nil
}
