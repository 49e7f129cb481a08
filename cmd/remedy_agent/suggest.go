package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/bachflower-advisor/internal/observability"
	"github.com/jonathan/bachflower-advisor/internal/scoring"
	schemafiles "github.com/jonathan/bachflower-advisor/schemas"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Score remedies against a selection and group them into priority tiers",
	Long: `Scores every remedy of the catalog against the selected emotion categories and symptoms and writes a SuggestionResult JSON with high priority, medium priority and additional option tiers.

The catalog is read from --catalog or from PostgreSQL (--db-url or DATABASE_URL).`,
	RunE: runSuggest,
}

var suggestOutput string

func init() {
	suggestCmd.Flags().StringVarP(&suggestOutput, "out", "o", "", "Path to output SuggestionResult JSON file (default stdout)")
	addSelectionFlags(suggestCmd)
	addWeightFlags(suggestCmd)

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	selection, err := loadSelection()
	if err != nil {
		return err
	}

	cat, warnings, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	result := scoring.CalculateFlowerScores(cat.Remedies, cat.Symptoms, selection.EmotionGroups, selection.Symptoms, cfg.Parameters)

	if err := writeJSON(suggestOutput, result, schemafiles.SuggestionResult); err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		if len(warnings) > 0 {
			printer.PrintWarnings(warnings)
		}
		printer.PrintSuggestions(result)
	}

	if suggestOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully scored %d remedies to %s\n", result.PriorityGroups.Len(), suggestOutput)
	}
	return nil
}
