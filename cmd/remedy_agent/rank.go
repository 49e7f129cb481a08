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

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank remedies for a selection in a single ordered list",
	Long:  "Scores the catalog against a selection and flattens the tiers into one ranked list with notes, ordered by total score, coverage and primary matches.",
	RunE:  runRank,
}

var (
	rankOutput        string
	rankHideUnmatched bool
	rankLimit         int
)

func init() {
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output RankedSuggestions JSON file (default stdout)")
	rankCmd.Flags().BoolVar(&rankHideUnmatched, "hide-unmatched", false, "Omit remedies without any symptom match")
	rankCmd.Flags().IntVarP(&rankLimit, "limit", "n", 0, "Maximum number of ranked remedies (0 for all)")
	addSelectionFlags(rankCmd)
	addWeightFlags(rankCmd)

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("hide-unmatched") {
		cfg.HideUnmatched = rankHideUnmatched
	}
	if cmd.Flags().Changed("limit") {
		if rankLimit < 0 {
			return fmt.Errorf("--limit must be non-negative")
		}
		cfg.Limit = rankLimit
	}

	selection, err := loadSelection()
	if err != nil {
		return err
	}

	cat, _, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	result := scoring.CalculateFlowerScores(cat.Remedies, cat.Symptoms, selection.EmotionGroups, selection.Symptoms, cfg.Parameters)
	ranked := scoring.RankSuggestions(result, scoring.RankOptions{
		HideUnmatched: cfg.HideUnmatched,
		Limit:         cfg.Limit,
	})

	if err := writeJSON(rankOutput, ranked, schemafiles.RankedSuggestions); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintRanking(ranked)
	}

	if rankOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d remedies to %s\n", len(ranked.Ranked), rankOutput)
	}
	return nil
}
