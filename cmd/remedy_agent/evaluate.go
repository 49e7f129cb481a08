package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/bachflower-advisor/internal/evaluation"
	"github.com/jonathan/bachflower-advisor/internal/observability"
	"github.com/jonathan/bachflower-advisor/internal/schemas"
	"github.com/jonathan/bachflower-advisor/internal/types"
	schemafiles "github.com/jonathan/bachflower-advisor/schemas"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate scoring parameters against expected scenarios",
	Long: `Runs every scenario with each parameter set and reports pass/fail, placement accuracy, emotion group coverage and tier balance.

Without --parameter-sets the configured weights (config file and weight flags) are evaluated.`,
	RunE: runEvaluate,
}

var (
	evaluateScenarios     string
	evaluateParameterSets string
	evaluateOutput        string
	evaluateFailOnMiss    bool
)

func init() {
	evaluateCmd.Flags().StringVar(&evaluateScenarios, "scenarios", "", "Path to scenarios JSON file (required)")
	evaluateCmd.Flags().StringVarP(&evaluateParameterSets, "parameter-sets", "p", "", "Path to named parameter sets JSON file")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "out", "o", "", "Path to output evaluation report JSON file (default stdout)")
	evaluateCmd.Flags().BoolVar(&evaluateFailOnMiss, "fail-on-miss", false, "Exit with an error when any scenario fails")
	addWeightFlags(evaluateCmd)

	if err := evaluateCmd.MarkFlagRequired("scenarios"); err != nil {
		panic(fmt.Sprintf("failed to mark scenarios flag as required: %v", err))
	}

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if err := schemas.ValidateFile(schemafiles.Scenarios, evaluateScenarios); err != nil {
		return fmt.Errorf("invalid scenarios: %w", err)
	}
	scenarios, err := evaluation.LoadScenarios(evaluateScenarios)
	if err != nil {
		return err
	}

	sets := []types.NamedParameters{{Name: "configured", Parameters: *cfg.Parameters}}
	if evaluateParameterSets != "" {
		if err := schemas.ValidateFile(schemafiles.ParameterSets, evaluateParameterSets); err != nil {
			return fmt.Errorf("invalid parameter sets: %w", err)
		}
		sets, err = evaluation.LoadParameterSets(evaluateParameterSets)
		if err != nil {
			return err
		}
	}

	cat, _, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	tester := evaluation.NewTester(cat, scenarios)
	reports, err := tester.Compare(ctx, sets)
	if err != nil {
		return fmt.Errorf("failed to evaluate parameters: %w", err)
	}

	if err := writeJSON(evaluateOutput, reports, schemafiles.EvaluationReport); err != nil {
		return err
	}

	failed := 0
	printer := observability.NewPrinter(os.Stderr)
	for _, report := range reports {
		if cfg.Verbose {
			printer.PrintEvaluation(report)
		}
		failed += len(report.Summary.FailedScenarios)
	}

	if evaluateOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully evaluated %d parameter sets against %d scenarios to %s\n", len(reports), len(scenarios), evaluateOutput)
	}

	if evaluateFailOnMiss && failed > 0 {
		return fmt.Errorf("%d scenario runs failed", failed)
	}
	return nil
}
