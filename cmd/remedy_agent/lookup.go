package main

import (
	"context"
	"os"

	"github.com/jonathan/bachflower-advisor/internal/catalog"
	"github.com/jonathan/bachflower-advisor/internal/observability"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <term>",
	Short: "Search symptoms by name or description",
	Long:  "Finds symptoms whose name matches the term exactly, by prefix or as a substring, or whose description contains it while the name is close in edit distance.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

var (
	lookupMax     int
	lookupExclude []string
	lookupJSON    bool
)

func init() {
	lookupCmd.Flags().IntVarP(&lookupMax, "max", "m", 0, "Maximum number of results (default 5)")
	lookupCmd.Flags().StringSliceVar(&lookupExclude, "exclude", nil, "Symptom names to leave out, e.g. already selected ones")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "Print results as JSON")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	cat, _, err := loadCatalog(context.Background(), cfg)
	if err != nil {
		return err
	}

	results := catalog.SearchSymptoms(cat.Symptoms, args[0], catalog.SearchOptions{
		Exclude: lookupExclude,
		Max:     lookupMax,
	})

	if lookupJSON {
		return writeJSON("", results, "")
	}

	observability.NewPrinter(os.Stdout).PrintSymptoms(args[0], results)
	return nil
}
