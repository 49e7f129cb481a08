package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/bachflower-advisor/internal/observability"
	"github.com/jonathan/bachflower-advisor/internal/schemas"
	schemafiles "github.com/jonathan/bachflower-advisor/schemas"
	"github.com/spf13/cobra"
)

var validateCatalogCmd = &cobra.Command{
	Use:   "validate-catalog",
	Short: "Validate and normalize a remedy catalog",
	Long:  "Validates a catalog file against the catalog schema, normalizes it (duplicate symptoms and relations, unknown symptom references, Unicode forms) and reports every repair as a warning. The normalized catalog can be written with --out.",
	RunE:  runValidateCatalog,
}

var (
	validateCatalogOutput string
	validateCatalogStrict bool
)

func init() {
	validateCatalogCmd.Flags().StringVarP(&validateCatalogOutput, "out", "o", "", "Path to output normalized catalog JSON file")
	validateCatalogCmd.Flags().BoolVar(&validateCatalogStrict, "strict", false, "Fail when normalization produced warnings")

	rootCmd.AddCommand(validateCatalogCmd)
}

func runValidateCatalog(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Catalog != "" {
		if err := schemas.ValidateFile(schemafiles.Catalog, cfg.Catalog); err != nil {
			return err
		}
	}

	cat, warnings, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintWarnings(warnings)

	if validateCatalogOutput != "" {
		if err := writeJSON(validateCatalogOutput, cat, schemafiles.Catalog); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Normalized catalog written to %s\n", validateCatalogOutput)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Catalog: %d remedies, %d symptoms\n", len(cat.Remedies), len(cat.Symptoms))

	if validateCatalogStrict && len(warnings) > 0 {
		return fmt.Errorf("catalog has %d warnings", len(warnings))
	}
	return nil
}
