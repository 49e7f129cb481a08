package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/bachflower-advisor/internal/catalog"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the emotion categories of the catalog",
	Long:  "Prints the distinct emotion categories of all catalog symptoms, one per line, in German collation order.",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	cat, _, err := loadCatalog(context.Background(), cfg)
	if err != nil {
		return err
	}

	for _, category := range catalog.EmotionCategories(cat.Symptoms) {
		if _, err := fmt.Fprintln(os.Stdout, category); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
