// Package main provides the entry point for the Bach flower remedy advisor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "remedy_agent",
	Short: "Bach flower remedy advisor",
	Long:  "Scores Bach flower remedies against selected emotion categories and symptoms, ranks the suggestions and evaluates scoring parameters against expected scenarios.",
}

var (
	rootConfigPath  string
	rootCatalog     string
	rootDatabaseURL string
	rootVerbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVarP(&rootCatalog, "catalog", "c", "", "Path to catalog JSON file (mutually exclusive with --db-url)")
	rootCmd.PersistentFlags().StringVar(&rootDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
