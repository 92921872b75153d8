package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/application-customizer/internal/db"
	"github.com/jonathan/application-customizer/internal/observability"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show accumulated LLM usage and cost",
	Long:  "Read the llm_usage table and print total requests, tokens and cost, broken down by model. Requires a database URL via --db-url or DATABASE_URL.",
	RunE:  runUsage,
}

var usageDatabaseURL string

func init() {
	usageCmd.Flags().StringVar(&usageDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL)")

	rootCmd.AddCommand(usageCmd)
}

func runUsage(_ *cobra.Command, _ []string) error {
	databaseURL := usageDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("a database URL is required: pass --db-url or set DATABASE_URL")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	stats, err := database.UsageSummary(ctx)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintUsage(stats)
	return nil
}
