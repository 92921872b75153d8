// Package main provides the application content generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "appgen",
	Short: "Rule-aware job application content generator",
	Long:  "appgen generates country-adapted resumes, cover letters, LinkedIn messages and email templates from a user profile and a job description analysis, enforcing content rules and scoring quality.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
