package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/application-customizer/internal/config"
	"github.com/jonathan/application-customizer/internal/customize"
	"github.com/jonathan/application-customizer/internal/observability"
	"github.com/jonathan/application-customizer/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate customized application content for one job",
	Long:  "Generate customized, rule-compliant application content from a user profile and a job description analysis, adapted to the target country.",
	RunE:  runGenerate,
}

var (
	genConfigFile   string
	genProfileFile  string
	genAnalysisFile string
	genTemplateFile string
	genCountry      string
	genContentType  string
	genOutputFile   string
	genDatabaseURL  string
	genVerbose      bool
)

func init() {
	generateCmd.Flags().StringVarP(&genConfigFile, "config", "c", "", "Path to JSON config file")
	generateCmd.Flags().StringVarP(&genProfileFile, "profile", "p", "", "Path to user profile JSON file (required)")
	generateCmd.Flags().StringVarP(&genAnalysisFile, "analysis", "a", "", "Path to job description analysis JSON file (required)")
	generateCmd.Flags().StringVarP(&genTemplateFile, "template", "t", "", "Path to template structure JSON file (optional)")
	generateCmd.Flags().StringVar(&genCountry, "country", "", "Target country (default: netherlands)")
	generateCmd.Flags().StringVar(&genContentType, "type", "", "Content type: resume, cover_letter, linkedin_message, email_template")
	generateCmd.Flags().StringVarP(&genOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	generateCmd.Flags().StringVar(&genDatabaseURL, "db-url", "", "PostgreSQL URL for persistence (overrides DATABASE_URL)")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print validation and quality reports")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Profile:     genProfileFile,
		Analysis:    genAnalysisFile,
		Template:    genTemplateFile,
		Country:     genCountry,
		ContentType: genContentType,
		Output:      genOutputFile,
		DatabaseURL: genDatabaseURL,
		Verbose:     genVerbose,
	}
	if genConfigFile != "" {
		fileCfg, err := config.LoadConfig(genConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Profile == "" || cfg.Analysis == "" {
		return fmt.Errorf("--profile and --analysis are required")
	}

	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}
	analysis, err := loadAnalysis(cfg.Analysis)
	if err != nil {
		return err
	}
	template, err := loadTemplate(cfg.Template)
	if err != nil {
		return err
	}

	ctx := context.Background()
	logger := newLogger(cfg.Verbose)
	gateway := buildGateway(ctx, cfg.AnthropicAPIKey, cfg.GeminiAPIKey, logger)

	sink, closeSink, err := openSink(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer closeSink()

	customizer := customize.NewCustomizer(gateway, profile, sink, logger)

	result, err := customizer.Customize(ctx, customize.Request{
		Analysis:    analysis,
		Profile:     profile,
		Template:    template,
		Country:     cfg.Country,
		ContentType: types.ContentType(cfg.ContentType),
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintValidationResult(result.ValidationResults)
		printer.PrintFactValidation(result.FactValidation)
		printer.PrintQualityScores(result.QualityScores)
		printer.PrintUsage(gateway.Snapshot())
	}

	return writeOutput(cfg.Output, result)
}
