package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/application-customizer/internal/customize"
	"github.com/jonathan/application-customizer/internal/observability"
	"github.com/jonathan/application-customizer/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate content for multiple jobs in one run",
	Long:  "Process a batch file of job items against a single user profile. Items are processed sequentially; a failing item is reported and the batch continues.",
	RunE:  runBatch,
}

var (
	batchProfileFile string
	batchInputFile   string
	batchOutputFile  string
	batchDatabaseURL string
	batchVerbose     bool
)

// batchItem is one entry in the batch input file.
type batchItem struct {
	Analysis    *types.JDAnalysis        `json:"analysis"`
	Template    *types.TemplateStructure `json:"template,omitempty"`
	Country     string                   `json:"country,omitempty"`
	ContentType string                   `json:"content_type,omitempty"`
}

// batchOutput is the per-item result written to the output file.
type batchOutput struct {
	Company       string               `json:"company"`
	RoleTitle     string               `json:"role_title"`
	Country       string               `json:"country"`
	ContentType   string               `json:"content_type"`
	Success       bool                 `json:"success"`
	Error         string               `json:"error,omitempty"`
	Customization *types.Customization `json:"customization,omitempty"`
}

func init() {
	batchCmd.Flags().StringVarP(&batchProfileFile, "profile", "p", "", "Path to user profile JSON file (required)")
	batchCmd.Flags().StringVarP(&batchInputFile, "in", "i", "", "Path to batch items JSON file (required)")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	batchCmd.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL URL for persistence (overrides DATABASE_URL)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print per-item progress and usage totals")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	if batchProfileFile == "" || batchInputFile == "" {
		return fmt.Errorf("--profile and --in are required")
	}

	profile, err := loadProfile(batchProfileFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(batchInputFile)
	if err != nil {
		return fmt.Errorf("failed to read batch file: %w", err)
	}
	var items []batchItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse batch JSON: %w", err)
	}
	if len(items) == 0 {
		return fmt.Errorf("batch file contains no items")
	}

	ctx := context.Background()
	logger := newLogger(batchVerbose)
	gateway := buildGateway(ctx, "", "", logger)

	sink, closeSink, err := openSink(ctx, batchDatabaseURL, logger)
	if err != nil {
		return err
	}
	defer closeSink()

	customizer := customize.NewCustomizer(gateway, profile, sink, logger)

	reqs := make([]customize.Request, 0, len(items))
	for _, item := range items {
		reqs = append(reqs, customize.Request{
			Analysis:    item.Analysis,
			Profile:     profile,
			Template:    item.Template,
			Country:     item.Country,
			ContentType: types.ContentType(item.ContentType),
		})
	}

	results := customizer.CustomizeBatch(ctx, reqs)

	outputs := make([]batchOutput, 0, len(results))
	succeeded := 0
	for i, r := range results {
		out := batchOutput{
			Country:     r.Request.Country,
			ContentType: string(r.Request.ContentType),
		}
		if r.Request.Analysis != nil {
			out.Company = r.Request.Analysis.Company
			out.RoleTitle = r.Request.Analysis.RoleTitle
		}
		if r.Err != nil {
			out.Error = r.Err.Error()
			fmt.Fprintf(os.Stderr, "[%d/%d] %s: failed: %v\n", i+1, len(results), out.Company, r.Err)
		} else {
			out.Success = true
			out.Customization = r.Customization
			succeeded++
			if batchVerbose {
				fmt.Fprintf(os.Stderr, "[%d/%d] %s (%s): quality %.1f, method %s\n",
					i+1, len(results), out.Company, out.RoleTitle,
					r.Customization.QualityScores.OverallQuality, r.Customization.GenerationMethod)
			}
		}
		outputs = append(outputs, out)
	}

	fmt.Fprintf(os.Stderr, "Batch complete: %d/%d succeeded\n", succeeded, len(results))

	if batchVerbose {
		observability.NewPrinter(os.Stderr).PrintUsage(gateway.Snapshot())
	}

	return writeOutput(batchOutputFile, outputs)
}
