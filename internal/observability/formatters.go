// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/application-customizer/internal/llm"
	"github.com/jonathan/application-customizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQualityScores outputs the quality score vector for a customization.
func (p *Printer) PrintQualityScores(scores *types.QualityScores) {
	if scores == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rule Compliance:   %5.1f / 10\n", scores.RuleCompliance))
	sb.WriteString(fmt.Sprintf("Human Voice:       %5.1f / 10\n", scores.HumanVoice))
	sb.WriteString(fmt.Sprintf("Country Fit:       %5.1f / 10\n", scores.CountryAppropriateness))
	sb.WriteString(fmt.Sprintf("Specificity:       %5.1f / 10\n", scores.Specificity))
	sb.WriteString(fmt.Sprintf("Factual Accuracy:  %5.1f / 10\n", scores.FactualAccuracy))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Overall Quality:   %5.1f / 10", scores.OverallQuality))

	p.printBox("QUALITY SCORES", sb.String())
}

// PrintValidationResult outputs violations found during rule enforcement.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationResult(result *types.ValidationResult) {
	if result == nil || !result.HasViolations {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations (compliance %d/10):\n\n",
		result.TotalViolations, result.ComplianceScore))

	count := min(len(result.Violations), maxItemsToShow)
	for i := 0; i < count; i++ {
		v := result.Violations[i]
		if len(v) > 50 {
			v = v[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", v))
	}
	if len(result.Violations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Violations)-maxItemsToShow))
	}

	if len(result.ViolationsAfterFix) == 0 {
		sb.WriteString("\nAll violations resolved by auto-fix")
	} else {
		sb.WriteString(fmt.Sprintf("\n%d violations remain after auto-fix", len(result.ViolationsAfterFix)))
	}

	for _, w := range result.Warnings {
		if len(w) > 50 {
			w = w[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nℹ %s", w))
	}

	p.printBox("RULE VIOLATIONS", sb.String())
}

// PrintFactValidation outputs fact validation findings.
func (p *Printer) PrintFactValidation(fv *types.FactValidation) {
	if fv == nil {
		return
	}

	var sb strings.Builder
	if fv.IsValid {
		sb.WriteString("All facts consistent with profile\n")
	} else {
		sb.WriteString(fmt.Sprintf("Found %d factual issues:\n\n", len(fv.Violations)))
		count := min(len(fv.Violations), maxItemsToShow)
		for i := 0; i < count; i++ {
			v := fv.Violations[i]
			sb.WriteString(fmt.Sprintf("⚠ %s: %s\n", v.Type, v.Found))
		}
	}

	for _, s := range fv.Suggestions {
		if len(s) > 50 {
			s = s[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("→ %s\n", s))
	}

	p.printBox("FACT VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUsage outputs a snapshot of accumulated LLM usage and cost.
func (p *Printer) PrintUsage(stats llm.UsageStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Requests:      %d\n", stats.TotalRequests))
	sb.WriteString(fmt.Sprintf("Tokens:        %d\n", stats.TotalTokens))
	sb.WriteString(fmt.Sprintf("Total Cost:    $%.6f\n", stats.TotalCostUSD))
	sb.WriteString(fmt.Sprintf("Avg per Call:  $%.6f", stats.AverageCostPerRequest()))

	if len(stats.ByModel) > 0 {
		sb.WriteString("\n\nBy model:")
		for model, usage := range stats.ByModel {
			sb.WriteString(fmt.Sprintf("\n  %s: %d reqs, $%.6f", model, usage.Requests, usage.CostUSD))
		}
	}

	p.printBox("LLM USAGE", sb.String())
}
