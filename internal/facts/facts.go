// Package facts validates generated content against the candidate's
// ground-truth profile and produces the fact-preservation constraints that
// are embedded in every customization prompt.
package facts

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/application-customizer/internal/types"
)

// fabricatedCompanies are generic company names LLMs commonly invent when
// they drift from the supplied profile.
var fabricatedCompanies = []string{
	"TechCorp", "ScaleupCo", "InnovateCorp", "StartupX", "TechStart",
}

var metricPattern = regexp.MustCompile(`\d+%|\d+\+|\d+[kKmMbB]|\$\d+|€\d+`)

// GroundTruth is the fixed set of facts extracted from the user profile.
// Everything in generated content must be traceable to one of these.
type GroundTruth struct {
	Name      string
	Email     string
	Phone     string
	Companies []string
	Metrics   []string
	Education []string
}

// Validator checks generated text against a GroundTruth.
type Validator struct {
	truth GroundTruth
}

// NewValidator extracts ground truth from the profile and returns a
// validator bound to it.
func NewValidator(profile *types.UserProfile) *Validator {
	truth := GroundTruth{
		Name:  profile.PersonalInfo.Name,
		Email: profile.PersonalInfo.Email,
		Phone: profile.PersonalInfo.Phone,
	}

	seen := make(map[string]bool)
	for _, exp := range profile.Experience {
		if exp.Company != "" && !seen[exp.Company] {
			truth.Companies = append(truth.Companies, exp.Company)
			seen[exp.Company] = true
		}
		for _, h := range exp.Highlights {
			truth.Metrics = append(truth.Metrics, metricPattern.FindAllString(h, -1)...)
		}
	}
	for _, a := range profile.KeyAchievements {
		truth.Metrics = append(truth.Metrics, metricPattern.FindAllString(a, -1)...)
	}
	for _, edu := range profile.Education {
		if edu.Institution != "" {
			truth.Education = append(truth.Education, edu.Institution)
		}
	}

	return &Validator{truth: truth}
}

// Truth returns the extracted ground truth.
func (v *Validator) Truth() GroundTruth {
	return v.truth
}

// ValidateContent flags claims in the text that cannot be traced to the
// profile: fabricated company names, and content that mentions no real
// employer at all.
func (v *Validator) ValidateContent(text string) *types.FactValidation {
	result := &types.FactValidation{IsValid: true}

	for _, company := range fabricatedCompanies {
		if strings.Contains(text, company) {
			result.IsValid = false
			result.Violations = append(result.Violations, types.FactViolation{
				Type:     "fabricated_company",
				Found:    company,
				Expected: strings.Join(v.truth.Companies, ", "),
			})
		}
	}

	foundReal := false
	for _, company := range v.truth.Companies {
		if strings.Contains(text, company) {
			foundReal = true
			break
		}
	}
	if !foundReal && len(v.truth.Companies) > 0 {
		result.IsValid = false
		result.Violations = append(result.Violations, types.FactViolation{
			Type:     "missing_real_company",
			Expected: strings.Join(v.truth.Companies, ", "),
		})
		result.Suggestions = append(result.Suggestions,
			"mention at least one real employer from the profile")
	}

	return result
}

// ConstraintsPrompt renders the fact-preservation section embedded at the
// top of every customization prompt. The LLM is told to use only these
// facts; enforcement of that instruction happens in ValidateContent.
func (v *Validator) ConstraintsPrompt() string {
	var sb strings.Builder

	sb.WriteString("CRITICAL CONTENT GENERATION CONSTRAINTS:\n\n")
	sb.WriteString("PRESERVE EXACTLY (NEVER CHANGE):\n")
	fmt.Fprintf(&sb, "- Personal Info: %s, %s", v.truth.Name, v.truth.Email)
	if v.truth.Phone != "" {
		fmt.Fprintf(&sb, ", %s", v.truth.Phone)
	}
	sb.WriteString("\n")
	if len(v.truth.Companies) > 0 {
		fmt.Fprintf(&sb, "- Real Companies: %s\n", strings.Join(v.truth.Companies, ", "))
	}
	if len(v.truth.Education) > 0 {
		fmt.Fprintf(&sb, "- Education: %s\n", strings.Join(v.truth.Education, ", "))
	}
	if len(v.truth.Metrics) > 0 {
		fmt.Fprintf(&sb, "- Real Metrics: %s\n", strings.Join(dedupe(v.truth.Metrics), ", "))
	}

	sb.WriteString("\nNEVER FABRICATE:\n")
	sb.WriteString("- Company names, personal details, or contact information\n")
	sb.WriteString("- Educational institutions or degrees\n")
	sb.WriteString("- Specific metrics, timeframes, or employment dates\n")

	return sb.String()
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			out = append(out, v)
			seen[v] = true
		}
	}
	return out
}
