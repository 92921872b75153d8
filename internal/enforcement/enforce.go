package enforcement

import (
	"strings"

	"github.com/jonathan/application-customizer/internal/rules"
	"github.com/jonathan/application-customizer/internal/types"
)

// Enforce validates the customization against the content and country rule
// sets, auto-fixes what it can, and re-runs country tone adaptation over the
// customized sections. It returns a mutated copy plus the validation result;
// the input is never modified.
//
// The returned result keeps the pre-fix violation list (and the compliance
// score derived from it) as an audit trail, and additionally carries the
// recomputed post-fix list so callers can choose either view.
func Enforce(c *types.Customization, country rules.CountryRuleSet, contentType types.ContentType) (*types.Customization, *types.ValidationResult) {
	if c == nil {
		c = &types.Customization{CustomizedSections: map[string]string{}}
	}
	fixed := c.Clone()

	corpus := strings.Join(fixed.TextLeaves(), " ")
	violations := validateCorpus(corpus, country)
	complianceScore := 10 - len(violations)
	if complianceScore < 0 {
		complianceScore = 0
	}

	if len(violations) > 0 {
		fixed.AutoFixesApplied = applyFixes(fixed)
	}

	// Tone re-adaptation is idempotent; running it after fixes is safe even
	// when sections were already adapted by the LLM.
	for key, text := range fixed.CustomizedSections {
		fixed.CustomizedSections[key] = rules.AdaptTone(text, country.Name)
	}

	afterCorpus := strings.Join(fixed.TextLeaves(), " ")
	violationsAfter := validateCorpus(afterCorpus, country)

	result := &types.ValidationResult{
		HasViolations:      len(violations) > 0,
		Violations:         violations,
		ViolationsAfterFix: violationsAfter,
		Warnings:           lengthWarnings(sectionsText(fixed), country, contentType),
		TotalViolations:    len(violations),
		ComplianceScore:    complianceScore,
	}

	fixed.ValidationResults = result

	return fixed, result
}

// sectionsText joins only the customized sections; length limits apply to
// the content itself, not the metadata maps.
func sectionsText(c *types.Customization) string {
	var parts []string
	for _, key := range []string{
		types.SectionDomainFocus,
		types.SectionKeyAchievementReframed,
		types.SectionTechnicalSkillsEmphasis,
		types.SectionBusinessImpactFraming,
		types.SectionExperiencePositioning,
	} {
		if text, ok := c.CustomizedSections[key]; ok {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// lengthWarnings flags content that exceeds the country's length limits for
// the content type. Length overruns are warnings, not violations: they do
// not reduce the compliance score.
func lengthWarnings(corpus string, country rules.CountryRuleSet, contentType types.ContentType) []string {
	warnings := []string{}

	limits, ok := country.LimitsFor(string(contentType))
	if !ok {
		return warnings
	}

	if limits.MaxChars > 0 && len(corpus) > limits.MaxChars {
		warnings = append(warnings, "content length exceeds the country limit for "+string(contentType))
	}
	if limits.MaxLength > 0 && len(strings.Fields(corpus)) > limits.MaxLength {
		warnings = append(warnings, "content word count exceeds the country limit for "+string(contentType))
	}

	return warnings
}
