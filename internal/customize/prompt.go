// Package customize orchestrates the content generation pipeline: prompt
// building, the LLM call, response parsing, rule enforcement, fact
// validation, and quality scoring.
package customize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/application-customizer/internal/facts"
	"github.com/jonathan/application-customizer/internal/prompts"
	"github.com/jonathan/application-customizer/internal/rules"
	"github.com/jonathan/application-customizer/internal/types"
)

const promptFile = "customization.json"

// maxListedPhrases caps the do-not-use lists embedded in the prompt. The
// enforcer still checks the full tables; the prompt only needs enough
// examples to steer the model.
const maxListedPhrases = 10

// Request holds every input for a single customization.
type Request struct {
	Analysis    *types.JDAnalysis
	Profile     *types.UserProfile
	Template    *types.TemplateStructure
	Country     string
	ContentType types.ContentType
}

// BuildPrompt assembles the rule-aware customization prompt. Every rule the
// enforcer checks afterwards is stated up front: fact constraints, the
// country tone table, forbidden phrasing, and the formatting rules for the
// content type.
func BuildPrompt(req Request, validator *facts.Validator) string {
	country, _ := rules.ForCountry(req.Country)
	formatting := rules.FormattingFor(string(req.ContentType))

	template := prompts.MustGet(promptFile, "rule-aware-customization")

	return prompts.Format(template, map[string]string{
		"ContentType":      string(req.ContentType),
		"ContentTypeUpper": strings.ToUpper(string(req.ContentType)),
		"Country":          country.Name,
		"CountryUpper":     strings.ToUpper(country.Name),
		"FactConstraints":  validator.ConstraintsPrompt(),

		"Directness":  country.Tone.Directness,
		"Formality":   country.Tone.Formality,
		"KeyValues":   strings.Join(country.Tone.KeyValues, ", "),
		"AvoidList":   strings.Join(country.Tone.Avoid, ", "),
		"LengthLimit": lengthLimit(country, req.ContentType),
		"LengthUnit":  req.ContentType.LengthUnit(),
		"Style":       styleFor(country, req.ContentType),

		"ForbiddenList": joinCapped(rules.ForbiddenPhrases, maxListedPhrases),
		"RedFlagList":   joinCapped(rules.LLMRedFlags, maxListedPhrases),

		"Structure":        strings.Join(formatting.Structure, " → "),
		"RequiredElements": strings.Join(formatting.RequiredElements, ", "),
		"Tone":             formatting.Tone,

		"TemplateGuidance": templateGuidance(req.Template),

		"Company":            req.Analysis.Company,
		"RoleTitle":          req.Analysis.RoleTitle,
		"FocusArea":          req.Analysis.DomainFocus,
		"KeyStrengths":       strings.Join(req.Analysis.Positioning.KeyStrengths, ", "),
		"ExperienceFraming":  req.Analysis.Positioning.ExperienceFraming,
		"CulturalAdaptation": req.Analysis.Positioning.CulturalAdaptation,

		"TechnicalSkills":  strings.Join(req.Profile.Skills.Technical, ", "),
		"BusinessSkills":   strings.Join(req.Profile.Skills.Business, ", "),
		"RecentExperience": formatExperience(req.Profile.RecentExperience(3)),
		"KeyAchievements":  formatAchievements(req.Profile.TopAchievements(5)),
	})
}

// templateGuidance renders the dynamic template section, or the standard
// fallback when no template structure was provided.
func templateGuidance(t *types.TemplateStructure) string {
	if t == nil {
		return prompts.MustGet(promptFile, "template-guidance-fallback")
	}
	return prompts.Format(prompts.MustGet(promptFile, "template-guidance"), map[string]string{
		"SectionOrder":      strings.Join(t.SectionOrder, " → "),
		"TopPriority":       t.ContentEmphasis.TopPriority,
		"KeyMetrics":        strings.Join(t.ContentEmphasis.KeyMetrics, ", "),
		"SkillsToFeature":   strings.Join(t.ContentEmphasis.SkillsToFeature, ", "),
		"TechnicalEmphasis": t.RoleSpecificFocus.TechnicalEmphasis,
		"BusinessEmphasis":  t.RoleSpecificFocus.BusinessEmphasis,
	})
}

func lengthLimit(country rules.CountryRuleSet, ct types.ContentType) string {
	if limits, ok := country.LimitsFor(string(ct)); ok {
		if limits.MaxChars > 0 {
			return strconv.Itoa(limits.MaxChars)
		}
		if limits.MaxLength > 0 {
			return strconv.Itoa(limits.MaxLength)
		}
	}
	// Resumes have no per-type limit table; sections stay short.
	return "150"
}

func styleFor(country rules.CountryRuleSet, ct types.ContentType) string {
	if limits, ok := country.LimitsFor(string(ct)); ok && limits.Style != "" {
		return limits.Style
	}
	return "professional"
}

func joinCapped(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}

func formatExperience(entries []types.ExperienceEntry) string {
	if len(entries) == 0 {
		return "(none provided)"
	}
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "- %s at %s", e.Role, e.Company)
		if e.Duration != "" {
			fmt.Fprintf(&sb, " (%s)", e.Duration)
		}
		sb.WriteString("\n")
		for _, h := range e.Highlights {
			fmt.Fprintf(&sb, "  • %s\n", h)
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func formatAchievements(achievements []string) string {
	if len(achievements) == 0 {
		return "(none provided)"
	}
	var sb strings.Builder
	for _, a := range achievements {
		fmt.Fprintf(&sb, "- %s\n", a)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
