// Package enforcement validates customizations against the content and
// country rule sets, applies deterministic auto-fixes, and re-adapts tone.
// Enforcement never fails: a customization with violations is still
// returned, annotated with its validation result.
package enforcement

import (
	"fmt"
	"strings"

	"github.com/jonathan/application-customizer/internal/rules"
)

// validateCorpus scans the flattened text corpus and returns one violation
// string per rule match. Counting is occurrence-based: a phrase appearing in
// three places yields three violations. Compliance scoring depends on this
// raw count, so matches are deliberately not deduplicated.
func validateCorpus(corpus string, country rules.CountryRuleSet) []string {
	var violations []string
	lower := strings.ToLower(corpus)

	for _, phrase := range rules.ForbiddenPhrases {
		for i := 0; i < strings.Count(lower, strings.ToLower(phrase)); i++ {
			violations = append(violations, fmt.Sprintf("Forbidden phrase detected: '%s'", phrase))
		}
	}

	for _, flag := range rules.LLMRedFlags {
		for i := 0; i < strings.Count(lower, strings.ToLower(flag)); i++ {
			violations = append(violations, fmt.Sprintf("LLM language detected: '%s'", flag))
		}
	}

	for _, pattern := range rules.PlaceholderPatterns {
		for range pattern.FindAllStringIndex(corpus, -1) {
			violations = append(violations, fmt.Sprintf("Placeholder text found: pattern '%s'", pattern.String()))
		}
	}

	violations = append(violations, validateCountryRules(lower, country)...)

	return violations
}

// validateCountryRules checks the country avoid-list and, for high
// directness countries, a hedging-language heuristic.
func validateCountryRules(lowerCorpus string, country rules.CountryRuleSet) []string {
	var violations []string

	for _, phrase := range country.Tone.Avoid {
		for i := 0; i < strings.Count(lowerCorpus, strings.ToLower(phrase)); i++ {
			violations = append(violations,
				fmt.Sprintf("Country rule violation: '%s' should be avoided for this country", phrase))
		}
	}

	if country.Tone.Directness == "high" {
		for _, phrase := range rules.HedgingPhrases {
			for i := 0; i < strings.Count(lowerCorpus, phrase); i++ {
				violations = append(violations,
					fmt.Sprintf("Directness violation: '%s' too hesitant for high directness country", phrase))
			}
		}
	}

	return violations
}
