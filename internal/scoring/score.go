// Package scoring computes quality scores for customizations. Every score is
// a pure function of the content, the country rules, and the validation
// result: no LLM calls, no I/O.
package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/application-customizer/internal/rules"
	"github.com/jonathan/application-customizer/internal/types"
)

var (
	contractionPattern = regexp.MustCompile(`\w+'[a-z]+`)
	metricPattern      = regexp.MustCompile(`\d+%|\d+\+|\d+[kKmMbB]|\$\d+`)
	techTermPattern    = regexp.MustCompile(`\b[A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*){0,2}\b`)
)

// Score computes the five quality dimensions for a customization. The rule
// compliance dimension passes through from validation; the other four are
// derived from the text, each clamped to [0,10]. Overall quality is the
// unweighted mean of the four derived dimensions.
func Score(c *types.Customization, country rules.CountryRuleSet, validation *types.ValidationResult) *types.QualityScores {
	corpus := strings.Join(c.TextLeaves(), " ")

	scores := &types.QualityScores{
		RuleCompliance:         float64(validation.ComplianceScore),
		HumanVoice:             humanVoiceScore(corpus),
		CountryAppropriateness: countryScore(corpus, country),
		Specificity:            specificityScore(corpus),
		FactualAccuracy:        factualAccuracyScore(validation),
	}
	scores.OverallQuality = (scores.HumanVoice + scores.CountryAppropriateness +
		scores.Specificity + scores.FactualAccuracy) / 4

	return scores
}

// humanVoiceScore measures how human the content reads: corporate jargon and
// machine-sounding phrases deduct, contractions earn a small bonus.
func humanVoiceScore(corpus string) float64 {
	score := 10.0
	lower := strings.ToLower(corpus)

	for _, phrase := range rules.ForbiddenPhrases {
		score -= 0.5 * float64(strings.Count(lower, strings.ToLower(phrase)))
	}
	for _, flag := range rules.LLMRedFlags {
		score -= 1.0 * float64(strings.Count(lower, strings.ToLower(flag)))
	}

	contractions := len(contractionPattern.FindAllString(corpus, -1))
	score += min(float64(contractions)*0.2, 1.0)

	return clamp(score)
}

// countryScore starts from a good baseline and moves with the country's
// avoid-list and key-value terms.
func countryScore(corpus string, country rules.CountryRuleSet) float64 {
	score := 8.0
	lower := strings.ToLower(corpus)

	for _, phrase := range country.Tone.Avoid {
		score -= 1.0 * float64(strings.Count(lower, strings.ToLower(phrase)))
	}
	for _, value := range country.Tone.KeyValues {
		if strings.Contains(lower, strings.ToLower(value)) {
			score += 0.5
		}
	}

	return clamp(score)
}

// specificityScore rewards quantified metrics and named technical terms.
func specificityScore(corpus string) float64 {
	score := 5.0

	metrics := len(metricPattern.FindAllString(corpus, -1))
	score += min(float64(metrics)*0.5, 3.0)

	techTerms := len(techTermPattern.FindAllString(corpus, -1))
	score += min(float64(techTerms)*0.1, 2.0)

	return clamp(score)
}

// factualAccuracyScore deducts for validation violations that mention
// factual problems. Deep fact checking is the fact validator's job; this is
// only the linkage into the score vector.
func factualAccuracyScore(validation *types.ValidationResult) float64 {
	score := 10.0
	for _, v := range validation.Violations {
		if strings.Contains(strings.ToLower(v), "factual") {
			score -= 1.0
		}
	}
	return clamp(score)
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
