package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/application-customizer/internal/rules"
	"github.com/jonathan/application-customizer/internal/types"
)

func scoreFixture(t *testing.T, text string, validation *types.ValidationResult) *types.QualityScores {
	t.Helper()
	if validation == nil {
		validation = &types.ValidationResult{ComplianceScore: 10}
	}
	country, exact := rules.ForCountry("netherlands")
	require.True(t, exact)

	c := &types.Customization{
		CustomizedSections: map[string]string{
			types.SectionDomainFocus: text,
		},
	}
	return Score(c, country, validation)
}

func TestScore_AllDimensionsInRange(t *testing.T) {
	texts := []string{
		"",
		"Increased user engagement by 94% using Go and PostgreSQL",
		"leverage leverage leverage delve into furthermore moreover",
		"I'm certain we'll deliver. Efficiency matters and innovation too.",
	}

	for _, text := range texts {
		scores := scoreFixture(t, text, nil)
		for name, value := range map[string]float64{
			"rule_compliance":         scores.RuleCompliance,
			"human_voice":             scores.HumanVoice,
			"country_appropriateness": scores.CountryAppropriateness,
			"specificity":             scores.Specificity,
			"factual_accuracy":        scores.FactualAccuracy,
			"overall_quality":         scores.OverallQuality,
		} {
			assert.GreaterOrEqual(t, value, 0.0, "%s for %q", name, text)
			assert.LessOrEqual(t, value, 10.0, "%s for %q", name, text)
		}
	}
}

func TestScore_OverallIsMeanOfDerivedScores(t *testing.T) {
	scores := scoreFixture(t, "Shipped the billing service at Acme", nil)

	expected := (scores.HumanVoice + scores.CountryAppropriateness +
		scores.Specificity + scores.FactualAccuracy) / 4
	assert.InDelta(t, expected, scores.OverallQuality, 1e-9)
}

func TestScore_RuleCompliancePassesThrough(t *testing.T) {
	scores := scoreFixture(t, "Plain text", &types.ValidationResult{ComplianceScore: 7})
	assert.Equal(t, 7.0, scores.RuleCompliance)
}

func TestScore_MetricsRaiseSpecificity(t *testing.T) {
	with := scoreFixture(t, "Increased user engagement by 94%", nil)
	without := scoreFixture(t, "Increased user engagement a lot", nil)

	assert.GreaterOrEqual(t, with.Specificity, 5.5)
	assert.Greater(t, with.Specificity, without.Specificity)
}

func TestScore_JargonLowersHumanVoice(t *testing.T) {
	clean := scoreFixture(t, "Shipped the billing service", nil)
	jargon := scoreFixture(t, "Shipped a robust, scalable, comprehensive billing service", nil)

	assert.Greater(t, clean.HumanVoice, jargon.HumanVoice)
}

func TestScore_ContractionsRaiseHumanVoice(t *testing.T) {
	// Both texts carry one jargon deduction so neither sits at the 10.0 cap.
	flat := scoreFixture(t, "I am sure the robust plan will deliver results", nil)
	natural := scoreFixture(t, "I'm sure the robust plan we'll deliver results", nil)

	assert.Greater(t, natural.HumanVoice, flat.HumanVoice)
}

func TestScore_KeyValuesRaiseCountryScore(t *testing.T) {
	neutral := scoreFixture(t, "Worked on internal tooling", nil)
	aligned := scoreFixture(t, "Focused on efficiency and innovation in tooling", nil)

	assert.Greater(t, aligned.CountryAppropriateness, neutral.CountryAppropriateness)
}

func TestScore_FactualViolationsLowerAccuracy(t *testing.T) {
	validation := &types.ValidationResult{
		ComplianceScore: 8,
		Violations: []string{
			"factual error: fabricated employer",
			"factual error: invented metric",
			"Forbidden phrase detected: 'leverage'",
		},
	}

	scores := scoreFixture(t, "Some content", validation)
	assert.Equal(t, 8.0, scores.FactualAccuracy)
}
