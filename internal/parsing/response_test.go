package parsing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validJSON = `{
	"customized_sections": {
		"domain_focus": "Payments infrastructure",
		"key_achievement_reframed": "Cut settlement latency by 40%"
	},
	"country_adaptations": {
		"tone_adjustments": "Direct tone applied"
	},
	"rule_compliance": {
		"jargon_removed": "yes"
	}
}`

func TestParse_BareJSON(t *testing.T) {
	c, err := Parse(validJSON)
	require.NoError(t, err)
	assert.Equal(t, "Payments infrastructure", c.CustomizedSections["domain_focus"])
	assert.Equal(t, "Direct tone applied", c.CountryAdaptations["tone_adjustments"])
	assert.Equal(t, "yes", c.RuleCompliance["jargon_removed"])
}

func TestParse_FencedJSON(t *testing.T) {
	raw := "Here is the customization you asked for:\n```json\n" + validJSON + "\n```\nLet me know if you need changes."

	c, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Payments infrastructure", c.CustomizedSections["domain_focus"])
}

func TestParse_UnterminatedFence(t *testing.T) {
	raw := "```json\n" + validJSON

	c, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Payments infrastructure", c.CustomizedSections["domain_focus"])
}

func TestParse_ProseWrappedJSON(t *testing.T) {
	raw := "Sure! " + validJSON + " Hope that helps."

	c, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Payments infrastructure", c.CustomizedSections["domain_focus"])
}

func TestParse_RepairsTrailingComma(t *testing.T) {
	raw := `{"customized_sections": {"domain_focus": "Payments",},}`

	c, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Payments", c.CustomizedSections["domain_focus"])
}

func TestParse_NoJSON(t *testing.T) {
	_, err := Parse("I could not produce a customization, sorry.")
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Message, "no JSON object")
}

func TestParse_EmptySections(t *testing.T) {
	_, err := Parse(`{"customized_sections": {}}`)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Message, "customized_sections")
}

func TestParse_Unrecoverable(t *testing.T) {
	_, err := Parse(`{"customized_sections": this is not json at all {{{`)
	require.Error(t, err)

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}
