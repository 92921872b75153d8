package rules

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForCountry_ExactLookup(t *testing.T) {
	rs, exact := ForCountry("finland")
	assert.True(t, exact)
	assert.Equal(t, "Finland", rs.Name)
	assert.Equal(t, "moderate", rs.Tone.Directness)
}

func TestForCountry_CaseInsensitive(t *testing.T) {
	rs, exact := ForCountry("  NeTHErlands ")
	assert.True(t, exact)
	assert.Equal(t, "Netherlands", rs.Name)
	assert.Equal(t, "high", rs.Tone.Directness)
}

func TestForCountry_UnknownFallsBackToDefault(t *testing.T) {
	rs, exact := ForCountry("atlantis")
	assert.False(t, exact)
	assert.Equal(t, "Netherlands", rs.Name)
}

func TestForCountry_EmptyFallsBackToDefault(t *testing.T) {
	rs, exact := ForCountry("")
	assert.False(t, exact)
	assert.Equal(t, "Netherlands", rs.Name)
}

func TestSupportedCountries(t *testing.T) {
	countries := SupportedCountries()
	require.Len(t, countries, 6)
	assert.True(t, sort.StringsAreSorted(countries))

	for _, want := range []string{"netherlands", "finland", "ireland", "sweden", "denmark", "portugal"} {
		assert.Contains(t, countries, want)
	}
}

func TestCountryRuleSets_Complete(t *testing.T) {
	for _, name := range SupportedCountries() {
		rs, exact := ForCountry(name)
		require.True(t, exact, name)
		assert.NotEmpty(t, rs.Name, name)
		assert.NotEmpty(t, rs.Tone.Directness, name)
		assert.NotEmpty(t, rs.Tone.Formality, name)
		assert.NotEmpty(t, rs.Tone.KeyValues, name)
		assert.NotEmpty(t, rs.CulturalNotes, name)
		assert.Greater(t, rs.ResumeFormat.MaxPages, 0, name)
	}
}

func TestLimitsFor(t *testing.T) {
	rs, _ := ForCountry("netherlands")

	limits, ok := rs.LimitsFor("cover_letter")
	require.True(t, ok)
	assert.Equal(t, 300, limits.MaxLength)
	assert.Equal(t, "direct", limits.Style)

	limits, ok = rs.LimitsFor("linkedin_message")
	require.True(t, ok)
	assert.Equal(t, 350, limits.MaxChars)

	_, ok = rs.LimitsFor("resume")
	assert.False(t, ok)
}

func TestAvoidListsAreLowercaseMatchable(t *testing.T) {
	// Validation lowercases the corpus before matching avoid phrases, so the
	// table entries must already be lowercase.
	for _, name := range SupportedCountries() {
		rs, _ := ForCountry(name)
		for _, phrase := range rs.Tone.Avoid {
			assert.Equal(t, strings.ToLower(phrase), phrase, "country %s", name)
		}
	}
}
